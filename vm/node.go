// This file is part of drw - https://github.com/cqn-brwpna9/drw
//
// Copyright 2024 The drw Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

// Node is a node of a program tree. The concrete types are Block, Command,
// Control and Number; no other type implements Node.
//
// Nodes are built once by the parser and never modified afterwards. Pos
// fields hold the 1-based column of the node in the source and are only used
// for diagnostics.
type Node interface {
	node()
}

// Block is a plain sequence of nodes. The root of every program is a Block.
type Block struct {
	Body []Node
}

// Command is a single opcode.
type Command struct {
	Op  Opcode
	Pos int
}

// Control is a bracketed control structure.
type Control struct {
	Kind ControlKind
	Body []Node
	Pos  int
}

// Number is a numeric literal.
type Number struct {
	Value float64
	Pos   int
}

func (Block) node()   {}
func (Command) node() {}
func (Control) node() {}
func (Number) node()  {}

// Program is a parsed drw program, ready to run.
type Program struct {
	Name string // used in error messages
	Root Block
}
