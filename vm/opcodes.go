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

// Opcode identifies a drw command.
type Opcode uint8

// drw opcodes.
const (
	OpForward Opcode = iota
	OpTurn
	OpDup
	OpSwap
	OpPop
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpDegree
	OpRadian
	OpColor
	OpPenDown
	OpPenUp
	OpSize
	OpDebug
	OpPow
	OpLog
	OpEuler
	OpSqrt
	OpSin
	OpCeil
	OpFloor
	OpRound
	OpLt
	OpGt
	OpEq
	OpDip
	OpUndip
	OpBox
	OpUnbox
)

// opcodes is the one and only symbol table. It is used by the parser to
// validate and build programs, by the formatter to print them back, and by
// String for diagnostics. The symbols are part of the file format: do not
// change them.
var opcodes = [...]struct {
	sym  rune
	name string
}{
	OpForward: {'^', "forward"},
	OpTurn:    {'~', "turn"},
	OpDup:     {'.', "dup"},
	OpSwap:    {':', "swap"},
	OpPop:     {'p', "pop"},
	OpAdd:     {'+', "add"},
	OpSub:     {'-', "sub"},
	OpMul:     {'*', "mul"},
	OpDiv:     {'/', "div"},
	OpMod:     {'%', "mod"},
	OpDegree:  {'o', "degree"},
	OpRadian:  {'r', "radian"},
	OpColor:   {'c', "color"},
	OpPenDown: {'d', "pendown"},
	OpPenUp:   {'u', "penup"},
	OpSize:    {'s', "size"},
	OpDebug:   {'?', "debug"},
	OpPow:     {'P', "pow"},
	OpLog:     {'l', "log"},
	OpEuler:   {'e', "euler"},
	OpSqrt:    {'q', "sqrt"},
	OpSin:     {'S', "sin"},
	OpCeil:    {'C', "ceil"},
	OpFloor:   {'f', "floor"},
	OpRound:   {'R', "round"},
	OpLt:      {'>', "lt"},
	OpGt:      {'<', "gt"},
	OpEq:      {'=', "eq"},
	OpDip:     {'D', "dip"},
	OpUndip:   {'U', "undip"},
	OpBox:     {'b', "box"},
	OpUnbox:   {'B', "unbox"},
}

var opcodeIndex = make(map[rune]Opcode, len(opcodes))

func init() {
	for i, v := range opcodes {
		opcodeIndex[v.sym] = Opcode(i)
	}
}

// Lookup returns the opcode for the given source symbol.
func Lookup(sym rune) (Opcode, bool) {
	op, ok := opcodeIndex[sym]
	return op, ok
}

// Opcodes returns all opcodes, in numerical order.
func Opcodes() []Opcode {
	ops := make([]Opcode, len(opcodes))
	for i := range ops {
		ops[i] = Opcode(i)
	}
	return ops
}

// Symbol returns the source symbol of op.
func (op Opcode) Symbol() rune {
	if int(op) >= len(opcodes) {
		return 0
	}
	return opcodes[op].sym
}

func (op Opcode) String() string {
	if int(op) >= len(opcodes) {
		return "invalid"
	}
	return opcodes[op].name
}

// ControlKind identifies a bracketed control structure.
type ControlKind uint8

// Control structure kinds.
const (
	Repeat ControlKind = iota
	While
	Dip
)

var brackets = [...]struct {
	open, close rune
	name        string
}{
	Repeat: {'[', ']', "repeat"},
	While:  {'{', '}', "while"},
	Dip:    {'(', ')', "dip-block"},
}

// OpenBracket returns the kind of control structure opened by r.
func OpenBracket(r rune) (ControlKind, bool) {
	for i, b := range brackets {
		if b.open == r {
			return ControlKind(i), true
		}
	}
	return 0, false
}

// CloseBracket returns the kind of control structure closed by r.
func CloseBracket(r rune) (ControlKind, bool) {
	for i, b := range brackets {
		if b.close == r {
			return ControlKind(i), true
		}
	}
	return 0, false
}

// Open returns the opening bracket of k.
func (k ControlKind) Open() rune { return brackets[k].open }

// Close returns the closing bracket of k.
func (k ControlKind) Close() rune { return brackets[k].close }

func (k ControlKind) String() string {
	if int(k) >= len(brackets) {
		return "invalid"
	}
	return brackets[k].name
}
