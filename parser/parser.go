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

package parser

import (
	"io"
	"strings"

	"github.com/cqn-brwpna9/drw/vm"
	"github.com/pkg/errors"
)

// Parse reads a whole program from the supplied io.Reader and returns the
// resulting program tree and error if any.
//
// The name parameter is used in error messages to name the source of the
// error and is stored in the returned program. If the io.Reader is a file,
// name should be the file name.
func Parse(name string, r io.Reader) (*vm.Program, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return ParseString(name, string(b))
}

// ParseString parses the program in src. See Parse.
func ParseString(name, src string) (*vm.Program, error) {
	if strings.HasSuffix(src, "\n") {
		src = strings.TrimSuffix(src[:len(src)-1], "\r")
	}
	code, err := Validate(src)
	if err != nil {
		setName(err, name)
		return nil, err
	}
	return &vm.Program{Name: name, Root: vm.Block{Body: build(code, 0)}}, nil
}

// build converts validated code into a node list. base is the column of
// code[0] minus one.
//
// Bracket balance is not checked again: with unbalanced input, an unclosed
// body extends to the end of code. Characters that are neither opcodes,
// brackets nor digits are skipped.
func build(code []rune, base int) []vm.Node {
	var nodes []vm.Node
	for idx := 0; idx < len(code); {
		r := code[idx]
		pos := base + idx + 1
		if op, ok := vm.Lookup(r); ok {
			nodes = append(nodes, vm.Command{Op: op, Pos: pos})
			idx++
			continue
		}
		if k, ok := vm.OpenBracket(r); ok {
			end := matching(code, idx)
			nodes = append(nodes, vm.Control{
				Kind: k,
				Body: build(code[idx+1:end], pos),
				Pos:  pos,
			})
			idx = end + 1
			continue
		}
		if isDigit(r) {
			var v float64
			for ; idx < len(code) && isDigit(code[idx]); idx++ {
				v = v*10 + float64(code[idx]-'0')
			}
			nodes = append(nodes, vm.Number{Value: v, Pos: pos})
			continue
		}
		idx++
	}
	return nodes
}

// matching returns the index of the bracket closing the one at code[open], or
// len(code) if there is none.
func matching(code []rune, open int) int {
	depth := 0
	for i := open; i < len(code); i++ {
		if _, ok := vm.OpenBracket(code[i]); ok {
			depth++
		} else if _, ok := vm.CloseBracket(code[i]); ok {
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(code)
}
