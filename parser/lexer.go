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

import "github.com/cqn-brwpna9/drw/vm"

type bracket struct {
	kind vm.ControlKind
	pos  int
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Validate checks that every character of src is a valid token and that
// brackets are balanced and properly nested. It returns the validated
// characters.
//
// Validation stops at the first error, which is either a *LexError or a
// *BracketError.
func Validate(src string) ([]rune, error) {
	var (
		out  = make([]rune, 0, len(src))
		open vm.Stack[bracket]
		pos  int
	)
	for _, r := range src {
		pos++
		if r == ' ' || isDigit(r) {
			out = append(out, r)
			continue
		}
		if _, ok := vm.Lookup(r); ok {
			out = append(out, r)
			continue
		}
		if k, ok := vm.OpenBracket(r); ok {
			open.Push(bracket{k, pos})
			out = append(out, r)
			continue
		}
		if k, ok := vm.CloseBracket(r); ok {
			top, err := open.Peek()
			if err != nil {
				return nil, &BracketError{Pos: pos, Char: r}
			}
			if top.kind != k {
				return nil, &BracketError{Pos: pos, Char: r, Open: top.kind.Open(), OpenPos: top.pos}
			}
			open.Pop()
			out = append(out, r)
			continue
		}
		return nil, &LexError{Pos: pos, Char: r}
	}
	if top, err := open.Peek(); err == nil {
		return nil, &BracketError{Pos: pos + 1, Open: top.kind.Open(), OpenPos: top.pos}
	}
	return out, nil
}
