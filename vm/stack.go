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

import "github.com/pkg/errors"

// ErrStackUnderflow is returned when popping or peeking an empty stack, or
// when a stack holds fewer values than an operation needs.
var ErrStackUnderflow = errors.New("stack underflow")

// Stack is a LIFO stack. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// Push pushes v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes the value on top of the stack and returns it.
func (s *Stack[T]) Pop() (T, error) {
	var v T
	l := len(s.items)
	if l == 0 {
		return v, ErrStackUnderflow
	}
	v = s.items[l-1]
	s.items[l-1] = *new(T)
	s.items = s.items[:l-1]
	return v, nil
}

// Peek returns the value on top of the stack without removing it.
func (s *Stack[T]) Peek() (T, error) {
	var v T
	if len(s.items) == 0 {
		return v, ErrStackUnderflow
	}
	return s.items[len(s.items)-1], nil
}

// Dup pushes a copy of the value on top of the stack.
func (s *Stack[T]) Dup() error {
	v, err := s.Peek()
	if err != nil {
		return err
	}
	s.Push(v)
	return nil
}

// Swap exchanges the top two values. The stack is left untouched if it holds
// fewer than two values.
func (s *Stack[T]) Swap() error {
	l := len(s.items)
	if l < 2 {
		return ErrStackUnderflow
	}
	s.items[l-1], s.items[l-2] = s.items[l-2], s.items[l-1]
	return nil
}

// Transfer pops the value on top of s and pushes it on top of to.
func (s *Stack[T]) Transfer(to *Stack[T]) error {
	v, err := s.Pop()
	if err != nil {
		return err
	}
	to.Push(v)
	return nil
}

// Len returns the stack depth.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the stack contents, bottom first.
func (s *Stack[T]) Items() []T {
	return append([]T(nil), s.items...)
}

// Reset empties the stack.
func (s *Stack[T]) Reset() {
	s.items = nil
}
