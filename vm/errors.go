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

import "fmt"

// TypeMismatchError is returned when an opcode gets a value of the wrong kind,
// e.g. a Box handed to an arithmetic opcode.
type TypeMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %v, got %v", e.Want, e.Got)
}

// OpError locates a run-time error. Err is either ErrStackUnderflow, a
// *TypeMismatchError or an output error from the debug opcode.
type OpError struct {
	Name string // program name
	Op   string // opcode or control structure name
	Pos  int    // column in the source
	Err  error
}

func (e *OpError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%d: %s: %v", e.Pos, e.Op, e.Err)
	}
	return fmt.Sprintf("%s:%d: %s: %v", e.Name, e.Pos, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error { return e.Err }

// Cause implements the causer interface of github.com/pkg/errors.
func (e *OpError) Cause() error { return e.Err }
