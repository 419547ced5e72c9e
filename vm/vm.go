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

import (
	"io"
	"os"
	"strings"

	"github.com/cqn-brwpna9/drw/internal/drwi"
	"github.com/cqn-brwpna9/drw/turtle"
	"github.com/rs/zerolog"
)

// Instance represents a drw machine: a data stack, a dip stack and a turtle.
//
// An Instance is not safe for concurrent use. State persists across calls to
// Run, which lets an interactive session feed a program line by line.
type Instance struct {
	data     Stack[Value]
	dip      Stack[Value]
	turtle   *turtle.Turtle
	tOpts    []turtle.Option
	output   io.Writer
	log      zerolog.Logger
	insCount int64
	name     string
}

// Option interface
type Option func(*Instance) error

// Output sets the io.Writer the debug opcode prints to. The default is
// os.Stdout. A nil writer silences the debug opcode.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = w
		return nil
	}
}

// Logger sets the logger used to trace execution. Every node is logged at the
// trace level, run failures at the debug level. The default is zerolog.Nop().
func Logger(l zerolog.Logger) Option {
	return func(i *Instance) error {
		i.log = l
		return nil
	}
}

// TurtleOptions sets the options used to create the turtle, and to reset it.
func TurtleOptions(opts ...turtle.Option) Option {
	return func(i *Instance) error {
		i.tOpts = append(i.tOpts, opts...)
		i.turtle = turtle.New(i.tOpts...)
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new drw machine with empty stacks and a fresh turtle.
func New(opts ...Option) (*Instance, error) {
	i := &Instance{
		output: os.Stdout,
		log:    zerolog.Nop(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.turtle == nil {
		i.turtle = turtle.New(i.tOpts...)
	}
	return i, nil
}

// Reset empties both stacks and resets the turtle to its initial state.
func (i *Instance) Reset() {
	i.data.Reset()
	i.dip.Reset()
	i.turtle.Reset()
	i.insCount = 0
}

// Push pushes v on top of the data stack.
func (i *Instance) Push(v Value) {
	i.data.Push(v)
}

// Data returns a copy of the data stack, bottom first.
func (i *Instance) Data() []Value {
	return i.data.Items()
}

// Dip returns a copy of the dip stack, bottom first.
func (i *Instance) Dip() []Value {
	return i.dip.Items()
}

// Turtle returns the instance's turtle.
func (i *Instance) Turtle() *turtle.Turtle {
	return i.turtle
}

// InstructionCount returns the number of nodes executed by the last call to
// Run.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Report renders the data stack, bottom first, as a space separated list
// enclosed in square brackets. For example, after running "2 3+ 7", Report
// returns "[5 7]". An empty stack renders as "[]".
func (i *Instance) Report() string {
	var b strings.Builder
	b.WriteByte('[')
	writeValues(&b, i.data.items)
	b.WriteByte(']')
	return b.String()
}

func writeValues(w io.StringWriter, vs []Value) {
	for n, v := range vs {
		if n > 0 {
			w.WriteString(" ")
		}
		w.WriteString(v.String())
	}
}

// Dump dumps the data and dip stacks to the specified io.Writer. The data
// stack is prefixed by a '\x1C' byte, the dip stack by a '\x1D' byte.
func (i *Instance) Dump(w io.Writer) error {
	ew := drwi.NewErrWriter(w)
	ew.WriteByte('\x1C')
	writeValues(ew, i.data.items)
	ew.WriteByte('\x1D')
	writeValues(ew, i.dip.items)
	return ew.Err
}
