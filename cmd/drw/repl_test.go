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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cqn-brwpna9/drw/parser"
	"github.com/cqn-brwpna9/drw/vm"
)

func newSession(t *testing.T) (*session, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	i, err := vm.New(vm.Output(&buf))
	if err != nil {
		t.Fatal(err)
	}
	return &session{i: i, w: &buf}, &buf
}

func TestSession(t *testing.T) {
	data := []struct {
		name  string
		lines []string
		out   string
	}{
		{"persistent", []string{"1", "2 3+"}, "[1]\n[1 5]\n"},
		{"blank", []string{"", "   "}, ""},
		{"reset", []string{"1 2", ":reset"}, "[1 2]\n[]\n"},
		{"runtime error", []string{"1", "+"}, "[1]\nline 2:1: add: stack underflow\n[]\n"},
		{"parse error", []string{"1 |"}, "line 1:3: '|' is not a valid command\n"},
		{"segments", []string{"10^", ":segments"}, "[]\n400,225 410,225 #ffffff 1\n"},
		{"tree", []string{":tree 2[1]"}, ""},
		{"unknown", []string{":frob"}, "unknown command :frob. Available commands: :ops :quit :reset :segments :tree\n"},
	}
	for _, test := range data {
		t.Run(test.name, func(t *testing.T) {
			s, buf := newSession(t)
			for _, l := range test.lines {
				if s.eval(l) {
					t.Fatalf("%q: unexpected quit", l)
				}
			}
			if test.name == "tree" {
				p, _ := parser.ParseString("tree", "2[1]")
				var want bytes.Buffer
				parser.DumpTree(&want, p)
				if buf.String() != want.String() {
					t.Errorf("got:\n%s\nwant:\n%s", buf, &want)
				}
				return
			}
			if buf.String() != test.out {
				t.Errorf("got %q, want %q", buf, test.out)
			}
		})
	}
}

func TestSessionOps(t *testing.T) {
	s, buf := newSession(t)
	s.eval(":ops")
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(vm.Opcodes()) {
		t.Fatalf("got %d lines, want one per opcode", len(lines))
	}
	if lines[0] != "^ forward" {
		t.Errorf("first line: got %q", lines[0])
	}
	for _, l := range lines {
		sym, name, _ := strings.Cut(l, " ")
		op, ok := vm.Lookup([]rune(sym)[0])
		if !ok || op.String() != name {
			t.Errorf("%q does not match the opcode table", l)
		}
	}
}

func TestSessionQuit(t *testing.T) {
	s, _ := newSession(t)
	for _, in := range []string{":quit", " :Q "} {
		if !s.eval(in) {
			t.Errorf("%q should end the session", in)
		}
	}
}

func TestSessionPenUpSegments(t *testing.T) {
	s, buf := newSession(t)
	s.eval("u 5^")
	buf.Reset()
	s.eval(":segments")
	if got, want := buf.String(), "400,225 405,225 #ffffff 0\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
