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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cqn-brwpna9/drw/parser"
	"github.com/cqn-brwpna9/drw/vm"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

const (
	historyFile = ".drw_history"
	promptMain  = "drw> "
	promptCont  = "...> "
)

// session evaluates REPL input against a persistent instance.
type session struct {
	i    *vm.Instance
	w    io.Writer
	line int
}

// eval evaluates a line of input, either a command or drw code, and reports
// whether the session should end.
func (s *session) eval(input string) (quit bool) {
	in := strings.TrimSpace(input)
	if in == "" {
		return false
	}
	if strings.HasPrefix(in, ":") {
		return s.command(in)
	}
	s.line++
	p, err := parser.ParseString(fmt.Sprintf("line %d", s.line), input)
	if err != nil {
		fmt.Fprintln(s.w, err)
		return false
	}
	if err = s.i.Run(p); err != nil {
		fmt.Fprintln(s.w, err)
	}
	fmt.Fprintln(s.w, s.i.Report())
	return false
}

func (s *session) command(in string) (quit bool) {
	cmd, arg, _ := strings.Cut(in, " ")
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":reset":
		s.i.Reset()
		fmt.Fprintln(s.w, s.i.Report())
	case ":ops":
		for _, op := range vm.Opcodes() {
			fmt.Fprintf(s.w, "%c %s\n", op.Symbol(), op)
		}
	case ":segments":
		if err := printSegments(s.w, s.i.Turtle().Segments()); err != nil {
			fmt.Fprintln(s.w, err)
		}
	case ":tree":
		p, err := parser.ParseString("tree", strings.TrimSpace(arg))
		if err == nil {
			err = parser.DumpTree(s.w, p)
		}
		if err != nil {
			fmt.Fprintln(s.w, err)
		}
	default:
		fmt.Fprintf(s.w, "unknown command %s. Available commands: :ops :quit :reset :segments :tree\n", cmd)
	}
	return false
}

// readByParseProbe reads lines until they form a program with balanced
// brackets, or until the parser reports a definitive error. Continuation
// lines are joined with a space.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// ctrl-C drops the pending input
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, perr := parser.ParseString("", src); parser.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}

// repl runs an interactive session on i until :quit or EOF.
func repl(i *vm.Instance, w io.Writer) error {
	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	s := &session{i: i, w: w}
	for {
		src, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(w)
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(src)
		if s.eval(src) {
			return nil
		}
	}
}
