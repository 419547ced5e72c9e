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
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cqn-brwpna9/drw/parser"
	"github.com/cqn-brwpna9/drw/vm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	debug       bool
	dump        bool
	segments    bool
	tree        bool
	interactive bool
	code        string
	svgFileName string
	cfgFileName string
)

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "Stack: %s, Dip: %v, Instructions: %d\n", i.Report(), i.Dip(), i.InstructionCount())
	}
	os.Exit(1)
}

func logger() zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !isTerminal(os.Stderr)}).
		Level(zerolog.TraceLevel).
		With().Timestamp().Logger()
}

// loadProgram reads the program from -e, the named file, or stdin.
func loadProgram(args []string) (*vm.Program, error) {
	if code != "" {
		return parser.ParseString("-e", code)
	}
	if len(args) == 0 || args[0] == "-" {
		return parser.Parse("stdin", bufio.NewReader(os.Stdin))
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.Parse(args[0], f)
}

// finish writes whatever the program produced, even after a failure.
func finish(w io.Writer, cfg *config, i *vm.Instance) error {
	if segments {
		if err := printSegments(w, i.Turtle().Segments()); err != nil {
			return err
		}
	}
	if svgFileName != "" && i.Turtle().ShouldRender() {
		if err := exportSVG(svgFileName, cfg.canvas(), i); err != nil {
			return err
		}
	}
	if dump {
		if err := i.Dump(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if e := stdout.Flush(); e != nil && err == nil {
			err = errors.Wrap(e, "stdout")
		}
		atExit(i, err)
	}()

	flag.StringVar(&code, "e", "", "run `code` instead of reading a program file")
	flag.BoolVar(&interactive, "i", false, "start an interactive session")
	flag.StringVar(&cfgFileName, "config", "", "load canvas and turtle settings from YAML file `filename`")
	flag.StringVar(&svgFileName, "svg", "", "write the drawing to `filename` as an SVG document")
	flag.BoolVar(&segments, "segments", false, "print the segment history upon exit")
	flag.BoolVar(&tree, "tree", false, "print the program tree instead of running it")
	flag.BoolVar(&dump, "dump", false, "dump the data and dip stacks upon exit")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")

	flag.Parse()

	var cfg *config
	if cfg, err = loadConfig(cfgFileName); err != nil {
		return
	}
	tOpts, err := cfg.turtleOptions()
	if err != nil {
		return
	}
	log := logger()
	i, err = vm.New(vm.Output(stdout), vm.Logger(log), vm.TurtleOptions(tOpts...))
	if err != nil {
		return
	}

	if interactive || (code == "" && flag.NArg() == 0 && isTerminal(os.Stdin)) {
		// liner owns the terminal, output must not be buffered.
		stdout.Flush()
		if err = i.SetOptions(vm.Output(os.Stdout)); err != nil {
			return
		}
		err = repl(i, os.Stdout)
		if err == nil {
			err = finish(os.Stdout, cfg, i)
		}
		return
	}

	p, err := loadProgram(flag.Args())
	if err != nil {
		return
	}
	if tree {
		err = parser.DumpTree(stdout, p)
		return
	}

	runErr := i.Run(p)
	log.Info().Int64("instructions", i.InstructionCount()).Int("segments", len(i.Turtle().Segments())).Msg("executed")
	fmt.Fprintln(stdout, i.Report())
	if err = finish(stdout, cfg, i); err == nil {
		err = runErr
	}
}
