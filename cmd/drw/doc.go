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

// The drw command line tool runs drw programs.
//
// Usage:
//
//	drw [flags] [program file]
//
//	-config filename
//		  load canvas and turtle settings from a YAML file
//	-debug
//		  enable execution tracing and full error diagnostics
//	-dump
//		  dump the data and dip stacks upon exit
//	-e code
//		  run code instead of reading a program file
//	-i
//		  start an interactive session
//	-segments
//		  print the segment history upon exit
//	-svg filename
//		  write the drawing to filename as an SVG document
//	-tree
//		  print the program tree instead of running it
//
// The program is read from the named file, from the -e flag, or from stdin if
// no file is given or the file name is "-". If stdin is a terminal and no
// program is given, drw starts an interactive session, just like with -i.
//
// Upon completion, drw prints the data stack, bottom first, e.g. "[1 2 3]".
// If the program fails, the error is printed to stderr; anything drawn before
// the failure is still exported.
//
// -config: the YAML file may contain the following keys, all optional:
//
//	canvas:
//	  width: 800         # canvas size, used for the SVG export
//	  height: 450
//	  background: [0, 0, 0]
//	turtle:
//	  x: 400             # starting position, defaults to the canvas center
//	  y: 225
//	  heading: 0         # starting heading, in the starting unit
//	  unit: degree       # degree or radian
//	  color: [255, 255, 255]
//	  width: 1           # pen width
//	  pen_up: false
//
// -debug: traces every executed node on stderr and prints a full stacktrace
// should the program fail.
//
// Interactive sessions keep the stacks and the turtle from one line to the
// next. A line with unclosed brackets continues on the next one. The
// following commands are available:
//
//	:ops		list the opcodes
//	:quit		exit
//	:reset		empty the stacks and reset the turtle
//	:segments	print the segment history
//	:tree code	print the program tree of code
package main
