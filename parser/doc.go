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

// Package parser turns drw source code into a program tree ready to be run by
// a vm.Instance.
//
// Parsing happens in two passes. Validate checks that every character belongs
// to the language and that brackets are balanced and properly nested. The
// tree builder then walks the validated source once, recursing into each
// bracketed body. A program that fails validation never produces a tree.
//
// Source format:
//
// A program is a single line of one character tokens. The only whitespace
// allowed is the space character, which separates adjacent numbers and is
// otherwise ignored. A trailing newline is stripped before parsing.
//
//	0-9	digits. A run of digits is a single non-negative integer literal.
//	[ ]	repeat loop
//	{ }	while loop
//	( )	dip block
//
// All other valid characters are opcodes, see the documentation of package vm
// for the full list. For example, the following draws a square:
//
//	4[100^90~]
//
// Errors:
//
// Validation errors are returned as *LexError (invalid character) or
// *BracketError (mismatched brackets). Both carry the 1-based column of the
// offending character. IsIncomplete reports whether a BracketError is only
// due to brackets left open at the end of the input, in which case more input
// might fix it.
package parser
