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
	"strconv"

	"github.com/pkg/errors"
)

// LexError is returned when the source contains a character outside of the
// language alphabet.
type LexError struct {
	Name string // source name
	Pos  int    // column of Char
	Char rune
}

func (e *LexError) Error() string {
	return prefix(e.Name, e.Pos) + strconv.QuoteRune(e.Char) + " is not a valid command"
}

// BracketError is returned on mismatched brackets.
//
// If Char is 0, the input ended while the bracket Open, at column OpenPos, was
// still open. Otherwise Char is the closing bracket at column Pos that does
// not match Open. Open is 0 if there was no open bracket at all.
type BracketError struct {
	Name    string
	Pos     int
	Char    rune
	Open    rune
	OpenPos int
}

func (e *BracketError) Error() string {
	msg := prefix(e.Name, e.Pos) + "mismatched brackets: "
	switch {
	case e.Char == 0:
		return msg + strconv.QuoteRune(e.Open) + " opened at " + strconv.Itoa(e.OpenPos) + " is never closed"
	case e.Open == 0:
		return msg + "unexpected " + strconv.QuoteRune(e.Char)
	}
	return msg + strconv.QuoteRune(e.Char) + " closes " + strconv.QuoteRune(e.Open) + " opened at " + strconv.Itoa(e.OpenPos)
}

func prefix(name string, pos int) string {
	if name == "" {
		return strconv.Itoa(pos) + ": "
	}
	return name + ":" + strconv.Itoa(pos) + ": "
}

// IsIncomplete returns true if err is a *BracketError caused by brackets still
// open at the end of the input.
func IsIncomplete(err error) bool {
	var be *BracketError
	return errors.As(err, &be) && be.Char == 0
}

func setName(err error, name string) {
	switch e := err.(type) {
	case *LexError:
		e.Name = name
	case *BracketError:
		e.Name = name
	}
}
