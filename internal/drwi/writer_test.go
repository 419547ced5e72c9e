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

package drwi_test

import (
	"bytes"
	"testing"

	"github.com/cqn-brwpna9/drw/internal/drwi"
	"github.com/pkg/errors"
)

type limitWriter struct {
	n int
}

var errFull = errors.New("full")

func (l *limitWriter) Write(p []byte) (int, error) {
	if len(p) > l.n {
		n := l.n
		l.n = 0
		return n, errFull
	}
	l.n -= len(p)
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	var buf bytes.Buffer
	ew := drwi.NewErrWriter(&buf)
	ew.WriteString("a")
	ew.WriteByte(' ')
	ew.Printf("%d", 42)
	if ew.Err != nil {
		t.Fatal(ew.Err)
	}
	if buf.String() != "a 42" {
		t.Errorf("got %q", buf.String())
	}
	if drwi.NewErrWriter(ew) != ew {
		t.Error("NewErrWriter should not wrap an *ErrWriter")
	}
}

func TestErrWriterSticky(t *testing.T) {
	ew := drwi.NewErrWriter(&limitWriter{n: 3})
	if _, err := ew.WriteString("ab"); err != nil {
		t.Fatal(err)
	}
	if _, err := ew.WriteString("cd"); errors.Cause(err) != errFull {
		t.Fatalf("got %v, want %v", err, errFull)
	}
	if n, err := ew.WriteString("e"); n != 0 || err != ew.Err {
		t.Errorf("write after failure: got %d, %v", n, err)
	}
	if err := ew.WriteByte('f'); err != ew.Err {
		t.Errorf("got %v", err)
	}
	if ew.Err.Error() != "write failed: full" {
		t.Errorf("got %q", ew.Err)
	}
}
