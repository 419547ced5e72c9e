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
	"math"
	"strconv"
	"strings"
)

// Kind is the type of a Value.
type Kind int

// Value kinds.
const (
	NumberKind Kind = iota
	BoxKind
)

func (k Kind) String() string {
	if k == BoxKind {
		return "box"
	}
	return "number"
}

// Value is a stack value: either a Num or a Box.
type Value interface {
	Kind() Kind
	String() string
}

// Num is a number.
type Num float64

// Kind implements Value.
func (Num) Kind() Kind { return NumberKind }

func (n Num) String() string { return FormatNumber(float64(n)) }

// Box is a color triple. Channels are kept as given; they are only clamped to
// 0-255 when used as a pen color.
type Box struct {
	R, G, B float64
}

// Kind implements Value.
func (Box) Kind() Kind { return BoxKind }

func (b Box) String() string {
	var sb strings.Builder
	sb.WriteString("〚")
	sb.WriteString(FormatNumber(b.R))
	sb.WriteByte(',')
	sb.WriteString(FormatNumber(b.G))
	sb.WriteByte(',')
	sb.WriteString(FormatNumber(b.B))
	sb.WriteString("〛")
	return sb.String()
}

// FormatNumber formats f the way drw prints numbers: the shortest decimal
// representation that round trips, never in exponent form. Infinities print as
// "inf" and "-inf".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
