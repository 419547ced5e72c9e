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

// Package svg exports a turtle segment history as an SVG document.
//
// Segments are drawn as lines with round caps, in history order, so later
// segments paint over earlier ones. Segments with a zero width (pen up) are
// skipped.
package svg

import (
	"io"
	"math"
	"strconv"

	"github.com/cqn-brwpna9/drw/internal/drwi"
	"github.com/cqn-brwpna9/drw/turtle"
)

// Canvas describes the drawing area.
type Canvas struct {
	Width      int
	Height     int
	Background turtle.Color
}

// DefaultCanvas matches the turtle's default origin: a black 800x450 area.
var DefaultCanvas = Canvas{turtle.DefaultWidth, turtle.DefaultHeight, turtle.Color{}}

func coord(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func hex(c turtle.Color) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range [...]uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0xf]
	}
	return string(b)
}

// Write writes an SVG document showing segs on canvas c to the specified
// io.Writer and returns any write error.
func Write(w io.Writer, c Canvas, segs []turtle.Segment) error {
	ew := drwi.NewErrWriter(w)
	width, height := strconv.Itoa(c.Width), strconv.Itoa(c.Height)
	ew.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="` + width + `" height="` + height +
		`" viewBox="0 0 ` + width + ` ` + height + `">` + "\n")
	ew.WriteString(`<rect width="100%" height="100%" fill="` + hex(c.Background) + `"/>` + "\n")
	for _, s := range segs {
		if !s.Visible() {
			continue
		}
		ew.WriteString(`<line x1="` + coord(s.Start.X) + `" y1="` + coord(s.Start.Y) +
			`" x2="` + coord(s.End.X) + `" y2="` + coord(s.End.Y) +
			`" stroke="` + hex(s.Color) + `" stroke-width="` + coord(s.Width) +
			`" stroke-linecap="round"/>` + "\n")
		if ew.Err != nil {
			break
		}
	}
	ew.WriteString("</svg>\n")
	return ew.Err
}
