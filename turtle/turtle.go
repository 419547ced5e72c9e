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

// Package turtle implements the drawing cursor driven by drw programs.
//
// A Turtle never draws anything by itself. It keeps track of its position,
// heading, pen and color, and records every committed movement as a Segment.
// The resulting history is handed over to a renderer once a program has run.
//
// Headings are stored in radians. Screen coordinates are assumed, with the y
// axis pointing down, so a positive turn rotates clockwise on screen.
package turtle

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Default canvas size. A new Turtle starts at the center of it.
const (
	DefaultWidth  = 800
	DefaultHeight = 450
)

// Unit is the angular unit used to interpret Turn operands.
type Unit int

// Supported angular units.
const (
	Degree Unit = iota
	Radian
)

// FullCircle returns the measure of a full turn in unit u.
func (u Unit) FullCircle() float64 {
	if u == Radian {
		return 2 * math.Pi
	}
	return 360
}

// ToRadians converts an angle expressed in unit u to radians.
func (u Unit) ToRadians(a float64) float64 {
	if u == Radian {
		return a
	}
	return a * (2 * math.Pi / 360)
}

func (u Unit) String() string {
	if u == Radian {
		return "radian"
	}
	return "degree"
}

// ParseUnit parses a unit name. It accepts "degree", "degrees", "deg",
// "radian", "radians" and "rad", case insensitive.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "degree", "degrees", "deg":
		return Degree, nil
	case "radian", "radians", "rad":
		return Radian, nil
	}
	return Degree, errors.Errorf("unknown angular unit %q", s)
}

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// Color is an RGB color, 0-255 per channel.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from arbitrary float channel values. Values are
// truncated toward zero and saturated to the 0-255 range; NaN maps to 0.
func RGB(r, g, b float64) Color {
	return Color{channel(r), channel(g), channel(b)}
}

func channel(v float64) uint8 {
	switch {
	case v != v, v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// White is the default pen color.
var White = Color{255, 255, 255}

// Segment is one committed straight line movement. A Width of 0 means the pen
// was up: the segment must not be drawn, but it still links the previous and
// next positions.
type Segment struct {
	Start Point
	End   Point
	Color Color
	Width float64
}

// Visible returns true if the segment should be drawn.
func (s Segment) Visible() bool {
	return s.Width > 0
}

// Turtle is the drawing cursor state.
type Turtle struct {
	pos     Point
	heading float64
	pen     bool
	color   Color
	width   float64
	unit    Unit
	history []Segment
	opts    []Option
}

// Option configures the initial state of a Turtle.
type Option func(*Turtle)

// Origin sets the starting position.
func Origin(x, y float64) Option {
	return func(t *Turtle) { t.pos = Point{x, y} }
}

// Heading sets the starting heading, in radians.
func Heading(rad float64) Option {
	return func(t *Turtle) { t.heading = rad }
}

// PenColor sets the starting pen color.
func PenColor(c Color) Option {
	return func(t *Turtle) { t.color = c }
}

// PenSize sets the starting pen width.
func PenSize(w float64) Option {
	return func(t *Turtle) { t.width = w }
}

// AngularUnit sets the starting angular unit.
func AngularUnit(u Unit) Option {
	return func(t *Turtle) { t.unit = u }
}

// PenUp makes the turtle start with its pen up.
func PenUp() Option {
	return func(t *Turtle) { t.pen = false }
}

// New returns a new Turtle. Without options, the turtle sits at the center of
// a DefaultWidth x DefaultHeight canvas, heading right (0 rad), pen down,
// white, with a pen width of 1, in degree mode.
func New(opts ...Option) *Turtle {
	t := &Turtle{opts: opts}
	t.Reset()
	return t
}

// Reset restores the initial state set up by New and clears the history.
func (t *Turtle) Reset() {
	t.pos = Point{DefaultWidth / 2, DefaultHeight / 2}
	t.heading = 0
	t.pen = true
	t.color = White
	t.width = 1
	t.unit = Degree
	t.history = nil
	for _, opt := range t.opts {
		opt(t)
	}
}

// Forward moves the turtle by d in the direction of its heading and commits
// the movement to the history. The returned segment is the one recorded.
func (t *Turtle) Forward(d float64) Segment {
	sin, cos := math.Sincos(t.heading)
	s := Segment{
		Start: t.pos,
		End:   Point{t.pos.X + cos*d, t.pos.Y + sin*d},
		Color: t.color,
		Width: t.width,
	}
	if !t.pen {
		s.Width = 0
	}
	t.history = append(t.history, s)
	t.pos = s.End
	return s
}

// Turn rotates the turtle by a, expressed in the current angular unit.
func (t *Turtle) Turn(a float64) {
	t.heading += t.unit.ToRadians(a)
}

// PenUp lifts the pen. Subsequent segments will have a zero width.
func (t *Turtle) PenUp() { t.pen = false }

// PenDown lowers the pen.
func (t *Turtle) PenDown() { t.pen = true }

// IsPenDown returns the pen state.
func (t *Turtle) IsPenDown() bool { return t.pen }

// SetColor sets the pen color.
func (t *Turtle) SetColor(c Color) { t.color = c }

// Color returns the pen color.
func (t *Turtle) Color() Color { return t.color }

// SetPenSize sets the pen width.
func (t *Turtle) SetPenSize(w float64) { t.width = w }

// PenSize returns the pen width.
func (t *Turtle) PenSize() float64 { return t.width }

// SetUnit sets the angular unit.
func (t *Turtle) SetUnit(u Unit) { t.unit = u }

// Unit returns the angular unit.
func (t *Turtle) Unit() Unit { return t.unit }

// Position returns the current position.
func (t *Turtle) Position() Point { return t.pos }

// Heading returns the current heading in radians.
func (t *Turtle) Heading() float64 { return t.heading }

// Segments returns a copy of the committed history.
func (t *Turtle) Segments() []Segment {
	if len(t.history) == 0 {
		return nil
	}
	return append([]Segment(nil), t.history...)
}

// ShouldRender returns true if at least one segment has been committed.
func (t *Turtle) ShouldRender() bool {
	return len(t.history) != 0
}
