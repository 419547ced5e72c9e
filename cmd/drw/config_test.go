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
	"math"
	"strings"
	"testing"

	"github.com/cqn-brwpna9/drw/svg"
	"github.com/cqn-brwpna9/drw/turtle"
)

func TestConfigDefaults(t *testing.T) {
	c, err := parseConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.canvas(); got != svg.DefaultCanvas {
		t.Errorf("canvas: got %+v, want %+v", got, svg.DefaultCanvas)
	}
	opts, err := c.turtleOptions()
	if err != nil {
		t.Fatal(err)
	}
	tt, def := turtle.New(opts...), turtle.New()
	if tt.Position() != def.Position() || tt.Color() != def.Color() || tt.PenSize() != def.PenSize() ||
		tt.Unit() != def.Unit() || tt.Heading() != def.Heading() || !tt.IsPenDown() {
		t.Error("default config does not match a default turtle")
	}
}

const fullConfig = `
canvas:
  width: 100
  height: 50
  background: [10, 20, 30]
turtle:
  unit: radian
  heading: 1.5
  color: [255, 0, 300]
  width: 3
  pen_up: true
`

func TestConfig(t *testing.T) {
	c, err := parseConfig(strings.NewReader(fullConfig))
	if err != nil {
		t.Fatal(err)
	}
	want := svg.Canvas{Width: 100, Height: 50, Background: turtle.Color{R: 10, G: 20, B: 30}}
	if got := c.canvas(); got != want {
		t.Errorf("canvas: got %+v, want %+v", got, want)
	}
	opts, err := c.turtleOptions()
	if err != nil {
		t.Fatal(err)
	}
	tt := turtle.New(opts...)
	if p := tt.Position(); p != (turtle.Point{X: 50, Y: 25}) {
		t.Errorf("origin: got %v, want canvas center", p)
	}
	if tt.Unit() != turtle.Radian {
		t.Errorf("unit: got %v", tt.Unit())
	}
	if tt.Heading() != 1.5 {
		t.Errorf("heading: got %v", tt.Heading())
	}
	if tt.Color() != (turtle.Color{R: 255, G: 0, B: 255}) {
		t.Errorf("color: got %v", tt.Color())
	}
	if tt.PenSize() != 3 {
		t.Errorf("pen size: got %v", tt.PenSize())
	}
	if tt.IsPenDown() {
		t.Error("pen should be up")
	}

	// Reset keeps the configured state.
	tt.Forward(10)
	tt.Reset()
	if tt.IsPenDown() || tt.PenSize() != 3 || tt.Segments() != nil {
		t.Error("reset lost configured state")
	}
}

func TestConfigDegrees(t *testing.T) {
	c, err := parseConfig(strings.NewReader("turtle: {x: 0, y: 0, heading: 90}"))
	if err != nil {
		t.Fatal(err)
	}
	opts, _ := c.turtleOptions()
	tt := turtle.New(opts...)
	if h := tt.Heading(); math.Abs(h-math.Pi/2) > 1e-12 {
		t.Errorf("heading: got %v, want pi/2", h)
	}
	if p := tt.Position(); p != (turtle.Point{}) {
		t.Errorf("origin: got %v, want 0,0", p)
	}
}

func TestConfigErrors(t *testing.T) {
	data := []struct {
		name string
		cfg  string
		err  string
	}{
		{"unknown key", "turtle: {colour: [1, 2, 3]}", "field colour not found"},
		{"bad unit", "turtle: {unit: grad}", `unknown angular unit "grad"`},
		{"bad color", "turtle: {color: [1, 2]}", "expected 3 color channels, got 2"},
		{"bad background", "canvas: {background: [1]}", "expected 3 color channels, got 1"},
		{"bad size", "canvas: {width: 0}", "invalid canvas size 0x450"},
		{"syntax", "canvas: [", "config"},
	}
	for _, test := range data {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseConfig(strings.NewReader(test.cfg))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), test.err) {
				t.Errorf("got %q, want it to contain %q", err, test.err)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := loadConfig("testdata/does-not-exist.yaml"); err == nil {
		t.Error("expected an error")
	}
	c, err := loadConfig("")
	if err != nil || c.Canvas.Width != turtle.DefaultWidth {
		t.Errorf("empty file name: got %v, %v", c, err)
	}
}
