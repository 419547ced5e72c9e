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
	"io"
	"os"

	"github.com/cqn-brwpna9/drw/svg"
	"github.com/cqn-brwpna9/drw/turtle"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type config struct {
	Canvas struct {
		Width      int       `yaml:"width"`
		Height     int       `yaml:"height"`
		Background []float64 `yaml:"background"`
	} `yaml:"canvas"`
	Turtle struct {
		X       *float64  `yaml:"x"`
		Y       *float64  `yaml:"y"`
		Heading float64   `yaml:"heading"`
		Unit    string    `yaml:"unit"`
		Color   []float64 `yaml:"color"`
		Width   *float64  `yaml:"width"`
		PenUp   bool      `yaml:"pen_up"`
	} `yaml:"turtle"`
}

func defaultConfig() *config {
	c := new(config)
	c.Canvas.Width = turtle.DefaultWidth
	c.Canvas.Height = turtle.DefaultHeight
	return c
}

// loadConfig loads the YAML configuration file fileName. An empty fileName
// returns the default configuration.
func loadConfig(fileName string) (*config, error) {
	if fileName == "" {
		return defaultConfig(), nil
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	defer f.Close()
	c, err := parseConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return c, nil
}

func parseConfig(r io.Reader) (*config, error) {
	c := defaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "config")
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return nil, errors.Errorf("config: invalid canvas size %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := c.color(c.Canvas.Background, turtle.Color{}); err != nil {
		return nil, errors.Wrap(err, "canvas background")
	}
	if _, err := c.turtleOptions(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *config) color(v []float64, def turtle.Color) (turtle.Color, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return turtle.RGB(v[0], v[1], v[2]), nil
	}
	return def, errors.Errorf("expected 3 color channels, got %d", len(v))
}

func (c *config) canvas() svg.Canvas {
	bg, _ := c.color(c.Canvas.Background, turtle.Color{})
	return svg.Canvas{Width: c.Canvas.Width, Height: c.Canvas.Height, Background: bg}
}

func (c *config) turtleOptions() ([]turtle.Option, error) {
	t := &c.Turtle
	x, y := float64(c.Canvas.Width)/2, float64(c.Canvas.Height)/2
	if t.X != nil {
		x = *t.X
	}
	if t.Y != nil {
		y = *t.Y
	}
	opts := []turtle.Option{turtle.Origin(x, y)}

	unit := turtle.Degree
	if t.Unit != "" {
		u, err := turtle.ParseUnit(t.Unit)
		if err != nil {
			return nil, errors.Wrap(err, "config")
		}
		unit = u
	}
	opts = append(opts, turtle.AngularUnit(unit), turtle.Heading(unit.ToRadians(t.Heading)))

	col, err := c.color(t.Color, turtle.White)
	if err != nil {
		return nil, errors.Wrap(err, "turtle color")
	}
	opts = append(opts, turtle.PenColor(col))
	if t.Width != nil {
		opts = append(opts, turtle.PenSize(*t.Width))
	}
	if t.PenUp {
		opts = append(opts, turtle.PenUp())
	}
	return opts, nil
}
