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

	"github.com/cqn-brwpna9/drw/internal/drwi"
	"github.com/cqn-brwpna9/drw/svg"
	"github.com/cqn-brwpna9/drw/turtle"
	"github.com/cqn-brwpna9/drw/vm"
	"github.com/pkg/errors"
)

// printSegments writes the segment history, one segment per line:
//
//	x1,y1 x2,y2 #rrggbb width
func printSegments(w io.Writer, segs []turtle.Segment) error {
	ew := drwi.NewErrWriter(w)
	for _, s := range segs {
		ew.Printf("%s,%s %s,%s #%02x%02x%02x %s\n",
			vm.FormatNumber(s.Start.X), vm.FormatNumber(s.Start.Y),
			vm.FormatNumber(s.End.X), vm.FormatNumber(s.End.Y),
			s.Color.R, s.Color.G, s.Color.B,
			vm.FormatNumber(s.Width))
		if ew.Err != nil {
			break
		}
	}
	return ew.Err
}

// exportSVG writes the instance's drawing to fileName.
func exportSVG(fileName string, c svg.Canvas, i *vm.Instance) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "svg export")
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = errors.Wrap(e, "svg export")
		}
	}()
	return errors.Wrap(svg.Write(f, c, i.Turtle().Segments()), fileName)
}
