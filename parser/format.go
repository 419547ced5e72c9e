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
	"io"
	"strings"

	"github.com/cqn-brwpna9/drw/internal/drwi"
	"github.com/cqn-brwpna9/drw/vm"
)

// Format writes the canonical source code of the given nodes to the specified
// io.Writer: nodes are separated by a single space and control structure
// bodies are enclosed in their brackets. Parsing the output yields the same
// tree, save for Pos fields, as long as Number nodes hold non-negative
// integers no larger than 2^53.
func Format(w io.Writer, nodes []vm.Node) error {
	ew := drwi.NewErrWriter(w)
	format(ew, nodes)
	return ew.Err
}

// Sprint returns the canonical source code of the given nodes.
func Sprint(nodes []vm.Node) string {
	var b strings.Builder
	Format(&b, nodes)
	return b.String()
}

func format(ew *drwi.ErrWriter, nodes []vm.Node) {
	for n, node := range nodes {
		if n > 0 {
			ew.WriteByte(' ')
		}
		switch node := node.(type) {
		case vm.Number:
			ew.WriteString(vm.FormatNumber(node.Value))
		case vm.Command:
			ew.WriteString(string(node.Op.Symbol()))
		case vm.Control:
			ew.WriteString(string(node.Kind.Open()))
			format(ew, node.Body)
			ew.WriteString(string(node.Kind.Close()))
		case vm.Block:
			format(ew, node.Body)
		}
	}
}

// DumpTree writes the program tree to the specified io.Writer, one node per
// line with its source column, bodies indented by one tab per level.
func DumpTree(w io.Writer, p *vm.Program) error {
	ew := drwi.NewErrWriter(w)
	dumpTree(ew, p.Root.Body, 0)
	return ew.Err
}

func dumpTree(ew *drwi.ErrWriter, nodes []vm.Node, depth int) {
	indent := strings.Repeat("\t", depth)
	for _, node := range nodes {
		switch node := node.(type) {
		case vm.Number:
			ew.Printf("% 6d\t%s%s\n", node.Pos, indent, vm.FormatNumber(node.Value))
		case vm.Command:
			ew.Printf("% 6d\t%s%c %s\n", node.Pos, indent, node.Op.Symbol(), node.Op)
		case vm.Control:
			ew.Printf("% 6d\t%s%c %s\n", node.Pos, indent, node.Kind.Open(), node.Kind)
			dumpTree(ew, node.Body, depth+1)
			ew.Printf("% 6s\t%s%c\n", "", indent, node.Kind.Close())
		case vm.Block:
			dumpTree(ew, node.Body, depth)
		}
	}
}
