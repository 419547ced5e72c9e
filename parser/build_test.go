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
	"reflect"
	"testing"

	"github.com/cqn-brwpna9/drw/vm"
)

// build trusts its input: unknown characters are skipped and unclosed bodies
// run to the end.
func TestBuildUnvalidated(t *testing.T) {
	nodes := build([]rune("1|2 x+"), 0)
	exp := []vm.Node{
		vm.Number{Value: 1, Pos: 1},
		vm.Number{Value: 2, Pos: 3},
		vm.Command{Op: vm.OpAdd, Pos: 6},
	}
	if !reflect.DeepEqual(nodes, exp) {
		t.Errorf("Expected %#v, got %#v", exp, nodes)
	}

	nodes = build([]rune("3[1"), 0)
	exp = []vm.Node{
		vm.Number{Value: 3, Pos: 1},
		vm.Control{Kind: vm.Repeat, Pos: 2, Body: []vm.Node{vm.Number{Value: 1, Pos: 3}}},
	}
	if !reflect.DeepEqual(nodes, exp) {
		t.Errorf("Expected %#v, got %#v", exp, nodes)
	}
}
