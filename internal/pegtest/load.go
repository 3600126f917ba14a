// Copyright 2024 Pegcomp, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package pegtest

import (
	"fmt"
	"os"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"sigs.k8s.io/yaml"

	"github.com/pegcomp/pegc/peg"
)

// Fixture is the YAML shape of a graph test case:
//
//	sink: r
//	nodes:
//	  r: [x, y]
//	  x: [z]
//	  y: [z]
//	  z: []
//	idom:
//	  x: r
//	  y: r
//	  z: r
//
// nodes maps each node name to its operands, in order. idom is
// optional and gives the expected immediate dominator per
// non-sink node for tests that verify a whole tree.
type Fixture struct {
	Sink  string              `json:"sink"`
	Nodes map[string][]string `json:"nodes"`
	Idom  map[string]string   `json:"idom,omitempty"`

	// IDs translates fixture names to the node identities of
	// the built graph. Populated by Load.
	IDs map[string]peg.NodeID `json:"-"`
}

// Load parses a YAML fixture and builds the described graph.
// Node identities are assigned in lexicographic name order so a
// fixture always produces the same graph.
func Load(data []byte) (*Graph, *Fixture, error) {
	var fx Fixture
	if err := yaml.UnmarshalStrict(data, &fx); err != nil {
		return nil, nil, fmt.Errorf("parsing fixture: %w", err)
	}
	if fx.Sink == "" {
		return nil, nil, fmt.Errorf("fixture has no sink")
	}
	names := maps.Keys(fx.Nodes)
	slices.Sort(names)

	g := &Graph{}
	fx.IDs = make(map[string]peg.NodeID, len(names))
	for _, name := range names {
		fx.IDs[name] = g.Node()
	}
	for _, name := range names {
		for _, dep := range fx.Nodes[name] {
			d, ok := fx.IDs[dep]
			if !ok {
				return nil, nil, fmt.Errorf("node %q has undeclared operand %q", name, dep)
			}
			g.AddOperand(fx.IDs[name], d)
		}
	}
	sink, ok := fx.IDs[fx.Sink]
	if !ok {
		return nil, nil, fmt.Errorf("sink %q is not a declared node", fx.Sink)
	}
	g.SetSink(sink)
	for n, d := range fx.Idom {
		if _, ok := fx.IDs[n]; !ok {
			return nil, nil, fmt.Errorf("idom entry for undeclared node %q", n)
		}
		if _, ok := fx.IDs[d]; !ok {
			return nil, nil, fmt.Errorf("idom of %q names undeclared node %q", n, d)
		}
	}
	return g, &fx, nil
}

// LoadFile reads and parses the fixture at path.
func LoadFile(path string) (*Graph, *Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	g, fx, err := Load(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, fx, nil
}
