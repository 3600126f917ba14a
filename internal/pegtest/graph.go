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

// Package pegtest provides a small in-memory value graph for
// exercising PEG analyses in tests, plus a YAML fixture loader
// for describing graphs in testdata files.
package pegtest

import (
	"github.com/pegcomp/pegc/peg"
)

// Graph is a mutable value-dependency graph. Node identities
// are dense and assigned in creation order; operand and
// consumer edges iterate in insertion order, which keeps
// analyses built on top of it deterministic.
//
// The zero Graph is ready to use. Graph implements peg.Graph;
// the last node added is the sink unless SetSink overrides it.
type Graph struct {
	ops     [][]peg.NodeID
	uses    [][]peg.NodeID
	sink    peg.NodeID
	hasSink bool
}

// Node adds a node depending on the given operands, in order,
// and returns its identity.
func (g *Graph) Node(operands ...peg.NodeID) peg.NodeID {
	n := peg.NodeID(len(g.ops))
	g.ops = append(g.ops, nil)
	g.uses = append(g.uses, nil)
	for _, dep := range operands {
		g.AddOperand(n, dep)
	}
	return n
}

// AddOperand appends an operand edge n -> dep. It exists
// separately from Node so tests can tie operand cycles.
func (g *Graph) AddOperand(n, dep peg.NodeID) {
	g.ops[n] = append(g.ops[n], dep)
	g.uses[dep] = append(g.uses[dep], n)
}

// SetSink overrides the default sink (the last node added).
func (g *Graph) SetSink(n peg.NodeID) {
	g.sink = n
	g.hasSink = true
}

// Sink implements peg.Graph.
func (g *Graph) Sink() peg.NodeID {
	if g.hasSink {
		return g.sink
	}
	return peg.NodeID(len(g.ops) - 1)
}

// NumOperands implements peg.Graph.
func (g *Graph) NumOperands(n peg.NodeID) int {
	return len(g.ops[n])
}

// Operand implements peg.Graph.
func (g *Graph) Operand(n peg.NodeID, i int) peg.NodeID {
	return g.ops[n][i]
}

// EachConsumer implements peg.Graph.
func (g *Graph) EachConsumer(n peg.NodeID, fn func(peg.NodeID)) {
	for _, c := range g.uses[n] {
		fn(c)
	}
}
