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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pegcomp/pegc/peg"
)

const diamond = `
sink: r
nodes:
  r: [x]
  x: [a, b]
  a: [z]
  b: [z]
  z: []
`

func TestLoad(t *testing.T) {
	g, fx, err := Load([]byte(diamond))
	require.NoError(t, err)

	// identities follow lexicographic name order
	require.Equal(t, peg.NodeID(0), fx.IDs["a"])
	require.Equal(t, peg.NodeID(1), fx.IDs["b"])
	require.Equal(t, peg.NodeID(2), fx.IDs["r"])
	require.Equal(t, peg.NodeID(3), fx.IDs["x"])
	require.Equal(t, peg.NodeID(4), fx.IDs["z"])

	assert.Equal(t, fx.IDs["r"], g.Sink())
	assert.Equal(t, 2, g.NumOperands(fx.IDs["x"]))
	assert.Equal(t, fx.IDs["a"], g.Operand(fx.IDs["x"], 0))
	assert.Equal(t, fx.IDs["b"], g.Operand(fx.IDs["x"], 1))

	var consumers []peg.NodeID
	g.EachConsumer(fx.IDs["z"], func(c peg.NodeID) {
		consumers = append(consumers, c)
	})
	assert.Equal(t, []peg.NodeID{fx.IDs["a"], fx.IDs["b"]}, consumers)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ``},
		{"no-sink", "nodes:\n  a: []\n"},
		{"sink-undeclared", "sink: q\nnodes:\n  a: []\n"},
		{"operand-undeclared", "sink: a\nnodes:\n  a: [ghost]\n"},
		{"unknown-field", "sink: a\nnodes:\n  a: []\nbogus: 1\n"},
		{"idom-undeclared-node", "sink: a\nnodes:\n  a: []\nidom:\n  ghost: a\n"},
		{"idom-undeclared-target", "sink: a\nnodes:\n  a: []\nidom:\n  a: ghost\n"},
		{"not-yaml", "{{{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Load([]byte(tc.in))
			assert.Error(t, err)
		})
	}
}

func TestGraphCycleEdges(t *testing.T) {
	var g Graph
	a := g.Node()
	b := g.Node(a)
	g.AddOperand(a, b)
	require.Equal(t, 1, g.NumOperands(a))
	require.Equal(t, b, g.Operand(a, 0))

	var uses []peg.NodeID
	g.EachConsumer(a, func(c peg.NodeID) {
		uses = append(uses, c)
	})
	require.Equal(t, []peg.NodeID{b}, uses)
}
