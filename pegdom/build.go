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

package pegdom

import (
	"github.com/pegcomp/pegc/peg"
)

// Build computes the dominator tree for the value graph g.
//
// Construction is deterministic and purely sequential: a
// post-order numbering pass over operand edges, a fixpoint
// over immediate dominators, and a final interval-encoding
// pass over the finished tree. Exactly the nodes reachable
// from g.Sink() via operand edges receive dominance records.
//
// Build panics if the graph is malformed, i.e. if it reaches a
// non-sink node none of whose consumers lies on a path to the
// sink. That indicates a bug in the caller's graph
// construction, not a recoverable condition.
func Build(g peg.Graph) *Tree {
	t := &Tree{byID: make(map[peg.NodeID]int32)}

	// The sink is the tree root by construction; it is the
	// only node whose idom is defined before solving starts.
	t.root = t.getOrCreate(g.Sink())
	t.recs[t.root].defined = true

	t.indexPostorder(g)
	for t.sweep(g) {
	}
	t.reindex()
	return t
}

// stack frame for the operand-edge walks; index counts how many
// operand edges have been explored already.
type nodeAndIndex struct {
	rec   int32
	index int
}

// indexPostorder walks operand edges depth-first from the sink
// and assigns each reachable node its post-order number. Record
// creation doubles as the visited mark, so shared subexpressions
// and operand cycles are traversed once. An explicit stack keeps
// arbitrarily deep graphs from exhausting the goroutine stack.
func (t *Tree) indexPostorder(g peg.Graph) {
	counter := int32(0)
	s := make([]nodeAndIndex, 0, 32)
	s = append(s, nodeAndIndex{rec: t.root})
	for len(s) > 0 {
		tos := len(s) - 1
		x := s[tos]
		n := t.recs[x.rec].node
		if i := x.index; i < g.NumOperands(n) {
			s[tos].index++
			dep := g.Operand(n, i)
			if _, ok := t.byID[dep]; !ok {
				s = append(s, nodeAndIndex{rec: t.getOrCreate(dep)})
			}
			continue
		}
		s = s[:tos]
		// all operands handled: number the node
		t.recs[x.rec].index = counter
		counter++
	}
}

// sweep performs one full solving pass and reports whether any
// immediate dominator changed. Nodes are visited in depth-first
// pre-order over operand edges so that a node is processed
// before the values it depends on; that ordering guarantees
// every non-root node sees at least one consumer with a defined
// idom, and lets new information propagate transitively within
// a single pass. Each sweep uses a fresh visitation epoch so
// all nodes are reprocessed.
func (t *Tree) sweep(g peg.Graph) bool {
	t.epoch++
	changed := false
	s := make([]int32, 0, 64)
	t.recs[t.root].epoch = t.epoch
	s = append(s, t.root)
	for len(s) > 0 {
		r := s[len(s)-1]
		s = s[:len(s)-1]
		if r != t.root && t.update(g, r) {
			changed = true
		}
		n := t.recs[r].node
		// push operands in reverse so they pop in order
		for i := g.NumOperands(n) - 1; i >= 0; i-- {
			d := t.lookup(g.Operand(n, i))
			if t.recs[d].epoch != t.epoch {
				t.recs[d].epoch = t.epoch
				s = append(s, d)
			}
		}
	}
	return changed
}

// update recomputes the immediate dominator of r by folding the
// ancestor-intersection over all of r's consumers that already
// have a defined idom. Consumers outside the reachable set (and
// hence without records) are ignored.
func (t *Tree) update(g peg.Graph, r int32) bool {
	idom := none
	g.EachConsumer(t.recs[r].node, func(c peg.NodeID) {
		cr := t.lookup(c)
		if cr == none || !t.recs[cr].defined {
			return
		}
		if idom == none {
			idom = cr
		} else if cr != idom {
			idom = t.intersect(cr, idom)
		}
	})
	if idom == none {
		// Visiting in dependency order with the root defined
		// first makes this impossible on well-formed graphs.
		panic("pegdom: reachable node has no dominance-defined consumer")
	}
	if t.recs[r].parent != idom {
		t.setParent(idom, r)
		t.recs[r].defined = true
		return true
	}
	return false
}

// intersect returns the nearest common ancestor of a and b in
// the partially constructed tree. Post-order numbers increase
// from leaves toward the sink, so the walk repeatedly lifts
// whichever side sits lower until the chains meet.
func (t *Tree) intersect(a, b int32) int32 {
	for a != b {
		for t.recs[a].index < t.recs[b].index {
			a = t.recs[a].parent
		}
		for t.recs[b].index < t.recs[a].index {
			b = t.recs[b].parent
		}
	}
	return a
}

// reindex walks the finished tree and overwrites each record's
// index with its pre-order position, and maxIndex with the
// largest position assigned anywhere in its subtree. Ancestry
// queries then reduce to interval containment. Only children
// links are consulted; the graph is no longer needed.
func (t *Tree) reindex() {
	counter := int32(0)
	s := make([]nodeAndIndex, 0, 32)
	t.recs[t.root].index = counter
	counter++
	s = append(s, nodeAndIndex{rec: t.root})
	for len(s) > 0 {
		tos := len(s) - 1
		x := s[tos]
		kids := t.recs[x.rec].children
		if i := x.index; i < len(kids) {
			s[tos].index++
			c := kids[i]
			t.recs[c].index = counter
			counter++
			s = append(s, nodeAndIndex{rec: c})
			continue
		}
		s = s[:tos]
		t.recs[x.rec].maxIndex = counter - 1
	}
}
