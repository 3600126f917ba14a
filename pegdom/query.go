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

// Root returns the tree root, i.e. the graph's sink node.
func (t *Tree) Root() peg.NodeID {
	return t.recs[t.root].node
}

// NumNodes returns the number of nodes that received dominance
// records, i.e. the operand-edge closure of the sink.
func (t *Tree) NumNodes() int {
	return len(t.recs)
}

// Known reports whether n has dominance information. It is
// false for nodes that were not reachable from the sink when
// the tree was built, which can legitimately happen while a
// caller is still assembling its graph.
func (t *Tree) Known(n peg.NodeID) bool {
	_, ok := t.byID[n]
	return ok
}

// Dominates reports whether a dominates b. The relation is
// non-strict: every node dominates itself. If either node has
// no dominance information, Dominates reports false; use Known
// to distinguish that case.
func (t *Tree) Dominates(a, b peg.NodeID) bool {
	ar := t.lookup(a)
	br := t.lookup(b)
	if ar == none || br == none {
		return false
	}
	bi := t.recs[br].index
	return bi >= t.recs[ar].index && bi <= t.recs[ar].maxIndex
}

// StrictlyDominates reports whether a dominates b and a != b.
func (t *Tree) StrictlyDominates(a, b peg.NodeID) bool {
	return a != b && t.Dominates(a, b)
}

// Parent returns the immediate dominator of n. The second
// result is false for the root, which has no dominator, and
// for nodes without dominance information.
func (t *Tree) Parent(n peg.NodeID) (peg.NodeID, bool) {
	r := t.lookup(n)
	if r == none || t.recs[r].parent == none {
		return peg.NoNode, false
	}
	return t.recs[t.recs[r].parent].node, true
}

// NumChildren returns the number of nodes immediately dominated
// by n, or zero if n has no dominance information.
func (t *Tree) NumChildren(n peg.NodeID) int {
	r := t.lookup(n)
	if r == none {
		return 0
	}
	return len(t.recs[r].children)
}

// EachChild calls fn for each node immediately dominated by n,
// in insertion order, stopping early if fn returns false.
// Iteration is restartable: each call walks the same sequence.
func (t *Tree) EachChild(n peg.NodeID, fn func(peg.NodeID) bool) {
	r := t.lookup(n)
	if r == none {
		return
	}
	for _, c := range t.recs[r].children {
		if !fn(t.recs[c].node) {
			return
		}
	}
}

// Depth returns the depth of n in the dominator tree, with the
// root at depth zero, or -1 if n has no dominance information.
func (t *Tree) Depth(n peg.NodeID) int {
	r := t.lookup(n)
	if r == none {
		return -1
	}
	d := 0
	for t.recs[r].parent != none {
		r = t.recs[r].parent
		d++
	}
	return d
}

// NearestCommonDominator returns the deepest node that
// dominates both a and b. The result is a or b itself when one
// dominates the other, and the root in the worst case. The
// second result is false if either node has no dominance
// information.
func (t *Tree) NearestCommonDominator(a, b peg.NodeID) (peg.NodeID, bool) {
	ar := t.lookup(a)
	br := t.lookup(b)
	if ar == none || br == none {
		return peg.NoNode, false
	}
	// pre-order indices decrease toward the root, so lift
	// whichever side sits deeper in index order
	for ar != br {
		for t.recs[ar].index > t.recs[br].index {
			ar = t.recs[ar].parent
		}
		for t.recs[br].index > t.recs[ar].index {
			br = t.recs[br].parent
		}
	}
	return t.recs[ar].node, true
}
