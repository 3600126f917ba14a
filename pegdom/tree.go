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

// Package pegdom computes dominator trees over program
// expression graphs.
//
// The dominance relation is taken along consumer edges: a node
// A dominates a node B when every path from B to the graph's
// sink (following consumer edges) passes through A. The sink is
// always the root of the dominator tree.
//
// Build performs a one-shot batch construction using the
// iterative "simple, fast dominance" algorithm (Cooper, Harvey,
// Kennedy) adapted to the inverted edge orientation of a value
// graph, then interval-encodes the finished tree so that
// Dominates answers in constant time. The resulting Tree is
// immutable; queries may run concurrently from any number of
// goroutines.
package pegdom

import (
	"golang.org/x/exp/slices"

	"github.com/pegcomp/pegc/peg"
)

// none marks an empty record reference.
const none = int32(-1)

// record is the per-node dominance state. Records reference one
// another by arena index, never by pointer, so re-parenting
// during the fixpoint phase can never leave a dangling link.
type record struct {
	node    peg.NodeID
	parent  int32 // record index of the immediate dominator
	defined bool  // has received at least one idom assignment
	epoch   uint32

	// During solving, index holds the node's operand-order
	// post-order number. After the tree is finished it is
	// overwritten with the node's pre-order position in the
	// dominator tree, and maxIndex with the largest position
	// inside its subtree, so that ancestry reduces to an
	// interval test.
	index    int32
	maxIndex int32

	children []int32 // record indices, insertion order
}

// Tree is a dominator tree over one snapshot of a value graph.
// A Tree holds no reference to the graph it was built from;
// releasing the Tree releases everything it owns.
type Tree struct {
	recs  []record
	byID  map[peg.NodeID]int32
	root  int32
	epoch uint32
}

// getOrCreate returns the record index for n, allocating a
// zeroed record on first sight. Records are never freed
// individually; the arena lives exactly as long as the Tree.
func (t *Tree) getOrCreate(n peg.NodeID) int32 {
	if r, ok := t.byID[n]; ok {
		return r
	}
	r := int32(len(t.recs))
	t.recs = append(t.recs, record{
		node:     n,
		parent:   none,
		index:    -1,
		maxIndex: -1,
	})
	t.byID[n] = r
	return r
}

// lookup returns the record index for n, or none if n was not
// reachable from the sink during construction.
func (t *Tree) lookup(n peg.NodeID) int32 {
	if r, ok := t.byID[n]; ok {
		return r
	}
	return none
}

// setParent detaches child from its current parent (if any) and
// appends it to newParent's children. The child must occur in
// its old parent's children list exactly once; anything else
// means the tree links are corrupt.
func (t *Tree) setParent(newParent, child int32) {
	if p := t.recs[child].parent; p != none {
		i := slices.Index(t.recs[p].children, child)
		if i < 0 {
			panic("pegdom: child record missing from its parent's children")
		}
		t.recs[p].children = slices.Delete(t.recs[p].children, i, i+1)
	}
	t.recs[child].parent = newParent
	t.recs[newParent].children = append(t.recs[newParent].children, child)
}
