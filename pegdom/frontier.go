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

// Frontier computes the dominance frontier of every node in the
// tree: DF(n) contains each node y such that n dominates one of
// y's consumers but does not strictly dominate y itself.
//
// g must be the same graph snapshot the tree was built from.
// The per-node frontiers are free of duplicates and come out in
// a deterministic order fixed by the graph's consumer ordering.
// Nodes with an empty frontier have no map entry.
func (t *Tree) Frontier(g peg.Graph) map[peg.NodeID][]peg.NodeID {
	df := make(map[peg.NodeID][]peg.NodeID)
	for r := range t.recs {
		rec := &t.recs[r]
		if rec.parent == none {
			continue // the root joins nothing
		}
		var preds []int32
		g.EachConsumer(rec.node, func(c peg.NodeID) {
			if cr := t.lookup(c); cr != none {
				preds = append(preds, cr)
			}
		})
		if len(preds) < 2 {
			// a sole consumer is the node's idom;
			// there is no chain to walk
			continue
		}
		for _, p := range preds {
			// walk each consumer's dominator chain up to
			// the node's idom, marking every stop
			for runner := p; runner != rec.parent; runner = t.recs[runner].parent {
				t.addFrontier(df, runner, rec.node)
			}
		}
	}
	return df
}

// addFrontier appends n to DF(runner) unless it is already the
// most recent entry. Appends for one n happen consecutively, so
// checking the tail is enough to keep the lists duplicate-free.
func (t *Tree) addFrontier(df map[peg.NodeID][]peg.NodeID, runner int32, n peg.NodeID) {
	key := t.recs[runner].node
	cur := df[key]
	if len(cur) > 0 && cur[len(cur)-1] == n {
		return
	}
	df[key] = append(cur, n)
}
