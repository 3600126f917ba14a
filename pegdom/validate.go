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
	"fmt"

	"golang.org/x/exp/slices"
)

// Validate cross-checks the tree's structural invariants: the
// parent/children links must form a single tree rooted at the
// sink, and the interval encoding must agree with them. A nil
// result means the tree is internally consistent. Build always
// produces a valid tree; Validate exists as a self-check for
// tests and for debugging graph adapters.
func (t *Tree) Validate() error {
	seen := 0
	for r := range t.recs {
		rec := &t.recs[r]
		if !rec.defined {
			return fmt.Errorf("pegdom: node n%d has no immediate dominator assignment", rec.node)
		}
		if rec.index < 0 || rec.maxIndex < rec.index {
			return fmt.Errorf("pegdom: node n%d has malformed interval [%d, %d]",
				rec.node, rec.index, rec.maxIndex)
		}
		if p := rec.parent; p == none {
			if int32(r) != t.root {
				return fmt.Errorf("pegdom: non-root node n%d has no parent", rec.node)
			}
		} else {
			prec := &t.recs[p]
			if slices.Index(prec.children, int32(r)) < 0 {
				return fmt.Errorf("pegdom: node n%d missing from the children of its parent n%d",
					rec.node, prec.node)
			}
			if rec.index <= prec.index || rec.maxIndex > prec.maxIndex {
				return fmt.Errorf("pegdom: interval [%d, %d] of n%d not nested in [%d, %d] of its parent n%d",
					rec.index, rec.maxIndex, rec.node,
					prec.index, prec.maxIndex, prec.node)
			}
		}
		for _, c := range rec.children {
			if t.recs[c].parent != int32(r) {
				return fmt.Errorf("pegdom: child n%d of n%d points at a different parent",
					t.recs[c].node, rec.node)
			}
			seen++
		}
	}
	if seen != len(t.recs)-1 {
		return fmt.Errorf("pegdom: %d child links for %d nodes", seen, len(t.recs))
	}
	return nil
}
