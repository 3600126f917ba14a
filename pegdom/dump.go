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
	"io"
)

// Dump writes an indented rendering of the dominator tree to w
// for diagnostics. Children print in insertion order, one node
// per line, indented two spaces per tree level.
func (t *Tree) Dump(w io.Writer) error {
	type frame struct {
		rec   int32
		depth int
	}
	s := []frame{{rec: t.root}}
	for len(s) > 0 {
		f := s[len(s)-1]
		s = s[:len(s)-1]
		rec := &t.recs[f.rec]
		_, err := fmt.Fprintf(w, "%*sn%d\n", 2*f.depth, "", rec.node)
		if err != nil {
			return err
		}
		for i := len(rec.children) - 1; i >= 0; i-- {
			s = append(s, frame{rec: rec.children[i], depth: f.depth + 1})
		}
	}
	return nil
}
