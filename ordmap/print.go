// Copyright 2025 Naren Yellavula
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

package ordmap

import (
	"bufio"
	"fmt"
	"io"
)

// Print writes one "key -> value" line per entry in ascending order.
func (tree *Tree[K, V]) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for k, v := range tree.All() {
		fmt.Fprintf(bw, "%v -> %v\n", k, v)
	}
	return bw.Flush()
}

// to control the drawing of connectors
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// Draw writes a sideways picture of the tree, right subtree on top,
// with each node's height and subtree size. It returns the depth drawn.
func (tree *Tree[K, V]) Draw(w io.Writer, withValues bool) (int, error) {
	bw := bufio.NewWriter(w)
	depth := draw(bw, tree.root, "", branchRoot, withValues)
	return depth, bw.Flush()
}

func draw[K, V any](w io.Writer, n *node[K, V], prefix string, br branch, withValues bool) int {
	if n == nil {
		return 0
	}
	rd := 0
	ld := 0
	if n.right != nil {
		t := "       "
		if br == branchLeft {
			t = "|      "
		}
		rd = draw(w, n.right, prefix+t, branchRight, withValues)
	}
	switch br {
	case branchRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case branchLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case branchRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if withValues {
		fmt.Fprintf(w, "%v → %v h:%d n:%d\n", n.key, n.value, n.height, n.size)
	} else {
		fmt.Fprintf(w, "%v h:%d n:%d\n", n.key, n.height, n.size)
	}
	if n.left != nil {
		t := "       "
		if br == branchRight {
			t = "|      "
		}
		ld = draw(w, n.left, prefix+t, branchLeft, withValues)
	}
	return 1 + max(rd, ld)
}
