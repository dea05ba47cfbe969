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

import "fmt"

// IsBST reports whether an in-order walk yields strictly increasing keys.
func (tree *Tree[K, V]) IsBST() bool {
	keys := tree.Keys()
	for i := 1; i < len(keys); i++ {
		if tree.compare(keys[i-1], keys[i]) >= 0 {
			return false
		}
	}
	return true
}

// IsBalanced reports whether the heights of the two subtrees of every
// node differ by at most one. Heights are recomputed, not read from
// the nodes.
func (tree *Tree[K, V]) IsBalanced() bool {
	_, ok := balanced(tree.root)
	return ok
}

func balanced[K, V any](n *node[K, V]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, ok := balanced(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := balanced(n.right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

// IsSizeConsistent reports whether every node's recorded subtree size
// and height match the values recomputed from its children.
func (tree *Tree[K, V]) IsSizeConsistent() bool {
	_, _, ok := consistent(tree.root)
	return ok
}

func consistent[K, V any](n *node[K, V]) (int, int, bool) {
	if n == nil {
		return 0, 0, true
	}
	ls, lh, ok := consistent(n.left)
	if !ok {
		return 0, 0, false
	}
	rs, rh, ok := consistent(n.right)
	if !ok {
		return 0, 0, false
	}
	s := ls + rs + 1
	h := max(lh, rh) + 1
	if n.size != s || n.height != h {
		return 0, 0, false
	}
	return s, h, true
}

// Check verifies ordering, size bookkeeping and, for a balanced tree,
// the AVL condition.
func (tree *Tree[K, V]) Check() error {
	if !tree.IsBST() {
		return fmt.Errorf("%w: keys out of order", ErrCorrupt)
	}
	if !tree.IsSizeConsistent() {
		return fmt.Errorf("%w: stale size or height", ErrCorrupt)
	}
	if tree.balanced && !tree.IsBalanced() {
		return fmt.Errorf("%w: height imbalance", ErrCorrupt)
	}
	return nil
}
