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

// a node owns its two subtrees, there are no parent links
type node[K, V any] struct {
	key    K
	value  V
	height int // 1 for a leaf
	size   int // nodes in this subtree, including this one
	left   *node[K, V]
	right  *node[K, V]
}

// new nodes always start out as leaves
func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value, height: 1, size: 1}
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func size[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func balanceFactor[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// update recomputes height and size from the children, which must
// already be up to date.
func (n *node[K, V]) update() {
	n.height = max(height(n.left), height(n.right)) + 1
	n.size = size(n.left) + size(n.right) + 1
}

// rotateLeft turns (n a (p b c)) into (p (n a b) c) and returns p.
func rotateLeft[K, V any](n *node[K, V]) *node[K, V] {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	// n is now below pivot, so it goes first
	n.update()
	pivot.update()

	return pivot
}

// rotateRight turns (n (p a b) c) into (p a (n b c)) and returns p.
func rotateRight[K, V any](n *node[K, V]) *node[K, V] {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	n.update()
	pivot.update()

	return pivot
}

func minNode[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
