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

// Min returns the smallest key.
func (tree *Tree[K, V]) Min() (K, error) {
	if tree.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return minNode(tree.root).key, nil
}

// Max returns the largest key.
func (tree *Tree[K, V]) Max() (K, error) {
	if tree.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return maxNode(tree.root).key, nil
}

// Floor returns the largest key less than or equal to key. The boolean
// is false when every stored key is greater than key.
func (tree *Tree[K, V]) Floor(key K) (K, bool) {
	var best *node[K, V]
	if !tree.isNilKey(key) {
		n := tree.root
		for n != nil {
			c := tree.compare(key, n.key)
			if c == 0 {
				best = n
				break
			}
			if c < 0 {
				n = n.left
			} else {
				// candidate; a closer one may sit in the right subtree
				best = n
				n = n.right
			}
		}
	}
	if best == nil {
		var zero K
		return zero, false
	}
	return best.key, true
}

// Ceiling returns the smallest key greater than or equal to key. The
// boolean is false when every stored key is less than key.
func (tree *Tree[K, V]) Ceiling(key K) (K, bool) {
	var best *node[K, V]
	if !tree.isNilKey(key) {
		n := tree.root
		for n != nil {
			c := tree.compare(key, n.key)
			if c == 0 {
				best = n
				break
			}
			if c > 0 {
				n = n.right
			} else {
				best = n
				n = n.left
			}
		}
	}
	if best == nil {
		var zero K
		return zero, false
	}
	return best.key, true
}

// Rank returns the number of keys strictly less than key. The key does
// not have to be present.
func (tree *Tree[K, V]) Rank(key K) int {
	if tree.isNilKey(key) {
		return 0
	}
	return tree.rank(tree.root, key)
}

func (tree *Tree[K, V]) rank(n *node[K, V], key K) int {
	if n == nil {
		return 0
	}

	c := tree.compare(key, n.key)
	if c < 0 {
		return tree.rank(n.left, key)
	} else if c > 0 {
		return size(n.left) + 1 + tree.rank(n.right, key)
	}
	return size(n.left)
}

// Select returns the key with rank k, i.e. the k-th smallest key
// counting from 0. The boolean is false when k is not in [0, Size()).
func (tree *Tree[K, V]) Select(k int) (K, bool) {
	if k < 0 || k >= tree.Size() {
		var zero K
		return zero, false
	}
	return selectNode(tree.root, k).key, true
}

func selectNode[K, V any](n *node[K, V], k int) *node[K, V] {
	if n == nil {
		return nil
	}

	nl := size(n.left)
	if k < nl {
		return selectNode(n.left, k)
	}
	if k > nl {
		// skip the left subtree and this node
		return selectNode(n.right, k-nl-1)
	}
	return n
}

// DeleteMin removes the smallest key.
func (tree *Tree[K, V]) DeleteMin() error {
	if tree.root == nil {
		return ErrEmptyTree
	}
	tree.root = tree.deleteMin(tree.root)
	return nil
}

func (tree *Tree[K, V]) deleteMin(n *node[K, V]) *node[K, V] {
	if n.left == nil {
		return n.right
	}
	n.left = tree.deleteMin(n.left)
	n.update()
	return tree.rebalance(n)
}

// DeleteMax removes the largest key.
func (tree *Tree[K, V]) DeleteMax() error {
	if tree.root == nil {
		return ErrEmptyTree
	}
	tree.root = tree.deleteMax(tree.root)
	return nil
}

func (tree *Tree[K, V]) deleteMax(n *node[K, V]) *node[K, V] {
	if n.right == nil {
		return n.left
	}
	n.right = tree.deleteMax(n.right)
	n.update()
	return tree.rebalance(n)
}
