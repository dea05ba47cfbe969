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

import "iter"

// Entry is a key and its value.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// All returns an iterator over the entries in ascending key order.
// The tree must not be modified while iterating.
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		tree.root.walk(yield)
	}
}

// walk visits the subtree in order and stops as soon as yield does.
func (n *node[K, V]) walk(yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return n.left.walk(yield) && yield(n.key, n.value) && n.right.walk(yield)
}

// Keys returns all keys in ascending order.
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.Size())
	inorder(tree.root, &keys)
	return keys
}

// Values returns all values in ascending key order.
func (tree *Tree[K, V]) Values() []V {
	values := make([]V, 0, tree.Size())
	for _, v := range tree.All() {
		values = append(values, v)
	}
	return values
}

func inorder[K, V any](n *node[K, V], keys *[]K) {
	if n == nil {
		return
	}
	inorder(n.left, keys)
	*keys = append(*keys, n.key)
	inorder(n.right, keys)
}

// Range returns, in ascending order, every entry whose key satisfies
// lo <= key < hi.
func (tree *Tree[K, V]) Range(lo, hi K) []Entry[K, V] {
	var results []Entry[K, V]
	if tree.isNilKey(lo) || tree.isNilKey(hi) {
		return results
	}
	tree.rangeSearch(tree.root, lo, hi, &results)
	return results
}

func (tree *Tree[K, V]) rangeSearch(n *node[K, V], lo, hi K, results *[]Entry[K, V]) {
	if n == nil {
		return
	}

	aboveLo := tree.compare(n.key, lo) >= 0
	belowHi := tree.compare(n.key, hi) < 0

	// smaller keys can only be in range if this one is not below lo
	if aboveLo {
		tree.rangeSearch(n.left, lo, hi, results)
	}

	if aboveLo && belowHi {
		*results = append(*results, Entry[K, V]{Key: n.key, Value: n.value})
	}

	if belowHi {
		tree.rangeSearch(n.right, lo, hi, results)
	}
}

// RangeCount returns the number of keys with lo <= key < hi without
// visiting them.
func (tree *Tree[K, V]) RangeCount(lo, hi K) int {
	if tree.isNilKey(lo) || tree.isNilKey(hi) || tree.compare(hi, lo) <= 0 {
		return 0
	}
	return tree.Rank(hi) - tree.Rank(lo)
}
