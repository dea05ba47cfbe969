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
	"cmp"
	"fmt"
	"reflect"
)

// Tree is an ordered map from K to V.
type Tree[K, V any] struct {
	root     *node[K, V]
	compare  func(a, b K) int
	balanced bool
	nilable  bool // K can hold a nil value
}

type config struct {
	balanced bool
}

// Option customises a Tree at construction time.
type Option func(*config)

// Unbalanced builds a plain binary search tree: no rotations are done,
// so the height is only bounded by the insertion order.
func Unbalanced() Option {
	return func(c *config) {
		c.balanced = false
	}
}

// New returns an empty AVL tree ordered by cmp.Compare.
func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	return newTree[K, V](cmp.Compare[K], opts)
}

// NewFunc returns an empty AVL tree ordered by compare, which must
// return a negative number, zero or a positive number when a is less
// than, equal to or greater than b.
func NewFunc[K, V any](compare func(a, b K) int, opts ...Option) (*Tree[K, V], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: nil comparison function", ErrInvalidArgument)
	}
	return newTree[K, V](compare, opts), nil
}

func newTree[K, V any](compare func(a, b K) int, opts []Option) *Tree[K, V] {
	c := config{balanced: true}
	for _, opt := range opts {
		opt(&c)
	}

	nilable := false
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		nilable = true
	}

	return &Tree[K, V]{
		compare:  compare,
		balanced: c.balanced,
		nilable:  nilable,
	}
}

// isNilKey reports whether key is a nil pointer, interface, map, slice,
// func or chan.
func (tree *Tree[K, V]) isNilKey(key K) bool {
	if !tree.nilable {
		return false
	}
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Size returns the number of keys in the tree.
func (tree *Tree[K, V]) Size() int {
	return size(tree.root)
}

// IsEmpty is true when the tree holds no keys.
func (tree *Tree[K, V]) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the tree: 0 when empty, 1 for a single node.
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// Balanced reports whether the tree rebalances itself.
func (tree *Tree[K, V]) Balanced() bool {
	return tree.balanced
}

// Get returns the value stored for key.
func (tree *Tree[K, V]) Get(key K) (V, error) {
	var zero V
	if tree.isNilKey(key) {
		return zero, fmt.Errorf("%w: Get called with a nil key", ErrInvalidArgument)
	}
	n := tree.search(tree.root, key)
	if n == nil {
		return zero, ErrKeyNotFound
	}
	return n.value, nil
}

// Contains reports whether key is present.
func (tree *Tree[K, V]) Contains(key K) bool {
	if tree.isNilKey(key) {
		return false
	}
	return tree.search(tree.root, key) != nil
}

func (tree *Tree[K, V]) search(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}

	c := tree.compare(key, n.key)
	if c < 0 {
		return tree.search(n.left, key)
	} else if c > 0 {
		return tree.search(n.right, key)
	}
	return n
}

// Put inserts key with value, or overwrites the value if key is
// already present.
func (tree *Tree[K, V]) Put(key K, value V) error {
	if tree.isNilKey(key) {
		return fmt.Errorf("%w: Put called with a nil key", ErrInvalidArgument)
	}
	tree.root = tree.put(tree.root, key, value)
	return nil
}

func (tree *Tree[K, V]) put(n *node[K, V], key K, value V) *node[K, V] {
	if n == nil {
		return newNode(key, value)
	}

	c := tree.compare(key, n.key)
	if c < 0 {
		n.left = tree.put(n.left, key, value)
	} else if c > 0 {
		n.right = tree.put(n.right, key, value)
	} else {
		// same key: only the value changes
		n.value = value
		return n
	}

	n.update()
	return tree.rebalance(n)
}

// Delete removes key from the tree.
func (tree *Tree[K, V]) Delete(key K) error {
	if tree.isNilKey(key) {
		return fmt.Errorf("%w: Delete called with a nil key", ErrInvalidArgument)
	}
	root, removed := tree.delete(tree.root, key)
	if !removed {
		return ErrKeyNotFound
	}
	tree.root = root
	return nil
}

func (tree *Tree[K, V]) delete(n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}

	removed := false
	c := tree.compare(key, n.key)
	if c < 0 {
		n.left, removed = tree.delete(n.left, key)
	} else if c > 0 {
		n.right, removed = tree.delete(n.right, key)
	} else {
		if n.right == nil {
			return n.left, true
		}
		if n.left == nil {
			return n.right, true
		}
		// Two children: take over the successor and remove it from
		// the right subtree, where it has no left child.
		successor := minNode(n.right)
		n.key = successor.key
		n.value = successor.value
		n.right = tree.deleteMin(n.right)
		removed = true
	}

	if !removed {
		return n, false
	}

	n.update()
	return tree.rebalance(n), true
}

// rebalance restores the AVL condition at n, whose children are
// balanced and whose height and size are current. It returns the root
// of the repaired subtree.
func (tree *Tree[K, V]) rebalance(n *node[K, V]) *node[K, V] {
	if !tree.balanced {
		return n
	}

	bf := balanceFactor(n)

	// Left-heavy
	if bf > 1 {
		if balanceFactor(n.left) >= 0 {
			return rotateRight(n)
		}
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}

	// Right-heavy
	if bf < -1 {
		if balanceFactor(n.right) <= 0 {
			return rotateLeft(n)
		}
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}
