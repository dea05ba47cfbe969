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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type treeTestCase struct {
	Name          string
	InitialKeys   []string
	KeysToInsert  []string
	KeysToDelete  []string
	ExpectedOrder []string // in-order keys after all operations
	ExpectedRoot  string
}

func TestTreeOperations(t *testing.T) {
	testCases := []treeTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
			ExpectedRoot:  "banana",
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []string{"apple"},
			KeysToInsert:  []string{"banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
			ExpectedRoot:  "banana",
		},
		{
			Name:          "Deletion with Balancing (Right-Heavy)",
			InitialKeys:   []string{"cherry", "banana", "apple"},
			KeysToDelete:  []string{"cherry"},
			ExpectedOrder: []string{"apple", "banana"},
			ExpectedRoot:  "banana",
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"elephant", "bird"},
			KeysToDelete:  []string{"cat"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
			ExpectedRoot:  "dog",
		},
		{
			Name:          "Delete Node With Two Children",
			InitialKeys:   []string{"m", "f", "t", "a", "h", "p", "z"},
			KeysToDelete:  []string{"m"},
			ExpectedOrder: []string{"a", "f", "h", "p", "t", "z"},
			ExpectedRoot:  "p",
		},
		{
			Name:          "Duplicates Overwrite",
			InitialKeys:   []string{"b", "a", "b", "c", "a"},
			ExpectedOrder: []string{"a", "b", "c"},
			ExpectedRoot:  "b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New[string, int]()
			for i, key := range tc.InitialKeys {
				require.NoError(t, tree.Put(key, i))
			}
			for i, key := range tc.KeysToInsert {
				require.NoError(t, tree.Put(key, i))
			}
			for _, key := range tc.KeysToDelete {
				require.NoError(t, tree.Delete(key))
			}

			assert.Equal(t, tc.ExpectedOrder, tree.Keys())
			assert.Equal(t, len(tc.ExpectedOrder), tree.Size())
			require.NotNil(t, tree.root)
			assert.Equal(t, tc.ExpectedRoot, tree.root.key)
			assert.NoError(t, tree.Check())
		})
	}
}

func TestRotationCases(t *testing.T) {
	testCases := []struct {
		name string
		keys []int
	}{
		{"LL", []int{3, 2, 1}},
		{"RR", []int{1, 2, 3}},
		{"LR", []int{3, 1, 2}},
		{"RL", []int{1, 3, 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := New[int, string]()
			for _, k := range tc.keys {
				require.NoError(t, tree.Put(k, ""))
			}
			root := tree.root
			require.NotNil(t, root)
			assert.Equal(t, 2, root.key)
			assert.Equal(t, 1, root.left.key)
			assert.Equal(t, 3, root.right.key)
			assert.Equal(t, 2, root.height)
			assert.Equal(t, 3, root.size)
			assert.Equal(t, 1, root.left.size)
			assert.Equal(t, 1, root.right.height)
		})
	}
}

// insertion order and deletion order of the original AVL driver
func TestInsertShapeAndDeleteAll(t *testing.T) {
	tree := New[int, string]()
	keys := []int{3, 2, 1, 4, 5, 6, 7, 10, 9, 8}
	values := []string{"S", "E", "A", "R", "C", "H", "E", "X", "A", "M"}
	for i, k := range keys {
		require.NoError(t, tree.Put(k, values[i]))
	}

	//                   4
	//                /     \
	//               2       7
	//              / \     / \
	//             1   3   6   9
	//                    /   / \
	//                   5   8  10
	r := tree.root
	assert.Equal(t, 4, r.key)
	assert.Equal(t, 2, r.left.key)
	assert.Equal(t, 1, r.left.left.key)
	assert.Equal(t, 3, r.left.right.key)
	assert.Equal(t, 7, r.right.key)
	assert.Equal(t, 6, r.right.left.key)
	assert.Equal(t, 5, r.right.left.left.key)
	assert.Equal(t, 9, r.right.right.key)
	assert.Equal(t, 8, r.right.right.left.key)
	assert.Equal(t, 10, r.right.right.right.key)
	assert.Equal(t, 4, tree.Height())

	for i, k := range []int{3, 2, 1, 4, 5, 6, 7, 10, 9, 8} {
		require.NoError(t, tree.Delete(k))
		assert.True(t, tree.IsBST(), "after deleting %d", k)
		assert.True(t, tree.IsBalanced(), "after deleting %d", k)
		assert.Equal(t, len(keys)-i-1, tree.Size())
	}
	assert.True(t, tree.IsEmpty())
}

func TestGetPutRoundTrip(t *testing.T) {
	tree := New[string, int]()
	require.NoError(t, tree.Put("k", 1))

	v, err := tree.Get("k")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, tree.Put("k", 2))
	v, err = tree.Get("k")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, tree.Size())

	_, err = tree.Get("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.True(t, tree.Contains("k"))
	assert.False(t, tree.Contains("missing"))
}

func TestDeleteMissingKeyLeavesTreeUntouched(t *testing.T) {
	tree := New[int, int]()
	for i := range 10 {
		require.NoError(t, tree.Put(i, i))
	}
	before := tree.Keys()

	assert.ErrorIs(t, tree.Delete(42), ErrKeyNotFound)
	assert.Equal(t, before, tree.Keys())
	assert.NoError(t, tree.Check())

	empty := New[int, int]()
	assert.ErrorIs(t, empty.Delete(1), ErrKeyNotFound)
}

func TestNilKeys(t *testing.T) {
	tree, err := NewFunc[*int, string](func(a, b *int) int { return *a - *b })
	require.NoError(t, err)

	assert.ErrorIs(t, tree.Put(nil, "x"), ErrInvalidArgument)
	_, err = tree.Get(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, tree.Delete(nil), ErrInvalidArgument)
	assert.False(t, tree.Contains(nil))
	assert.Equal(t, 0, tree.Rank(nil))
	_, ok := tree.Floor(nil)
	assert.False(t, ok)

	one := 1
	require.NoError(t, tree.Put(&one, "one"))
	v, err := tree.Get(&one)
	require.NoError(t, err)
	assert.Equal(t, "one", v)

	_, err = NewFunc[int, int](nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCustomComparator(t *testing.T) {
	// descending order
	tree, err := NewFunc[int, struct{}](func(a, b int) int { return b - a })
	require.NoError(t, err)
	for _, k := range []int{5, 1, 9, 3, 7} {
		require.NoError(t, tree.Put(k, struct{}{}))
	}
	assert.Equal(t, []int{9, 7, 5, 3, 1}, tree.Keys())
	minKey, err := tree.Min()
	require.NoError(t, err)
	assert.Equal(t, 9, minKey)
	assert.NoError(t, tree.Check())
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tree := New[int, int]()
	live := make(map[int]int)

	for i := 0; i < 2000; i++ {
		k := rng.Intn(300)
		if rng.Intn(3) == 0 {
			err := tree.Delete(k)
			if _, ok := live[k]; ok {
				require.NoError(t, err)
				delete(live, k)
			} else {
				require.ErrorIs(t, err, ErrKeyNotFound)
			}
		} else {
			require.NoError(t, tree.Put(k, i))
			live[k] = i
		}
		require.NoError(t, tree.Check(), "step %d", i)
		require.Equal(t, len(live), tree.Size())
	}

	for k, v := range live {
		got, err := tree.Get(k)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestDeleteEveryKeyInAnyOrder(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		tree := New[int, int]()
		const n = 200
		for _, k := range rng.Perm(n) {
			require.NoError(t, tree.Put(k, k))
		}
		require.NoError(t, tree.Check())

		for i, k := range rng.Perm(n) {
			require.NoError(t, tree.Delete(k))
			require.True(t, tree.IsBST())
			require.True(t, tree.IsBalanced())
			require.True(t, tree.IsSizeConsistent())
			require.Equal(t, n-i-1, tree.Size())
		}
		assert.Equal(t, 0, tree.Size())
		assert.True(t, tree.IsEmpty())
	}
}

func TestHeightStaysLogarithmic(t *testing.T) {
	tree := New[int, struct{}]()
	for i := range 1 << 12 {
		require.NoError(t, tree.Put(i, struct{}{}))
	}
	// AVL height bound is about 1.44 log2(n)
	assert.LessOrEqual(t, tree.Height(), 18)
	assert.NoError(t, tree.Check())
}

func TestUnbalancedVariant(t *testing.T) {
	tree := New[int, int](Unbalanced())
	assert.False(t, tree.Balanced())
	for i := range 100 {
		require.NoError(t, tree.Put(i, i))
	}

	assert.Equal(t, 100, tree.Height())
	assert.True(t, tree.IsBST())
	assert.False(t, tree.IsBalanced())
	assert.True(t, tree.IsSizeConsistent())
	assert.NoError(t, tree.Check())

	k, ok := tree.Select(42)
	require.True(t, ok)
	assert.Equal(t, 42, k)
	assert.Equal(t, 42, tree.Rank(42))

	require.NoError(t, tree.Delete(50))
	require.NoError(t, tree.DeleteMin())
	require.NoError(t, tree.DeleteMax())
	assert.Equal(t, 97, tree.Size())
	assert.NoError(t, tree.Check())
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := New[int, int]()
	for i := range 7 {
		require.NoError(t, tree.Put(i, i))
	}
	require.NoError(t, tree.Check())

	tree.root.size++
	assert.ErrorIs(t, tree.Check(), ErrCorrupt)
	tree.root.size--

	tree.root.left.key, tree.root.right.key = tree.root.right.key, tree.root.left.key
	assert.ErrorIs(t, tree.Check(), ErrCorrupt)
}
