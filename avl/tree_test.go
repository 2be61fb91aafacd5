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

package avl

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type treeTestCase struct {
	Name          string
	InitialKeys   []int
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int
	ExpectedShape string
}

func TestTreeOperations(t *testing.T) {
	testCases := []treeTestCase{
		{
			Name:          "Single right rotation on insert",
			KeysToInsert:  []int{10, 5, 2},
			ExpectedOrder: []int{2, 5, 10},
			ExpectedShape: "(5 (2) (10))",
		},
		{
			Name:          "Double right rotation on insert",
			KeysToInsert:  []int{10, 5, 8},
			ExpectedOrder: []int{5, 8, 10},
			ExpectedShape: "(8 (5) (10))",
		},
		{
			Name:          "Double left rotation on insert",
			KeysToInsert:  []int{10, 15, 11},
			ExpectedOrder: []int{10, 11, 15},
			ExpectedShape: "(11 (10) (15))",
		},
		{
			Name:          "Single left rotation on insert",
			KeysToInsert:  []int{10, 15, 20},
			ExpectedOrder: []int{10, 15, 20},
			ExpectedShape: "(15 (10) (20))",
		},
		{
			Name:          "Delete leaf",
			InitialKeys:   []int{2, 1, 3},
			KeysToDelete:  []int{1},
			ExpectedOrder: []int{2, 3},
			ExpectedShape: "(2 - (3))",
		},
		{
			Name:          "Delete node with only a left child",
			InitialKeys:   []int{3, 2, 4, 1},
			KeysToDelete:  []int{2},
			ExpectedOrder: []int{1, 3, 4},
			ExpectedShape: "(3 (1) (4))",
		},
		{
			Name:          "Delete node with only a right child",
			InitialKeys:   []int{2, 1, 3, 4},
			KeysToDelete:  []int{3},
			ExpectedOrder: []int{1, 2, 4},
			ExpectedShape: "(2 (1) (4))",
		},
		{
			Name:          "Delete root whose successor is its right child",
			InitialKeys:   []int{2, 1, 3},
			KeysToDelete:  []int{2},
			ExpectedOrder: []int{1, 3},
			ExpectedShape: "(3 (1) -)",
		},
		{
			Name:          "Delete root whose successor has a right child",
			InitialKeys:   []int{5, 3, 8, 2, 4, 6, 9, 7},
			KeysToDelete:  []int{5},
			ExpectedOrder: []int{2, 3, 4, 6, 7, 8, 9},
			ExpectedShape: "(6 (3 (2) (4)) (8 (7) (9)))",
		},
		{
			Name:          "Delete rebalances the parent",
			InitialKeys:   []int{2, 1, 3, 4},
			KeysToDelete:  []int{1},
			ExpectedOrder: []int{2, 3, 4},
			ExpectedShape: "(3 (2) (4))",
		},
		{
			Name:          "Delete on the short side of an eight key tree",
			InitialKeys:   []int{10, 5, 2, 1, 3, 8, 6, 9},
			KeysToDelete:  []int{10},
			ExpectedOrder: []int{1, 2, 3, 5, 6, 8, 9},
		},
		{
			Name:          "Delete absent key",
			InitialKeys:   []int{2, 1, 3},
			KeysToDelete:  []int{7},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedShape: "(2 (1) (3))",
		},
		{
			Name:          "Delete everything",
			InitialKeys:   []int{4, 2, 6, 1, 3, 5, 7},
			KeysToDelete:  []int{4, 2, 6, 1, 3, 5, 7},
			ExpectedOrder: []int{},
			ExpectedShape: "-",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New()
			for _, key := range tc.InitialKeys {
				require.True(t, tree.Insert(key))
			}
			for _, key := range tc.KeysToInsert {
				require.True(t, tree.Insert(key))
				require.NoError(t, tree.Validate())
			}
			for _, key := range tc.KeysToDelete {
				tree.Delete(key)
				require.NoError(t, tree.Validate())
			}

			assert.Equal(t, tc.ExpectedOrder, tree.Keys())
			assert.Equal(t, len(tc.ExpectedOrder), tree.Len())
			if tc.ExpectedShape != "" {
				assert.Equal(t, tc.ExpectedShape, shape(tree.Root()))
			}
		})
	}
}

func TestInsertRejectsDuplicates(t *testing.T) {
	tree := treeOf(10, 5, 15)
	before := shape(tree.Root())

	assert.False(t, tree.Insert(5))
	assert.False(t, tree.Insert(10))
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, before, shape(tree.Root()))
	require.NoError(t, tree.Validate())
}

func TestDeleteAbsentLeavesTreeUntouched(t *testing.T) {
	tree := treeOf(keyRange(1, 31)...)
	root := tree.Root()
	before := shape(root)

	for _, key := range []int{0, 32, -5, 1000} {
		assert.False(t, tree.Delete(key))
	}
	assert.Same(t, root, tree.Root())
	assert.Equal(t, before, shape(tree.Root()))
	assert.Equal(t, 31, tree.Len())

	empty := New()
	assert.False(t, empty.Delete(1))
	assert.Nil(t, empty.Root())
}

func TestDeleteReleasesNode(t *testing.T) {
	tree := treeOf(2, 1, 3)
	root := tree.Root()
	require.Equal(t, 2, root.Key())

	require.True(t, tree.Delete(2))
	assert.Nil(t, root.Left())
	assert.Nil(t, root.Right())
}

func TestHeight(t *testing.T) {
	assert.Equal(t, 0, New().Height())
	assert.Equal(t, 0, Height(nil))
	assert.Equal(t, 1, treeOf(1).Height())
	assert.Equal(t, 3, treeOf(10, 9, 8, 7, 6, 5).Height())
	assert.Equal(t, 3, Measure(treeOf(10, 9, 8, 7, 6, 5).Root()))
}

func TestStressDescendingThenAscending(t *testing.T) {
	tree := treeOf(100)

	for k := 99; k > 0; k-- {
		require.True(t, tree.Insert(k))
		require.NoError(t, tree.Validate(), "after inserting %d", k)
	}
	for k := 101; k <= 200; k++ {
		require.True(t, tree.Insert(k))
		require.NoError(t, tree.Validate(), "after inserting %d", k)
	}
	require.Equal(t, 200, tree.Len())

	for k := 1; k < 50; k++ {
		require.True(t, tree.Delete(k))
		require.NoError(t, tree.Validate(), "after deleting %d", k)
	}
	assert.Equal(t, keyRange(50, 200), tree.Keys())

	for k := 120; k <= 180; k++ {
		require.True(t, tree.Delete(k))
		require.NoError(t, tree.Validate(), "after deleting %d", k)
	}
	assert.Equal(t, 200-49-61, tree.Len())
}

func TestRandomOperationsAgainstMap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := New()
	want := map[int]bool{}

	for i := 0; i < 5000; i++ {
		key := rng.Intn(500)
		if rng.Intn(3) == 0 {
			assert.Equal(t, want[key], tree.Delete(key))
			delete(want, key)
		} else {
			assert.Equal(t, !want[key], tree.Insert(key))
			want[key] = true
		}
		if i%50 == 0 {
			require.NoError(t, tree.Validate(), "after operation %d", i)
		}
	}
	require.NoError(t, tree.Validate())

	keys := make([]int, 0, len(want))
	for k := range want {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	assert.Equal(t, keys, tree.Keys())
}

func TestHeightBound(t *testing.T) {
	tree := New()
	for k := 1; k <= 4096; k++ {
		tree.Insert(k)
		require.LessOrEqual(t, tree.Height(), MaxHeight(tree.Len()), "after inserting %d", k)
	}
	assert.Equal(t, 13, tree.Height())
}

func TestMaxHeight(t *testing.T) {
	assert.Equal(t, 2, MaxHeight(0))
	assert.Equal(t, 3, MaxHeight(1))
	assert.Equal(t, 4, MaxHeight(3))
	assert.Equal(t, 12, MaxHeight(200))
}

func TestDestroy(t *testing.T) {
	tree := treeOf(keyRange(1, 15)...)
	root := tree.Root()
	left := root.Left()

	tree.Destroy()
	assert.Nil(t, tree.Root())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.Nil(t, root.Left())
	assert.Nil(t, root.Right())
	assert.Nil(t, left.Left())
	require.NoError(t, tree.Validate())

	tree.Destroy()
	assert.True(t, tree.Insert(3))
	assert.Equal(t, []int{3}, tree.Keys())
}

func TestZeroValueTree(t *testing.T) {
	var tree Tree
	assert.True(t, tree.Insert(1))
	assert.True(t, tree.Contains(1))
	require.NoError(t, tree.Validate())
}
