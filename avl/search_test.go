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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	tree := treeOf(8, 4, 12, 2, 6, 10, 14)
	for _, k := range []int{2, 4, 6, 8, 10, 12, 14} {
		assert.True(t, tree.Contains(k), "key %d", k)
	}
	for _, k := range []int{1, 3, 9, 15, -8} {
		assert.False(t, tree.Contains(k), "key %d", k)
	}
	assert.False(t, New().Contains(0))
}

func TestMinMax(t *testing.T) {
	_, ok := New().Min()
	assert.False(t, ok)
	_, ok = New().Max()
	assert.False(t, ok)

	tree := treeOf(keyRange(20, -5)...)
	lo, ok := tree.Min()
	assert.True(t, ok)
	assert.Equal(t, -5, lo)
	hi, ok := tree.Max()
	assert.True(t, ok)
	assert.Equal(t, 20, hi)
}

func TestWalkStopsEarly(t *testing.T) {
	tree := treeOf(keyRange(1, 10)...)
	var got []int
	tree.Walk(func(key int) bool {
		got = append(got, key)
		return key < 4
	})
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestNodeAccessorsOnNil(t *testing.T) {
	var n *Node
	assert.Equal(t, 0, n.Key())
	assert.Nil(t, n.Left())
	assert.Nil(t, n.Right())
	assert.Equal(t, 0, n.Height())
}
