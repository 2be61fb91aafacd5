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

// Contains reports whether key is stored in the tree.
func (t *Tree) Contains(key int) bool {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest key, or false when the tree is empty.
func (t *Tree) Min() (int, bool) {
	n := t.root
	if n == nil {
		return 0, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

// Max returns the largest key, or false when the tree is empty.
func (t *Tree) Max() (int, bool) {
	n := t.root
	if n == nil {
		return 0, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}

// Walk calls fn for every key in ascending order until fn returns false.
func (t *Tree) Walk(fn func(key int) bool) {
	walk(t.root, fn)
}

func walk(n *Node, fn func(key int) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, fn) && fn(n.key) && walk(n.right, fn)
}

// Keys returns all keys in ascending order.
func (t *Tree) Keys() []int {
	keys := make([]int, 0, t.size)
	t.Walk(func(key int) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
