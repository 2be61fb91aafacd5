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

// Package avl implements a height balanced binary search tree of int keys.
//
// Insert and Delete restore the AVL balance limit bottom-up, one level at a
// time, as the recursion unwinds. A Tree is not safe for concurrent use.
package avl

// Tree is an AVL tree. The zero value is an empty tree ready to use.
type Tree struct {
	root *Node
	size int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Root returns the root node for read-only inspection.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Height returns the height of the tree; 0 when empty.
func (t *Tree) Height() int {
	return Height(t.root)
}

// Insert adds key to the tree. Duplicate keys are rejected: the tree is left
// untouched and Insert reports false.
func (t *Tree) Insert(key int) bool {
	if !insert(&t.root, key) {
		return false
	}
	t.size++
	return true
}

func insert(slot **Node, key int) bool {
	n := *slot
	if n == nil {
		*slot = newNode(key)
		return true
	}

	var added bool
	switch {
	case key < n.key:
		added = insert(&n.left, key)
	case key > n.key:
		added = insert(&n.right, key)
	default:
		return false
	}

	if added {
		rebalance(slot)
	}
	return added
}

// Delete removes key from the tree and reports whether it was present.
// Deleting an absent key does not touch the tree.
func (t *Tree) Delete(key int) bool {
	if !remove(&t.root, key) {
		return false
	}
	t.size--
	return true
}

func remove(slot **Node, key int) bool {
	n := *slot
	if n == nil {
		return false
	}

	var removed bool
	switch {
	case key < n.key:
		removed = remove(&n.left, key)
	case key > n.key:
		removed = remove(&n.right, key)
	default:
		unlink(slot)
		removed = true
	}

	if removed {
		rebalance(slot)
	}
	return removed
}

// unlink removes the node held by slot, replacing it with whatever keeps
// the subtree ordered.
func unlink(slot **Node) {
	n := *slot
	switch {
	case n.left == nil && n.right == nil:
		*slot = nil
	case n.right == nil:
		*slot = n.left
	case n.left == nil:
		*slot = n.right
	default:
		// The successor is gone from n.right once detached, so hanging
		// n.right below it cannot make it its own descendant. When the
		// successor was n.right itself, n.right is now the successor's own
		// right subtree and the assignment leaves it in place.
		succ := detachMin(&n.right)
		succ.left = n.left
		succ.right = n.right
		*slot = succ
	}
	n.left, n.right = nil, nil
}

// detachMin unhooks the leftmost node of the subtree held by slot and
// returns it. The vacated position takes the node's right subtree, and every
// ancestor on the way back up is rebalanced.
func detachMin(slot **Node) *Node {
	n := *slot
	if n.left == nil {
		*slot = n.right
		n.right = nil
		return n
	}
	leftmost := detachMin(&n.left)
	rebalance(slot)
	return leftmost
}

// Destroy releases every node, children before parents, and leaves an empty
// tree behind.
func (t *Tree) Destroy() {
	destroy(t.root)
	t.root = nil
	t.size = 0
}

func destroy(n *Node) {
	if n == nil {
		return
	}
	destroy(n.left)
	destroy(n.right)
	n.left, n.right = nil, nil
}
