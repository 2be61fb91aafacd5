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

// Node holds one key of a Tree. A node exclusively owns its two subtrees.
//
// The accessors are read-only and safe to call on a nil *Node, which lets
// printers walk a tree without checking for absent children first.
type Node struct {
	key    int
	height int
	left   *Node
	right  *Node
}

func newNode(key int) *Node {
	return &Node{key: key, height: 1}
}

// Key returns the key stored in n, or 0 for a nil node.
func (n *Node) Key() int {
	if n == nil {
		return 0
	}
	return n.key
}

// Left returns the root of the left subtree.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the root of the right subtree.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// Height is shorthand for Height(n).
func (n *Node) Height() int {
	return Height(n)
}

// Height returns the height of the subtree rooted at n. An absent subtree
// has height 0 and a leaf has height 1.
func Height(n *Node) int {
	if n == nil {
		return 0
	}
	return n.height
}

// Measure recomputes the height of n from scratch, ignoring the cached
// value. It walks the whole subtree.
func Measure(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(Measure(n.left), Measure(n.right))
}

// fix refreshes the cached height from the children's cached heights.
func (n *Node) fix() {
	n.height = 1 + max(Height(n.left), Height(n.right))
}

func (n *Node) balanceFactor() int {
	return Height(n.left) - Height(n.right)
}
