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

// Every rotation receives the slot holding the subtree: either a parent's
// child field or the tree's root field. The slot is rewritten in place.

// rotateRight lifts the left child of the subtree:
//
//	    Q          P
//	   / \        / \
//	  P   C  ->  A   Q
//	 / \            / \
//	A   B          B   C
func rotateRight(slot **Node) {
	q := *slot
	if q == nil || q.left == nil {
		panic("avl: rotateRight without a left child")
	}
	p := q.left
	b := p.right

	q.left = b
	p.right = q

	q.fix()
	p.fix()
	*slot = p
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft(slot **Node) {
	p := *slot
	if p == nil || p.right == nil {
		panic("avl: rotateLeft without a right child")
	}
	q := p.right
	b := q.left

	p.right = b
	q.left = p

	p.fix()
	q.fix()
	*slot = q
}

func rotateDoubleRight(slot **Node) {
	rotateLeft(&(*slot).left)
	rotateRight(slot)
}

func rotateDoubleLeft(slot **Node) {
	rotateRight(&(*slot).right)
	rotateLeft(slot)
}
