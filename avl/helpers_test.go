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
	"fmt"
	"strings"
)

// unbalanced builds a plain binary search tree with correct cached heights
// but without any rotations, so tests can hand BalanceCheck and the
// rotations a tree that is out of balance.
func unbalanced(keys ...int) *Node {
	var root *Node
	for _, k := range keys {
		plainInsert(&root, k)
	}
	return root
}

func plainInsert(slot **Node, key int) {
	n := *slot
	if n == nil {
		*slot = newNode(key)
		return
	}
	if key < n.key {
		plainInsert(&n.left, key)
	} else {
		plainInsert(&n.right, key)
	}
	n.fix()
}

func treeOf(keys ...int) *Tree {
	t := New()
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// shape renders the structure as nested parentheses, e.g. "(5 (2) (10))".
func shape(n *Node) string {
	if n == nil {
		return "-"
	}
	if n.left == nil && n.right == nil {
		return fmt.Sprintf("(%d)", n.key)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "(%d %s %s)", n.key, shape(n.left), shape(n.right))
	return b.String()
}

func keyRange(from, to int) []int {
	var keys []int
	step := 1
	if from > to {
		step = -1
	}
	for k := from; k != to+step; k += step {
		keys = append(keys, k)
	}
	return keys
}
