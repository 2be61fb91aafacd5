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

import "fmt"

// Requirement names the rotation a subtree needs to get back within the
// AVL balance limit.
type Requirement int

const (
	RotateRight Requirement = iota
	RotateDoubleRight
	RotateDoubleLeft
	RotateLeft
	None
)

func (r Requirement) String() string {
	switch r {
	case RotateRight:
		return "rotate-right"
	case RotateDoubleRight:
		return "rotate-double-right"
	case RotateDoubleLeft:
		return "rotate-double-left"
	case RotateLeft:
		return "rotate-left"
	case None:
		return "none"
	}
	return fmt.Sprintf("Requirement(%d)", int(r))
}

// BalanceCheck inspects the subtree rooted at n and reports which
// rotation, if any, restores the balance limit at n.
//
// A child that leans neither way (balance factor 0) resolves to a single
// rotation.
func BalanceCheck(n *Node) Requirement {
	if n == nil {
		return None
	}

	bf := n.balanceFactor()
	switch {
	case bf < -1:
		// Right heavy: a right child leaning left needs the double rotation.
		if n.right.balanceFactor() <= 0 {
			return RotateLeft
		}
		return RotateDoubleLeft
	case bf > 1:
		if n.left.balanceFactor() >= 0 {
			return RotateRight
		}
		return RotateDoubleRight
	default:
		return None
	}
}

// apply performs the rotation r on the subtree held by slot.
func (r Requirement) apply(slot **Node) {
	switch r {
	case RotateRight:
		rotateRight(slot)
	case RotateDoubleRight:
		rotateDoubleRight(slot)
	case RotateDoubleLeft:
		rotateDoubleLeft(slot)
	case RotateLeft:
		rotateLeft(slot)
	case None:
	default:
		panic(fmt.Sprintf("avl: unknown rotation %v", r))
	}
}

// rebalance refreshes the cached height of the node held by slot and
// rotates it if it is out of balance.
func rebalance(slot **Node) {
	n := *slot
	if n == nil {
		return
	}
	n.fix()
	BalanceCheck(n).apply(slot)
}
