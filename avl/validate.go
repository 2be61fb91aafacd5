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
	"math"
)

// Validate checks every invariant the tree maintains: strictly ascending
// in-order keys, balance factors within [-1, 1], cached heights matching
// the measured ones, the node count, and the AVL height bound.
func (t *Tree) Validate() error {
	var (
		count int
		prev  int
		seen  bool
	)
	// visit returns the measured height of n.
	var visit func(n *Node) (int, error)
	visit = func(n *Node) (int, error) {
		if n == nil {
			return 0, nil
		}
		count++
		if count > t.size {
			// Also stops the walk should a cycle ever appear.
			return 0, fmt.Errorf("%w: more than %d nodes reachable", ErrCount, t.size)
		}
		lh, err := visit(n.left)
		if err != nil {
			return 0, err
		}
		if seen && n.key <= prev {
			return 0, fmt.Errorf("%w: %d follows %d", ErrUnordered, n.key, prev)
		}
		prev, seen = n.key, true
		rh, err := visit(n.right)
		if err != nil {
			return 0, err
		}

		if measured := 1 + max(lh, rh); measured != n.height {
			return 0, fmt.Errorf("%w: node %d caches %d, measured %d", ErrHeightCache, n.key, n.height, measured)
		}
		if bf := lh - rh; bf < -1 || bf > 1 {
			return 0, fmt.Errorf("%w: node %d has balance factor %d", ErrUnbalanced, n.key, bf)
		}
		return n.height, nil
	}

	if _, err := visit(t.root); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: %d reachable, size %d", ErrCount, count, t.size)
	}
	if h, limit := t.Height(), MaxHeight(t.size); h > limit {
		return fmt.Errorf("%w: height %d for %d keys, limit %d", ErrTooTall, h, t.size, limit)
	}
	return nil
}

// MaxHeight returns the tallest height an AVL tree of n keys may reach,
// ceil(1.44 * log2(n+2)).
func MaxHeight(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n)+2)))
}
