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

// Package render draws avl trees as text for diagnostics. It only reads
// nodes through their accessors.
package render

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/avltree/avl"
)

// MaxPyramidLevels caps the pyramid layout; its width doubles per level.
const MaxPyramidLevels = 12

var ErrTooTall = errors.New("tree too tall for a pyramid diagram")

// Levels returns the tree breadth first, one slice per level. Level d holds
// 2^d entries and absent children are nil entries, so positions line up
// with a complete tree of the same height.
func Levels(root *avl.Node) [][]*avl.Node {
	if root == nil {
		return nil
	}
	levels := [][]*avl.Node{{root}}
	for {
		cur := levels[len(levels)-1]
		next := make([]*avl.Node, 2*len(cur))
		found := false
		for i, n := range cur {
			next[2*i], next[2*i+1] = n.Left(), n.Right()
			if next[2*i] != nil || next[2*i+1] != nil {
				found = true
			}
		}
		if !found {
			return levels
		}
		levels = append(levels, next)
	}
}

// Pyramid writes the tree top-down with every key centred over its subtree
// and a line of branch marks between levels.
func Pyramid(w io.Writer, root *avl.Node) error {
	if root == nil {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	if root.Height() > MaxPyramidLevels {
		return ErrTooTall
	}

	levels := Levels(root)
	width := pyramidWidth(len(levels), keyWidth(root))

	var b strings.Builder
	for d, level := range levels {
		span := width / len(level)
		keys := newLine(width)
		marks := newLine(width)
		for i, n := range level {
			if n == nil {
				continue
			}
			center := i*span + span/2
			keys.put(center-len(label(n))/2, label(n))
			if n.Left() != nil {
				marks.put((center+i*span+span/4)/2, "/")
			}
			if n.Right() != nil {
				marks.put((center+i*span+3*span/4+1)/2, `\`)
			}
		}
		b.WriteString(keys.String())
		b.WriteByte('\n')
		if d < len(levels)-1 {
			b.WriteString(marks.String())
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Sideways writes the tree rotated a quarter turn: the right subtree above
// its parent, the left one below, indented by depth. Unlike Pyramid it
// grows linearly with the number of keys.
func Sideways(w io.Writer, root *avl.Node) error {
	if root == nil {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	var b strings.Builder
	sideways(&b, root, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func sideways(b *strings.Builder, n *avl.Node, depth int) {
	if n == nil {
		return
	}
	sideways(b, n.Right(), depth+1)
	b.WriteString(strings.Repeat("    ", depth))
	b.WriteString(label(n))
	b.WriteByte('\n')
	sideways(b, n.Left(), depth+1)
}

// Fits reports whether the pyramid of root fits in the given number of
// columns.
func Fits(root *avl.Node, columns int) bool {
	h := root.Height()
	if h > MaxPyramidLevels {
		return false
	}
	if h == 0 {
		return true
	}
	return pyramidWidth(h, keyWidth(root)) <= columns
}

func pyramidWidth(levels, cell int) int {
	return (cell + 2) << (levels - 1)
}

func label(n *avl.Node) string {
	return strconv.Itoa(n.Key())
}

func keyWidth(n *avl.Node) int {
	if n == nil {
		return 1
	}
	return max(len(label(n)), keyWidth(n.Left()), keyWidth(n.Right()))
}

type line []byte

func newLine(width int) line {
	l := make(line, width)
	for i := range l {
		l[i] = ' '
	}
	return l
}

func (l line) put(at int, s string) {
	if at < 0 {
		at = 0
	}
	copy(l[min(at, len(l)):], s)
}

func (l line) String() string {
	return strings.TrimRight(string(l), " ")
}
