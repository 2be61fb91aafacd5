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
	"github.com/stretchr/testify/require"
)

func TestValidateDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func() *Tree
		want    error
	}{
		{
			name: "keys out of order",
			corrupt: func() *Tree {
				tree := treeOf(2, 1, 3)
				tree.root.left.key = 5
				return tree
			},
			want: ErrUnordered,
		},
		{
			name: "stale cached height",
			corrupt: func() *Tree {
				tree := treeOf(2, 1, 3)
				tree.root.height = 7
				return tree
			},
			want: ErrHeightCache,
		},
		{
			name: "unbalanced chain",
			corrupt: func() *Tree {
				return &Tree{root: unbalanced(1, 2, 3), size: 3}
			},
			want: ErrUnbalanced,
		},
		{
			name: "size off by one",
			corrupt: func() *Tree {
				tree := treeOf(2, 1, 3)
				tree.size = 4
				return tree
			},
			want: ErrCount,
		},
		{
			name: "cycle",
			corrupt: func() *Tree {
				tree := treeOf(2, 1, 3)
				tree.root.left.left = tree.root
				return tree
			},
			want: ErrCount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.corrupt().Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateEmpty(t *testing.T) {
	assert.NoError(t, New().Validate())
}
