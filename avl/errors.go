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

import "errors"

var (
	ErrUnordered   = errors.New("keys out of order")
	ErrUnbalanced  = errors.New("balance factor outside [-1, 1]")
	ErrHeightCache = errors.New("cached height differs from measured height")
	ErrCount       = errors.New("node count differs from tree size")
	ErrTooTall     = errors.New("height exceeds the AVL bound")
)
