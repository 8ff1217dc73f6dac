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

// Rank returns the zero-based position of key in ascending order, that is
// the number of keys smaller than it. ok is false if key is absent.
func (tree *Tree) Rank(key int) (index int, ok bool) {
	node := tree.root
	for node != nil {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			// everything on the left plus this node precedes key
			index += size(node.left) + 1
			node = node.right
		default:
			return index + size(node.left), true
		}
	}
	return -1, false
}

// Select returns the key at zero-based position i in ascending order.
func (tree *Tree) Select(i int) (int, error) {
	if i < 0 || i >= tree.Size() {
		return 0, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, tree.Size())
	}
	node := tree.root
	for {
		nl := size(node.left)
		switch {
		case i < nl:
			node = node.left
		case i > nl:
			i -= nl + 1
			node = node.right
		default:
			return node.key, nil
		}
	}
}
