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

// FromPostorder rebuilds the tree whose post-order traversal is keys,
// reproducing its exact shape. Feeding it the PostOrder traversal of a tree
// gives back a structurally identical tree.
//
// It returns ErrInvalidPostorder if keys is not the post-order sequence of a
// binary search tree with unique keys, and an error wrapping
// ErrInvariantViolation if the described shape is not height-balanced.
func FromPostorder(keys []int, opts ...Option) (*Tree, error) {
	tree := New(opts...)
	b := &postorderBuilder{keys: keys, pos: len(keys) - 1}
	tree.root = b.build(bound{}, bound{})
	if b.pos >= 0 {
		return nil, fmt.Errorf("%w: key %d at position %d is out of order", ErrInvalidPostorder, keys[b.pos], b.pos)
	}
	if err := tree.Check(); err != nil {
		return nil, err
	}
	return tree, nil
}

// postorderBuilder consumes keys from the end: the last key is the root,
// preceded by the right subtree and then the left subtree.
type postorderBuilder struct {
	keys []int
	pos  int
}

func (b *postorderBuilder) build(lo, hi bound) *Node {
	if b.pos < 0 {
		return nil
	}
	key := b.keys[b.pos]
	if (lo.set && key <= lo.key) || (hi.set && key >= hi.key) {
		return nil
	}
	b.pos--

	node := &Node{key: key}
	node.right = b.build(bound{key: key, set: true}, hi)
	node.left = b.build(lo, bound{key: key, set: true})
	update(node)
	return node
}
