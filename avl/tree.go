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

// Tree is an AVL tree of unique int keys. The zero value is not usable;
// create trees with New or FromPostorder.
type Tree struct {
	root *Node
	opts Options
}

// New returns an empty tree configured by opts.
func New(opts ...Option) *Tree {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree{opts: o}
}

// Root returns the root node, or nil for an empty tree.
func (tree *Tree) Root() *Node {
	return tree.root
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the tree: 0 when empty, 1 for a single key.
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Size returns the number of keys in the tree.
func (tree *Tree) Size() int {
	return size(tree.root)
}

// Clear removes every key.
func (tree *Tree) Clear() {
	tree.root = nil
}

// Insert adds key to the tree and rebalances the path back to the root.
// It returns Duplicate, leaving the tree untouched, if key is already present.
func (tree *Tree) Insert(key int) Outcome {
	inserted := false
	tree.root = tree.insertRecursive(tree.root, key, &inserted)
	if !inserted {
		return Duplicate
	}
	return Inserted
}

func (tree *Tree) insertRecursive(node *Node, key int, inserted *bool) *Node {
	if node == nil {
		*inserted = true
		return newNode(key)
	}

	if key < node.key {
		node.left = tree.insertRecursive(node.left, key, inserted)
	} else if key > node.key {
		node.right = tree.insertRecursive(node.right, key, inserted)
	} else {
		return node
	}

	// nothing below changed shape
	if !*inserted {
		return node
	}

	update(node)
	return tree.rebalanceAfterInsert(node, key)
}

// Delete removes key from the tree and rebalances the path back to the root.
// It returns NotFound, leaving the tree untouched, if key is absent.
func (tree *Tree) Delete(key int) Outcome {
	deleted := false
	tree.root = tree.deleteRecursive(tree.root, key, &deleted)
	if !deleted {
		return NotFound
	}
	return Deleted
}

func (tree *Tree) deleteRecursive(node *Node, key int, deleted *bool) *Node {
	if node == nil {
		return nil
	}

	if key < node.key {
		node.left = tree.deleteRecursive(node.left, key, deleted)
	} else if key > node.key {
		node.right = tree.deleteRecursive(node.right, key, deleted)
	} else {
		*deleted = true
		// Zero or one child: the child (possibly nil) takes this node's place.
		if node.left == nil {
			return node.right
		}
		if node.right == nil {
			return node.left
		}
		// Two children: take the in-order successor's key, then remove the
		// successor from the right subtree. It has no left child.
		successor := node.right.min()
		node.key = successor.key
		node.right = tree.deleteRecursive(node.right, successor.key, deleted)
	}

	if !*deleted {
		return node
	}

	update(node)
	return tree.rebalance(node)
}

// Contains reports whether key is in the tree.
func (tree *Tree) Contains(key int) bool {
	return tree.search(key) != nil
}

func (tree *Tree) search(key int) *Node {
	node := tree.root
	for node != nil {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// Min returns the smallest key; ok is false for an empty tree.
func (tree *Tree) Min() (key int, ok bool) {
	if tree.root == nil {
		return 0, false
	}
	return tree.root.min().key, true
}

// Max returns the largest key; ok is false for an empty tree.
func (tree *Tree) Max() (key int, ok bool) {
	if tree.root == nil {
		return 0, false
	}
	return tree.root.max().key, true
}
