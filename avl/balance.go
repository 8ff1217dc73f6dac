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

func height(node *Node) int {
	if node == nil {
		return 0
	}
	return node.height
}

func size(node *Node) int {
	if node == nil {
		return 0
	}
	return node.size
}

// update recomputes the cached height and size of node from its children.
// Children must already be up to date.
func update(node *Node) {
	node.height = max(height(node.left), height(node.right)) + 1
	node.size = size(node.left) + size(node.right) + 1
}

func balanceFactor(node *Node) int {
	if node == nil {
		return 0
	}
	return height(node.left) - height(node.right)
}

func (tree *Tree) rotateLeft(node *Node) *Node {
	if node == nil || node.right == nil {
		return node
	}

	pivot := node.right
	node.right = pivot.left
	pivot.left = node

	// node is now below pivot, so it is updated first
	update(node)
	update(pivot)

	tree.opts.Observer.Rotated(RotateLeft, node.key)
	return pivot
}

func (tree *Tree) rotateRight(node *Node) *Node {
	if node == nil || node.left == nil {
		return node
	}

	pivot := node.left
	node.left = pivot.right
	pivot.right = node

	update(node)
	update(pivot)

	tree.opts.Observer.Rotated(RotateRight, node.key)
	return pivot
}

// rebalanceAfterInsert restores the balance of node after key was inserted
// somewhere below it. The side that grew is identified by comparing key with
// the child's key.
func (tree *Tree) rebalanceAfterInsert(node *Node, key int) *Node {
	b := balanceFactor(node)
	switch {
	case b > 1 && key < node.left.key:
		return tree.rotateRight(node)
	case b > 1 && key > node.left.key:
		node.left = tree.rotateLeft(node.left)
		return tree.rotateRight(node)
	case b < -1 && key > node.right.key:
		return tree.rotateLeft(node)
	case b < -1 && key < node.right.key:
		node.right = tree.rotateRight(node.right)
		return tree.rotateLeft(node)
	}
	return node
}

// rebalance restores the balance of node using only child heights. It is
// used after deletion, where no inserted key identifies the heavy grandchild.
func (tree *Tree) rebalance(node *Node) *Node {
	b := balanceFactor(node)

	// Left-heavy
	if b > 1 {
		if balanceFactor(node.left) >= 0 {
			return tree.rotateRight(node)
		}
		node.left = tree.rotateLeft(node.left)
		return tree.rotateRight(node)
	}

	// Right-heavy
	if b < -1 {
		if balanceFactor(node.right) <= 0 {
			return tree.rotateLeft(node)
		}
		node.right = tree.rotateRight(node.right)
		return tree.rotateLeft(node)
	}

	return node
}
