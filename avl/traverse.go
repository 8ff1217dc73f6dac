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

import "iter"

// Traverse returns the keys in the given order. The sequence reads the tree
// each time it is ranged over, stops as soon as the consumer stops, and is
// empty for an empty tree or an unknown order.
func (tree *Tree) Traverse(order Order) iter.Seq[int] {
	return func(yield func(int) bool) {
		switch order {
		case InOrder:
			inorder(tree.root, yield)
		case PreOrder:
			preorder(tree.root, yield)
		case PostOrder:
			postorder(tree.root, yield)
		case LevelOrder:
			levelorder(tree.root, yield)
		}
	}
}

// Keys returns the keys in ascending order.
func (tree *Tree) Keys() iter.Seq[int] {
	return tree.Traverse(InOrder)
}

func inorder(node *Node, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	return inorder(node.left, yield) && yield(node.key) && inorder(node.right, yield)
}

func preorder(node *Node, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	return yield(node.key) && preorder(node.left, yield) && preorder(node.right, yield)
}

func postorder(node *Node, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	return postorder(node.left, yield) && postorder(node.right, yield) && yield(node.key)
}

func levelorder(root *Node, yield func(int) bool) {
	if root == nil {
		return
	}
	queue := []*Node{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if !yield(node.key) {
			return
		}
		if node.left != nil {
			queue = append(queue, node.left)
		}
		if node.right != nil {
			queue = append(queue, node.right)
		}
	}
}

// Levels returns the keys grouped by depth: Levels()[0] holds the root,
// Levels()[1] its children, and so on, each level left to right.
// The result has Height() entries.
func (tree *Tree) Levels() [][]int {
	if tree.root == nil {
		return nil
	}
	levels := make([][]int, 0, tree.Height())
	current := []*Node{tree.root}
	for len(current) > 0 {
		keys := make([]int, 0, len(current))
		var next []*Node
		for _, node := range current {
			keys = append(keys, node.key)
			if node.left != nil {
				next = append(next, node.left)
			}
			if node.right != nil {
				next = append(next, node.right)
			}
		}
		levels = append(levels, keys)
		current = next
	}
	return levels
}
