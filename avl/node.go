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

// Node is one key in a Tree. A node owns its children; there are no parent
// links. Nodes are read-only outside the package.
type Node struct {
	key    int
	height int // nodes on the longest path down to a leaf, counting this one
	size   int // nodes in this subtree, counting this one
	left   *Node
	right  *Node
}

func newNode(key int) *Node {
	return &Node{key: key, height: 1, size: 1}
}

// Key returns the key stored at n.
func (n *Node) Key() int {
	return n.key
}

// Height returns the cached subtree height; 0 for a nil node.
func (n *Node) Height() int {
	return height(n)
}

// Size returns the number of nodes in the subtree rooted at n; 0 for a nil node.
func (n *Node) Size() int {
	return size(n)
}

// Balance returns height(left) - height(right); 0 for a nil node.
func (n *Node) Balance() int {
	return balanceFactor(n)
}

// Left returns the left child, or nil.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// min returns the leftmost node of the subtree.
func (n *Node) min() *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of the subtree.
func (n *Node) max() *Node {
	for n.right != nil {
		n = n.right
	}
	return n
}
