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

// Package avl implements a height-balanced binary search tree (AVL tree)
// over int keys.
//
// Every node caches the height of its subtree and the number of nodes in it.
// After each Insert or Delete the tree satisfies:
//
//   - ordering: keys in a left subtree < node key < keys in the right subtree
//   - heights:  height(n) = 1 + max(height(n.left), height(n.right)), height(nil) = 0
//   - balance:  -1 <= height(n.left) - height(n.right) <= 1
//   - sizes:    size(n) = 1 + size(n.left) + size(n.right)
//
// Keys are unique. Inserting a key that is already present and deleting a key
// that is absent are no-ops, reported through the returned Outcome rather than
// as failures:
//
//	tree := avl.New()
//	tree.Insert(10) // avl.Inserted
//	tree.Insert(10) // avl.Duplicate
//	tree.Delete(7)  // avl.NotFound
//
// Traversals are exposed as iter.Seq[int] values, so they are lazy and can be
// ranged over any number of times:
//
//	for key := range tree.Traverse(avl.LevelOrder) {
//		fmt.Println(key)
//	}
//
// Thread safety:
//
// A Tree is not safe for concurrent mutation. Callers must serialise Insert,
// Delete and Clear. Read-only calls (Contains, Traverse, Height, Size, Rank,
// Select, Print) may run concurrently with each other, but never with a
// mutation.
package avl
