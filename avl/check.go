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

// Check verifies ordering, uniqueness, cached heights, cached sizes and the
// balance condition for every node. It returns nil for a consistent tree,
// otherwise an error wrapping ErrInvariantViolation that names the first
// offending key.
func (tree *Tree) Check() error {
	_, _, err := check(tree.root, bound{}, bound{})
	return err
}

// bound is an optional exclusive limit on the keys of a subtree.
type bound struct {
	key int
	set bool
}

// check returns the true height and size of the subtree rooted at node.
func check(node *Node, lo, hi bound) (h, s int, err error) {
	if node == nil {
		return 0, 0, nil
	}
	if lo.set && node.key <= lo.key {
		return 0, 0, fmt.Errorf("%w: key %d not greater than ancestor %d", ErrInvariantViolation, node.key, lo.key)
	}
	if hi.set && node.key >= hi.key {
		return 0, 0, fmt.Errorf("%w: key %d not less than ancestor %d", ErrInvariantViolation, node.key, hi.key)
	}

	lh, ls, err := check(node.left, lo, bound{key: node.key, set: true})
	if err != nil {
		return 0, 0, err
	}
	rh, rs, err := check(node.right, bound{key: node.key, set: true}, hi)
	if err != nil {
		return 0, 0, err
	}

	h = max(lh, rh) + 1
	s = ls + rs + 1
	if node.height != h {
		return 0, 0, fmt.Errorf("%w: key %d caches height %d, actual %d", ErrInvariantViolation, node.key, node.height, h)
	}
	if node.size != s {
		return 0, 0, fmt.Errorf("%w: key %d caches size %d, actual %d", ErrInvariantViolation, node.key, node.size, s)
	}
	if b := lh - rh; b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("%w: key %d has balance factor %d", ErrInvariantViolation, node.key, b)
	}
	return h, s, nil
}
