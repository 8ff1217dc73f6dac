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
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes a sideways ASCII diagram of the tree to w: the right subtree
// above its parent, the left subtree below. With showHeight each key is
// followed by its cached height and balance factor. Nothing is written for
// an empty tree.
//
//	       /------+ 30
//	|------+ 20
//	       \------+ 10
func (tree *Tree) Print(w io.Writer, showHeight bool) error {
	p := &printer{w: w, showHeight: showHeight}
	p.print(tree.root, "", rootBranch)
	return p.err
}

type printer struct {
	w          io.Writer
	showHeight bool
	err        error
}

func (p *printer) print(node *Node, prefix string, br branch) {
	if node == nil || p.err != nil {
		return
	}
	if node.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		p.print(node.right, prefix+t, rightBranch)
	}

	connector := "|------+ "
	switch br {
	case leftBranch:
		connector = "\\------+ "
	case rightBranch:
		connector = "/------+ "
	}
	if p.showHeight {
		p.printf("%s%s%d h=%d b=%+d\n", prefix, connector, node.key, node.height, balanceFactor(node))
	} else {
		p.printf("%s%s%d\n", prefix, connector, node.key)
	}

	if node.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		p.print(node.left, prefix+t, leftBranch)
	}
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
