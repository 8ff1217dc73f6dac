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
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the avl package.
var (
	// ErrDuplicateKey is reported when inserting a key already present in the tree.
	ErrDuplicateKey = errors.New("avl: duplicate key")

	// ErrKeyNotFound is reported when deleting a key that is not in the tree.
	ErrKeyNotFound = errors.New("avl: key not found")

	// ErrInvariantViolation is returned by Check when a structural invariant
	// does not hold. It indicates a defect, never a caller mistake.
	ErrInvariantViolation = errors.New("avl: invariant violation")

	// ErrInvalidPostorder is returned by FromPostorder when the keys are not
	// the post-order traversal of a binary search tree.
	ErrInvalidPostorder = errors.New("avl: invalid post-order sequence")

	// ErrOutOfRange is returned by Select for an index outside [0, Size).
	ErrOutOfRange = errors.New("avl: index out of range")

	// ErrUnknownOrder is returned by ParseOrder for an unrecognised name.
	ErrUnknownOrder = errors.New("avl: unknown traversal order")
)

// Outcome reports what a mutating call did to the tree.
type Outcome int

const (
	// Inserted means a new key was added.
	Inserted Outcome = iota + 1
	// Duplicate means the key was already present; the tree is unchanged.
	Duplicate
	// Deleted means the key was removed.
	Deleted
	// NotFound means the key was absent; the tree is unchanged.
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Duplicate:
		return "duplicate"
	case Deleted:
		return "deleted"
	case NotFound:
		return "not found"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Err maps the outcome onto its sentinel error: nil for Inserted and
// Deleted, ErrDuplicateKey for Duplicate and ErrKeyNotFound for NotFound.
func (o Outcome) Err() error {
	switch o {
	case Duplicate:
		return ErrDuplicateKey
	case NotFound:
		return ErrKeyNotFound
	default:
		return nil
	}
}

// Order selects the sequence produced by Traverse.
type Order int

const (
	// InOrder visits left subtree, node, right subtree (ascending keys).
	InOrder Order = iota
	// PreOrder visits node, left subtree, right subtree.
	PreOrder
	// PostOrder visits left subtree, right subtree, node.
	PostOrder
	// LevelOrder visits nodes breadth-first, left to right.
	LevelOrder
)

var orderNames = map[Order]string{
	InOrder:    "in",
	PreOrder:   "pre",
	PostOrder:  "post",
	LevelOrder: "level",
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder accepts "in", "pre", "post" and "level", optionally suffixed
// with "order" ("inorder", "level-order"), case-insensitively.
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(strings.TrimSuffix(name, "order"), "-")
	for order, n := range orderNames {
		if n == name {
			return order, nil
		}
	}
	return InOrder, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Rotation is the direction of a single rotation.
type Rotation int

const (
	// RotateLeft moves a right child up into its parent's place.
	RotateLeft Rotation = iota
	// RotateRight moves a left child up into its parent's place.
	RotateRight
)

func (r Rotation) String() string {
	if r == RotateLeft {
		return "left"
	}
	return "right"
}

//go:generate mockgen -destination=mocks/mock_observer.go -package=mocks github.com/cybrota/avltree/avl Observer

// Observer is notified of structural changes made while rebalancing.
type Observer interface {
	// Rotated is called once per single rotation. pivot is the key of the
	// node that moved down. A double rotation produces two calls.
	Rotated(r Rotation, pivot int)
}

type nopObserver struct{}

func (nopObserver) Rotated(Rotation, int) {}

// Options configures a Tree.
type Options struct {
	// Observer receives rebalancing events. Never nil after DefaultOptions.
	Observer Observer
}

// Option is a functional option for New and FromPostorder.
type Option func(*Options)

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{Observer: nopObserver{}}
}

// WithObserver registers o to receive rotation events. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Observer = o
		}
	}
}
