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

package avl_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/cybrota/avltree/avl"
	"github.com/stretchr/testify/require"
)

func TestFromPostorderRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	tree := avl.New()
	for i := 0; i < 400; i++ {
		tree.Insert(rng.Intn(2000) - 1000)
	}

	post := slices.Collect(tree.Traverse(avl.PostOrder))
	rebuilt, err := avl.FromPostorder(post)
	require.NoError(t, err)
	require.Equal(t, shape(tree.Root()), shape(rebuilt.Root()))
	require.Equal(t, tree.Size(), rebuilt.Size())

	// the rebuilt tree is a normal tree
	require.Equal(t, avl.Inserted, rebuilt.Insert(5000))
	require.NoError(t, rebuilt.Check())
}

func TestFromPostorderEmpty(t *testing.T) {
	tree, err := avl.FromPostorder(nil)
	require.NoError(t, err)
	require.True(t, tree.IsEmpty())
}

func TestFromPostorderErrors(t *testing.T) {
	tests := []struct {
		name string
		keys []int
		want error
	}{
		{"duplicate key", []int{10, 10, 20}, avl.ErrInvalidPostorder},
		{"not a bst post-order", []int{30, 10, 20}, avl.ErrInvalidPostorder},
		{"unbalanced chain", []int{30, 20, 10}, avl.ErrInvariantViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := avl.FromPostorder(tt.keys)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
