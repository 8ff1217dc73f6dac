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

func TestRankSelect(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	tree := avl.New()
	for _, k := range rng.Perm(250) {
		tree.Insert(k * 2)
	}
	// remove a few so sizes are exercised after deletes as well
	for k := 0; k < 500; k += 14 {
		tree.Delete(k)
	}
	require.NoError(t, tree.Check())

	sorted := slices.Collect(tree.Keys())
	for i, k := range sorted {
		rank, ok := tree.Rank(k)
		require.True(t, ok)
		require.Equal(t, i, rank, "rank of %d", k)

		got, err := tree.Select(i)
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	_, ok := tree.Rank(1) // odd keys were never inserted
	require.False(t, ok)
}

func TestSelectOutOfRange(t *testing.T) {
	tree := build(t, 1, 2, 3)
	for _, i := range []int{-1, 3, 100} {
		_, err := tree.Select(i)
		require.ErrorIs(t, err, avl.ErrOutOfRange)
	}
	_, err := avl.New().Select(0)
	require.ErrorIs(t, err, avl.ErrOutOfRange)
}
