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
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/cybrota/avltree/avl"
	"github.com/stretchr/testify/require"
)

// heightBound is the classic AVL worst case, rounded up: 1.45 * log2(n + 2).
func heightBound(n int) float64 {
	return 1.45 * math.Log2(float64(n+2))
}

func TestInvariantsAfterEveryInsert(t *testing.T) {
	ascending := make([]int, 500)
	descending := make([]int, 500)
	zigzag := make([]int, 500)
	for i := range ascending {
		ascending[i] = i
		descending[i] = 500 - i
		if i%2 == 0 {
			zigzag[i] = i
		} else {
			zigzag[i] = -i
		}
	}
	rng := rand.New(rand.NewSource(7))
	random := make([]int, 500)
	for i := range random {
		random[i] = rng.Intn(1000) - 500 // duplicates included
	}

	sequences := map[string][]int{
		"ascending":  ascending,
		"descending": descending,
		"zigzag":     zigzag,
		"random":     random,
	}
	for name, keys := range sequences {
		t.Run(name, func(t *testing.T) {
			tree := avl.New()
			seen := map[int]bool{}
			for _, k := range keys {
				want := avl.Inserted
				if seen[k] {
					want = avl.Duplicate
				}
				seen[k] = true

				require.Equal(t, want, tree.Insert(k), "key %d", k)
				require.NoError(t, tree.Check())
				require.Equal(t, len(seen), tree.Size())
				require.LessOrEqual(t, float64(tree.Height()), heightBound(tree.Size()))
			}
		})
	}
}

func TestPermutationsGiveSortedInOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	keys := make([]int, 200)
	for i := range keys {
		keys[i] = i*3 - 100
	}
	for round := 0; round < 20; round++ {
		perm := rng.Perm(len(keys))
		tree := avl.New()
		for _, idx := range perm {
			tree.Insert(keys[idx])
		}
		require.Equal(t, keys, slices.Collect(tree.Traverse(avl.InOrder)), "round %d", round)
	}
}

func TestRandomInsertDeleteRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := avl.New()
	present := map[int]bool{}

	for i := 0; i < 3000; i++ {
		k := rng.Intn(400)
		if rng.Float64() < 0.6 {
			out := tree.Insert(k)
			if present[k] {
				require.Equal(t, avl.Duplicate, out)
			} else {
				require.Equal(t, avl.Inserted, out)
			}
			present[k] = true
			require.True(t, tree.Contains(k))
		} else {
			out := tree.Delete(k)
			if present[k] {
				require.Equal(t, avl.Deleted, out)
			} else {
				require.Equal(t, avl.NotFound, out)
			}
			delete(present, k)
			require.False(t, tree.Contains(k))
		}
		require.NoError(t, tree.Check(), "step %d", i)
		require.Equal(t, len(present), tree.Size())
	}

	want := make([]int, 0, len(present))
	for k := range present {
		want = append(want, k)
	}
	slices.Sort(want)
	got := slices.Collect(tree.Keys())
	if len(want) == 0 {
		require.Empty(t, got)
	} else {
		require.Equal(t, want, got)
	}
}

func TestDuplicateInsertKeepsStructure(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tree := avl.New()
	for i := 0; i < 100; i++ {
		tree.Insert(rng.Intn(1000))
	}
	for k := range tree.Keys() {
		before := shape(tree.Root())
		require.Equal(t, avl.Duplicate, tree.Insert(k))
		require.Equal(t, before, shape(tree.Root()))
	}
}

func TestDeleteAllInRandomOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	tree := avl.New()
	for i := 0; i < 300; i++ {
		tree.Insert(i)
	}
	for _, k := range rng.Perm(300) {
		require.Equal(t, avl.Deleted, tree.Delete(k))
		require.NoError(t, tree.Check())
		require.LessOrEqual(t, float64(tree.Height()), heightBound(tree.Size()))
	}
	require.True(t, tree.IsEmpty())
}

func TestExtremeKeys(t *testing.T) {
	tree := build(t, math.MaxInt, math.MinInt, 0, -1, 1)
	require.Equal(t, []int{math.MinInt, -1, 0, 1, math.MaxInt}, slices.Collect(tree.Keys()))
	require.Equal(t, avl.Deleted, tree.Delete(math.MinInt))
	require.NoError(t, tree.Check())
}
