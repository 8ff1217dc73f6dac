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
	"slices"
	"testing"

	"github.com/cybrota/avltree/avl"
	"github.com/stretchr/testify/require"
)

func TestTraverseOrders(t *testing.T) {
	// perfect tree, no rotations:
	//        4
	//      2   6
	//     1 3 5 7
	tree := build(t, 4, 2, 6, 1, 3, 5, 7)

	tests := []struct {
		order avl.Order
		want  []int
	}{
		{avl.InOrder, []int{1, 2, 3, 4, 5, 6, 7}},
		{avl.PreOrder, []int{4, 2, 1, 3, 6, 5, 7}},
		{avl.PostOrder, []int{1, 3, 2, 5, 7, 6, 4}},
		{avl.LevelOrder, []int{4, 2, 6, 1, 3, 5, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			seq := tree.Traverse(tt.order)
			require.Equal(t, tt.want, slices.Collect(seq))
			// restartable: a second pass yields the same keys
			require.Equal(t, tt.want, slices.Collect(seq))
		})
	}
}

func TestTraverseEmptyAndUnknown(t *testing.T) {
	empty := avl.New()
	for _, order := range []avl.Order{avl.InOrder, avl.PreOrder, avl.PostOrder, avl.LevelOrder} {
		require.Empty(t, slices.Collect(empty.Traverse(order)), order.String())
	}
	tree := build(t, 1, 2, 3)
	require.Empty(t, slices.Collect(tree.Traverse(avl.Order(99))))
}

func TestTraverseStopsEarly(t *testing.T) {
	tree := avl.New()
	for i := 0; i < 100; i++ {
		tree.Insert(i)
	}
	for _, order := range []avl.Order{avl.InOrder, avl.PreOrder, avl.PostOrder, avl.LevelOrder} {
		var got []int
		for k := range tree.Traverse(order) {
			got = append(got, k)
			if len(got) == 3 {
				break
			}
		}
		require.Len(t, got, 3, order.String())
	}
}

func TestTraverseSeesLaterMutations(t *testing.T) {
	tree := build(t, 1, 2)
	seq := tree.Keys()
	tree.Insert(3)
	require.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
}

func TestLevels(t *testing.T) {
	require.Nil(t, avl.New().Levels())

	tree := build(t, 4, 2, 6, 1, 3, 5, 7)
	require.Equal(t, [][]int{{4}, {2, 6}, {1, 3, 5, 7}}, tree.Levels())

	skewed := build(t, 10, 20, 30, 40)
	levels := skewed.Levels()
	require.Len(t, levels, skewed.Height())
	require.Equal(t, [][]int{{20}, {10, 30}, {40}}, levels)
}
