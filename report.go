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

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/cybrota/avltree/avl"
)

// rotationCounter tallies rebalancing work while a tree is built.
type rotationCounter struct {
	left, right int
}

func (c *rotationCounter) Rotated(r avl.Rotation, _ int) {
	if r == avl.RotateLeft {
		c.left++
	} else {
		c.right++
	}
}

// fanout forwards rotation events to several observers.
type fanout []avl.Observer

func (f fanout) Rotated(r avl.Rotation, pivot int) {
	for _, o := range f {
		o.Rotated(r, pivot)
	}
}

type TreeStats struct {
	Size           int
	Height         int
	HeightBound    int
	Min, Max       int
	Empty          bool
	LeftRotations  int
	RightRotations int
}

func collectStats(tree *avl.Tree, rotations *rotationCounter) TreeStats {
	stats := TreeStats{
		Size:        tree.Size(),
		Height:      tree.Height(),
		HeightBound: int(math.Floor(1.45 * math.Log2(float64(tree.Size()+2)))),
		Empty:       tree.IsEmpty(),
	}
	stats.Min, _ = tree.Min()
	stats.Max, _ = tree.Max()
	if rotations != nil {
		stats.LeftRotations = rotations.left
		stats.RightRotations = rotations.right
	}
	return stats
}

// Rows returns label/value pairs in display order.
func (s TreeStats) Rows() [][2]string {
	minKey, maxKey := "-", "-"
	if !s.Empty {
		minKey = strconv.Itoa(s.Min)
		maxKey = strconv.Itoa(s.Max)
	}
	return [][2]string{
		{"size", strconv.Itoa(s.Size)},
		{"height", strconv.Itoa(s.Height)},
		{"avl bound", strconv.Itoa(s.HeightBound)},
		{"min", minKey},
		{"max", maxKey},
		{"rotations", fmt.Sprintf("%d (left %d, right %d)", s.LeftRotations+s.RightRotations, s.LeftRotations, s.RightRotations)},
	}
}

func statsMarkdown(s TreeStats) string {
	var b strings.Builder
	b.WriteString("# Tree statistics\n\n")
	b.WriteString("| metric | value |\n")
	b.WriteString("|---|---|\n")
	for _, row := range s.Rows() {
		fmt.Fprintf(&b, "| %s | %s |\n", row[0], row[1])
	}
	return b.String()
}

// renderStatsMarkdown renders the report for the terminal, falling back to
// the raw markdown if glamour cannot.
func renderStatsMarkdown(s TreeStats) string {
	md := statsMarkdown(s)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		return md
	}
	if rendered, err := renderer.Render(md); err == nil {
		return rendered
	}
	return md
}
