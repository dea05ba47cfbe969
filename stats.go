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
	"math"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// renderStats formats tree shape, invariant checks and lookup counters
// as a table.
func renderStats(store *Store) string {
	tree := store.Tree()

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Metric", "Value"})

	variant := "AVL"
	if !tree.Balanced() {
		variant = "BST"
	}
	tbl.AppendRow(table.Row{"variant", variant})
	tbl.AppendRow(table.Row{"keys", humanize.Comma(int64(tree.Size()))})
	tbl.AppendRow(table.Row{"height", tree.Height()})
	tbl.AppendRow(table.Row{"min height", minHeight(tree.Size())})

	minKey, maxKey := noneMarker, noneMarker
	if k, err := tree.Min(); err == nil {
		minKey = k
	}
	if k, err := tree.Max(); err == nil {
		maxKey = k
	}
	tbl.AppendRow(table.Row{"min key", minKey})
	tbl.AppendRow(table.Row{"max key", maxKey})

	tbl.AppendSeparator()
	tbl.AppendRow(table.Row{"ordered", tree.IsBST()})
	tbl.AppendRow(table.Row{"balanced", tree.IsBalanced()})
	tbl.AppendRow(table.Row{"sizes consistent", tree.IsSizeConsistent()})

	stats := store.Stats()
	tbl.AppendSeparator()
	tbl.AppendRow(table.Row{"cache hits", humanize.Comma(int64(stats.CacheHits))})
	tbl.AppendRow(table.Row{"filter skips", humanize.Comma(int64(stats.FilterSkips))})
	tbl.AppendRow(table.Row{"tree reads", humanize.Comma(int64(stats.TreeReads))})

	return tbl.Render()
}

// minHeight is the height of a perfectly balanced tree of n nodes
func minHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(n + 1))))
}
