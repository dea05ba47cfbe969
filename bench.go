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
	"io"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/ordmap/ordmap"
)

type BenchOptions struct {
	Keys     int
	Seed     int64
	Balanced bool
	// number of checkpoints at which the invariants are verified
	Checkpoints int
}

type BenchResult struct {
	Inserted  int
	Deleted   int
	Lookups   int
	Checks    int
	MaxHeight int
	Duration  time.Duration
}

// runBench inserts Keys random keys, looks each one up, then deletes
// every other one, verifying the tree at regular checkpoints. Progress
// is drawn on progressOut when it is not nil.
func runBench(opts BenchOptions, progressOut io.Writer) (BenchResult, error) {
	var result BenchResult
	if opts.Keys <= 0 {
		return result, fmt.Errorf("bench needs a positive key count, got %d", opts.Keys)
	}
	if opts.Checkpoints <= 0 {
		opts.Checkpoints = 10
	}

	var treeOpts []ordmap.Option
	if !opts.Balanced {
		treeOpts = append(treeOpts, ordmap.Unbalanced())
	}
	tree := ordmap.New[string, int](treeOpts...)
	rng := rand.New(rand.NewSource(opts.Seed))

	keys := make([]string, opts.Keys)
	for i, k := range rng.Perm(opts.Keys) {
		keys[i] = fmt.Sprintf("k%09d", k)
	}

	total := 3 * opts.Keys
	every := max(total/opts.Checkpoints, 1)

	var bar *progressbar.ProgressBar
	if progressOut != nil {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(progressOut),
			progressbar.OptionSetDescription("🌳 Running workload..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerPadding: "░",
				BarStart:      "|",
				BarEnd:        "|",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(progressOut)
			}),
		)
	}

	step := 0
	tick := func() error {
		step++
		if bar != nil {
			_ = bar.Add(1)
		}
		result.MaxHeight = max(result.MaxHeight, tree.Height())
		if step%every == 0 {
			result.Checks++
			if err := tree.Check(); err != nil {
				return fmt.Errorf("after %d operations: %w", step, err)
			}
		}
		return nil
	}

	start := time.Now()
	for i, k := range keys {
		if err := tree.Put(k, i); err != nil {
			return result, err
		}
		result.Inserted++
		if err := tick(); err != nil {
			return result, err
		}
	}

	for i, k := range keys {
		v, err := tree.Get(k)
		if err != nil {
			return result, fmt.Errorf("lookup of %s: %w", k, err)
		}
		if v != i {
			return result, fmt.Errorf("lookup of %s returned %d, want %d", k, v, i)
		}
		result.Lookups++
		if err := tick(); err != nil {
			return result, err
		}
	}

	for i, k := range keys {
		if i%2 == 0 {
			if err := tree.Delete(k); err != nil {
				return result, fmt.Errorf("delete of %s: %w", k, err)
			}
			result.Deleted++
		} else if rank := tree.Rank(k); rank < 0 || rank >= tree.Size() {
			return result, fmt.Errorf("rank of live key %s out of range: %d", k, rank)
		}
		if err := tick(); err != nil {
			return result, err
		}
	}
	result.Duration = time.Since(start)

	result.Checks++
	if err := tree.Check(); err != nil {
		return result, err
	}
	if want := opts.Keys - result.Deleted; tree.Size() != want {
		return result, fmt.Errorf("size %d after workload, want %d", tree.Size(), want)
	}
	return result, nil
}

func printBenchResult(w io.Writer, result BenchResult) {
	fmt.Fprintf(w, "%sinserted%s  %s\n", Green, Reset, humanize.Comma(int64(result.Inserted)))
	fmt.Fprintf(w, "%slookups%s   %s\n", Green, Reset, humanize.Comma(int64(result.Lookups)))
	fmt.Fprintf(w, "%sdeleted%s   %s\n", Green, Reset, humanize.Comma(int64(result.Deleted)))
	fmt.Fprintf(w, "%sheight%s    %d (max seen)\n", Green, Reset, result.MaxHeight)
	fmt.Fprintf(w, "%schecks%s    %d passed\n", Green, Reset, result.Checks)
	fmt.Fprintf(w, "%selapsed%s   %s\n", Green, Reset, result.Duration.Round(time.Microsecond))
}
