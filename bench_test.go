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
	"bytes"
	"strings"
	"testing"
)

func TestRunBench(t *testing.T) {
	tests := []struct {
		name      string
		opts      BenchOptions
		maxHeight int
	}{
		{name: "balanced", opts: BenchOptions{Keys: 1000, Seed: 7, Balanced: true}, maxHeight: 14},
		{name: "unbalanced", opts: BenchOptions{Keys: 300, Seed: 7, Balanced: false}, maxHeight: 300},
		{name: "single key", opts: BenchOptions{Keys: 1, Seed: 1, Balanced: true}, maxHeight: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := runBench(tt.opts, nil)
			if err != nil {
				t.Fatalf("runBench returned error: %v", err)
			}
			if result.Inserted != tt.opts.Keys || result.Lookups != tt.opts.Keys {
				t.Errorf("result = %+v; want %d inserts and lookups", result, tt.opts.Keys)
			}
			if want := (tt.opts.Keys + 1) / 2; result.Deleted != want {
				t.Errorf("Deleted = %d; want %d", result.Deleted, want)
			}
			if result.MaxHeight > tt.maxHeight {
				t.Errorf("MaxHeight = %d; want <= %d", result.MaxHeight, tt.maxHeight)
			}
			if result.Checks == 0 {
				t.Errorf("no invariant checks were run")
			}
		})
	}
}

func TestRunBenchRejectsNonPositiveKeys(t *testing.T) {
	if _, err := runBench(BenchOptions{Keys: 0}, nil); err == nil {
		t.Errorf("expected error for zero keys")
	}
}

func TestRunBenchDrawsProgress(t *testing.T) {
	var progress, out bytes.Buffer
	result, err := runBench(BenchOptions{Keys: 50, Seed: 3, Balanced: true}, &progress)
	if err != nil {
		t.Fatalf("runBench returned error: %v", err)
	}
	if progress.Len() == 0 {
		t.Errorf("no progress output was written")
	}

	printBenchResult(&out, result)
	for _, label := range []string{"inserted", "lookups", "deleted", "height", "checks", "elapsed"} {
		if !strings.Contains(out.String(), label) {
			t.Errorf("bench summary is missing %q:\n%s", label, out.String())
		}
	}
}

func TestRenderStats(t *testing.T) {
	store := NewStore(DefaultConfig())
	for _, k := range []string{"m", "c", "x", "a"} {
		_ = store.Put(k, k)
	}
	_, _ = store.Get("m")
	_, _ = store.Get("m")

	out := renderStats(store)
	for _, want := range []string{"AVL", "min key", "max key", "cache hits", "tree reads", "sizes consistent"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats table is missing %q:\n%s", want, out)
		}
	}

	empty := renderStats(NewStore(DefaultConfig()))
	if !strings.Contains(empty, noneMarker) {
		t.Errorf("stats of an empty store should show %q:\n%s", noneMarker, empty)
	}
}

func TestMinHeight(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{7, 3},
		{8, 4},
	}
	for _, tt := range tests {
		if got := minHeight(tt.n); got != tt.expected {
			t.Errorf("minHeight(%d) = %d; want %d", tt.n, got, tt.expected)
		}
	}
}

func TestRunDemo(t *testing.T) {
	for _, balanced := range []bool{true, false} {
		var out bytes.Buffer
		if err := runDemo(&out, balanced); err != nil {
			t.Fatalf("runDemo(balanced=%v) returned error: %v", balanced, err)
		}

		text := out.String()
		for _, want := range []string{
			"A -> 8\n",
			"get M       9\n",
			"min         A\n",
			"max         X\n",
			"floor H     H\n",
			"floor V     S\n",
			"ceiling O   P\n",
			"select 8    S\n",
			"rank R      7\n",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("demo output (balanced=%v) is missing %q", balanced, want)
			}
		}

		// the final listing comes after the last header
		final := text[strings.LastIndex(text, "after delete P"):]
		final = final[strings.Index(final, "\n")+1:]
		expected := "C -> 4\nE -> 12\nH -> 5\nL -> 11\nM -> 9\nR -> 3\nS -> 0\n"
		if final != expected {
			t.Errorf("final listing = %q; want %q", final, expected)
		}
	}
}
