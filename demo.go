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
	"strings"

	"github.com/cybrota/ordmap/ordmap"
)

const demoKeys = "S E A R C H E X A M P L E"

// runDemo builds the S E A R C H E X A M P L E map (value = position of
// the last occurrence), answers the usual ordered queries and then
// shrinks it, printing the map after every step.
func runDemo(w io.Writer, balanced bool) error {
	var opts []ordmap.Option
	if !balanced {
		opts = append(opts, ordmap.Unbalanced())
	}
	tree := ordmap.New[string, int](opts...)
	for i, k := range strings.Fields(demoKeys) {
		if err := tree.Put(k, i); err != nil {
			return err
		}
	}

	section := func(title string) error {
		fmt.Fprintf(w, "%s== %s ==%s\n", Green, title, Reset)
		return tree.Print(w)
	}

	if err := section(fmt.Sprintf("%d keys from %q", tree.Size(), demoKeys)); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s== queries ==%s\n", Green, Reset)
	v, err := tree.Get("M")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "get M       %d\n", v)

	minKey, err := tree.Min()
	if err != nil {
		return err
	}
	maxKey, err := tree.Max()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "min         %s\n", minKey)
	fmt.Fprintf(w, "max         %s\n", maxKey)

	optional := func(key string, ok bool) string {
		if !ok {
			return noneMarker
		}
		return key
	}
	fmt.Fprintf(w, "floor H     %s\n", optional(tree.Floor("H")))
	fmt.Fprintf(w, "floor V     %s\n", optional(tree.Floor("V")))
	fmt.Fprintf(w, "ceiling O   %s\n", optional(tree.Ceiling("O")))
	fmt.Fprintf(w, "select 8    %s\n", optional(tree.Select(8)))
	fmt.Fprintf(w, "rank R      %d\n", tree.Rank("R"))
	fmt.Fprintf(w, "height      %d\n\n", tree.Height())

	if err := tree.DeleteMin(); err != nil {
		return err
	}
	if err := section("after deleteMin"); err != nil {
		return err
	}
	if err := tree.DeleteMax(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := section("after deleteMax"); err != nil {
		return err
	}
	if err := tree.Delete("P"); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := section("after delete P"); err != nil {
		return err
	}

	return tree.Check()
}
