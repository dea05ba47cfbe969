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

package ordmap_test

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cybrota/ordmap/ordmap"
)

func Example() {
	tree := ordmap.New[string, int]()
	for i, k := range strings.Split("SEARCHEXAMPLE", "") {
		_ = tree.Put(k, i)
	}

	fmt.Println("size:", tree.Size())
	minKey, _ := tree.Min()
	maxKey, _ := tree.Max()
	fmt.Println("min:", minKey, "max:", maxKey)
	floor, _ := tree.Floor("H")
	ceiling, _ := tree.Ceiling("O")
	fmt.Println("floor(H):", floor, "ceiling(O):", ceiling)
	nth, _ := tree.Select(8)
	fmt.Println("select(8):", nth, "rank(R):", tree.Rank("R"))

	if _, err := tree.Get("Z"); errors.Is(err, ordmap.ErrKeyNotFound) {
		fmt.Println("Z not found")
	}
	// Output:
	// size: 10
	// min: A max: X
	// floor(H): H ceiling(O): P
	// select(8): S rank(R): 7
	// Z not found
}

func ExampleTree_Print() {
	tree := ordmap.New[int, string]()
	for _, k := range []int{3, 1, 2} {
		_ = tree.Put(k, strings.Repeat("*", k))
	}
	_ = tree.Print(os.Stdout)
	// Output:
	// 1 -> *
	// 2 -> **
	// 3 -> ***
}
