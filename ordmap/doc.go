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

// Package ordmap implements an in-memory ordered map backed by an AVL
// tree. Every node records both its height and the size of its subtree,
// so besides Get/Put/Delete the map answers Rank, Select, Floor and
// Ceiling in O(log n).
//
// Note: a Tree is not safe for concurrent use. Either access it from a
// single goroutine or guard it with a mutex.
//
// Keys are ordered by a three-way comparison function supplied when the
// tree is built (cmp.Compare for ordered types). An existing key that is
// inserted again has its value overwritten in place.
//
// The Unbalanced option builds a plain binary search tree with the same
// API and size bookkeeping but no rotations.
package ordmap
