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

package ordmap

import "errors"

var (
	// ErrInvalidArgument is returned for a nil key or a nil comparison function.
	ErrInvalidArgument = errors.New("ordmap: invalid argument")

	// ErrEmptyTree is returned by structural queries on a tree with no nodes.
	ErrEmptyTree = errors.New("ordmap: empty tree")

	// ErrKeyNotFound is returned by Get and Delete when the key is absent.
	ErrKeyNotFound = errors.New("ordmap: key not found")

	// ErrCorrupt is returned by Check when an invariant does not hold.
	ErrCorrupt = errors.New("ordmap: corrupt tree")
)
