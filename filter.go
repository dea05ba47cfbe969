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
	"github.com/willf/bloom"
)

// MembershipFilter remembers every key ever stored. A negative answer
// is exact, a positive one may be a false positive (and always is for
// keys deleted since the last Reset).
type MembershipFilter struct {
	bloomFilter *bloom.BloomFilter
}

func NewMembershipFilter(size, hashes uint) *MembershipFilter {
	return &MembershipFilter{bloomFilter: bloom.New(size, hashes)}
}

func (mf *MembershipFilter) Add(key string) {
	mf.bloomFilter.AddString(key)
}

func (mf *MembershipFilter) MayContain(key string) bool {
	return mf.bloomFilter.TestString(key)
}

// Reset rebuilds the filter from the live keys, dropping deleted ones.
func (mf *MembershipFilter) Reset(keys []string) {
	mf.bloomFilter.ClearAll()
	for _, key := range keys {
		mf.bloomFilter.AddString(key)
	}
}
