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
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheLookupAndGetCachedLookup(t *testing.T) {
	c := NewLookupCache(time.Minute, time.Minute)
	key := "testKey"
	value := "value for testKey"

	// Initially, GetCachedLookup should miss.
	if got, ok := GetCachedLookup(c, key); ok {
		t.Errorf("GetCachedLookup(%q) = %q, true; want miss", key, got)
	}

	CacheLookup(c, key, value)

	if got, ok := GetCachedLookup(c, key); !ok || got != value {
		t.Errorf("GetCachedLookup(%q) = %q, %v; want %q, true", key, got, ok, value)
	}

	InvalidateLookup(c, key)
	if _, ok := GetCachedLookup(c, key); ok {
		t.Errorf("GetCachedLookup(%q) hit after InvalidateLookup", key)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := "expiringKey"
	value := "This value should expire soon."

	CacheLookup(c, key, value)

	// Immediately after caching, the value should be retrievable.
	if got, ok := GetCachedLookup(c, key); !ok || got != value {
		t.Errorf("GetCachedLookup(%q) = %q; want %q", key, got, value)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got, ok := GetCachedLookup(c, key); ok {
		t.Errorf("After expiration, GetCachedLookup(%q) = %q; want miss", key, got)
	}
}

func TestMembershipFilter(t *testing.T) {
	f := NewMembershipFilter(1<<10, 4)
	f.Add("alpha")
	f.Add("beta")

	for _, key := range []string{"alpha", "beta"} {
		if !f.MayContain(key) {
			t.Errorf("MayContain(%q) = false after Add", key)
		}
	}

	// a bloom filter never gives false negatives, so after Reset only the
	// new keys are guaranteed to be present
	f.Reset([]string{"gamma"})
	if !f.MayContain("gamma") {
		t.Errorf("MayContain(%q) = false after Reset", "gamma")
	}
}
