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
	"time"

	"github.com/patrickmn/go-cache"
)

// NewLookupCache creates the cache holding recently read values
func NewLookupCache(expiration, cleanup time.Duration) *cache.Cache {
	return cache.New(expiration, cleanup)
}

func CacheLookup(c *cache.Cache, key string, value string) {
	// Set overwrites, so a re-read after expiry just refreshes the entry
	c.Set(key, value, cache.DefaultExpiration)
}

func GetCachedLookup(c *cache.Cache, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	return val.(string), true
}

// InvalidateLookup must be called whenever key is written or removed
func InvalidateLookup(c *cache.Cache, key string) {
	c.Delete(key)
}
