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
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/ordmap/ordmap"
)

// LookupStats counts how Get requests were answered
type LookupStats struct {
	CacheHits   int
	FilterSkips int
	TreeReads   int
}

// Store is the string map behind the shell and the browser: the tree
// plus a lookup cache and a membership filter in front of Get.
// Not safe for concurrent use.
type Store struct {
	tree    *ordmap.Tree[string, string]
	lookups *cache.Cache
	filter  *MembershipFilter

	// deletes since the filter was last rebuilt
	staleFilterKeys int
	stats           LookupStats
}

func NewStore(config *Config) *Store {
	var opts []ordmap.Option
	if !config.Tree.Balanced {
		opts = append(opts, ordmap.Unbalanced())
	}
	return &Store{
		tree:    ordmap.New[string, string](opts...),
		lookups: NewLookupCache(config.Cache.TTL, config.Cache.Cleanup),
		filter:  NewMembershipFilter(config.Filter.Size, config.Filter.Hashes),
	}
}

// Tree gives read access to the underlying tree. Mutating it directly
// bypasses the cache invalidation.
func (s *Store) Tree() *ordmap.Tree[string, string] {
	return s.tree
}

func (s *Store) Stats() LookupStats {
	return s.stats
}

func (s *Store) Put(key, value string) error {
	if err := s.tree.Put(key, value); err != nil {
		return err
	}
	s.filter.Add(key)
	InvalidateLookup(s.lookups, key)
	return nil
}

func (s *Store) Get(key string) (string, error) {
	if !s.filter.MayContain(key) {
		s.stats.FilterSkips++
		return "", ordmap.ErrKeyNotFound
	}
	if value, ok := GetCachedLookup(s.lookups, key); ok {
		s.stats.CacheHits++
		return value, nil
	}

	s.stats.TreeReads++
	value, err := s.tree.Get(key)
	if err != nil {
		return "", err
	}
	CacheLookup(s.lookups, key, value)
	return value, nil
}

func (s *Store) Delete(key string) error {
	if err := s.tree.Delete(key); err != nil {
		return err
	}
	s.forget(key)
	return nil
}

func (s *Store) DeleteMin() error {
	key, err := s.tree.Min()
	if err != nil {
		return err
	}
	if err := s.tree.DeleteMin(); err != nil {
		return err
	}
	s.forget(key)
	return nil
}

func (s *Store) DeleteMax() error {
	key, err := s.tree.Max()
	if err != nil {
		return err
	}
	if err := s.tree.DeleteMax(); err != nil {
		return err
	}
	s.forget(key)
	return nil
}

// Load stores every entry in order, later duplicates win.
func (s *Store) Load(entries []DatasetEntry) error {
	for _, e := range entries {
		if err := s.Put(e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) forget(key string) {
	InvalidateLookup(s.lookups, key)
	s.staleFilterKeys++
	// once deleted keys outnumber live ones the filter mostly says "maybe"
	if s.staleFilterKeys > s.tree.Size() {
		s.filter.Reset(s.tree.Keys())
		s.staleFilterKeys = 0
	}
}
