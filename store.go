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

	"github.com/cybrota/avlstore/avl"
	"github.com/cybrota/avlstore/ops"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

// Store is a string key/value store on top of an AVL tree. A bloom filter
// rejects keys that were never inserted before the tree is walked, and a
// lookup cache memoises hits until the key is written again.
type Store struct {
	tree    *avl.Tree[string, string]
	lookups *cache.Cache
	filter  *bloom.BloomFilter

	bloomConfig BloomConfig
	// deletions since the filter was last rebuilt; removed keys stay set in
	// the filter until then
	staleKeys int
}

func NewStore(config *Config) *Store {
	s := &Store{
		tree:        avl.New[string, string](),
		bloomConfig: config.Bloom,
	}
	if config.Cache.Enabled {
		s.lookups = NewLookupCache(config.Cache)
	}
	s.rebuildFilter()
	return s
}

func (s *Store) rebuildFilter() {
	s.staleKeys = 0
	if !s.bloomConfig.Enabled || s.bloomConfig.Size == 0 || s.bloomConfig.Hashes == 0 {
		s.filter = nil
		return
	}

	s.filter = bloom.New(s.bloomConfig.Size, s.bloomConfig.Hashes)
	for key := range s.tree.All() {
		s.filter.AddString(key)
	}
}

func (s *Store) mayContain(key string) bool {
	return s.filter == nil || s.filter.TestString(key)
}

func (s *Store) Put(key, value string) {
	s.tree.Insert(key, value)
	if s.filter != nil {
		s.filter.AddString(key)
	}
	if s.lookups != nil {
		InvalidateLookup(s.lookups, key)
	}
}

func (s *Store) Delete(key string) bool {
	if !s.mayContain(key) || !s.tree.Remove(key) {
		return false
	}
	if s.lookups != nil {
		InvalidateLookup(s.lookups, key)
	}

	s.staleKeys++
	if s.staleKeys > s.tree.Len() {
		s.rebuildFilter()
	}
	return true
}

// Get returns the value under key or an error wrapping avl.ErrKeyNotFound.
func (s *Store) Get(key string) (string, error) {
	if !s.mayContain(key) {
		return "", fmt.Errorf("%w: %s", avl.ErrKeyNotFound, key)
	}
	if s.lookups != nil {
		if value, ok := GetCachedLookup(s.lookups, key); ok {
			return value, nil
		}
	}

	value, err := s.tree.At(key)
	if err != nil {
		return "", err
	}
	if s.lookups != nil {
		CacheLookup(s.lookups, key, *value)
	}
	return *value, nil
}

func (s *Store) Find(key string) (string, bool) {
	value, err := s.Get(key)
	return value, err == nil
}

func (s *Store) Entries() []ops.Entry {
	entries := make([]ops.Entry, 0, s.tree.Len())
	for k, v := range s.tree.All() {
		entries = append(entries, ops.Entry{Key: k, Value: v})
	}
	return entries
}

func (s *Store) Reverse() []ops.Entry {
	entries := make([]ops.Entry, 0, s.tree.Len())
	for k, v := range s.tree.Backward() {
		entries = append(entries, ops.Entry{Key: k, Value: v})
	}
	return entries
}

func (s *Store) Clear() {
	s.tree.Clear()
	if s.lookups != nil {
		s.lookups.Flush()
	}
	s.rebuildFilter()
}

func (s *Store) Stats() ops.Stats {
	return ops.Stats{
		Size:     s.tree.Len(),
		Height:   s.tree.Height(),
		Balanced: s.tree.IsBalanced(),
	}
}

func (s *Store) Check() error {
	return s.tree.Check()
}

func (s *Store) Len() int {
	return s.tree.Len()
}

// Tree exposes the underlying tree for read-only walks.
func (s *Store) Tree() *avl.Tree[string, string] {
	return s.tree
}
