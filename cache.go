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
	"path/filepath"
	"time"

	"github.com/patrickmn/go-cache"
)

// KeyFileCache keeps parsed key files in memory so that scripts loading the
// same file repeatedly, or a watched replay loop, parse it once per TTL.
type KeyFileCache struct {
	c   *cache.Cache
	ttl time.Duration
}

func NewKeyFileCache(ttl, cleanup time.Duration) *KeyFileCache {
	return &KeyFileCache{c: cache.New(ttl, cleanup), ttl: ttl}
}

func cacheKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Load returns the keys of path, reading the file on a miss. Callers must
// not modify the returned slice.
func (k *KeyFileCache) Load(path string) ([]int, error) {
	if keys, ok := k.Get(path); ok {
		return keys, nil
	}
	keys, err := readKeyFile(path)
	if err != nil {
		return nil, err
	}
	k.Set(path, keys)
	return keys, nil
}

func (k *KeyFileCache) Set(path string, keys []int) {
	// Set rather than Add so a reparsed file replaces the old entry
	k.c.Set(cacheKey(path), keys, k.ttl)
}

func (k *KeyFileCache) Get(path string) ([]int, bool) {
	val, ok := k.c.Get(cacheKey(path))
	if !ok {
		return nil, false
	}
	return val.([]int), true
}

// Invalidate drops path so the next Load rereads it.
func (k *KeyFileCache) Invalidate(path string) {
	k.c.Delete(cacheKey(path))
}
