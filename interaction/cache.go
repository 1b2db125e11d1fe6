// SPDX-License-Identifier: MIT

package interaction

import (
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/cosmors/segment"
)

// DefaultCacheSize is the number of temperatures a Cache keeps by default.
const DefaultCacheSize = 16

// Cache memoizes Compute results per temperature for one collection.
//
// Concurrent misses on the same temperature share one build. Results are
// shared between callers and must be treated as read-only. The collection
// must not be modified while the cache is in use; call Purge after changing it.
// Failed builds are never cached.
type Cache struct {
	builder    *Builder
	collection *segment.Collection
	entries    *lru.Cache[float64, *Result]
	group      singleflight.Group
}

// NewCache binds b and c to an LRU of the given size (≤0 means DefaultCacheSize).
func NewCache(b *Builder, c *segment.Collection, size int) (*Cache, error) {
	if b == nil {
		return nil, fmt.Errorf("interaction: nil builder")
	}
	if c == nil {
		return nil, ErrNilCollection
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[float64, *Result](size)
	if err != nil {
		return nil, fmt.Errorf("interaction: cache: %w", err)
	}

	return &Cache{builder: b, collection: c, entries: entries}, nil
}

// Get returns the matrices for temperature, building them on a miss.
// hit reports whether the result came from the cache.
func (k *Cache) Get(temperature float64) (res *Result, hit bool, err error) {
	if res, ok := k.entries.Get(temperature); ok {
		return res, true, nil
	}
	key := strconv.FormatFloat(temperature, 'g', -1, 64)
	v, err, _ := k.group.Do(key, func() (any, error) {
		if res, ok := k.entries.Get(temperature); ok {
			return res, nil
		}
		res, err := k.builder.Compute(k.collection, temperature)
		if err != nil {
			return nil, err
		}
		k.entries.Add(temperature, res)
		return res, nil
	})
	if err != nil {
		return nil, false, err
	}

	return v.(*Result), false, nil
}

// Len returns the number of cached temperatures.
func (k *Cache) Len() int { return k.entries.Len() }

// Purge drops every cached result.
func (k *Cache) Purge() { k.entries.Purge() }
