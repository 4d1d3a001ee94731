// Package cache wraps groupcache's LRU with a mutex, so the object
// store's read-through object cache can be shared across goroutines
// even though the store itself isn't otherwise concurrency-hardened.
package cache

import (
	"errors"
	"sync"

	lru "github.com/golang/groupcache/lru"
)

// ErrInvalidMaxEntries is returned when NewLRU is given a non-positive
// limit; unlike groupcache's own lru.New, this cache has no "unlimited"
// mode.
var ErrInvalidMaxEntries = errors.New("maxEntries must be greater than zero")

// LRUKey may be any comparable value.
type LRUKey = lru.Key

// LRU is a size-bounded, least-recently-used object cache.
type LRU struct {
	cache *lru.Cache
	mu    sync.Mutex
}

// NewLRU creates an LRU cache holding at most maxEntries items.
func NewLRU(maxEntries int) (*LRU, error) {
	if maxEntries <= 0 {
		return nil, ErrInvalidMaxEntries
	}
	return &LRU{
		cache: lru.New(maxEntries),
	}, nil
}

// Get looks up a key's value from the cache.
func (c *LRU) Get(key LRUKey) (value interface{}, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Get(key)
}

// Add adds a value to the cache.
func (c *LRU) Add(key LRUKey, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Add(key, value)
}

// Clear purges all stored items from the cache.
func (c *LRU) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Clear()
}

// Len returns the number of items in the cache.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Len()
}
