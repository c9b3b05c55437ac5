package services

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// QueryCache caches aggregation results keyed by selection. The dataset
// never changes after startup, so the TTL only bounds memory, not
// staleness.
type QueryCache struct {
	cache map[string]*CacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

// CacheEntry is one cached aggregation result.
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// NewQueryCache creates a cache with the given TTL and starts the
// cleanup goroutine.
func NewQueryCache(ttl time.Duration) *QueryCache {
	cache := &QueryCache{
		cache: make(map[string]*CacheEntry),
		ttl:   ttl,
	}

	go cache.cleanupLoop()

	return cache
}

// Get returns the cached value for key, if present and not expired.
func (c *QueryCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.cache[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

// Set stores a value under key.
func (c *QueryCache) Set(key string, data interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(c.ttl),
	}
}

// Delete removes one entry.
func (c *QueryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.cache, key)
}

// Clear drops all entries.
func (c *QueryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[string]*CacheEntry)
}

// Size returns the number of live entries.
func (c *QueryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.cache)
}

func (c *QueryCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *QueryCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.cache {
		if now.After(entry.ExpiresAt) {
			delete(c.cache, key)
		}
	}
}

// GenerateCacheKey builds a stable key from a prefix and the selection
// parameters.
func GenerateCacheKey(prefix string, params interface{}) string {
	jsonBytes, err := json.Marshal(params)
	if err != nil {
		// unmarshalable params get a unique key, effectively uncached
		return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
	}

	hash := sha256.Sum256(jsonBytes)
	return fmt.Sprintf("%s_%x", prefix, hash[:16])
}
