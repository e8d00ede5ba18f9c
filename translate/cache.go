package translate

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/tsawler/shatranj/model"
)

// CacheConfig holds configuration for the translation cache.
type CacheConfig struct {
	// Capacity is the maximum number of cached translations. When the
	// cache is full the oldest entry is evicted. Default: 1000.
	Capacity int
}

// DefaultCacheConfig returns sensible default configuration.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Capacity: 1000,
	}
}

// CacheStats is a snapshot of the cache counters.
type CacheStats struct {
	// Hits counts translations served from the cache
	Hits uint64

	// Misses counts translations that went to the underlying service
	Misses uint64

	// Entries is the number of cached translations
	Entries int
}

// Cache memoizes successful translations keyed by an md5 digest of the
// source text. A stored entry is never overwritten, so repeated
// requests for the same text always yield the same translation.
// Concurrent requests for a missing key share a single call to the
// underlying translator. Failed translations are not cached.
type Cache struct {
	inner    Translator
	capacity int

	group singleflight.Group

	mu      sync.Mutex
	entries map[string]string
	order   []string
	hits    uint64
	misses  uint64
}

// NewCache wraps a translator with a memoizing cache.
func NewCache(inner Translator, config CacheConfig) *Cache {
	if config.Capacity <= 0 {
		config.Capacity = DefaultCacheConfig().Capacity
	}
	return &Cache{
		inner:    inner,
		capacity: config.Capacity,
		entries:  make(map[string]string),
	}
}

// Translate serves the translation from the cache when possible,
// calling the underlying translator otherwise.
func (c *Cache) Translate(ctx context.Context, text string, source, target model.Language) (string, error) {
	out, _, err := c.TranslateCached(ctx, text, source, target)
	return out, err
}

// TranslateCached is Translate plus a flag reporting whether the text
// was served from the cache.
func (c *Cache) TranslateCached(ctx context.Context, text string, source, target model.Language) (string, bool, error) {
	key := cacheKey(text)

	c.mu.Lock()
	if cached, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		return cached, true, nil
	}
	c.misses++
	c.mu.Unlock()

	out, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A concurrent flight may have stored the entry while this
		// caller was waiting for the lock above.
		c.mu.Lock()
		if cached, ok := c.entries[key]; ok {
			c.mu.Unlock()
			return cached, nil
		}
		c.mu.Unlock()

		translated, err := c.inner.Translate(ctx, text, source, target)
		if err != nil {
			return "", err
		}
		c.store(key, translated)
		return translated, nil
	})
	if err != nil {
		return "", false, err
	}
	return out.(string), false, nil
}

// store inserts an entry, evicting the oldest one at capacity. An
// existing entry is left untouched.
func (c *Cache) store(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		return
	}
	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = value
	c.order = append(c.order, key)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Hits:    c.hits,
		Misses:  c.misses,
		Entries: len(c.entries),
	}
}

// Len returns the number of cached translations.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey digests the source text.
func cacheKey(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
