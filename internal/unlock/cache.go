package unlock

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ResultCache memoizes evaluation results per (key, state revision). The
// revision comes from the engine and changes on every transition, so a hit
// can never serve a stale result; the TTL only bounds memory between
// transitions from a hot UI polling loop.
type ResultCache struct {
	lru *expirable.LRU[string, Result]
}

// NewResultCache creates a cache holding up to size entries for ttl.
func NewResultCache(size int, ttl time.Duration) *ResultCache {
	return &ResultCache{
		lru: expirable.NewLRU[string, Result](size, nil, ttl),
	}
}

// Get returns a cached result for key at revision.
func (c *ResultCache) Get(key string, revision uint64) (Result, bool) {
	return c.lru.Get(cacheKey(key, revision))
}

// Set stores a result for key at revision.
func (c *ResultCache) Set(key string, revision uint64, res Result) {
	c.lru.Add(cacheKey(key, revision), res)
}

// Purge drops all entries.
func (c *ResultCache) Purge() {
	c.lru.Purge()
}

func cacheKey(key string, revision uint64) string {
	return key + "@" + strconv.FormatUint(revision, 10)
}
