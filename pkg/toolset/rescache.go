package toolset

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// resolveCacheTTL matches the 24h version-listing cache window the
// teacher's tool manager used for its on-disk version cache.
const resolveCacheTTL = 24 * time.Hour

// ResolveCache memoizes backend.ListVersions() results per backend Id
// (one entry per forge), so resolving the same forge again doesn't
// refetch its registry's version index.
type ResolveCache struct {
	cache *lru.LRU[string, []string]
}

// NewResolveCache builds a cache holding up to size backends' version
// lists, each expiring after 24h.
func NewResolveCache(size int) *ResolveCache {
	return &ResolveCache{cache: lru.NewLRU[string, []string](size, nil, resolveCacheTTL)}
}

// CachingBackend wraps a Backend so ListVersions is served from a
// ResolveCache keyed by the backend's Id, falling through to the
// wrapped backend on a miss or expiry.
type CachingBackend struct {
	Backend
	cache *ResolveCache
}

// NewCachingBackend wraps backend with cache, sharing it across every
// CachingBackend built from the same cache instance.
func NewCachingBackend(backend Backend, cache *ResolveCache) *CachingBackend {
	return &CachingBackend{Backend: backend, cache: cache}
}

// ListVersions serves from cache when present, otherwise delegates and
// populates the cache on success. A fetch error is never cached, so a
// transient network failure doesn't poison subsequent resolves for the
// rest of the cache's TTL.
func (c *CachingBackend) ListVersions() ([]string, error) {
	key := c.Backend.Id()
	if versions, ok := c.cache.cache.Get(key); ok {
		return versions, nil
	}
	versions, err := c.Backend.ListVersions()
	if err != nil {
		return nil, fmt.Errorf("listing versions for %s: %w", key, err)
	}
	c.cache.cache.Add(key, versions)
	return versions, nil
}
