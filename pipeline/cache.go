package pipeline

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/glitz/internal/lru"
	"github.com/gogpu/glitz/state"
)

type cacheKey struct {
	context uint64
	desc    uint64
}

// Cache caches built pipelines by descriptor hash and context.
//
// Building a pipeline links and reflects a program, so repeated requests
// for the same descriptor are served from the cache. Failed builds are not
// cached. When the cache grows past its capacity the least recently used
// pipeline is evicted and the cache's reference to it released.
//
// Cache is safe for concurrent use. Lookups share a read lock; a build runs
// under the write lock after a second lookup.
type Cache struct {
	mu        sync.RWMutex
	pipelines *lru.Cache[cacheKey, *Pipeline]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache returns an empty cache holding at most capacity pipelines. A
// capacity of 0 means unbounded.
func NewCache(capacity int) *Cache {
	return &Cache{
		pipelines: lru.NewWithEvict(capacity, func(_ cacheKey, p *Pipeline) {
			slogger().Debug("pipeline: evicted from cache", "program", p.program)
			p.Release()
		}),
	}
}

// GetOrBuild returns the cached pipeline for desc on conn, building it on a
// miss. The returned pipeline carries a reference owned by the caller.
func (c *Cache) GetOrBuild(conn *state.Connection, desc *Descriptor) (*Pipeline, error) {
	key := cacheKey{context: conn.ID(), desc: desc.Hash()}

	c.mu.RLock()
	if p, ok := c.pipelines.Get(key); ok {
		p.Retain()
		c.mu.RUnlock()
		c.hits.Add(1)
		return p, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.pipelines.Get(key); ok {
		c.hits.Add(1)
		return p.Retain(), nil
	}

	p, err := Build(conn, desc)
	if err != nil {
		return nil, err
	}
	p.Retain()
	c.pipelines.Set(key, p)
	c.misses.Add(1)
	return p, nil
}

// Stats returns the number of cache hits and misses.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// HitRate returns the fraction of requests served from the cache, or 0 if
// none were made.
func (c *Cache) HitRate() float64 {
	hits, misses := c.Stats()
	if hits+misses == 0 {
		return 0
	}
	return float64(hits) / float64(hits+misses)
}

// Size returns the number of cached pipelines.
func (c *Cache) Size() int {
	return c.pipelines.Len()
}

// ReleaseAll drops the cache's reference to every pipeline, empties the
// cache and resets its statistics. Pipelines still referenced by callers
// stay alive.
func (c *Cache) ReleaseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.pipelines.Drain() {
		p.Release()
	}
	c.hits.Store(0)
	c.misses.Store(0)
}
