// Package lru provides the least-recently-used bookkeeping shared by glitz
// packages.
//
// # Cache[K, V]
//
// A thread-safe cache with a soft limit. Once the limit is exceeded the least
// recently used entry is evicted. Derivation results (interface block layouts,
// vertex layouts of host types) are memoized with it.
//
//	c := lru.New[reflect.Type, []memlayout.MemoryUnit](256)
//	units := c.GetOrCreate(t, derive)
//
// # Index
//
// A fixed set of small integer indices (texture units, uniform buffer binding
// points) ordered by recency of use. The connection picks scratch units from
// it so that recently bound resources are disturbed last.
//
// Index is not safe for concurrent use.
package lru
