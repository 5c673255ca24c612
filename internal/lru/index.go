package lru

// Index orders the indices 0..n-1 by recency of use.
//
// Initially index 0 is the least recently used and n-1 the most recently
// used. Index is not safe for concurrent use.
type Index struct {
	nodes []*node[int]
	order list[int]
}

// NewIndex creates an Index over n indices. n must be positive.
func NewIndex(n int) *Index {
	if n <= 0 {
		panic("lru: index size must be positive")
	}
	ix := &Index{nodes: make([]*node[int], n)}
	for i := 0; i < n; i++ {
		ix.nodes[i] = ix.order.PushFront(i)
	}
	return ix
}

// Len returns the number of indices.
func (ix *Index) Len() int {
	return len(ix.nodes)
}

// Use marks index i as the most recently used.
func (ix *Index) Use(i int) {
	ix.order.MoveToFront(ix.nodes[i])
}

// UseLRU returns the least recently used index and marks it as the most
// recently used.
func (ix *Index) UseLRU() int {
	n := ix.order.Oldest()
	ix.order.MoveToFront(n)
	return n.key
}
