package lru

// node is a node in a doubly-linked LRU list.
// The node stores a key for O(1) deletion from the parent map.
type node[K comparable] struct {
	key  K
	prev *node[K]
	next *node[K]
}

// list is a doubly-linked list for LRU eviction.
// The list is not thread-safe; callers must handle synchronization.
//
// The head is the most recently used, tail is least recently used.
type list[K comparable] struct {
	head *node[K]
	tail *node[K]
	len  int
}

// Len returns the number of nodes in the list.
func (l *list[K]) Len() int {
	return l.len
}

// PushFront adds a new node at the front (most recently used).
func (l *list[K]) PushFront(key K) *node[K] {
	n := &node[K]{key: key}
	l.link(n)
	return n
}

// MoveToFront moves an existing node to the front (most recently used).
func (l *list[K]) MoveToFront(n *node[K]) {
	if n == nil || n == l.head {
		return
	}
	l.unlink(n)
	l.link(n)
}

// Remove removes a node from the list.
func (l *list[K]) Remove(n *node[K]) {
	if n == nil {
		return
	}
	l.unlink(n)
}

// Oldest returns the least recently used node, or nil if the list is empty.
func (l *list[K]) Oldest() *node[K] {
	return l.tail
}

// Clear removes all nodes from the list.
func (l *list[K]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// link inserts a detached node at the front.
func (l *list[K]) link(n *node[K]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

// unlink removes a node from the list and clears its pointers.
func (l *list[K]) unlink(n *node[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.prev = nil
	n.next = nil
	l.len--
}
