package cache

// node is an entry in the recency list. It stores the key for O(1)
// deletion from the cache's map, and the value so that iteration and
// eviction need no second map lookup.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// recencyList is a doubly-linked list ordering entries by recency of use.
// The list is not thread-safe; callers must handle synchronization.
//
// The head is the most recently used entry, the tail the least recently
// used and therefore the next eviction candidate.
type recencyList[K comparable, V any] struct {
	head *node[K, V]
	tail *node[K, V]
	len  int
}

// Len returns the number of nodes in the list.
func (l *recencyList[K, V]) Len() int {
	return l.len
}

// PushFront adds a new node at the front (most recently used).
// Returns the created node for later access.
func (l *recencyList[K, V]) PushFront(key K, value V) *node[K, V] {
	n := &node[K, V]{key: key, value: value}
	if l.head == nil {
		// Empty list
		l.head = n
		l.tail = n
	} else {
		// Insert at front
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.len++
	return n
}

// MoveToFront moves an existing node to the front (most recently used).
// Moving the head is a no-op, so refreshing the most recent entry does
// no pointer work.
func (l *recencyList[K, V]) MoveToFront(n *node[K, V]) {
	if n == nil || n == l.head {
		return
	}

	l.unlink(n)

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

// Remove removes a node from the list.
func (l *recencyList[K, V]) Remove(n *node[K, V]) {
	if n == nil {
		return
	}
	l.unlink(n)
}

// RemoveOldest removes and returns the least recently used node.
// Returns nil and false if the list is empty.
func (l *recencyList[K, V]) RemoveOldest() (*node[K, V], bool) {
	if l.tail == nil {
		return nil, false
	}

	n := l.tail
	l.unlink(n)
	return n, true
}

// Oldest returns the least recently used node without removing it.
// Returns nil and false if the list is empty.
func (l *recencyList[K, V]) Oldest() (*node[K, V], bool) {
	if l.tail == nil {
		return nil, false
	}
	return l.tail, true
}

// Clear removes all nodes from the list.
func (l *recencyList[K, V]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// unlink removes a node from the list and clears the node's pointers.
// Used internally by Remove, RemoveOldest and MoveToFront.
func (l *recencyList[K, V]) unlink(n *node[K, V]) {
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
