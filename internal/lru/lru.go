// Package lru provides a bounded least-recently-used map.
//
// The map is not synchronized; callers must handle synchronization.
package lru

// node is an entry in the recency list. It stores the key so the oldest
// entry can be removed from the index in O(1).
type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// Map is a capacity-bounded map with LRU eviction.
// The head of the list is the most recently used entry, the tail the least.
type Map[K comparable, V any] struct {
	index    map[K]*node[K, V]
	head     *node[K, V]
	tail     *node[K, V]
	capacity int
	onEvict  func(K, V)
}

// New creates a map holding at most capacity entries.
// A capacity of 0 or less means unlimited.
//
// onEvict, if non-nil, is called for every entry dropped because the map
// is over capacity. It is not called for Remove or Clear.
func New[K comparable, V any](capacity int, onEvict func(K, V)) *Map[K, V] {
	return &Map[K, V]{
		index:    make(map[K]*node[K, V]),
		capacity: capacity,
		onEvict:  onEvict,
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.index)
}

// Capacity returns the maximum number of entries, 0 if unlimited.
func (m *Map[K, V]) Capacity() int {
	if m.capacity < 0 {
		return 0
	}
	return m.capacity
}

// Get returns the value for key and marks it most recently used.
func (m *Map[K, V]) Get(key K) (V, bool) {
	n, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	m.moveToFront(n)
	return n.value, true
}

// Peek returns the value for key without touching its recency.
func (m *Map[K, V]) Peek(key K) (V, bool) {
	n, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Put stores value under key, marks it most recently used and evicts the
// oldest entries while the map is over capacity.
func (m *Map[K, V]) Put(key K, value V) {
	if n, ok := m.index[key]; ok {
		n.value = value
		m.moveToFront(n)
		return
	}

	n := &node[K, V]{key: key, value: value}
	m.index[key] = n
	m.pushFront(n)

	for m.capacity > 0 && len(m.index) > m.capacity {
		oldest := m.tail
		m.unlink(oldest)
		delete(m.index, oldest.key)
		if m.onEvict != nil {
			m.onEvict(oldest.key, oldest.value)
		}
	}
}

// Remove deletes key and reports whether it was present.
func (m *Map[K, V]) Remove(key K) bool {
	n, ok := m.index[key]
	if !ok {
		return false
	}
	m.unlink(n)
	delete(m.index, key)
	return true
}

// Oldest returns the least recently used key.
func (m *Map[K, V]) Oldest() (K, bool) {
	if m.tail == nil {
		var zero K
		return zero, false
	}
	return m.tail.key, true
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	clear(m.index)
	m.head = nil
	m.tail = nil
}

func (m *Map[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = m.head
	if m.head != nil {
		m.head.prev = n
	}
	m.head = n
	if m.tail == nil {
		m.tail = n
	}
}

func (m *Map[K, V]) moveToFront(n *node[K, V]) {
	if n == m.head {
		return
	}
	m.unlink(n)
	m.pushFront(n)
}

// unlink detaches n from the list and clears its pointers.
func (m *Map[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		m.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		m.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}
