package compressiblemap

// recencyList tracks access order over the keys of materialized entries using
// a sentinel-ring doubly-linked list plus a key index, giving O(1) touch,
// removal, and oldest-key lookup. The most recently touched key sits at the
// front; Oldest returns the back.
//
// The list imposes a strict total order: every touch moves the key to the
// front, so two keys can never share a recency slot. Callers serialize access
// through the store's writer lock.
type recencyList[K comparable] struct {
	index map[K]*recencyNode[K]
	root  recencyNode[K] // sentinel; root.next is front, root.prev is back
}

type recencyNode[K comparable] struct {
	key        K
	prev, next *recencyNode[K]
}

func newRecencyList[K comparable]() *recencyList[K] {
	l := &recencyList[K]{index: make(map[K]*recencyNode[K])}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Touch marks key most-recent, inserting it if absent.
func (l *recencyList[K]) Touch(key K) {
	if n, ok := l.index[key]; ok {
		l.unlink(n)
		l.pushFront(n)
		return
	}
	n := &recencyNode[K]{key: key}
	l.index[key] = n
	l.pushFront(n)
}

// Remove deletes key from the order. Reports whether it was present.
func (l *recencyList[K]) Remove(key K) bool {
	n, ok := l.index[key]
	if !ok {
		return false
	}
	l.unlink(n)
	delete(l.index, key)
	return true
}

// Oldest returns the least recently touched key.
func (l *recencyList[K]) Oldest() (K, bool) {
	if l.root.prev == &l.root {
		var zero K
		return zero, false
	}
	return l.root.prev.key, true
}

func (l *recencyList[K]) Contains(key K) bool {
	_, ok := l.index[key]
	return ok
}

func (l *recencyList[K]) Len() int {
	return len(l.index)
}

func (l *recencyList[K]) Clear() {
	l.index = make(map[K]*recencyNode[K])
	l.root.next = &l.root
	l.root.prev = &l.root
}

func (l *recencyList[K]) pushFront(n *recencyNode[K]) {
	n.prev = &l.root
	n.next = l.root.next
	n.prev.next = n
	n.next.prev = n
}

func (l *recencyList[K]) unlink(n *recencyNode[K]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
}
