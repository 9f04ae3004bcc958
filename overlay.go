package compressiblemap

// Overlay is a thread-private staging cache for values decoded from cold
// (encoded) entries during GetShared. It lets a reader materialize values
// while holding only shared access to the store; the results are reconciled
// back with Store.FlushOverlay.
//
// An Overlay is not safe for concurrent use. It must be owned by exactly one
// goroutine at a time; hand it off whole (for example over a channel) to the
// goroutine that will flush it.
//
// Besides staged values, the overlay records which warm keys were read through
// it so that a flush can repair the store's recency order for those reads too.
type Overlay[K comparable, V any] struct {
	accesses map[K]overlayAccess[V]
}

type overlayAccess[V any] struct {
	value  V
	staged bool // false: recency marker for a warm read, no value carried
}

// NewOverlay returns an empty overlay. Map.NewOverlay is the usual entry
// point; this constructor exists for callers holding only a Store.
func NewOverlay[K comparable, V any]() *Overlay[K, V] {
	return &Overlay[K, V]{accesses: make(map[K]overlayAccess[V])}
}

// Value returns the staged value for key, if one was decoded into this
// overlay.
func (o *Overlay[K, V]) Value(key K) (V, bool) {
	a, ok := o.accesses[key]
	if !ok || !a.staged {
		var zero V
		return zero, false
	}
	return a.value, true
}

// Len reports the number of staged decoded values (recency markers are not
// counted).
func (o *Overlay[K, V]) Len() int {
	n := 0
	for _, a := range o.accesses {
		if a.staged {
			n++
		}
	}
	return n
}

// markHit records a warm read so a later flush can touch the key's recency.
// A staged value for the key is left alone.
func (o *Overlay[K, V]) markHit(key K) {
	if _, ok := o.accesses[key]; ok {
		return
	}
	o.accesses[key] = overlayAccess[V]{}
}

// stage stores a decoded value for key, or returns the one already staged so
// repeated cold reads through the same overlay decode at most once.
func (o *Overlay[K, V]) stage(key K, value V) V {
	if a, ok := o.accesses[key]; ok && a.staged {
		return a.value
	}
	o.accesses[key] = overlayAccess[V]{value: value, staged: true}
	return value
}

// drain empties the overlay and returns its accesses for reconciliation.
func (o *Overlay[K, V]) drain() map[K]overlayAccess[V] {
	accesses := o.accesses
	o.accesses = make(map[K]overlayAccess[V])
	return accesses
}
