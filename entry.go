package compressiblemap

// entryState discriminates the two storage forms of an entry. An entry is
// always in exactly one state; transitions happen only under the store's
// writer lock.
type entryState uint8

const (
	// stateMaterialized means the value is held decoded and ready for use.
	stateMaterialized entryState = iota
	// stateEncoded means only the codec's byte buffer is held.
	stateEncoded
)

// entry is the per-key storage cell. Exactly one of value or data is
// meaningful, selected by state; the other field is zeroed on every
// transition so stale data cannot leak back out.
type entry[V any] struct {
	state entryState
	value V      // valid iff state == stateMaterialized
	data  []byte // valid iff state == stateEncoded
}

func newMaterialized[V any](value V) *entry[V] {
	return &entry[V]{state: stateMaterialized, value: value}
}

func newEncoded[V any](data []byte) *entry[V] {
	return &entry[V]{state: stateEncoded, data: data}
}

// materialize transitions encoded -> materialized.
func (e *entry[V]) materialize(value V) {
	e.state = stateMaterialized
	e.value = value
	e.data = nil
}

// encode transitions materialized -> encoded.
func (e *entry[V]) encode(data []byte) {
	var zero V
	e.state = stateEncoded
	e.value = zero
	e.data = data
}
