package compressiblemap

// Map is the public façade over a shared Store: the full operation set plus
// overlay lifecycle. It holds no state of its own beyond the store reference,
// so it may be copied freely; all copies share the same store.
type Map[K comparable, V any] struct {
	store *Store[K, V]
}

// New creates a Map backed by a fresh store using codec for compression.
func New[K comparable, V any](codec Codec[V], opts ...Option) Map[K, V] {
	return Map[K, V]{store: NewStore[K, V](codec, opts...)}
}

// NewFromCompressed creates a Map whose entries are all encoded from the
// start.
func NewFromCompressed[K comparable, V any](codec Codec[V], compressed map[K][]byte, opts ...Option) Map[K, V] {
	return Map[K, V]{store: NewStoreFromCompressed[K, V](codec, compressed, opts...)}
}

// Store exposes the underlying shared store.
func (m Map[K, V]) Store() *Store[K, V] { return m.store }

// NewOverlay returns an empty overlay for use with GetShared.
func (m Map[K, V]) NewOverlay() *Overlay[K, V] { return NewOverlay[K, V]() }

func (m Map[K, V]) Insert(key K, value V) { m.store.Insert(key, value) }

func (m Map[K, V]) InsertCompressed(key K, data []byte) { m.store.InsertCompressed(key, data) }

func (m Map[K, V]) CompressLRU() (K, error) { return m.store.CompressLRU() }

func (m Map[K, V]) Get(key K) (V, error) { return m.store.Get(key) }

func (m Map[K, V]) GetShared(key K, overlay *Overlay[K, V]) (V, error) {
	return m.store.GetShared(key, overlay)
}

func (m Map[K, V]) FlushOverlay(overlay *Overlay[K, V]) { m.store.FlushOverlay(overlay) }

func (m Map[K, V]) Replace(key K, value V) (V, bool, error) { return m.store.Replace(key, value) }

func (m Map[K, V]) Peek(key K) (V, error) { return m.store.Peek(key) }

func (m Map[K, V]) Remove(key K) (V, error) { return m.store.Remove(key) }

func (m Map[K, V]) Drop(key K) bool { return m.store.Drop(key) }

func (m Map[K, V]) RemoveLRU() (K, V, bool) { return m.store.RemoveLRU() }

func (m Map[K, V]) Clear() { m.store.Clear() }

func (m Map[K, V]) Keys() []K { return m.store.Keys() }

func (m Map[K, V]) Len() int { return m.store.Len() }

func (m Map[K, V]) LenMaterialized() int { return m.store.LenMaterialized() }

func (m Map[K, V]) LenCompressed() int { return m.store.LenCompressed() }

func (m Map[K, V]) Stats() Stats { return m.store.Stats() }
