package compressiblemap

import (
	"errors"
	"io"
	"log/slog"
	"sync"
)

// Store is the shared, authoritative mapping of key to entry. It tracks
// recency over materialized entries and performs all durable state
// transitions (compress, materialize).
//
// All methods are safe for concurrent use. Mutating operations (Insert,
// CompressLRU, Get, FlushOverlay, Replace, Remove, ...) take the writer lock;
// GetShared, Peek, and the length accessors take only the reader lock and may
// run concurrently with each other.
//
// The store is a passive structure: it never starts goroutines and never
// performs I/O. Codec failures are returned to the caller and leave the
// affected entry in its prior state.
type Store[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*entry[V]
	recency *recencyList[K]
	codec   Codec[V]
	logger  *slog.Logger
	stats   counters
}

// Option configures a Store (and, through Map's constructor, a Map).
type Option func(*settings)

type settings struct {
	logger *slog.Logger
}

// WithLogger sets the logger for internal diagnostics. By default logs are
// discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewStore creates an empty store using codec for compression.
func NewStore[K comparable, V any](codec Codec[V], opts ...Option) *Store[K, V] {
	s := newSettings(opts)
	return &Store[K, V]{
		entries: make(map[K]*entry[V]),
		recency: newRecencyList[K](),
		codec:   codec,
		logger:  s.logger,
	}
}

// NewStoreFromCompressed creates a store whose entries are all encoded from
// the start. The recency tracker starts empty; entries join it as they are
// materialized.
func NewStoreFromCompressed[K comparable, V any](codec Codec[V], compressed map[K][]byte, opts ...Option) *Store[K, V] {
	store := NewStore[K, V](codec, opts...)
	for key, data := range compressed {
		store.entries[key] = newEncoded[V](data)
	}
	return store
}

// Insert stores value as a materialized entry, overwriting any prior entry
// for the key, and marks the key most-recent.
func (s *Store[K, V]) Insert(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = newMaterialized(value)
	s.recency.Touch(key)
}

// InsertCompressed stores an already-encoded buffer for key, overwriting any
// prior entry. The key does not enter the recency order until it is
// materialized by a read or a flush.
func (s *Store[K, V]) InsertCompressed(key K, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recency.Remove(key)
	s.entries[key] = newEncoded[V](data)
}

// CompressLRU encodes the least recently used materialized entry and returns
// its key. It returns ErrNothingToCompress when no materialized entries
// exist. On a codec failure the entry stays materialized and in the recency
// order, and the error wraps ErrEncodeFailed.
func (s *Store[K, V]) CompressLRU() (K, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.recency.Oldest()
	if !ok {
		var zero K
		return zero, ErrNothingToCompress
	}

	e := s.entries[key]
	data, err := s.codec.Encode(e.value)
	if err != nil {
		s.logger.Warn("lru compression failed", slog.Any("error", err))
		return key, errors.Join(ErrEncodeFailed, err)
	}

	e.encode(data)
	s.recency.Remove(key)
	s.stats.compressions.Add(1)
	return key, nil
}

// Get returns the value for key, materializing an encoded entry in place.
// On a hit the key is marked most-recent. Requires the writer lock because it
// may mutate entry state; prefer GetShared for read-heavy concurrent access.
// Returns ErrNotFound for absent keys and wraps ErrDecodeFailed on a codec
// failure, leaving the entry encoded.
func (s *Store[K, V]) Get(key K) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		s.stats.misses.Add(1)
		var zero V
		return zero, ErrNotFound
	}

	if e.state == stateMaterialized {
		s.stats.hits.Add(1)
		s.recency.Touch(key)
		return e.value, nil
	}

	value, err := s.codec.Decode(e.data)
	if err != nil {
		s.logger.Warn("inline decompression failed", slog.Any("error", err))
		var zero V
		return zero, errors.Join(ErrDecodeFailed, err)
	}

	e.materialize(value)
	s.recency.Touch(key)
	s.stats.decompressions.Add(1)
	return value, nil
}

// GetShared returns the value for key while holding only the reader lock.
// Warm entries are returned directly and the access is recorded in the
// overlay so a later flush can repair recency order. Cold entries are decoded
// into the overlay without touching the store; different goroutines reading
// the same cold key each decode independently into their own overlays.
//
// The overlay must be owned exclusively by the calling goroutine.
func (s *Store[K, V]) GetShared(key K, overlay *Overlay[K, V]) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		s.stats.misses.Add(1)
		var zero V
		return zero, ErrNotFound
	}

	if e.state == stateMaterialized {
		s.stats.hits.Add(1)
		overlay.markHit(key)
		return e.value, nil
	}

	if value, ok := overlay.Value(key); ok {
		s.stats.hits.Add(1)
		return value, nil
	}

	value, err := s.codec.Decode(e.data)
	if err != nil {
		s.logger.Warn("overlay decompression failed", slog.Any("error", err))
		var zero V
		return zero, errors.Join(ErrDecodeFailed, err)
	}

	s.stats.decompressions.Add(1)
	return overlay.stage(key, value), nil
}

// FlushOverlay reconciles an overlay into the store and drains it. A staged
// value is applied only when the store's entry for that key is still encoded;
// if a mutating get or another flush materialized the key first, or the key
// was removed, the staged value is discarded. Discarding is always safe: the
// staged value is a pure decode of bytes that existed at read time. Warm-read
// markers refresh the recency order for keys still materialized.
func (s *Store[K, V]) FlushOverlay(overlay *Overlay[K, V]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.overlayFlushes.Add(1)
	for key, access := range overlay.drain() {
		e, ok := s.entries[key]
		if !ok {
			if access.staged {
				s.stats.overlayDiscards.Add(1)
			}
			continue
		}

		if !access.staged {
			if e.state == stateMaterialized {
				s.recency.Touch(key)
			}
			continue
		}

		if e.state == stateMaterialized {
			// Another operation won the race; its value may be newer.
			s.stats.overlayDiscards.Add(1)
			continue
		}

		e.materialize(access.value)
		s.recency.Touch(key)
	}
}

// Replace stores value for key and returns the prior value, decoding it if
// it was encoded. The boolean reports whether a prior entry existed. On a
// decode failure the store is left unchanged and the error wraps
// ErrDecodeFailed.
func (s *Store[K, V]) Replace(key K, value V) (V, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	e, ok := s.entries[key]
	if !ok {
		s.entries[key] = newMaterialized(value)
		s.recency.Touch(key)
		return zero, false, nil
	}

	old := e.value
	if e.state == stateEncoded {
		decoded, err := s.codec.Decode(e.data)
		if err != nil {
			return zero, true, errors.Join(ErrDecodeFailed, err)
		}
		s.stats.decompressions.Add(1)
		old = decoded
	}

	s.entries[key] = newMaterialized(value)
	s.recency.Touch(key)
	return old, true, nil
}

// Peek returns the value for key without caching the result or updating
// recency: warm entries are returned as-is and cold entries are decoded into
// a throwaway value. Useful for read-modify-write flows where the caller will
// insert a new value anyway. Takes only the reader lock.
func (s *Store[K, V]) Peek(key K) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		s.stats.misses.Add(1)
		var zero V
		return zero, ErrNotFound
	}

	if e.state == stateMaterialized {
		s.stats.hits.Add(1)
		return e.value, nil
	}

	value, err := s.codec.Decode(e.data)
	if err != nil {
		var zero V
		return zero, errors.Join(ErrDecodeFailed, err)
	}
	s.stats.decompressions.Add(1)
	return value, nil
}

// Remove deletes the entry for key and returns its value, decoding it first
// if it was encoded. On a decode failure the entry is left in place and the
// error wraps ErrDecodeFailed. Returns ErrNotFound for absent keys.
func (s *Store[K, V]) Remove(key K) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}

	value := e.value
	if e.state == stateEncoded {
		decoded, err := s.codec.Decode(e.data)
		if err != nil {
			var zero V
			return zero, errors.Join(ErrDecodeFailed, err)
		}
		s.stats.decompressions.Add(1)
		value = decoded
	}

	delete(s.entries, key)
	s.recency.Remove(key)
	return value, nil
}

// Drop deletes the entry for key without decoding it. Reports whether an
// entry existed.
func (s *Store[K, V]) Drop(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	s.recency.Remove(key)
	return true
}

// RemoveLRU deletes the least recently used materialized entry entirely and
// returns it. Reports false when no materialized entries exist.
func (s *Store[K, V]) RemoveLRU() (K, V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.recency.Oldest()
	if !ok {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	value := s.entries[key].value
	delete(s.entries, key)
	s.recency.Remove(key)
	return key, value, true
}

// Clear removes all entries.
func (s *Store[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[K]*entry[V])
	s.recency.Clear()
}

// Keys returns the keys of all entries, materialized and encoded, in no
// particular order.
func (s *Store[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]K, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	return keys
}

// Len reports the total number of keys with any entry.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// LenMaterialized reports the number of materialized entries. It always
// equals the recency tracker's key count.
func (s *Store[K, V]) LenMaterialized() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recency.Len()
}

// LenCompressed reports the number of encoded entries.
func (s *Store[K, V]) LenCompressed() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries) - s.recency.Len()
}

// Stats returns a snapshot of store activity. Thread-safe and callable at any
// time.
func (s *Store[K, V]) Stats() Stats {
	s.mu.RLock()
	total := len(s.entries)
	materialized := s.recency.Len()
	s.mu.RUnlock()

	return Stats{
		Hits:                s.stats.hits.Load(),
		Misses:              s.stats.misses.Load(),
		Compressions:        s.stats.compressions.Load(),
		Decompressions:      s.stats.decompressions.Load(),
		OverlayFlushes:      s.stats.overlayFlushes.Load(),
		OverlayDiscards:     s.stats.overlayDiscards.Load(),
		EntriesTotal:        total,
		EntriesMaterialized: materialized,
		EntriesCompressed:   total - materialized,
	}
}
