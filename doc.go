// Package compressiblemap provides a memory-bounded associative store that
// keeps large values either fully materialized or compactly encoded,
// compressing the least recently used values on demand instead of deleting
// them. It targets workloads that must hold many large values in memory but
// can tolerate re-materialization latency for cold entries.
//
// # Features
//
//   - Generic type parameters for compile-time type safety
//   - LRU-ordered compression of cold values (data is demoted, never dropped)
//   - Pluggable compression codecs; gob+snappy and gob+zstd provided
//   - Read-lock-only access path via thread-private overlays
//   - Explicit, caller-driven memory bounding (no background goroutines)
//   - Observability counters for hits, misses, and codec activity
//
// # Usage
//
// Create a map with one of the default codecs and insert values:
//
//	import (
//		compressiblemap "github.com/ashneverdawn/compressible-map"
//		"github.com/ashneverdawn/compressible-map/codec"
//	)
//
//	type Chunk struct {
//		Voxels []byte
//	}
//
//	m := compressiblemap.New[int, Chunk](codec.GobSnappy[Chunk]())
//
//	for i := range 100 {
//		m.Insert(i, Chunk{Voxels: make([]byte, 64*1024)})
//	}
//
//	// Reclaim memory: demote the 50 coldest values to compressed form.
//	for range 50 {
//		if _, err := m.CompressLRU(); err != nil {
//			break
//		}
//	}
//
// Reads come in two flavors. Get takes the writer lock and materializes cold
// entries in place, so later reads of the same key are cheap:
//
//	chunk, err := m.Get(7)
//	if err != nil {
//		// errors.Is(err, compressiblemap.ErrNotFound) for absent keys
//	}
//
// GetShared takes only the reader lock. Cold entries are decoded into a
// caller-owned overlay instead of mutating the store, so many goroutines can
// read concurrently without writer-lock contention:
//
//	overlay := m.NewOverlay()
//	chunk, err := m.GetShared(7, overlay)
//
// # Overlays
//
// An overlay is private to one goroutine at a time. After a batch of shared
// reads, hand the overlay (for example over a channel) to a coordinating
// goroutine that reconciles it back into the store:
//
//	overlays := make(chan *compressiblemap.Overlay[int, Chunk], workers)
//
//	// In each worker:
//	overlay := m.NewOverlay()
//	for _, key := range keys {
//		chunk, _ := m.GetShared(key, overlay)
//		process(chunk)
//	}
//	overlays <- overlay
//
//	// In the coordinator:
//	for overlay := range overlays {
//		m.FlushOverlay(overlay)
//	}
//
// A flush only applies overlay values to entries that are still encoded. If a
// mutating Get or another flush materialized a key first, the overlay's copy
// is discarded; that is always safe because overlay values are pure decodes
// of bytes captured at read time. Concurrent shared reads of the same cold
// key may decode redundantly, once per overlay. That duplication is the price
// of a contention-free read path.
//
// # Codecs
//
// A Codec encodes values to byte buffers and back. The codec subpackage
// composes a gob serializer with a block-compression backend:
//
//	codec.GobSnappy[Chunk]()   // fast block compression
//	codec.GobZstd[Chunk](7)    // higher ratio, configurable level
//
// Custom codecs implement the two-method Codec interface, or wrap a pair of
// functions with CodecFunc.
//
// # Error Handling
//
// Absent keys return ErrNotFound; compressing an empty store returns
// ErrNothingToCompress. Both are normal negative results. Codec failures wrap
// ErrEncodeFailed or ErrDecodeFailed, and always leave the affected entry in
// its prior state; no partial transition is ever committed.
//
// # Concurrency
//
// The store is a passive structure guarded by a single readers-writer lock.
// Insert, CompressLRU, Get, FlushOverlay, and the other mutating operations
// take the writer lock; GetShared, Peek, and the length accessors take the
// reader lock. The package never starts goroutines and never performs I/O;
// scheduling and work distribution belong to the caller.
//
// LRU order is defined by the operations funneled through the store: inserts
// and materializing reads mark a key most-recent. Reads staged in overlays
// affect the order only once their overlay is flushed.
package compressiblemap
