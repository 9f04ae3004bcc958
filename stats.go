package compressiblemap

import "sync/atomic"

// Stats is a point-in-time snapshot of store activity for observability and
// monitoring.
type Stats struct {
	Hits                int64 // reads served from materialized entries
	Misses              int64 // reads of absent keys
	Compressions        int64 // successful materialized -> encoded transitions
	Decompressions      int64 // successful decodes (inline or into overlays)
	OverlayFlushes      int64 // FlushOverlay calls
	OverlayDiscards     int64 // staged overlay values dropped as stale on flush
	EntriesTotal        int   // current number of keys with any entry
	EntriesMaterialized int   // current number of materialized entries
	EntriesCompressed   int   // current number of encoded entries
}

// counters holds the monotonic half of Stats. Atomics keep GetShared and
// Peek free of writer-lock upgrades just for bookkeeping.
type counters struct {
	hits            atomic.Int64
	misses          atomic.Int64
	compressions    atomic.Int64
	decompressions  atomic.Int64
	overlayFlushes  atomic.Int64
	overlayDiscards atomic.Int64
}
