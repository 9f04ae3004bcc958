// Package codec provides ready-made compression codecs for compressiblemap,
// composed from a generic value serializer and a block-compression backend.
//
// # Composition
//
// A codec is a Serializer (value <-> bytes) paired with a Compressor
// (bytes <-> smaller bytes) via Composite. Two compositions cover the common
// cases:
//
//	codec.GobSnappy[V]()    // gob + snappy: fast, moderate ratio
//	codec.GobZstd[V](level) // gob + zstd: higher ratio, tunable effort
//
// The zstd level follows the standard zstd scale (1 fastest, 22 best);
// out-of-range levels are clamped by the backend.
//
// # Custom Compositions
//
// Any Serializer can be paired with any Compressor:
//
//	c := codec.Composite[MyValue]{
//		Serializer: codec.Gob[MyValue]{},
//		Compressor: myCompressor,
//	}
//
// Gob works for any gob-encodable value type (exported fields, no functions
// or channels). For value types with hand-written binary layouts, implement
// Serializer directly and keep the provided Compressor.
package codec
