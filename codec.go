package compressiblemap

// Codec transforms values of type V to and from compact byte buffers. Both
// directions may fail; Decode(Encode(v)) must yield a value semantically
// equivalent to v for the map built on top to be correct. Determinism of
// Encode is not required.
//
// Implementations must be safe for concurrent use: GetShared may invoke Decode
// from many reader goroutines at once.
//
// The codec subpackage provides ready-made codecs composed from a gob
// serializer and a block-compression backend.
type Codec[V any] interface {
	// Encode compresses a value into an opaque byte buffer.
	Encode(value V) ([]byte, error)

	// Decode reconstructs a value from a buffer previously produced by Encode.
	Decode(data []byte) (V, error)
}

// CodecFunc adapts a pair of functions to the Codec interface.
type CodecFunc[V any] struct {
	EncodeFunc func(V) ([]byte, error)
	DecodeFunc func([]byte) (V, error)
}

func (c CodecFunc[V]) Encode(value V) ([]byte, error) { return c.EncodeFunc(value) }

func (c CodecFunc[V]) Decode(data []byte) (V, error) { return c.DecodeFunc(data) }
