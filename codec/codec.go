package codec

import (
	"errors"

	compressiblemap "github.com/ashneverdawn/compressible-map"
)

// Serializer turns values into byte slices and back.
type Serializer[V any] interface {
	Marshal(value V) ([]byte, error)
	Unmarshal(data []byte) (V, error)
}

// Compressor shrinks byte slices and restores them. Implementations must be
// safe for concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Composite implements compressiblemap.Codec by serializing a value and then
// compressing the serialized form.
type Composite[V any] struct {
	Serializer Serializer[V]
	Compressor Compressor
}

var _ compressiblemap.Codec[int] = Composite[int]{}

func (c Composite[V]) Encode(value V) ([]byte, error) {
	serialized, err := c.Serializer.Marshal(value)
	if err != nil {
		return nil, errors.Join(ErrSerializeFailed, err)
	}
	compressed, err := c.Compressor.Compress(serialized)
	if err != nil {
		return nil, errors.Join(ErrCompressFailed, err)
	}
	return compressed, nil
}

func (c Composite[V]) Decode(data []byte) (V, error) {
	serialized, err := c.Compressor.Decompress(data)
	if err != nil {
		var zero V
		return zero, errors.Join(ErrDecompressFailed, err)
	}
	value, err := c.Serializer.Unmarshal(serialized)
	if err != nil {
		var zero V
		return zero, errors.Join(ErrDeserializeFailed, err)
	}
	return value, nil
}

// GobSnappy returns a codec that gob-encodes values and compresses them with
// snappy. A good default when compression speed matters more than ratio.
func GobSnappy[V any]() compressiblemap.Codec[V] {
	return Composite[V]{Serializer: Gob[V]{}, Compressor: Snappy{}}
}

// GobZstd returns a codec that gob-encodes values and compresses them with
// zstd at the given effort level (standard zstd scale, clamped by the
// backend).
func GobZstd[V any](level int) compressiblemap.Codec[V] {
	z, err := NewZstd(level)
	if err != nil {
		// Unreachable with a clamped level; any failure here is a backend
		// configuration bug.
		panic(err)
	}
	return Composite[V]{Serializer: Gob[V]{}, Compressor: z}
}
