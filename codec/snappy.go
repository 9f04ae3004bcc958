package codec

import "github.com/golang/snappy"

// Snappy compresses with snappy's block format. Stateless and safe for
// concurrent use.
type Snappy struct{}

func (Snappy) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (Snappy) Decompress(data []byte) ([]byte, error) {
	return snappy.Decode(nil, data)
}
