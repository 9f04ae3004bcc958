package codec

import "github.com/klauspost/compress/zstd"

// Zstd compresses with zstd at a configurable effort level. The encoder and
// decoder are allocated once and reused; EncodeAll/DecodeAll are safe for
// concurrent use.
type Zstd struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewZstd creates a zstd compressor. The level follows the standard zstd
// scale (1 fastest, 22 best ratio) and is clamped to the nearest supported
// level.
func NewZstd(level int) (*Zstd, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &Zstd{enc: enc, dec: dec}, nil
}

func (z *Zstd) Compress(data []byte) ([]byte, error) {
	return z.enc.EncodeAll(data, nil), nil
}

func (z *Zstd) Decompress(data []byte) ([]byte, error) {
	return z.dec.DecodeAll(data, nil)
}
