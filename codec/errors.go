package codec

import "errors"

// Package-level error definitions for codec operations.
var (
	ErrSerializeFailed   = errors.New("serialize failed")
	ErrDeserializeFailed = errors.New("deserialize failed")
	ErrCompressFailed    = errors.New("compress failed")
	ErrDecompressFailed  = errors.New("decompress failed")
)
