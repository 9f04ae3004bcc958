package compressiblemap

import "errors"

// Package-level error definitions for map operations.
var (
	// ErrNotFound is returned when the requested key has no entry. It is a
	// normal negative result, not a fault.
	ErrNotFound = errors.New("key not found")

	// ErrNothingToCompress is returned by CompressLRU when no materialized
	// entries exist. It is a normal negative result, not a fault.
	ErrNothingToCompress = errors.New("nothing to compress")

	// ErrEncodeFailed wraps a codec failure during compression. The entry is
	// left materialized and untouched.
	ErrEncodeFailed = errors.New("encode failed")

	// ErrDecodeFailed wraps a codec failure during decompression. The entry is
	// left encoded and untouched.
	ErrDecodeFailed = errors.New("decode failed")
)
