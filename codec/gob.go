package codec

import (
	"bytes"
	"encoding/gob"
)

// Gob serializes values with encoding/gob. It works for any gob-encodable
// value type: exported struct fields, slices, maps, and primitives; not
// functions or channels.
type Gob[V any] struct{}

func (Gob[V]) Marshal(value V) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Gob[V]) Unmarshal(data []byte) (V, error) {
	var value V
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&value); err != nil {
		var zero V
		return zero, err
	}
	return value, nil
}
