package compressiblemap_test

import (
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	compressiblemap "github.com/ashneverdawn/compressible-map"
)

var errBackend = errors.New("backend fault")

// intCodec encodes ints as decimal strings and counts codec activity. The
// fail switches let tests inject backend faults.
type intCodec struct {
	encodes    atomic.Int64
	decodes    atomic.Int64
	failEncode bool
	failDecode bool
}

func (c *intCodec) Encode(value int) ([]byte, error) {
	if c.failEncode {
		return nil, errBackend
	}
	c.encodes.Add(1)
	return []byte(strconv.Itoa(value)), nil
}

func (c *intCodec) Decode(data []byte) (int, error) {
	if c.failDecode {
		return 0, errBackend
	}
	c.decodes.Add(1)
	return strconv.Atoi(string(data))
}

func TestStore_InsertAndGet(t *testing.T) {
	t.Parallel()

	t.Run("returns inserted value", func(t *testing.T) {
		t.Parallel()

		store := compressiblemap.NewStore[string, int](&intCodec{})
		store.Insert("a", 42)

		got, err := store.Get("a")
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("returns ErrNotFound for absent key", func(t *testing.T) {
		t.Parallel()

		store := compressiblemap.NewStore[string, int](&intCodec{})

		_, err := store.Get("missing")
		assert.ErrorIs(t, err, compressiblemap.ErrNotFound)
	})

	t.Run("insert overwrites prior entry in any state", func(t *testing.T) {
		t.Parallel()

		store := compressiblemap.NewStore[string, int](&intCodec{})
		store.Insert("a", 1)

		_, err := store.CompressLRU()
		require.NoError(t, err)
		require.Equal(t, 1, store.LenCompressed())

		store.Insert("a", 2)
		assert.Equal(t, 0, store.LenCompressed())
		assert.Equal(t, 1, store.LenMaterialized())

		got, err := store.Get("a")
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})
}

func TestStore_CompressLRU(t *testing.T) {
	t.Parallel()

	t.Run("compresses in insertion order", func(t *testing.T) {
		t.Parallel()

		store := compressiblemap.NewStore[int, int](&intCodec{})
		for i := 0; i < 5; i++ {
			store.Insert(i, i*10)
		}

		for want := 0; want < 5; want++ {
			key, err := store.CompressLRU()
			require.NoError(t, err)
			assert.Equal(t, want, key)
		}
	})

	t.Run("returns ErrNothingToCompress on empty store", func(t *testing.T) {
		t.Parallel()

		store := compressiblemap.NewStore[int, int](&intCodec{})

		_, err := store.CompressLRU()
		assert.ErrorIs(t, err, compressiblemap.ErrNothingToCompress)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("returns ErrNothingToCompress when everything is compressed", func(t *testing.T) {
		t.Parallel()

		store := compressiblemap.NewStore[int, int](&intCodec{})
		store.Insert(1, 100)

		_, err := store.CompressLRU()
		require.NoError(t, err)

		_, err = store.CompressLRU()
		assert.ErrorIs(t, err, compressiblemap.ErrNothingToCompress)
		assert.Equal(t, 1, store.LenCompressed())
	})

	t.Run("materializing read resets recency", func(t *testing.T) {
		t.Parallel()

		store := compressiblemap.NewStore[int, int](&intCodec{})
		for i := 0; i < 3; i++ {
			store.Insert(i, i)
		}

		// Touch key 0 so key 1 becomes the oldest.
		_, err := store.Get(0)
		require.NoError(t, err)

		key, err := store.CompressLRU()
		require.NoError(t, err)
		assert.Equal(t, 1, key)
	})

	t.Run("encode failure leaves entry materialized", func(t *testing.T) {
		t.Parallel()

		codec := &intCodec{failEncode: true}
		store := compressiblemap.NewStore[int, int](codec)
		store.Insert(1, 100)

		key, err := store.CompressLRU()
		assert.ErrorIs(t, err, compressiblemap.ErrEncodeFailed)
		assert.ErrorIs(t, err, errBackend)
		assert.Equal(t, 1, key)
		assert.Equal(t, 1, store.LenMaterialized())
		assert.Equal(t, 0, store.LenCompressed())

		// The store recovers once the backend does.
		codec.failEncode = false
		_, err = store.CompressLRU()
		require.NoError(t, err)
		assert.Equal(t, 1, store.LenCompressed())
	})
}

func TestStore_Get_Materializes(t *testing.T) {
	t.Parallel()

	t.Run("round-trips through compression", func(t *testing.T) {
		t.Parallel()

		store := compressiblemap.NewStore[int, int](&intCodec{})
		store.Insert(7, 700)

		_, err := store.CompressLRU()
		require.NoError(t, err)
		require.Equal(t, 0, store.LenMaterialized())

		got, err := store.Get(7)
		require.NoError(t, err)
		assert.Equal(t, 700, got)
		assert.Equal(t, 1, store.LenMaterialized())
		assert.Equal(t, 0, store.LenCompressed())
	})

	t.Run("decode failure leaves entry encoded", func(t *testing.T) {
		t.Parallel()

		codec := &intCodec{}
		store := compressiblemap.NewStore[int, int](codec)
		store.Insert(7, 700)

		_, err := store.CompressLRU()
		require.NoError(t, err)

		codec.failDecode = true
		_, err = store.Get(7)
		assert.ErrorIs(t, err, compressiblemap.ErrDecodeFailed)
		assert.ErrorIs(t, err, errBackend)
		assert.Equal(t, 1, store.LenCompressed())
		assert.Equal(t, 0, store.LenMaterialized())

		codec.failDecode = false
		got, err := store.Get(7)
		require.NoError(t, err)
		assert.Equal(t, 700, got)
	})
}

func TestStore_SizeAccounting(t *testing.T) {
	t.Parallel()

	store := compressiblemap.NewStore[int, int](&intCodec{})
	for i := 0; i < 6; i++ {
		store.Insert(i, i)
	}

	assert.Equal(t, 6, store.Len())
	assert.Equal(t, 6, store.LenMaterialized())
	assert.Equal(t, 0, store.LenCompressed())

	for i := 0; i < 4; i++ {
		_, err := store.CompressLRU()
		require.NoError(t, err)
	}

	assert.Equal(t, 6, store.Len())
	assert.Equal(t, 2, store.LenMaterialized())
	assert.Equal(t, 4, store.LenCompressed())

	_, err := store.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, 5, store.Len())
	assert.Equal(t, 3, store.LenCompressed())
}

func TestStore_EndToEndScenario(t *testing.T) {
	t.Parallel()

	store := compressiblemap.NewStore[int, int](&intCodec{})
	for i := 0; i < 10; i++ {
		store.Insert(i, i*100)
	}

	for i := 0; i < 5; i++ {
		_, err := store.CompressLRU()
		require.NoError(t, err)
	}

	// Keys 0..4 are now encoded, 5..9 still materialized.
	assert.Equal(t, 5, store.LenCompressed())
	assert.Equal(t, 5, store.LenMaterialized())

	got, err := store.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 200, got)
	assert.Equal(t, 6, store.LenMaterialized())

	// Key 2 is most-recent now; the oldest materialized entry is key 5.
	key, err := store.CompressLRU()
	require.NoError(t, err)
	assert.Equal(t, 5, key)

	got, err = store.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 200, got)
}

func TestStore_NewStoreFromCompressed(t *testing.T) {
	t.Parallel()

	codec := &intCodec{}
	seed := map[int][]byte{}
	for i := 0; i < 3; i++ {
		data, err := codec.Encode(i * 11)
		require.NoError(t, err)
		seed[i] = data
	}

	store := compressiblemap.NewStoreFromCompressed[int, int](codec, seed)
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, 0, store.LenMaterialized())
	assert.Equal(t, 3, store.LenCompressed())

	got, err := store.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 22, got)
	assert.Equal(t, 1, store.LenMaterialized())
}
