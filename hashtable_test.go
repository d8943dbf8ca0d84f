package hashtable

import (
	"bytes"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// fruit - Test item keeping its key in a string field
type fruit struct {
	Name  string
	Count int
}

// tag - Test item keeping its key inline in a fixed size array
type tag struct {
	Name  [8]byte
	Value int
}

// constantHashAlgorithm - Puts every key in the same bucket with the same hash
type constantHashAlgorithm struct{}

func (C constantHashAlgorithm) HashKey(string) uint32 { return 7 }

func fruitKey() KeyField[fruit] {
	return StringKey(func(f *fruit) *string { return &f.Name })
}

func tagKey() KeyField[tag] {
	return FixedKey(func(t *tag) []byte { return t.Name[:] })
}

func newFruitTable(t *testing.T, conf Conf[fruit]) *HashTable[fruit] {
	t.Helper()
	if conf.Size == 0 {
		conf.Size = 10
	}
	conf.Key = fruitKey()

	ht, _, err := New(conf)
	require.NoError(t, err, "creates hash table")

	return ht
}

func TestNew(t *testing.T) {
	t.Run("rounds size up to nearest prime", func(t *testing.T) {
		// Prepare
		sizes := []int{1, 2, 10, 100, 101, 1000}
		buckets := []int64{2, 2, 11, 101, 101, 1009}

		for i := range sizes {
			// Execute
			ht, info, err := New(Conf[fruit]{Size: sizes[i], Key: fruitKey()})

			// Check
			assert.NoError(t, err, "creates hash table")
			assert.Equal(t, int64(sizes[i]), info.RequestedSize, "correct requested size")
			assert.Equal(t, buckets[i], info.NumberOfBuckets, "correct number of buckets")
			assert.Equal(t, int(buckets[i]), ht.Size(), "size reports number of buckets")
			assert.True(t, info.InternalAlgorithm, "has internal hash algorithm")
			assert.Equal(t, 0, ht.Len(), "table is empty")
		}
	})

	t.Run("reports custom hash algorithm", func(t *testing.T) {
		// Execute
		_, info, err := New(Conf[fruit]{Size: 10, Key: fruitKey(), HashAlgorithm: NewXXHashAlgorithm()})

		// Check
		assert.NoError(t, err, "creates hash table")
		assert.False(t, info.InternalAlgorithm, "has custom hash algorithm")
	})

	t.Run("rejects invalid configurations", func(t *testing.T) {
		// Prepare
		release := func(*fruit) {}
		confs := map[string]Conf[fruit]{
			"zero size":            {Size: 0, Key: fruitKey()},
			"negative size":        {Size: -5, Key: fruitKey()},
			"no key field":         {Size: 10},
			"unknown storage":      {Size: 10, Key: fruitKey(), Storage: Storage(7)},
			"unknown ownership":    {Size: 10, Key: fruitKey(), Ownership: Ownership(7)},
			"owned in-table items": {Size: 10, Key: fruitKey(), Storage: InTable, Ownership: Owned},
			"release of borrowed":  {Size: 10, Key: fruitKey(), Release: release},
		}

		for name, conf := range confs {
			// Execute
			ht, _, err := New(conf)

			// Check
			assert.Error(t, err, name)
			assert.Nil(t, ht, name)
		}
	})

	t.Run("logs creation", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		logger := zerolog.New(&buf)

		// Execute
		_, _, err := New(Conf[fruit]{Size: 10, Key: fruitKey(), Sorted: true, Logger: &logger})

		// Check
		assert.NoError(t, err, "creates hash table")
		assert.Contains(t, buf.String(), `"message":"hash table created"`, "creation logged")
		assert.Contains(t, buf.String(), `"buckets":11`, "buckets logged")
		assert.Contains(t, buf.String(), `"sorted":true`, "sorted logged")
	})
}

func TestStorageAndOwnershipNames(t *testing.T) {
	assert.Equal(t, "external", External.String(), "external")
	assert.Equal(t, "in-table", InTable.String(), "in-table")
	assert.Equal(t, "Storage(9)", Storage(9).String(), "unknown storage")
	assert.Equal(t, "borrowed", Borrowed.String(), "borrowed")
	assert.Equal(t, "owned", Owned.String(), "owned")
	assert.Equal(t, "Ownership(9)", Ownership(9).String(), "unknown ownership")
}

func TestHashAlgorithmByName(t *testing.T) {
	t.Run("finds known algorithms", func(t *testing.T) {
		for _, name := range []string{"xxhash", "xxh3", "murmur3", "XXHash"} {
			// Execute
			alg, err := HashAlgorithmByName(name)

			// Check
			assert.NoError(t, err, name)
			assert.NotNil(t, alg, name)
		}
	})

	t.Run("selects internal algorithm", func(t *testing.T) {
		// Execute
		alg, err := HashAlgorithmByName("oneatatime")

		// Check
		assert.NoError(t, err, "known algorithm")
		assert.Nil(t, alg, "internal algorithm is selected by nil")
	})

	t.Run("rejects unknown algorithms", func(t *testing.T) {
		// Execute
		_, err := HashAlgorithmByName("md5")

		// Check
		assert.Error(t, err, "unknown algorithm")
	})

	t.Run("one-at-a-time is case sensitive when given explicitly", func(t *testing.T) {
		// Prepare
		alg := NewOneAtATimeHashAlgorithm()

		// Execute and Check
		assert.Equal(t, uint32(1496633532), alg.HashKey("Foo"), "hash of Foo")
		assert.Equal(t, uint32(1822124329), alg.HashKey("foo"), "hash of foo")
	})
}

func TestKeyFields(t *testing.T) {
	t.Run("string keys are copied when set", func(t *testing.T) {
		// Prepare
		kf := fruitKey()
		buf := []byte("apple")
		var f fruit

		// Execute
		err := kf.SetKey(&f, string(buf))
		buf[0] = 'X'

		// Check
		assert.NoError(t, err, "sets key")
		assert.Equal(t, "apple", kf.Key(&f), "key kept")
		assert.Equal(t, 0, kf.MaxLength(), "unbounded")
	})

	t.Run("fixed keys are nul padded", func(t *testing.T) {
		// Prepare
		kf := tagKey()
		tg := tag{Name: [8]byte{'x', 'x', 'x', 'x', 'x', 'x', 'x', 'x'}}

		// Execute
		err := kf.SetKey(&tg, "abc")

		// Check
		assert.NoError(t, err, "sets key")
		assert.Equal(t, [8]byte{'a', 'b', 'c'}, tg.Name, "padded with nul")
		assert.Equal(t, "abc", kf.Key(&tg), "key read up to nul")
		assert.Equal(t, 8, kf.MaxLength(), "length of array")
	})

	t.Run("fixed keys may fill the whole array", func(t *testing.T) {
		// Prepare
		kf := tagKey()
		var tg tag

		// Execute
		err := kf.SetKey(&tg, "12345678")

		// Check
		assert.NoError(t, err, "sets key")
		assert.Equal(t, "12345678", kf.Key(&tg), "full key read")
	})

	t.Run("fixed keys reject long and nul holding keys", func(t *testing.T) {
		// Prepare
		kf := tagKey()
		var tg tag

		// Execute
		errLong := kf.SetKey(&tg, "123456789")
		errNul := kf.SetKey(&tg, "ab\x00c")

		// Check
		assert.ErrorIs(t, errLong, KeyTooLong{}, "key too long")
		assert.ErrorIs(t, errNul, InvalidKey{}, "invalid key")
		assert.Equal(t, tag{}, tg, "item untouched")
	})
}
