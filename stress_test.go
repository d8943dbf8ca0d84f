//go:build stress

package hashtable

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

// stressItem - Item with a fixed 20 byte key and a payload
type stressItem struct {
	Key   [20]byte
	Value [10]byte
}

// createTestdata - Returns amount random items with keys free of NUL bytes
func createTestdata(rnd *rand.Rand, amount int) []stressItem {
	items := make([]stressItem, amount)
	for i := range items {
		for j := range items[i].Key {
			items[i].Key[j] = byte(1 + rnd.Intn(255))
		}
		rnd.Read(items[i].Value[:])
	}
	return items
}

func stressKey(item *stressItem) string {
	return string(item.Key[:])
}

func setTestdata(ht *HashTable[stressItem], data []stressItem) error {
	for i := range data {
		if _, err := ht.PutItem(&data[i], true); err != nil {
			return err
		}
	}
	return nil
}

func deleteTestdata(ht *HashTable[stressItem], data []stressItem) error {
	for i := range data {
		if _, found := ht.DeleteItem(stressKey(&data[i])); !found {
			return fmt.Errorf("deleted item not found")
		}
	}
	return nil
}

func getTestdata(ht *HashTable[stressItem], data []stressItem, shouldNotExist bool) error {
	for i := range data {
		item := ht.GetItem(stressKey(&data[i]))
		if shouldNotExist {
			if item != nil {
				return fmt.Errorf("get should not get data")
			}
			continue
		}
		if item == nil {
			return fmt.Errorf("item not found")
		}
		if item.Value != data[i].Value {
			return fmt.Errorf("got wrong value")
		}
	}
	return nil
}

type TestCaseStressTest struct {
	name      string
	buckets   int
	storage   Storage
	sorted    bool
	nTestdata int
}

func TestStress(t *testing.T) {
	t.Run("stress tests for all storage strategies", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{name: "External", buckets: 1000000, storage: External, nTestdata: 1000000},
			{name: "InTable", buckets: 200000, storage: InTable, nTestdata: 1000000},
			{name: "SortedInTable", buckets: 200000, storage: InTable, sorted: true, nTestdata: 200000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("handles lots of stress for %s", test.name), func(t *testing.T) {
				// Prepare test data
				rnd := rand.New(rand.NewSource(123))
				data1 := createTestdata(rnd, test.nTestdata)
				data2 := createTestdata(rnd, test.nTestdata)
				data3 := createTestdata(rnd, test.nTestdata)

				// Prepare hash table
				ht, _, err := New(Conf[stressItem]{
					Size:          test.buckets,
					Storage:       test.storage,
					CaseSensitive: true,
					Sorted:        test.sorted,
					Key:           FixedKey(func(s *stressItem) []byte { return s.Key[:] }),
				})
				assert.NoError(t, err, "create hash table")

				// Set first two sets of test data
				err = setTestdata(ht, data1)
				assert.NoError(t, err, "set test set 1")
				err = setTestdata(ht, data2)
				assert.NoError(t, err, "set test set 2")

				// Remove first set
				err = deleteTestdata(ht, data1)
				assert.NoError(t, err, "delete test set 1")

				// Set third set of test data
				err = setTestdata(ht, data3)
				assert.NoError(t, err, "set test set 3")

				// Check all three test sets
				err = getTestdata(ht, data1, true)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata(ht, data2, false)
				assert.NoError(t, err, "get test set 2")
				err = getTestdata(ht, data3, false)
				assert.NoError(t, err, "get test set 3")

				// Remove second set
				err = deleteTestdata(ht, data2)
				assert.NoError(t, err, "delete test set 2")

				// Check all three test sets
				err = getTestdata(ht, data1, true)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata(ht, data2, true)
				assert.NoError(t, err, "get test set 2, should not exist")
				err = getTestdata(ht, data3, false)
				assert.NoError(t, err, "get test set 3")

				// Get stats
				stat := ht.Stat(false)
				assert.Equal(t, int64(test.nTestdata), stat.Records, "correct number of records")
				assert.Equal(t, test.nTestdata, ht.Len(), "correct length")

				// Check apply order for sorted tables
				if test.sorted {
					var previous string
					visited := 0
					ht.Apply(func(item *stressItem) bool {
						key := stressKey(item)
						assert.Less(t, previous, key, "ascending keys")
						previous = key
						visited++
						return true
					})
					assert.Equal(t, test.nTestdata, visited, "every item visited")
				}

				ht.Destroy()
				assert.Zero(t, ht.Len(), "empty after destroy")
			})
		}
	})
}
