package hashtable

import (
	"fmt"
	"github.com/gostonefire/hashtable/internal/list"
	"iter"
)

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of items stored
//   - Buckets is the number of buckets of the table
//   - UsedBuckets is the number of buckets holding at least one item
//   - LongestChain is the number of items in the fullest bucket
//   - AverageChain is the average number of items in the used buckets
//   - BucketDistribution is the number of items stored in each bucket
type HashTableStat struct {
	Records            int64
	Buckets            int64
	UsedBuckets        int64
	LongestChain       int64
	AverageChain       float64
	BucketDistribution []int64
}

// GetItem - Gets the item stored under key.
//   - key is the key to look for
//
// It returns:
//   - item is the matching item, or nil if there is no item with that key
func (H *HashTable[T]) GetItem(key string) (item *T) {
	// A key that would not fit can not be in the table
	if m := H.key.MaxLength(); m > 0 && len(key) > m {
		return
	}

	ref, found, _ := H.locate(key, H.hashAlgorithm.HashKey(key))
	if found {
		item = H.items.Item(ref)
	}

	return
}

// GetOrCreateItem - Gets the item stored under key, or creates a zero valued item with that key if there is none.
//   - key is the key to look for
//
// It returns:
//   - item is the existing or created item
//   - created is true if the item was created
//   - err is of type KeyTooLong or InvalidKey if key can not be stored in a fixed key buffer
func (H *HashTable[T]) GetOrCreateItem(key string) (item *T, created bool, err error) {
	hash := H.hashAlgorithm.HashKey(key)
	ref, found, at := H.locate(key, hash)
	if found {
		item = H.items.Item(ref)
		return
	}

	ref = H.items.Alloc(nil)
	item = H.items.Item(ref)
	err = H.key.SetKey(item, key)
	if err != nil {
		H.items.Free(ref)
		item = nil
		return
	}

	H.link(ref, hash, at, H.key.Key(item))
	created = true

	return
}

// PutItem - Adds item to the table, or replaces an existing item with the same key if allowed.
//   - item is the item to add, its key is read through the table's KeyField
//   - allowReplacement set to true replaces an existing item with the same key
//
// It returns:
//   - previous is, when an item with the same key exists and replacement is not allowed, that existing item and the
//     table is left unchanged. When replacement is allowed it is the replaced external item, which the table does not
//     dispose of even if items are Owned, or nil for in-table items whose payload has been overwritten. It is nil when
//     item was added as a new entry.
//   - err is a standard error if item is nil
func (H *HashTable[T]) PutItem(item *T, allowReplacement bool) (previous *T, err error) {
	if item == nil {
		err = fmt.Errorf("item can not be nil")
		return
	}

	key := H.key.Key(item)
	hash := H.hashAlgorithm.HashKey(key)
	ref, found, at := H.locate(key, hash)
	if found {
		if !allowReplacement {
			previous = H.items.Item(ref)
			return
		}

		previous = H.items.Replace(ref, item)
		return
	}

	ref = H.items.Alloc(item)
	H.link(ref, hash, at, key)

	return
}

// DeleteItem - Removes the item stored under key from the table.
//   - key is the key of the item to remove
//
// It returns:
//   - removed is the removed item if it is a Borrowed external item, otherwise nil since the item has been disposed of
//     together with its entry
//   - found is true if there was an item with that key
func (H *HashTable[T]) DeleteItem(key string) (removed *T, found bool) {
	if m := H.key.MaxLength(); m > 0 && len(key) > m {
		return
	}

	ref, found, _ := H.locate(key, H.hashAlgorithm.HashKey(key))
	if !found {
		return
	}

	removed = H.unlink(ref)
	if H.ownership == Owned {
		if H.release != nil {
			H.release(removed)
		}
		removed = nil
	}

	return
}

// Apply - Calls function on every item in insertion order, or in ascending key order for sorted tables, until
// function returns false. Function may delete the item it is given but must not otherwise change the table.
//   - function is called with each item in turn
func (H *HashTable[T]) Apply(function func(item *T) bool) {
	head := H.global.Head(0)
	for n := H.global.Next(head); n != head; {
		ref := H.global.Ref(n)
		n = H.global.Next(n)

		if !function(H.items.Item(ref)) {
			return
		}
	}
}

// All - Returns an iterator over the items in the same order and under the same rules as Apply
func (H *HashTable[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		H.Apply(yield)
	}
}

// Destroy - Removes every item from the table, disposing of Owned items. The table is left empty and can be reused.
func (H *HashTable[T]) Destroy() {
	released := 0
	if H.ownership == Owned {
		head := H.global.Head(0)
		for n := H.global.Next(head); n != head; n = H.global.Next(n) {
			if H.release != nil {
				H.release(H.items.Item(H.global.Ref(n)))
			}
			released++
		}
	}

	records := H.count
	H.items.Reset()
	H.local.Reset()
	H.global.Reset()
	H.hashes = H.hashes[:0]
	if H.order != nil {
		H.order.Clear(false)
	}
	H.count = 0

	H.logger.Debug().Int("records", records).Int("released", released).Msg("hash table destroyed")
}

// Stat - Walks through all buckets and produces a HashTableStat struct with information.
//   - includeDistribution set to true will include a slice of length Size with number of items per bucket, false will
//     set HashTableStat.BucketDistribution to nil.
func (H *HashTable[T]) Stat(includeDistribution bool) (hashTableStat HashTableStat) {
	hashTableStat.Records = int64(H.count)
	hashTableStat.Buckets = int64(H.size)
	if includeDistribution {
		hashTableStat.BucketDistribution = make([]int64, H.size)
	}

	for i := 0; i < int(H.size); i++ {
		head := H.local.Head(i)
		var chain int64
		for n := H.local.Next(head); n != head; n = H.local.Next(n) {
			chain++
		}

		if chain > 0 {
			hashTableStat.UsedBuckets++
		}
		if chain > hashTableStat.LongestChain {
			hashTableStat.LongestChain = chain
		}
		if includeDistribution {
			hashTableStat.BucketDistribution[i] = chain
		}
	}

	if hashTableStat.UsedBuckets > 0 {
		hashTableStat.AverageChain = float64(hashTableStat.Records) / float64(hashTableStat.UsedBuckets)
	}

	return
}

// locate - Scans the bucket of key for an entry with that key.
// Bucket lists are ordered by hash, and by key among equal hashes, so the scan stops at the first entry sorting after key.
// It returns:
//   - ref is the reference of the matching entry
//   - found is true if there was a match
//   - at is the node a new entry with key must be inserted before to keep the bucket ordered
func (H *HashTable[T]) locate(key string, hash uint32) (ref uint32, found bool, at list.Node) {
	head := H.local.Head(int(hash % H.size))
	for at = H.local.Next(head); at != head; at = H.local.Next(at) {
		ref = H.local.Ref(at)
		h := H.hashes[ref]
		if h > hash {
			return
		}

		if h == hash {
			c := H.compare(key, H.key.Key(H.items.Item(ref)))
			if c == 0 {
				found = true
				return
			}
			if c < 0 {
				return
			}
		}
	}

	return
}

// link - Adds the entry ref, holding an item with key, to its bucket list right before at and to the global list
func (H *HashTable[T]) link(ref uint32, hash uint32, at list.Node, key string) {
	refs := H.items.Refs()
	for len(H.hashes) < refs {
		H.hashes = append(H.hashes, 0)
	}
	H.local.Grow(refs)
	H.global.Grow(refs)

	H.hashes[ref] = hash
	H.local.InsertBefore(H.local.Node(ref), at)
	H.insertInGlobalList(ref, key)
	H.count++
}

// insertInGlobalList - Appends the entry ref to the global list or, for sorted tables, inserts it before the first
// entry with a greater key
func (H *HashTable[T]) insertInGlobalList(ref uint32, key string) {
	at := H.global.Head(0)
	if H.order != nil {
		H.order.AscendGreaterOrEqual(sortedKey{key: key}, func(s sortedKey) bool {
			at = H.global.Node(s.ref)
			return false
		})
		H.order.ReplaceOrInsert(sortedKey{key: key, ref: ref})
	}

	H.global.InsertBefore(H.global.Node(ref), at)
}

// unlink - Detaches the entry ref from its lists, frees it and returns its item if the item lives outside the table
func (H *HashTable[T]) unlink(ref uint32) *T {
	if H.order != nil {
		H.order.Delete(sortedKey{key: H.key.Key(H.items.Item(ref))})
	}

	H.local.Remove(H.local.Node(ref))
	H.global.Remove(H.global.Node(ref))
	H.count--

	return H.items.Free(ref)
}
