package hashtable

import (
	"fmt"
	"github.com/google/btree"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/hash"
	"github.com/gostonefire/hashtable/internal/list"
	"github.com/gostonefire/hashtable/internal/storage"
	"github.com/gostonefire/hashtable/internal/utils"
	"github.com/rs/zerolog"
	"math"
)

// Storage - Where the items of a table live
type Storage int

const (
	// External - The table keeps pointers to items owned by the caller or allocated by the table
	External Storage = iota
	// InTable - The table keeps copies of the items. Pointers handed out point into the table and stay valid until the
	// item is deleted or the table destroyed.
	InTable
)

// String - Returns the name of the storage strategy
func (S Storage) String() string {
	switch S {
	case External:
		return "external"
	case InTable:
		return "in-table"
	default:
		return fmt.Sprintf("Storage(%d)", int(S))
	}
}

// Ownership - Who disposes of external items once they leave the table
type Ownership int

const (
	// Borrowed - Items remain the caller's. Deleted items are handed back.
	Borrowed Ownership = iota
	// Owned - The table disposes of items when they are deleted or the table is destroyed, calling the Release hook
	// if one is given.
	Owned
)

// String - Returns the name of the ownership policy
func (O Ownership) String() string {
	switch O {
	case Borrowed:
		return "borrowed"
	case Owned:
		return "owned"
	default:
		return fmt.Sprintf("Ownership(%d)", int(O))
	}
}

// sortedDegree - Degree of the btree indexing keys of sorted tables
const sortedDegree = 32

// Conf - Is a struct to be passed in the call to New and contains the configuration of a hash table.
//   - Size is the requested number of buckets, it is rounded up to the nearest prime and never changes
//   - Storage selects whether items live in the table or outside it
//   - Ownership selects whether the table disposes of external items, it must be Borrowed for InTable storage
//   - Release is an optional hook called on every item an Owned table disposes of
//   - CaseSensitive set to false makes keys differing only in ASCII letter case the same key
//   - Sorted set to true makes Apply visit items in ascending key order instead of insertion order
//   - Key tells where items keep their key, see StringKey and FixedKey
//   - HashAlgorithm is an optional custom hash algorithm, nil selects the internal one-at-a-time algorithm
//   - Logger is an optional logger for table life cycle events
type Conf[T any] struct {
	Size          int
	Storage       Storage
	Ownership     Ownership
	Release       func(item *T)
	CaseSensitive bool
	Sorted        bool
	Key           KeyField[T]
	HashAlgorithm hashfunc.HashAlgorithm
	Logger        *zerolog.Logger
}

// HashTableInfo - Information structure containing some information about the hash table created
//   - RequestedSize is the number of buckets asked for
//   - NumberOfBuckets is the actual, prime, number of buckets
//   - InternalAlgorithm is true if the internal hash algorithm is used
type HashTableInfo struct {
	RequestedSize     int64
	NumberOfBuckets   int64
	InternalAlgorithm bool
}

// HashTable - The main implementation struct.
// A HashTable is not safe for concurrent use, callers sharing one between goroutines must guard it with a mutex.
type HashTable[T any] struct {
	size          uint32
	storage       Storage
	ownership     Ownership
	release       func(item *T)
	key           KeyField[T]
	hashAlgorithm hashfunc.HashAlgorithm
	internalAlg   bool
	compare       func(a, b string) int
	items         storage.Store[T]
	hashes        []uint32
	local         *list.Links
	global        *list.Links
	order         *btree.BTreeG[sortedKey]
	count         int
	logger        zerolog.Logger
}

// sortedKey - Entry of the key index of sorted tables
type sortedKey struct {
	key string
	ref uint32
}

// New - Returns a new hash table with a fixed number of buckets.
//   - conf is a Conf struct with the table configuration
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - hashTableInfo is a HashTableInfo struct containing some data regarding the hash table created.
//   - err is a normal go Error which should be nil if everything went ok
func New[T any](conf Conf[T]) (hashTable *HashTable[T], hashTableInfo HashTableInfo, err error) {
	// Check if size is valid
	if conf.Size <= 0 {
		err = fmt.Errorf("size must be a positive value higher than 0 (zero)")
		return
	}

	// Check if we know where to find keys
	if conf.Key == nil {
		err = fmt.Errorf("key field must be given, use StringKey or FixedKey")
		return
	}

	// Check storage and ownership combinations
	if conf.Storage != External && conf.Storage != InTable {
		err = fmt.Errorf("unknown storage %s", conf.Storage)
		return
	}
	if conf.Ownership != Borrowed && conf.Ownership != Owned {
		err = fmt.Errorf("unknown ownership %s", conf.Ownership)
		return
	}
	if conf.Storage == InTable && conf.Ownership == Owned {
		err = fmt.Errorf("in-table items always belong to the table, ownership must be borrowed")
		return
	}
	if conf.Release != nil && conf.Ownership != Owned {
		err = fmt.Errorf("a release hook requires owned items")
		return
	}

	size := utils.NextPrime(int64(conf.Size))
	if size > math.MaxUint32 {
		err = fmt.Errorf("size %d is beyond the max number of buckets", conf.Size)
		return
	}

	hashTable = &HashTable[T]{
		size:      uint32(size),
		storage:   conf.Storage,
		ownership: conf.Ownership,
		release:   conf.Release,
		key:       conf.Key,
		local:     list.New(int(size), int(size)),
		global:    list.New(1, int(size)),
		logger:    zerolog.Nop(),
	}

	if conf.Logger != nil {
		hashTable.logger = *conf.Logger
	}

	// If no HashAlgorithm was given then use the default internal
	switch {
	case conf.HashAlgorithm == nil:
		hashTable.hashAlgorithm = hash.NewOneAtATimeHashAlgorithm(!conf.CaseSensitive)
		hashTable.internalAlg = true
	case conf.CaseSensitive:
		hashTable.hashAlgorithm = conf.HashAlgorithm
	default:
		hashTable.hashAlgorithm = hash.NewFoldCaseHashAlgorithm(conf.HashAlgorithm)
	}

	if conf.CaseSensitive {
		hashTable.compare = utils.CompareKeys
	} else {
		hashTable.compare = utils.CompareKeysFold
	}

	if conf.Storage == InTable {
		hashTable.items = storage.NewInTable[T]()
	} else {
		hashTable.items = storage.NewExternal[T]()
	}

	if conf.Sorted {
		compare := hashTable.compare
		hashTable.order = btree.NewG[sortedKey](sortedDegree, func(a, b sortedKey) bool {
			return compare(a.key, b.key) < 0
		})
	}

	hashTableInfo = HashTableInfo{
		RequestedSize:     int64(conf.Size),
		NumberOfBuckets:   size,
		InternalAlgorithm: hashTable.internalAlg,
	}

	hashTable.logger.Debug().
		Int("requested", conf.Size).
		Int64("buckets", size).
		Stringer("storage", conf.Storage).
		Stringer("ownership", conf.Ownership).
		Bool("caseSensitive", conf.CaseSensitive).
		Bool("sorted", conf.Sorted).
		Bool("internalAlgorithm", hashTable.internalAlg).
		Msg("hash table created")

	return
}

// Len - Returns the number of items in the table
func (H *HashTable[T]) Len() int {
	return H.count
}

// Size - Returns the number of buckets of the table
func (H *HashTable[T]) Size() int {
	return int(H.size)
}
