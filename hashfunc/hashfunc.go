package hashfunc

// HashAlgorithm - Interface that permits a user of the HashTable to supply a custom hash algorithm suited for its
// particular distribution of keys.
type HashAlgorithm interface {
	// HashKey - Given key it generates a 32 bit hash value.
	// The bucket of a key is the hash value modulo the (prime) number of buckets, and within a bucket entries are kept
	// ordered by hash value, so the function must return the same value for the same key throughout the life of a table.
	// Case-insensitive tables lower case ASCII letters before calling HashKey on a custom algorithm.
	HashKey(key string) uint32
}
