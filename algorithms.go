package hashtable

import (
	"fmt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/hash"
	"strings"
)

// NewOneAtATimeHashAlgorithm - Returns the case-sensitive form of the internal one-at-a-time hash algorithm.
// Tables created without a HashAlgorithm already use it.
func NewOneAtATimeHashAlgorithm() hashfunc.HashAlgorithm {
	return hash.NewOneAtATimeHashAlgorithm(false)
}

// NewXXHashAlgorithm - Returns a hash algorithm based on 64 bit xxHash folded to 32 bits
func NewXXHashAlgorithm() hashfunc.HashAlgorithm {
	return hash.NewXXHashAlgorithm()
}

// NewXXH3HashAlgorithm - Returns a hash algorithm based on 64 bit XXH3 folded to 32 bits
func NewXXH3HashAlgorithm() hashfunc.HashAlgorithm {
	return hash.NewXXH3HashAlgorithm()
}

// NewMurmur3HashAlgorithm - Returns a hash algorithm based on 32 bit MurmurHash3
//   - seed is the murmur3 seed
func NewMurmur3HashAlgorithm(seed uint32) hashfunc.HashAlgorithm {
	return hash.NewMurmur3HashAlgorithm(seed)
}

// HashAlgorithmByName - Returns the hash algorithm with the given name, one of "oneatatime", "xxhash", "xxh3" and
// "murmur3" (case-insensitive). A nil algorithm is returned for "oneatatime" so that tables use their internal algorithm.
func HashAlgorithmByName(name string) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	switch strings.ToLower(name) {
	case "oneatatime":
	case "xxhash":
		hashAlgorithm = NewXXHashAlgorithm()
	case "xxh3":
		hashAlgorithm = NewXXH3HashAlgorithm()
	case "murmur3":
		hashAlgorithm = NewMurmur3HashAlgorithm(0)
	default:
		err = fmt.Errorf("unknown hash algorithm %q", name)
	}

	return
}
