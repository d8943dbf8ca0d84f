package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// XXHashAlgorithm - Hash algorithm using the 64 bit xxHash of the key, folded to 32 bits
type XXHashAlgorithm struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm() *XXHashAlgorithm {
	return &XXHashAlgorithm{}
}

// HashKey - Given key it generates a 32 bit hash value
func (X *XXHashAlgorithm) HashKey(key string) uint32 {
	return fold64(xxhash.Sum64String(key))
}

// XXH3HashAlgorithm - Hash algorithm using the 64 bit XXH3 hash of the key, folded to 32 bits
type XXH3HashAlgorithm struct{}

// NewXXH3HashAlgorithm - Returns a pointer to a new XXH3HashAlgorithm instance
func NewXXH3HashAlgorithm() *XXH3HashAlgorithm {
	return &XXH3HashAlgorithm{}
}

// HashKey - Given key it generates a 32 bit hash value
func (X *XXH3HashAlgorithm) HashKey(key string) uint32 {
	return fold64(xxh3.HashString(key))
}

// fold64 - Mixes the upper half of a 64 bit hash into the lower half
func fold64(h uint64) uint32 {
	return uint32(h ^ (h >> 32))
}
