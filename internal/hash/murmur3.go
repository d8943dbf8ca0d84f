package hash

import "github.com/spaolacci/murmur3"

// Murmur3HashAlgorithm - Hash algorithm using the 32 bit MurmurHash3 of the key with a configurable seed
type Murmur3HashAlgorithm struct {
	seed uint32
}

// NewMurmur3HashAlgorithm - Returns a pointer to a new Murmur3HashAlgorithm instance
//   - seed is the murmur3 seed, tables loaded with different seeds distribute the same keys differently
func NewMurmur3HashAlgorithm(seed uint32) *Murmur3HashAlgorithm {
	return &Murmur3HashAlgorithm{seed: seed}
}

// HashKey - Given key it generates a 32 bit hash value
func (M *Murmur3HashAlgorithm) HashKey(key string) uint32 {
	return murmur3.Sum32WithSeed([]byte(key), M.seed)
}
