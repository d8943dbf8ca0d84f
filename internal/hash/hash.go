package hash

import (
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/utils"
)

// oneAtATimeSeed - Initial hash value of the one-at-a-time algorithm
const oneAtATimeSeed uint32 = 111119

// OneAtATimeHashAlgorithm - The internally used hash algorithm, implemented as Bob Jenkins' one-at-a-time hash
// starting from a fixed seed. When folding case, ASCII upper case letters are hashed as their lower case
// counterparts without allocating a lower case copy of the key.
type OneAtATimeHashAlgorithm struct {
	foldCase bool
}

// NewOneAtATimeHashAlgorithm - Returns a pointer to a new OneAtATimeHashAlgorithm instance
//   - foldCase set to true makes keys differing only in ASCII letter case hash to the same value
func NewOneAtATimeHashAlgorithm(foldCase bool) *OneAtATimeHashAlgorithm {
	return &OneAtATimeHashAlgorithm{foldCase: foldCase}
}

// HashKey - Given key it generates a 32 bit hash value
func (O *OneAtATimeHashAlgorithm) HashKey(key string) uint32 {
	hash := oneAtATimeSeed
	for i := 0; i < len(key); i++ {
		c := key[i]
		if O.foldCase && 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		hash += uint32(c)
		hash += hash << 10
		hash ^= hash >> 6
	}

	hash += hash << 3
	hash ^= hash >> 11
	hash += hash << 15

	return hash
}

// FoldCaseHashAlgorithm - Wraps a hash algorithm so that keys are ASCII lower cased before being hashed
type FoldCaseHashAlgorithm struct {
	hashAlgorithm hashfunc.HashAlgorithm
}

// NewFoldCaseHashAlgorithm - Returns a pointer to a new FoldCaseHashAlgorithm wrapping hashAlgorithm
func NewFoldCaseHashAlgorithm(hashAlgorithm hashfunc.HashAlgorithm) *FoldCaseHashAlgorithm {
	return &FoldCaseHashAlgorithm{hashAlgorithm: hashAlgorithm}
}

// HashKey - Given key it generates a 32 bit hash value of its lower case form
func (F *FoldCaseHashAlgorithm) HashKey(key string) uint32 {
	return F.hashAlgorithm.HashKey(utils.LowerASCII(key))
}
