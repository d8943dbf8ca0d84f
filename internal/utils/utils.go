package utils

import "strings"

// CompareKeys - Returns a negative number if a sorts before b, zero if they are equal and a positive number otherwise.
// The comparison is done byte by byte as in strcmp.
func CompareKeys(a, b string) int {
	return strings.Compare(a, b)
}

// CompareKeysFold - Same as CompareKeys but ASCII letters are compared as upper case, which makes "Foo" and "FOO"
// equal. Bytes outside the ASCII letter ranges are compared as is.
func CompareKeysFold(a, b string) int {
	lenA, lenB := len(a), len(b)
	for i := 0; i < lenA && i < lenB; i++ {
		ca, cb := upper(a[i]), upper(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}

	switch {
	case lenA < lenB:
		return -1
	case lenA > lenB:
		return 1
	}

	return 0
}

// LowerASCII - Returns s with ASCII upper case letters turned into lower case. If s has no upper case letters it is
// returned as is without allocating.
func LowerASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if 'A' <= b[i] && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}

	return string(b)
}

// IsPrime - Returns true if n is a prime number
func IsPrime(n int64) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the smallest prime number that is equal to or higher than n
func NextPrime(n int64) int64 {
	for !IsPrime(n) {
		n++
	}

	return n
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
