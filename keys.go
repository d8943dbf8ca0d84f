package hashtable

import (
	"bytes"
	"fmt"
	"strings"
)

// KeyField - Interface telling the hash table where an item keeps its key.
// The key of an item must not be changed while the item is in a table.
type KeyField[T any] interface {
	// Key - Returns the key of item
	Key(item *T) string
	// SetKey - Stores key in item. It is used when the table creates items itself.
	SetKey(item *T, key string) error
	// MaxLength - Returns the max length of a key, or 0 if keys are unbounded
	MaxLength() int
}

// stringKey - Key kept in a string field of the item
type stringKey[T any] struct {
	field func(item *T) *string
}

// StringKey - Returns a KeyField for items keeping their key in a string field.
// Keys set by the table are copies owned by the item, never aliasing the caller's key.
//   - field returns a pointer to the key field of an item, e.g. func(i *Item) *string { return &i.Name }
func StringKey[T any](field func(item *T) *string) KeyField[T] {
	return stringKey[T]{field: field}
}

func (S stringKey[T]) Key(item *T) string {
	return *S.field(item)
}

func (S stringKey[T]) SetKey(item *T, key string) error {
	*S.field(item) = strings.Clone(key)
	return nil
}

func (S stringKey[T]) MaxLength() int {
	return 0
}

// fixedKey - Key kept inline in a fixed size byte buffer of the item, NUL padded
type fixedKey[T any] struct {
	field  func(item *T) []byte
	length int
}

// FixedKey - Returns a KeyField for items keeping their key inline in a fixed size byte array.
// A key shorter than the array is NUL padded, so keys can not hold NUL bytes and can be at most as long as the array.
//   - field returns the key array of an item as a slice, e.g. func(i *Item) []byte { return i.Name[:] }
func FixedKey[T any](field func(item *T) []byte) KeyField[T] {
	var zero T
	return fixedKey[T]{field: field, length: len(field(&zero))}
}

func (F fixedKey[T]) Key(item *T) string {
	b := F.field(item)
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

func (F fixedKey[T]) SetKey(item *T, key string) error {
	if len(key) > F.length {
		return fmt.Errorf("key of length %d does not fit fixed key length %d: %w", len(key), F.length, KeyTooLong{})
	}
	if strings.IndexByte(key, 0) >= 0 {
		return fmt.Errorf("key %q holds a NUL byte: %w", key, InvalidKey{})
	}

	b := F.field(item)
	n := copy(b, key)
	clear(b[n:])

	return nil
}

func (F fixedKey[T]) MaxLength() int {
	return F.length
}
