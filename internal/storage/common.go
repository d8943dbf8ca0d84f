package storage

// chunkShift - Entries are kept in chunks of 1<<chunkShift slots so that slot addresses stay put while the store grows
const chunkShift = 8

// chunkSize - Number of slots in a chunk
const chunkSize = 1 << chunkShift

// chunkMask - Mask giving the slot offset within a chunk
const chunkMask = chunkSize - 1

// Store - Interface for the item storage strategies of a hash table.
// Each stored item is addressed by a reference that stays valid until the item is freed, after which it may be
// handed out again.
type Store[T any] interface {
	// Alloc - Stores an item and returns its reference. A nil item stores a zero valued item.
	Alloc(item *T) (ref uint32)
	// Item - Returns the item stored under ref
	Item(ref uint32) *T
	// Replace - Replaces the item stored under ref with item and returns the previous item if it lives outside the store
	Replace(ref uint32, item *T) (previous *T)
	// Free - Frees ref and returns the item that was stored if it lives outside the store
	Free(ref uint32) (item *T)
	// Refs - Returns the number of references handed out so far, including freed ones
	Refs() int
	// Reset - Frees everything
	Reset()
}

// refAllocator - Hands out references, reusing freed ones before growing
type refAllocator struct {
	free []uint32
	next uint32
}

// alloc - Returns a reference and whether it is a new one (never handed out before)
func (R *refAllocator) alloc() (ref uint32, fresh bool) {
	if n := len(R.free); n > 0 {
		ref = R.free[n-1]
		R.free = R.free[:n-1]
		return ref, false
	}

	ref = R.next
	R.next++
	return ref, true
}

// release - Returns a reference for reuse
func (R *refAllocator) release(ref uint32) {
	R.free = append(R.free, ref)
}

// reset - Forgets all references
func (R *refAllocator) reset() {
	R.free = R.free[:0]
	R.next = 0
}
