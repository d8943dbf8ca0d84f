package storage

// InTable - Store keeping the items themselves. Items are copied in, and pointers returned by Item point into the
// store, so they stay valid until the reference is freed.
type InTable[T any] struct {
	refs   refAllocator
	chunks [][]T
}

// NewInTable - Returns a pointer to a new, empty InTable store
func NewInTable[T any]() *InTable[T] {
	return &InTable[T]{}
}

// Alloc - Copies item into a free slot, or zeroes the slot if item is nil
func (I *InTable[T]) Alloc(item *T) uint32 {
	ref, fresh := I.refs.alloc()
	if fresh && int(ref>>chunkShift) == len(I.chunks) {
		I.chunks = append(I.chunks, make([]T, chunkSize))
	}

	slot := I.slot(ref)
	if item != nil {
		*slot = *item
	} else {
		var zero T
		*slot = zero
	}

	return ref
}

// Item - Returns a pointer to the item in slot ref
func (I *InTable[T]) Item(ref uint32) *T {
	return I.slot(ref)
}

// Replace - Copies item over the one in slot ref. The previous contents are overwritten, so nil is returned.
func (I *InTable[T]) Replace(ref uint32, item *T) *T {
	*I.slot(ref) = *item
	return nil
}

// Free - Zeroes slot ref and makes it available again. The item lived in the store, so nil is returned.
func (I *InTable[T]) Free(ref uint32) *T {
	var zero T
	*I.slot(ref) = zero
	I.refs.release(ref)
	return nil
}

// Refs - Returns the number of references handed out so far
func (I *InTable[T]) Refs() int {
	return int(I.refs.next)
}

// Reset - Drops all items
func (I *InTable[T]) Reset() {
	I.refs.reset()
	I.chunks = nil
}

func (I *InTable[T]) slot(ref uint32) *T {
	return &I.chunks[ref>>chunkShift][ref&chunkMask]
}
