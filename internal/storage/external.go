package storage

// External - Store keeping pointers to items that live outside the table
type External[T any] struct {
	refs  refAllocator
	items []*T
}

// NewExternal - Returns a pointer to a new, empty External store
func NewExternal[T any]() *External[T] {
	return &External[T]{}
}

// Alloc - Stores the item pointer, or a pointer to a new zero valued item if item is nil
func (E *External[T]) Alloc(item *T) uint32 {
	if item == nil {
		item = new(T)
	}

	ref, fresh := E.refs.alloc()
	if fresh {
		E.items = append(E.items, item)
	} else {
		E.items[ref] = item
	}

	return ref
}

// Item - Returns the item pointer stored under ref
func (E *External[T]) Item(ref uint32) *T {
	return E.items[ref]
}

// Replace - Stores item under ref and returns the previously stored pointer
func (E *External[T]) Replace(ref uint32, item *T) (previous *T) {
	previous = E.items[ref]
	E.items[ref] = item
	return
}

// Free - Frees ref and returns the pointer that was stored under it
func (E *External[T]) Free(ref uint32) (item *T) {
	item = E.items[ref]
	E.items[ref] = nil
	E.refs.release(ref)
	return
}

// Refs - Returns the number of references handed out so far
func (E *External[T]) Refs() int {
	return int(E.refs.next)
}

// Reset - Drops all item pointers
func (E *External[T]) Reset() {
	E.refs.reset()
	clear(E.items)
	E.items = E.items[:0]
}
