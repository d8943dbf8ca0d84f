// Package list implements circular doubly linked lists over an index arena.
//
// The first nodes of a Links arena are list heads (sentinels). A head whose links point back to itself is an empty
// list, so inserting into or removing from a list never has to special case its ends. The remaining nodes belong to
// entries, addressed by the entry reference handed out by the hash table's storage.
package list

// Node - Index of a node within a Links arena
type Node uint32

type link struct {
	prev Node
	next Node
}

// Links - Arena holding the links of a fixed number of list heads followed by any number of entry nodes.
type Links struct {
	links []link
	heads int
}

// New - Returns a pointer to a new Links arena with the given number of list heads, all of them empty.
//   - heads is the number of lists the arena holds
//   - capacity is an estimate of the number of entry nodes to reserve room for
func New(heads, capacity int) *Links {
	l := &Links{links: make([]link, heads, heads+capacity), heads: heads}
	l.Reset()
	return l
}

// Reset - Empties every list. Entry nodes are dropped and have to be grown again before use.
func (L *Links) Reset() {
	L.links = L.links[:L.heads]
	for i := range L.links {
		L.links[i] = link{prev: Node(i), next: Node(i)}
	}
}

// Grow - Makes sure the arena holds nodes for entry references 0 to refs - 1. New nodes are detached.
func (L *Links) Grow(refs int) {
	for n := len(L.links); n < L.heads+refs; n++ {
		L.links = append(L.links, link{prev: Node(n), next: Node(n)})
	}
}

// Head - Returns the head node of list i
func (L *Links) Head(i int) Node {
	return Node(i)
}

// Heads - Returns the number of lists in the arena
func (L *Links) Heads() int {
	return L.heads
}

// Node - Returns the node belonging to entry reference ref
func (L *Links) Node(ref uint32) Node {
	return Node(uint32(L.heads) + ref)
}

// Ref - Returns the entry reference of the entry node n
func (L *Links) Ref(n Node) uint32 {
	return uint32(n) - uint32(L.heads)
}

// IsHead - Returns true if n is a list head rather than an entry node
func (L *Links) IsHead(n Node) bool {
	return int(n) < L.heads
}

// Next - Returns the node following n. For the last entry of a list that is the list head.
func (L *Links) Next(n Node) Node {
	return L.links[n].next
}

// Prev - Returns the node preceding n. For the first entry of a list that is the list head.
func (L *Links) Prev(n Node) Node {
	return L.links[n].prev
}

// Empty - Returns true if the list with head node head has no entries
func (L *Links) Empty(head Node) bool {
	return L.links[head].next == head
}

// InsertBefore - Links n into a list right before at. Passing a list head as at appends n to that list.
func (L *Links) InsertBefore(n, at Node) {
	prev := L.links[at].prev
	L.links[n] = link{prev: prev, next: at}
	L.links[prev].next = n
	L.links[at].prev = n
}

// Remove - Unlinks n from whatever list it is in and leaves it detached
func (L *Links) Remove(n Node) {
	l := L.links[n]
	L.links[l.prev].next = l.next
	L.links[l.next].prev = l.prev
	L.links[n] = link{prev: n, next: n}
}
