/*
Package clist implements an intrusive circular doubly linked list.

Records embed a Link by value and are linked relative to a head Link, which is
itself a member of the ring. The list never allocates, owns or frees entries.
An initialized head with no entries points to itself.
*/
package clist

// Link is an entry of a circular doubly linked list.
//
// A head must be initialized with Init before use. The zero value of an entry
// reports as unlinked, so entries only need Init when they are queried with
// IsLinked after an Unlink.
//
// Link is not safe for concurrent use.
type Link struct {
	next, prev *Link
}

// Init makes l self-referential and returns it.
func (l *Link) Init() *Link {
	l.next = l
	l.prev = l
	return l
}

// IsLinked reports whether l is linked into a ring.
func (l *Link) IsLinked() bool {
	return l != nil && l.next != nil && l.next != l
}

// IsEmpty reports whether the list headed by l has no entries.
// A nil head is empty.
func (l *Link) IsEmpty() bool {
	return !l.IsLinked()
}

// LinkBefore links what directly in front of l. If l is a list head,
// what becomes the new tail.
//
// what is not inspected and must not be linked into any ring.
func (l *Link) LinkBefore(what *Link) {
	if debug {
		assertUnlinked(what)
	}

	prev, next := l.prev, l

	next.prev = what
	what.next = next
	what.prev = prev
	prev.next = what
}

// LinkTail links what as the new tail of the list headed by l.
func (l *Link) LinkTail(what *Link) {
	l.LinkBefore(what)
}

// LinkAfter links what directly after l. If l is a list head,
// what becomes the new front.
//
// what is not inspected and must not be linked into any ring.
func (l *Link) LinkAfter(what *Link) {
	if debug {
		assertUnlinked(what)
	}

	prev, next := l, l.next

	next.prev = what
	what.next = next
	what.prev = prev
	prev.next = what
}

// LinkFront links what as the new front of the list headed by l.
func (l *Link) LinkFront(what *Link) {
	l.LinkAfter(what)
}

// Unlink removes l from its ring. l itself is not modified and keeps
// pointing into the old ring; use UnlinkInit to reset it.
func (l *Link) Unlink() {
	if debug {
		assertInitialized(l)
	}

	prev, next := l.prev, l.next

	next.prev = prev
	prev.next = next
}

// UnlinkInit removes l from its ring if linked and re-initializes it.
func (l *Link) UnlinkInit() {
	// Unlinked links are left alone to avoid the stores.
	if l.IsLinked() {
		l.Unlink()
		l.Init()
	}
}

// LoopFirst returns the first entry of the list headed by l,
// or l itself if the list is empty.
func (l *Link) LoopFirst() *Link {
	return l.next
}

// LoopLast returns the last entry of the list headed by l,
// or l itself if the list is empty.
func (l *Link) LoopLast() *Link {
	return l.prev
}

// LoopNext returns the entry after l. For the tail this is the list head.
func (l *Link) LoopNext() *Link {
	return l.next
}

// LoopPrev returns the entry before l. For the front this is the list head.
func (l *Link) LoopPrev() *Link {
	return l.prev
}

// First returns the first entry of the list headed by l or nil.
// It never returns the head.
func (l *Link) First() *Link {
	if l.IsEmpty() {
		return nil
	}
	return l.next
}

// Last returns the last entry of the list headed by l or nil.
// It never returns the head.
func (l *Link) Last() *Link {
	if l.IsEmpty() {
		return nil
	}
	return l.prev
}
