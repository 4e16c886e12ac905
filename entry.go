package clist

import (
	"iter"
	"unsafe"
)

// Member describes a Link field embedded in the container type T.
// It recovers the container from a pointer to its Link.
//
// The zero value describes a Link at offset 0. Use MemberOf.
type Member[T any] struct {
	offset uintptr
}

// MemberOf returns the Member for the Link field selected by field.
// field must return the address of a Link embedded in its argument, for example
//
//	var byID = clist.MemberOf(func(n *node) *clist.Link { return &n.link })
//
// MemberOf allocates a probe value of T, so the result should be stored and reused.
// It panics if field returns a Link outside of its argument.
func MemberOf[T any](field func(*T) *Link) Member[T] {
	probe := new(T)
	fp := unsafe.Pointer(field(probe))
	base := unsafe.Pointer(probe)

	size := unsafe.Sizeof(*probe)
	if uintptr(fp) < uintptr(base) || uintptr(fp)-uintptr(base)+unsafe.Sizeof(Link{}) > size {
		panic("clist: field is not a member of the container")
	}

	return Member[T]{offset: uintptr(fp) - uintptr(base)}
}

// Entry returns the container of l or nil if l is nil.
//
// l must be embedded in a T at the field described by m.
func (m Member[T]) Entry(l *Link) *T {
	if l == nil {
		return nil
	}
	return (*T)(unsafe.Add(unsafe.Pointer(l), -int(m.offset)))
}

// Link returns the Link embedded in e or nil if e is nil.
func (m Member[T]) Link(e *T) *Link {
	if e == nil {
		return nil
	}
	return (*Link)(unsafe.Add(unsafe.Pointer(e), m.offset))
}

// FirstEntry returns the container of the first entry of the list
// headed by head or nil if the list is empty.
func (m Member[T]) FirstEntry(head *Link) *T {
	return m.Entry(head.First())
}

// LastEntry returns the container of the last entry of the list
// headed by head or nil if the list is empty.
func (m Member[T]) LastEntry(head *Link) *T {
	return m.Entry(head.Last())
}

// Entries returns an iterator over the containers of the list headed by head.
func (m Member[T]) Entries(head *Link) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for l := range head.All() {
			if !yield(m.Entry(l)) {
				return
			}
		}
	}
}

// EntriesBackward returns an iterator over the containers of the list
// headed by head, in reverse order.
func (m Member[T]) EntriesBackward(head *Link) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for l := range head.Backward() {
			if !yield(m.Entry(l)) {
				return
			}
		}
	}
}

// EntriesSafe is like Entries but the body may unlink the current entry.
func (m Member[T]) EntriesSafe(head *Link) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for l := range head.AllSafe() {
			if !yield(m.Entry(l)) {
				return
			}
		}
	}
}
