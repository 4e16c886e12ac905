/*
Package list implements a typed doubly linked list on top of clist.Link.
*/
package list

import (
	"iter"

	"github.com/mgnsk/clist"
)

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
// A List must not be copied after first use.
type List[V any] struct {
	root   clist.Link
	member clist.Member[Element[V]]
	len    int
}

func (l *List[V]) lazyInit() {
	if l.root.LoopNext() == nil {
		l.root.Init()
		l.member = clist.MemberOf(func(e *Element[V]) *clist.Link {
			return &e.link
		})
	}
}

func (l *List[V]) mustContain(e *Element[V]) {
	if e == nil || e.list != l {
		panic("list: invalid element")
	}
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	return l.member.FirstEntry(&l.root)
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *Element[V] {
	return l.member.LastEntry(&l.root)
}

// PushBack inserts a value at the back of list l and returns the new element.
func (l *List[V]) PushBack(value V) *Element[V] {
	e := NewElement(value)
	l.PushBackElem(e)
	return e
}

// PushBackElem inserts a new element at the back of list l.
func (l *List[V]) PushBackElem(e *Element[V]) {
	l.lazyInit()
	e.list = l
	l.root.LinkTail(&e.link)
	l.len++
}

// PushFront inserts a value at the front of list l and returns the new element.
func (l *List[V]) PushFront(value V) *Element[V] {
	e := NewElement(value)
	l.PushFrontElem(e)
	return e
}

// PushFrontElem inserts a new element at the front of list l.
func (l *List[V]) PushFrontElem(e *Element[V]) {
	l.lazyInit()
	e.list = l
	l.root.LinkFront(&e.link)
	l.len++
}

// InsertBefore inserts a value immediately before mark and returns the new element.
func (l *List[V]) InsertBefore(value V, mark *Element[V]) *Element[V] {
	l.mustContain(mark)

	e := NewElement(value)
	e.list = l
	mark.link.LinkBefore(&e.link)
	l.len++

	return e
}

// InsertAfter inserts a value immediately after mark and returns the new element.
func (l *List[V]) InsertAfter(value V, mark *Element[V]) *Element[V] {
	l.mustContain(mark)

	e := NewElement(value)
	e.list = l
	mark.link.LinkAfter(&e.link)
	l.len++

	return e
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	for e := range l.All() {
		if !f(e) {
			return
		}
	}
}

// All returns an iterator over the elements of the list, in forward order.
// The loop body must not change l.
func (l *List[V]) All() iter.Seq[*Element[V]] {
	l.lazyInit()
	return l.member.Entries(&l.root)
}

// MoveAfter moves an element to its new position after mark.
// If mark == l.Back(), e becomes the new back element.
func (l *List[V]) MoveAfter(e, mark *Element[V]) {
	l.mustContain(e)
	l.mustContain(mark)

	if e == mark {
		return
	}

	e.link.UnlinkInit()
	mark.link.LinkAfter(&e.link)
}

// MoveBefore moves an element to its new position before mark.
// if mark == l.Front(), e becomes the new front element.
func (l *List[V]) MoveBefore(e, mark *Element[V]) {
	l.mustContain(e)
	l.mustContain(mark)

	if e == mark {
		return
	}

	e.link.UnlinkInit()
	mark.link.LinkBefore(&e.link)
}

// MoveToFront moves the element to the front of list l.
func (l *List[V]) MoveToFront(e *Element[V]) {
	l.mustContain(e)

	e.link.UnlinkInit()
	l.root.LinkFront(&e.link)
}

// MoveToBack moves the element to the back of list l.
func (l *List[V]) MoveToBack(e *Element[V]) {
	l.mustContain(e)

	e.link.UnlinkInit()
	l.root.LinkTail(&e.link)
}

// Move moves element e forward or backwards by at most delta positions
// or until the element becomes the front or back element in the list.
func (l *List[V]) Move(e *Element[V], delta int) {
	l.mustContain(e)

	mark := &e.link

	switch {
	case delta == 0:
		return

	case delta > 0:
		for range delta {
			next := mark.LoopNext()
			if next == &l.root {
				break
			}
			mark = next
		}

		if mark != &e.link {
			e.link.UnlinkInit()
			mark.LinkAfter(&e.link)
		}

	case delta < 0:
		for i := 0; i > delta; i-- {
			prev := mark.LoopPrev()
			if prev == &l.root {
				break
			}
			mark = prev
		}

		if mark != &e.link {
			e.link.UnlinkInit()
			mark.LinkBefore(&e.link)
		}
	}
}

// Remove an element from the list.
func (l *List[V]) Remove(e *Element[V]) {
	l.mustContain(e)

	e.link.UnlinkInit()
	e.list = nil
	l.len--
}

// Clear removes all elements from the list.
func (l *List[V]) Clear() {
	if l.len == 0 {
		return
	}

	for e := range l.member.EntriesSafe(&l.root) {
		e.link.UnlinkInit()
		e.list = nil
	}

	l.len = 0
}
