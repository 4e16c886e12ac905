package list

import "github.com/mgnsk/clist"

// Element is a list element.
type Element[V any] struct {
	link  clist.Link
	list  *List[V]
	Value V
}

// NewElement creates a list element.
func NewElement[V any](v V) *Element[V] {
	e := &Element[V]{
		Value: v,
	}
	e.link.Init()
	return e
}

// Next returns the next element or nil if e is the last element in its list.
func (e *Element[V]) Next() *Element[V] {
	if e.list == nil {
		return nil
	}
	if n := e.link.LoopNext(); n != &e.list.root {
		return e.list.member.Entry(n)
	}
	return nil
}

// Prev returns the previous element or nil if e is the first element in its list.
func (e *Element[V]) Prev() *Element[V] {
	if e.list == nil {
		return nil
	}
	if p := e.link.LoopPrev(); p != &e.list.root {
		return e.list.member.Entry(p)
	}
	return nil
}
