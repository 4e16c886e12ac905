package clist

import "iter"

// All returns an iterator over the entries of the list headed by l,
// in forward order. The body must not change the list.
func (l *Link) All() iter.Seq[*Link] {
	return func(yield func(*Link) bool) {
		for it := l.LoopFirst(); it != l; it = it.LoopNext() {
			if !yield(it) {
				return
			}
		}
	}
}

// Backward returns an iterator over the entries of the list headed by l,
// in reverse order. The body must not change the list.
func (l *Link) Backward() iter.Seq[*Link] {
	return func(yield func(*Link) bool) {
		for it := l.LoopLast(); it != l; it = it.LoopPrev() {
			if !yield(it) {
				return
			}
		}
	}
}

// AllSafe is like All but fetches the next entry before yielding the
// current one, so the body may unlink the current entry.
// Unlinking any other entry during the walk is undefined.
func (l *Link) AllSafe() iter.Seq[*Link] {
	return func(yield func(*Link) bool) {
		for it, safe := l.LoopFirst(), l.LoopFirst().LoopNext(); it != l; it, safe = safe, safe.LoopNext() {
			if !yield(it) {
				return
			}
		}
	}
}
