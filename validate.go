package clist

import (
	"github.com/pkg/errors"
)

// ErrCorrupted indicates a ring with inconsistent links.
var ErrCorrupted = errors.New("clist: corrupted ring")

// Validate walks the ring of head and checks that every link points back
// to its neighbours. The returned error wraps ErrCorrupted.
//
// Validate terminates on any ring: a walk in which every link satisfies
// next.prev == link can only return to head.
func Validate(head *Link) error {
	if head == nil {
		return errors.Wrap(ErrCorrupted, "nil head")
	}

	pos := 0
	l := head
	for {
		if l.next == nil || l.prev == nil {
			return errors.Wrapf(ErrCorrupted, "uninitialized link at position %d", pos)
		}
		if l.next.prev != l {
			return errors.Wrapf(ErrCorrupted, "next.prev mismatch at position %d", pos)
		}
		if l.prev.next != l {
			return errors.Wrapf(ErrCorrupted, "prev.next mismatch at position %d", pos)
		}

		if l = l.next; l == head {
			return nil
		}
		pos++
	}
}
