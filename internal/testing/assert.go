package testing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mgnsk/clist"
)

// AssertSuccess that error did not occur.
func AssertSuccess(t testing.TB, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
}

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T, opts ...cmp.Option) {
	t.Helper()

	if diff := cmp.Diff(b, a, opts...); diff != "" {
		t.Fatalf("unexpected value (-want +got):\n%s", diff)
	}
}

// AssertRing asserts that the ring of head is consistent and contains
// exactly the links want in forward and reverse order.
func AssertRing(t testing.TB, head *clist.Link, want ...*clist.Link) {
	t.Helper()

	AssertSuccess(t, clist.Validate(head))

	var forward []*clist.Link
	for l := range head.All() {
		forward = append(forward, l)
	}

	var backward []*clist.Link
	for l := range head.Backward() {
		backward = append([]*clist.Link{l}, backward...)
	}

	assertSameLinks(t, "forward", forward, want)
	assertSameLinks(t, "backward", backward, want)

	if got, wantEmpty := head.IsEmpty(), len(want) == 0; got != wantEmpty {
		t.Fatalf("expected IsEmpty() == %t", wantEmpty)
	}
}

// Links are compared by identity, cmp would compare them structurally and
// walk the whole ring.
func assertSameLinks(t testing.TB, dir string, got, want []*clist.Link) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: expected %d links, got %d", dir, len(want), len(got))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: unexpected link at position %d", dir, i)
		}
	}
}
