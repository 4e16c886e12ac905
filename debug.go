//go:build clistdebug

package clist

const debug = true

func assertUnlinked(l *Link) {
	if l.IsLinked() {
		panic("clist: link already linked")
	}
}

func assertInitialized(l *Link) {
	if l.next == nil || l.prev == nil {
		panic("clist: unlink of uninitialized link")
	}
}
