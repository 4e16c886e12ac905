package main

import (
	"github.com/mgnsk/clist"
)

type job struct {
	name     string
	priority bool
	queue    clist.Link
	history  clist.Link
}

var (
	inQueue   = clist.MemberOf(func(j *job) *clist.Link { return &j.queue })
	inHistory = clist.MemberOf(func(j *job) *clist.Link { return &j.history })
)

func main() {
	var pending, history clist.Link
	pending.Init()
	history.Init()

	for _, j := range []*job{
		{name: "resize"},
		{name: "backup", priority: true},
		{name: "index"},
	} {
		// Priority jobs jump the queue.
		if j.priority {
			pending.LinkFront(&j.queue)
		} else {
			pending.LinkTail(&j.queue)
		}
	}

	// The current job may be unlinked while walking the queue.
	for j := range inQueue.EntriesSafe(&pending) {
		println("running", j.name)

		j.queue.UnlinkInit()
		history.LinkFront(&j.history)
	}

	if !pending.IsEmpty() {
		panic("expected an empty queue")
	}

	if err := clist.Validate(&history); err != nil {
		panic(err)
	}

	println("most recent job:", inHistory.FirstEntry(&history).name)
}
