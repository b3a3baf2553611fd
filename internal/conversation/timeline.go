package conversation

import (
	"sort"
	"time"
)

type pending struct {
	due time.Duration
	seq int
	t   Transition
}

// Timeline is a virtual clock for scheduled transitions. Tests and scripted
// demos use it in place of real timers so lifecycle timing is deterministic.
type Timeline struct {
	now     time.Duration
	seq     int
	pending []pending
}

// NewTimeline returns a timeline starting at zero.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Now returns the elapsed virtual time.
func (tl *Timeline) Now() time.Duration { return tl.now }

// Pending returns the number of transitions not yet due.
func (tl *Timeline) Pending() int { return len(tl.pending) }

// Schedule queues transitions relative to the current virtual time.
func (tl *Timeline) Schedule(ts ...Transition) {
	for _, t := range ts {
		tl.pending = append(tl.pending, pending{due: tl.now + t.Delay, seq: tl.seq, t: t})
		tl.seq++
	}
}

// Advance moves the clock forward by d and returns the transitions that fell
// due, ordered by due time and then by scheduling order.
func (tl *Timeline) Advance(d time.Duration) []Transition {
	tl.now += d

	sort.SliceStable(tl.pending, func(i, j int) bool {
		if tl.pending[i].due != tl.pending[j].due {
			return tl.pending[i].due < tl.pending[j].due
		}
		return tl.pending[i].seq < tl.pending[j].seq
	})

	n := 0
	for n < len(tl.pending) && tl.pending[n].due <= tl.now {
		n++
	}
	due := make([]Transition, n)
	for i := 0; i < n; i++ {
		due[i] = tl.pending[i].t
	}
	tl.pending = append(tl.pending[:0], tl.pending[n:]...)
	return due
}
