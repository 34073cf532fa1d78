package celebrate

import (
	"sort"
	"time"
)

type timer struct {
	at  time.Duration
	seq int
	fn  func()
}

// Scheduler runs one-shot callbacks on frame time. It is driven from the
// game's Update, so callbacks run on the game goroutine.
type Scheduler struct {
	now    time.Duration
	seq    int
	timers []timer
}

// After runs fn once at least d from now.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.seq++
	s.timers = append(s.timers, timer{at: s.now + d, seq: s.seq, fn: fn})
}

func (s *Scheduler) Pending() int { return len(s.timers) }

// Advance moves time forward by dt and fires everything that came due, in
// due order. Callbacks scheduled from inside a callback wait for the next
// Advance.
func (s *Scheduler) Advance(dt time.Duration) {
	s.now += dt
	var due, rest []timer
	for _, t := range s.timers {
		if t.at <= s.now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	s.timers = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.fn()
	}
}
