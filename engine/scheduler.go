package engine

import "sort"

type delayedCall struct {
	due int64
	seq uint64
	fn  func()
}

// Scheduler runs fire-and-forget callbacks once their due time has passed.
type Scheduler struct {
	calls []delayedCall
	seq   uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After queues fn to run at now+ms.
func (s *Scheduler) After(now, ms int64, fn func()) {
	if s == nil || fn == nil {
		return
	}
	if ms < 0 {
		ms = 0
	}
	s.seq++
	s.calls = append(s.calls, delayedCall{due: now + ms, seq: s.seq, fn: fn})
}

// Run executes every callback due at or before now, oldest first. Callbacks
// queued while running are held until the next Run.
func (s *Scheduler) Run(now int64) int {
	if s == nil || len(s.calls) == 0 {
		return 0
	}

	var due, rest []delayedCall
	for _, c := range s.calls {
		if c.due <= now {
			due = append(due, c)
		} else {
			rest = append(rest, c)
		}
	}
	if len(due) == 0 {
		return 0
	}
	s.calls = rest

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, c := range due {
		c.fn()
	}
	return len(due)
}

// Pending returns the number of queued callbacks.
func (s *Scheduler) Pending() int {
	if s == nil {
		return 0
	}
	return len(s.calls)
}
