package preview

import (
	"sort"
	"time"
)

// ManualScheduler is a deterministic Scheduler driven by Advance or Fire.
// It backs headless runs and tests.
type ManualScheduler struct {
	next   TimerID
	timers map[TimerID]*manualTimer
	now    time.Duration
}

type manualTimer struct {
	interval time.Duration
	due      time.Duration
	fn       func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{timers: make(map[TimerID]*manualTimer)}
}

func (s *ManualScheduler) Every(interval time.Duration, fn func()) TimerID {
	if interval <= 0 {
		interval = time.Millisecond
	}
	s.next++
	s.timers[s.next] = &manualTimer{interval: interval, due: s.now + interval, fn: fn}
	return s.next
}

func (s *ManualScheduler) Cancel(id TimerID) { delete(s.timers, id) }

// Active returns the number of registered timers.
func (s *ManualScheduler) Active() int { return len(s.timers) }

// Fire runs the callback of id once, if registered.
func (s *ManualScheduler) Fire(id TimerID) bool {
	t, ok := s.timers[id]
	if !ok {
		return false
	}
	t.fn()
	return true
}

// Advance moves virtual time forward by d, firing every callback that falls
// due, earliest first.
func (s *ManualScheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		t := s.earliest()
		if t == nil || t.due > end {
			break
		}
		s.now = t.due
		t.due += t.interval
		t.fn()
	}
	s.now = end
}

// earliest picks the next due timer; ties go to the one registered first.
func (s *ManualScheduler) earliest() *manualTimer {
	ids := make([]TimerID, 0, len(s.timers))
	for id := range s.timers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var best *manualTimer
	for _, id := range ids {
		if t := s.timers[id]; best == nil || t.due < best.due {
			best = t
		}
	}
	return best
}
