package view

import (
	"time"

	"github.com/soocke/rti-preview/domain/preview"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// TkScheduler runs periodic callbacks on the Tk event loop with after. Each
// timer re-arms itself after its callback returns; Cancel drops the pending
// after event.
type TkScheduler struct {
	next    preview.TimerID
	pending map[preview.TimerID]string // timer -> current after id
}

var _ preview.Scheduler = (*TkScheduler)(nil)

func NewTkScheduler() *TkScheduler {
	return &TkScheduler{pending: map[preview.TimerID]string{}}
}

func (s *TkScheduler) Every(interval time.Duration, fn func()) preview.TimerID {
	s.next++
	id := s.next
	var arm func()
	arm = func() {
		s.pending[id] = TclAfter(interval, func() {
			if _, ok := s.pending[id]; !ok {
				return
			}
			fn()
			// fn may have cancelled this timer.
			if _, ok := s.pending[id]; ok {
				arm()
			}
		})
	}
	arm()
	return id
}

func (s *TkScheduler) Cancel(id preview.TimerID) {
	after, ok := s.pending[id]
	if !ok {
		return
	}
	delete(s.pending, id)
	TclAfterCancel(after)
}

// CancelAll drops every pending timer, used on exit.
func (s *TkScheduler) CancelAll() {
	for id := range s.pending {
		s.Cancel(id)
	}
}
