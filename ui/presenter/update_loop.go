package presenter

import "time"

// Loop aggregates feature presenters and drives periodic status updates.
//
// It calls Tick on the sub-presenters and then the scheduler callback. The
// zero value is usable (methods are nil-safe). Frame acquisition is driven
// by the surface's own timers, not by the loop.
type Loop struct {
	Session  *SessionPresenter
	Status   *StatusPresenter
	Schedule func()
	Now      func() time.Time
}

func NewLoop(sess *SessionPresenter, status *StatusPresenter, schedule func()) *Loop {
	return &Loop{Session: sess, Status: status, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Now != nil {
		now = l.Now()
	}
	if l.Status != nil {
		l.Status.Tick(now)
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
