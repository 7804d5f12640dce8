package model

import (
	"time"
)

// SessionModel tracks how long the preview has been live, per session and in
// total, together with the frames received. Presenters poll Values().
// The zero value is ready to use.
type SessionModel struct {
	active     bool
	liveStart  time.Time
	session    time.Duration
	total      time.Duration
	baseFrames uint64 // frame counter at session start
	frames     uint64
}

// SessionValues is a snapshot of SessionModel.
type SessionValues struct {
	Session time.Duration
	Total   time.Duration // includes the running session
	Frames  uint64        // frames received during the current or last session
}

func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick advances the model. frames is the surface's running frame counter.
func (m *SessionModel) OnTick(live bool, frames uint64, now time.Time) {
	if m == nil {
		return
	}
	switch {
	case live && !m.active:
		m.active = true
		m.liveStart = now
		m.baseFrames = frames
		m.session = 0
	case !live && m.active:
		m.active = false
		m.session = now.Sub(m.liveStart)
		m.total += m.session
		m.frames = frames - m.baseFrames
		return
	case !live:
		return
	}
	m.session = now.Sub(m.liveStart)
	m.frames = frames - m.baseFrames
}

// Values returns the current snapshot.
func (m *SessionModel) Values() SessionValues {
	if m == nil {
		return SessionValues{}
	}
	v := SessionValues{Session: m.session, Total: m.total, Frames: m.frames}
	if m.active {
		v.Total += m.session
	}
	return v
}
