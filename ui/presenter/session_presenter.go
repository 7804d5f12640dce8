package presenter

import (
	"time"

	"github.com/soocke/rti-preview/domain/preview"
	"github.com/soocke/rti-preview/ui/model"
)

// LiveSource reports whether live preview is on.
type LiveSource interface{ Live() bool }

// FrameStats exposes the surface counters.
type FrameStats interface{ Stats() preview.Stats }

// SessionView displays live session durations and frame count.
type SessionView interface {
	SetSession(v model.SessionValues)
}

// SessionPresenter pushes live session durations from the model to the view.
type SessionPresenter struct {
	sess  *model.SessionModel
	live  LiveSource
	stats FrameStats
	view  SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, live LiveSource, stats FrameStats, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, live: live, stats: stats, view: view}
}

// Tick advances the session model and pushes values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.live == nil || p.view == nil {
		return
	}
	var frames uint64
	if p.stats != nil {
		frames = p.stats.Stats().Frames
	}
	p.sess.OnTick(p.live.Live(), frames, now)
	p.view.SetSession(p.sess.Values())
}
