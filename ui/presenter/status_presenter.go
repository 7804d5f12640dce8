package presenter

import (
	"fmt"
	"time"

	"github.com/soocke/rti-preview/domain/geometry"
	"github.com/soocke/rti-preview/domain/selection"
	"github.com/soocke/rti-preview/ui/model"
)

// SelectionSource provides the normalized selection.
type SelectionSource interface {
	Selection() (geometry.Rect, bool)
}

// StatusView sets the status bar labels.
type StatusView interface {
	SetFPS(text string)
	SetSelection(text string)
	SetState(text string)
}

// FPSModel stores the last frame rate report.
type FPSModel interface{ SetFPS(int) }

// StatusPresenter receives fps reports and selection state changes, and
// updates the status bar on each tick.
type StatusPresenter struct {
	src       SelectionSource
	sel       *model.SelectionModel
	fpsModel  FPSModel
	view      StatusView
	fps       []int
	states    []selection.State
	lastState selection.State
	primed    bool
}

func NewStatusPresenter(src SelectionSource, sel *model.SelectionModel, fps FPSModel, view StatusView) *StatusPresenter {
	return &StatusPresenter{src: src, sel: sel, fpsModel: fps, view: view}
}

// OnFPS queues a frame rate report from the surface.
func (p *StatusPresenter) OnFPS(fps int) {
	if p == nil {
		return
	}
	p.fps = append(p.fps, fps)
}

// OnState queues a selection state transition; use as a selection.StateListener.
func (p *StatusPresenter) OnState(_, next selection.State) {
	if p == nil {
		return
	}
	p.states = append(p.states, next)
}

// Tick flushes queued reports and refreshes the selection readout when it
// changed.
func (p *StatusPresenter) Tick(time.Time) {
	if p == nil || p.view == nil {
		return
	}
	first := !p.primed
	if first {
		p.primed = true
		p.view.SetFPS(FormatFPS(0))
		p.view.SetState(FormatState(selection.StateIdle))
	}
	if n := len(p.fps); n > 0 {
		last := p.fps[n-1]
		p.fps = p.fps[:0]
		if p.fpsModel != nil {
			p.fpsModel.SetFPS(last)
		}
		p.view.SetFPS(FormatFPS(last))
	}
	if n := len(p.states); n > 0 {
		last := p.states[n-1]
		p.states = p.states[:0]
		if last != p.lastState {
			p.lastState = last
			p.view.SetState(FormatState(last))
		}
	}
	if p.src == nil || p.sel == nil {
		return
	}
	r, ok := p.src.Selection()
	if p.sel.Set(r, ok) || first {
		p.view.SetSelection(FormatSelection(r, ok))
	}
}

// ResetFPS shows a zero frame rate, used when live preview stops.
func (p *StatusPresenter) ResetFPS() {
	if p == nil || p.view == nil {
		return
	}
	p.fps = p.fps[:0]
	p.view.SetFPS(FormatFPS(0))
}

func FormatFPS(fps int) string { return fmt.Sprintf("FPS: %d", fps) }

func FormatState(s selection.State) string { return "Selection: " + s.String() }

// FormatSelection renders a normalized selection as "x,y wxh" in 0..1000 units.
func FormatSelection(r geometry.Rect, ok bool) string {
	if !ok {
		return "Region: <none>"
	}
	return fmt.Sprintf("Region: %d,%d %dx%d", r.Left, r.Top, r.Width, r.Height)
}
