package presenter

import (
	"log/slog"
)

// LiveModel provides live state access.
type LiveModel interface {
	Live() bool
	SetLive(bool)
	SetError(string)
}

// LiveSurface narrows what the presenter needs from preview.Surface.
type LiveSurface interface {
	SetLive(bool) error
}

// LiveView updates UI elements affected by live toggling.
type LiveView interface {
	SetLiveButton(live bool)
	ShowError(msg string)
}

// LivePresenter owns presentation logic for toggling live preview.
type LivePresenter struct {
	model   LiveModel
	surface LiveSurface
	view    LiveView
	logger  *slog.Logger
}

func NewLivePresenter(model LiveModel, surface LiveSurface, view LiveView, logger *slog.Logger) *LivePresenter {
	return &LivePresenter{model: model, surface: surface, view: view, logger: logger}
}

func (p *LivePresenter) ready() bool {
	return p != nil && p.model != nil && p.surface != nil && p.view != nil
}

// Enable turns live preview on. If the first frame cannot be grabbed the
// error is shown and live preview is switched back off. Idempotent.
func (p *LivePresenter) Enable() {
	if !p.ready() || p.model.Live() {
		return
	}
	if err := p.surface.SetLive(true); err != nil {
		_ = p.surface.SetLive(false)
		p.model.SetError(err.Error())
		p.view.SetLiveButton(false)
		p.view.ShowError(err.Error())
		if p.logger != nil {
			p.logger.Warn("live preview failed to start", "error", err)
		}
		return
	}
	p.model.SetLive(true)
	p.view.ShowError("")
	p.view.SetLiveButton(true)
}

// Disable stops live preview, keeping the last frame on screen. Idempotent.
func (p *LivePresenter) Disable() {
	if !p.ready() || !p.model.Live() {
		return
	}
	_ = p.surface.SetLive(false)
	p.model.SetLive(false)
	p.view.SetLiveButton(false)
}

// Toggle flips live state delegating to Enable/Disable.
func (p *LivePresenter) Toggle() {
	if !p.ready() {
		return
	}
	if p.model.Live() {
		p.Disable()
		return
	}
	p.Enable()
}
