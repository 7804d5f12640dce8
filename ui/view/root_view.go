package view

import (
	"image"
	"log/slog"

	"github.com/soocke/rti-preview/domain/selection"
	"github.com/soocke/rti-preview/ui/model"
	"github.com/soocke/rti-preview/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level layout and wires UI callbacks.
// It owns the subviews and implements the presenter view contracts.
type RootView struct {
	logger *slog.Logger

	Preview PreviewView
	Status  StatusBar

	LiveButton  *TButtonWidget
	ClearButton *TButtonWidget
}

// Handlers are invoked on user actions.
type Handlers struct {
	ToggleLive     func()
	ClearSelection func()
	Exit           func()
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout: controls on row 0, the preview on row 1 and
// the status bar on row 2.
func (rv *RootView) Build(placeholder image.Image, input PointerInput, h Handlers) {
	if rv == nil {
		return
	}
	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(0), Columnspan(4), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	rv.LiveButton = TButton(Txt(liveLabel(false)), Style(theme.StyleLiveButton), Command(orNop(h.ToggleLive)))
	Grid(rv.LiveButton, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.ClearButton = TButton(Txt("Clear selection"), Command(orNop(h.ClearSelection)))
	Grid(rv.ClearButton, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := TButton(Txt("Exit"), Style(theme.StyleDangerButton), Command(orNop(h.Exit)))
	Grid(exitBtn, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	rv.Preview = NewPreviewView(1, placeholder, input)
	rv.Status = NewStatusBar(2)
}

func orNop(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return fn
}

func liveLabel(live bool) string {
	if live {
		return "Stop live"
	}
	return "Start live"
}

// --- LivePresenter view contract ---

// SetLiveButton reflects the live state on the toggle button.
func (rv *RootView) SetLiveButton(live bool) {
	if rv != nil && rv.LiveButton != nil {
		rv.LiveButton.Configure(Txt(liveLabel(live)))
	}
}

func (rv *RootView) ShowError(msg string) {
	if rv != nil && rv.Status != nil {
		rv.Status.ShowError(msg)
	}
	if msg != "" && rv != nil && rv.logger != nil {
		rv.logger.Debug("status error shown", "error", msg)
	}
}

// --- StatusPresenter / SessionPresenter view contracts ---

func (rv *RootView) SetFPS(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetFPS(text)
	}
}

func (rv *RootView) SetSelection(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetSelection(text)
	}
}

func (rv *RootView) SetState(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetState(text)
	}
}

func (rv *RootView) SetSession(v model.SessionValues) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetSession(v)
	}
}

// --- surface callbacks ---

// ShowFrame proxies to the preview view.
func (rv *RootView) ShowFrame(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Show(img)
	}
}

// SetCursor proxies to the preview view.
func (rv *RootView) SetCursor(c selection.Cursor) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.SetCursor(c)
	}
}
