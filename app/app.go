package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/rti-preview/config"
	"github.com/soocke/rti-preview/debug"
	"github.com/soocke/rti-preview/ui/presenter"
	"github.com/soocke/rti-preview/ui/theme"
	"github.com/soocke/rti-preview/ui/view"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// statusTick paces the status bar refresh; frames are paced by the surface.
const statusTick = 250 * time.Millisecond

// Application owns the container and the main window lifecycle.
type Application struct {
	c         *AppContainer
	logger    *slog.Logger
	afterID   string
	stopDebug []func()
}

// NewApp builds the container and configures the main window.
func NewApp(title string, cfg *config.Config, logger *slog.Logger) (*Application, error) {
	c, err := BuildContainer(cfg, logger)
	if err != nil {
		return nil, err
	}
	a := &Application{c: c, logger: logger}
	App.WmTitle(title)
	w := cfg.PreviewWidth + 40
	h := cfg.PreviewHeight + 140
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", w, h))
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	return a, nil
}

// Start builds the widgets, optionally goes live and runs the Tk event loop.
// It returns when the window is closed.
func (a *Application) Start() {
	c := a.c
	theme.Apply(c.Config.DarkMode)
	c.RootView.Build(c.Surface.Image(), c.Surface, view.Handlers{
		ToggleLive:     a.toggleLive,
		ClearSelection: c.Surface.HideSelection,
		Exit:           a.exitHandler,
	})
	c.Loop = presenter.NewLoop(c.SessionPresenter, c.StatusPresenter, a.scheduleUpdate)
	c.repaint()

	if c.Config.Debug {
		a.startDebug()
	}
	if c.Config.StartLive {
		c.LivePresenter.Enable()
	}
	if a.logger != nil {
		a.logger.Info("preview started", "camera", c.Config.Camera, "live", c.Live.Live())
	}
	a.scheduleUpdate()
	App.Wait()
}

func (a *Application) toggleLive() {
	a.c.LivePresenter.Toggle()
	if !a.c.Live.Live() {
		a.c.StatusPresenter.ResetFPS()
	}
}

func (a *Application) scheduleUpdate() {
	// TclAfter keeps the loop on Tk's event loop thread.
	a.afterID = TclAfter(statusTick, a.c.Loop.Tick)
}

func (a *Application) startDebug() {
	live := a.c.Live
	a.stopDebug = append(a.stopDebug,
		debug.StartRuntimeLogger(5*time.Second, a.logger, func() []slog.Attr {
			return []slog.Attr{slog.Bool("live", live.Live()), slog.Int("fps", live.FPS())}
		}),
		debug.StartMemLogger(5*time.Second, a.logger),
	)
}

func (a *Application) exitHandler() {
	a.c.LivePresenter.Disable()
	a.c.Scheduler.CancelAll()
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	for _, stop := range a.stopDebug {
		stop()
	}
	if a.logger != nil {
		st := a.c.Surface.Stats()
		a.logger.Info("preview exiting", "frames", st.Frames, "camera_errors", st.CameraErrors, "decode_errors", st.DecodeErrors)
	}
	Destroy(App)
}
