package app

import (
	"fmt"
	"log/slog"

	"github.com/soocke/rti-preview/capture"
	"github.com/soocke/rti-preview/config"
	"github.com/soocke/rti-preview/domain/preview"
	"github.com/soocke/rti-preview/ui/model"
	"github.com/soocke/rti-preview/ui/presenter"
	"github.com/soocke/rti-preview/ui/theme"
	"github.com/soocke/rti-preview/ui/view"
)

// AppContainer assembles models, the preview surface, presenters and the root view.
type AppContainer struct {
	Config    *config.Config
	Logger    *slog.Logger
	Live      *model.LiveModel
	Session   *model.SessionModel
	Selection *model.SelectionModel
	Camera    preview.Camera
	Scheduler *view.TkScheduler
	Surface   *preview.Surface
	RootView  *view.RootView

	// Presenters
	LivePresenter    *presenter.LivePresenter
	StatusPresenter  *presenter.StatusPresenter
	SessionPresenter *presenter.SessionPresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs all components. No widgets are created until
// RootView.Build.
func BuildContainer(cfg *config.Config, logger *slog.Logger) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger}
	cam, err := capture.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("app: camera: %w", err)
	}
	c.Camera = cam
	c.Live = &model.LiveModel{}
	c.Session = model.NewSessionModel()
	c.Selection = model.NewSelectionModel()
	c.Scheduler = view.NewTkScheduler()
	c.Surface = preview.NewSurface(cam, preview.JPEGDecoder{}, c.Scheduler, cfg.PreviewOptions(theme.OverlayOuter, theme.OverlayInner), logger)
	c.RootView = view.NewRootView(logger)

	c.LivePresenter = presenter.NewLivePresenter(c.Live, c.Surface, c.RootView, logger)
	c.StatusPresenter = presenter.NewStatusPresenter(c.Surface, c.Selection, c.Live, c.RootView)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Live, c.Surface, c.RootView)

	c.Surface.OnRedraw(c.repaint)
	c.Surface.OnCursor(c.RootView.SetCursor)
	c.Surface.OnFPS(c.StatusPresenter.OnFPS)
	c.Surface.Machine().AddListener(c.StatusPresenter.OnState)
	return c, nil
}

// repaint composites the overlay and hands the frame to the view. The view
// encodes synchronously so the buffer can go back to the pool right away.
func (c *AppContainer) repaint() {
	frame := c.Surface.Render()
	c.RootView.ShowFrame(frame)
	preview.ReleaseRender(frame)
}
