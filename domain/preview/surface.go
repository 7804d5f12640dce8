// Package preview implements the live preview surface: it keeps the latest
// decoded camera frame, drives periodic acquisition and bridges pointer input
// to the selection state machine.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"time"

	"github.com/soocke/rti-preview/domain/geometry"
	"github.com/soocke/rti-preview/domain/selection"
)

// Surface owns the displayed frame and the selection. The camera is borrowed
// for the surface's lifetime. Like the machine it wraps, a Surface must only
// be used from the UI thread.
type Surface struct {
	camera  Camera
	decoder Decoder
	sched   Scheduler
	opts    Options
	logger  *slog.Logger

	raster  image.Image
	machine *selection.Machine

	live       bool
	frameTimer TimerID
	fpsTimer   TimerID
	frames     int // since the last fps report
	stats      Stats

	onRedraw     func()
	onCursor     func(selection.Cursor)
	fpsListeners []func(fps int)
}

// NewSurface builds a surface showing a blank placeholder. A nil decoder
// selects JPEGDecoder and a nil scheduler a ManualScheduler.
func NewSurface(camera Camera, decoder Decoder, sched Scheduler, opts Options, logger *slog.Logger) *Surface {
	opts = opts.withDefaults()
	if decoder == nil {
		decoder = JPEGDecoder{}
	}
	if sched == nil {
		sched = NewManualScheduler()
	}
	s := &Surface{camera: camera, decoder: decoder, sched: sched, opts: opts, logger: logger}
	s.raster = blank(opts.Width, opts.Height)
	selOpts := selection.DefaultOptions()
	selOpts.CornerMargin = opts.SelectCorner
	s.machine = selection.NewMachine(selOpts, selection.Callbacks{
		Redraw:    s.redraw,
		SetCursor: s.setCursor,
	}, logger)
	return s
}

func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return img
}

// OnRedraw registers the callback invoked whenever the surface needs to be
// repainted.
func (s *Surface) OnRedraw(fn func()) { s.onRedraw = fn }

// OnCursor registers the callback receiving pointer shape hints.
func (s *Surface) OnCursor(fn func(selection.Cursor)) { s.onCursor = fn }

// OnFPS registers a listener for the periodic frame rate report.
func (s *Surface) OnFPS(fn func(fps int)) { s.fpsListeners = append(s.fpsListeners, fn) }

// Machine exposes the selection state machine.
func (s *Surface) Machine() *selection.Machine { return s.machine }

// Image returns the current frame without the overlay.
func (s *Surface) Image() image.Image { return s.raster }

// Bounds returns the bounds of the current frame.
func (s *Surface) Bounds() image.Rectangle { return s.raster.Bounds() }

// Stats returns the acquisition counters.
func (s *Surface) Stats() Stats { return s.stats }

// IsLive reports whether periodic acquisition is running.
func (s *Surface) IsLive() bool { return s.live }

// SetLive starts or stops periodic acquisition. Starting registers the frame
// and fps timers and grabs one frame immediately; an error from that grab is
// returned so a dead camera is reported at once. Repeated calls with the same
// value do nothing.
func (s *Surface) SetLive(live bool) error {
	if live == s.live {
		return nil
	}
	if !live {
		s.sched.Cancel(s.frameTimer)
		s.sched.Cancel(s.fpsTimer)
		s.frameTimer, s.fpsTimer = 0, 0
		s.live = false
		if s.logger != nil {
			s.logger.Debug("live preview stopped")
		}
		return nil
	}
	if s.logger != nil {
		s.logger.Debug("live preview starting", "frame_timeout", s.opts.FrameTimeout, "fps_interval", s.opts.FPSInterval)
	}
	s.frameTimer = s.sched.Every(s.opts.FrameTimeout, s.frameTick)
	s.fpsTimer = s.sched.Every(s.opts.FPSInterval, s.fpsTick)
	s.live = true
	if err := s.GrabFrame(); err != nil {
		return fmt.Errorf("preview: eager grab: %w", err)
	}
	return nil
}

// GrabFrame fetches and decodes one frame. Missing frames and decode failures
// leave the current image in place and are not errors; camera errors are
// returned.
func (s *Surface) GrabFrame() error {
	if s.camera == nil {
		s.stats.Skipped++
		return nil
	}
	buf, err := s.camera.Preview()
	if err != nil {
		s.stats.CameraErrors++
		return err
	}
	if len(buf) == 0 {
		s.stats.Skipped++
		return nil
	}
	img, err := s.decoder.Decode(buf)
	if err != nil || img == nil {
		s.stats.DecodeErrors++
		if s.logger != nil {
			s.logger.Debug("frame decode failed", "error", err, "bytes", len(buf))
		}
		return nil
	}
	prev := s.raster.Bounds().Size()
	s.raster = img
	if img.Bounds().Size() != prev {
		s.clipSelection()
	}
	s.frames++
	s.stats.Frames++
	s.stats.LastFrame = time.Now()
	s.redraw()
	return nil
}

func (s *Surface) frameTick() {
	if err := s.GrabFrame(); err != nil && s.logger != nil {
		s.logger.Debug("frame grab failed", "error", err)
	}
}

func (s *Surface) fpsTick() {
	fps := s.frames
	s.frames = 0
	s.stats.LastFPS = fps
	if s.logger != nil {
		s.logger.Debug("fps", "fps", fps)
	}
	for _, l := range s.fpsListeners {
		l(fps)
	}
}

// Selection returns the visible selection mapped onto 0..1000 per axis of the
// current image, or false when no selection is shown.
func (s *Surface) Selection() (geometry.Rect, bool) {
	r, ok := s.machine.Selection()
	if !ok {
		return geometry.Rect{}, false
	}
	b := s.raster.Bounds()
	r = r.Normalised().Intersection(s.frameRect())
	return r.Scale(b.Dx(), b.Dy(), NormalizedScale), true
}

// PixelSelection returns the selection in image pixels.
func (s *Surface) PixelSelection() (geometry.Rect, bool) { return s.machine.Selection() }

// SetPixelSelection shows r, given in image pixels, clipped to the image.
func (s *Surface) SetPixelSelection(r geometry.Rect) {
	s.machine.SetRect(r.Normalised().Intersection(s.frameRect()))
}

// frameRect is the current frame in pixel coordinates, origin at 0,0.
func (s *Surface) frameRect() geometry.Rect {
	b := s.raster.Bounds()
	return geometry.FromImage(b.Sub(b.Min))
}

// clipSelection keeps the visible selection inside the current frame after a
// size change. A selection left without area is hidden.
func (s *Surface) clipSelection() {
	r, ok := s.machine.Selection()
	if !ok {
		return
	}
	clipped := r.Normalised().Intersection(s.frameRect())
	switch {
	case clipped == r:
	case clipped.Empty():
		s.machine.Hide()
	default:
		s.machine.SetRect(clipped)
	}
}

// HideSelection clears the selection.
func (s *Surface) HideSelection() { s.machine.Hide() }

// PointerDown forwards a button press in image pixels.
func (s *Surface) PointerDown(x, y int) { s.machine.PointerDown(x, y) }

// PointerMove forwards pointer motion, bounded by the current frame.
func (s *Surface) PointerMove(x, y int) {
	b := s.raster.Bounds()
	s.machine.PointerMove(x, y, b.Dx(), b.Dy())
}

// PointerUp forwards a button release.
func (s *Surface) PointerUp() { s.machine.PointerUp() }

func (s *Surface) redraw() {
	if s.onRedraw != nil {
		s.onRedraw()
	}
}

func (s *Surface) setCursor(c selection.Cursor) {
	if s.onCursor != nil {
		s.onCursor(c)
	}
}
