// Package capture provides preview cameras: screen grabs encoded as JPEG and
// a directory of JPEG files played back in a loop.
package capture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/vova616/screenshot"

	"github.com/soocke/rti-preview/config"
	"github.com/soocke/rti-preview/domain/preview"
)

var (
	ErrEmptyRegion   = errors.New("capture: empty region")
	ErrUnknownCamera = errors.New("capture: unknown camera")
	ErrUnsupported   = errors.New("capture: not supported on this platform")
)

// Grabber captures the given screen region. An empty region means the whole
// screen.
type Grabber func(region image.Rectangle) (*image.RGBA, error)

// Grab captures through github.com/vova616/screenshot.
func Grab(region image.Rectangle) (*image.RGBA, error) {
	if region.Empty() {
		return screenshot.CaptureScreen()
	}
	screen, err := screenshot.ScreenRect()
	if err != nil {
		return nil, err
	}
	r := region.Intersect(screen)
	if r.Empty() {
		return nil, fmt.Errorf("%w: region=%v screen=%v", ErrEmptyRegion, region, screen)
	}
	return screenshot.CaptureRect(r)
}

// ScreenCamera serves screen captures as JPEG previews, standing in for a
// tethered camera.
type ScreenCamera struct {
	grab    Grabber
	region  image.Rectangle
	quality int
	maxW    int
	maxH    int
}

// NewScreenCamera wraps grab. Frames larger than maxW x maxH are scaled down
// before encoding; zero disables scaling.
func NewScreenCamera(grab Grabber, region image.Rectangle, quality, maxW, maxH int) *ScreenCamera {
	if grab == nil {
		grab = Grab
	}
	if quality <= 0 || quality > 100 {
		quality = 80
	}
	return &ScreenCamera{grab: grab, region: region, quality: quality, maxW: maxW, maxH: maxH}
}

func (c *ScreenCamera) Preview() ([]byte, error) {
	img, err := c.grab(c.region)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, nil
	}
	var src image.Image = img
	if b := img.Bounds(); c.maxW > 0 && c.maxH > 0 && (b.Dx() > c.maxW || b.Dy() > c.maxH) {
		src = imaging.Fit(img, c.maxW, c.maxH, imaging.Box)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, src, imaging.JPEG, imaging.JPEGQuality(c.quality)); err != nil {
		return nil, fmt.Errorf("capture: encode preview: %w", err)
	}
	return buf.Bytes(), nil
}

// New builds the camera named by cfg.Camera.
func New(cfg *config.Config, logger *slog.Logger) (preview.Camera, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	region := image.Rect(cfg.RegionX, cfg.RegionY, cfg.RegionX+cfg.RegionW, cfg.RegionY+cfg.RegionH)
	switch cfg.Camera {
	case config.CameraScreen:
		return NewScreenCamera(Grab, region, cfg.JPEGQuality, cfg.PreviewWidth, cfg.PreviewHeight), nil
	case config.CameraGDI:
		return NewScreenCamera(GrabGDI, region, cfg.JPEGQuality, cfg.PreviewWidth, cfg.PreviewHeight), nil
	case config.CameraDir:
		return NewDirCamera(cfg.CameraDir, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCamera, cfg.Camera)
	}
}
