package preview

import (
	"image"
	"image/color"
	"time"
)

// Camera supplies compressed preview frames. A nil or empty buffer with a nil
// error means no frame is available this tick.
type Camera interface {
	Preview() ([]byte, error)
}

// CameraFunc adapts a function to Camera.
type CameraFunc func() ([]byte, error)

func (f CameraFunc) Preview() ([]byte, error) { return f() }

// Decoder turns a compressed frame into a raster image.
type Decoder interface {
	Decode(buf []byte) (image.Image, error)
}

// TimerID identifies a periodic callback registered with a Scheduler.
type TimerID uint64

// Scheduler runs callbacks periodically on the UI thread.
type Scheduler interface {
	Every(interval time.Duration, fn func()) TimerID
	Cancel(id TimerID)
}

// Options configures a Surface.
type Options struct {
	FrameTimeout time.Duration // between frame grabs
	FPSInterval  time.Duration // between fps reports
	SelectWidth  int           // outer border margin
	SelectCorner int           // side of the resize handle boxes
	Width        int           // placeholder image size
	Height       int
	OuterColor   color.Color
	InnerColor   color.Color
}

// DefaultOptions returns the standard preview settings: 50ms frames (about
// 20fps), a 2px border and 15px handles on a 640x426 placeholder.
func DefaultOptions() Options {
	return Options{
		FrameTimeout: 50 * time.Millisecond,
		FPSInterval:  time.Second,
		SelectWidth:  2,
		SelectCorner: 15,
		Width:        640,
		Height:       426,
		OuterColor:   color.White,
		InnerColor:   color.Black,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.FrameTimeout <= 0 {
		o.FrameTimeout = d.FrameTimeout
	}
	if o.FPSInterval <= 0 {
		o.FPSInterval = d.FPSInterval
	}
	if o.SelectWidth <= 0 {
		o.SelectWidth = d.SelectWidth
	}
	if o.SelectCorner <= 0 {
		o.SelectCorner = d.SelectCorner
	}
	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = d.Width, d.Height
	}
	if o.OuterColor == nil {
		o.OuterColor = d.OuterColor
	}
	if o.InnerColor == nil {
		o.InnerColor = d.InnerColor
	}
	return o
}

// Stats summarises frame acquisition for instrumentation.
type Stats struct {
	Frames       uint64 // decoded frames since construction
	Skipped      uint64 // ticks with no frame available
	DecodeErrors uint64
	CameraErrors uint64
	LastFPS      int // frames counted in the last report interval
	LastFrame    time.Time
}

// NormalizedScale is the fixed range Selection maps each axis onto.
const NormalizedScale = 1000
