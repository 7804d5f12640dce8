package preview

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"testing"
	"time"

	"github.com/disintegration/imaging"

	"github.com/soocke/rti-preview/domain/geometry"
	"github.com/soocke/rti-preview/domain/selection"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type frameResult struct {
	buf []byte
	err error
}

// mockCamera replays queued results, then returns its last result forever.
type mockCamera struct {
	results []frameResult
	calls   int
}

func (c *mockCamera) Preview() ([]byte, error) {
	c.calls++
	if len(c.results) == 0 {
		return nil, nil
	}
	r := c.results[0]
	if len(c.results) > 1 {
		c.results = c.results[1:]
	}
	return r.buf, r.err
}

func jpegFrame(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func newTestSurface(cam Camera) (*Surface, *ManualScheduler) {
	sched := NewManualScheduler()
	return NewSurface(cam, nil, sched, DefaultOptions(), discardLogger), sched
}

func TestSurface_DefaultSelectionNormalized(t *testing.T) {
	s, _ := newTestSurface(&mockCamera{})
	if b := s.Bounds(); b.Dx() != 640 || b.Dy() != 426 {
		t.Fatalf("expected 640x426 placeholder, got %v", b)
	}
	got, ok := s.Selection()
	if !ok {
		t.Fatalf("expected visible default selection")
	}
	if got != geometry.NewRect(15, 23, 156, 234) {
		t.Fatalf("unexpected normalized selection %+v", got)
	}
}

func TestSurface_SelectionHiddenAndRange(t *testing.T) {
	s, _ := newTestSurface(&mockCamera{})
	s.HideSelection()
	if _, ok := s.Selection(); ok {
		t.Fatalf("hidden selection must report false")
	}
	s.SetPixelSelection(geometry.NewRect(-10, -10, 5000, 5000))
	r, ok := s.Selection()
	if !ok {
		t.Fatalf("expected selection after SetPixelSelection")
	}
	for _, v := range []int{r.Left, r.Top, r.Width, r.Height} {
		if v < 0 || v > NormalizedScale {
			t.Fatalf("component %d out of range in %+v", v, r)
		}
	}
	if r != geometry.NewRect(0, 0, 1000, 1000) {
		t.Fatalf("expected full-frame selection, got %+v", r)
	}
}

// Normalized values follow the current frame size even when the pixel box
// does not change.
func TestSurface_SelectionFollowsFrameSize(t *testing.T) {
	cam := &mockCamera{results: []frameResult{{buf: jpegFrame(t, 320, 213)}}}
	s, _ := newTestSurface(cam)
	if err := s.GrabFrame(); err != nil {
		t.Fatalf("grab: %v", err)
	}
	if b := s.Bounds(); b.Dx() != 320 || b.Dy() != 213 {
		t.Fatalf("expected decoded frame size, got %v", b)
	}
	got, _ := s.Selection()
	if got != geometry.NewRect(31, 46, 312, 469) {
		t.Fatalf("unexpected selection after resize %+v", got)
	}
}

// A smaller frame clips the pixel box so normalized values stay in range.
func TestSurface_SmallerFrameClipsSelection(t *testing.T) {
	cam := &mockCamera{results: []frameResult{{buf: jpegFrame(t, 320, 213)}}}
	s, _ := newTestSurface(cam)
	s.SetPixelSelection(geometry.NewRect(200, 100, 300, 200))
	if err := s.GrabFrame(); err != nil {
		t.Fatalf("grab: %v", err)
	}
	px, ok := s.PixelSelection()
	if !ok || px != geometry.NewRect(200, 100, 120, 113) {
		t.Fatalf("expected clipped pixel selection, got %+v visible=%v", px, ok)
	}
	got, ok := s.Selection()
	if !ok {
		t.Fatalf("expected selection to stay visible")
	}
	for _, v := range []int{got.Left, got.Top, got.Width, got.Height} {
		if v < 0 || v > NormalizedScale {
			t.Fatalf("component %d out of range in %+v", v, got)
		}
	}
	if got != geometry.NewRect(625, 469, 375, 530) {
		t.Fatalf("unexpected normalized selection %+v", got)
	}
}

func TestSurface_SelectionOutsideSmallerFrameHidden(t *testing.T) {
	cam := &mockCamera{results: []frameResult{{buf: jpegFrame(t, 320, 213)}}}
	s, _ := newTestSurface(cam)
	s.SetPixelSelection(geometry.NewRect(500, 300, 140, 126))
	if err := s.GrabFrame(); err != nil {
		t.Fatalf("grab: %v", err)
	}
	if r, ok := s.Selection(); ok {
		t.Fatalf("selection outside the frame should be hidden, got %+v", r)
	}
}

func TestSurface_PointerScenario(t *testing.T) {
	s, _ := newTestSurface(&mockCamera{})
	s.HideSelection()
	redraws := 0
	s.OnRedraw(func() { redraws++ })
	s.PointerDown(5, 5)
	if s.Machine().Current() != selection.StateResizing || s.Machine().Direction() != geometry.EdgeSE {
		t.Fatalf("expected resizing SE, got %v %v", s.Machine().Current(), s.Machine().Direction())
	}
	s.PointerMove(50, 80)
	s.PointerUp()
	r, ok := s.PixelSelection()
	if !ok || r != geometry.NewRect(5, 5, 45, 75) {
		t.Fatalf("unexpected pixel selection %+v visible=%v", r, ok)
	}
	if redraws != 2 {
		t.Fatalf("expected 2 redraws, got %d", redraws)
	}
}

func TestSurface_CursorHints(t *testing.T) {
	s, _ := newTestSurface(&mockCamera{})
	var got []selection.Cursor
	s.OnCursor(func(c selection.Cursor) { got = append(got, c) })
	s.PointerMove(110, 110)
	s.PointerMove(60, 60)
	if len(got) != 2 || got[0] != selection.CursorBottomRight || got[1] != selection.CursorMove {
		t.Fatalf("unexpected cursors %v", got)
	}
}

func TestSurface_SetLiveIdempotent(t *testing.T) {
	cam := &mockCamera{}
	s, sched := newTestSurface(cam)
	if err := s.SetLive(true); err != nil {
		t.Fatalf("set live: %v", err)
	}
	if err := s.SetLive(true); err != nil {
		t.Fatalf("second set live: %v", err)
	}
	if !s.IsLive() || sched.Active() != 2 || cam.calls != 1 {
		t.Fatalf("expected one eager grab and two timers: live=%v timers=%d calls=%d", s.IsLive(), sched.Active(), cam.calls)
	}
	if err := s.SetLive(false); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := s.SetLive(false); err != nil {
		t.Fatalf("second stop: %v", err)
	}
	if s.IsLive() || sched.Active() != 0 {
		t.Fatalf("expected timers cancelled: live=%v timers=%d", s.IsLive(), sched.Active())
	}
}

func TestSurface_EagerGrabErrorPropagates(t *testing.T) {
	errGone := errors.New("camera disconnected")
	cam := &mockCamera{results: []frameResult{{err: errGone}}}
	s, _ := newTestSurface(cam)
	err := s.SetLive(true)
	if !errors.Is(err, errGone) {
		t.Fatalf("expected eager error, got %v", err)
	}
	if s.Stats().CameraErrors != 1 {
		t.Fatalf("expected camera error counted, got %+v", s.Stats())
	}
}

func TestSurface_TickErrorsSwallowed(t *testing.T) {
	frame := jpegFrame(t, 64, 48)
	cam := &mockCamera{results: []frameResult{{buf: frame}, {err: errors.New("usb hiccup")}}}
	s, sched := newTestSurface(cam)
	if err := s.SetLive(true); err != nil {
		t.Fatalf("set live: %v", err)
	}
	sched.Advance(200 * time.Millisecond)
	if cam.calls != 5 {
		t.Fatalf("expected eager + 4 ticks, got %d calls", cam.calls)
	}
	if b := s.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("last good frame should stay, got %v", b)
	}
	if st := s.Stats(); st.Frames != 1 || st.CameraErrors != 4 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestSurface_MissingAndBadFramesIgnored(t *testing.T) {
	cam := &mockCamera{results: []frameResult{{buf: nil}, {buf: []byte{}}, {buf: []byte("not a jpeg")}}}
	s, _ := newTestSurface(cam)
	before := s.Image()
	for i := 0; i < 3; i++ {
		if err := s.GrabFrame(); err != nil {
			t.Fatalf("grab %d: %v", i, err)
		}
	}
	if s.Image() != before {
		t.Fatalf("image should be unchanged")
	}
	if st := s.Stats(); st.Skipped != 2 || st.DecodeErrors != 1 || st.Frames != 0 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestSurface_FPSReportResetsCounter(t *testing.T) {
	cam := &mockCamera{results: []frameResult{{buf: jpegFrame(t, 16, 16)}}}
	s, sched := newTestSurface(cam)
	var reports []int
	s.OnFPS(func(fps int) { reports = append(reports, fps) })
	if err := s.SetLive(true); err != nil {
		t.Fatalf("set live: %v", err)
	}
	sched.Advance(time.Second)
	sched.Advance(time.Second)
	if len(reports) != 2 {
		t.Fatalf("expected two fps reports, got %v", reports)
	}
	// The first interval also counts the eager grab made by SetLive.
	if reports[0] != 21 || reports[1] != 20 {
		t.Fatalf("unexpected fps reports %v", reports)
	}
	if s.Stats().LastFPS != 20 {
		t.Fatalf("expected stats to carry last fps, got %+v", s.Stats())
	}
}

func TestSurface_RenderDrawsDoubleBorder(t *testing.T) {
	s, _ := newTestSurface(&mockCamera{})
	img := s.Render()
	defer ReleaseRender(img)
	if img.Bounds() != image.Rect(0, 0, 640, 426) {
		t.Fatalf("unexpected render bounds %v", img.Bounds())
	}
	// Outer pass covers 8..12 around the left edge at x=10, inner pass 9..11.
	if c := img.RGBAAt(8, 50); c != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("expected outer white at x=8, got %v", c)
	}
	if c := img.RGBAAt(10, 50); c != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("expected inner black at x=10, got %v", c)
	}
	if c := img.RGBAAt(60, 12); c != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("interior should show the frame, got %v", c)
	}
	if c := img.RGBAAt(60, 11); c != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("expected outer white on top bar, got %v", c)
	}
}

func TestSurface_RenderWithoutSelection(t *testing.T) {
	s, _ := newTestSurface(&mockCamera{})
	s.HideSelection()
	img := s.Render()
	defer ReleaseRender(img)
	if c := img.RGBAAt(8, 50); c != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("no border expected when hidden, got %v", c)
	}
}
