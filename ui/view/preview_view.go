package view

import (
	"image"

	"github.com/soocke/rti-preview/domain/selection"
	"github.com/soocke/rti-preview/ui/images"
	"github.com/soocke/rti-preview/ui/model"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointerInput receives pointer events in image pixel coordinates.
type PointerInput interface {
	PointerDown(x, y int)
	PointerMove(x, y int)
	PointerUp()
}

// PreviewView shows rendered preview frames in a label and forwards pointer
// input on it.
type PreviewView interface {
	Show(img image.Image)
	SetCursor(c selection.Cursor)
}

type previewView struct {
	label  *LabelWidget
	photo  *Img // last Tk photo, deleted when replaced
	enc    images.Encoder
	cursor selection.Cursor
}

// NewPreviewView creates the preview label at row, showing placeholder, and
// binds button 1 press/drag/release plus hover motion to input.
func NewPreviewView(row int, placeholder image.Image, input PointerInput) PreviewView {
	v := &previewView{}
	v.photo = NewPhoto(Data(images.EncodePNG(placeholder)))
	// No border or padding so label coordinates equal image pixels.
	v.label = Label(Image(v.photo), Borderwidth(0), Padx(0), Pady(0), Highlightthickness(0), Anchor("nw"))
	Grid(v.label, Row(row), Column(0), Columnspan(4), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	if input != nil {
		Bind(v.label, "<ButtonPress-1>", Command(func(e *Event) { input.PointerDown(eventXY(e)) }))
		Bind(v.label, "<B1-Motion>", Command(func(e *Event) { input.PointerMove(eventXY(e)) }))
		Bind(v.label, "<Motion>", Command(func(e *Event) { input.PointerMove(eventXY(e)) }))
		Bind(v.label, "<ButtonRelease-1>", Command(func(*Event) { input.PointerUp() }))
	}
	return v
}

func eventXY(e *Event) (int, int) {
	if e == nil {
		return 0, 0
	}
	return e.X, e.Y
}

// Show replaces the displayed photo. The label resizes to the frame.
func (v *previewView) Show(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	data := v.enc.Encode(img)
	if len(data) == 0 {
		return
	}
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(data))
	v.label.Configure(Image(v.photo))
}

// SetCursor updates the pointer shape over the preview when it changes.
func (v *previewView) SetCursor(c selection.Cursor) {
	if v == nil || v.label == nil || c == v.cursor {
		return
	}
	v.cursor = c
	v.label.Configure(Cursor(model.CursorName(c)))
}
