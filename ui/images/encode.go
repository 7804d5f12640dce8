package images

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes an image to PNG bytes for a Tk photo. Errors are ignored and may
// return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = imaging.Encode(&buf, img, imaging.PNG)
	return buf.Bytes()
}

// Encoder reuses one buffer across frames. The returned slice is only valid
// until the next call to Encode.
type Encoder struct{ buf bytes.Buffer }

// Encode returns the PNG bytes of img, or nil on failure.
func (e *Encoder) Encode(img image.Image) []byte {
	if e == nil || img == nil {
		return nil
	}
	e.buf.Reset()
	if err := imaging.Encode(&e.buf, img, imaging.PNG); err != nil {
		return nil
	}
	return e.buf.Bytes()
}
