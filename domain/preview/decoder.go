package preview

import (
	"bytes"
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

var errEmptyFrame = errors.New("preview: empty frame")

// JPEGDecoder decodes camera frames. EXIF orientation is applied so preview
// coordinates match what the user sees.
type JPEGDecoder struct{}

func (JPEGDecoder) Decode(buf []byte) (image.Image, error) {
	if len(buf) == 0 {
		return nil, errEmptyFrame
	}
	return imaging.Decode(bytes.NewReader(buf), imaging.AutoOrientation(true))
}
