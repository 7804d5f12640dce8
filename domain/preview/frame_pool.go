package preview

import (
	"image"
	"sync"
)

// Composited frames are rebuilt on every redraw at the camera's preview size,
// so their backing slices are pooled. Render draws into a pooled buffer and
// ReleaseRender hands it back once the view has encoded it.

var framePool sync.Pool // stores *image.RGBA

// acquireFrame returns a reusable RGBA image sized to rect with Stride
// width*4. Pixel contents are unspecified.
func acquireFrame(rect image.Rectangle) *image.RGBA {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := framePool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		return &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	}
	img.Stride = w * 4
	img.Rect = rect
	img.Pix = img.Pix[:needed]
	return img
}

// ReleaseRender returns a frame obtained from Render to the pool. The caller
// must not touch img afterwards.
func ReleaseRender(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	framePool.Put(img)
}
