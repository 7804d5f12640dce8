package preview

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/soocke/rti-preview/domain/geometry"
)

// Render composites the current frame and, when the selection is visible,
// its double outline: an outer pass in OuterColor with margin SelectWidth and
// an inner pass in InnerColor with margin SelectWidth-1. The result comes from
// a pool; hand it back with ReleaseRender.
func (s *Surface) Render() *image.RGBA {
	b := s.raster.Bounds()
	dst := acquireFrame(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), s.raster, b.Min, draw.Src)
	if r, ok := s.machine.Selection(); ok {
		drawBorder(dst, r, s.opts.SelectWidth, s.opts.OuterColor)
		if inner := s.opts.SelectWidth - 1; inner > 0 {
			drawBorder(dst, r, inner, s.opts.InnerColor)
		}
	}
	return dst
}

// drawBorder fills four bars of thickness 2*margin centred on the edges of r.
// The side bars stop short of the top and bottom bars so nothing is painted
// twice.
func drawBorder(dst draw.Image, r geometry.Rect, margin int, c color.Color) {
	src := image.NewUniform(c)
	side := max(0, r.Height-margin*2)
	bars := [...]geometry.Rect{
		geometry.NewRect(r.Left-margin, r.Top-margin, r.Width+margin*2, margin*2),
		geometry.NewRect(r.Right()-margin, r.Top+margin, margin*2, side),
		geometry.NewRect(r.Left-margin, r.Bottom()-margin, r.Width+margin*2, margin*2),
		geometry.NewRect(r.Left-margin, r.Top+margin, margin*2, side),
	}
	for _, bar := range bars {
		rect := bar.Image().Intersect(dst.Bounds())
		if rect.Empty() {
			continue
		}
		draw.Draw(dst, rect, src, image.Point{}, draw.Src)
	}
}
