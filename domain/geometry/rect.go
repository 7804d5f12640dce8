// Package geometry holds the integer rectangle used by the selection overlay
// together with its border hit-testing.
package geometry

import "image"

// Rect is an axis-aligned rectangle stored as origin plus extent. Width and
// Height may be negative while an edit is in progress; call Normalise to fold
// them back.
type Rect struct {
	Left, Top     int
	Width, Height int
}

// NewRect is shorthand for a Rect literal.
func NewRect(left, top, width, height int) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// FromImage converts an image.Rectangle.
func FromImage(r image.Rectangle) Rect {
	r = r.Canon()
	return Rect{Left: r.Min.X, Top: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right(), r.Bottom())
}

func (r Rect) Right() int  { return r.Left + r.Width }
func (r Rect) Bottom() int { return r.Top + r.Height }

// Centre returns the midpoint, truncated towards the origin.
func (r Rect) Centre() (int, int) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Normalise flips negative extents so that Width and Height are >= 0 while
// covering the same area.
func (r *Rect) Normalise() {
	if r.Width < 0 {
		r.Left += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Top += r.Height
		r.Height = -r.Height
	}
}

// Normalised returns a normalised copy of r.
func (r Rect) Normalised() Rect {
	r.Normalise()
	return r
}

// IncludesPoint reports whether (x, y) lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) IncludesPoint(x, y int) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Intersection returns the overlap of r and o. Disjoint rectangles yield a
// zero sized result, never a negative one.
func (r Rect) Intersection(o Rect) Rect {
	r.Normalise()
	o.Normalise()
	left := max(r.Left, o.Left)
	top := max(r.Top, o.Top)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	return Rect{Left: left, Top: top, Width: max(0, right-left), Height: max(0, bottom-top)}
}

// Corner returns the margin x margin hit box for direction. Corner boxes are
// centred on the corner point, edge boxes on the edge midpoint, so the box
// centre is the point the edge would follow while resizing.
func (r Rect) Corner(margin int, direction Edge) Rect {
	cx, cy := r.Centre()
	var px, py int
	switch direction {
	case EdgeNW:
		px, py = r.Left, r.Top
	case EdgeNE:
		px, py = r.Right(), r.Top
	case EdgeSW:
		px, py = r.Left, r.Bottom()
	case EdgeSE:
		px, py = r.Right(), r.Bottom()
	case EdgeN:
		px, py = cx, r.Top
	case EdgeS:
		px, py = cx, r.Bottom()
	case EdgeW:
		px, py = r.Left, cy
	case EdgeE:
		px, py = r.Right(), cy
	default:
		return Rect{}
	}
	half := margin / 2
	return Rect{Left: px - half, Top: py - half, Width: margin, Height: margin}
}

// zone is the full hit area for direction: the corner box for corners, and a
// margin wide band along the whole side for edges.
func (r Rect) zone(margin int, direction Edge) Rect {
	half := margin / 2
	switch direction {
	case EdgeN:
		return Rect{Left: r.Left, Top: r.Top - half, Width: r.Width, Height: margin}
	case EdgeS:
		return Rect{Left: r.Left, Top: r.Bottom() - half, Width: r.Width, Height: margin}
	case EdgeW:
		return Rect{Left: r.Left - half, Top: r.Top, Width: margin, Height: r.Height}
	case EdgeE:
		return Rect{Left: r.Right() - half, Top: r.Top, Width: margin, Height: r.Height}
	default:
		return r.Corner(margin, direction)
	}
}

// WhichCorner returns the border zone containing (x, y), or EdgeNone when the
// point lies in none of the margin wide zones straddling the border.
func (r Rect) WhichCorner(margin, x, y int) Edge {
	if margin <= 0 {
		return EdgeNone
	}
	r.Normalise()
	for _, e := range hitOrder {
		if r.zone(margin, e).IncludesPoint(x, y) {
			return e
		}
	}
	return EdgeNone
}

// Scale maps r from a w x h pixel space into a fixed 0..scale space per axis,
// truncating. Zero dimensions yield the zero Rect.
func (r Rect) Scale(w, h, scale int) Rect {
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	return Rect{
		Left:   scale * r.Left / w,
		Top:    scale * r.Top / h,
		Width:  scale * r.Width / w,
		Height: scale * r.Height / h,
	}
}

// Clip clamps v to [lower, upper]. The lower bound wins if the range is
// inverted.
func Clip(lower, v, upper int) int {
	return max(min(v, upper), lower)
}
