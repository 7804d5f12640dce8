package geometry

// Edge identifies one of the eight border zones of a rectangle, or none.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeN
	EdgeS
	EdgeE
	EdgeW
	EdgeNE
	EdgeNW
	EdgeSE
	EdgeSW
)

func (e Edge) String() string {
	switch e {
	case EdgeNone:
		return "none"
	case EdgeN:
		return "n"
	case EdgeS:
		return "s"
	case EdgeE:
		return "e"
	case EdgeW:
		return "w"
	case EdgeNE:
		return "ne"
	case EdgeNW:
		return "nw"
	case EdgeSE:
		return "se"
	case EdgeSW:
		return "sw"
	default:
		return "unknown"
	}
}

// HasNorth reports whether e moves the top edge.
func (e Edge) HasNorth() bool { return e == EdgeN || e == EdgeNE || e == EdgeNW }

// HasSouth reports whether e moves the bottom edge.
func (e Edge) HasSouth() bool { return e == EdgeS || e == EdgeSE || e == EdgeSW }

// HasEast reports whether e moves the right edge.
func (e Edge) HasEast() bool { return e == EdgeE || e == EdgeNE || e == EdgeSE }

// HasWest reports whether e moves the left edge.
func (e Edge) HasWest() bool { return e == EdgeW || e == EdgeNW || e == EdgeSW }

// hitOrder is the order WhichCorner tests zones in. Corners come first so that
// a point inside a corner box never resolves to the adjacent edge.
var hitOrder = [...]Edge{EdgeNW, EdgeNE, EdgeSW, EdgeSE, EdgeN, EdgeS, EdgeW, EdgeE}
