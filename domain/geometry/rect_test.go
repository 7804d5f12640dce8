package geometry

import (
	"image"
	"testing"
)

func TestRect_NormaliseFlipsNegativeExtents(t *testing.T) {
	r := NewRect(50, 40, -20, -30)
	r.Normalise()
	if r != NewRect(30, 10, 20, 30) {
		t.Fatalf("unexpected normalised rect %+v", r)
	}
	again := r.Normalised()
	if again != r {
		t.Fatalf("normalise not idempotent: %+v -> %+v", r, again)
	}
}

func TestRect_NormaliseNonNegativeGrid(t *testing.T) {
	for w := -5; w <= 5; w++ {
		for h := -5; h <= 5; h++ {
			r := NewRect(3, 4, w, h).Normalised()
			if r.Width < 0 || r.Height < 0 {
				t.Fatalf("negative extent after normalise: %+v", r)
			}
			if r.Normalised() != r {
				t.Fatalf("normalise not idempotent for w=%d h=%d", w, h)
			}
		}
	}
}

func TestRect_Accessors(t *testing.T) {
	r := NewRect(10, 20, 31, 41)
	if r.Right() != 41 || r.Bottom() != 61 {
		t.Fatalf("right/bottom wrong: %d,%d", r.Right(), r.Bottom())
	}
	if cx, cy := r.Centre(); cx != 25 || cy != 40 {
		t.Fatalf("centre wrong: %d,%d", cx, cy)
	}
	if got := FromImage(r.Image()); got != r {
		t.Fatalf("image round trip: %+v", got)
	}
	if FromImage(image.Rect(5, 5, 1, 1)) != NewRect(1, 1, 4, 4) {
		t.Fatalf("FromImage should canonicalise")
	}
}

func TestRect_IncludesPointHalfOpen(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !r.IncludesPoint(0, 0) || !r.IncludesPoint(9, 9) {
		t.Fatalf("expected inner points included")
	}
	if r.IncludesPoint(10, 5) || r.IncludesPoint(5, 10) || r.IncludesPoint(-1, 0) {
		t.Fatalf("expected right/bottom edges excluded")
	}
}

func TestRect_Intersection(t *testing.T) {
	a := NewRect(0, 0, 100, 100)
	cases := []struct {
		name string
		b    Rect
		want Rect
	}{
		{"inside", NewRect(10, 10, 20, 20), NewRect(10, 10, 20, 20)},
		{"overhang", NewRect(-10, 90, 50, 50), NewRect(0, 90, 40, 10)},
		{"disjoint", NewRect(200, 200, 5, 5), NewRect(200, 200, 0, 0)},
		{"negative extent", NewRect(50, 50, -60, -60), NewRect(0, 0, 50, 50)},
	}
	for _, c := range cases {
		got := a.Intersection(c.b)
		if got != c.want {
			t.Fatalf("%s: got %+v want %+v", c.name, got, c.want)
		}
		if got.Width < 0 || got.Height < 0 {
			t.Fatalf("%s: negative intersection %+v", c.name, got)
		}
	}
}

func TestRect_WhichCornerZones(t *testing.T) {
	r := NewRect(10, 10, 100, 100)
	cases := []struct {
		x, y int
		want Edge
	}{
		{10, 10, EdgeNW},
		{110, 10, EdgeNE},
		{10, 110, EdgeSW},
		{110, 110, EdgeSE},
		{60, 10, EdgeN},
		{60, 110, EdgeS},
		{10, 60, EdgeW},
		{110, 60, EdgeE},
		{60, 60, EdgeNone},
		{300, 300, EdgeNone},
		{16, 16, EdgeNW},
		{18, 10, EdgeN},
	}
	for _, c := range cases {
		if got := r.WhichCorner(15, c.x, c.y); got != c.want {
			t.Fatalf("WhichCorner(%d,%d)=%v want %v", c.x, c.y, got, c.want)
		}
	}
	if r.WhichCorner(0, 10, 10) != EdgeNone {
		t.Fatalf("zero margin should never hit")
	}
}

// Every corner box point must resolve to the corner even though the adjacent
// edge bands overlap it.
func TestRect_WhichCornerCornersTakePrecedence(t *testing.T) {
	r := NewRect(20, 30, 90, 70)
	const m = 15
	for _, corner := range []Edge{EdgeNW, EdgeNE, EdgeSW, EdgeSE} {
		box := r.Corner(m, corner)
		for x := box.Left; x < box.Right(); x++ {
			for y := box.Top; y < box.Bottom(); y++ {
				if got := r.WhichCorner(m, x, y); got != corner {
					t.Fatalf("point (%d,%d) in %v box resolved to %v", x, y, corner, got)
				}
			}
		}
	}
}

// Each point resolves to at most one zone and, when it resolves, lies in that
// zone's hit area.
func TestRect_WhichCornerPartitions(t *testing.T) {
	r := NewRect(20, 30, 90, 70)
	const m = 15
	for x := 0; x < 130; x++ {
		for y := 0; y < 120; y++ {
			e := r.WhichCorner(m, x, y)
			if e == EdgeNone {
				continue
			}
			if !r.zone(m, e).IncludesPoint(x, y) {
				t.Fatalf("(%d,%d) resolved to %v outside its zone", x, y, e)
			}
		}
	}
}

func TestRect_CornerCentreIsAnchor(t *testing.T) {
	r := NewRect(10, 10, 100, 100)
	anchors := map[Edge][2]int{
		EdgeNW: {10, 10},
		EdgeNE: {110, 10},
		EdgeSW: {10, 110},
		EdgeSE: {110, 110},
		EdgeN:  {60, 10},
		EdgeS:  {60, 110},
		EdgeW:  {10, 60},
		EdgeE:  {110, 60},
	}
	for e, want := range anchors {
		box := r.Corner(15, e)
		if box.Width != 15 || box.Height != 15 {
			t.Fatalf("%v box size %dx%d", e, box.Width, box.Height)
		}
		if cx, cy := box.Centre(); cx != want[0] || cy != want[1] {
			t.Fatalf("%v anchor (%d,%d) want %v", e, cx, cy, want)
		}
	}
	if r.Corner(15, EdgeNone) != (Rect{}) {
		t.Fatalf("EdgeNone should have no box")
	}
}

func TestRect_ScaleTruncates(t *testing.T) {
	got := NewRect(10, 10, 100, 100).Scale(640, 426, 1000)
	if got != NewRect(15, 23, 156, 234) {
		t.Fatalf("unexpected scaled rect %+v", got)
	}
	if NewRect(1, 1, 1, 1).Scale(0, 10, 1000) != (Rect{}) {
		t.Fatalf("zero width should yield zero rect")
	}
}

func TestClip(t *testing.T) {
	if Clip(0, -5, 10) != 0 || Clip(0, 15, 10) != 10 || Clip(0, 5, 10) != 5 {
		t.Fatalf("clip range wrong")
	}
	if Clip(0, 5, -20) != 0 {
		t.Fatalf("lower bound should win on inverted range")
	}
}

func TestEdge_Components(t *testing.T) {
	if !EdgeNE.HasNorth() || !EdgeNE.HasEast() || EdgeNE.HasSouth() || EdgeNE.HasWest() {
		t.Fatalf("NE components wrong")
	}
	if !EdgeSW.HasSouth() || !EdgeSW.HasWest() {
		t.Fatalf("SW components wrong")
	}
	if EdgeNone.HasNorth() || EdgeNone.HasSouth() || EdgeNone.HasEast() || EdgeNone.HasWest() {
		t.Fatalf("none should have no components")
	}
	if EdgeSE.String() != "se" || Edge(99).String() != "unknown" {
		t.Fatalf("string mapping wrong")
	}
}
