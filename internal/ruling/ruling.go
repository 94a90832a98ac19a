// Package ruling implements the line-segment pipeline that turns the raw
// straight segments a PDF content stream draws into the clean horizontal
// and vertical rulings a lattice table is built from: normalization,
// directional collapse of fragmented strokes, and sweep-line intersection
// finding.
//
// Inspired by tabula-java's Ruling class and SpreadsheetExtractionAlgorithm.
// Reference: tabula-java/technology/tabula/Ruling.java,
// tabula-java/technology/tabula/extractors/SpreadsheetExtractionAlgorithm.java
package ruling

import (
	"fmt"
	"math"
	"sort"

	"github.com/coregx/tabulon/internal/geom"
)

// Tunables, exposed as package constants rather than globals so callers can
// see exactly what the pipeline uses; none of them vary at runtime, and no
// configuration type in this repository overrides them.
const (
	// Perpendicular is the expansion amount used when nearly-intersecting
	// a horizontal against a vertical ruling.
	Perpendicular = 2.0
	// Colinear is the expansion amount used when nearly-intersecting two
	// same-orientation (or parallel) rulings, e.g. during collapse.
	Colinear = 1.0
	// NormalizeAngleTolDeg is the angle tolerance, in degrees, within which
	// a segment is snapped to strict horizontal or vertical.
	NormalizeAngleTolDeg = 1.0
	// MinLength is the minimum segment length considered a real ruling.
	MinLength = 0.01
)

// Orientation classifies a normalized Ruling.
type Orientation int

const (
	Oblique Orientation = iota
	Horizontal
	Vertical
)

// Ruling is a normalized, axis-aligned (or oblique) line segment.
//
// Call Normalize after construction from raw decoder output; direction-only
// accessors (Position, Start, End) panic on an oblique ruling, matching the
// core's "misuse raises" error philosophy.
type Ruling struct {
	X1, Y1, X2, Y2 float64
	Orient         Orientation
}

// New builds a Ruling from two endpoints and normalizes it immediately.
func New(x1, y1, x2, y2 float64) Ruling {
	r := Ruling{X1: x1, Y1: y1, X2: x2, Y2: y2}
	r.normalize()
	return r
}

// normalize snaps near-axis-aligned segments to strict horizontal or
// vertical and classifies orientation. A segment within
// NormalizeAngleTolDeg of 0/180 degrees becomes strictly horizontal
// (Y2 = Y1); within the tolerance of 90/270 becomes strictly vertical
// (X2 = X1); otherwise it is oblique.
//
// Idempotent: normalize(normalize(r)) == normalize(r), and afterward
// exactly one of {Horizontal, Vertical, Oblique} holds.
func (r *Ruling) normalize() {
	dx := r.X2 - r.X1
	dy := r.Y2 - r.Y1
	angle := math.Abs(math.Atan2(dy, dx) * 180 / math.Pi)

	horizDist := math.Min(angle, math.Abs(angle-180))
	vertDist := math.Abs(angle - 90)

	switch {
	case horizDist <= NormalizeAngleTolDeg:
		r.Y2 = r.Y1
		r.Orient = Horizontal
	case vertDist <= NormalizeAngleTolDeg:
		r.X2 = r.X1
		r.Orient = Vertical
	default:
		r.Orient = Oblique
	}
}

// Length is the Euclidean length of the segment.
func (r Ruling) Length() float64 {
	dx := r.X2 - r.X1
	dy := r.Y2 - r.Y1
	return math.Sqrt(dx*dx + dy*dy)
}

// IsHorizontal reports whether r normalized to strict horizontal with
// positive length.
func (r Ruling) IsHorizontal() bool {
	return r.Orient == Horizontal && r.Length() > 0
}

// IsVertical reports whether r normalized to strict vertical with
// positive length.
func (r Ruling) IsVertical() bool {
	return r.Orient == Vertical && r.Length() > 0
}

// Position is the fixed coordinate for a non-oblique ruling: x for
// vertical, y for horizontal. Panics if r is oblique — invoking a
// direction-only accessor on an oblique ruling is a programmer error.
func (r Ruling) Position() float64 {
	switch r.Orient {
	case Horizontal:
		return r.Y1
	case Vertical:
		return r.X1
	default:
		panic("ruling: Position called on oblique ruling")
	}
}

// Start is the minimum of the varying coordinate. Panics on oblique.
func (r Ruling) Start() float64 {
	switch r.Orient {
	case Horizontal:
		return math.Min(r.X1, r.X2)
	case Vertical:
		return math.Min(r.Y1, r.Y2)
	default:
		panic("ruling: Start called on oblique ruling")
	}
}

// End is the maximum of the varying coordinate. Panics on oblique.
func (r Ruling) End() float64 {
	switch r.Orient {
	case Horizontal:
		return math.Max(r.X1, r.X2)
	case Vertical:
		return math.Max(r.Y1, r.Y2)
	default:
		panic("ruling: End called on oblique ruling")
	}
}

// WithExtent returns a copy of r with Start/End replaced, preserving
// orientation and position. Used by collapse to extend a kept ruling.
func (r Ruling) WithExtent(start, end float64) Ruling {
	out := r
	switch r.Orient {
	case Horizontal:
		out.X1, out.X2 = start, end
		out.Y1, out.Y2 = r.Position(), r.Position()
	case Vertical:
		out.Y1, out.Y2 = start, end
		out.X1, out.X2 = r.Position(), r.Position()
	}
	return out
}

// Rectangle returns the (degenerate, zero-area along one axis) bounding
// rectangle of r in y-down page space.
func (r Ruling) Rectangle() geom.Rectangle {
	return geom.FromCorners(r.X1, r.Y1, r.X2, r.Y2)
}

// nearlyIntersects reports whether r and other intersect once each one's
// rectangle is inflated by expand on every side, so zero-thickness rulings
// have an area to overlap. Perpendicular pairs use
// Perpendicular; colinear or parallel pairs use Colinear.
func (r Ruling) nearlyIntersects(other Ruling, expand float64) bool {
	rr := r.Rectangle()
	or := other.Rectangle()
	inflated := geom.NewRectangle(rr.Top-expand, rr.Left-expand, rr.Width+2*expand, rr.Height+2*expand)
	otherInflated := geom.NewRectangle(or.Top-expand, or.Left-expand, or.Width+2*expand, or.Height+2*expand)
	return inflated.Intersects(otherInflated)
}

// clip implements Cohen–Sutherland clipping of r against box, returning
// the clipped ruling and true, or the zero value and false if r lies
// entirely outside box. Callers must have already removed fully-outside
// rulings before relying on the false branch for anything but a defensive
// check.
func (r Ruling) clip(box geom.Rectangle) (Ruling, bool) {
	x1, y1, x2, y2 := r.X1, r.Y1, r.X2, r.Y2
	const (
		inside = 0
		left   = 1
		right  = 2
		bottom = 4
		top    = 8
	)
	code := func(x, y float64) int {
		c := inside
		if x < box.Left {
			c |= left
		} else if x > box.Right() {
			c |= right
		}
		if y < box.Top {
			c |= top
		} else if y > box.Bottom() {
			c |= bottom
		}
		return c
	}

	c1, c2 := code(x1, y1), code(x2, y2)
	for {
		if c1 == inside && c2 == inside {
			return New(x1, y1, x2, y2), true
		}
		if c1&c2 != 0 {
			return Ruling{}, false
		}
		outside := c1
		if outside == inside {
			outside = c2
		}
		var x, y float64
		switch {
		case outside&top != 0:
			x = x1 + (x2-x1)*(box.Top-y1)/(y2-y1)
			y = box.Top
		case outside&bottom != 0:
			x = x1 + (x2-x1)*(box.Bottom()-y1)/(y2-y1)
			y = box.Bottom()
		case outside&right != 0:
			y = y1 + (y2-y1)*(box.Right()-x1)/(x2-x1)
			x = box.Right()
		case outside&left != 0:
			y = y1 + (y2-y1)*(box.Left-x1)/(x2-x1)
			x = box.Left
		}
		if outside == c1 {
			x1, y1 = x, y
			c1 = code(x1, y1)
		} else {
			x2, y2 = x, y
			c2 = code(x2, y2)
		}
	}
}

// Clip returns the portion of r inside box. ok is false if r lies
// entirely outside box.
func (r Ruling) Clip(box geom.Rectangle) (Ruling, bool) {
	return r.clip(box)
}

func (r Ruling) String() string {
	o := "oblique"
	if r.Orient == Horizontal {
		o = "H"
	} else if r.Orient == Vertical {
		o = "V"
	}
	return fmt.Sprintf("Ruling{%s, (%.2f,%.2f)-(%.2f,%.2f)}", o, r.X1, r.Y1, r.X2, r.Y2)
}

// Collapse merges fragmented same-orientation rulings into clean lines,
// matching tabula-java's collapseOrientedRulings: fixes the persistent
// case of a PDF drawing a single logical rule as many short collinear
// strokes.
//
// Input must be all-horizontal or all-vertical; mixing orientations is a
// caller error (oblique or mismatched-orientation rulings are dropped
// silently, matching the "degenerate ruling" fail-soft rule in §7).
// Output is sorted by (position, start) ascending, and is itself a fixed
// point of Collapse (collapse(collapse(L)) == collapse(L)).
func Collapse(lines []Ruling) []Ruling {
	var work []Ruling
	for _, l := range lines {
		if l.Orient == Oblique || l.Length() <= 0 {
			continue
		}
		work = append(work, l)
	}
	if len(work) == 0 {
		return nil
	}

	orient := work[0].Orient
	filtered := work[:0]
	for _, l := range work {
		if l.Orient == orient {
			filtered = append(filtered, l)
		}
	}
	work = filtered

	sort.SliceStable(work, func(i, j int) bool {
		if !geom.Feq(work[i].Position(), work[j].Position()) {
			return work[i].Position() < work[j].Position()
		}
		return work[i].Start() < work[j].Start()
	})

	result := make([]Ruling, 0, len(work))
	last := work[0]
	for _, next := range work[1:] {
		if next.Length() <= 0 {
			continue
		}
		if geom.Feq(last.Position(), next.Position()) && last.nearlyIntersects(next, Colinear) {
			start := math.Min(last.Start(), next.Start())
			end := math.Max(last.End(), next.End())
			last = last.WithExtent(start, end)
			continue
		}
		result = append(result, last)
		last = next
	}
	result = append(result, last)

	sort.SliceStable(result, func(i, j int) bool {
		if !geom.Feq(result[i].Position(), result[j].Position()) {
			return result[i].Position() < result[j].Position()
		}
		return result[i].Start() < result[j].Start()
	})
	return result
}
