// Package geom provides the geometric primitives the table extraction core
// reasons about: axis-aligned rectangles in page space, fuzzy numeric
// predicates, and the visual rectangle ordering used to sort extraction
// results the way a reader scans a page.
//
// Coordinates are y-down, origin upper-left (the page space the content
// decoder hands glyphs and line segments in), not the PDF-native y-up
// convention used deeper in the parser layer.
package geom

import (
	"fmt"
	"math"
)

// EPS is the fuzzy-equality tolerance used throughout the core.
const EPS = 0.01

// RoundDecimals is the rounding precision applied before coordinates are
// used as hash-map keys (intersection tables, point dedup).
const RoundDecimals = 2

// VerticalCompareThreshold gates the "ill-defined order" (see Compare):
// rectangles whose vertical overlap ratio against the shorter of the two
// exceeds this fraction are ordered by x; otherwise by bottom.
const VerticalCompareThreshold = 0.4

// Feq reports whether a and b are equal within EPS.
func Feq(a, b float64) bool {
	return math.Abs(a-b) <= EPS
}

// Round rounds v to RoundDecimals places, for use as a map key component.
func Round(v float64) float64 {
	scale := math.Pow(10, RoundDecimals)
	return math.Round(v*scale) / scale
}

// Rectangle is a mutable, axis-aligned box in y-down page space.
//
// Top and Left are the defining corner; Width and Height must be
// non-negative once normalized. Right = Left+Width, Bottom = Top+Height.
type Rectangle struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// NewRectangle builds a Rectangle from its defining corner and extents.
func NewRectangle(top, left, width, height float64) Rectangle {
	return Rectangle{Top: top, Left: left, Width: width, Height: height}
}

// FromCorners builds the normalized Rectangle spanning two arbitrary
// corners, regardless of which corner is passed first.
func FromCorners(x1, y1, x2, y2 float64) Rectangle {
	left := math.Min(x1, x2)
	top := math.Min(y1, y2)
	return Rectangle{
		Top:    top,
		Left:   left,
		Width:  math.Max(x1, x2) - left,
		Height: math.Max(y1, y2) - top,
	}
}

// Right returns Left+Width.
func (r Rectangle) Right() float64 { return r.Left + r.Width }

// Bottom returns Top+Height.
func (r Rectangle) Bottom() float64 { return r.Top + r.Height }

// Contains reports whether (x, y) lies within the rectangle, inclusive
// of its edges.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right() && y >= r.Top && y <= r.Bottom()
}

// ContainsRect reports whether other lies entirely within r.
func (r Rectangle) ContainsRect(other Rectangle) bool {
	return other.Left >= r.Left && other.Right() <= r.Right() &&
		other.Top >= r.Top && other.Bottom() <= r.Bottom()
}

// Intersects reports whether r and other overlap on both axes.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.horizontalOverlapLen(other) > 0 && r.verticalOverlapLen(other) > 0
}

// horizontalOverlapLen is the interval-intersection length of the two
// rectangles' x-spans, clamped at 0.
func (r Rectangle) horizontalOverlapLen(other Rectangle) float64 {
	return math.Max(0, math.Min(r.Right(), other.Right())-math.Max(r.Left, other.Left))
}

// verticalOverlapLen is the interval-intersection length of the two
// rectangles' y-spans, clamped at 0.
func (r Rectangle) verticalOverlapLen(other Rectangle) float64 {
	return math.Max(0, math.Min(r.Bottom(), other.Bottom())-math.Max(r.Top, other.Top))
}

// HorizontallyOverlaps is the strict-positivity form of horizontal overlap.
func (r Rectangle) HorizontallyOverlaps(other Rectangle) bool {
	return r.horizontalOverlapLen(other) > 0
}

// VerticallyOverlaps is the strict-positivity form of vertical overlap.
func (r Rectangle) VerticallyOverlaps(other Rectangle) bool {
	return r.verticalOverlapLen(other) > 0
}

// VerticalOverlapRatio is the fraction of the shorter rectangle's height
// that the two share, 0 when they don't overlap vertically at all.
// Ported from the same case analysis as tabula-java's Rectangle.java.
func (r Rectangle) VerticalOverlapRatio(other Rectangle) float64 {
	delta := math.Min(r.Height, other.Height)
	if delta <= 0 {
		return 0
	}
	overlap := r.verticalOverlapLen(other)
	if overlap <= 0 {
		return 0
	}
	return overlap / delta
}

// OverlapRatio is the intersection-over-union of r and other.
func (r Rectangle) OverlapRatio(other Rectangle) float64 {
	inter := r.horizontalOverlapLen(other) * r.verticalOverlapLen(other)
	areaA := r.Width * r.Height
	areaB := other.Width * other.Height
	denom := areaA + areaB - inter
	if denom <= 0 {
		return 0
	}
	return inter / denom
}

// Union returns the smallest rectangle enclosing both r and other.
func (r Rectangle) Union(other Rectangle) Rectangle {
	top := math.Min(r.Top, other.Top)
	left := math.Min(r.Left, other.Left)
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())
	return NewRectangle(top, left, right-left, bottom-top)
}

// BoundingBox returns the smallest rectangle enclosing every rectangle in
// rects. It panics on an empty slice: the bounding box of the empty set is
// undefined, matching the core's fail-soft-everywhere-except-misuse design.
func BoundingBox(rects []Rectangle) Rectangle {
	if len(rects) == 0 {
		panic("geom: BoundingBox of empty set is undefined")
	}
	box := rects[0]
	for _, r := range rects[1:] {
		box = box.Union(r)
	}
	return box
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle{top=%.2f, left=%.2f, w=%.2f, h=%.2f}", r.Top, r.Left, r.Width, r.Height)
}

// Point is a single (x, y) coordinate in page space.
type Point struct {
	X, Y float64
}

// RoundedKey returns p rounded to RoundDecimals, suitable as a map key.
func (p Point) RoundedKey() Point {
	return Point{X: Round(p.X), Y: Round(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Directional is anything with a dominant reading direction, -1 RTL,
// 0 neutral, +1 LTR. Rectangle orderers use it to decide sort direction
// for RTL-dominant content; geom.Rectangle itself carries no directionality,
// so callers that need direction-aware ordering pass it alongside.
type Directional interface {
	Direction() int
}

// Compare implements the spec's "ill-defined order": a partial, visually
// motivated comparator for rectangles, intentionally not a total order.
//
// If the vertical overlap ratio between a and b exceeds
// VerticalCompareThreshold, order by x ascending (descending if rtl is
// true, signaling both sides are RTL-dominant); otherwise order by bottom
// ascending. Returns -1, 0, or 1 like a conventional comparator.
//
// Because this relation is not transitive, callers must sort with a
// stable algorithm that tolerates an inconsistent comparator (sort.SliceStable
// over materialized keys), never a comparator that assumes a strict weak
// ordering.
func Compare(a, b Rectangle, rtl bool) int {
	if a.VerticalOverlapRatio(b) > VerticalCompareThreshold {
		if rtl {
			return compareFloat(b.Left, a.Left)
		}
		return compareFloat(a.Left, b.Left)
	}
	return compareFloat(a.Bottom(), b.Bottom())
}

func compareFloat(a, b float64) int {
	if Feq(a, b) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}
