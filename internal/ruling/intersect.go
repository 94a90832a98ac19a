package ruling

import (
	"sort"

	"github.com/coregx/tabulon/internal/geom"
)

// eventKind distinguishes the three sweep events.
type eventKind int

const (
	hLeft eventKind = iota
	vertical
	hRight
)

type event struct {
	pos  float64
	kind eventKind
	idx  int // index into the horizontals slice (hLeft/hRight) or verticals slice (vertical)
}

// Intersection pairs the expanded copies of the two rulings that produced
// a point, keyed by the point itself. Cell discovery compares these
// expanded copies by structural equality of endpoints, never by pointer
// identity — they're value types throughout.
type Intersection struct {
	Point      geom.Point
	Horizontal Ruling // PERP-expanded copy
	Vertical   Ruling // PERP-expanded copy
}

// FindIntersections finds every point where a horizontal ruling crosses a
// vertical ruling, via an event-based sweep over the x axis:
//
//  1. Each horizontal emits HLEFT at left-Perpendicular and HRIGHT at
//     right+Perpendicular.
//  2. Each vertical emits one VERTICAL event at its x.
//  3. Events are sorted by position; ties are broken so a VERTICAL sorts
//     after an incoming HLEFT but before an outgoing HRIGHT at the same
//     x — a vertical sitting exactly on a horizontal's expanded boundary
//     still sees it as active.
//  4. An active set of horizontals (keyed by their index in h) is
//     maintained; HLEFT inserts, HRIGHT removes, VERTICAL walks the
//     active set recording any real intersection (both rulings expanded
//     by Perpendicular) into the result, keyed by the rounded point.
//
// The returned map is unordered; SortedPoints lists its keys ordered by y
// then x. The result is symmetric under independent
// permutation of h and v: the same set of points is found regardless of
// input order, since activation is driven by position, not index.
func FindIntersections(h, v []Ruling) map[geom.Point]Intersection {
	result := make(map[geom.Point]Intersection)
	if len(h) == 0 || len(v) == 0 {
		return result
	}

	events := make([]event, 0, 2*len(h)+len(v))
	for i, hr := range h {
		events = append(events, event{pos: hr.Start() - Perpendicular, kind: hLeft, idx: i})
		events = append(events, event{pos: hr.End() + Perpendicular, kind: hRight, idx: i})
	}
	for i := range v {
		events = append(events, event{pos: v[i].Position(), kind: vertical, idx: i})
	}

	// VERTICAL sorts after HLEFT and before HRIGHT at equal position.
	kindRank := func(k eventKind) int {
		switch k {
		case hLeft:
			return 0
		case vertical:
			return 1
		case hRight:
			return 2
		}
		return 3
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !geom.Feq(events[i].pos, events[j].pos) {
			return events[i].pos < events[j].pos
		}
		return kindRank(events[i].kind) < kindRank(events[j].kind)
	})

	active := make(map[int]bool) // set of active horizontal indices

	for _, e := range events {
		switch e.kind {
		case hLeft:
			active[e.idx] = true
		case hRight:
			delete(active, e.idx)
		case vertical:
			vr := v[e.idx]
			vExpanded := vr.WithExtent(vr.Start()-Perpendicular, vr.End()+Perpendicular)
			for hi := range active {
				hr := h[hi]
				hExpanded := hr.WithExtent(hr.Start()-Perpendicular, hr.End()+Perpendicular)
				// Real crossing: the vertical's x falls within the
				// (expanded) horizontal's span, and the horizontal's y
				// falls within the (expanded) vertical's span.
				if vExpanded.Position() < hExpanded.Start() || vExpanded.Position() > hExpanded.End() {
					continue
				}
				if hExpanded.Position() < vExpanded.Start() || hExpanded.Position() > vExpanded.End() {
					continue
				}
				pt := geom.Point{X: vr.Position(), Y: hr.Position()}.RoundedKey()
				result[pt] = Intersection{Point: pt, Horizontal: hExpanded, Vertical: vExpanded}
			}
		}
	}

	return result
}

// SortedPoints returns the keys of an intersection map ordered row-first
// (y then x), after rounding — the order findCells (§4.4) walks in.
func SortedPoints(m map[geom.Point]Intersection) []geom.Point {
	pts := make([]geom.Point, 0, len(m))
	for p := range m {
		pts = append(pts, p)
	}
	sort.SliceStable(pts, func(i, j int) bool {
		if !geom.Feq(pts[i].Y, pts[j].Y) {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}
