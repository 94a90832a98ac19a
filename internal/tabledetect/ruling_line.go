// Package tabledetect implements table detection algorithms.
//
// This is the Application layer in DDD/Clean Architecture.
// It uses domain logic and extracted content to detect table regions.
package tabledetect

import (
	"fmt"

	"github.com/coregx/tabulon/internal/extractor"
	"github.com/coregx/tabulon/internal/ruling"
)

// RulingLine represents a horizontal or vertical line in a PDF.
//
// Ruling lines are used in lattice mode table extraction to detect
// table boundaries and cell grids. The normalization, collapse, and
// intersection math live in internal/ruling; RulingLine is this layer's
// thin wrapper so the rest of tabledetect keeps its existing shape.
//
// Inspired by tabula-java's Ruling class.
// Reference: tabula-java/technology/tabula/Ruling.java
type RulingLine struct {
	core ruling.Ruling
}

// NewRulingLine creates a new RulingLine, normalizing it immediately.
func NewRulingLine(start, end extractor.Point) *RulingLine {
	return &RulingLine{core: ruling.New(start.X, start.Y, end.X, end.Y)}
}

func newRulingLineFromCore(r ruling.Ruling) *RulingLine {
	return &RulingLine{core: r}
}

// Start returns the line's starting point.
func (rl *RulingLine) Start() extractor.Point { return extractor.NewPoint(rl.core.X1, rl.core.Y1) }

// End returns the line's ending point.
func (rl *RulingLine) End() extractor.Point { return extractor.NewPoint(rl.core.X2, rl.core.Y2) }

// IsHorizontal reports whether the line normalized to strict horizontal.
func (rl *RulingLine) IsHorizontal() bool { return rl.core.IsHorizontal() }

// IsVertical reports whether the line normalized to strict vertical.
func (rl *RulingLine) IsVertical() bool { return rl.core.IsVertical() }

// Length returns the length of the ruling line.
func (rl *RulingLine) Length() float64 {
	return rl.core.Length()
}

// Intersects checks if this ruling line intersects with another,
// returning the intersection point, or nil if perpendicular rulings
// don't actually cross (parallel or both-oblique pairs never intersect
// for lattice purposes).
func (rl *RulingLine) Intersects(other *RulingLine) *extractor.Point {
	if rl.core.IsHorizontal() && other.core.IsVertical() {
		return crossingPoint(rl.core, other.core)
	}
	if rl.core.IsVertical() && other.core.IsHorizontal() {
		return crossingPoint(other.core, rl.core)
	}
	return nil
}

func crossingPoint(h, v ruling.Ruling) *extractor.Point {
	x := v.Position()
	y := h.Position()
	if x < h.Start()-ruling.Perpendicular || x > h.End()+ruling.Perpendicular {
		return nil
	}
	if y < v.Start()-ruling.Perpendicular || y > v.End()+ruling.Perpendicular {
		return nil
	}
	p := extractor.NewPoint(x, y)
	return &p
}

func (rl *RulingLine) String() string {
	orientation := "V"
	if rl.IsHorizontal() {
		orientation = "H"
	}
	return fmt.Sprintf("RulingLine{%s, start=%s, end=%s, len=%.2f}",
		orientation, rl.Start().String(), rl.End().String(), rl.Length())
}

// DefaultRulingLineDetector detects ruling lines from graphics elements.
//
// This is the default implementation of the RulingLineDetector interface.
// It is used for lattice mode table detection, where tables have
// visible borders and grid lines. Normalization and directional collapse
// are delegated to internal/ruling, which implements the spec's exact
// angle-tolerance and nearly-intersects rules; this type's job is purely
// translating graphics elements in and RulingLines back out.
//
// Algorithm inspired by tabula-java's SpreadsheetExtractionAlgorithm.
// Reference: tabula-java/technology/tabula/extractors/SpreadsheetExtractionAlgorithm.java
type DefaultRulingLineDetector struct {
	minLineLength float64 // Minimum line length to consider (in points)
}

// NewDefaultRulingLineDetector creates a new DefaultRulingLineDetector with default settings.
func NewDefaultRulingLineDetector() *DefaultRulingLineDetector {
	return &DefaultRulingLineDetector{
		minLineLength: 10.0, // Minimum 10 points (about 3.5mm)
	}
}

// NewRulingLineDetector creates a new DefaultRulingLineDetector with default settings.
// Deprecated: Use NewDefaultRulingLineDetector instead. Kept for backward compatibility.
func NewRulingLineDetector() *DefaultRulingLineDetector {
	return NewDefaultRulingLineDetector()
}

// WithMinLineLength sets the minimum line length.
func (d *DefaultRulingLineDetector) WithMinLineLength(length float64) *DefaultRulingLineDetector {
	d.minLineLength = length
	return d
}

// WithTolerance is retained for API compatibility; normalization
// tolerance is now a fixed spec constant (internal/ruling.NormalizeAngleTolDeg)
// rather than a per-detector knob.
// Deprecated: tolerance is no longer configurable per detector.
func (d *DefaultRulingLineDetector) WithTolerance(_ float64) *DefaultRulingLineDetector {
	return d
}

// DetectRulingLines extracts horizontal and vertical lines from graphics,
// normalizing and collapsing fragmented strokes into clean rulings.
//
// Returns the horizontal rulings first, then the vertical ones, each group
// sorted by (position, start).
func (d *DefaultRulingLineDetector) DetectRulingLines(graphics []*extractor.GraphicsElement) ([]*RulingLine, error) {
	var horiz, vert []ruling.Ruling

	for _, elem := range graphics {
		if elem.Type != extractor.GraphicsTypeLine {
			continue
		}
		if len(elem.Points) != 2 {
			continue
		}
		start, end := elem.Points[0], elem.Points[1]
		r := ruling.New(start.X, start.Y, end.X, end.Y)
		if r.Length() < d.minLineLength {
			continue
		}
		switch {
		case r.IsHorizontal():
			horiz = append(horiz, r)
		case r.IsVertical():
			vert = append(vert, r)
		}
	}

	horiz = ruling.Collapse(horiz)
	vert = ruling.Collapse(vert)

	lines := make([]*RulingLine, 0, len(horiz)+len(vert))
	for _, r := range horiz {
		lines = append(lines, newRulingLineFromCore(r))
	}
	for _, r := range vert {
		lines = append(lines, newRulingLineFromCore(r))
	}
	return lines, nil
}

// FindIntersections finds intersection points between ruling lines via
// the sweep-line algorithm in internal/ruling, returning them ordered
// row-first (y then x).
func (d *DefaultRulingLineDetector) FindIntersections(lines []*RulingLine) []extractor.Point {
	var h, v []ruling.Ruling
	for _, l := range lines {
		switch {
		case l.IsHorizontal():
			h = append(h, l.core)
		case l.IsVertical():
			v = append(v, l.core)
		}
	}

	m := ruling.FindIntersections(h, v)
	pts := ruling.SortedPoints(m)

	out := make([]extractor.Point, len(pts))
	for i, p := range pts {
		out[i] = extractor.NewPoint(p.X, p.Y)
	}
	return out
}
