// Package extractor implements PDF content extraction use cases.
package extractor

import (
	"sort"
	"strings"

	"github.com/coregx/tabulon/internal/geom"
	"github.com/coregx/tabulon/internal/ruling"
	"github.com/coregx/tabulon/internal/spatialindex"
	"github.com/coregx/tabulon/internal/wordmerge"
)

// spaceWidthFactor approximates a font's space-glyph width as a fraction
// of its point size, since TextElement carries no decoder-reported space
// width the way the spec's Glyph type does. 0.28em is the typical space
// advance for a Latin text font; wordmerge's own expected-gap tolerance
// (AvgCharTol/WordSpacingTol) absorbs the error from fonts that differ.
const spaceWidthFactor = 0.28

// CellExtractor extracts text content from a rectangular cell region.
//
// The extractor:
//   - Finds all text elements within cell bounds (via a spatial index
//     built once over the page's elements)
//   - Merges them into words and lines (internal/wordmerge, §4.6/§4.7)
//   - Joins the result with proper spacing and line breaks
//
// This is a critical component for table extraction (Phase 2.7).
type CellExtractor struct {
	textElements []*TextElement
	index        *spatialindex.Index
	refTop       float64 // max Top() across textElements; the page-local y-flip reference
}

// NewCellExtractor creates a new CellExtractor with the given text elements.
func NewCellExtractor(textElements []*TextElement) *CellExtractor {
	ce := &CellExtractor{textElements: textElements}
	if len(textElements) == 0 {
		return ce
	}

	ce.refTop = textElements[0].Top()
	for _, e := range textElements[1:] {
		if e.Top() > ce.refTop {
			ce.refTop = e.Top()
		}
	}

	rects := make([]geom.Rectangle, len(textElements))
	for i, e := range textElements {
		rects[i] = geom.NewRectangle(ce.refTop-e.Top(), e.X, e.Width, e.Height)
	}
	ce.index = spatialindex.Build(rects)

	return ce
}

// ExtractCellContent extracts text from a rectangular region (cell bounds).
//
// Equivalent to ExtractCellContentWithBarriers(bounds, nil): stream mode
// has no ruling lines to treat as chunk-breaking barriers.
func (ce *CellExtractor) ExtractCellContent(bounds Rectangle) string {
	return ce.ExtractCellContentWithBarriers(bounds, nil)
}

// ExtractCellContentWithBarriers extracts text from bounds, breaking a
// word chunk at any vertical ruling in barriers that falls strictly
// between two glyphs (§4.10 step 4: lattice-mode cell text must not merge
// across a column rule that happens to sit inside a loosely-bounded cell).
//
// Algorithm:
//  1. Find text elements within bounds (FindElementsInBounds)
//  2. Merge glyphs into word chunks (wordmerge.MergeWords, §4.6)
//  3. Group chunks into lines (wordmerge.GroupLines, §4.7)
//  4. Join chunks within a line with a space, lines with a newline
//
// Returns the extracted text, or empty string if no text is found.
func (ce *CellExtractor) ExtractCellContentWithBarriers(bounds Rectangle, barriers []ruling.Ruling) string {
	chunks := ce.ExtractCellChunks(bounds, barriers)
	if len(chunks) == 0 {
		return ""
	}

	lines := wordmerge.GroupLines(chunks)
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = wordmerge.JoinChunks(line.Chunks)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// ExtractCellChunks returns the merged word chunks within bounds, the
// same chunks ExtractCellContentWithBarriers joins into text. Exposed so
// callers (e.g. tabledetect's lattice extraction) can assemble a table
// from chunks directly instead of re-parsing joined text.
func (ce *CellExtractor) ExtractCellChunks(bounds Rectangle, barriers []ruling.Ruling) []*wordmerge.Chunk {
	elements := ce.FindElementsInBounds(bounds)
	if len(elements) == 0 {
		return nil
	}

	refTop := bounds.Top()
	glyphs := toGlyphs(elements, refTop)

	flipped := make([]ruling.Ruling, len(barriers))
	for i, b := range barriers {
		flipped[i] = flipRulingY(b, refTop)
	}

	return wordmerge.MergeWords(glyphs, flipped)
}

// FindElementsInBounds returns all text elements that are within the bounds.
//
// An element is considered "within" if its center point is inside the bounds.
// This handles cases where text might slightly overlap cell boundaries.
//
// The spatial index narrows the candidate set to elements whose envelope
// intersects bounds (inflated by geom.EPS so a center sitting exactly on
// the cell boundary still counts); the final center-containment test is
// unchanged, so results are identical to a full linear scan.
//
// This method is exported for use by other extractors (e.g., table alignment detection).
func (ce *CellExtractor) FindElementsInBounds(bounds Rectangle) []*TextElement {
	if ce.index == nil {
		return nil
	}

	q := geom.NewRectangle(ce.refTop-bounds.Top(), bounds.X, bounds.Width, bounds.Height)
	q = geom.NewRectangle(q.Top-geom.EPS, q.Left-geom.EPS, q.Width+2*geom.EPS, q.Height+2*geom.EPS)

	candidates := ce.index.Intersecting(q)
	sort.Ints(candidates)

	var result []*TextElement
	for _, i := range candidates {
		elem := ce.textElements[i]
		if bounds.Contains(elem.CenterX(), elem.CenterY()) {
			result = append(result, elem)
		}
	}
	return result
}

// toGlyphs converts elements into a reading-ordered (top-to-bottom, then
// left-to-right) glyph stream in y-down space relative to refTop, the
// conversion mergeWords (§4.6) expects.
func toGlyphs(elements []*TextElement, refTop float64) []wordmerge.Glyph {
	sorted := make([]*TextElement, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		yi, yj := refTop-sorted[i].Top(), refTop-sorted[j].Top()
		if !geom.Feq(yi, yj) {
			return yi < yj
		}
		return sorted[i].X < sorted[j].X
	})

	glyphs := make([]wordmerge.Glyph, len(sorted))
	for i, e := range sorted {
		glyphs[i] = wordmerge.Glyph{
			Bounds:       geom.NewRectangle(refTop-e.Top(), e.X, e.Width, e.Height),
			Text:         e.Text,
			FontHandle:   e.FontName,
			FontSize:     e.FontSize,
			WidthOfSpace: e.FontSize * spaceWidthFactor,
			Dir:          wordmerge.Neutral,
		}
	}
	return glyphs
}

// flipRulingY rebuilds r with its Y coordinates mapped into the same
// y-down-relative-to-refTop space toGlyphs uses, so barrier crossing tests
// compare against glyph bounds in a consistent frame. X coordinates (a
// vertical ruling's position) are untouched by the flip.
func flipRulingY(r ruling.Ruling, refTop float64) ruling.Ruling {
	return ruling.New(r.X1, refTop-r.Y1, r.X2, refTop-r.Y2)
}
