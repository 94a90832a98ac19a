// Package tabledetect implements table detection algorithms.
package tabledetect

import (
	"fmt"
	"math"
	"sort"

	"github.com/coregx/tabulon/internal/extractor"
	"github.com/coregx/tabulon/internal/geom"
	"github.com/coregx/tabulon/internal/wordmerge"
)

// DefaultWhitespaceAnalyzer analyzes whitespace distribution to find table
// structure in stream mode, where tables don't have visible ruling lines.
//
// Line grouping and column boundary inference are delegated to
// internal/wordmerge (§4.7, §4.8): this type's job is translating
// extractor.TextElement (PDF-native, y-up) into wordmerge.Chunk (y-down)
// and back, the same conversion-boundary role RulingLine plays for
// ruling lines.
//
// Algorithm inspired by tabula-java's BasicExtractionAlgorithm.
// Reference: tabula-java/technology/tabula/extractors/BasicExtractionAlgorithm.java
type DefaultWhitespaceAnalyzer struct {
	minGapWidth        float64 // Minimum gap width to consider (in points)
	alignmentTolerance float64 // Tolerance for text alignment (in points)
	projectionAnalyzer ProjectionAnalyzer
	isLatticeMode      bool // Lattice mode (true) vs Stream mode (false)
}

// NewDefaultWhitespaceAnalyzer creates a new DefaultWhitespaceAnalyzer with default settings.
func NewDefaultWhitespaceAnalyzer() *DefaultWhitespaceAnalyzer {
	return &DefaultWhitespaceAnalyzer{
		minGapWidth:        10.0, // Minimum 10 points (~3.5mm)
		alignmentTolerance: 2.0,  // 2 points tolerance
		projectionAnalyzer: NewDefaultProjectionAnalyzer(),
		isLatticeMode:      false,
	}
}

// NewWhitespaceAnalyzer creates a new DefaultWhitespaceAnalyzer with default settings.
// Deprecated: Use NewDefaultWhitespaceAnalyzer instead. Kept for backward compatibility.
func NewWhitespaceAnalyzer() *DefaultWhitespaceAnalyzer {
	return NewDefaultWhitespaceAnalyzer()
}

// NewWhitespaceAnalyzerForLattice creates a DefaultWhitespaceAnalyzer with
// its lattice-mode flag set. No detection method reads that flag, so this
// analyzer finds rows and columns exactly as NewDefaultWhitespaceAnalyzer's
// does, with the same gap threshold.
func NewWhitespaceAnalyzerForLattice() *DefaultWhitespaceAnalyzer {
	wa := NewDefaultWhitespaceAnalyzer()
	wa.isLatticeMode = true
	return wa
}

// WithMinGapWidth sets the minimum gap width.
func (wa *DefaultWhitespaceAnalyzer) WithMinGapWidth(width float64) *DefaultWhitespaceAnalyzer {
	wa.minGapWidth = width
	return wa
}

// WithAlignmentTolerance sets the alignment tolerance.
func (wa *DefaultWhitespaceAnalyzer) WithAlignmentTolerance(tol float64) *DefaultWhitespaceAnalyzer {
	wa.alignmentTolerance = tol
	return wa
}

// WithProjectionAnalyzer sets a custom projection analyzer.
func (wa *DefaultWhitespaceAnalyzer) WithProjectionAnalyzer(analyzer ProjectionAnalyzer) *DefaultWhitespaceAnalyzer {
	wa.projectionAnalyzer = analyzer
	return wa
}

// toChunks converts text elements into wordmerge chunks carrying only
// bounds (no glyph text is needed for line grouping or column inference),
// flipping the PDF-native y-up axis into the core's y-down convention
// relative to the tallest element's top edge — a local, self-consistent
// flip, since absolute page height isn't available at this layer.
func toChunks(elements []*extractor.TextElement) []*wordmerge.Chunk {
	if len(elements) == 0 {
		return nil
	}
	maxTop := elements[0].Top()
	for _, e := range elements[1:] {
		if e.Top() > maxTop {
			maxTop = e.Top()
		}
	}
	chunks := make([]*wordmerge.Chunk, len(elements))
	for i, e := range elements {
		top := maxTop - e.Top()
		chunks[i] = &wordmerge.Chunk{
			Bounds: geom.NewRectangle(top, e.X, e.Width, e.Height),
		}
	}
	return chunks
}

// DetectColumns finds vertical alignment patterns (column boundaries).
//
// Returns a slice of X coordinates representing column boundaries,
// sorted left to right.
func (wa *DefaultWhitespaceAnalyzer) DetectColumns(elements []*extractor.TextElement) []float64 {
	if len(elements) == 0 {
		return []float64{}
	}
	lines := wordmerge.GroupLines(toChunks(elements))
	return wordmerge.ColumnPositions(lines)
}

// DetectColumnsWithRulingLines combines text-based column inference with
// known ruling line X positions, keeping any ruling position not already
// covered by a text-derived boundary.
func (wa *DefaultWhitespaceAnalyzer) DetectColumnsWithRulingLines(
	elements []*extractor.TextElement,
	rulingLineXPositions []float64,
) []float64 {
	cols := wa.DetectColumns(elements)
	for _, x := range rulingLineXPositions {
		covered := false
		for _, c := range cols {
			if math.Abs(c-x) <= wa.alignmentTolerance {
				covered = true
				break
			}
		}
		if !covered {
			cols = append(cols, x)
		}
	}
	sort.Float64s(cols)
	return cols
}

// DetectRows finds horizontal alignment patterns (row boundaries).
//
// Returns a slice of Y coordinates representing row boundaries, one per
// line group (§4.7), sorted bottom to top (PDF coordinates).
func (wa *DefaultWhitespaceAnalyzer) DetectRows(elements []*extractor.TextElement) []float64 {
	if len(elements) == 0 {
		return []float64{}
	}
	lines := wordmerge.GroupLines(toChunks(elements))
	rows := make([]float64, len(lines))
	for i, l := range lines {
		// Undo toChunks' local y-flip: the line's stored top (y-down,
		// relative to maxTop) maps back to a PDF-native Y by the same
		// maxTop reference used to build it.
		maxTop := elements[0].Top()
		for _, e := range elements[1:] {
			if e.Top() > maxTop {
				maxTop = e.Top()
			}
		}
		rows[i] = maxTop - l.Bounds.Top
	}
	sort.Float64s(rows)
	return rows
}

// GroupIntoRows groups text elements into rows based on Y position.
func (wa *DefaultWhitespaceAnalyzer) GroupIntoRows(elements []*extractor.TextElement) [][]*extractor.TextElement {
	if len(elements) == 0 {
		return [][]*extractor.TextElement{}
	}

	sorted := make([]*extractor.TextElement, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y // Higher Y first (top to bottom)
	})

	var rows [][]*extractor.TextElement
	currentRow := []*extractor.TextElement{sorted[0]}
	currentY := sorted[0].Y

	for i := 1; i < len(sorted); i++ {
		elem := sorted[i]
		if math.Abs(elem.Y-currentY) <= wa.alignmentTolerance {
			currentRow = append(currentRow, elem)
		} else {
			rows = append(rows, currentRow)
			currentRow = []*extractor.TextElement{elem}
			currentY = elem.Y
		}
	}
	if len(currentRow) > 0 {
		rows = append(rows, currentRow)
	}
	return rows
}

// GroupIntoColumns groups text elements into columns based on X position.
func (wa *DefaultWhitespaceAnalyzer) GroupIntoColumns(elements []*extractor.TextElement) [][]*extractor.TextElement {
	if len(elements) == 0 {
		return [][]*extractor.TextElement{}
	}

	sorted := make([]*extractor.TextElement, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var columns [][]*extractor.TextElement
	currentColumn := []*extractor.TextElement{sorted[0]}
	currentX := sorted[0].X

	for i := 1; i < len(sorted); i++ {
		elem := sorted[i]
		if math.Abs(elem.X-currentX) <= wa.alignmentTolerance {
			currentColumn = append(currentColumn, elem)
		} else {
			columns = append(columns, currentColumn)
			currentColumn = []*extractor.TextElement{elem}
			currentX = elem.X
		}
	}
	if len(currentColumn) > 0 {
		columns = append(columns, currentColumn)
	}
	return columns
}

// DetectTableRegion detects a table region based on whitespace analysis.
//
// Returns the bounding rectangle of the detected table, or nil if no table.
func (wa *DefaultWhitespaceAnalyzer) DetectTableRegion(elements []*extractor.TextElement) *extractor.Rectangle {
	if len(elements) == 0 {
		return nil
	}

	rows := wa.DetectRows(elements)
	columns := wa.DetectColumns(elements)

	if len(rows) < 2 || len(columns) < 2 {
		return nil
	}

	minX := columns[0]
	maxX := columns[len(columns)-1]
	minY := rows[0]
	maxY := rows[len(rows)-1]

	rect := extractor.NewRectangle(minX, minY, maxX-minX, maxY-minY)
	return &rect
}

// String returns a string representation of the analyzer.
func (wa *DefaultWhitespaceAnalyzer) String() string {
	return fmt.Sprintf("WhitespaceAnalyzer{minGap=%.2f, tolerance=%.2f}",
		wa.minGapWidth, wa.alignmentTolerance)
}

// calculateAverageFontSize calculates the average font size of text elements.
func (wa *DefaultWhitespaceAnalyzer) calculateAverageFontSize(elements []*extractor.TextElement) float64 {
	if len(elements) == 0 {
		return 10.0
	}
	sum := 0.0
	count := 0
	for _, elem := range elements {
		if elem.FontSize > 0 {
			sum += elem.FontSize
			count++
		}
	}
	if count == 0 {
		return 10.0
	}
	return sum / float64(count)
}
