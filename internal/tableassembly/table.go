package tableassembly

import (
	"sort"
	"unicode"

	"github.com/coregx/tabulon/internal/geom"
	"github.com/coregx/tabulon/internal/ruling"
	"github.com/coregx/tabulon/internal/wordmerge"
)

// Method tags which algorithm produced a Table.
type Method string

const (
	MethodLattice Method = "lattice"
	MethodStream  Method = "stream"
)

// pos is a (row, col) table position, compared row-first then column —
// the table's iteration order.
type pos struct {
	Row, Col int
}

// emptyChunk is the sentinel returned for any (row,col) no glyph ever
// landed on; row materialization fills missing positions with it rather
// than a nil chunk.
var emptyChunk = &wordmerge.Chunk{}

// Table is the extraction core's output: an extraction-method tag, page
// number, row/column counts, and a sparse (row,col)->chunk mapping keyed
// in row-major order. Adding at (r,c) grows Rows/Cols to at least
// (r+1, c+1); adding at an occupied position merges the new and old
// chunks (geometric union of bounds, glyph-list concatenation in reading
// order) rather than overwriting.
type Table struct {
	Page   int
	Method Method
	Bounds geom.Rectangle
	Rows   int
	Cols   int

	cells map[pos]*wordmerge.Chunk
	order []pos
}

// NewTable creates an empty table for the given page.
func NewTable(page int, method Method, bounds geom.Rectangle) *Table {
	return &Table{
		Page:   page,
		Method: method,
		Bounds: bounds,
		cells:  make(map[pos]*wordmerge.Chunk),
	}
}

// Add places chunk at (row, col), merging with any existing occupant.
//
// Merging concatenates glyphs in the order chunks were added, inserting a
// single space glyph at the seam when neither neighboring glyph is itself
// whitespace — the same word-boundary rule MergeWords applies within a
// chunk, needed here because Add is the seam between separately-merged
// words landing on the same grid position (e.g. two words sharing a
// lattice cell), not between characters of one word.
func (t *Table) Add(row, col int, chunk *wordmerge.Chunk) {
	if row+1 > t.Rows {
		t.Rows = row + 1
	}
	if col+1 > t.Cols {
		t.Cols = col + 1
	}
	p := pos{Row: row, Col: col}
	if existing, ok := t.cells[p]; ok {
		if len(existing.Glyphs) > 0 && len(chunk.Glyphs) > 0 {
			last := existing.Glyphs[len(existing.Glyphs)-1]
			first := chunk.Glyphs[0]
			if !endsWithSpaceRune(last.Text) && !startsWithSpaceRune(first.Text) {
				existing.Append(syntheticSpaceBetween(last, first))
			}
		}
		existing.Bounds = existing.Bounds.Union(chunk.Bounds)
		existing.Glyphs = append(existing.Glyphs, chunk.Glyphs...)
		return
	}
	t.cells[p] = chunk
	t.order = append(t.order, p)
}

// endsWithSpaceRune and startsWithSpaceRune test only the boundary rune of
// a (possibly multi-character) glyph's text, unlike Glyph.IsSpace (which
// requires the entire text to be whitespace) — needed since a populated
// line glyph here may carry a leading "\n" followed by real text.
func endsWithSpaceRune(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return unicode.IsSpace(r[len(r)-1])
}

func startsWithSpaceRune(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return unicode.IsSpace(r[0])
}

// syntheticSpaceBetween builds a space glyph, as tall as prev, bridging two
// glyphs being joined across a Table.Add merge seam.
func syntheticSpaceBetween(prev, next wordmerge.Glyph) wordmerge.Glyph {
	return wordmerge.Glyph{
		Bounds: geom.NewRectangle(prev.Top(), prev.Right(), next.Left()-prev.Right(), prev.Bottom()-prev.Top()),
		Text:   " ",
		Dir:    wordmerge.Neutral,
	}
}

// GetCell returns the chunk at (row, col), or the shared empty sentinel
// if nothing was ever placed there.
func (t *Table) GetCell(row, col int) *wordmerge.Chunk {
	if c, ok := t.cells[pos{Row: row, Col: col}]; ok {
		return c
	}
	return emptyChunk
}

// GetRows materializes the sparse map into a Rows x Cols matrix; absent
// positions are the empty sentinel, never nil.
func (t *Table) GetRows() [][]*wordmerge.Chunk {
	rows := make([][]*wordmerge.Chunk, t.Rows)
	for r := 0; r < t.Rows; r++ {
		row := make([]*wordmerge.Chunk, t.Cols)
		for c := 0; c < t.Cols; c++ {
			row[c] = t.GetCell(r, c)
		}
		rows[r] = row
	}
	return rows
}

// OrderedPositions returns the occupied (row,col) positions in row-major
// (row-first, then column) order — the table's defined iteration order.
func (t *Table) OrderedPositions() []pos {
	out := make([]pos, len(t.order))
	copy(out, t.order)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// RegionRulings returns the subset of h/v rulings that intersect region's
// bounds — the row/column lines for a TableWithRulingLines (§4.10 step 4).
//
// A ruling's own Rectangle is degenerate (zero-height for a horizontal,
// zero-width for a vertical), so Rectangle.Intersects — which requires
// strictly positive overlap on both axes — would never report a match.
// inflateByEPS pads the degenerate axis the same way the cell extractor's
// spatial-index query does, so a ruling lying inside the region's span is
// detected.
func RegionRulings(region geom.Rectangle, h, v []ruling.Ruling) (rows, cols []ruling.Ruling) {
	for _, r := range h {
		if region.Intersects(inflateByEPS(r.Rectangle())) {
			rows = append(rows, r)
		}
	}
	for _, r := range v {
		if region.Intersects(inflateByEPS(r.Rectangle())) {
			cols = append(cols, r)
		}
	}
	return rows, cols
}

func inflateByEPS(r geom.Rectangle) geom.Rectangle {
	return geom.NewRectangle(r.Top-geom.EPS, r.Left-geom.EPS, r.Width+2*geom.EPS, r.Height+2*geom.EPS)
}

// IsTabular runs the spec's §4.11 heuristic ratio test: given the
// row/column counts a lattice pass and a stream pass each produced on
// the same minimal text bounding box, compute
// r = 0.5*(colsLattice/colsStream + rowsLattice/rowsStream) and report
// whether 0.65 < r < 1/0.65.
func IsTabular(rowsLattice, colsLattice, rowsStream, colsStream int) bool {
	if rowsStream == 0 || colsStream == 0 {
		return false
	}
	r := 0.5 * (float64(colsLattice)/float64(colsStream) + float64(rowsLattice)/float64(rowsStream))
	const heuristicRatio = 0.65
	return r > heuristicRatio && r < 1/heuristicRatio
}
