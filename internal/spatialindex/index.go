// Package spatialindex provides the page-local spatial index the lattice
// extractor uses to fetch the glyphs inside a cell's rectangle: a
// bulk-loaded, build-once/query-many index over a page's glyph
// rectangles.
//
// No R-tree library exists anywhere in this project's examples corpus,
// and a page's glyph count (tens to low hundreds) doesn't justify one:
// this is a slice sorted by Left and scanned linearly, the same "small hand-rolled domain
// structure over a library" choice the teacher makes for its own
// in-memory geometry (e.g. internal/tabledetect's Grid).
package spatialindex

import (
	"sort"

	"github.com/coregx/tabulon/internal/geom"
)

// Entry pairs a rectangle with an opaque payload index into the caller's
// own slice, so the index never needs to know the element type.
type Entry struct {
	Bounds geom.Rectangle
	Index  int
}

// Index is a bulk-loaded, immutable spatial index over rectangles.
// Build it once per page after the decoder finishes; queries afterward
// are read-only and safe for concurrent use by multiple goroutines.
type Index struct {
	entries []Entry // sorted by Left
}

// Build bulk-loads an Index from the given rectangles. idx of each
// rectangle in its own slice is preserved as Entry.Index so callers can
// map results back to their original elements.
func Build(rects []geom.Rectangle) *Index {
	entries := make([]Entry, len(rects))
	for i, r := range rects {
		entries[i] = Entry{Bounds: r, Index: i}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Bounds.Left < entries[j].Bounds.Left
	})
	return &Index{entries: entries}
}

// Intersecting returns the indices of every rectangle whose envelope
// intersects query.
func (ix *Index) Intersecting(query geom.Rectangle) []int {
	var out []int
	// Entries are sorted by Left; once an entry's Left exceeds query's
	// Right there can be no further candidates.
	for _, e := range ix.entries {
		if e.Bounds.Left > query.Right() {
			break
		}
		if e.Bounds.Intersects(query) {
			out = append(out, e.Index)
		}
	}
	return out
}

// Contained returns the indices of every rectangle strictly contained in
// query.
func (ix *Index) Contained(query geom.Rectangle) []int {
	var out []int
	for _, e := range ix.entries {
		if e.Bounds.Left > query.Right() {
			break
		}
		if query.ContainsRect(e.Bounds) {
			out = append(out, e.Index)
		}
	}
	return out
}

// Len reports how many rectangles the index holds.
func (ix *Index) Len() int {
	return len(ix.entries)
}
