package wordmerge

import (
	"sort"
	"strings"
	"unicode"

	"github.com/coregx/tabulon/internal/geom"
)

// Line is a rectangle enclosing a horizontal group of chunks, left to
// right.
type Line struct {
	Chunks []*Chunk
	Bounds geom.Rectangle
}

// GroupLines groups chunks into lines by vertical proximity (§4.7):
// walking chunks in y-order, a new line opens whenever the next chunk
// doesn't vertically overlap the current line's band — the same
// criterion mergeWords uses to decide "same line" for glyphs. Within a
// line, chunks are sorted left to right.
func GroupLines(chunks []*Chunk) []*Line {
	if len(chunks) == 0 {
		return nil
	}

	ordered := make([]*Chunk, len(chunks))
	copy(ordered, chunks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Bounds.Top < ordered[j].Bounds.Top
	})

	var lines []*Line
	var cur *Line
	for _, c := range ordered {
		if cur == nil || !cur.Bounds.VerticallyOverlaps(c.Bounds) {
			cur = &Line{Bounds: c.Bounds}
			lines = append(lines, cur)
		} else {
			cur.Bounds = cur.Bounds.Union(c.Bounds)
		}
		cur.Chunks = append(cur.Chunks, c)
	}

	for _, l := range lines {
		sort.SliceStable(l.Chunks, func(i, j int) bool {
			return l.Chunks[i].Bounds.Left < l.Chunks[j].Bounds.Left
		})
	}
	return lines
}

// ColumnPositions derives column boundary x-coordinates from lines
// (§4.8): seed regions from the first line's non-whitespace chunks, then
// for every later line merge each chunk that horizontally overlaps an
// existing region into it, and turn any leftover chunks into new
// regions. Output is the right edge of each region, ascending.
func ColumnPositions(lines []*Line) []float64 {
	var regions []geom.Rectangle

	for _, line := range lines {
		residual := nonWhitespace(line.Chunks)
		if len(regions) == 0 {
			for _, c := range residual {
				regions = append(regions, c.Bounds)
			}
			continue
		}

		consumed := make([]bool, len(residual))
		for ri, region := range regions {
			merged := region
			any := false
			for ci, c := range residual {
				if consumed[ci] {
					continue
				}
				if region.HorizontallyOverlaps(c.Bounds) {
					merged = merged.Union(c.Bounds)
					consumed[ci] = true
					any = true
				}
			}
			if any {
				regions[ri] = merged
			}
		}

		for ci, c := range residual {
			if !consumed[ci] {
				regions = append(regions, c.Bounds)
			}
		}
	}

	cols := make([]float64, 0, len(regions))
	for _, r := range regions {
		cols = append(cols, r.Right())
	}
	sort.Float64s(cols)
	return cols
}

// JoinChunks concatenates a line's chunks, left to right, into display
// text. MergeWords already embeds a synthetic space glyph in the
// preceding chunk wherever a word boundary was detected (§4.6 step 7), so
// a seam between two chunks only needs a space inserted when neither
// side already ends or starts with whitespace — blindly joining with " "
// would double that embedded space.
func JoinChunks(chunks []*Chunk) string {
	words := nonWhitespace(chunks)
	if len(words) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(words[0].Text())
	for i := 1; i < len(words); i++ {
		prev := words[i-1].Text()
		cur := words[i].Text()
		if !endsWithSpaceRune(prev) && !startsWithSpaceRune(cur) {
			sb.WriteByte(' ')
		}
		sb.WriteString(cur)
	}
	return sb.String()
}

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

func nonWhitespace(chunks []*Chunk) []*Chunk {
	out := make([]*Chunk, 0, len(chunks))
	for _, c := range chunks {
		if !c.IsWhitespace() {
			out = append(out, c)
		}
	}
	return out
}

// ColumnIndex returns the index of the first boundary >= chunk.Left, or
// len(cols) (a trailing catch-all column) if none qualify.
func ColumnIndex(cols []float64, left float64) int {
	for i, c := range cols {
		if c >= left || geom.Feq(c, left) {
			return i
		}
	}
	return len(cols)
}
