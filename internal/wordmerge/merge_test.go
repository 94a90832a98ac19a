package wordmerge

import (
	"testing"

	"github.com/coregx/tabulon/internal/geom"
	"github.com/coregx/tabulon/internal/ruling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordGlyph(left, width float64, text string) Glyph {
	return Glyph{
		Bounds:       geom.NewRectangle(0, left, width, 10),
		Text:         text,
		FontHandle:   "Arial",
		FontSize:     12,
		WidthOfSpace: 12 * 0.28,
		Dir:          Neutral,
	}
}

func TestMergeWords_Empty(t *testing.T) {
	assert.Nil(t, MergeWords(nil, nil))
}

func TestMergeWords_TightGapMergesIntoOneChunk(t *testing.T) {
	// gap of 1pt, well inside the ~3.36pt expected word-spacing tolerance.
	glyphs := []Glyph{
		wordGlyph(0, 10, "A"),
		wordGlyph(11, 10, "B"),
	}
	chunks := MergeWords(glyphs, nil)
	require.Len(t, chunks, 1)
	assert.Equal(t, "AB", chunks[0].Text())
}

func TestMergeWords_WordGapEmbedsSyntheticSpaceThenBreaks(t *testing.T) {
	// "Hello" (right edge 30) then "World" at left=40 (10pt gap): wider than
	// the expected word-spacing tolerance, so a synthetic space is embedded
	// in the first chunk and the second word starts a new chunk.
	glyphs := []Glyph{
		wordGlyph(0, 30, "Hello"),
		wordGlyph(40, 30, "World"),
	}
	chunks := MergeWords(glyphs, nil)
	require.Len(t, chunks, 2)
	assert.Equal(t, "Hello ", chunks[0].Text())
	assert.Equal(t, "World", chunks[1].Text())
}

func TestMergeWords_WideGapStillStartsNewChunk(t *testing.T) {
	glyphs := []Glyph{
		wordGlyph(10, 30, "Left"),
		wordGlyph(300, 30, "Right"),
	}
	chunks := MergeWords(glyphs, nil)
	require.Len(t, chunks, 2)
	assert.Equal(t, "Left ", chunks[0].Text())
	assert.Equal(t, "Right", chunks[1].Text())
}

func TestMergeWords_DifferentLinesDoNotMerge(t *testing.T) {
	glyphs := []Glyph{
		{Bounds: geom.NewRectangle(0, 0, 10, 10), Text: "Top", FontSize: 12, WidthOfSpace: 3.36},
		{Bounds: geom.NewRectangle(20, 0, 10, 10), Text: "Bottom", FontSize: 12, WidthOfSpace: 3.36},
	}
	chunks := MergeWords(glyphs, nil)
	require.Len(t, chunks, 2)
	assert.Equal(t, "Top", chunks[0].Text())
	assert.Equal(t, "Bottom", chunks[1].Text())
}

func TestMergeWords_BarrierForcesBreakAcrossTightGap(t *testing.T) {
	// Without a barrier, a 1pt gap merges into a single chunk.
	glyphs := []Glyph{
		wordGlyph(0, 10, "A"),
		wordGlyph(11, 10, "B"),
	}
	noBarrier := MergeWords(glyphs, nil)
	require.Len(t, noBarrier, 1)

	// A vertical ruling sitting strictly between the two glyphs forces a
	// break even though the gap alone would not.
	barrier := ruling.New(10.5, 0, 10.5, 10)
	withBarrier := MergeWords(glyphs, []ruling.Ruling{barrier})
	require.Len(t, withBarrier, 2)
	assert.Equal(t, "A", withBarrier[0].Text())
	assert.Equal(t, "B", withBarrier[1].Text())
}

func TestMergeWords_CoincidentSpaceGlyphIsSkipped(t *testing.T) {
	// A decoder-emitted space glyph that exactly coincides with the
	// preceding glyph's position is a known duplicate artifact, not a real
	// character, and must not appear in the merged output.
	a := wordGlyph(0, 10, "A")
	phantomSpace := Glyph{Bounds: a.Bounds, Text: " ", FontSize: 12}
	b := wordGlyph(11, 10, "B")

	chunks := MergeWords([]Glyph{a, phantomSpace, b}, nil)
	require.Len(t, chunks, 1)
	assert.Equal(t, "AB", chunks[0].Text())
}

func TestMergeWords_DoesNotMutateInput(t *testing.T) {
	glyphs := []Glyph{
		wordGlyph(0, 30, "Hello"),
		wordGlyph(40, 30, "World"),
	}
	original := make([]Glyph, len(glyphs))
	copy(original, glyphs)

	MergeWords(glyphs, nil)

	assert.Equal(t, original, glyphs)
}
