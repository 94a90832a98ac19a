package wordmerge

import (
	"testing"

	"github.com/coregx/tabulon/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunkAt(top, left, width, height float64, text string) *Chunk {
	return NewChunk(Glyph{Bounds: geom.NewRectangle(top, left, width, height), Text: text})
}

func TestGroupLines_Empty(t *testing.T) {
	assert.Nil(t, GroupLines(nil))
}

func TestGroupLines_GroupsByVerticalOverlapAndOrdersLeftToRight(t *testing.T) {
	// Two chunks on the same visual line, given out of left-right order;
	// one chunk on a separate, lower line.
	right := chunkAt(0, 50, 10, 10, "B")
	left := chunkAt(0, 0, 10, 10, "A")
	lowerLine := chunkAt(20, 0, 10, 10, "C")

	lines := GroupLines([]*Chunk{right, left, lowerLine})
	require.Len(t, lines, 2)

	require.Len(t, lines[0].Chunks, 2)
	assert.Equal(t, "A", lines[0].Chunks[0].Text())
	assert.Equal(t, "B", lines[0].Chunks[1].Text())

	require.Len(t, lines[1].Chunks, 1)
	assert.Equal(t, "C", lines[1].Chunks[0].Text())
}

func TestColumnPositions_MergesOverlappingChunksAcrossLines(t *testing.T) {
	lineA := []*Chunk{chunkAt(0, 0, 10, 10, "A"), chunkAt(0, 50, 10, 10, "B")}
	lineB := []*Chunk{chunkAt(20, 2, 5, 10, "C"), chunkAt(20, 55, 5, 10, "D")}

	lines := []*Line{
		{Chunks: lineA, Bounds: geom.BoundingBox([]geom.Rectangle{lineA[0].Bounds, lineA[1].Bounds})},
		{Chunks: lineB, Bounds: geom.BoundingBox([]geom.Rectangle{lineB[0].Bounds, lineB[1].Bounds})},
	}

	cols := ColumnPositions(lines)
	assert.Equal(t, []float64{10, 60}, cols)
}

func TestColumnPositions_NoLines(t *testing.T) {
	assert.Empty(t, ColumnPositions(nil))
}

func TestColumnIndex(t *testing.T) {
	cols := []float64{10, 60}
	assert.Equal(t, 0, ColumnIndex(cols, 5))
	assert.Equal(t, 0, ColumnIndex(cols, 10))
	assert.Equal(t, 1, ColumnIndex(cols, 15))
	assert.Equal(t, 2, ColumnIndex(cols, 100))
}

func TestJoinChunks_InsertsSpaceOnlyWhenNeitherSideHasOne(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"neither side whitespace", "Foo", "Bar", "Foo Bar"},
		{"left already trails a space", "Foo ", "Bar", "Foo Bar"},
		{"right already leads with a space", "Foo", " Bar", "Foo Bar"},
		{"both sides carry whitespace", "Foo ", " Bar", "Foo  Bar"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chunks := []*Chunk{
				NewChunk(Glyph{Text: tc.a}),
				NewChunk(Glyph{Text: tc.b}),
			}
			assert.Equal(t, tc.want, JoinChunks(chunks))
		})
	}
}

func TestJoinChunks_SkipsWhitespaceOnlyChunks(t *testing.T) {
	chunks := []*Chunk{
		NewChunk(Glyph{Text: "Foo"}),
		NewChunk(Glyph{Text: " "}),
		NewChunk(Glyph{Text: "Bar"}),
	}
	assert.Equal(t, "Foo Bar", JoinChunks(chunks))
}

func TestJoinChunks_Empty(t *testing.T) {
	assert.Equal(t, "", JoinChunks(nil))
	assert.Equal(t, "", JoinChunks([]*Chunk{NewChunk(Glyph{Text: " "})}))
}
