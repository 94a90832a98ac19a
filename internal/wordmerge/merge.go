package wordmerge

import (
	"math"

	"github.com/coregx/tabulon/internal/geom"
	"github.com/coregx/tabulon/internal/ruling"
)

// AvgCharTol and WordSpacingTol are the spec's tunables for the expected
// inter-character and inter-word gap (§6): AvgCharTol scales the running
// average character width, WordSpacingTol scales the current glyph's own
// space-width hint.
const (
	AvgCharTol     = 0.3
	WordSpacingTol = 0.5
)

// lineState tracks the running metrics mergeWords needs while it walks a
// single visual line of glyphs: the vertical band chunks on this line
// must overlap to be considered "same line", the running average
// character width (reset on font/size change), and the last observed
// word-spacing hint.
type lineState struct {
	band             geom.Rectangle
	hasBand          bool
	avgCharWidth     float64
	charCount        int
	lastWordSpacing  float64
	haveWordSpacing  bool
	lastFont         string
	lastFontSize     float64
}

// MergeWords groups a reading-ordered glyph stream into chunks (§4.6).
// barriers, if non-nil, are vertical rulings that additionally force a
// chunk break when one lies strictly between two glyphs that otherwise
// vertically overlap it (a column rule between two words on the same
// line).
//
// MergeWords never mutates glyphs: it operates on a defensive copy, so
// the caller's slice is unchanged after return — the original library
// this is modeled on had a bug doing exactly that, and the Go port must
// not repeat it.
func MergeWords(glyphs []Glyph, barriers []ruling.Ruling) []*Chunk {
	work := make([]Glyph, len(glyphs))
	copy(work, glyphs)
	work = dedupGlyphs(work)

	var chunks []*Chunk
	if len(work) == 0 {
		return chunks
	}

	var current *Chunk
	var prev Glyph
	havePrev := false
	var expectedStart float64 = math.Inf(-1)
	state := &lineState{}

	flush := func() {
		if current != nil {
			chunks = append(chunks, current)
		}
		current = nil
	}

	for _, g := range work {
		if havePrev && isCoincidentSpace(prev, g) {
			continue
		}

		if havePrev && (g.FontHandle != state.lastFont || g.FontSize != state.lastFontSize) {
			state.avgCharWidth = 0
			state.charCount = 0
		}

		sameLine := !havePrev || !state.hasBand || state.band.VerticallyOverlaps(g.Bounds)

		if !sameLine {
			flush()
			expectedStart = math.Inf(-1)
			state.hasBand = false
			state.avgCharWidth = 0
			state.charCount = 0
			state.haveWordSpacing = false
			havePrev = false
		}

		acrossBarrier := false
		if havePrev {
			acrossBarrier = crossesBarrier(prev, g, barriers)
		}

		var ws float64
		if havePrev {
			ws = g.WidthOfSpace
			var deltaSpace float64
			switch {
			case math.IsNaN(ws) || ws == 0:
				deltaSpace = math.Inf(1)
			case !state.haveWordSpacing:
				deltaSpace = WordSpacingTol * ws
			default:
				deltaSpace = WordSpacingTol * (ws + state.lastWordSpacing) / 2
			}

			avgCharWidth := state.avgCharWidth
			deltaCharWidth := AvgCharTol * avgCharWidth
			expectedStart = prev.Right() + minFinite(deltaCharWidth, deltaSpace)

			if !acrossBarrier && expectedStart < g.Left() && !endsWithSpace(current) {
				// Width is expectedStart-prev.Right(), not prev.Left() as
				// the spec text literally reads: the synthetic glyph sits
				// immediately after prev, so its width is the gap to
				// expectedStart, not the gap plus prev's own width. Taking
				// the literal text at face value would place the space's
				// right edge a full glyph past expectedStart.
				space := syntheticSpace(prev.Right(), expectedStart-prev.Right(), prev.Top(), prev.Bounds.Height)
				current.Append(space)
				prev = space
			}

			var dist float64
			dist = g.Left() - prev.Right()

			appendToChunk := !acrossBarrier && sameLineAfterFlush(state) &&
				((dist < 0 && current.Bounds.VerticallyOverlaps(g.Bounds)) || dist < ws)

			if appendToChunk {
				current.Append(g)
			} else {
				flush()
				current = NewChunk(g)
			}

			if !math.IsNaN(ws) && ws > 0 {
				state.lastWordSpacing = ws
				state.haveWordSpacing = true
			}
		} else {
			current = NewChunk(g)
		}

		if !state.hasBand {
			state.band = g.Bounds
			state.hasBand = true
		} else {
			state.band = state.band.Union(g.Bounds)
		}

		if g.Text != "" && len([]rune(g.Text)) > 0 {
			state.avgCharWidth = runningAverage(state.avgCharWidth, state.charCount, g.Bounds.Width/float64(len([]rune(g.Text))))
			state.charCount++
		}

		state.lastFont = g.FontHandle
		state.lastFontSize = g.FontSize
		prev = g
		havePrev = true
	}
	flush()

	for _, c := range chunks {
		c.reorderForDirection()
	}

	return chunks
}

func sameLineAfterFlush(state *lineState) bool {
	return state.hasBand
}

func endsWithSpace(c *Chunk) bool {
	if c == nil || len(c.Glyphs) == 0 {
		return false
	}
	return c.Glyphs[len(c.Glyphs)-1].IsSpace()
}

func runningAverage(avg float64, n int, next float64) float64 {
	if n == 0 {
		return next
	}
	return (avg*float64(n) + next) / float64(n+1)
}

// crossesBarrier reports whether any vertical ruling in barriers lies
// strictly between prev and g on the x axis while vertically overlapping
// both glyphs.
func crossesBarrier(prev, g Glyph, barriers []ruling.Ruling) bool {
	lo := math.Min(prev.Right(), g.Left())
	hi := math.Max(prev.Right(), g.Left())
	for _, b := range barriers {
		if !b.IsVertical() {
			continue
		}
		x := b.Position()
		if x <= lo || x >= hi {
			continue
		}
		br := b.Rectangle()
		// Vertical rulings are zero-width; compare against the glyph
		// bands directly rather than through Rectangle.Intersects (which
		// requires positive overlap on both axes).
		span := geom.NewRectangle(br.Top, x-0.5, 1, br.Height)
		if span.VerticallyOverlaps(prev.Bounds) && span.VerticallyOverlaps(g.Bounds) {
			return true
		}
	}
	return false
}
