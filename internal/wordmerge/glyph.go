// Package wordmerge groups a page's positioned glyphs into chunks (words)
// and lines, and infers column boundaries when no ruling lines are
// present to define them.
//
// Grounded in the expected-gap approach tabula-java and its Go ports use:
// a glyph starts a new chunk once the gap to the previous glyph exceeds
// an expected inter-character or inter-word spacing derived from the
// font's own space-width hint, not a single fixed threshold.
package wordmerge

import (
	"math"
	"unicode"

	"github.com/coregx/tabulon/internal/geom"
)

// Direction is a chunk or glyph's dominant reading direction.
type Direction int

const (
	RTL     Direction = -1
	Neutral Direction = 0
	LTR     Direction = 1
)

// Glyph is a single positioned character, immutable after construction.
type Glyph struct {
	Bounds       geom.Rectangle
	Text         string // typically one grapheme
	FontHandle   string // opaque font identity
	FontSize     float64
	WidthOfSpace float64 // hint for this glyph's font/size; NaN or 0 if unknown
	Dir          Direction
}

// Right, Left, Top, Bottom forward to Bounds for readability at call sites.
func (g Glyph) Right() float64  { return g.Bounds.Right() }
func (g Glyph) Left() float64   { return g.Bounds.Left }
func (g Glyph) Top() float64    { return g.Bounds.Top }
func (g Glyph) Bottom() float64 { return g.Bounds.Bottom() }

// IsSpace reports whether g is whitespace-only text.
func (g Glyph) IsSpace() bool {
	if g.Text == "" {
		return false
	}
	for _, r := range g.Text {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// syntheticSpace builds a space glyph of the given height inserted between two
// words whose expected gap indicates a word break the decoder didn't
// emit an explicit space for.
func syntheticSpace(afterRight, width, top, height float64) Glyph {
	return Glyph{
		Bounds: geom.NewRectangle(top, afterRight, width, height),
		Text:   " ",
		Dir:    Neutral,
	}
}

// Chunk is an ordered run of glyphs recognized as one visual word.
type Chunk struct {
	Glyphs []Glyph
	Bounds geom.Rectangle
}

// NewChunk starts a chunk from a single glyph.
func NewChunk(g Glyph) *Chunk {
	return &Chunk{Glyphs: []Glyph{g}, Bounds: g.Bounds}
}

// Append adds g to the end of the chunk and expands Bounds.
func (c *Chunk) Append(g Glyph) {
	c.Glyphs = append(c.Glyphs, g)
	c.Bounds = c.Bounds.Union(g.Bounds)
}

// Text concatenates the chunk's glyphs in stored order.
func (c *Chunk) Text() string {
	var sb []byte
	for _, g := range c.Glyphs {
		sb = append(sb, g.Text...)
	}
	return string(sb)
}

// IsWhitespace reports whether every glyph in the chunk is whitespace.
func (c *Chunk) IsWhitespace() bool {
	for _, g := range c.Glyphs {
		if !g.IsSpace() {
			return false
		}
	}
	return true
}

// Direction returns the chunk's dominant directionality: counts LTR vs
// RTL glyphs; if RTL is not strictly greater, the chunk is LTR-dominant
// — neutral counts as LTR, and this rule is load-bearing, not a
// simplification: reclassifying neutral runs as RTL would flip the
// reading order of ordinary punctuation-only or digit-only chunks.
func (c *Chunk) Direction() Direction {
	var ltr, rtl int
	for _, g := range c.Glyphs {
		switch g.Dir {
		case RTL:
			rtl++
		case LTR:
			ltr++
		}
	}
	if rtl > ltr {
		return RTL
	}
	return LTR
}

// reorderForDirection reverses an RTL-dominant chunk's glyphs so the
// stored order matches reading order, matching mergeWords' final pass.
func (c *Chunk) reorderForDirection() {
	if c.Direction() != RTL {
		return
	}
	for i, j := 0, len(c.Glyphs)-1; i < j; i, j = i+1, j-1 {
		c.Glyphs[i], c.Glyphs[j] = c.Glyphs[j], c.Glyphs[i]
	}
}

func dedupGlyphs(glyphs []Glyph) []Glyph {
	out := make([]Glyph, 0, len(glyphs))
	for _, g := range glyphs {
		dup := false
		for _, kept := range out {
			if kept.Text == g.Text && kept.Bounds.OverlapRatio(g.Bounds) > 0.5 {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, g)
		}
	}
	return out
}

func isCoincidentSpace(prev, g Glyph) bool {
	return g.IsSpace() && geom.Feq(g.Left(), prev.Left()) && geom.Feq(g.Top(), prev.Top())
}

func minFinite(a, b float64) float64 {
	if math.IsInf(a, 1) {
		return b
	}
	if math.IsInf(b, 1) {
		return a
	}
	return math.Min(a, b)
}
