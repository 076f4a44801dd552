package layout

import (
	"github.com/gogpu/textlayout/fonts"
	"github.com/gogpu/textlayout/script"
)

// ShapedGlyph is a positioned glyph ready for rendering.
type ShapedGlyph struct {
	// Font is the font that supplies the glyph. Under fallback it differs
	// from glyph to glyph. The layout never owns or closes it.
	Font fonts.Font

	// GlyphIndex is the glyph in Font. It is not a codepoint.
	GlyphIndex fonts.GlyphIndex

	// StringIndex is the rune offset, in the laid out string, of the first
	// rune this glyph renders. Ligature components share one index.
	StringIndex int

	// Position is the pen-relative top-left origin of the glyph's line,
	// with any shaper offset applied.
	Position Vec2

	// Advance is the pen movement after this glyph. Y is non-zero only for
	// vertical text and some complex scripts.
	Advance Vec2

	// Direction is the resolved direction of the run.
	Direction Direction

	// Script is the script of the run.
	Script script.Script
}

// WrapInfo records where the lines of a paragraph start.
type WrapInfo struct {
	// Wraps holds the rune offset of the first rune of every line: the
	// paragraph start followed by every soft break, in line order.
	Wraps []int

	// PaddingStart is the x at which wrapped continuation lines start.
	PaddingStart float64
}

// ShapedTextParagraph is the text between two hard line breaks.
type ShapedTextParagraph struct {
	// Glyphs are in visual emission order: left to right, top to bottom.
	Glyphs []ShapedGlyph

	// Size is the paragraph's bounding box after wrapping.
	Size Vec2

	WrapInfo WrapInfo

	// Start and End delimit the paragraph content in runes, excluding the
	// trailing line break.
	Start, End int
}

// Lines returns the number of visual lines of the paragraph.
func (p *ShapedTextParagraph) Lines() int {
	if len(p.WrapInfo.Wraps) == 0 {
		return 1
	}
	return len(p.WrapInfo.Wraps)
}

// TextLayout is the result of laying out a string.
//
// A TextLayout returned by the engine is shared: the same pointer may be
// handed to many callers from the layout cache. It must be treated as
// read-only.
type TextLayout struct {
	Paragraphs []ShapedTextParagraph

	// Size is the widest paragraph by the total height.
	Size Vec2

	// Direction is the resolved base direction of the first paragraph.
	Direction Direction

	// HasMixedDirection reports that runs of more than one direction occur.
	HasMixedDirection bool
}

// LinesWidth returns the width of every paragraph, in order.
func (l *TextLayout) LinesWidth() []float64 {
	widths := make([]float64, len(l.Paragraphs))
	for i := range l.Paragraphs {
		widths[i] = l.Paragraphs[i].Size.X
	}
	return widths
}

// GlyphCount returns the number of glyphs across all paragraphs.
func (l *TextLayout) GlyphCount() int {
	n := 0
	for i := range l.Paragraphs {
		n += len(l.Paragraphs[i].Glyphs)
	}
	return n
}

// Lines returns the number of visual lines, soft wraps included.
func (l *TextLayout) Lines() int {
	n := 0
	for i := range l.Paragraphs {
		n += l.Paragraphs[i].Lines()
	}
	return n
}

// Empty returns a layout with a single empty paragraph one line tall.
func Empty(lineHeight float64, dir Direction) *TextLayout {
	if dir == DirectionUnspecified {
		dir = DirectionLTR
	}
	return &TextLayout{
		Paragraphs: []ShapedTextParagraph{{
			Size:     Vec2{0, lineHeight},
			WrapInfo: WrapInfo{Wraps: []int{0}},
		}},
		Size:      Vec2{0, lineHeight},
		Direction: dir,
	}
}
