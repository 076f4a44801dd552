package shape

import (
	"github.com/gogpu/textlayout/fonts"
	"github.com/gogpu/textlayout/layout"
	"github.com/gogpu/textlayout/script"
	"github.com/gogpu/textlayout/segment"
)

// Shaper converts one segmented paragraph into positioned glyphs.
//
// Implementations must be safe for concurrent use. Glyph positions are
// relative to the paragraph origin; the paragraph is not wrapped.
type Shaper interface {
	Shape(req *Request) layout.ShapedTextParagraph
}

// Request describes a paragraph to shape.
type Request struct {
	// Text is the full text. Glyph StringIndex values index into it.
	Text []rune

	// Paragraph selects the part of Text to shape and its runs.
	Paragraph segment.Paragraph

	// Font is the primary font. Runes it lacks are resolved through it
	// when it implements fonts.Resolver.
	Font fonts.Font

	// Style carries the size and the style flags of every glyph.
	Style fonts.GlyphStyle

	// TabWidth is the tab stop distance in spaces.
	TabWidth int

	// TabOffset is added to the pen x before computing tab stops.
	TabOffset float64

	// NoKerning disables pair kerning.
	NoKerning bool
}

// pen tracks the state shared by the shaping paths while walking a
// paragraph.
type pen struct {
	req    *Request
	p      layout.ShapedTextParagraph
	pos    layout.Vec2
	hspace float64
}

func newPen(req *Request) *pen {
	w := &pen{req: req}
	w.p = layout.ShapedTextParagraph{
		Start:    req.Paragraph.Start,
		End:      req.Paragraph.End,
		WrapInfo: layout.WrapInfo{Wraps: []int{req.Paragraph.Start}},
	}
	w.hspace = req.Font.Glyph(' ', req.Style).Advance
	w.p.Glyphs = make([]layout.ShapedGlyph, 0, req.Paragraph.End-req.Paragraph.Start)
	return w
}

// tab emits the synthetic glyph of a tab at text index idx and returns its
// advance.
func (w *pen) tab(f fonts.Font, idx int, dir layout.Direction, sc script.Script) float64 {
	from := w.pos.X
	if dir.IsVertical() {
		from = w.pos.Y
	}
	adv := layout.TabAdvance(w.hspace, w.req.TabWidth, from+w.req.TabOffset)

	g := layout.ShapedGlyph{
		Font:        f,
		GlyphIndex:  f.GlyphIndex(' '),
		StringIndex: idx,
		Position:    w.pos,
		Direction:   dir,
		Script:      sc,
	}
	if dir.IsVertical() {
		g.Advance = layout.Vec2{Y: adv}
		w.pos.Y += adv
	} else {
		g.Advance = layout.Vec2{X: adv}
		w.pos.X += adv
	}
	w.p.Glyphs = append(w.p.Glyphs, g)
	return adv
}

// finish sets the unwrapped paragraph size and returns the paragraph.
func (w *pen) finish(vertical bool) layout.ShapedTextParagraph {
	lh := w.req.Font.LineSpacing(w.req.Style.Size)
	if vertical {
		w.p.Size = layout.Vec2{X: lh, Y: w.pos.Y}
	} else {
		w.p.Size = layout.Vec2{X: w.pos.X, Y: lh}
	}
	return w.p
}
