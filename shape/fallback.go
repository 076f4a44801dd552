package shape

import (
	"github.com/gogpu/textlayout/layout"
	"github.com/gogpu/textlayout/script"
)

// Fallback lays text out codepoint by codepoint, in logical order and left
// to right, using only the font's glyph metrics and kerning. The zero value
// is ready to use.
type Fallback struct{}

// Shape implements Shaper. The paragraph's segments are ignored.
func (Fallback) Shape(req *Request) layout.ShapedTextParagraph {
	w := newPen(req)
	content := req.Text[req.Paragraph.Start:req.Paragraph.End]

	var l script.Locator
	l.Load(content)
	scripts := make([]script.Script, len(content))
	for r := range l.Runs() {
		for i := r.Offset; i < r.Offset+r.Length; i++ {
			scripts[i] = r.Script
		}
	}

	var prev rune
	for i, r := range content {
		idx := req.Paragraph.Start + i
		switch r {
		case '\r':
			prev = 0
			continue
		case '\t':
			w.tab(req.Font, idx, layout.DirectionLTR, scripts[i])
			prev = 0
			continue
		}

		if !req.NoKerning {
			w.pos.X += req.Font.Kerning(prev, r, req.Style)
		}
		prev = r

		g := req.Font.Glyph(r, req.Style)
		f := g.Font
		if f == nil {
			f = req.Font
		}
		w.p.Glyphs = append(w.p.Glyphs, layout.ShapedGlyph{
			Font:        f,
			GlyphIndex:  f.GlyphIndex(r),
			StringIndex: idx,
			Position:    w.pos,
			Advance:     layout.Vec2{X: g.Advance},
			Direction:   layout.DirectionLTR,
			Script:      scripts[i],
		})
		w.pos.X += g.Advance
	}
	return w.finish(false)
}

var (
	_ Shaper = (*Engine)(nil)
	_ Shaper = Fallback{}
)

