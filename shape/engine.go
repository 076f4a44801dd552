package shape

import (
	"math"
	"sync"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/textlayout/fonts"
	"github.com/gogpu/textlayout/fonts/emoji"
	"github.com/gogpu/textlayout/internal/logging"
	"github.com/gogpu/textlayout/layout"
	"github.com/gogpu/textlayout/segment"
)

// Features toggled by script simplicity.
var (
	simpleFeatures  = scriptFeatures(0)
	complexFeatures = scriptFeatures(1)
)

func scriptFeatures(v uint32) []shaping.FontFeature {
	return []shaping.FontFeature{
		{Tag: ot.MustNewTag("kern"), Value: v},
		{Tag: ot.MustNewTag("liga"), Value: v},
		{Tag: ot.MustNewTag("clig"), Value: v},
		{Tag: ot.MustNewTag("dlig"), Value: v},
	}
}

// Engine shapes text with go-text/typesetting's HarfBuzz port.
//
// Engine is safe for concurrent use. The HarfbuzzShaper instances are
// pooled since each holds a mutable buffer; a shaper is checked out for one
// run and returned right after.
type Engine struct {
	shaperPool sync.Pool
	lang       language.Language
	fallback   Fallback
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		lang: language.NewLanguage("en"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Shape implements Shaper. Paragraphs in a font that cannot be shaped are
// laid out by the Fallback shaper.
func (e *Engine) Shape(req *Request) layout.ShapedTextParagraph {
	if req.Font.ShapingFont() == nil {
		logging.Logger().Debug("shape: font not shapeable, using fallback",
			"font", req.Font.ID(), "type", req.Font.Type())
		return e.fallback.Shape(req)
	}

	s := &engineRun{
		Engine: e,
		pen:    newPen(req),
		fm:     newFontmap(req.Font, req.Style),
	}
	vertical := req.Paragraph.Direction.IsVertical()
	for _, seg := range req.Paragraph.Segments {
		s.shapeSegment(seg)
	}
	return s.finish(vertical)
}

// engineRun is the state of one Engine.Shape call.
type engineRun struct {
	*Engine
	*pen
	fm *fontmap

	// prevGID and prevFont hold the last glyph for kerning; prevGID 0
	// disables kerning of the next glyph.
	prevGID  fonts.GlyphIndex
	prevFont fonts.Font
}

// segmentFeatures returns the shaper features for seg and whether it is
// laid out on the simple path. Vertical text always takes the complex path.
func segmentFeatures(seg segment.Segment) ([]shaping.FontFeature, bool) {
	if seg.Script.IsSimple() && !seg.Direction.IsVertical() {
		return simpleFeatures, true
	}
	return complexFeatures, false
}

func (s *engineRun) shapeSegment(seg segment.Segment) {
	features, simple := segmentFeatures(seg)
	if !simple {
		s.prevGID = 0
	}

	input := shaping.Input{
		Text:         s.req.Text,
		RunStart:     seg.Offset,
		RunEnd:       seg.End(),
		Direction:    mapDirection(seg.Direction),
		FontFeatures: features,
		Size:         floatToFixed(s.req.Style.Size),
		Script:       seg.Script.Language(),
		Language:     s.lang,
	}

	for _, in := range shaping.SplitByFace(input, s.fm) {
		entry := s.fm.entry(in.Face)

		hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
		out := hb.Shape(in)
		s.shaperPool.Put(hb)

		if simple {
			s.simpleGlyphs(out.Glyphs, entry, seg)
		} else {
			s.complexGlyphs(out.Glyphs, entry, seg)
		}
	}
	if !simple {
		s.prevGID = 0
	}
}

// simpleGlyphs places glyphs with the font's own advances and kerning.
func (s *engineRun) simpleGlyphs(glyphs []shaping.Glyph, e faceEntry, seg segment.Segment) {
	for _, g := range glyphs {
		idx := g.TextIndex()
		switch s.req.Text[idx] {
		case '\r':
			s.prevGID = 0
			continue
		case '\t':
			s.tab(e.font, idx, seg.Direction, seg.Script)
			s.prevGID = 0
			continue
		}

		gid := fonts.GlyphIndex(g.GlyphID)
		if !s.req.NoKerning && s.prevGID != 0 && s.prevFont == e.font {
			s.pos.X += e.font.KerningFromGlyphIndex(s.prevGID, gid, e.style)
		}
		adv := e.font.GlyphByIndex(gid, e.style).Advance

		s.p.Glyphs = append(s.p.Glyphs, layout.ShapedGlyph{
			Font:        e.font,
			GlyphIndex:  gid,
			StringIndex: idx,
			Position: layout.Vec2{
				X: s.pos.X + fixedToFloat(g.XOffset),
				Y: s.pos.Y - fixedToFloat(g.YOffset),
			},
			Advance:   layout.Vec2{X: adv},
			Direction: seg.Direction,
			Script:    seg.Script,
		})
		s.pos.X += adv
		s.prevGID, s.prevFont = gid, e.font
	}
}

// complexGlyphs places glyphs with the shaper's advances and offsets.
func (s *engineRun) complexGlyphs(glyphs []shaping.Glyph, e faceEntry, seg segment.Segment) {
	vertical := seg.Direction.IsVertical()
	for _, g := range glyphs {
		idx := g.TextIndex()
		ch := s.req.Text[idx]
		switch ch {
		case '\r':
			continue
		case '\t':
			s.tab(e.font, idx, seg.Direction, seg.Script)
			continue
		}

		gid := fonts.GlyphIndex(g.GlyphID)
		adv := fixedToFloat(g.Advance)
		var advance layout.Vec2
		if vertical {
			// go-text reports vertical advances y-up.
			advance.Y = math.Abs(adv)
		} else {
			advance.X = adv
		}

		s.p.Glyphs = append(s.p.Glyphs, layout.ShapedGlyph{
			Font:        e.font,
			GlyphIndex:  gid,
			StringIndex: idx,
			Position: layout.Vec2{
				X: math.Round(s.pos.X + fixedToFloat(g.XOffset)),
				Y: math.Round(s.pos.Y - fixedToFloat(g.YOffset)),
			},
			Advance:   advance,
			Direction: seg.Direction,
			Script:    seg.Script,
		})

		if !vertical && emoji.IsEmoji(ch) {
			s.pos.X += e.font.GlyphByIndex(gid, e.style).Advance
		} else {
			s.pos.X += advance.X
		}
		s.pos.Y += advance.Y
	}
}
