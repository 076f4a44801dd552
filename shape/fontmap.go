package shape

import (
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/textlayout/fonts"
)

// faceEntry is the font, and the style left for it to synthesize, behind a
// go-text face.
type faceEntry struct {
	font  fonts.Font
	style fonts.GlyphStyle
}

// fontmap implements shaping.Fontmap over a fonts.Font and its fallback
// resolver. Faces are created per shaping call because go-text faces are
// not safe for concurrent use; the parsed fonts behind them are shared.
type fontmap struct {
	base  fonts.Font
	style fonts.GlyphStyle

	primary *gotext.Face
	faces   map[*gotext.Font]*gotext.Face
	entries map[*gotext.Face]faceEntry
}

var _ shaping.Fontmap = (*fontmap)(nil)

// newFontmap returns a fontmap for base, whose styled variant or base
// itself must be shapeable.
func newFontmap(base fonts.Font, st fonts.GlyphStyle) *fontmap {
	m := &fontmap{
		base:    base,
		style:   st,
		faces:   make(map[*gotext.Font]*gotext.Face, 2),
		entries: make(map[*gotext.Face]faceEntry, 2),
	}
	v, vst := fonts.Styled(base, st)
	if v.ShapingFont() == nil {
		v, vst = base, st
	}
	m.primary = m.add(v, vst)
	return m
}

// ResolveFace implements shaping.Fontmap. Runes resolved to a font that
// cannot be shaped stay on the primary face.
func (m *fontmap) ResolveFace(r rune) *gotext.Face {
	f, st := fonts.Styled(fonts.Resolve(m.base, r), m.style)
	if f.ShapingFont() == nil {
		return m.primary
	}
	return m.add(f, st)
}

func (m *fontmap) add(f fonts.Font, st fonts.GlyphStyle) *gotext.Face {
	sf := f.ShapingFont()
	if face, ok := m.faces[sf]; ok {
		return face
	}
	face := gotext.NewFace(sf)
	m.faces[sf] = face
	m.entries[face] = faceEntry{font: f, style: st}
	return face
}

// entry returns the font behind face.
func (m *fontmap) entry(face *gotext.Face) faceEntry {
	if e, ok := m.entries[face]; ok {
		return e
	}
	return m.entries[m.primary]
}
