package fonts

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlayout/fonts/emoji"
	"github.com/gogpu/textlayout/internal/logging"
)

// Source is a scalable TrueType/OpenType font.
//
// Metrics, advances and kerning come from golang.org/x/image/font/sfnt;
// shaping uses the same data parsed by go-text/typesetting. A Source is
// immutable after creation and safe for concurrent use. It must not be
// copied after creation.
type Source struct {
	// addr is used for copy protection.
	// It must point to the Source itself.
	addr *Source

	id        uint64
	name      string
	sfnt      *sfnt.Font
	shaping   *gotext.Font
	monospace bool
	config    sourceConfig

	// mu protects glyphs.
	mu     sync.RWMutex
	glyphs map[glyphKey]Glyph
}

// glyphKey identifies cached glyph metrics.
type glyphKey struct {
	gid     GlyphIndex
	ppem    fixed.Int26_6
	bold    bool
	outline uint64
}

// NewSource creates a Source from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewSource(data []byte, opts ...SourceOption) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	sf, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, &ParseError{Backend: "sfnt", Err: err}
	}

	// ParseTTF returns a Face which embeds the thread-safe Font.
	face, err := gotext.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, &ParseError{Backend: "go-text", Err: err}
	}

	s := &Source{
		id:      newID(),
		sfnt:    sf,
		shaping: face.Font,
		config:  config,
		glyphs:  make(map[glyphKey]Glyph),
	}
	s.addr = s
	s.name = familyName(sf)
	s.monospace = s.detectMonospace()

	logging.Logger().Debug("fonts: source loaded",
		"name", s.name, "id", s.id, "glyphs", sf.NumGlyphs(), "monospace", s.monospace)

	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string, opts ...SourceOption) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to read font file: %w", err)
	}

	return NewSource(data, opts...)
}

// ID implements Font.ID.
func (s *Source) ID() uint64 {
	s.copyCheck()
	return s.id
}

// Type implements Font.Type.
func (s *Source) Type() FontType {
	return FontTypeTTF
}

// Name returns the font family name.
func (s *Source) Name() string {
	return s.name
}

// IsMonospace reports whether all sampled glyphs share one advance.
// Monospace fonts are never kerned.
func (s *Source) IsMonospace() bool {
	return s.monospace
}

// ShapingFont implements Font.ShapingFont.
func (s *Source) ShapingFont() *gotext.Font {
	return s.shaping
}

// ForStyle implements Styler. It returns the registered variant for st,
// with the part of st the variant provides cleared.
func (s *Source) ForStyle(st GlyphStyle) (Font, GlyphStyle) {
	c := &s.config
	switch {
	case st.Bold && st.Italic && c.boldItalic != nil:
		st.Bold, st.Italic = false, false
		return c.boldItalic, st
	case st.Bold && c.bold != nil:
		st.Bold = false
		return c.bold, st
	case st.Italic && c.italic != nil:
		st.Italic = false
		return c.italic, st
	}
	return s, st
}

// ResolveFont implements Resolver. Emoji presentation runes prefer the
// emoji font; runes the source lacks go to the first fallback covering
// them. Runes nobody covers stay on the source and render as .notdef.
func (s *Source) ResolveFont(r rune) Font {
	if e := s.config.emoji; e != nil && emoji.IsEmojiPresentation(r) && e.GlyphIndex(r) != 0 {
		return e
	}
	if s.GlyphIndex(r) != 0 {
		return s
	}
	for _, f := range s.config.fallbacks {
		if f.GlyphIndex(r) != 0 {
			return f
		}
	}
	return s
}

// GlyphIndex implements Font.GlyphIndex.
func (s *Source) GlyphIndex(r rune) GlyphIndex {
	var buf sfnt.Buffer
	idx, err := s.sfnt.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return GlyphIndex(idx)
}

// Glyph implements Font.Glyph.
func (s *Source) Glyph(r rune, st GlyphStyle) Glyph {
	if f := s.ResolveFont(r); f != Font(s) {
		return f.Glyph(r, st)
	}
	if v, vst := s.ForStyle(st); v != Font(s) {
		return v.Glyph(r, vst)
	}
	return s.glyph(s.GlyphIndex(r), st)
}

// GlyphByIndex implements Font.GlyphByIndex. When st selects a variant,
// gid is interpreted in the variant's glyph space.
func (s *Source) GlyphByIndex(gid GlyphIndex, st GlyphStyle) Glyph {
	if v, vst := s.ForStyle(st); v != Font(s) {
		return v.GlyphByIndex(gid, vst)
	}
	return s.glyph(gid, st)
}

// Kerning implements Font.Kerning. Kerning is zero when either rune is 0,
// for monospace fonts, and between glyphs that come from different fonts.
func (s *Source) Kerning(a, b rune, st GlyphStyle) float64 {
	if a == 0 || b == 0 || s.monospace {
		return 0
	}
	fa, fb := s.ResolveFont(a), s.ResolveFont(b)
	if fa != fb {
		return 0
	}
	if fa != Font(s) {
		return fa.Kerning(a, b, st)
	}
	if v, vst := s.ForStyle(st); v != Font(s) {
		return v.Kerning(a, b, vst)
	}
	return s.kern(s.GlyphIndex(a), s.GlyphIndex(b), st)
}

// KerningFromGlyphIndex implements Font.KerningFromGlyphIndex.
func (s *Source) KerningFromGlyphIndex(a, b GlyphIndex, st GlyphStyle) float64 {
	if a == 0 || b == 0 || s.monospace {
		return 0
	}
	if v, vst := s.ForStyle(st); v != Font(s) {
		return v.KerningFromGlyphIndex(a, b, vst)
	}
	return s.kern(a, b, st)
}

// LineSpacing implements Font.LineSpacing.
func (s *Source) LineSpacing(size float64) float64 {
	var buf sfnt.Buffer
	m, err := s.sfnt.Metrics(&buf, toPPEM(size), s.config.hinting)
	if err != nil {
		return math.Ceil(size)
	}
	return fixedToFloat(m.Height)
}

// Metrics returns the ascent, descent and line height at size.
func (s *Source) Metrics(size float64) xfont.Metrics {
	var buf sfnt.Buffer
	m, err := s.sfnt.Metrics(&buf, toPPEM(size), s.config.hinting)
	if err != nil {
		return xfont.Metrics{}
	}
	return m
}

func (s *Source) glyph(gid GlyphIndex, st GlyphStyle) Glyph {
	ppem := toPPEM(st.Size)
	key := glyphKey{gid: gid, ppem: ppem, bold: st.Bold, outline: math.Float64bits(st.Outline)}

	s.mu.RLock()
	g, ok := s.glyphs[key]
	s.mu.RUnlock()
	if ok {
		return g
	}

	g = s.loadGlyph(gid, ppem, st)

	if limit := s.config.cacheLimit; limit > 0 {
		s.mu.Lock()
		if len(s.glyphs) >= limit {
			clear(s.glyphs)
		}
		s.glyphs[key] = g
		s.mu.Unlock()
	}
	return g
}

func (s *Source) loadGlyph(gid GlyphIndex, ppem fixed.Int26_6, st GlyphStyle) Glyph {
	var buf sfnt.Buffer
	g := Glyph{Font: s}

	bounds, advance, err := s.sfnt.GlyphBounds(&buf, sfnt.GlyphIndex(gid), ppem, s.config.hinting)
	if err != nil {
		logging.Logger().Debug("fonts: glyph bounds unavailable", "font", s.name, "gid", gid, "err", err)
		adv, aerr := s.sfnt.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), ppem, s.config.hinting)
		if aerr != nil {
			return g
		}
		advance = adv
	} else {
		g.Bounds = Rect{
			MinX: fixedToFloat(bounds.Min.X),
			MinY: fixedToFloat(bounds.Min.Y),
			MaxX: fixedToFloat(bounds.Max.X),
			MaxY: fixedToFloat(bounds.Max.Y),
		}
	}
	g.Advance = fixedToFloat(advance)

	if st.Bold {
		g.Advance += boldAdvance
		g.Bounds.MaxX += boldAdvance
	}
	if st.Outline > 0 {
		g.Bounds.MinX -= st.Outline
		g.Bounds.MinY -= st.Outline
		g.Bounds.MaxX += st.Outline
		g.Bounds.MaxY += st.Outline
	}
	return g
}

func (s *Source) kern(a, b GlyphIndex, st GlyphStyle) float64 {
	var buf sfnt.Buffer
	k, err := s.sfnt.Kern(&buf, sfnt.GlyphIndex(a), sfnt.GlyphIndex(b), toPPEM(st.Size), s.config.hinting)
	if err != nil {
		return 0
	}
	return fixedToFloat(k)
}

// detectMonospace compares the unscaled advances of a narrow and a wide
// glyph.
func (s *Source) detectMonospace() bool {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(s.sfnt.UnitsPerEm())
	var first fixed.Int26_6
	for i, r := range []rune{'i', 'm', 'W', '.'} {
		gid, err := s.sfnt.GlyphIndex(&buf, r)
		if err != nil || gid == 0 {
			return false
		}
		adv, err := s.sfnt.GlyphAdvance(&buf, gid, ppem, xfont.HintingNone)
		if err != nil {
			return false
		}
		if i == 0 {
			first = adv
		} else if adv != first {
			return false
		}
	}
	return true
}

// copyCheck panics if Source was copied by value.
func (s *Source) copyCheck() {
	if s.addr != s {
		panic("fonts: Source must not be copied by value")
	}
}

// familyName extracts the font family name.
func familyName(f *sfnt.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

// toPPEM converts a pixel size to the 26.6 pixels-per-em sfnt expects.
func toPPEM(size float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(size * 64))
}

// fixedToFloat converts fixed.Int26_6 to float64.
func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
