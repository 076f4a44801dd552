package fonts

import (
	"sync"

	gotext "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// BitmapFont adapts a fixed-size golang.org/x/image/font.Face. Bitmap fonts
// ignore the requested size, never take part in shaping, and use the
// codepoint itself as glyph index.
type BitmapFont struct {
	id   uint64
	name string

	// mu serializes access to face; x/image faces are not safe for
	// concurrent use in general.
	mu   sync.Mutex
	face xfont.Face
}

// NewBitmapFont wraps face. The name is informational.
func NewBitmapFont(name string, face xfont.Face) (*BitmapFont, error) {
	if face == nil {
		return nil, ErrNilFace
	}
	return &BitmapFont{id: newID(), name: name, face: face}, nil
}

// Basic returns a BitmapFont over the 7x13 face of
// golang.org/x/image/font/basicfont. It covers printable ASCII.
func Basic() *BitmapFont {
	f, _ := NewBitmapFont("basicfont 7x13", basicfont.Face7x13)
	return f
}

// ID implements Font.ID.
func (b *BitmapFont) ID() uint64 { return b.id }

// Type implements Font.Type.
func (b *BitmapFont) Type() FontType { return FontTypeBitmap }

// Name returns the name given at creation.
func (b *BitmapFont) Name() string { return b.name }

// ShapingFont implements Font.ShapingFont. Bitmap fonts are not shapeable.
func (b *BitmapFont) ShapingFont() *gotext.Font { return nil }

// GlyphIndex implements Font.GlyphIndex.
func (b *BitmapFont) GlyphIndex(r rune) GlyphIndex {
	if r <= 0 {
		return 0
	}
	b.mu.Lock()
	_, ok := b.face.GlyphAdvance(r)
	b.mu.Unlock()
	if !ok {
		return 0
	}
	return GlyphIndex(r)
}

// Glyph implements Font.Glyph. Missing runes report the face's
// replacement glyph metrics.
func (b *BitmapFont) Glyph(r rune, st GlyphStyle) Glyph {
	b.mu.Lock()
	bounds, advance, _ := b.face.GlyphBounds(r)
	b.mu.Unlock()

	g := Glyph{
		Advance: fixedToFloat(advance),
		Bounds: Rect{
			MinX: fixedToFloat(bounds.Min.X),
			MinY: fixedToFloat(bounds.Min.Y),
			MaxX: fixedToFloat(bounds.Max.X),
			MaxY: fixedToFloat(bounds.Max.Y),
		},
		Font: b,
	}
	if st.Bold {
		g.Advance += boldAdvance
		g.Bounds.MaxX += boldAdvance
	}
	return g
}

// GlyphByIndex implements Font.GlyphByIndex.
func (b *BitmapFont) GlyphByIndex(gid GlyphIndex, st GlyphStyle) Glyph {
	return b.Glyph(rune(gid), st)
}

// Kerning implements Font.Kerning.
func (b *BitmapFont) Kerning(a, c rune, _ GlyphStyle) float64 {
	if a == 0 || c == 0 {
		return 0
	}
	b.mu.Lock()
	k := b.face.Kern(a, c)
	b.mu.Unlock()
	return fixedToFloat(k)
}

// KerningFromGlyphIndex implements Font.KerningFromGlyphIndex.
func (b *BitmapFont) KerningFromGlyphIndex(a, c GlyphIndex, st GlyphStyle) float64 {
	return b.Kerning(rune(a), rune(c), st)
}

// LineSpacing implements Font.LineSpacing. The size is ignored.
func (b *BitmapFont) LineSpacing(float64) float64 {
	b.mu.Lock()
	m := b.face.Metrics()
	b.mu.Unlock()
	return fixedToFloat(m.Height)
}
