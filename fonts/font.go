package fonts

import (
	"sync/atomic"

	gotext "github.com/go-text/typesetting/font"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// FontType identifies the kind of font backing a Font.
type FontType int

const (
	// FontTypeTTF is a scalable TrueType/OpenType font.
	FontTypeTTF FontType = iota
	// FontTypeBitmap is a fixed-size bitmap font. Bitmap fonts are never shaped.
	FontTypeBitmap
)

// String returns the string representation of the font type.
func (t FontType) String() string {
	switch t {
	case FontTypeTTF:
		return "TTF"
	case FontTypeBitmap:
		return "Bitmap"
	default:
		return unknownStr
	}
}

// GlyphIndex is a font-local glyph identifier. It is not a codepoint.
// Index 0 is the font's missing glyph (.notdef).
type GlyphIndex uint32

// GlyphStyle selects the glyph metrics requested from a Font.
type GlyphStyle struct {
	// Size is the character size in pixels.
	Size float64

	// Bold requests the bold face. Fonts without a bold variant embolden
	// synthetically.
	Bold bool

	// Italic requests the italic face.
	Italic bool

	// Outline is the outline thickness in pixels. It grows the glyph bounds.
	Outline float64
}

// Rect represents a rectangle for glyph bounds.
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Glyph holds the metrics of one glyph at one style.
type Glyph struct {
	// Advance is the horizontal distance to the next pen position.
	Advance float64

	// Bounds is the glyph bounding box relative to the pen, y down.
	Bounds Rect

	// Font is the font that actually supplied the glyph. It differs from
	// the queried font when the glyph came from a fallback.
	Font Font
}

// Font is the capability the layout engine consumes. Implementations must
// be safe for concurrent use: many layouts read the same font at once.
type Font interface {
	// ID returns the logical identity of the font. Two distinct fonts never
	// share an ID, even if one is allocated where the other used to live.
	ID() uint64

	// Type reports what kind of font this is.
	Type() FontType

	// Glyph returns the metrics of the glyph mapped to r.
	Glyph(r rune, st GlyphStyle) Glyph

	// GlyphByIndex returns the metrics of the glyph with index gid.
	GlyphByIndex(gid GlyphIndex, st GlyphStyle) Glyph

	// GlyphIndex maps r to a glyph index, 0 when the font has no glyph for r.
	GlyphIndex(r rune) GlyphIndex

	// Kerning returns the pair adjustment between the glyphs of a and b.
	Kerning(a, b rune, st GlyphStyle) float64

	// KerningFromGlyphIndex returns the pair adjustment between two glyphs.
	KerningFromGlyphIndex(a, b GlyphIndex, st GlyphStyle) float64

	// LineSpacing returns the vertical advance between two lines at size.
	LineSpacing(size float64) float64

	// ShapingFont returns the parsed font used by the shaping engine, or nil
	// when the font cannot be shaped.
	ShapingFont() *gotext.Font
}

// Resolver is implemented by fonts that select another font for runes
// they do not cover.
type Resolver interface {
	// ResolveFont returns the font that supplies the glyph for r.
	// It never returns nil.
	ResolveFont(r rune) Font
}

// Styler is implemented by fonts that carry style variants.
type Styler interface {
	// ForStyle returns the variant font for st and the style that is left
	// for that variant to synthesize.
	ForStyle(st GlyphStyle) (Font, GlyphStyle)
}

// Resolve returns the font supplying r, consulting f's Resolver if any.
func Resolve(f Font, r rune) Font {
	if res, ok := f.(Resolver); ok {
		if rf := res.ResolveFont(r); rf != nil {
			return rf
		}
	}
	return f
}

// Styled returns the variant of f for st, consulting f's Styler if any.
// Glyph indices obtained from the returned font are only meaningful to
// that font.
func Styled(f Font, st GlyphStyle) (Font, GlyphStyle) {
	if s, ok := f.(Styler); ok {
		return s.ForStyle(st)
	}
	return f, st
}

// boldAdvance is the extra advance of a synthetically emboldened glyph.
const boldAdvance = 1

// nextID hands out logical font identities.
var nextID atomic.Uint64

func newID() uint64 {
	return nextID.Add(1)
}
