package textlayout

import (
	"strings"

	"github.com/gogpu/textlayout/fonts"
	"github.com/gogpu/textlayout/layout"
)

// DefaultSize is the character size of DefaultParams, in pixels.
const DefaultSize = 12

// Style is a set of text style flags.
type Style uint32

// Style flags. Bold and Italic select glyphs; the decoration flags only
// take part in the cache key and are drawn by the renderer.
const (
	StyleBold Style = 1 << iota
	StyleItalic
	StyleUnderlined
	StyleStrikeThrough
	StyleShadow

	// StyleRegular is the empty style.
	StyleRegular Style = 0
)

var styleNames = []struct {
	flag Style
	name string
}{
	{StyleBold, "Bold"},
	{StyleItalic, "Italic"},
	{StyleUnderlined, "Underlined"},
	{StyleStrikeThrough, "StrikeThrough"},
	{StyleShadow, "Shadow"},
}

// Has reports whether every flag of f is set in s.
func (s Style) Has(f Style) bool {
	return s&f == f
}

// String returns the set flags joined by "|", or "Regular".
func (s Style) String() string {
	if s == StyleRegular {
		return "Regular"
	}
	var parts []string
	for _, n := range styleNames {
		if s.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return unknownStr
	}
	return strings.Join(parts, "|")
}

// ParseStyle parses a "|" or "," separated list of style names, ignoring
// case. Unknown names are skipped.
func ParseStyle(s string) Style {
	var st Style
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		part = strings.TrimSpace(part)
		for _, n := range styleNames {
			if strings.EqualFold(part, n.name) {
				st |= n.flag
			}
		}
	}
	return st
}

// Hints adjust how a layout is computed.
type Hints uint32

const (
	// HintNoKerning disables pair kerning.
	HintNoKerning Hints = 1 << iota

	// HintSkipShaping lays the text out with the fallback shaper. The
	// result is neither looked up in nor stored into the cache.
	HintSkipShaping

	// HintNoCache shapes normally but bypasses the cache.
	HintNoCache
)

// outputHints are the hints that change the computed layout.
const outputHints = HintNoKerning

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Params holds every input of a layout besides the text and the font.
type Params struct {
	// Size is the character size in pixels.
	Size float64

	Style Style

	// TabWidth is the tab stop distance in spaces. Values <= 0 mean
	// layout.DefaultTabWidth.
	TabWidth int

	// OutlineThickness grows glyph bounds; it does not change advances.
	OutlineThickness float64

	// TabOffset, when set, is added to the pen x before computing tab
	// stops, for text that does not start at the tab origin.
	TabOffset *float64

	Hints Hints

	// BaseDirection is the paragraph direction; DirectionUnspecified
	// detects it from the text.
	BaseDirection layout.Direction

	WrapMode layout.WrapMode

	// WrapWidth is the line width in pixels for WrapWord and WrapChar.
	WrapWidth float64

	// KeepIndentation starts wrapped lines at the indentation of the
	// paragraph.
	KeepIndentation bool

	// InitialXOffset is the x at which the first line starts, shortening
	// the room on that line when wrapping.
	InitialXOffset float64
}

// DefaultParams returns Params for unwrapped regular text of DefaultSize.
func DefaultParams() Params {
	return Params{
		Size:     DefaultSize,
		TabWidth: layout.DefaultTabWidth,
	}
}

// TabOffset returns a pointer to v, for Params.TabOffset.
func TabOffset(v float64) *float64 {
	return &v
}

// wraps reports whether the params request line wrapping.
func (p *Params) wraps() bool {
	return p.WrapMode != layout.WrapNone
}

// normalize resolves defaults and drops settings that cannot change the
// result, so that equivalent params share a cache entry.
func (p *Params) normalize() {
	if p.TabWidth <= 0 {
		p.TabWidth = layout.DefaultTabWidth
	}
	if !p.wraps() {
		p.WrapMode = layout.WrapNone
		p.WrapWidth = 0
		p.KeepIndentation = false
		p.InitialXOffset = 0
	}
}

func (p *Params) glyphStyle() fonts.GlyphStyle {
	return fonts.GlyphStyle{
		Size:    p.Size,
		Bold:    p.Style.Has(StyleBold),
		Italic:  p.Style.Has(StyleItalic),
		Outline: p.OutlineThickness,
	}
}

func (p *Params) tabOffset() float64 {
	if p.TabOffset == nil {
		return 0
	}
	return *p.TabOffset
}
