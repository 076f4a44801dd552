// Package textlayout shapes Unicode text and lays it out in lines.
//
// # Overview
//
// Given a string, a font and layout parameters, textlayout produces
// positioned glyphs grouped into paragraphs, ready to be drawn without
// further text analysis. The pipeline is:
//
//   - segment: paragraphs at '\n', bidi runs in visual order, script runs
//   - shape: HarfBuzz shaping per run (go-text/typesetting), with font
//     fallback and tab expansion, or a linear fallback shaper
//   - layout: optional word or character wrapping to a pixel width
//   - cache: results are kept in a bounded LRU cache and shared
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/textlayout"
//	    "github.com/gogpu/textlayout/fonts"
//	    "golang.org/x/image/font/gofont/goregular"
//	)
//
//	src, err := fonts.NewSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p := textlayout.DefaultParams()
//	p.Size = 16
//	p.WrapMode = layout.WrapWord
//	p.WrapWidth = 320
//
//	l := textlayout.Layout("Hello, world!", src, p)
//	for _, para := range l.Paragraphs {
//	    for _, g := range para.Glyphs {
//	        draw(g.Font, g.GlyphIndex, g.Position)
//	    }
//	}
//
// # Sharing
//
// A *layout.TextLayout returned by Layout may be handed to many callers at
// once from the cache. It must be treated as read-only.
//
// # Fonts
//
// Fonts implement fonts.Font. fonts.Source wraps a TrueType/OpenType font
// and supports style variants, fallback fonts and an emoji font;
// fonts.BitmapFont wraps a fixed-size golang.org/x/image face and is laid
// out without shaping.
//
// # Logging
//
// textlayout is silent by default. SetLogger installs a log/slog logger for
// the package and all its sub-packages.
package textlayout
