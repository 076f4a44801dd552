// Package fonts provides the font capability consumed by the layout engine.
//
// A Font answers glyph lookups by codepoint and by glyph index, advances,
// kerning and line metrics. Two implementations are provided:
//
//   - Source: a scalable TrueType/OpenType font. Metrics come from
//     golang.org/x/image/font/sfnt, shaping data from go-text/typesetting.
//     A Source can carry bold/italic variants, a fallback chain and an
//     emoji font.
//   - BitmapFont: a fixed-size golang.org/x/image/font.Face. Bitmap fonts
//     are never shaped; the layout engine lays them out linearly.
//
// # Example usage
//
//	src, err := fonts.NewSourceFromFile("NotoSans-Regular.ttf",
//	    fonts.WithFallback(cjk), fonts.WithEmojiFont(emoji))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g := src.Glyph('A', fonts.GlyphStyle{Size: 16})
//
// Every Font has a logical ID handed out at creation. Layout caches key on
// it, so a font created later never aliases a cached layout of an earlier
// one.
package fonts
