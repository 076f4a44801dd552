package fonts

import xfont "golang.org/x/image/font"

// SourceOption configures Source creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for Source.
type sourceConfig struct {
	bold       Font
	italic     Font
	boldItalic Font
	fallbacks  []Font
	emoji      Font
	hinting    xfont.Hinting
	cacheLimit int
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		hinting:    xfont.HintingFull,
		cacheLimit: 4096,
	}
}

// WithBold registers the font used for bold glyphs. Without it, bold
// glyphs are emboldened synthetically.
func WithBold(f Font) SourceOption {
	return func(c *sourceConfig) {
		c.bold = f
	}
}

// WithItalic registers the font used for italic glyphs.
func WithItalic(f Font) SourceOption {
	return func(c *sourceConfig) {
		c.italic = f
	}
}

// WithBoldItalic registers the font used for glyphs that are both bold
// and italic.
func WithBoldItalic(f Font) SourceOption {
	return func(c *sourceConfig) {
		c.boldItalic = f
	}
}

// WithFallback appends fonts consulted, in order, for runes the source
// does not cover.
func WithFallback(fonts ...Font) SourceOption {
	return func(c *sourceConfig) {
		c.fallbacks = append(c.fallbacks, fonts...)
	}
}

// WithEmojiFont sets the font preferred for emoji presentation runes.
func WithEmojiFont(f Font) SourceOption {
	return func(c *sourceConfig) {
		c.emoji = f
	}
}

// WithHinting sets the hinting used for advances and metrics.
// The default is font.HintingFull, which keeps advances on whole pixels.
func WithHinting(h xfont.Hinting) SourceOption {
	return func(c *sourceConfig) {
		c.hinting = h
	}
}

// WithGlyphCacheLimit sets the maximum number of cached glyph metrics.
// A value of 0 disables the cache.
func WithGlyphCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}
