// Package shape turns segmented paragraphs into positioned glyphs.
//
// Engine shapes every run with the HarfBuzz port of go-text/typesetting.
// For simple scripts it disables the shaper's kerning and ligatures and
// computes advances from the font's own metrics and kerning, so plain
// Latin text comes out exactly as the Fallback shaper lays it out. Complex
// scripts keep the shaper's advances and offsets.
//
// Fallback walks codepoints in logical order without a shaping engine. It
// is used for bitmap fonts and when shaping is switched off.
//
// Both shapers expand tabs to the next tab stop with layout.TabAdvance and
// emit no glyph for '\r'.
package shape
