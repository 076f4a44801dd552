// Package layout defines the output of text layout and the line wrapper.
//
// A TextLayout holds one ShapedTextParagraph per hard line break in the
// input. Each paragraph carries its glyphs in visual order, its size after
// wrapping, and WrapInfo with the rune offsets at which its lines start.
//
// Wrap breaks an already shaped paragraph into lines:
//
//	layout.Wrap(&para, runes, layout.WrapOptions{
//	    Mode:       layout.WrapWord,
//	    Width:      320,
//	    LineHeight: 18,
//	})
//
// TabAdvance implements the tab stop rule shared by every shaping path.
package layout
