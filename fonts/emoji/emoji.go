// Package emoji classifies emoji codepoints.
//
// The layout engine uses it to decide which runes take their advance from
// the font's own glyph metrics instead of the shaper, and fonts use it to
// route emoji presentation runes to an emoji font.
package emoji

// IsEmoji reports whether r is an emoji codepoint, either with default
// emoji presentation or a symbol commonly rendered as emoji.
// ASCII digits, '#' and '*' are not emoji on their own.
func IsEmoji(r rune) bool {
	return IsEmojiPresentation(r) || isTextPresentationEmoji(r)
}

// IsEmojiPresentation reports whether r defaults to emoji presentation,
// i.e. it displays as emoji without U+FE0F.
func IsEmojiPresentation(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F: // Emoticons
		return true
	case r >= 0x1F300 && r <= 0x1F5FF: // Miscellaneous Symbols and Pictographs
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // Transport and Map Symbols
		return true
	case r >= 0x1F900 && r <= 0x1FAFF: // Supplemental Symbols, Extended-A/B
		return true
	case IsModifier(r), IsRegionalIndicator(r):
		return true
	case r >= 0x1F000 && r <= 0x1F02F: // Mahjong tiles
		return true
	case r >= 0x1F0A0 && r <= 0x1F0FF: // Playing cards
		return true
	default:
		return false
	}
}

// isTextPresentationEmoji reports runes that are emoji but default to text
// presentation (Emoji=Yes, Emoji_Presentation=No).
func isTextPresentationEmoji(r rune) bool {
	switch {
	case r >= 0x2600 && r <= 0x26FF: // Miscellaneous Symbols
		return true
	case r >= 0x2702 && r <= 0x27B0: // Dingbats
		return true
	case r >= 0x2194 && r <= 0x2199, r == 0x21A9, r == 0x21AA:
		return true
	case r == 0x203C, r == 0x2049, r == 0x2139, r == 0x24C2:
		return true
	case r >= 0x2B05 && r <= 0x2B07, r == 0x2B1B, r == 0x2B1C, r == 0x2B50, r == 0x2B55:
		return true
	case r == 0x00A9, r == 0x00AE, r == 0x2122:
		return true
	default:
		return false
	}
}

// IsModifier reports whether r is a Fitzpatrick skin tone modifier
// (U+1F3FB..U+1F3FF).
func IsModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

// IsRegionalIndicator reports whether r is a Regional Indicator symbol.
// Two of them form a flag.
func IsRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// IsZWJ reports whether r is the Zero-Width Joiner (U+200D).
func IsZWJ(r rune) bool {
	return r == 0x200D
}

// IsVariationSelector reports U+FE0E (text) and U+FE0F (emoji) selectors.
func IsVariationSelector(r rune) bool {
	return r == 0xFE0E || r == 0xFE0F
}

// IsSequencePart reports runes that only make sense inside an emoji
// sequence: joiners, selectors, modifiers, the keycap mark and tags.
func IsSequencePart(r rune) bool {
	return IsZWJ(r) || IsVariationSelector(r) || IsModifier(r) ||
		r == 0x20E3 || (r >= 0xE0020 && r <= 0xE007F)
}
