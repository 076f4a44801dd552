package shape

import "github.com/go-text/typesetting/language"

// Option configures an Engine.
type Option func(*Engine)

// WithLanguage sets the BCP 47 language tag passed to the shaper, which
// selects language-specific glyph forms. The default is "en".
func WithLanguage(tag string) Option {
	return func(e *Engine) {
		if tag != "" {
			e.lang = language.NewLanguage(tag)
		}
	}
}
