package fonts

import "errors"

// Sentinel errors for fonts package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fonts: empty font data")

	// ErrNilFace is returned when a bitmap font is created without a face.
	ErrNilFace = errors.New("fonts: face cannot be nil")
)

// ParseError is returned when a font backend rejects the font data.
type ParseError struct {
	// Backend names the parser that failed ("sfnt" or "go-text").
	Backend string
	Err     error
}

func (e *ParseError) Error() string {
	return "fonts: " + e.Backend + ": failed to parse font: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
