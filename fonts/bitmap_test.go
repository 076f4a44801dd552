package fonts

import (
	"errors"
	"testing"
)

func TestNewBitmapFont_Nil(t *testing.T) {
	if _, err := NewBitmapFont("nil", nil); !errors.Is(err, ErrNilFace) {
		t.Errorf("NewBitmapFont(nil) error = %v, want ErrNilFace", err)
	}
}

func TestBitmapFont_Metrics(t *testing.T) {
	f := Basic()

	if f.Type() != FontTypeBitmap {
		t.Errorf("Type() = %v, want Bitmap", f.Type())
	}
	if f.ShapingFont() != nil {
		t.Error("bitmap fonts must not be shapeable")
	}

	// Size is ignored by bitmap fonts.
	for _, size := range []float64{8, 16, 64} {
		if got := f.Glyph('a', GlyphStyle{Size: size}).Advance; got != 7 {
			t.Errorf("Glyph('a', size %v).Advance = %v, want 7", size, got)
		}
		if got := f.LineSpacing(size); got != 13 {
			t.Errorf("LineSpacing(%v) = %v, want 13", size, got)
		}
	}

	if got := f.Glyph('a', GlyphStyle{Bold: true}).Advance; got != 8 {
		t.Errorf("bold advance = %v, want 8", got)
	}
}

func TestBitmapFont_GlyphIndex(t *testing.T) {
	f := Basic()

	if got := f.GlyphIndex('a'); got != GlyphIndex('a') {
		t.Errorf("GlyphIndex('a') = %d, want %d", got, 'a')
	}
	if got := f.GlyphIndex(0x4E2D); got != 0 {
		t.Errorf("GlyphIndex(U+4E2D) = %d, want 0", got)
	}
	if got := f.GlyphByIndex(GlyphIndex('W'), GlyphStyle{}).Advance; got != 7 {
		t.Errorf("GlyphByIndex('W').Advance = %v, want 7", got)
	}
	if k := f.Kerning('A', 'V', GlyphStyle{}); k != 0 {
		t.Errorf("Kerning = %v, want 0", k)
	}
}

func TestBitmapFont_DistinctIDs(t *testing.T) {
	if Basic().ID() == Basic().ID() {
		t.Error("each BitmapFont needs its own ID")
	}
}

func TestFontType_String(t *testing.T) {
	tests := []struct {
		t    FontType
		want string
	}{
		{FontTypeTTF, "TTF"},
		{FontTypeBitmap, "Bitmap"},
		{FontType(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("FontType(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}
