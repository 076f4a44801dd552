package fonts

import (
	"errors"
	"sync"
	"testing"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// testSource creates a Source from font data and fails the test on error.
func testSource(t *testing.T, data []byte, opts ...SourceOption) *Source {
	t.Helper()

	src, err := NewSource(data, opts...)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	return src
}

// stubFont is a minimal Font covering a fixed set of runes with a fixed
// advance.
type stubFont struct {
	id      uint64
	advance float64
	runes   map[rune]GlyphIndex
}

func newStubFont(advance float64, runes ...rune) *stubFont {
	f := &stubFont{id: newID(), advance: advance, runes: make(map[rune]GlyphIndex)}
	for i, r := range runes {
		f.runes[r] = GlyphIndex(i + 1)
	}
	return f
}

func (f *stubFont) ID() uint64                   { return f.id }
func (f *stubFont) Type() FontType               { return FontTypeBitmap }
func (f *stubFont) GlyphIndex(r rune) GlyphIndex { return f.runes[r] }
func (f *stubFont) Glyph(rune, GlyphStyle) Glyph { return Glyph{Advance: f.advance, Font: f} }
func (f *stubFont) GlyphByIndex(GlyphIndex, GlyphStyle) Glyph {
	return Glyph{Advance: f.advance, Font: f}
}
func (f *stubFont) Kerning(rune, rune, GlyphStyle) float64                           { return 0 }
func (f *stubFont) KerningFromGlyphIndex(GlyphIndex, GlyphIndex, GlyphStyle) float64 { return 0 }
func (f *stubFont) LineSpacing(size float64) float64                                 { return size }
func (f *stubFont) ShapingFont() *gotext.Font                                        { return nil }

func TestNewSource_Errors(t *testing.T) {
	if _, err := NewSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSource(nil) error = %v, want ErrEmptyFontData", err)
	}

	_, err := NewSource([]byte("definitely not a font"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("NewSource(garbage) error = %v, want *ParseError", err)
	}
	if perr.Backend != "sfnt" {
		t.Errorf("ParseError.Backend = %q, want %q", perr.Backend, "sfnt")
	}
	if perr.Unwrap() == nil {
		t.Error("ParseError.Unwrap() = nil")
	}
}

func TestNewSourceFromFile_Missing(t *testing.T) {
	_, err := NewSourceFromFile(t.TempDir() + "/missing.ttf")
	if err == nil {
		t.Fatal("NewSourceFromFile on a missing file should fail")
	}
}

func TestSource_Identity(t *testing.T) {
	a := testSource(t, goregular.TTF)
	b := testSource(t, goregular.TTF)

	if a.ID() == b.ID() {
		t.Errorf("two sources share ID %d", a.ID())
	}
	if a.Type() != FontTypeTTF {
		t.Errorf("Type() = %v, want TTF", a.Type())
	}
	if a.Name() == "" || a.Name() == "Unknown Font" {
		t.Errorf("Name() = %q, want the family name", a.Name())
	}
	if a.ShapingFont() == nil {
		t.Error("ShapingFont() = nil for a TTF source")
	}
}

func TestSource_GlyphMetrics(t *testing.T) {
	src := testSource(t, goregular.TTF)
	st := GlyphStyle{Size: 16}

	for _, r := range "Hello, World" {
		g := src.Glyph(r, st)
		if r != ' ' && g.Advance <= 0 {
			t.Errorf("Glyph(%q).Advance = %v, want > 0", r, g.Advance)
		}
		if g.Font != Font(src) {
			t.Errorf("Glyph(%q).Font is not the source", r)
		}
		byIndex := src.GlyphByIndex(src.GlyphIndex(r), st)
		if byIndex.Advance != g.Advance {
			t.Errorf("GlyphByIndex(%q) advance %v != Glyph advance %v", r, byIndex.Advance, g.Advance)
		}
	}

	if got := src.GlyphIndex(0x4E2D); got != 0 {
		t.Errorf("GlyphIndex(U+4E2D) = %d, want 0", got)
	}
}

func TestSource_LineSpacing(t *testing.T) {
	src := testSource(t, goregular.TTF)
	small, large := src.LineSpacing(12), src.LineSpacing(24)
	if small < 12 {
		t.Errorf("LineSpacing(12) = %v, want >= 12", small)
	}
	if large <= small {
		t.Errorf("LineSpacing(24) = %v, want > LineSpacing(12) = %v", large, small)
	}
	if m := src.Metrics(12); m.Ascent <= 0 {
		t.Errorf("Metrics(12).Ascent = %v, want > 0", m.Ascent)
	}
}

func TestSource_Monospace(t *testing.T) {
	mono := testSource(t, gomono.TTF)
	regular := testSource(t, goregular.TTF)

	if !mono.IsMonospace() {
		t.Error("Go Mono should be detected as monospace")
	}
	if regular.IsMonospace() {
		t.Error("Go Regular should not be detected as monospace")
	}

	st := GlyphStyle{Size: 16}
	if k := mono.Kerning('A', 'V', st); k != 0 {
		t.Errorf("monospace Kerning('A','V') = %v, want 0", k)
	}
}

func TestSource_KerningZeroRules(t *testing.T) {
	src := testSource(t, goregular.TTF)
	st := GlyphStyle{Size: 16}

	tests := []struct {
		name string
		a, b rune
	}{
		{"zero left", 0, 'A'},
		{"zero right", 'A', 0},
		{"both zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if k := src.Kerning(tt.a, tt.b, st); k != 0 {
				t.Errorf("Kerning(%q, %q) = %v, want 0", tt.a, tt.b, k)
			}
		})
	}
	if k := src.KerningFromGlyphIndex(0, src.GlyphIndex('V'), st); k != 0 {
		t.Errorf("KerningFromGlyphIndex(0, V) = %v, want 0", k)
	}
}

func TestSource_Kerning_MatchesGlyphIndex(t *testing.T) {
	src := testSource(t, goregular.TTF)
	st := GlyphStyle{Size: 32}

	pairs := []string{"AV", "To", "Wa", "ab", "LT"}
	for _, p := range pairs {
		a, b := rune(p[0]), rune(p[1])
		byRune := src.Kerning(a, b, st)
		byIndex := src.KerningFromGlyphIndex(src.GlyphIndex(a), src.GlyphIndex(b), st)
		if byRune != byIndex {
			t.Errorf("Kerning(%q) = %v, KerningFromGlyphIndex = %v", p, byRune, byIndex)
		}
	}
}

func TestSource_SyntheticBold(t *testing.T) {
	src := testSource(t, goregular.TTF)

	regular := src.Glyph('a', GlyphStyle{Size: 16})
	bold := src.Glyph('a', GlyphStyle{Size: 16, Bold: true})
	if bold.Advance != regular.Advance+boldAdvance {
		t.Errorf("synthetic bold advance = %v, want %v", bold.Advance, regular.Advance+boldAdvance)
	}
}

func TestSource_BoldVariant(t *testing.T) {
	boldSrc := testSource(t, gobold.TTF)
	src := testSource(t, goregular.TTF, WithBold(boldSrc))

	v, st := src.ForStyle(GlyphStyle{Size: 16, Bold: true, Italic: true})
	if v != Font(boldSrc) {
		t.Fatal("ForStyle(bold) should return the bold variant")
	}
	if st.Bold || !st.Italic {
		t.Errorf("ForStyle(bold+italic) left style %+v, want italic only", st)
	}

	got := src.Glyph('a', GlyphStyle{Size: 16, Bold: true})
	want := boldSrc.Glyph('a', GlyphStyle{Size: 16})
	if got.Advance != want.Advance {
		t.Errorf("bold glyph advance = %v, want variant advance %v", got.Advance, want.Advance)
	}
	if got.Font != Font(boldSrc) {
		t.Error("bold glyph should come from the variant")
	}

	f, rest := Styled(src, GlyphStyle{Size: 16})
	if f != Font(src) || rest.Bold {
		t.Error("Styled(regular) should return the source itself")
	}
}

func TestSource_Fallback(t *testing.T) {
	cjk := newStubFont(16, 0x4E2D, 0x6587)
	src := testSource(t, goregular.TTF, WithFallback(cjk))
	st := GlyphStyle{Size: 16}

	if f := src.ResolveFont('A'); f != Font(src) {
		t.Error("ResolveFont('A') should return the source")
	}
	if f := src.ResolveFont(0x4E2D); f != Font(cjk) {
		t.Error("ResolveFont(U+4E2D) should return the fallback")
	}
	if f := src.ResolveFont(0x0E01); f != Font(src) {
		t.Error("uncovered runes should stay on the source")
	}
	if f := Resolve(src, 0x6587); f != Font(cjk) {
		t.Error("Resolve(U+6587) should return the fallback")
	}

	g := src.Glyph(0x4E2D, st)
	if g.Font != Font(cjk) || g.Advance != 16 {
		t.Errorf("fallback glyph = %+v, want advance 16 from fallback", g)
	}
	if k := src.Kerning('A', 0x4E2D, st); k != 0 {
		t.Errorf("cross-font Kerning = %v, want 0", k)
	}
}

func TestSource_EmojiFont(t *testing.T) {
	emojiFont := newStubFont(20, 0x1F600)
	src := testSource(t, goregular.TTF, WithEmojiFont(emojiFont))

	if f := src.ResolveFont(0x1F600); f != Font(emojiFont) {
		t.Error("emoji runes should resolve to the emoji font")
	}
	if f := src.ResolveFont(0x1F601); f != Font(src) {
		t.Error("emoji runes the emoji font lacks should stay on the source")
	}
}

func TestSource_GlyphCacheLimit(t *testing.T) {
	src := testSource(t, goregular.TTF, WithGlyphCacheLimit(2))
	st := GlyphStyle{Size: 16}

	want := src.Glyph('a', st).Advance
	for _, r := range "bcdefgh" {
		_ = src.Glyph(r, st)
	}
	if got := src.Glyph('a', st).Advance; got != want {
		t.Errorf("advance after cache reset = %v, want %v", got, want)
	}

	src.mu.RLock()
	n := len(src.glyphs)
	src.mu.RUnlock()
	if n > 2 {
		t.Errorf("glyph cache holds %d entries, limit is 2", n)
	}
}

func TestSource_CopyCheck(t *testing.T) {
	src := testSource(t, goregular.TTF)

	defer func() {
		if recover() == nil {
			t.Error("ID() on a copied Source should panic")
		}
	}()
	var cp Source
	copySource(src, &cp)
	_ = cp.ID()
}

// copySource copies src field by field, as a value copy would, without
// copying the mutex.
func copySource(src, dst *Source) {
	dst.addr = src.addr
	dst.id = src.id
	dst.name = src.name
	dst.sfnt = src.sfnt
	dst.shaping = src.shaping
	dst.monospace = src.monospace
	dst.config = src.config
	dst.glyphs = src.glyphs
}

func TestSource_Concurrent(t *testing.T) {
	src := testSource(t, goregular.TTF)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(size float64) {
			defer wg.Done()
			st := GlyphStyle{Size: size}
			for _, r := range "The quick brown fox" {
				_ = src.Glyph(r, st)
				_ = src.Kerning('T', r, st)
			}
		}(float64(10 + i))
	}
	wg.Wait()
}

func BenchmarkSource_Glyph(b *testing.B) {
	src, err := NewSource(goregular.TTF)
	if err != nil {
		b.Fatal(err)
	}
	st := GlyphStyle{Size: 16}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = src.Glyph('g', st)
	}
}
