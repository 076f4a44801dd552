package layout

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

// WrapMode specifies how a paragraph is broken into lines once it exceeds
// the wrap width.
type WrapMode uint8

const (
	// WrapNone disables wrapping; lines may exceed the wrap width.
	WrapNone WrapMode = iota

	// WrapWord breaks after the last whitespace before the overflow and
	// falls back to a character break for words wider than a line.
	WrapWord

	// WrapChar breaks at the glyph that overflows.
	WrapChar
)

// String returns the configuration name of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "nowrap"
	case WrapWord:
		return "word"
	case WrapChar:
		return "char"
	default:
		return unknownStr
	}
}

// ParseWrapMode parses a wrap mode name, ignoring case. "letter" is
// accepted as a synonym of "char". Unknown names yield WrapNone.
func ParseWrapMode(s string) WrapMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "word":
		return WrapWord
	case "char", "letter":
		return WrapChar
	default:
		return WrapNone
	}
}

// WrapOptions configures Wrap.
type WrapOptions struct {
	Mode WrapMode

	// Width is the maximum line width in pixels.
	Width float64

	// KeepIndentation starts continuation lines at the x of the first
	// non-whitespace glyph of the paragraph.
	KeepIndentation bool

	// LineHeight is the vertical advance of one line.
	LineHeight float64

	// InitialXOffset is the x at which the caller draws the first line. It
	// shortens the room left on that line; glyph positions are unaffected.
	InitialXOffset float64
}

// indentRunes are the runes counted as leading indentation.
const indentRunes = " \t\n\v\f\r"

// Wrap breaks p into lines in place. text is the full rune slice p was
// shaped from; glyph StringIndex values index into it.
//
// Glyphs are walked in emission order. When a glyph ends past the wrap
// width, the line is broken: in WrapChar mode at that glyph, in WrapWord
// mode after the most recent whitespace on the line, or at that glyph if
// the line has none. A whitespace glyph never forces a word break; it
// hangs past the margin and becomes the break candidate. The first glyph of
// a line is never moved, so a glyph wider than the line stays alone on it.
//
// Every glyph from the break on moves to the next line, starting at
// PaddingStart. The shift accumulates over the rest of the paragraph.
//
// Paragraphs holding right-to-left glyphs are broken over the logical
// order instead, and the glyphs of every line are then packed in their
// visual order. Wraps is ascending either way.
func Wrap(p *ShapedTextParagraph, text []rune, opts WrapOptions) {
	p.WrapInfo = WrapInfo{Wraps: []int{p.Start}}
	if opts.Mode == WrapNone || len(p.Glyphs) == 0 {
		return
	}
	if hasRTL(p) {
		wrapLogical(p, text, opts)
		return
	}
	if opts.KeepIndentation {
		p.WrapInfo.PaddingStart = indentation(p, text)
	}

	w := wrapper{p: p, text: text, opts: opts, starts: []int{0}, candidate: -1}
	for i := range p.Glyphs {
		w.place(i)
	}
	p.Size = Vec2{w.width(), float64(p.Lines()) * opts.LineHeight}
}

// wrapper holds the state of one Wrap call.
type wrapper struct {
	p    *ShapedTextParagraph
	text []rune
	opts WrapOptions

	starts    []int // index of the first glyph of every line
	lineStart int   // index of the first glyph of the current line
	candidate int   // most recent whitespace glyph on the current line
	shift     Vec2
}

func (w *wrapper) place(i int) {
	glyphs := w.p.Glyphs
	g := &glyphs[i]
	g.Position = g.Position.Add(w.shift)

	space := isWrapSpace(w.runeAt(g.StringIndex))
	for i > w.lineStart && g.Position.X+g.Advance.X > w.limit() {
		if w.opts.Mode == WrapWord && space {
			break
		}
		brk := i
		if w.opts.Mode == WrapWord && w.candidate >= w.lineStart && w.candidate < i {
			brk = w.candidate + 1
		}
		w.breakAt(brk, i)
	}
	if space {
		w.candidate = i
	}
}

// breakAt starts a new line at glyph brk and moves glyphs brk..last
// onto it.
func (w *wrapper) breakAt(brk, last int) {
	glyphs := w.p.Glyphs
	d := Vec2{w.p.WrapInfo.PaddingStart - glyphs[brk].Position.X, w.opts.LineHeight}
	for j := brk; j <= last; j++ {
		glyphs[j].Position = glyphs[j].Position.Add(d)
	}
	w.shift = w.shift.Add(d)
	w.p.WrapInfo.Wraps = append(w.p.WrapInfo.Wraps, glyphs[brk].StringIndex)
	w.starts = append(w.starts, brk)
	w.lineStart = brk
	w.candidate = -1
}

// limit returns the right edge available to the current line.
func (w *wrapper) limit() float64 {
	if len(w.starts) == 1 {
		return w.opts.Width - w.opts.InitialXOffset
	}
	return w.opts.Width
}

// width returns the widest line. Whitespace hanging past the margin in
// word mode does not count.
func (w *wrapper) width() float64 {
	var width float64
	line, limit := 0, w.opts.Width-w.opts.InitialXOffset
	for i := range w.p.Glyphs {
		if line+1 < len(w.starts) && i >= w.starts[line+1] {
			line++
			limit = w.opts.Width
		}
		g := &w.p.Glyphs[i]
		right := g.Position.X + g.Advance.X
		if right > limit && w.opts.Mode == WrapWord && isWrapSpace(w.runeAt(g.StringIndex)) {
			continue
		}
		width = max(width, right)
	}
	return width
}

func (w *wrapper) runeAt(idx int) rune {
	if idx < 0 || idx >= len(w.text) {
		return 0
	}
	return w.text[idx]
}

// indentation returns the x of the first glyph that does not render
// leading indentation, or 0 when the paragraph is only indentation.
func indentation(p *ShapedTextParagraph, text []rune) float64 {
	for i := range p.Glyphs {
		g := &p.Glyphs[i]
		if g.StringIndex < len(text) && strings.ContainsRune(indentRunes, text[g.StringIndex]) {
			continue
		}
		return g.Position.X
	}
	return 0
}

// isWrapSpace reports runes after which a word wrap may break.
// No-break spaces do not qualify.
func isWrapSpace(r rune) bool {
	return r != '\u00a0' && r != '\u202f' && unicode.IsSpace(r)
}

func hasRTL(p *ShapedTextParagraph) bool {
	for i := range p.Glyphs {
		if p.Glyphs[i].Direction == DirectionRTL {
			return true
		}
	}
	return false
}

// wrapLogical wraps a paragraph whose visual glyph order differs from its
// logical order.
func wrapLogical(p *ShapedTextParagraph, text []rune, opts WrapOptions) {
	glyphs := p.Glyphs
	order := make([]int, len(glyphs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(glyphs[a].StringIndex, glyphs[b].StringIndex)
	})
	runeAt := func(k int) rune {
		if idx := glyphs[order[k]].StringIndex; idx >= 0 && idx < len(text) {
			return text[idx]
		}
		return 0
	}

	if opts.KeepIndentation {
		var indent float64
		for k := range order {
			if !strings.ContainsRune(indentRunes, runeAt(k)) {
				break
			}
			indent += glyphs[order[k]].Advance.X
		}
		p.WrapInfo.PaddingStart = indent
	}
	padding := p.WrapInfo.PaddingStart

	// starts holds the position in order of the first glyph of every line.
	starts := []int{0}
	limit := func() float64 {
		if len(starts) == 1 {
			return opts.Width - opts.InitialXOffset
		}
		return opts.Width - padding
	}
	var x float64
	candidate := -1
	for k := range order {
		adv := glyphs[order[k]].Advance.X
		space := isWrapSpace(runeAt(k))
		for {
			lineStart := starts[len(starts)-1]
			if k == lineStart || x+adv <= limit() || (opts.Mode == WrapWord && space) {
				break
			}
			brk := k
			if opts.Mode == WrapWord && candidate >= lineStart && candidate < k {
				brk = candidate + 1
			}
			// Glyphs of one cluster stay on one line.
			for brk > lineStart && glyphs[order[brk]].StringIndex == glyphs[order[brk-1]].StringIndex {
				brk--
			}
			if brk == lineStart {
				break
			}
			starts = append(starts, brk)
			candidate = -1
			x = 0
			for j := brk; j < k; j++ {
				x += glyphs[order[j]].Advance.X
			}
		}
		if space {
			candidate = k
		}
		x += adv
	}

	line := make([]int, len(glyphs))
	for n, start := range starts {
		if n > 0 {
			p.WrapInfo.Wraps = append(p.WrapInfo.Wraps, glyphs[order[start]].StringIndex)
		}
		end := len(order)
		if n+1 < len(starts) {
			end = starts[n+1]
		}
		for k := start; k < end; k++ {
			line[order[k]] = n
		}
	}

	// Pack every line left to right in visual order. Runs of glyphs that
	// were adjacent keep their relative positions.
	orig := make([]float64, len(glyphs))
	for i := range glyphs {
		orig[i] = glyphs[i].Position.X
	}
	var width float64
	for n := range starts {
		pen := padding
		if n == 0 {
			pen = 0
		}
		var trailing float64
		prev := -1
		for i := range glyphs {
			if line[i] != n {
				continue
			}
			g := &glyphs[i]
			var gap float64
			if prev >= 0 && prev == i-1 {
				gap = orig[i] - (orig[prev] + glyphs[prev].Advance.X)
			}
			shift := Vec2{pen + gap - g.Position.X, float64(n) * opts.LineHeight}
			g.Position = g.Position.Add(shift)
			pen = g.Position.X + g.Advance.X
			prev = i
		}
		// Whitespace hanging at the logical end of the line does not count.
		end := len(order)
		if n+1 < len(starts) {
			end = starts[n+1]
		}
		limit := opts.Width
		if n == 0 {
			limit -= opts.InitialXOffset
		}
		for k := end - 1; k >= starts[n] && opts.Mode == WrapWord && isWrapSpace(runeAt(k)); k-- {
			if pen-trailing <= limit {
				break
			}
			trailing += glyphs[order[k]].Advance.X
		}
		width = max(width, pen-trailing)
	}
	p.Size = Vec2{width, float64(len(starts)) * opts.LineHeight}
}
