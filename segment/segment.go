// Package segment splits text into paragraphs and each paragraph into runs
// of uniform direction and script, in visual order.
package segment

import (
	"slices"
	"sync"

	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/textlayout/layout"
	"github.com/gogpu/textlayout/script"
)

// Segment is a run of text with the same direction and script.
type Segment struct {
	// Offset and Length delimit the run in runes of the full text.
	Offset int
	Length int

	Script    script.Script
	Direction layout.Direction
}

// End returns the rune offset just past the segment.
func (s Segment) End() int { return s.Offset + s.Length }

// Paragraph is the text up to and excluding a '\n'.
type Paragraph struct {
	// Start and End delimit the content in runes of the full text.
	Start, End int

	// Separator is the length of the terminating line break: 1, or 0 for
	// the last paragraph.
	Separator int

	// Direction is the resolved base direction of the paragraph.
	Direction layout.Direction

	// Segments cover Start..End in visual order.
	Segments []Segment
}

// Result is the output of Split.
type Result struct {
	Paragraphs []Paragraph

	// Direction is the resolved base direction of the first paragraph.
	Direction layout.Direction
}

// Mixed reports whether segments of more than one direction occur.
func (r *Result) Mixed() bool {
	var seen layout.Direction
	for i := range r.Paragraphs {
		for _, s := range r.Paragraphs[i].Segments {
			switch {
			case seen == layout.DirectionUnspecified:
				seen = s.Direction
			case s.Direction != seen:
				return true
			}
		}
	}
	return false
}

var locatorPool = sync.Pool{
	New: func() any { return new(script.Locator) },
}

// Split segments text. There is one paragraph per '\n' plus one, so an
// empty text yields a single empty paragraph.
//
// base selects the paragraph direction: DirectionUnspecified takes it from
// the first strong character (LTR when there is none), DirectionLTR and
// DirectionRTL force it, and the vertical directions skip bidi resolution
// entirely.
func Split(text []rune, base layout.Direction) Result {
	loc := locatorPool.Get().(*script.Locator)
	defer func() {
		loc.Reset()
		locatorPool.Put(loc)
	}()

	var res Result
	start := 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != '\n' {
			continue
		}
		p := Paragraph{Start: start, End: i}
		if i < len(text) {
			p.Separator = 1
		}
		splitParagraph(&p, text, base, loc)
		res.Paragraphs = append(res.Paragraphs, p)
		start = i + 1
	}
	res.Direction = res.Paragraphs[0].Direction
	return res
}

// levelRun is a bidi run in logical order.
type levelRun struct {
	start, end int
	level      int
}

func splitParagraph(p *Paragraph, text []rune, base layout.Direction, loc *script.Locator) {
	content := text[p.Start:p.End]

	if base.IsVertical() {
		p.Direction = base
		appendScriptRuns(p, loc, content, p.Start, base, false)
		return
	}

	p.Direction = base
	if p.Direction == layout.DirectionUnspecified {
		p.Direction = firstStrong(content)
	}
	if len(content) == 0 {
		return
	}

	runs := bidiRuns(content, p.Direction)
	for _, r := range visualOrder(runs) {
		dir := layout.DirectionLTR
		if r.level%2 == 1 {
			dir = layout.DirectionRTL
		}
		appendScriptRuns(p, loc, content[r.start:r.end], p.Start+r.start, dir, dir == layout.DirectionRTL)
	}
}

// appendScriptRuns appends the script runs of text, which starts at rune
// offset off. Right-to-left runs are appended in reverse so the paragraph
// stays in visual order.
func appendScriptRuns(p *Paragraph, loc *script.Locator, text []rune, off int, dir layout.Direction, reverse bool) {
	loc.Load(text)
	first := len(p.Segments)
	for r := range loc.Runs() {
		p.Segments = append(p.Segments, Segment{
			Offset:    off + r.Offset,
			Length:    r.Length,
			Script:    r.Script,
			Direction: dir,
		})
	}
	if reverse {
		slices.Reverse(p.Segments[first:])
	}
}

// firstStrong returns the direction of the first strong character of text,
// LTR when there is none.
func firstStrong(text []rune) layout.Direction {
	for _, r := range text {
		switch class(r) {
		case bidi.L:
			return layout.DirectionLTR
		case bidi.R, bidi.AL:
			return layout.DirectionRTL
		}
	}
	return layout.DirectionLTR
}

// lrm is prepended to force a left-to-right paragraph level; x/text only
// overrides the detected level for right-to-left.
const lrm = '\u200e'

// bidiRuns resolves the embedding levels of text in a paragraph of
// direction dir and returns its level runs in logical order.
func bidiRuns(text []rune, dir layout.Direction) []levelRun {
	base := 0
	if dir == layout.DirectionRTL {
		base = 1
	}

	src := text
	shift := 0
	opt := bidi.DefaultDirection(bidi.RightToLeft)
	if base == 0 {
		src = append([]rune{lrm}, text...)
		shift = 1
		opt = bidi.DefaultDirection(bidi.LeftToRight)
	}

	levels := make([]int, len(text))
	for i := range levels {
		levels[i] = base
	}

	var para bidi.Paragraph
	if _, err := para.SetString(string(src), opt); err == nil {
		if ordering, err := para.Order(); err == nil {
			// Pos returns rune indices, end inclusive.
			for i := 0; i < ordering.NumRuns(); i++ {
				run := ordering.Run(i)
				lo, hi := run.Pos()
				lvl := base
				switch {
				case run.Direction() == bidi.RightToLeft:
					lvl = 1
				case base == 1:
					lvl = 2
				}
				for j := max(lo-shift, 0); j <= hi-shift && j < len(levels); j++ {
					levels[j] = lvl
				}
			}
		}
	}

	raiseNumbers(text, levels, base)

	var runs []levelRun
	for i := 0; i < len(levels); {
		j := i + 1
		for j < len(levels) && levels[j] == levels[i] {
			j++
		}
		runs = append(runs, levelRun{start: i, end: j, level: levels[i]})
		i = j
	}
	return runs
}

// raiseNumbers assigns level 2 to the numbers that UAX #9 raises above the
// paragraph level: in a right-to-left paragraph every number, in a
// left-to-right one Arabic numbers and European numbers whose preceding
// strong character is right-to-left (rules W2, W7, I1 and I2). x/text only
// reports the direction of a run, which puts those numbers back on the
// paragraph level.
//
// A number is a span of digits with the separators and terminators between
// or around them; separators at either end of the span are left alone.
func raiseNumbers(text []rune, levels []int, base int) {
	rtl := base == 1
	for i := 0; i < len(text); {
		c := class(text[i])
		switch {
		case c == bidi.L:
			rtl = false
			i++
			continue
		case c == bidi.R || c == bidi.AL:
			rtl = true
			i++
			continue
		case !isNumeric(c):
			i++
			continue
		}

		j := i
		digits, arabic := false, false
		for ; j < len(text) && isNumeric(class(text[j])); j++ {
			switch class(text[j]) {
			case bidi.EN:
				digits = true
			case bidi.AN:
				digits, arabic = true, true
			}
		}
		if digits && (base == 1 || rtl || arabic) {
			lo, hi := i, j
			for lo < hi && isSeparator(class(text[lo])) {
				lo++
			}
			for hi > lo && isSeparator(class(text[hi-1])) {
				hi--
			}
			for k := lo; k < hi; k++ {
				levels[k] = 2
			}
		}
		i = j
	}
}

func class(r rune) bidi.Class {
	props, _ := bidi.LookupRune(r)
	return props.Class()
}

func isNumeric(c bidi.Class) bool {
	switch c {
	case bidi.EN, bidi.AN, bidi.ES, bidi.CS, bidi.ET:
		return true
	}
	return false
}

func isSeparator(c bidi.Class) bool {
	return c == bidi.ES || c == bidi.CS
}

// visualOrder reorders logical runs for display: from the highest level
// down to the lowest odd level, every maximal sequence of runs at that
// level or above is reversed.
func visualOrder(runs []levelRun) []levelRun {
	out := slices.Clone(runs)
	highest, lowestOdd := 0, -1
	for _, r := range out {
		highest = max(highest, r.level)
		if r.level%2 == 1 && (lowestOdd < 0 || r.level < lowestOdd) {
			lowestOdd = r.level
		}
	}
	if lowestOdd < 0 {
		return out
	}
	for lvl := highest; lvl >= lowestOdd; lvl-- {
		for i := 0; i < len(out); {
			if out[i].level < lvl {
				i++
				continue
			}
			j := i
			for j < len(out) && out[j].level >= lvl {
				j++
			}
			slices.Reverse(out[i:j])
			i = j
		}
	}
	return out
}
