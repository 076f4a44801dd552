// Package script classifies codepoints by Unicode script and splits text
// into script-homogeneous runs.
package script

import (
	"iter"

	"github.com/go-text/typesetting/language"
)

// Script is a Unicode script, identified by its ISO 15924 tag.
type Script language.Script

// Script constants for the scripts the layout engine treats specially.
const (
	// Invalid marks runes that were never classified.
	Invalid Script = 0
	// Common is used for punctuation, digits and symbols shared across scripts.
	Common = Script(language.Common)
	// Inherited is used for combining marks that take the script of their base.
	Inherited = Script(language.Inherited)
	// Unknown is used for unassigned codepoints.
	Unknown = Script(language.Unknown)

	Latin    = Script(language.Latin)
	Greek    = Script(language.Greek)
	Cyrillic = Script(language.Cyrillic)
	Arabic   = Script(language.Arabic)
	Hebrew   = Script(language.Hebrew)
	Han      = Script(language.Han)
	Thai     = Script(language.Thai)

	Devanagari = Script(language.Devanagari)
)

// Lookup returns the script of r.
func Lookup(r rune) Script {
	return Script(language.LookupScript(r))
}

// String returns the script name.
func (s Script) String() string {
	if s == Invalid {
		return "Invalid"
	}
	return language.Script(s).String()
}

// Language returns the go-text script value used by the shaper.
func (s Script) Language() language.Script {
	return language.Script(s)
}

// IsSimple reports whether text in s lays out correctly without the
// shaper's script-specific substitution and positioning rules. The engine
// applies its own kerning to simple scripts.
func (s Script) IsSimple() bool {
	switch s {
	case Latin, Greek, Cyrillic, Common, Inherited, Unknown, Invalid:
		return true
	default:
		return false
	}
}

// isNeutral reports scripts that join the surrounding run.
func (s Script) isNeutral() bool {
	return s == Common || s == Inherited || s == Unknown || s == Invalid
}

// Run is a script-homogeneous range of a loaded text.
type Run struct {
	Offset int
	Length int
	Script Script
}

// Locator splits text into script runs. Neutral runes (Common, Inherited,
// Unknown, Invalid) take the script of the surrounding run instead of
// forcing a split.
//
// A Locator keeps its scratch storage between Load calls. It is not safe
// for concurrent use.
type Locator struct {
	scripts []Script
	next    []Script
}

// Load classifies text, replacing anything loaded before.
func (l *Locator) Load(text []rune) {
	l.scripts = l.scripts[:0]
	for _, r := range text {
		l.scripts = append(l.scripts, Lookup(r))
	}
	l.resolveNeutral()
}

// Reset drops the loaded text but keeps the storage.
func (l *Locator) Reset() {
	l.scripts = l.scripts[:0]
	l.next = l.next[:0]
}

// Runs yields the script runs of the loaded text in logical order. Offsets
// are relative to the loaded slice.
func (l *Locator) Runs() iter.Seq[Run] {
	return func(yield func(Run) bool) {
		if len(l.scripts) == 0 {
			return
		}
		start := 0
		for i := 1; i <= len(l.scripts); i++ {
			if i < len(l.scripts) && l.scripts[i] == l.scripts[start] {
				continue
			}
			if !yield(Run{Offset: start, Length: i - start, Script: l.scripts[start]}) {
				return
			}
			start = i
		}
	}
}

// resolveNeutral gives Inherited runes the script of the preceding
// concrete rune, then gives the remaining neutral runes the script of
// their context.
func (l *Locator) resolveNeutral() {
	scripts := l.scripts

	last := Common
	for i, s := range scripts {
		switch {
		case s == Inherited:
			scripts[i] = last
		case !s.isNeutral():
			last = s
		}
	}

	// next[i] is the first concrete script at or after i.
	if cap(l.next) < len(scripts) {
		l.next = make([]Script, len(scripts))
	}
	l.next = l.next[:len(scripts)]
	following := Common
	for i := len(scripts) - 1; i >= 0; i-- {
		if !scripts[i].isNeutral() {
			following = scripts[i]
		}
		l.next[i] = following
	}

	last = Common
	for i, s := range scripts {
		if !s.isNeutral() {
			last = s
			continue
		}
		scripts[i] = resolveCommon(last, l.next[i])
	}
}

// resolveCommon determines what script a neutral rune should take.
func resolveCommon(prev, next Script) Script {
	switch {
	case prev != Common:
		return prev
	case next != Common:
		return next
	default:
		return Common
	}
}

// Runs is a convenience wrapper that loads text into a fresh Locator.
func Runs(text []rune) iter.Seq[Run] {
	var l Locator
	l.Load(text)
	return l.Runs()
}
