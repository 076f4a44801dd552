package script

import (
	"slices"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Script
	}{
		{"latin", 'a', Latin},
		{"greek", 'α', Greek},
		{"cyrillic", 'д', Cyrillic},
		{"arabic", 'ب', Arabic},
		{"hebrew", 'ש', Hebrew},
		{"han", '中', Han},
		{"digit", '7', Common},
		{"space", ' ', Common},
		{"combining acute", '\u0301', Inherited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.r); got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestScript_IsSimple(t *testing.T) {
	simple := []Script{Latin, Greek, Cyrillic, Common, Inherited, Unknown, Invalid}
	for _, s := range simple {
		if !s.IsSimple() {
			t.Errorf("%v.IsSimple() = false, want true", s)
		}
	}
	complexScripts := []Script{Arabic, Hebrew, Han, Thai, Devanagari}
	for _, s := range complexScripts {
		if s.IsSimple() {
			t.Errorf("%v.IsSimple() = true, want false", s)
		}
	}
}

func TestScript_String(t *testing.T) {
	if got := Invalid.String(); got != "Invalid" {
		t.Errorf("Invalid.String() = %q", got)
	}
	if got := Latin.String(); got == "" {
		t.Error("Latin.String() is empty")
	}
}

func collect(text string) []Run {
	return slices.Collect(Runs([]rune(text)))
}

func TestRuns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Run
	}{
		{"empty", "", nil},
		{"latin only", "Hello, World!", []Run{{0, 13, Latin}}},
		{"common only", "123 456", []Run{{0, 7, Common}}},
		{"leading common joins next", "  abc", []Run{{0, 5, Latin}}},
		{"trailing common joins previous", "abc!!", []Run{{0, 5, Latin}}},
		{"latin then arabic", "ab بت", []Run{{0, 3, Latin}, {3, 2, Arabic}}},
		{"combining mark inherits", "e\u0301x", []Run{{0, 3, Latin}}},
		{"greek cyrillic", "αβдж", []Run{{0, 2, Greek}, {2, 2, Cyrillic}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(tt.text)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Runs(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestRuns_CoverInput(t *testing.T) {
	text := []rune("Hello мир 世界 שלום 123")
	next := 0
	for run := range Runs(text) {
		if run.Offset != next {
			t.Fatalf("run starts at %d, want %d", run.Offset, next)
		}
		if run.Length <= 0 {
			t.Fatalf("run %+v has no length", run)
		}
		next += run.Length
	}
	if next != len(text) {
		t.Errorf("runs cover %d runes, want %d", next, len(text))
	}
}

func TestLocator_Reuse(t *testing.T) {
	var l Locator

	l.Load([]rune("abc中文"))
	first := slices.Collect(l.Runs())
	if len(first) != 2 {
		t.Fatalf("first load: got %d runs, want 2", len(first))
	}

	l.Load([]rune("xyz"))
	second := slices.Collect(l.Runs())
	if len(second) != 1 || second[0] != (Run{0, 3, Latin}) {
		t.Errorf("second load: got %v, want one Latin run", second)
	}

	l.Reset()
	if n := len(slices.Collect(l.Runs())); n != 0 {
		t.Errorf("after Reset: got %d runs, want 0", n)
	}
}

func TestRuns_EarlyStop(t *testing.T) {
	count := 0
	for range Runs([]rune("abc אבג def")) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("loop ran %d times, want 1", count)
	}
}
