package emoji

import "testing"

func TestIsEmoji(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"grinning face", 0x1F600, true},
		{"rocket", 0x1F680, true},
		{"sun", 0x2600, true},
		{"check mark", 0x2714, true},
		{"flag letter", 0x1F1FA, true},
		{"latin a", 'a', false},
		{"digit", '1', false},
		{"hash", '#', false},
		{"space", ' ', false},
		{"arabic alef", 0x0627, false},
		{"cjk", 0x4E2D, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmoji(tt.r); got != tt.want {
				t.Errorf("IsEmoji(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestIsEmojiPresentation(t *testing.T) {
	if !IsEmojiPresentation(0x1F600) {
		t.Error("U+1F600 should default to emoji presentation")
	}
	if IsEmojiPresentation(0x2600) {
		t.Error("U+2600 should default to text presentation")
	}
}

func TestSequenceParts(t *testing.T) {
	for _, r := range []rune{0x200D, 0xFE0F, 0xFE0E, 0x1F3FB, 0x20E3, 0xE0067} {
		if !IsSequencePart(r) {
			t.Errorf("IsSequencePart(%U) = false, want true", r)
		}
	}
	if IsSequencePart('x') {
		t.Error("IsSequencePart('x') = true, want false")
	}
	if !IsZWJ(0x200D) || IsZWJ(0x200C) {
		t.Error("IsZWJ misclassifies joiners")
	}
}
