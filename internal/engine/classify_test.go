package engine

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		kind   IntentKind
		letter rune
		full   string
	}{
		{"single letter", "a", IntentLetter, 'a', ""},
		{"upper case normalized", "A", IntentLetter, 'a', ""},
		{"letter with whitespace", "  b  ", IntentLetter, 'b', ""},
		{"full word", "cat", IntentFull, 0, "cat"},
		{"full phrase trimmed", "  to be  ", IntentFull, 0, "to be"},
		{"empty", "", IntentInvalid, 0, ""},
		{"whitespace only", "   ", IntentInvalid, 0, ""},
		{"single digit", "7", IntentInvalid, 0, ""},
		{"single punctuation", "!", IntentInvalid, 0, ""},
		{"two characters", "ab", IntentFull, 0, "ab"},
	}

	for _, tc := range cases {
		got := Classify(tc.raw)
		if got.Kind != tc.kind {
			t.Errorf("%s: Classify(%q) kind = %v, want %v", tc.name, tc.raw, got.Kind, tc.kind)
			continue
		}
		if tc.kind == IntentLetter && got.Letter != tc.letter {
			t.Errorf("%s: Classify(%q) letter = %q, want %q", tc.name, tc.raw, got.Letter, tc.letter)
		}
		if tc.kind == IntentFull && got.Full != tc.full {
			t.Errorf("%s: Classify(%q) full = %q, want %q", tc.name, tc.raw, got.Full, tc.full)
		}
	}
}

func TestClassifyMultiByteLetter(t *testing.T) {
	got := Classify("é")
	if got.Kind != IntentLetter {
		t.Fatalf("Multi-byte letter should classify as a letter guess, got %v", got.Kind)
	}
	if got.Letter != 'é' {
		t.Errorf("Expected é, got %q", got.Letter)
	}
}
