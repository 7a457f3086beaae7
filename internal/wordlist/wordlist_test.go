package wordlist

import (
	"errors"
	"testing"
)

func TestAllLanguagesRegistered(t *testing.T) {
	for _, lang := range AllLanguages {
		t.Run(string(lang), func(t *testing.T) {
			if !Valid(lang) {
				t.Fatalf("Valid(%q) = false, want true", lang)
			}

			words, err := Words(lang)
			if err != nil {
				t.Fatalf("Words(%q) error = %v", lang, err)
			}
			if len(words) != 2048 {
				t.Errorf("Words(%q) length = %d, want 2048", lang, len(words))
			}
			if Size(lang) != len(words) {
				t.Errorf("Size(%q) = %d, want %d", lang, Size(lang), len(words))
			}
		})
	}
}

func TestUnknownLanguage(t *testing.T) {
	if Valid("klingon") {
		t.Error("Valid(klingon) = true, want false")
	}

	_, err := Words("klingon")
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("Words(klingon) error = %v, want ErrUnknownLanguage", err)
	}

	if Size("klingon") != 0 {
		t.Error("Size(klingon) != 0")
	}

	_, err = ChecksumWord("klingon", []string{"abandon"})
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("ChecksumWord(klingon) error = %v, want ErrUnknownLanguage", err)
	}
}

func TestLookupRoundTrip(t *testing.T) {
	for _, lang := range AllLanguages {
		words, err := Words(lang)
		if err != nil {
			t.Fatal(err)
		}

		// Spot-check first, middle and last entries.
		for _, i := range []int{0, len(words) / 2, len(words) - 1} {
			got, ok := Lookup(lang, words[i])
			if !ok || got != i {
				t.Errorf("Lookup(%q, %q) = (%d, %v), want (%d, true)", lang, words[i], got, ok, i)
			}
		}

		if _, ok := Lookup(lang, "definitely-not-a-word"); ok {
			t.Errorf("Lookup(%q, out-of-dictionary) succeeded", lang)
		}
	}
}

func TestChecksumWordDeterministic(t *testing.T) {
	words, err := Words(English)
	if err != nil {
		t.Fatal(err)
	}
	seq := words[:24]

	first, err := ChecksumWord(English, seq)
	if err != nil {
		t.Fatalf("ChecksumWord() error = %v", err)
	}

	second, err := ChecksumWord(English, seq)
	if err != nil {
		t.Fatalf("ChecksumWord() second call error = %v", err)
	}

	if first != second {
		t.Errorf("ChecksumWord() not deterministic: %q vs %q", first, second)
	}

	// The checksum word is always one of the data words.
	found := false
	for _, w := range seq {
		if w == first {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("ChecksumWord() = %q, not among the data words", first)
	}
}

func TestChecksumWordDependsOnEveryWord(t *testing.T) {
	words, err := Words(English)
	if err != nil {
		t.Fatal(err)
	}

	base := make([]string, 24)
	copy(base, words[:24])
	orig, err := ChecksumWord(English, base)
	if err != nil {
		t.Fatal(err)
	}

	// Swapping a word for one with a different prefix should, with overwhelming
	// likelihood somewhere in the sequence, change the checksum.
	changed := false
	for i := range base {
		mutated := make([]string, len(base))
		copy(mutated, base)
		mutated[i] = words[1000+i]

		cs, err := ChecksumWord(English, mutated)
		if err != nil {
			t.Fatal(err)
		}
		if cs != orig {
			changed = true
			break
		}
	}
	if !changed {
		t.Error("checksum word unchanged by every single-word mutation")
	}
}

func TestChecksumWordEmptySequence(t *testing.T) {
	if _, err := ChecksumWord(English, nil); err == nil {
		t.Error("ChecksumWord(empty) expected error")
	}
}

func TestPrefixRuneAware(t *testing.T) {
	tests := []struct {
		word string
		n    int
		want string
	}{
		{"abandon", 3, "aba"},
		{"ab", 3, "ab"},
		{"の", 3, "の"},
		{"あいこくしん", 3, "あいこ"},
	}

	for _, tt := range tests {
		if got := prefix(tt.word, tt.n); got != tt.want {
			t.Errorf("prefix(%q, %d) = %q, want %q", tt.word, tt.n, got, tt.want)
		}
	}
}
