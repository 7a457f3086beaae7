package config

import (
	"testing"
)

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{
		LogLevel:   "info",
		LogDir:     "./logs",
		Language:   DefaultLanguage,
		WordsCount: DefaultWordsCount,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_AllWordCounts(t *testing.T) {
	for _, n := range []int{12, 13, 24, 25} {
		cfg := &Config{Language: "english", WordsCount: n}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v for wordsCount=%d, want nil", err, n)
		}
	}
}

func TestValidate_InvalidLanguage(t *testing.T) {
	tests := []struct {
		name     string
		language string
	}{
		{"empty", ""},
		{"unknown", "klingon"},
		{"case sensitive", "English"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Language: tt.language, WordsCount: 25}
			if err := cfg.Validate(); err == nil {
				t.Fatalf("Validate() expected error for language=%q, got nil", tt.language)
			}
		})
	}
}

func TestValidate_InvalidWordsCount(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{"zero", 0},
		{"negative", -1},
		{"fourteen", 14},
		{"twenty six", 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Language: "english", WordsCount: tt.count}
			if err := cfg.Validate(); err == nil {
				t.Fatalf("Validate() expected error for wordsCount=%d, got nil", tt.count)
			}
		})
	}
}
