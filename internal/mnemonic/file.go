package mnemonic

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ReadFromFile reads a mnemonic phrase from a file, trims whitespace, and
// validates it by decoding.
func ReadFromFile(path string) (string, error) {
	slog.Info("reading mnemonic from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read mnemonic file %q: %w", path, err)
	}

	phrase := strings.TrimSpace(string(data))
	if phrase == "" {
		return "", fmt.Errorf("mnemonic file %q is empty: %w", path, ErrInvalidWordCount)
	}

	if _, err := ToSeed(phrase); err != nil {
		return "", fmt.Errorf("mnemonic file %q: %w", path, err)
	}

	slog.Info("mnemonic read and validated from file")
	return phrase, nil
}
