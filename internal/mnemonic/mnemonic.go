// Package mnemonic implements the checksum-bearing word phrase encoding of
// wallet seeds: three words per four seed bytes in base-N over the selected
// dictionary, with an optional trailing checksum word.
package mnemonic

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/Fantasim/xmrvault/internal/wordlist"
)

// WordsCount is the number of words in a mnemonic phrase. Counts 13 and 25
// carry a trailing checksum word; 12 and 24 are the bare encodings.
type WordsCount int

const (
	Words12 WordsCount = 12
	Words13 WordsCount = 13
	Words24 WordsCount = 24
	Words25 WordsCount = 25
)

// AllWordsCounts is the ordered list of supported word counts.
var AllWordsCounts = []WordsCount{Words12, Words13, Words24, Words25}

// Valid reports whether c is a supported word count.
func (c WordsCount) Valid() bool {
	switch c {
	case Words12, Words13, Words24, Words25:
		return true
	}
	return false
}

// EntropyBytes returns the seed length encoded by a phrase of c words.
func (c WordsCount) EntropyBytes() int {
	switch c {
	case Words12, Words13:
		return 16
	case Words24, Words25:
		return 32
	}
	return 0
}

// Checksummed reports whether a phrase of c words ends with a checksum word.
func (c WordsCount) Checksummed() bool {
	return c == Words13 || c == Words25
}

// Generate creates a fresh mnemonic of count words in the given language,
// reading entropy from crypto/rand.
func Generate(count WordsCount, lang wordlist.Language) (string, error) {
	if !count.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidWordCount, count)
	}

	entropy := make([]byte, count.EntropyBytes())
	if _, err := rand.Read(entropy); err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}

	phrase, err := encode(entropy, lang, count.Checksummed())
	if err != nil {
		return "", err
	}

	slog.Debug("mnemonic generated", "words", int(count), "language", lang)
	return phrase, nil
}

// FromSeed encodes seed bytes as a checksummed mnemonic in the given language.
// The seed must be 16 or 32 bytes.
func FromSeed(seed []byte, lang wordlist.Language) (string, error) {
	if len(seed) != 16 && len(seed) != 32 {
		return "", fmt.Errorf("%w: %d bytes", ErrInvalidSeed, len(seed))
	}
	return encode(seed, lang, true)
}

// ToSeed decodes a phrase back into its raw seed bytes, verifying the
// checksum word when present.
func ToSeed(phrase string) ([]byte, error) {
	seed, _, err := Decode(phrase)
	return seed, err
}

// Decode decodes a phrase and also reports the dictionary it was written in.
// The language is detected from the words themselves, so callers recovering a
// wallet do not need to remember which language it was generated with.
func Decode(phrase string) ([]byte, wordlist.Language, error) {
	words := strings.Fields(phrase)

	count := WordsCount(len(words))
	if !count.Valid() {
		return nil, "", fmt.Errorf("%w: %d", ErrInvalidWordCount, len(words))
	}

	lang, err := DetectLanguage(words)
	if err != nil {
		return nil, "", err
	}

	data := words
	if count.Checksummed() {
		data = words[:len(words)-1]
		want, err := wordlist.ChecksumWord(lang, data)
		if err != nil {
			return nil, "", err
		}
		if got := words[len(words)-1]; got != want {
			return nil, "", fmt.Errorf("%w: got %q", ErrChecksum, got)
		}
	}

	seed, err := decode(data, lang)
	if err != nil {
		return nil, "", err
	}

	slog.Debug("mnemonic decoded", "words", len(words), "language", lang, "seedLen", len(seed))
	return seed, lang, nil
}

// DetectLanguage finds the dictionary containing every word of the phrase.
// Languages are tried in wordlist.AllLanguages order.
func DetectLanguage(words []string) (wordlist.Language, error) {
	bestMissing := ""
	bestMatched := -1

	for _, lang := range wordlist.AllLanguages {
		matched := 0
		missing := ""
		for _, w := range words {
			if _, ok := wordlist.Lookup(lang, w); ok {
				matched++
			} else if missing == "" {
				missing = w
			}
		}
		if missing == "" {
			return lang, nil
		}
		if matched > bestMatched {
			bestMatched = matched
			bestMissing = missing
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownWord, bestMissing)
}

// encode maps every 4 little-endian seed bytes to 3 word indices in base n,
// with each index offset by the previous one so adjacent words differ even
// for repetitive seeds.
func encode(seed []byte, lang wordlist.Language, checksummed bool) (string, error) {
	words, err := wordlist.Words(lang)
	if err != nil {
		return "", err
	}
	n := uint64(len(words))

	out := make([]string, 0, len(seed)/4*3+1)
	for i := 0; i < len(seed); i += 4 {
		x := uint64(binary.LittleEndian.Uint32(seed[i:]))

		w1 := x % n
		w2 := (x/n + w1) % n
		w3 := (x/n/n + w2) % n

		out = append(out, words[w1], words[w2], words[w3])
	}

	if checksummed {
		cs, err := wordlist.ChecksumWord(lang, out)
		if err != nil {
			return "", err
		}
		out = append(out, cs)
	}

	return strings.Join(out, " "), nil
}

// decode is the inverse of encode over data words (checksum word stripped).
func decode(data []string, lang wordlist.Language) ([]byte, error) {
	n := uint64(wordlist.Size(lang))

	seed := make([]byte, 0, len(data)/3*4)
	for i := 0; i < len(data); i += 3 {
		w1, ok1 := wordlist.Lookup(lang, data[i])
		w2, ok2 := wordlist.Lookup(lang, data[i+1])
		w3, ok3 := wordlist.Lookup(lang, data[i+2])
		if !ok1 || !ok2 || !ok3 {
			// DetectLanguage already vetted every word; this guards direct calls.
			return nil, fmt.Errorf("%w: word group at %d", ErrUnknownWord, i)
		}

		i1, i2, i3 := uint64(w1), uint64(w2), uint64(w3)
		x := i1 + n*((i2+n-i1)%n) + n*n*((i3+n-i2)%n)
		if x > math.MaxUint32 {
			return nil, fmt.Errorf("%w: word group at %d overflows", ErrInvalidPhrase, i)
		}

		var chunk [4]byte
		binary.LittleEndian.PutUint32(chunk[:], uint32(x))
		seed = append(seed, chunk[:]...)
	}

	return seed, nil
}
