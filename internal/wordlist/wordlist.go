// Package wordlist is the dictionary boundary of the mnemonic scheme. It wraps
// the per-language word lists shipped with go-bip39 and adds what the scheme
// needs on top of a plain dictionary: indexed lookup and the CRC32
// prefix-checksum word used to seal a phrase.
package wordlist

import (
	"fmt"
	"hash/crc32"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Language selects one of the supported mnemonic dictionaries.
type Language string

const (
	English            Language = "english"
	Spanish            Language = "spanish"
	French             Language = "french"
	Italian            Language = "italian"
	Czech              Language = "czech"
	Japanese           Language = "japanese"
	Korean             Language = "korean"
	ChineseSimplified  Language = "chinese_simplified"
	ChineseTraditional Language = "chinese_traditional"
)

// AllLanguages is the ordered list of supported languages. The order is also
// the detection order when decoding a phrase of unknown language, so English
// comes first.
var AllLanguages = []Language{
	English,
	Spanish,
	French,
	Italian,
	Czech,
	Japanese,
	Korean,
	ChineseSimplified,
	ChineseTraditional,
}

type list struct {
	words     []string
	index     map[string]int
	prefixLen int
}

var lists = map[Language]*list{}

func init() {
	register(English, wordlists.English, 3)
	register(Spanish, wordlists.Spanish, 4)
	register(French, wordlists.French, 4)
	register(Italian, wordlists.Italian, 4)
	register(Czech, wordlists.Czech, 4)
	register(Japanese, wordlists.Japanese, 3)
	register(Korean, wordlists.Korean, 3)
	register(ChineseSimplified, wordlists.ChineseSimplified, 1)
	register(ChineseTraditional, wordlists.ChineseTraditional, 1)
}

func register(lang Language, words []string, prefixLen int) {
	index := make(map[string]int, len(words))
	for i, w := range words {
		index[w] = i
	}
	lists[lang] = &list{words: words, index: index, prefixLen: prefixLen}
}

// Valid reports whether lang names a supported dictionary.
func Valid(lang Language) bool {
	_, ok := lists[lang]
	return ok
}

// Words returns the ordered dictionary for lang.
func Words(lang Language) ([]string, error) {
	l, ok := lists[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return l.words, nil
}

// Size returns the number of words in the dictionary for lang, or 0 if lang
// is unknown. The mnemonic codec uses it as the base of the word packing.
func Size(lang Language) int {
	l, ok := lists[lang]
	if !ok {
		return 0
	}
	return len(l.words)
}

// Lookup returns the index of word in the dictionary for lang.
func Lookup(lang Language, word string) (int, bool) {
	l, ok := lists[lang]
	if !ok {
		return 0, false
	}
	i, ok := l.index[word]
	return i, ok
}

// ChecksumWord computes the checksum word for a sequence of data words: the
// CRC32 of the concatenated unique prefixes, reduced modulo the word count,
// selects one of the data words themselves.
func ChecksumWord(lang Language, words []string) (string, error) {
	l, ok := lists[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	if len(words) == 0 {
		return "", fmt.Errorf("checksum word: empty word sequence")
	}

	var b strings.Builder
	for _, w := range words {
		b.WriteString(prefix(w, l.prefixLen))
	}

	idx := crc32.ChecksumIEEE([]byte(b.String())) % uint32(len(words))
	return words[idx], nil
}

// prefix returns the first n runes of word, or the whole word if shorter.
// Rune-aware so multi-byte dictionaries checksum the same way as ASCII ones.
func prefix(word string, n int) string {
	runes := []rune(word)
	if len(runes) <= n {
		return word
	}
	return string(runes[:n])
}
