package wallet

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/Fantasim/xmrvault/internal/mnemonic"
	"github.com/Fantasim/xmrvault/internal/monero"
	"github.com/Fantasim/xmrvault/internal/wordlist"
)

// CreateRandom builds a wallet from a freshly generated mnemonic of count
// words in the given language.
func CreateRandom(name string, count mnemonic.WordsCount, lang wordlist.Language) (*Wallet, error) {
	if !count.Valid() {
		return nil, fmt.Errorf("%w: words count %d", ErrInvalidParameter, count)
	}
	if !wordlist.Valid(lang) {
		return nil, fmt.Errorf("%w: language %q", ErrInvalidParameter, lang)
	}

	phrase, err := mnemonic.Generate(count, lang)
	if err != nil {
		return nil, fmt.Errorf("generate mnemonic: %w", err)
	}

	return CreateFromMnemonic(name, phrase)
}

// CreateFromMnemonic builds a spending wallet from a mnemonic phrase,
// retaining both the phrase and its decoded seed.
func CreateFromMnemonic(name, phrase string) (*Wallet, error) {
	seed, err := mnemonic.ToSeed(phrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidMnemonic, phrase, err)
	}

	keys, err := monero.KeysFromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("derive keys from mnemonic seed: %w", err)
	}

	w, err := newWallet(name, keys, phrase, seed)
	if err != nil {
		return nil, err
	}

	slog.Info("wallet created", "name", name, "method", "mnemonic", "canSpend", true)
	return w, nil
}

// CreateFromSeed builds a spending wallet directly from seed bytes. No
// mnemonic is retained.
func CreateFromSeed(name string, seed []byte) (*Wallet, error) {
	if len(seed) != monero.SeedSize && len(seed) != monero.ShortSeedSize {
		return nil, fmt.Errorf("%w: seed must be %d or %d bytes, got %d",
			ErrInvalidParameter, monero.ShortSeedSize, monero.SeedSize, len(seed))
	}

	keys, err := monero.KeysFromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("derive keys from seed: %w", err)
	}

	w, err := newWallet(name, keys, "", cloneBytes(seed))
	if err != nil {
		return nil, err
	}

	slog.Info("wallet created", "name", name, "method", "seed", "canSpend", true)
	return w, nil
}

// CreateFromPrivateKey builds a spending wallet from an existing private
// spend key. The offending bytes are reported in hex on rejection; that is
// acceptable only because a rejected key is by definition not a usable secret.
func CreateFromPrivateKey(name string, privSpend []byte) (*Wallet, error) {
	keys, err := monero.KeysFromPrivateSpendKey(privSpend)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPrivateKey, hex.EncodeToString(privSpend), err)
	}

	w, err := newWallet(name, keys, "", nil)
	if err != nil {
		return nil, err
	}

	slog.Info("wallet created", "name", name, "method", "private-key", "canSpend", true)
	return w, nil
}

// CreateFromWatchOnly builds a view-only wallet from the private view key and
// public spend key. Key bytes are never echoed: the view key may be a valid
// secret even when its partner is rejected.
func CreateFromWatchOnly(name string, privView, pubSpend []byte) (*Wallet, error) {
	keys, err := monero.KeysFromWatchOnly(privView, pubSpend)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWatchOnlyKeys, err)
	}

	w, err := newWallet(name, keys, "", nil)
	if err != nil {
		return nil, err
	}

	slog.Info("wallet created", "name", name, "method", "watch-only", "canSpend", false)
	return w, nil
}
