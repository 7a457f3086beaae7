// Package wallet holds the wallet entity and the construction façade that is
// the sole way to obtain one. A Wallet is immutable once built and always
// internally consistent: the view key is the deterministic derivation of the
// spend key, and every public key is the base-point multiple of its private
// counterpart.
package wallet

import (
	"fmt"

	"github.com/Fantasim/xmrvault/internal/address"
	"github.com/Fantasim/xmrvault/internal/monero"
)

// Wallet is an immutable account key set with optional recovery material.
// Watch-only wallets carry no private spend key, no mnemonic and no seed.
type Wallet struct {
	name     string
	keys     monero.Keys
	mnemonic string
	seed     []byte
	primary  string
}

// newWallet assembles the entity from already validated key material.
func newWallet(name string, keys monero.Keys, phrase string, seed []byte) (*Wallet, error) {
	primary, err := address.Encode(address.MainnetID, keys.PublicSpend, keys.PublicView)
	if err != nil {
		return nil, fmt.Errorf("encode primary address: %w", err)
	}

	return &Wallet{
		name:     name,
		keys:     keys,
		mnemonic: phrase,
		seed:     seed,
		primary:  primary,
	}, nil
}

// Name returns the wallet's opaque identifier.
func (w *Wallet) Name() string { return w.name }

// CanSpend reports whether the wallet carries spending authority.
func (w *Wallet) CanSpend() bool { return w.keys.CanSpend() }

// PrivateSpendKey returns the private spend key, or false for watch-only
// wallets.
func (w *Wallet) PrivateSpendKey() ([]byte, bool) {
	if !w.keys.CanSpend() {
		return nil, false
	}
	return cloneBytes(w.keys.PrivateSpend), true
}

// PrivateViewKey returns the private view key.
func (w *Wallet) PrivateViewKey() []byte { return cloneBytes(w.keys.PrivateView) }

// PublicSpendKey returns the public spend key.
func (w *Wallet) PublicSpendKey() []byte { return cloneBytes(w.keys.PublicSpend) }

// PublicViewKey returns the public view key.
func (w *Wallet) PublicViewKey() []byte { return cloneBytes(w.keys.PublicView) }

// Mnemonic returns the recovery phrase, or false when the wallet was not
// built from one.
func (w *Wallet) Mnemonic() (string, bool) {
	if w.mnemonic == "" {
		return "", false
	}
	return w.mnemonic, true
}

// Seed returns the raw seed bytes, or false when no seed is known.
func (w *Wallet) Seed() ([]byte, bool) {
	if w.seed == nil {
		return nil, false
	}
	return cloneBytes(w.seed), true
}

// PrimaryAddress returns the mainnet primary address of the account.
func (w *Wallet) PrimaryAddress() string { return w.primary }

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
