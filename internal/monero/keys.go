// Package monero implements the dual-key derivation scheme: a private spend
// scalar deterministically yields the private view scalar (hash-to-scalar)
// and both public keys (scalar-base-point multiplication) on ed25519.
package monero

import (
	"fmt"

	"filippo.io/edwards25519"
)

// KeySize is the byte length of every key component: scalars and compressed
// curve points alike.
const KeySize = 32

// SeedSize is the byte length of a full seed. Short 16-byte seeds are also
// accepted and expanded by Keccak before reduction.
const (
	SeedSize      = 32
	ShortSeedSize = 16
)

// Keys holds the key material of an account. PrivateSpend is nil for
// watch-only key sets; every other component is always populated.
type Keys struct {
	PrivateSpend []byte
	PrivateView  []byte
	PublicSpend  []byte
	PublicView   []byte
}

// CanSpend reports whether the key set carries spending authority.
func (k Keys) CanSpend() bool {
	return k.PrivateSpend != nil
}

// DeriveViewKey derives the private view scalar from the private spend
// scalar. Deterministic, no failure mode beyond a wrong-length input.
func DeriveViewKey(privSpend []byte) ([]byte, error) {
	if len(privSpend) != KeySize {
		return nil, fmt.Errorf("%w: spend key must be %d bytes, got %d", ErrInvalidKey, KeySize, len(privSpend))
	}
	return HashToScalar(privSpend), nil
}

// PublicFromPrivate multiplies the curve base point by the private scalar.
// The scalar must be canonical and nonzero.
func PublicFromPrivate(priv []byte) ([]byte, error) {
	s, err := canonicalScalar(priv)
	if err != nil {
		return nil, err
	}
	return new(edwards25519.Point).ScalarBaseMult(s).Bytes(), nil
}

// KeysFromSeed derives the full key set from seed bytes. A 32-byte seed
// reduces directly to the private spend scalar; a 16-byte seed is expanded
// through Keccak-256 first.
func KeysFromSeed(seed []byte) (Keys, error) {
	var privSpend []byte
	switch len(seed) {
	case SeedSize:
		privSpend = reduce32(seed)
	case ShortSeedSize:
		privSpend = reduce32(Keccak256(seed))
	default:
		return Keys{}, fmt.Errorf("%w: seed must be %d or %d bytes, got %d",
			ErrInvalidKey, ShortSeedSize, SeedSize, len(seed))
	}

	return keysFromSpendScalar(privSpend)
}

// KeysFromPrivateSpendKey derives the full key set from an existing private
// spend key, which must already be a canonical nonzero scalar.
func KeysFromPrivateSpendKey(privSpend []byte) (Keys, error) {
	if _, err := canonicalScalar(privSpend); err != nil {
		return Keys{}, err
	}

	owned := make([]byte, KeySize)
	copy(owned, privSpend)
	return keysFromSpendScalar(owned)
}

// KeysFromWatchOnly builds a view-only key set from the private view key and
// the public spend key. No private spend key is ever materialized.
func KeysFromWatchOnly(privView, pubSpend []byte) (Keys, error) {
	if _, err := canonicalScalar(privView); err != nil {
		return Keys{}, fmt.Errorf("view key: %w", err)
	}

	if len(pubSpend) != KeySize {
		return Keys{}, fmt.Errorf("%w: spend key must be %d bytes, got %d", ErrInvalidKey, KeySize, len(pubSpend))
	}
	if _, err := new(edwards25519.Point).SetBytes(pubSpend); err != nil {
		return Keys{}, fmt.Errorf("%w: spend key is not a valid point encoding", ErrInvalidKey)
	}

	pubView, err := PublicFromPrivate(privView)
	if err != nil {
		return Keys{}, fmt.Errorf("view key: %w", err)
	}

	ownedView := make([]byte, KeySize)
	copy(ownedView, privView)
	ownedSpend := make([]byte, KeySize)
	copy(ownedSpend, pubSpend)

	return Keys{
		PrivateView: ownedView,
		PublicSpend: ownedSpend,
		PublicView:  pubView,
	}, nil
}

func keysFromSpendScalar(privSpend []byte) (Keys, error) {
	privView, err := DeriveViewKey(privSpend)
	if err != nil {
		return Keys{}, err
	}

	pubSpend, err := PublicFromPrivate(privSpend)
	if err != nil {
		return Keys{}, fmt.Errorf("spend key: %w", err)
	}
	pubView, err := PublicFromPrivate(privView)
	if err != nil {
		return Keys{}, fmt.Errorf("view key: %w", err)
	}

	return Keys{
		PrivateSpend: privSpend,
		PrivateView:  privView,
		PublicSpend:  pubSpend,
		PublicView:   pubView,
	}, nil
}
