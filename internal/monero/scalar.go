package monero

import (
	"fmt"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"
)

// Keccak256 returns the legacy (pre-NIST) Keccak-256 digest of the
// concatenated inputs. The scheme uses it both for hash-to-scalar and for
// address checksums.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// ReduceScalar reduces 32 little-endian bytes modulo the ed25519 group order,
// yielding a canonical scalar. Constant-time with respect to the input value.
func ReduceScalar(b []byte) ([]byte, error) {
	if len(b) != KeySize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", ErrInvalidKey, KeySize, len(b))
	}
	return reduce32(b), nil
}

// HashToScalar is the deterministic one-way map from arbitrary bytes to a
// group scalar: Keccak-256 followed by reduction mod the group order.
func HashToScalar(data ...[]byte) []byte {
	return reduce32(Keccak256(data...))
}

func reduce32(b []byte) []byte {
	// SetUniformBytes wants 64 little-endian bytes; zero-padding the high half
	// leaves the value unchanged, so this is exactly a mod-order reduction.
	var wide [64]byte
	copy(wide[:], b)
	s, _ := edwards25519.NewScalar().SetUniformBytes(wide[:])
	return s.Bytes()
}

// canonicalScalar parses b as an already reduced, nonzero scalar.
func canonicalScalar(b []byte) (*edwards25519.Scalar, error) {
	if len(b) != KeySize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", ErrInvalidKey, KeySize, len(b))
	}

	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: scalar not reduced modulo group order", ErrInvalidKey)
	}
	if s.Equal(edwards25519.NewScalar()) == 1 {
		return nil, fmt.Errorf("%w: zero scalar", ErrInvalidKey)
	}
	return s, nil
}
