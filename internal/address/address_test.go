package address

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Fantasim/xmrvault/internal/monero"
)

func testKeys(t *testing.T) monero.Keys {
	t.Helper()

	seed := make([]byte, monero.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 7)
	}

	keys, err := monero.KeysFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	return keys
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	keys := testKeys(t)

	addr, err := Encode(MainnetID, keys.PublicSpend, keys.PublicView)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	// 69 raw bytes encode to 8 full blocks plus a 5-byte tail block.
	if len(addr) != 95 {
		t.Errorf("Encode() length = %d, want 95", len(addr))
	}

	// Mainnet primary addresses start with '4'.
	if addr[0] != '4' {
		t.Errorf("Encode() starts with %q, want '4'", addr[0])
	}

	netID, pubSpend, pubView, err := Decode(addr)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if netID != MainnetID {
		t.Errorf("Decode() netID = %#x, want %#x", netID, MainnetID)
	}
	if !bytes.Equal(pubSpend, keys.PublicSpend) {
		t.Error("Decode() public spend key mismatch")
	}
	if !bytes.Equal(pubView, keys.PublicView) {
		t.Error("Decode() public view key mismatch")
	}
}

func TestEncodeRejectsBadKeyLengths(t *testing.T) {
	keys := testKeys(t)

	if _, err := Encode(MainnetID, keys.PublicSpend[:31], keys.PublicView); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("Encode(short spend) error = %v, want ErrInvalidAddress", err)
	}
	if _, err := Encode(MainnetID, keys.PublicSpend, append(keys.PublicView, 0)); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("Encode(long view) error = %v, want ErrInvalidAddress", err)
	}
}

func TestDecodeRejects(t *testing.T) {
	keys := testKeys(t)
	addr, err := Encode(MainnetID, keys.PublicSpend, keys.PublicView)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("wrong length", func(t *testing.T) {
		if _, _, _, err := Decode(addr[:94]); !errors.Is(err, ErrInvalidAddress) {
			t.Errorf("Decode(truncated) error = %v, want ErrInvalidAddress", err)
		}
	})

	t.Run("corrupted character", func(t *testing.T) {
		corrupted := []byte(addr)
		if corrupted[10] == 'A' {
			corrupted[10] = 'B'
		} else {
			corrupted[10] = 'A'
		}

		if _, _, _, err := Decode(string(corrupted)); !errors.Is(err, ErrInvalidAddress) {
			t.Errorf("Decode(corrupted) error = %v, want ErrInvalidAddress", err)
		}
	})

	t.Run("invalid base58 character", func(t *testing.T) {
		bad := []byte(addr)
		bad[5] = '0' // not in the alphabet
		if _, _, _, err := Decode(string(bad)); !errors.Is(err, ErrInvalidAddress) {
			t.Errorf("Decode(bad char) error = %v, want ErrInvalidAddress", err)
		}
	})
}

func TestEncodeDeterministic(t *testing.T) {
	keys := testKeys(t)

	a, err := Encode(MainnetID, keys.PublicSpend, keys.PublicView)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encode(MainnetID, keys.PublicSpend, keys.PublicView)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("Encode() not deterministic")
	}
}
