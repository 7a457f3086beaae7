// Package address encodes the primary account address: network byte, public
// spend key, public view key and a 4-byte Keccak checksum, base58-encoded in
// fixed 8-byte blocks.
package address

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/Fantasim/xmrvault/internal/monero"
)

// MainnetID is the network byte of mainnet primary addresses.
const MainnetID byte = 0x12

const (
	blockSize        = 8
	encodedBlockSize = 11
	checksumSize     = 4
)

// encodedSizes[n] is the base58 length of an n-byte block.
var encodedSizes = [blockSize + 1]int{0, 2, 3, 5, 6, 7, 9, 10, 11}

var ErrInvalidAddress = errors.New("invalid address")

// Encode builds the primary address for the given network byte and public
// key pair.
func Encode(netID byte, pubSpend, pubView []byte) (string, error) {
	if len(pubSpend) != monero.KeySize || len(pubView) != monero.KeySize {
		return "", fmt.Errorf("%w: public keys must be %d bytes", ErrInvalidAddress, monero.KeySize)
	}

	raw := make([]byte, 0, 1+2*monero.KeySize+checksumSize)
	raw = append(raw, netID)
	raw = append(raw, pubSpend...)
	raw = append(raw, pubView...)
	raw = append(raw, monero.Keccak256(raw)[:checksumSize]...)

	var b strings.Builder
	for i := 0; i < len(raw); i += blockSize {
		end := i + blockSize
		if end > len(raw) {
			end = len(raw)
		}
		b.WriteString(encodeBlock(raw[i:end]))
	}
	return b.String(), nil
}

// Decode parses a primary address back into its network byte and public keys,
// verifying the embedded checksum.
func Decode(addr string) (netID byte, pubSpend, pubView []byte, err error) {
	rawLen := 1 + 2*monero.KeySize + checksumSize
	fullBlocks := rawLen / blockSize
	lastSize := rawLen % blockSize
	wantLen := fullBlocks*encodedBlockSize + encodedSizes[lastSize]

	if len(addr) != wantLen {
		return 0, nil, nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidAddress, len(addr), wantLen)
	}

	raw := make([]byte, 0, rawLen)
	for i := 0; i < len(addr); i += encodedBlockSize {
		end := i + encodedBlockSize
		size := blockSize
		if end > len(addr) {
			end = len(addr)
			size = lastSize
		}

		block, err := decodeBlock(addr[i:end], size)
		if err != nil {
			return 0, nil, nil, err
		}
		raw = append(raw, block...)
	}

	body := raw[:rawLen-checksumSize]
	if !bytes.Equal(raw[rawLen-checksumSize:], monero.Keccak256(body)[:checksumSize]) {
		return 0, nil, nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}

	return body[0], body[1 : 1+monero.KeySize], body[1+monero.KeySize:], nil
}

// encodeBlock base58-encodes one block, left-padded with the alphabet's zero
// digit to the block's fixed encoded size.
func encodeBlock(block []byte) string {
	enc := base58.Encode(block)
	want := encodedSizes[len(block)]
	if pad := want - len(enc); pad > 0 {
		enc = strings.Repeat("1", pad) + enc
	}
	return enc
}

// decodeBlock inverts encodeBlock for a block of size bytes.
func decodeBlock(enc string, size int) ([]byte, error) {
	dec, err := base58.Decode(enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	// base58 drops leading zero bytes except for explicit zero digits; restore
	// the fixed block width.
	if len(dec) > size {
		// Strip redundant leading zeros from zero-digit padding.
		for len(dec) > size && dec[0] == 0 {
			dec = dec[1:]
		}
		if len(dec) > size {
			return nil, fmt.Errorf("%w: block overflows %d bytes", ErrInvalidAddress, size)
		}
	}

	block := make([]byte, size)
	copy(block[size-len(dec):], dec)
	return block, nil
}
