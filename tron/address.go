// Package tron derives TRON addresses from secp256k1 public keys using the
// network's Keccak-256/Base58Check address scheme.
package tron

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/not-for-prod/walletcore/base58check"
	"github.com/not-for-prod/walletcore/hderrors"
	"github.com/not-for-prod/walletcore/keys"
)

// AddressPrefix is TRON's single-byte address-version marker.
const AddressPrefix = 0x41

// AddressLen is the length in bytes of an unencoded TRON address
// (prefix + 20-byte hash).
const AddressLen = 21

// Address is a derived TRON address: AddressPrefix followed by the last 20
// bytes of Keccak-256(uncompressed_public_key[1:]).
type Address struct {
	data [AddressLen]byte
}

// FromPublicKey derives the TRON address for pub.
func FromPublicKey(pub keys.PublicKey) (Address, error) {
	uncompressed, err := pub.Uncompressed()
	if err != nil {
		return Address{}, fmt.Errorf("tron: %v: %w", err, hderrors.ErrCryptoFailure)
	}

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(uncompressed[1:])
	digest := hasher.Sum(nil)

	var addr Address
	addr.data[0] = AddressPrefix
	copy(addr.data[1:], digest[len(digest)-20:])
	return addr, nil
}

// Bytes returns the 21-byte prefixed address.
func (a Address) Bytes() [AddressLen]byte { return a.data }

// Hex returns the lowercase hex encoding of the 21 raw bytes.
func (a Address) Hex() string {
	return hex.EncodeToString(a.data[:])
}

// String renders the address as Base58Check, TRON's 'T'-leading textual
// form.
func (a Address) String() string {
	return base58check.Encode(a.data[:])
}

// ParseAddress decodes a Base58Check TRON address string.
func ParseAddress(s string) (Address, error) {
	raw, err := base58check.Decode(s, AddressLen)
	if err != nil {
		return Address{}, fmt.Errorf("tron: %v: %w", err, hderrors.ErrMalformedExtended)
	}
	if raw[0] != AddressPrefix {
		return Address{}, fmt.Errorf("tron: unexpected address prefix %#02x: %w", raw[0], hderrors.ErrMalformedExtended)
	}
	var addr Address
	copy(addr.data[:], raw)
	return addr, nil
}
