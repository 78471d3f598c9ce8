// Package keys provides the PrivateKey/PublicKey value objects wrapping
// secp256k1 key material, including the compressed/uncompressed SEC1
// encodings public keys on the curve carry.
package keys

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/not-for-prod/walletcore/hderrors"
)

// PrivateKeyLen is the size in bytes of a secp256k1 scalar.
const PrivateKeyLen = 32

// CompressedPublicKeyLen is the size in bytes of a SEC1-compressed point.
const CompressedPublicKeyLen = 33

// UncompressedPublicKeyLen is the size in bytes of a SEC1-uncompressed point.
const UncompressedPublicKeyLen = 65

// PrivateKey wraps 32 bytes of secp256k1 scalar material. Its range is not
// checked when it is built, so it may hold zero or a value not below the
// curve order; ValidScalar performs that check, and PublicKey applies it.
type PrivateKey struct {
	data [PrivateKeyLen]byte
}

// NewPrivateKey wraps 32 bytes of scalar material without validating range;
// callers that need a guaranteed-valid scalar should call ValidScalar first.
func NewPrivateKey(data [PrivateKeyLen]byte) PrivateKey {
	return PrivateKey{data: data}
}

// Bytes returns the 32-byte scalar.
func (k PrivateKey) Bytes() [PrivateKeyLen]byte { return k.data }

// PublicKey derives the compressed public key G*k for this private key. It
// fails with hderrors.ErrCryptoFailure if the scalar is zero or not reduced
// modulo the curve order.
func (k PrivateKey) PublicKey() (PublicKey, error) {
	if !ValidScalar(k.data[:]) {
		return PublicKey{}, fmt.Errorf("keys: invalid private scalar: %w", hderrors.ErrCryptoFailure)
	}
	priv := secp256k1.PrivKeyFromBytes(k.data[:])
	pub := priv.PubKey()
	var out [CompressedPublicKeyLen]byte
	copy(out[:], pub.SerializeCompressed())
	return PublicKey{data: out}, nil
}

// PublicKey wraps 33 bytes in SEC1-compressed encoding; the leading byte is
// always 0x02 or 0x03 for a materialized key.
type PublicKey struct {
	data [CompressedPublicKeyLen]byte
}

// NewPublicKey wraps a compressed SEC1 point without parsing it; use
// ParsePublicKey to validate that it lies on the curve.
func NewPublicKey(data [CompressedPublicKeyLen]byte) PublicKey {
	return PublicKey{data: data}
}

// ParsePublicKey parses and validates 33 bytes of compressed SEC1 encoding.
func ParsePublicKey(data []byte) (PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return PublicKey{}, fmt.Errorf("keys: %v: %w", err, hderrors.ErrCryptoFailure)
	}
	var out [CompressedPublicKeyLen]byte
	copy(out[:], pub.SerializeCompressed())
	return PublicKey{data: out}, nil
}

// Compressed returns the stored 33-byte SEC1-compressed encoding.
func (k PublicKey) Compressed() [CompressedPublicKeyLen]byte { return k.data }

// IsZero reports whether this is the all-zero "not yet materialized"
// sentinel rather than a real point.
func (k PublicKey) IsZero() bool { return k.data[0] == 0 }

// Uncompressed returns the SEC1 uncompressed encoding 0x04 || X || Y via the
// secp256k1 oracle.
func (k PublicKey) Uncompressed() ([UncompressedPublicKeyLen]byte, error) {
	var out [UncompressedPublicKeyLen]byte
	pub, err := secp256k1.ParsePubKey(k.data[:])
	if err != nil {
		return out, fmt.Errorf("keys: %v: %w", err, hderrors.ErrCryptoFailure)
	}
	copy(out[:], pub.SerializeUncompressed())
	return out, nil
}

// ValidScalar reports whether b, read as a big-endian 256-bit integer, is a
// valid secp256k1 private scalar: nonzero and below the curve order n.
func ValidScalar(b []byte) bool {
	if len(b) != PrivateKeyLen {
		return false
	}
	v := new(big.Int).SetBytes(b)
	if v.Sign() == 0 {
		return false
	}
	n := secp256k1.S256().Params().N
	return v.Cmp(n) < 0
}
