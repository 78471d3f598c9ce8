// Package base58check wraps the Bitcoin-alphabet Base58 codec with the
// 4-byte double-SHA-256 checksum suffix used by extended keys and TRON
// addresses alike.
package base58check

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const checksumLen = 4

// Encode returns Base58(payload || first4(SHA256(SHA256(payload)))).
func Encode(payload []byte) string {
	checksum := doubleSHA256(payload)[:checksumLen]
	buf := make([]byte, 0, len(payload)+checksumLen)
	buf = append(buf, payload...)
	buf = append(buf, checksum...)
	return base58.Encode(buf)
}

// Decode reverses Encode, verifying the checksum and the declared payload
// length. It returns an error if the string is not valid Base58, if the
// checksum does not match, or if the decoded payload is not exactly
// expectedLen bytes.
func Decode(s string, expectedLen int) ([]byte, error) {
	raw := base58.Decode(s)
	if len(raw) != expectedLen+checksumLen {
		return nil, fmt.Errorf("base58check: decoded length %d, want %d", len(raw), expectedLen+checksumLen)
	}
	payload := raw[:expectedLen]
	checksum := raw[expectedLen:]
	want := doubleSHA256(payload)[:checksumLen]
	for i := range checksum {
		if checksum[i] != want[i] {
			return nil, fmt.Errorf("base58check: checksum mismatch")
		}
	}
	return payload, nil
}

func doubleSHA256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}
