// Package hderrors collects the flat error taxonomy shared by every layer
// of the HD wallet core: path parsing, extended-key framing, node
// derivation, and the wallet façade all fail with one of these sentinels.
package hderrors

import "errors"

var (
	// ErrInvalidPath is returned when a derivation-path string does not
	// conform to the "m/44'/0'/0'/0/0"-style grammar.
	ErrInvalidPath = errors.New("hdwallet: invalid derivation path")

	// ErrMalformedExtended is returned for a Base58Check failure, wrong
	// decoded length, unrecognized version, or a bad leading 0x00 byte on
	// an extended private key.
	ErrMalformedExtended = errors.New("hdwallet: malformed extended key")

	// ErrHardenedFromPublic is returned when a hardened child index is
	// requested from a public-only node.
	ErrHardenedFromPublic = errors.New("hdwallet: cannot derive a hardened child from a public key")

	// ErrInvalidDerivedKey is returned when an HMAC-SHA-512 output is
	// unusable: IL is not a valid scalar, or the tweak produced the
	// identity element / zero scalar.
	ErrInvalidDerivedKey = errors.New("hdwallet: derived key is invalid")

	// ErrCryptoFailure is returned when the secp256k1 oracle rejects an
	// input outside of the two cases above, e.g. public-key creation from
	// a zero or out-of-range scalar.
	ErrCryptoFailure = errors.New("hdwallet: crypto primitive failure")
)
