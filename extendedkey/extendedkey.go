// Package extendedkey implements the 78-byte versioned extended-key
// layout and its Base58Check textual framing.
package extendedkey

import (
	"encoding/binary"
	"fmt"

	"github.com/not-for-prod/walletcore/base58check"
	"github.com/not-for-prod/walletcore/bip32"
	"github.com/not-for-prod/walletcore/hderrors"
)

// Version constants for the Bitcoin-mainnet "xprv"/"xpub" family.
const (
	VersionPrivate uint32 = 0x0488ADE4
	VersionPublic  uint32 = 0x0488B21E
)

const serializedLen = 78

// Serialize renders node as the 78-byte versioned layout wrapped in
// Base58Check. For the public form, node's compressed public key must be
// (or is made, in place) materialized.
func Serialize(node *bip32.HDNode, parentFingerprint uint32, isPublic bool) (string, error) {
	var buf [serializedLen]byte

	version := VersionPrivate
	if isPublic {
		version = VersionPublic
	}
	binary.BigEndian.PutUint32(buf[0:4], version)
	buf[4] = byte(node.Depth)
	binary.BigEndian.PutUint32(buf[5:9], parentFingerprint)
	binary.BigEndian.PutUint32(buf[9:13], node.ChildNum)
	copy(buf[13:45], node.ChainCode[:])

	if isPublic {
		if err := node.FillPublicKey(); err != nil {
			return "", err
		}
		copy(buf[45:78], node.PublicKey[:])
	} else {
		buf[45] = 0x00
		copy(buf[46:78], node.PrivateKey[:])
	}

	return base58check.Encode(buf[:]), nil
}

// Deserialize parses a Base58Check extended-key string back into an
// HDNode. The parent fingerprint is read but discarded, as BIP32 does not
// use it for further derivation. It fails with hderrors.ErrMalformedExtended
// on a checksum/length mismatch, an unrecognized version, or a bad leading
// byte on a private key payload.
func Deserialize(s string) (bip32.HDNode, error) {
	raw, err := base58check.Decode(s, serializedLen)
	if err != nil {
		return bip32.HDNode{}, fmt.Errorf("extendedkey: %v: %w", err, hderrors.ErrMalformedExtended)
	}

	version := binary.BigEndian.Uint32(raw[0:4])
	var isPublic bool
	switch version {
	case VersionPublic:
		isPublic = true
	case VersionPrivate:
		isPublic = false
	default:
		return bip32.HDNode{}, fmt.Errorf("extendedkey: unrecognized version %#08x: %w", version, hderrors.ErrMalformedExtended)
	}

	var node bip32.HDNode
	node.Depth = uint32(raw[4])
	// raw[5:9] is the parent fingerprint; informational only, not validated.
	node.ChildNum = binary.BigEndian.Uint32(raw[9:13])
	copy(node.ChainCode[:], raw[13:45])

	if isPublic {
		copy(node.PublicKey[:], raw[45:78])
	} else {
		if raw[45] != 0x00 {
			return bip32.HDNode{}, fmt.Errorf("extendedkey: private key missing 0x00 prefix: %w", hderrors.ErrMalformedExtended)
		}
		copy(node.PrivateKey[:], raw[46:78])
	}

	return node, nil
}
