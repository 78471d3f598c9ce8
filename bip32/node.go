// Package bip32 implements the HD node and its child-key-derivation (CKD)
// algorithms, both private and public variants, following BIP32.
package bip32

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/not-for-prod/walletcore/hderrors"
	"github.com/not-for-prod/walletcore/keys"
)

// HardenedBit is the bit set on a child index to request hardened
// derivation.
const HardenedBit uint32 = 0x80000000

// masterHMACKey is the fixed HMAC-SHA-512 key BIP32 uses to derive the
// master node from a seed.
var masterHMACKey = []byte("Bitcoin seed")

// HDNode is the BIP32 entity: chain code, key material, and tree metadata.
// PrivateKey is all-zero for a public-only node; PublicKey is all-zero
// until FillPublicKey materializes it (or the node was produced by
// PublicCKD / deserialized from a public extended key, which materialize
// it immediately).
type HDNode struct {
	PrivateKey [32]byte
	PublicKey  [33]byte
	ChainCode  [32]byte
	Depth      uint32
	ChildNum   uint32
}

// FromSeed computes the root node: private_key || chain_code =
// HMAC-SHA-512(key = "Bitcoin seed", msg = seed). It does not validate the
// resulting scalar; a downstream FillPublicKey or CKD call surfaces any
// problem explicitly.
func FromSeed(seed []byte) HDNode {
	mac := hmac.New(sha512.New, masterHMACKey)
	mac.Write(seed)
	i := mac.Sum(nil)

	var node HDNode
	copy(node.PrivateKey[:], i[:32])
	copy(node.ChainCode[:], i[32:64])
	return node
}

// IsPublicOnly reports whether the node carries no private key material.
func (n *HDNode) IsPublicOnly() bool {
	for _, b := range n.PrivateKey {
		if b != 0 {
			return false
		}
	}
	return true
}

// FillPublicKey materializes the compressed public key cache in place. It
// is a no-op if already materialized (leading byte nonzero).
func (n *HDNode) FillPublicKey() error {
	if n.PublicKey[0] != 0 {
		return nil
	}
	if !keys.ValidScalar(n.PrivateKey[:]) {
		return fmt.Errorf("bip32: cannot materialize public key: %w", hderrors.ErrCryptoFailure)
	}
	priv := keys.NewPrivateKey(n.PrivateKey)
	pub, err := priv.PublicKey()
	if err != nil {
		return err
	}
	n.PublicKey = pub.Compressed()
	return nil
}

// Fingerprint ensures the public key is materialized and returns the first
// 4 bytes of RIPEMD160(SHA256(public_key)) as a big-endian uint32.
func Fingerprint(n *HDNode) (uint32, error) {
	if err := n.FillPublicKey(); err != nil {
		return 0, err
	}
	h := btcutil.Hash160(n.PublicKey[:])
	return uint32(h[0])<<24 | uint32(h[1])<<16 | uint32(h[2])<<8 | uint32(h[3]), nil
}

// PrivateCKD derives the child at raw index i (hardened bit already baked
// in by the caller). A public-only node rejects a hardened request with
// hderrors.ErrHardenedFromPublic.
func (n *HDNode) PrivateCKD(i uint32) (HDNode, error) {
	hardened := i&HardenedBit != 0

	data := make([]byte, 0, 37)
	if hardened {
		if n.IsPublicOnly() {
			return HDNode{}, fmt.Errorf("bip32: hardened child from public-only node: %w", hderrors.ErrHardenedFromPublic)
		}
		data = append(data, 0x00)
		data = append(data, n.PrivateKey[:]...)
	} else {
		if err := n.FillPublicKey(); err != nil {
			return HDNode{}, err
		}
		data = append(data, n.PublicKey[:]...)
	}
	data = appendBE32(data, i)

	il, ir := hmacSHA512Split(n.ChainCode[:], data)
	if !keys.ValidScalar(il) {
		return HDNode{}, fmt.Errorf("bip32: IL not a valid scalar: %w", hderrors.ErrInvalidDerivedKey)
	}

	childPriv, ok := tweakAddScalar(n.PrivateKey, il)
	if !ok {
		return HDNode{}, fmt.Errorf("bip32: tweak-add produced zero key: %w", hderrors.ErrInvalidDerivedKey)
	}

	var child HDNode
	child.PrivateKey = childPriv
	copy(child.ChainCode[:], ir)
	child.Depth = n.Depth + 1
	child.ChildNum = i
	return child, nil
}

// PublicCKD derives the public-only child at index i. It fails with
// hderrors.ErrHardenedFromPublic if i has the hardened bit set.
func (n *HDNode) PublicCKD(i uint32) (HDNode, error) {
	if i&HardenedBit != 0 {
		return HDNode{}, fmt.Errorf("bip32: %w", hderrors.ErrHardenedFromPublic)
	}
	if err := n.FillPublicKey(); err != nil {
		return HDNode{}, err
	}

	data := make([]byte, 0, 37)
	data = append(data, n.PublicKey[:]...)
	data = appendBE32(data, i)

	il, ir := hmacSHA512Split(n.ChainCode[:], data)
	if !keys.ValidScalar(il) {
		return HDNode{}, fmt.Errorf("bip32: IL not a valid scalar: %w", hderrors.ErrInvalidDerivedKey)
	}

	childPub, err := tweakAddPoint(n.PublicKey[:], il)
	if err != nil {
		return HDNode{}, fmt.Errorf("bip32: %w", hderrors.ErrInvalidDerivedKey)
	}

	var child HDNode
	child.PublicKey = childPub
	copy(child.ChainCode[:], ir)
	child.Depth = n.Depth + 1
	child.ChildNum = i
	return child, nil
}

func hmacSHA512Split(key, data []byte) (il, ir []byte) {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:64]
}

func appendBE32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}
