// Package wallet is the seed-rooted HD wallet façade: derive a key by
// path, and produce/consume extended keys for a BIP44 account.
package wallet

import (
	"fmt"

	"github.com/not-for-prod/walletcore/bip32"
	"github.com/not-for-prod/walletcore/derivationpath"
	"github.com/not-for-prod/walletcore/extendedkey"
	"github.com/not-for-prod/walletcore/hderrors"
	"github.com/not-for-prod/walletcore/keys"
)

// SeedLen is the exact seed length HDWallet requires. NewHDWallet rejects
// any other length outright rather than silently truncating or padding —
// see DESIGN.md Open Question 2.
const SeedLen = 64

// HDWallet holds a fixed 64-byte seed and exposes the convenience surface
// built on top of bip32.HDNode.
type HDWallet struct {
	seed [SeedLen]byte
}

// NewHDWallet requires a seed of exactly SeedLen bytes.
func NewHDWallet(seed []byte) (HDWallet, error) {
	if len(seed) != SeedLen {
		return HDWallet{}, fmt.Errorf("wallet: seed must be %d bytes, got %d", SeedLen, len(seed))
	}
	var w HDWallet
	copy(w.seed[:], seed)
	return w, nil
}

func (w HDWallet) rootNode() bip32.HDNode {
	return bip32.FromSeed(w.seed[:])
}

// RootKey returns the private key of the seed's root node.
func (w HDWallet) RootKey() keys.PrivateKey {
	root := w.rootNode()
	return keys.NewPrivateKey(root.PrivateKey)
}

func (w HDWallet) nodeAt(path derivationpath.Path) (bip32.HDNode, error) {
	node := w.rootNode()
	for _, idx := range path.Indices {
		child, err := node.PrivateCKD(idx.DerivationIndex())
		if err != nil {
			return bip32.HDNode{}, err
		}
		node = child
	}
	return node, nil
}

// KeyAt derives the terminal private key reached by applying private CKD
// for every component of path, starting from the root.
func (w HDWallet) KeyAt(path derivationpath.Path) (keys.PrivateKey, error) {
	node, err := w.nodeAt(path)
	if err != nil {
		return keys.PrivateKey{}, err
	}
	return keys.NewPrivateKey(node.PrivateKey), nil
}

// accountNode derives down to m/44'/coin'/account', capturing the
// fingerprint of the m/44'/coin' node (the BIP32 parent-fingerprint
// convention: a node's serialized fingerprint is that of its parent).
func (w HDWallet) accountNode(coin, account uint32) (bip32.HDNode, uint32, error) {
	coinPath := derivationpath.New([]derivationpath.Index{
		derivationpath.NewIndex(derivationpath.Purpose, true),
		derivationpath.NewIndex(coin, true),
	})
	coinNode, err := w.nodeAt(coinPath)
	if err != nil {
		return bip32.HDNode{}, 0, err
	}
	fingerprint, err := bip32.Fingerprint(&coinNode)
	if err != nil {
		return bip32.HDNode{}, 0, err
	}
	accountNode, err := coinNode.PrivateCKD(account | bip32.HardenedBit)
	if err != nil {
		return bip32.HDNode{}, 0, err
	}
	return accountNode, fingerprint, nil
}

// ExtendedPrivateAccount derives m/44'/coin'/account' and serializes it as
// a private extended key ("xprv"-family).
func (w HDWallet) ExtendedPrivateAccount(coin, account uint32) (string, error) {
	node, fingerprint, err := w.accountNode(coin, account)
	if err != nil {
		return "", err
	}
	return extendedkey.Serialize(&node, fingerprint, false)
}

// ExtendedPublicAccount derives m/44'/coin'/account' and serializes it as a
// public extended key ("xpub"-family).
func (w HDWallet) ExtendedPublicAccount(coin, account uint32) (string, error) {
	node, fingerprint, err := w.accountNode(coin, account)
	if err != nil {
		return "", err
	}
	if err := node.FillPublicKey(); err != nil {
		return "", err
	}
	return extendedkey.Serialize(&node, fingerprint, true)
}

// PublicKeyFromExtended deserializes extended (public or private) and
// applies public CKD for path's change then address components, returning
// the resulting compressed public key.
//
// A private extended key is accepted by projecting its private key to the
// corresponding public key before the two public CKDs, rather than
// (incorrectly) treating the private key bytes as a public key — see
// DESIGN.md Open Question 1.
func PublicKeyFromExtended(extended string, path derivationpath.Path) (keys.PublicKey, error) {
	node, err := extendedkey.Deserialize(extended)
	if err != nil {
		return keys.PublicKey{}, err
	}
	if err := node.FillPublicKey(); err != nil {
		return keys.PublicKey{}, err
	}

	node, err = node.PublicCKD(path.Change())
	if err != nil {
		return keys.PublicKey{}, err
	}
	node, err = node.PublicCKD(path.Address())
	if err != nil {
		return keys.PublicKey{}, err
	}
	return keys.NewPublicKey(node.PublicKey), nil
}

// PrivateKeyFromExtended deserializes extended, which must be a private
// extended key, and applies private CKD for path's change then address
// components, returning the terminal private key.
func PrivateKeyFromExtended(extended string, path derivationpath.Path) (keys.PrivateKey, error) {
	node, err := extendedkey.Deserialize(extended)
	if err != nil {
		return keys.PrivateKey{}, err
	}
	if node.IsPublicOnly() {
		return keys.PrivateKey{}, fmt.Errorf("wallet: extended key has no private material: %w", hderrors.ErrMalformedExtended)
	}

	node, err = node.PrivateCKD(path.Change())
	if err != nil {
		return keys.PrivateKey{}, err
	}
	node, err = node.PrivateCKD(path.Address())
	if err != nil {
		return keys.PrivateKey{}, err
	}
	return keys.NewPrivateKey(node.PrivateKey), nil
}
