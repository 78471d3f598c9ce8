package extendedkey_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/walletcore/base58check"
	"github.com/not-for-prod/walletcore/bip32"
	"github.com/not-for-prod/walletcore/extendedkey"
)

func TestSerializeDeserializeRoundTripPrivate(t *testing.T) {
	node := bip32.FromSeed([]byte("a deterministic 32+ byte test seed!!"))

	encoded, err := extendedkey.Serialize(&node, 0xdeadbeef, false)
	require.NoError(t, err)

	decoded, err := extendedkey.Deserialize(encoded)
	require.NoError(t, err)

	require.Equal(t, node.PrivateKey, decoded.PrivateKey)
	require.Equal(t, node.ChainCode, decoded.ChainCode)
	require.Equal(t, node.Depth, decoded.Depth)
	require.Equal(t, node.ChildNum, decoded.ChildNum)
}

func TestSerializeDeserializeRoundTripPublic(t *testing.T) {
	node := bip32.FromSeed([]byte("another deterministic test seed for public"))
	require.NoError(t, node.FillPublicKey())

	encoded, err := extendedkey.Serialize(&node, 0x01020304, true)
	require.NoError(t, err)

	decoded, err := extendedkey.Deserialize(encoded)
	require.NoError(t, err)

	require.Equal(t, node.PublicKey, decoded.PublicKey)
	require.True(t, decoded.IsPublicOnly())
}

func TestDeserializeRejectsTamperedChecksum(t *testing.T) {
	node := bip32.FromSeed([]byte("checksum tamper test seed value"))
	encoded, err := extendedkey.Serialize(&node, 0, false)
	require.NoError(t, err)

	tampered := []byte(encoded)
	last := tampered[len(tampered)-1]
	if last == 'z' {
		tampered[len(tampered)-1] = 'y'
	} else {
		tampered[len(tampered)-1] = 'z'
	}

	_, err = extendedkey.Deserialize(string(tampered))
	require.Error(t, err)
}

func TestDeserializeRejectsUnrecognizedVersion(t *testing.T) {
	// 78 zero bytes with a valid checksum: version 0x00000000 is neither
	// the private nor the public version.
	var raw [78]byte
	_, err := extendedkey.Deserialize(base58check.Encode(raw[:]))
	require.Error(t, err)
}
