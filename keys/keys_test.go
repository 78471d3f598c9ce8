package keys_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/walletcore/keys"
)

func TestValidScalarBoundaries(t *testing.T) {
	var zero [keys.PrivateKeyLen]byte
	require.False(t, keys.ValidScalar(zero[:]))

	var one [keys.PrivateKeyLen]byte
	one[keys.PrivateKeyLen-1] = 1
	require.True(t, keys.ValidScalar(one[:]))

	require.False(t, keys.ValidScalar(make([]byte, keys.PrivateKeyLen-1)))

	// secp256k1 order n, which must be rejected as >= n.
	n := []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
		0xba, 0xae, 0xdc, 0xe6, 0xaf, 0x48, 0xa0, 0x3b,
		0xbf, 0xd2, 0x5e, 0x8c, 0xd0, 0x36, 0x41, 0x41,
	}
	require.False(t, keys.ValidScalar(n))
}

func TestPublicKeyCompressedUncompressedRoundTrip(t *testing.T) {
	var priv [keys.PrivateKeyLen]byte
	priv[keys.PrivateKeyLen-1] = 0x2a

	pub, err := keys.NewPrivateKey(priv).PublicKey()
	require.NoError(t, err)

	uncompressed, err := pub.Uncompressed()
	require.NoError(t, err)
	require.Equal(t, byte(0x04), uncompressed[0])

	reparsed, err := keys.ParsePublicKey(pub.Compressed()[:])
	require.NoError(t, err)
	require.Equal(t, pub.Compressed(), reparsed.Compressed())
}

func TestPublicKeyFromZeroScalarFails(t *testing.T) {
	var zero [keys.PrivateKeyLen]byte
	_, err := keys.NewPrivateKey(zero).PublicKey()
	require.Error(t, err)
}
