package derivationpath_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/walletcore/derivationpath"
	"github.com/not-for-prod/walletcore/hderrors"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want derivationpath.Path
	}{
		{
			name: "root only",
			in:   "m",
			want: derivationpath.New(nil),
		},
		{
			name: "root only capital",
			in:   "M",
			want: derivationpath.New(nil),
		},
		{
			name: "single non-hardened",
			in:   "M/0",
			want: derivationpath.New([]derivationpath.Index{derivationpath.NewIndex(0, false)}),
		},
		{
			name: "full bip44 tron path",
			in:   "m/44'/195'/0'/0/0",
			want: derivationpath.NewBIP44(44, 195, 0, 0, 0),
		},
		{
			name: "lowercase h hardened marker",
			in:   "m/44h/195h/0h/0/0",
			want: derivationpath.NewBIP44(44, 195, 0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := derivationpath.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"",
		"44'/195'/0'/0/0",
		"m/2147483648",
		"m//0",
		"m/0x1",
		"x/0",
		"m/",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := derivationpath.Parse(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, hderrors.ErrInvalidPath))
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	paths := []string{
		"m",
		"m/44'/195'/0'/0/0",
		"m/0",
		"m/2147483647'/1",
	}

	for _, s := range paths {
		t.Run(s, func(t *testing.T) {
			p, err := derivationpath.Parse(s)
			require.NoError(t, err)
			assert.Equal(t, s, p.String())
		})
	}
}

func TestParseExactComponentsForTronAccountPath(t *testing.T) {
	p, err := derivationpath.Parse("m/44'/195'/0'/0/0")
	require.NoError(t, err)

	want := []derivationpath.Index{
		derivationpath.NewIndex(44, true),
		derivationpath.NewIndex(195, true),
		derivationpath.NewIndex(0, true),
		derivationpath.NewIndex(0, false),
		derivationpath.NewIndex(0, false),
	}
	assert.Equal(t, want, p.Indices)
}

func TestBIP44Accessors(t *testing.T) {
	p := derivationpath.NewBIP44(44, 195, 7, 1, 3)
	assert.Equal(t, uint32(44), p.PurposeValue())
	assert.Equal(t, uint32(195), p.Coin())
	assert.Equal(t, uint32(7), p.Account())
	assert.Equal(t, uint32(1), p.Change())
	assert.Equal(t, uint32(3), p.Address())
}

func TestMutators(t *testing.T) {
	p := derivationpath.NewBIP44(44, 0, 0, 0, 0)

	p.SetPurpose(44)
	p.SetCoin(195)
	p.SetAccount(7)
	p.SetChange(1)
	p.SetAddress(3)

	assert.Equal(t, uint32(44), p.PurposeValue())
	assert.Equal(t, uint32(195), p.Coin())
	assert.Equal(t, uint32(7), p.Account())
	assert.Equal(t, uint32(1), p.Change())
	assert.Equal(t, uint32(3), p.Address())

	assert.True(t, p.Indices[0].Hardened)
	assert.True(t, p.Indices[1].Hardened)
	assert.True(t, p.Indices[2].Hardened)
	assert.False(t, p.Indices[3].Hardened)
	assert.False(t, p.Indices[4].Hardened)
}

func TestMutatorsNoOpOnShortPath(t *testing.T) {
	p := derivationpath.New([]derivationpath.Index{derivationpath.NewIndex(44, true)})

	p.SetCoin(195)
	p.SetAccount(7)

	assert.Equal(t, uint32(0), p.Coin())
	assert.Equal(t, uint32(0), p.Account())
	assert.Len(t, p.Indices, 1)
}

func TestDerivationIndex(t *testing.T) {
	hardened := derivationpath.NewIndex(44, true)
	assert.Equal(t, uint32(44)|derivationpath.HardenedOffset, hardened.DerivationIndex())

	plain := derivationpath.NewIndex(0, false)
	assert.Equal(t, uint32(0), plain.DerivationIndex())
}
