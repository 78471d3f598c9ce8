package bip32

import (
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// errPointAtInfinity signals a tweak-add that landed on the group identity;
// callers translate this into hderrors.ErrInvalidDerivedKey.
var errPointAtInfinity = errors.New("bip32: point at infinity")

// tweakAddScalar computes (parent + il) mod n, the secp256k1 oracle's
// scalar-tweak-add operation. It reports failure (via the bool) when the
// sum reduces to zero, per BIP32's "ki = 0" rejection case.
func tweakAddScalar(parent [32]byte, il []byte) (out [32]byte, ok bool) {
	n := secp256k1.S256().Params().N
	p := new(big.Int).SetBytes(parent[:])
	l := new(big.Int).SetBytes(il)
	sum := new(big.Int).Add(p, l)
	sum.Mod(sum, n)
	if sum.Sign() == 0 {
		return out, false
	}
	b := sum.Bytes()
	copy(out[32-len(b):], b)
	return out, true
}

// tweakAddPoint computes serP(point(parse256(il)) + parentPub), the
// secp256k1 oracle's point-tweak-add operation, grounded on
// _examples/ModChain-secp256k1/ecckd/extended.go's ChildWithIL.
func tweakAddPoint(parentPubCompressed []byte, il []byte) ([33]byte, error) {
	var out [33]byte
	curve := secp256k1.S256()

	ilX, ilY := curve.ScalarBaseMult(il)
	if ilX.Sign() == 0 && ilY.Sign() == 0 {
		return out, errPointAtInfinity
	}

	parentPub, err := secp256k1.ParsePubKey(parentPubCompressed)
	if err != nil {
		return out, err
	}
	parentX := fieldValToBig(parentPub.X())
	parentY := fieldValToBig(parentPub.Y())

	childX, childY := curve.Add(ilX, ilY, parentX, parentY)
	if childX.Sign() == 0 && childY.Sign() == 0 {
		return out, errPointAtInfinity
	}

	child := secp256k1.NewPublicKey(bigToFieldVal(childX), bigToFieldVal(childY))
	copy(out[:], child.SerializeCompressed())
	return out, nil
}

func fieldValToBig(f *secp256k1.FieldVal) *big.Int {
	b := f.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func bigToFieldVal(v *big.Int) *secp256k1.FieldVal {
	fv := new(secp256k1.FieldVal)
	fv.SetByteSlice(v.Bytes())
	return fv
}
