// Package derivationpath implements the BIP44-flavored derivation-path
// grammar: structured indices plus their textual parse/format forms.
package derivationpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/not-for-prod/walletcore/hderrors"
)

// HardenedOffset is the bit set on a derivation index to mark it hardened.
const HardenedOffset uint32 = 0x80000000

// maxIndexValue is the exclusive upper bound on an index value (the largest
// accepted value is 2^31-1); the hardened bit must not collide with the
// value itself.
const maxIndexValue uint32 = 1 << 31

// Purpose is the BIP44 constant occupying position 0 of a standard path.
const Purpose uint32 = 44

// Index is a single derivation-path component: a 31-bit value plus whether
// it is hardened.
type Index struct {
	Value    uint32
	Hardened bool
}

// NewIndex builds a hardened or plain Index directly.
func NewIndex(value uint32, hardened bool) Index {
	return Index{Value: value, Hardened: hardened}
}

// DerivationIndex returns the raw 32-bit index used on the wire: Value with
// the hardened bit set if Hardened.
func (i Index) DerivationIndex() uint32 {
	if i.Hardened {
		return i.Value | HardenedOffset
	}
	return i.Value
}

// String renders the component's textual form: decimal value, optionally
// followed by an apostrophe for a hardened index.
func (i Index) String() string {
	if i.Hardened {
		return strconv.FormatUint(uint64(i.Value), 10) + "'"
	}
	return strconv.FormatUint(uint64(i.Value), 10)
}

// Path is an ordered sequence of derivation indices, e.g. the components of
// "m/44'/195'/0'/0/0".
type Path struct {
	Indices []Index
}

// New wraps an explicit index sequence.
func New(indices []Index) Path {
	return Path{Indices: indices}
}

// NewBIP44 builds the canonical five-level BIP44 path: purpose, coin, and
// account are hardened by convention; change and address are not.
func NewBIP44(purpose, coin, account, change, address uint32) Path {
	return Path{Indices: []Index{
		NewIndex(purpose, true),
		NewIndex(coin, true),
		NewIndex(account, true),
		NewIndex(change, false),
		NewIndex(address, false),
	}}
}

// Parse parses a string like "m/44'/195'/0'/0/0" into a Path. "m" (or "M")
// alone yields an empty path. It fails with hderrors.ErrInvalidPath on any
// deviation from the grammar: missing leading m/M, empty components,
// non-decimal digits, values >= 2^31, or a misplaced hardened marker.
func Parse(s string) (Path, error) {
	if len(s) == 0 {
		return Path{}, fmt.Errorf("%w: empty path", hderrors.ErrInvalidPath)
	}
	if s[0] != 'm' && s[0] != 'M' {
		return Path{}, fmt.Errorf("%w: path must start with m or M", hderrors.ErrInvalidPath)
	}
	rest := s[1:]
	if rest == "" {
		return Path{}, nil
	}
	if rest[0] != '/' {
		return Path{}, fmt.Errorf("%w: expected '/' after m", hderrors.ErrInvalidPath)
	}
	rest = rest[1:]

	parts := strings.Split(rest, "/")
	indices := make([]Index, 0, len(parts))
	for _, part := range parts {
		idx, err := parseComponent(part)
		if err != nil {
			return Path{}, err
		}
		indices = append(indices, idx)
	}
	return Path{Indices: indices}, nil
}

func parseComponent(part string) (Index, error) {
	if part == "" {
		return Index{}, fmt.Errorf("%w: empty path component", hderrors.ErrInvalidPath)
	}

	hardened := false
	digits := part
	last := part[len(part)-1]
	if last == '\'' || last == 'h' || last == 'H' {
		hardened = true
		digits = part[:len(part)-1]
	}
	if digits == "" {
		return Index{}, fmt.Errorf("%w: missing digits in component %q", hderrors.ErrInvalidPath, part)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Index{}, fmt.Errorf("%w: non-decimal component %q", hderrors.ErrInvalidPath, part)
		}
	}

	value, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return Index{}, fmt.Errorf("%w: component %q overflows u32", hderrors.ErrInvalidPath, part)
	}
	if uint32(value) >= maxIndexValue {
		return Index{}, fmt.Errorf("%w: component %q >= 2^31", hderrors.ErrInvalidPath, part)
	}

	return Index{Value: uint32(value), Hardened: hardened}, nil
}

// String is the inverse of Parse: "m", then "/" + component for each index.
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('m')
	for _, idx := range p.Indices {
		b.WriteByte('/')
		b.WriteString(idx.String())
	}
	return b.String()
}

func (p Path) at(pos int) uint32 {
	if pos >= len(p.Indices) {
		return 0
	}
	return p.Indices[pos].Value
}

// PurposeValue returns component 0's value, or 0 if the path is shorter.
func (p Path) PurposeValue() uint32 { return p.at(0) }

// Coin returns component 1's value, or 0 if the path is shorter.
func (p Path) Coin() uint32 { return p.at(1) }

// Account returns component 2's value, or 0 if the path is shorter.
func (p Path) Account() uint32 { return p.at(2) }

// Change returns component 3's value, or 0 if the path is shorter.
func (p Path) Change() uint32 { return p.at(3) }

// Address returns component 4's value, or 0 if the path is shorter.
func (p Path) Address() uint32 { return p.at(4) }

// set overwrites the index at pos with value and the given hardened flag,
// and is a no-op if the path is too short to hold pos.
func (p Path) set(pos int, value uint32, hardened bool) {
	if pos >= len(p.Indices) {
		return
	}
	p.Indices[pos] = NewIndex(value, hardened)
}

// SetPurpose overwrites component 0, hardened, if present.
func (p Path) SetPurpose(v uint32) { p.set(0, v, true) }

// SetCoin overwrites component 1, hardened, if present.
func (p Path) SetCoin(v uint32) { p.set(1, v, true) }

// SetAccount overwrites component 2, hardened, if present.
func (p Path) SetAccount(v uint32) { p.set(2, v, true) }

// SetChange overwrites component 3, non-hardened, if present.
func (p Path) SetChange(v uint32) { p.set(3, v, false) }

// SetAddress overwrites component 4, non-hardened, if present.
func (p Path) SetAddress(v uint32) { p.set(4, v, false) }
