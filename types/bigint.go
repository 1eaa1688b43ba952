package types

import (
	"fmt"
	"math/big"
)

// Int wraps math/big.Int, the arbitrary-precision integer every ASN.1
// INTEGER field in this module decodes to. Values are treated as
// immutable after construction; callers should not mutate the embedded
// *big.Int returned by BigInt.
type Int struct {
	v *big.Int
}

// NewInt wraps an existing *big.Int. A nil argument is treated as zero.
func NewInt(v *big.Int) Int {
	if v == nil {
		return Int{v: new(big.Int)}
	}
	return Int{v: v}
}

// IntFromInt64 builds an Int from a machine integer.
func IntFromInt64(n int64) Int {
	return Int{v: big.NewInt(n)}
}

// IntFromString parses a decimal (or 0x-prefixed hex) string, mirroring
// the external big-integer binding's string I/O contract.
func IntFromString(s string) (Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Int{}, fmt.Errorf("types: invalid integer literal %q", s)
	}
	return Int{v: v}, nil
}

// BigInt returns the underlying *big.Int. The caller must not mutate it.
func (i Int) BigInt() *big.Int {
	if i.v == nil {
		return new(big.Int)
	}
	return i.v
}

// Equal reports whether two Ints carry the same numeric value.
func (i Int) Equal(other Int) bool {
	return i.BigInt().Cmp(other.BigInt()) == 0
}

// String renders the decimal form of the value.
func (i Int) String() string {
	return i.BigInt().String()
}

// MarshalJSON renders the value as a decimal string, per the JSON
// auxiliary interface described for diagnostics (not part of the wire
// format).
func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", i.BigInt().String())), nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (i *Int) UnmarshalJSON(data []byte) error {
	var s string
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		s = string(data[1 : len(data)-1])
	} else {
		s = string(data)
	}
	v, err := IntFromString(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
