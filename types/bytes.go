package types

import (
	"encoding/hex"
	"fmt"
)

// Bytes is an opaque byte buffer, the binding used for every ASN.1 OCTET
// STRING or BIT STRING field that this module does not interpret further
// (RSA/DSA key material is BigInt; EC points and curve coefficients are
// Bytes). A Bytes value returned from a decoder is a sub-slice of the
// decoder's input and shares its memory; callers should not mutate it.
type Bytes []byte

// Equal reports whether two buffers hold identical content.
func (b Bytes) Equal(other Bytes) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders a hexdump, matching the JSON auxiliary representation.
func (b Bytes) String() string {
	return hex.EncodeToString(b)
}

// MarshalJSON renders the buffer as its hexdump representation, per the
// diagnostics-only JSON auxiliary interface.
func (b Bytes) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", hex.EncodeToString(b))), nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	var s string
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		s = string(data[1 : len(data)-1])
	} else {
		s = string(data)
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("types: invalid hex buffer: %w", err)
	}
	*b = decoded
	return nil
}
