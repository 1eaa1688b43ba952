package types

import (
	encasn1 "encoding/asn1"
	"fmt"
	"strconv"
	"strings"
)

// OID is a globally-unique dotted-decimal object identifier, the binding
// used for every ASN.1 OBJECT IDENTIFIER value in this module (algorithm
// identifiers, EC field types, EC basis selectors).
type OID []int

// NewOID builds an OID from its component arcs.
func NewOID(arcs ...int) OID {
	out := make(OID, len(arcs))
	copy(out, arcs)
	return out
}

// Equal reports whether two OIDs name the same arc sequence.
func (o OID) Equal(other OID) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if o[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the dotted-decimal form, e.g. "1.2.840.113549.1.1.1".
func (o OID) String() string {
	parts := make([]string, len(o))
	for i, arc := range o {
		parts[i] = strconv.Itoa(arc)
	}
	return strings.Join(parts, ".")
}

// MarshalJSON renders the dotted-decimal string, per the diagnostics-only
// JSON auxiliary interface.
func (o OID) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", o.String())), nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (o *OID) UnmarshalJSON(data []byte) error {
	var s string
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		s = string(data[1 : len(data)-1])
	} else {
		s = string(data)
	}
	parts := strings.Split(s, ".")
	arcs := make(OID, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("types: invalid OID component %q: %w", p, err)
		}
		arcs = append(arcs, n)
	}
	*o = arcs
	return nil
}

// ToStd converts to the standard library's encoding/asn1.ObjectIdentifier,
// the representation golang.org/x/crypto/cryptobyte's ASN.1 reader/writer
// uses for OBJECT IDENTIFIER values.
func (o OID) ToStd() encasn1.ObjectIdentifier {
	return encasn1.ObjectIdentifier(o)
}

// FromStd converts from the standard library's ObjectIdentifier type.
func FromStd(std encasn1.ObjectIdentifier) OID {
	return OID(std)
}
