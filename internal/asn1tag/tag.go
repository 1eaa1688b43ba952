// Package asn1tag collects the small helpers shared by every grammar in
// this module: context-specific tag construction for ASN.1 EXPLICIT/
// IMPLICIT fields, and the trailing-bytes check every top-level decoder
// applies. It sits directly on golang.org/x/crypto/cryptobyte and
// cryptobyte/asn1, the TLV codec this module treats as the external
// schema-combinator substrate (spec §4.1).
package asn1tag

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// ReadBigInt reads an ASN.1 INTEGER as an arbitrary-precision, non-negative
// value. Grounded on Yawning-secp256k1-voi's secec/asn1.go, which reads
// INTEGER fields into a raw []byte via ReadASN1Integer before converting
// with big.Int.SetBytes; this module's INTEGER fields are always
// modulus-style non-negative values (spec §3), so no sign handling beyond
// what cryptobyte already applies to the DER encoding is needed.
func ReadBigInt(s *cryptobyte.String) (*big.Int, bool) {
	var raw []byte
	if !s.ReadASN1Integer(&raw) {
		return nil, false
	}
	return new(big.Int).SetBytes(raw), true
}

// WriteBigInt appends an ASN.1 INTEGER for the given value.
func WriteBigInt(b *cryptobyte.Builder, n *big.Int) {
	b.AddASN1BigInt(n)
}

// Explicit returns the constructed context-specific tag used to wrap an
// EXPLICIT [n] field: the inner schema is encoded normally and the whole
// TLV is wrapped in one more SEQUENCE-shaped tag.
func Explicit(n int) cbasn1.Tag {
	return cbasn1.Tag(n).ContextSpecific().Constructed()
}

// Implicit returns the context-specific tag used for an IMPLICIT [n]
// field: the inner schema's own tag is replaced rather than wrapped.
// constructed must match whether the replaced universal tag was itself
// constructed (true for SEQUENCE/SET, false for INTEGER/OCTET STRING/...).
func Implicit(n int, constructed bool) cbasn1.Tag {
	tag := cbasn1.Tag(n).ContextSpecific()
	if constructed {
		tag = tag.Constructed()
	}
	return tag
}

// AnyElement reads one complete ASN.1 TLV (the "ANY" schema), returning
// its observed tag and the full tag+length+content bytes. Grounded on
// zmap/zlint's algorithm_identifier.go, which uses
// ReadAnyASN1Element to peek an AlgorithmIdentifier's parameters without
// committing to a shape up front — the same move this module needs for
// EC's fieldType/basis-discriminated ANY parameters.
func AnyElement(s *cryptobyte.String) (tag cbasn1.Tag, element cryptobyte.String, ok bool) {
	ok = s.ReadAnyASN1Element(&element, &tag)
	return tag, element, ok
}

// CheckEmpty enforces the trailing-bytes rule every public decode entry
// point applies: any content left over after the top-level structure has
// been consumed is a decode error. label identifies the structure in the
// error message, matching messages such as "X509: key with non empty
// leftover".
func CheckEmpty(rest cryptobyte.String, label string) error {
	if !rest.Empty() {
		return fmt.Errorf("%s: key with non empty leftover", label)
	}
	return nil
}
