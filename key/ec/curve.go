package ec

import (
	encasn1 "encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/internal/asn1tag"
	"github.com/dromara/keyasn1/types"
)

// Curve is the EC curve coefficient grammar: SEQUENCE { a OCTET STRING,
// b OCTET STRING, seed BIT STRING OPTIONAL }.
type Curve struct {
	A, B types.Bytes
	Seed *types.Bytes // optional
}

// Encode DER-encodes the curve.
func (c Curve) Encode() []byte {
	var b cryptobyte.Builder
	encodeCurve(&b, c)
	return b.BytesOrPanic()
}

// encodeCurve writes the curve's outer SEQUENCE, shared between the
// standalone Encode and embedding it inside a SpecifiedDomain.
func encodeCurve(b *cryptobyte.Builder, c Curve) {
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1OctetString(c.A)
		b.AddASN1OctetString(c.B)
		if c.Seed != nil {
			b.AddASN1BitString(*c.Seed)
		}
	})
}

// DecodeCurve parses an EC curve.
func DecodeCurve(der []byte) (Curve, error) {
	in := cryptobyte.String(der)
	var seq cryptobyte.String
	if !in.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return Curve{}, DecodeError{Err: fmt.Errorf("expected SEQUENCE")}
	}
	if err := asn1tag.CheckEmpty(in, "EC curve"); err != nil {
		return Curve{}, err
	}

	c, err := decodeCurveBody(&seq)
	if err != nil {
		return Curve{}, err
	}
	if err := asn1tag.CheckEmpty(seq, "EC curve"); err != nil {
		return Curve{}, err
	}
	return c, nil
}

// decodeNestedCurve reads one curve SEQUENCE off outer (used when Curve is
// embedded inside a SpecifiedDomain rather than decoded standalone).
func decodeNestedCurve(outer *cryptobyte.String) (Curve, error) {
	var seq cryptobyte.String
	if !outer.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return Curve{}, DecodeError{Err: fmt.Errorf("missing curve")}
	}
	c, err := decodeCurveBody(&seq)
	if err != nil {
		return Curve{}, err
	}
	if err := asn1tag.CheckEmpty(seq, "EC curve"); err != nil {
		return Curve{}, err
	}
	return c, nil
}

func decodeCurveBody(seq *cryptobyte.String) (Curve, error) {
	var a, b cryptobyte.String
	if !seq.ReadASN1(&a, cbasn1.OCTET_STRING) {
		return Curve{}, DecodeError{Err: fmt.Errorf("missing curve.a")}
	}
	if !seq.ReadASN1(&b, cbasn1.OCTET_STRING) {
		return Curve{}, DecodeError{Err: fmt.Errorf("missing curve.b")}
	}
	c := Curve{A: types.Bytes(a), B: types.Bytes(b)}
	if !seq.Empty() {
		var bs encasn1.BitString
		if !seq.ReadASN1BitString(&bs) {
			return Curve{}, DecodeError{Err: fmt.Errorf("malformed curve.seed")}
		}
		seed := types.Bytes(bs.RightAlign())
		c.Seed = &seed
	}
	return c, nil
}
