package ec

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/internal/asn1tag"
	"github.com/dromara/keyasn1/types"
)

// specifiedDomainVersion is the only ASN.1 version value a SpecifiedDomain
// is allowed to carry.
const specifiedDomainVersion = 1

// SpecifiedDomain is an explicit EC domain description: SEQUENCE {
// version INTEGER, fieldID FieldID, curve Curve, base OCTET STRING,
// order INTEGER, cofactor INTEGER OPTIONAL }. version is fixed to 1.
type SpecifiedDomain struct {
	Field    Field
	Curve    Curve
	Base     types.Bytes
	Order    types.Int
	Cofactor *types.Int // optional
}

// Encode DER-encodes the specified domain.
func (d SpecifiedDomain) Encode() []byte {
	var b cryptobyte.Builder
	encodeSpecifiedDomain(&b, d)
	return b.BytesOrPanic()
}

func encodeSpecifiedDomain(b *cryptobyte.Builder, d SpecifiedDomain) {
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(specifiedDomainVersion)
		encodeField(b, d.Field)
		encodeCurve(b, d.Curve)
		b.AddASN1OctetString(d.Base)
		asn1tag.WriteBigInt(b, d.Order.BigInt())
		if d.Cofactor != nil {
			asn1tag.WriteBigInt(b, d.Cofactor.BigInt())
		}
	})
}

// DecodeSpecifiedDomain parses an EC specified domain, rejecting any
// version other than 1.
func DecodeSpecifiedDomain(der []byte) (SpecifiedDomain, error) {
	in := cryptobyte.String(der)
	var seq cryptobyte.String
	if !in.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return SpecifiedDomain{}, DecodeError{Err: fmt.Errorf("expected SEQUENCE")}
	}
	if err := asn1tag.CheckEmpty(in, "EC specified domain"); err != nil {
		return SpecifiedDomain{}, err
	}

	d, err := decodeSpecifiedDomainBody(&seq)
	if err != nil {
		return SpecifiedDomain{}, err
	}
	if err := asn1tag.CheckEmpty(seq, "EC specified domain"); err != nil {
		return SpecifiedDomain{}, err
	}
	return d, nil
}

func decodeSpecifiedDomainBody(seq *cryptobyte.String) (SpecifiedDomain, error) {
	var version int64
	if !seq.ReadASN1Int64WithTag(&version, cbasn1.INTEGER) {
		return SpecifiedDomain{}, DecodeError{Err: fmt.Errorf("missing version")}
	}
	if version != specifiedDomainVersion {
		return SpecifiedDomain{}, VersionError{Got: version}
	}

	field, err := decodeNestedField(seq)
	if err != nil {
		return SpecifiedDomain{}, err
	}
	curve, err := decodeNestedCurve(seq)
	if err != nil {
		return SpecifiedDomain{}, err
	}

	var base cryptobyte.String
	if !seq.ReadASN1(&base, cbasn1.OCTET_STRING) {
		return SpecifiedDomain{}, DecodeError{Err: fmt.Errorf("missing base")}
	}
	order, ok := asn1tag.ReadBigInt(seq)
	if !ok {
		return SpecifiedDomain{}, DecodeError{Err: fmt.Errorf("missing order")}
	}

	d := SpecifiedDomain{Field: field, Curve: curve, Base: types.Bytes(base), Order: types.NewInt(order)}
	if !seq.Empty() {
		cofactor, ok := asn1tag.ReadBigInt(seq)
		if !ok {
			return SpecifiedDomain{}, DecodeError{Err: fmt.Errorf("malformed cofactor")}
		}
		v := types.NewInt(cofactor)
		d.Cofactor = &v
	}
	return d, nil
}
