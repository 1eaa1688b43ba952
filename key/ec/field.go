package ec

import (
	encasn1 "encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/internal/asn1tag"
	"github.com/dromara/keyasn1/types"
)

// BasisKind discriminates the characteristic-two field's basis
// representation.
type BasisKind int

const (
	BasisGaussianNormal BasisKind = iota
	BasisTrinomial
	BasisPentanomial
)

// Basis is the characteristic-two field's polynomial basis: no
// parameters for Gaussian-normal, one exponent for trinomial, three for
// pentanomial.
type Basis struct {
	Kind       BasisKind
	K          types.Int // trinomial
	K1, K2, K3 types.Int // pentanomial
}

// FieldKind discriminates an EC Field between a prime field and a
// characteristic-two field.
type FieldKind int

const (
	FieldPrime FieldKind = iota
	FieldCharacteristicTwo
)

// Field is the EC field grammar: SEQUENCE { fieldType OID, parameters
// ANY }, where fieldType selects the shape of parameters (spec §4.4).
type Field struct {
	Kind  FieldKind
	P     types.Int // prime field modulus
	M     types.Int // characteristic-two field degree
	Basis Basis
}

// Encode DER-encodes the field.
func (f Field) Encode() []byte {
	var b cryptobyte.Builder
	encodeField(&b, f)
	return b.BytesOrPanic()
}

// encodeField writes the field's outer SEQUENCE, shared between the
// standalone Encode and embedding it inside a SpecifiedDomain.
func encodeField(b *cryptobyte.Builder, f Field) {
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		switch f.Kind {
		case FieldPrime:
			b.AddASN1ObjectIdentifier(oidFieldPrime.ToStd())
			asn1tag.WriteBigInt(b, f.P.BigInt())
		case FieldCharacteristicTwo:
			b.AddASN1ObjectIdentifier(oidFieldCharacteristicTwo.ToStd())
			b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
				asn1tag.WriteBigInt(b, f.M.BigInt())
				f.Basis.encode(b)
			})
		}
	})
}

func (basis Basis) encode(b *cryptobyte.Builder) {
	switch basis.Kind {
	case BasisGaussianNormal:
		b.AddASN1ObjectIdentifier(oidBasisGaussianNormal.ToStd())
		b.AddASN1NULL()
	case BasisTrinomial:
		b.AddASN1ObjectIdentifier(oidBasisTrinomial.ToStd())
		asn1tag.WriteBigInt(b, basis.K.BigInt())
	case BasisPentanomial:
		b.AddASN1ObjectIdentifier(oidBasisPentanomial.ToStd())
		b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
			asn1tag.WriteBigInt(b, basis.K1.BigInt())
			asn1tag.WriteBigInt(b, basis.K2.BigInt())
			asn1tag.WriteBigInt(b, basis.K3.BigInt())
		})
	}
}

// DecodeField parses an EC field, verifying that fieldType agrees
// with the shape of parameters, and for characteristic-two fields, that
// the basis OID agrees with the shape of the basis parameters.
func DecodeField(der []byte) (Field, error) {
	in := cryptobyte.String(der)
	var seq cryptobyte.String
	if !in.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return Field{}, DecodeError{Err: fmt.Errorf("expected SEQUENCE")}
	}
	if err := asn1tag.CheckEmpty(in, "EC field"); err != nil {
		return Field{}, err
	}

	f, err := decodeFieldBody(&seq)
	if err != nil {
		return Field{}, err
	}
	if err := asn1tag.CheckEmpty(seq, "EC field"); err != nil {
		return Field{}, err
	}
	return f, nil
}

// decodeNestedField reads one fieldID SEQUENCE off outer (used when Field
// is embedded inside a SpecifiedDomain rather than decoded standalone).
func decodeNestedField(outer *cryptobyte.String) (Field, error) {
	var seq cryptobyte.String
	if !outer.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return Field{}, DecodeError{Err: fmt.Errorf("missing fieldID")}
	}
	f, err := decodeFieldBody(&seq)
	if err != nil {
		return Field{}, err
	}
	if err := asn1tag.CheckEmpty(seq, "EC field"); err != nil {
		return Field{}, err
	}
	return f, nil
}

func decodeFieldBody(seq *cryptobyte.String) (Field, error) {
	var fieldTypeStd encasn1.ObjectIdentifier
	if !seq.ReadASN1ObjectIdentifier(&fieldTypeStd) {
		return Field{}, DecodeError{Err: fmt.Errorf("missing fieldType")}
	}
	fieldType := types.FromStd(fieldTypeStd)

	tag, element, ok := asn1tag.AnyElement(seq)
	if !ok {
		return Field{}, DecodeError{Err: fmt.Errorf("missing field parameters")}
	}

	switch {
	case fieldType.Equal(oidFieldPrime):
		if tag != cbasn1.INTEGER {
			return Field{}, FieldMismatchError{}
		}
		p, ok := asn1tag.ReadBigInt(&element)
		if !ok {
			return Field{}, DecodeError{Err: fmt.Errorf("malformed prime")}
		}
		return Field{Kind: FieldPrime, P: types.NewInt(p)}, nil

	case fieldType.Equal(oidFieldCharacteristicTwo):
		if tag != cbasn1.SEQUENCE {
			return Field{}, FieldMismatchError{}
		}
		var body cryptobyte.String
		if !element.ReadASN1(&body, cbasn1.SEQUENCE) {
			return Field{}, DecodeError{Err: fmt.Errorf("malformed characteristic-two parameters")}
		}
		m, ok := asn1tag.ReadBigInt(&body)
		if !ok {
			return Field{}, DecodeError{Err: fmt.Errorf("missing m")}
		}
		basis, err := decodeBasis(&body)
		if err != nil {
			return Field{}, err
		}
		if err := asn1tag.CheckEmpty(body, "EC characteristic-two field"); err != nil {
			return Field{}, err
		}
		return Field{Kind: FieldCharacteristicTwo, M: types.NewInt(m), Basis: basis}, nil

	default:
		return Field{}, DecodeError{Err: fmt.Errorf("unrecognized field type %s", fieldType)}
	}
}

func decodeBasis(body *cryptobyte.String) (Basis, error) {
	var basisOIDStd encasn1.ObjectIdentifier
	if !body.ReadASN1ObjectIdentifier(&basisOIDStd) {
		return Basis{}, DecodeError{Err: fmt.Errorf("missing basis")}
	}
	basisOID := types.FromStd(basisOIDStd)

	tag, element, ok := asn1tag.AnyElement(body)
	if !ok {
		return Basis{}, DecodeError{Err: fmt.Errorf("missing basis parameters")}
	}

	switch {
	case basisOID.Equal(oidBasisGaussianNormal):
		if tag != cbasn1.NULL {
			return Basis{}, BasisMismatchError{}
		}
		return Basis{Kind: BasisGaussianNormal}, nil

	case basisOID.Equal(oidBasisTrinomial):
		if tag != cbasn1.INTEGER {
			return Basis{}, BasisMismatchError{}
		}
		k, ok := asn1tag.ReadBigInt(&element)
		if !ok {
			return Basis{}, DecodeError{Err: fmt.Errorf("malformed trinomial exponent")}
		}
		return Basis{Kind: BasisTrinomial, K: types.NewInt(k)}, nil

	case basisOID.Equal(oidBasisPentanomial):
		if tag != cbasn1.SEQUENCE {
			return Basis{}, BasisMismatchError{}
		}
		var triple cryptobyte.String
		if !element.ReadASN1(&triple, cbasn1.SEQUENCE) {
			return Basis{}, DecodeError{Err: fmt.Errorf("malformed pentanomial exponents")}
		}
		k1, ok := asn1tag.ReadBigInt(&triple)
		if !ok {
			return Basis{}, DecodeError{Err: fmt.Errorf("missing k1")}
		}
		k2, ok := asn1tag.ReadBigInt(&triple)
		if !ok {
			return Basis{}, DecodeError{Err: fmt.Errorf("missing k2")}
		}
		k3, ok := asn1tag.ReadBigInt(&triple)
		if !ok {
			return Basis{}, DecodeError{Err: fmt.Errorf("missing k3")}
		}
		if err := asn1tag.CheckEmpty(triple, "EC pentanomial basis"); err != nil {
			return Basis{}, err
		}
		return Basis{Kind: BasisPentanomial, K1: types.NewInt(k1), K2: types.NewInt(k2), K3: types.NewInt(k3)}, nil

	default:
		return Basis{}, DecodeError{Err: fmt.Errorf("unrecognized basis %s", basisOID)}
	}
}
