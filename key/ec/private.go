package ec

import (
	encasn1 "encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/internal/asn1tag"
	"github.com/dromara/keyasn1/types"
)

// privateKeyVersion is the only ASN.1 version value an EC Private key is
// allowed to carry.
const privateKeyVersion = 1

// Private is an EC private key: SEQUENCE { version INTEGER (1),
// privateKey OCTET STRING, parameters [0] EXPLICIT Params OPTIONAL,
// publicKey [1] EXPLICIT BIT STRING OPTIONAL } (spec §4.4).
type Private struct {
	D          types.Bytes
	Parameters *Params
	PublicKey  *types.Bytes
}

// Encode DER-encodes the private key.
func (p Private) Encode() []byte {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(privateKeyVersion)
		b.AddASN1OctetString(p.D)
		if p.Parameters != nil {
			b.AddASN1(asn1tag.Explicit(0), func(b *cryptobyte.Builder) {
				encodeParams(b, *p.Parameters)
			})
		}
		if p.PublicKey != nil {
			b.AddASN1(asn1tag.Explicit(1), func(b *cryptobyte.Builder) {
				b.AddASN1BitString(*p.PublicKey)
			})
		}
	})
	return b.BytesOrPanic()
}

// DecodePrivate parses an EC private key, rejecting any version other
// than 1.
func DecodePrivate(der []byte) (Private, error) {
	in := cryptobyte.String(der)
	var seq cryptobyte.String
	if !in.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return Private{}, DecodeError{Err: fmt.Errorf("expected SEQUENCE")}
	}
	if err := asn1tag.CheckEmpty(in, "EC private key"); err != nil {
		return Private{}, err
	}

	var version int64
	if !seq.ReadASN1Int64WithTag(&version, cbasn1.INTEGER) {
		return Private{}, DecodeError{Err: fmt.Errorf("missing version")}
	}
	if version != privateKeyVersion {
		return Private{}, VersionError{Got: version}
	}

	var d cryptobyte.String
	if !seq.ReadASN1(&d, cbasn1.OCTET_STRING) {
		return Private{}, DecodeError{Err: fmt.Errorf("missing privateKey")}
	}

	priv := Private{D: types.Bytes(d)}
	explicit0 := asn1tag.Explicit(0)
	explicit1 := asn1tag.Explicit(1)

	for !seq.Empty() {
		tag, element, ok := asn1tag.AnyElement(&seq)
		if !ok {
			return Private{}, DecodeError{Err: fmt.Errorf("malformed trailing field")}
		}
		switch tag {
		case explicit0:
			var inner cryptobyte.String
			if !element.ReadASN1(&inner, explicit0) {
				return Private{}, DecodeError{Err: fmt.Errorf("malformed parameters")}
			}
			params, err := decodeParamsElement(&inner)
			if err != nil {
				return Private{}, err
			}
			if err := asn1tag.CheckEmpty(inner, "EC private key parameters"); err != nil {
				return Private{}, err
			}
			priv.Parameters = &params

		case explicit1:
			var inner cryptobyte.String
			if !element.ReadASN1(&inner, explicit1) {
				return Private{}, DecodeError{Err: fmt.Errorf("malformed publicKey")}
			}
			var pub encasn1.BitString
			if !inner.ReadASN1BitString(&pub) {
				return Private{}, DecodeError{Err: fmt.Errorf("malformed publicKey bit string")}
			}
			point := types.Bytes(pub.RightAlign())
			priv.PublicKey = &point

		default:
			return Private{}, DecodeError{Err: fmt.Errorf("unrecognized trailing field")}
		}
	}

	return priv, nil
}
