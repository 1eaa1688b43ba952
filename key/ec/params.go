package ec

import (
	encasn1 "encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/internal/asn1tag"
	"github.com/dromara/keyasn1/types"
)

// ParamsKind discriminates the three ways EC domain parameters may be
// carried: a named curve OID, the implicitCurve NULL, or a fully
// specified domain.
type ParamsKind int

const (
	ParamsNamed ParamsKind = iota
	ParamsImplicit
	ParamsSpecified
)

// Params is the EC parameters CHOICE: Named(OID) | Implicit | Specified
// (SpecifiedDomain). The X509/PKCS8 EC grammars reach this type through
// algid.ECIdentifier, which calls Encode/DecodeParams; callers that need
// a standalone ECParameters blob (e.g. for SEC1 export) use the same
// methods directly.
type Params struct {
	Kind      ParamsKind
	Named     types.OID
	Specified SpecifiedDomain
}

// Encode DER-encodes the parameters CHOICE.
func (p Params) Encode() []byte {
	var b cryptobyte.Builder
	encodeParams(&b, p)
	return b.BytesOrPanic()
}

func encodeParams(b *cryptobyte.Builder, p Params) {
	switch p.Kind {
	case ParamsNamed:
		b.AddASN1ObjectIdentifier(p.Named.ToStd())
	case ParamsImplicit:
		b.AddASN1NULL()
	case ParamsSpecified:
		encodeSpecifiedDomain(b, p.Specified)
	}
}

// DecodeParams parses the parameters CHOICE, dispatching on the
// natural ASN.1 tag of the alternative actually present on the wire.
func DecodeParams(der []byte) (Params, error) {
	in := cryptobyte.String(der)
	p, err := decodeParamsElement(&in)
	if err != nil {
		return Params{}, err
	}
	if err := asn1tag.CheckEmpty(in, "EC params"); err != nil {
		return Params{}, err
	}
	return p, nil
}

func decodeParamsElement(in *cryptobyte.String) (Params, error) {
	tag, element, ok := asn1tag.AnyElement(in)
	if !ok {
		return Params{}, DecodeError{Err: fmt.Errorf("empty EC parameters")}
	}

	switch tag {
	case cbasn1.OBJECT_IDENTIFIER:
		var oid encasn1.ObjectIdentifier
		if !element.ReadASN1ObjectIdentifier(&oid) {
			return Params{}, DecodeError{Err: fmt.Errorf("malformed named curve OID")}
		}
		return Params{Kind: ParamsNamed, Named: types.FromStd(oid)}, nil

	case cbasn1.NULL:
		var null cryptobyte.String
		if !element.ReadASN1(&null, cbasn1.NULL) || len(null) != 0 {
			return Params{}, DecodeError{Err: fmt.Errorf("malformed implicitCurve")}
		}
		return Params{Kind: ParamsImplicit}, nil

	case cbasn1.SEQUENCE:
		var seq cryptobyte.String
		if !element.ReadASN1(&seq, cbasn1.SEQUENCE) {
			return Params{}, DecodeError{Err: fmt.Errorf("malformed specified domain")}
		}
		d, err := decodeSpecifiedDomainBody(&seq)
		if err != nil {
			return Params{}, err
		}
		if err := asn1tag.CheckEmpty(seq, "EC specified domain"); err != nil {
			return Params{}, err
		}
		return Params{Kind: ParamsSpecified, Specified: d}, nil

	default:
		return Params{}, DecodeError{Err: fmt.Errorf("unrecognized EC parameters alternative")}
	}
}
