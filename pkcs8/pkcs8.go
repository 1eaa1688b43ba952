// Package pkcs8 implements the PKCS#8 PrivateKeyInfo wrapper: SEQUENCE
// (version INTEGER, privateKeyAlgorithm, privateKey OCTET STRING,
// [0] IMPLICIT attributes NULL OPTIONAL), dispatched across the RSA,
// DSA, and EC key families (spec §4.7).
//
// Same OID-dispatch strategy as package x509spki; grounded on the same
// crypto/internal/sm2/asn1.go ParsePKCS8PrivateKey/MarshalPKCS8PrivateKey
// pair, generalized to the three-family tagged union.
package pkcs8

import (
	encasn1 "encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/internal/asn1tag"
	"github.com/dromara/keyasn1/key/algid"
	"github.com/dromara/keyasn1/key/dsa"
	"github.com/dromara/keyasn1/key/ec"
	"github.com/dromara/keyasn1/key/rsa"
	"github.com/dromara/keyasn1/types"
)

// version is the only PrivateKeyInfo version this module produces or
// accepts.
const version = 0

// Kind discriminates which key family a PrivateKeyInfo carries.
type Kind int

const (
	KindRSA Kind = iota
	KindDSA
	KindEC
)

// PrivateKeyInfo is the decoded PKCS#8 tagged union. Attributes present
// on the wire are parsed and discarded (spec §4.7); they are never
// reproduced on Encode.
type PrivateKeyInfo struct {
	Kind Kind

	RSA rsa.Private

	DSAParams dsa.Params
	DSA       dsa.Private

	ECParams ec.Params
	EC       ec.Private
}

// VersionError reports a PrivateKeyInfo version other than 0.
type VersionError struct {
	Got int64
}

func (e VersionError) Error() string {
	return fmt.Sprintf("PKCS8: version %d not supported", e.Got)
}

// DecodeError reports a malformed PrivateKeyInfo, or one whose algorithm
// OID names none of RSA, DSA, or EC.
type DecodeError struct {
	Err error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("Couldn't parse key: %v", e.Err)
}

func (e DecodeError) Unwrap() error { return e.Err }

// Encode DER-encodes the PrivateKeyInfo. Attributes are always omitted.
func (k PrivateKeyInfo) Encode() []byte {
	var algorithmIdentifier, payload []byte
	switch k.Kind {
	case KindRSA:
		algorithmIdentifier = algid.RSAIdentifier{}.Encode()
		payload = k.RSA.Encode()
	case KindDSA:
		algorithmIdentifier = algid.DSAIdentifier{Parameters: k.DSAParams}.Encode()
		payload = k.DSA.Encode()
	case KindEC:
		algorithmIdentifier = algid.ECIdentifier{Parameters: k.ECParams}.Encode()
		payload = k.EC.Encode()
	}

	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(version)
		b.AddBytes(algorithmIdentifier)
		b.AddASN1OctetString(payload)
	})
	return b.BytesOrPanic()
}

// Decode parses a PKCS#8 PrivateKeyInfo, dispatching on the algorithm
// OID peeked from privateKeyAlgorithm.
func Decode(der []byte) (PrivateKeyInfo, error) {
	in := cryptobyte.String(der)
	var seq cryptobyte.String
	if !in.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return PrivateKeyInfo{}, DecodeError{Err: fmt.Errorf("expected SEQUENCE")}
	}
	if err := asn1tag.CheckEmpty(in, "PKCS8"); err != nil {
		return PrivateKeyInfo{}, err
	}

	var ver int64
	if !seq.ReadASN1Int64WithTag(&ver, cbasn1.INTEGER) {
		return PrivateKeyInfo{}, DecodeError{Err: fmt.Errorf("missing version")}
	}
	if ver != version {
		return PrivateKeyInfo{}, VersionError{Got: ver}
	}

	algoOID, algorithmIdentifierDER, err := peekAlgorithm(&seq)
	if err != nil {
		return PrivateKeyInfo{}, err
	}

	var payload cryptobyte.String
	if !seq.ReadASN1(&payload, cbasn1.OCTET_STRING) {
		return PrivateKeyInfo{}, DecodeError{Err: fmt.Errorf("missing privateKey")}
	}

	// attributes [0] IMPLICIT NULL OPTIONAL: parsed and discarded, never
	// reproduced on Encode.
	if !seq.Empty() {
		implicit0 := asn1tag.Implicit(0, false)
		tag, _, ok := asn1tag.AnyElement(&seq)
		if !ok || tag != implicit0 {
			return PrivateKeyInfo{}, DecodeError{Err: fmt.Errorf("malformed attributes")}
		}
	}
	if err := asn1tag.CheckEmpty(seq, "PKCS8"); err != nil {
		return PrivateKeyInfo{}, err
	}

	switch algid.Identify(algoOID) {
	case algid.RSA:
		if _, err := algid.DecodeRSAIdentifier(algorithmIdentifierDER); err != nil {
			return PrivateKeyInfo{}, DecodeError{Err: err}
		}
		priv, err := rsa.DecodePrivate([]byte(payload))
		if err != nil {
			return PrivateKeyInfo{}, DecodeError{Err: err}
		}
		return PrivateKeyInfo{Kind: KindRSA, RSA: priv}, nil

	case algid.DSA:
		dsaID, err := algid.DecodeDSAIdentifier(algorithmIdentifierDER)
		if err != nil {
			return PrivateKeyInfo{}, DecodeError{Err: err}
		}
		priv, err := dsa.DecodePrivate([]byte(payload))
		if err != nil {
			return PrivateKeyInfo{}, DecodeError{Err: err}
		}
		return PrivateKeyInfo{Kind: KindDSA, DSAParams: dsaID.Parameters, DSA: priv}, nil

	case algid.EC:
		ecID, err := algid.DecodeECIdentifier(algorithmIdentifierDER)
		if err != nil {
			return PrivateKeyInfo{}, DecodeError{Err: err}
		}
		priv, err := ec.DecodePrivate([]byte(payload))
		if err != nil {
			return PrivateKeyInfo{}, DecodeError{Err: err}
		}
		return PrivateKeyInfo{Kind: KindEC, ECParams: ecID.Parameters, EC: priv}, nil

	default:
		return PrivateKeyInfo{}, DecodeError{Err: fmt.Errorf("unrecognized algorithm %s", algoOID)}
	}
}

func peekAlgorithm(seq *cryptobyte.String) (types.OID, []byte, error) {
	_, element, ok := asn1tag.AnyElement(seq)
	if !ok {
		return nil, nil, DecodeError{Err: fmt.Errorf("missing privateKeyAlgorithm")}
	}
	raw := []byte(element)

	var ai cryptobyte.String
	if !element.ReadASN1(&ai, cbasn1.SEQUENCE) {
		return nil, nil, DecodeError{Err: fmt.Errorf("malformed privateKeyAlgorithm")}
	}
	var oidStd encasn1.ObjectIdentifier
	if !ai.ReadASN1ObjectIdentifier(&oidStd) {
		return nil, nil, DecodeError{Err: fmt.Errorf("missing algorithm OID")}
	}
	return types.FromStd(oidStd), raw, nil
}
