// Package x509spki implements the X.509 SubjectPublicKeyInfo wrapper:
// a SEQUENCE of an AlgorithmIdentifier and a BIT STRING subjectPublicKey,
// dispatched across the RSA, DSA, and EC key families (spec §4.6).
//
// Grounded on crypto/internal/sm2/asn1.go's ParseSPKIPublicKey /
// MarshalSPKIPublicKey, generalized from one fixed algorithm to an
// OID-dispatched tagged union over the three families this module
// supports.
package x509spki

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

// Kind discriminates which key family a SPKI carries.
type Kind int

const (
	KindRSA Kind = iota
	KindDSA
	KindEC
)

// SPKI is the decoded SubjectPublicKeyInfo tagged union.
type SPKI struct {
	Kind Kind

	RSA rsa.Public

	DSAParams dsa.Params
	DSA       dsa.Public

	ECParams ec.Params
	EC       ec.Public
}

// DecodeError reports a malformed SubjectPublicKeyInfo, or one whose
// algorithm OID names none of RSA, DSA, or EC.
type DecodeError struct {
	Err error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("Couldn't parse key: %v", e.Err)
}

func (e DecodeError) Unwrap() error { return e.Err }

// Encode DER-encodes the SubjectPublicKeyInfo.
func (s SPKI) Encode() []byte {
	var algorithmIdentifier, payload []byte
	switch s.Kind {
	case KindRSA:
		algorithmIdentifier = algid.RSAIdentifier{}.Encode()
		payload = s.RSA.Encode()
	case KindDSA:
		algorithmIdentifier = algid.DSAIdentifier{Parameters: s.DSAParams}.Encode()
		payload = s.DSA.Encode()
	case KindEC:
		algorithmIdentifier = algid.ECIdentifier{Parameters: s.ECParams}.Encode()
		payload = []byte(s.EC.Point)
	}

	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddBytes(algorithmIdentifier)
		b.AddASN1BitString(payload)
	})
	return b.BytesOrPanic()
}

// Decode parses a SubjectPublicKeyInfo, dispatching on the algorithm
// OID peeked from the inner AlgorithmIdentifier (spec §9: observably
// equivalent to trying RSA, then DSA, then EC in turn, since the three
// grammars key off disjoint OIDs).
func Decode(der []byte) (SPKI, error) {
	in := cryptobyte.String(der)
	var seq cryptobyte.String
	if !in.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return SPKI{}, DecodeError{Err: fmt.Errorf("expected SEQUENCE")}
	}
	if err := asn1tag.CheckEmpty(in, "X509"); err != nil {
		return SPKI{}, err
	}

	algoOID, algorithmIdentifierDER, err := peekAlgorithm(&seq)
	if err != nil {
		return SPKI{}, err
	}

	var bitStr encasn1.BitString
	if !seq.ReadASN1BitString(&bitStr) {
		return SPKI{}, DecodeError{Err: fmt.Errorf("missing subjectPublicKey")}
	}
	if err := asn1tag.CheckEmpty(seq, "X509"); err != nil {
		return SPKI{}, err
	}
	payload := bitStr.RightAlign()

	switch algid.Identify(algoOID) {
	case algid.RSA:
		if _, err := algid.DecodeRSAIdentifier(algorithmIdentifierDER); err != nil {
			return SPKI{}, DecodeError{Err: err}
		}
		pub, err := rsa.DecodePublic(payload)
		if err != nil {
			return SPKI{}, DecodeError{Err: err}
		}
		return SPKI{Kind: KindRSA, RSA: pub}, nil

	case algid.DSA:
		dsaID, err := algid.DecodeDSAIdentifier(algorithmIdentifierDER)
		if err != nil {
			return SPKI{}, DecodeError{Err: err}
		}
		pub, err := dsa.DecodePublic(payload)
		if err != nil {
			return SPKI{}, DecodeError{Err: err}
		}
		return SPKI{Kind: KindDSA, DSAParams: dsaID.Parameters, DSA: pub}, nil

	case algid.EC:
		ecID, err := algid.DecodeECIdentifier(algorithmIdentifierDER)
		if err != nil {
			return SPKI{}, DecodeError{Err: err}
		}
		// EC's bit-string payload is the curve point itself: no second
		// parse happens (spec §4.6), unlike RSA/DSA whose payloads are
		// themselves DER-encoded key grammars.
		return SPKI{Kind: KindEC, ECParams: ecID.Parameters, EC: ec.Public{Point: types.Bytes(payload)}}, nil

	default:
		return SPKI{}, DecodeError{Err: fmt.Errorf("unrecognized algorithm %s", algoOID)}
	}
}

// peekAlgorithm reads the AlgorithmIdentifier SEQUENCE off seq without
// committing to a family, returning its OID and the raw AlgorithmIdentifier
// bytes for the family-specific re-parse.
func peekAlgorithm(seq *cryptobyte.String) (types.OID, []byte, error) {
	_, element, ok := asn1tag.AnyElement(seq)
	if !ok {
		return nil, nil, DecodeError{Err: fmt.Errorf("missing algorithm identifier")}
	}
	raw := []byte(element)

	var ai cryptobyte.String
	if !element.ReadASN1(&ai, cbasn1.SEQUENCE) {
		return nil, nil, DecodeError{Err: fmt.Errorf("malformed algorithm identifier")}
	}
	var oidStd encasn1.ObjectIdentifier
	if !ai.ReadASN1ObjectIdentifier(&oidStd) {
		return nil, nil, DecodeError{Err: fmt.Errorf("missing algorithm OID")}
	}
	return types.FromStd(oidStd), raw, nil
}
