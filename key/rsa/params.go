// Package rsa implements the PKCS#1 RSA public and private key grammars:
// a bare SEQUENCE of two INTEGERs for the public key, and the ten-slot
// (one trailing optional) SEQUENCE for the private key, including the
// multi-prime otherPrimeInfos extension and its version/content
// agreement rule.
//
// Grounded on crypto/internal/sm2/asn1.go's use of cryptobyte.Builder /
// cryptobyte.String to hand-build DER envelopes rather than relying on
// encoding/asn1 struct tags, generalized from one fixed algorithm to the
// RSA grammar this package owns.
package rsa

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/internal/asn1tag"
)

// Params is the (empty) RSA algorithm parameters value. It exists only to
// populate the "parameters" slot of the RSA algorithm identifier, which
// PKCS#1 fixes to ASN.1 NULL.
type Params struct{}

// Encode renders the DER NULL value.
func (Params) Encode() []byte {
	var b cryptobyte.Builder
	b.AddASN1NULL()
	return b.BytesOrPanic()
}

// DecodeParams parses the DER NULL value.
func DecodeParams(der []byte) (Params, error) {
	in := cryptobyte.String(der)
	var null cryptobyte.String
	if !in.ReadASN1(&null, cbasn1.NULL) {
		return Params{}, DecodeError{Err: fmt.Errorf("expected NULL parameters")}
	}
	if err := asn1tag.CheckEmpty(in, "RSA params"); err != nil {
		return Params{}, err
	}
	if len(null) != 0 {
		return Params{}, DecodeError{Err: fmt.Errorf("non-empty NULL parameters")}
	}
	return Params{}, nil
}
