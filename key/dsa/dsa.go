// Package dsa implements the DSA parameter and key grammars: Params is a
// SEQUENCE of three INTEGERs (p, q, g); Public and Private are each a bare
// INTEGER. Same cryptobyte-over-DER approach as package rsa, grounded on
// crypto/internal/sm2/asn1.go's use of cryptobyte.Builder/String.
package dsa

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/internal/asn1tag"
	"github.com/dromara/keyasn1/types"
)

// Params is the DSA domain-parameter grammar: SEQUENCE { p INTEGER,
// q INTEGER, g INTEGER }.
type Params struct {
	P, Q, G types.Int
}

// Encode DER-encodes the parameters.
func (p Params) Encode() []byte {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		asn1tag.WriteBigInt(b, p.P.BigInt())
		asn1tag.WriteBigInt(b, p.Q.BigInt())
		asn1tag.WriteBigInt(b, p.G.BigInt())
	})
	return b.BytesOrPanic()
}

// DecodeParams parses DSA domain parameters.
func DecodeParams(der []byte) (Params, error) {
	in := cryptobyte.String(der)
	var seq cryptobyte.String
	if !in.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return Params{}, DecodeError{Err: fmt.Errorf("expected SEQUENCE")}
	}
	if err := asn1tag.CheckEmpty(in, "DSA params"); err != nil {
		return Params{}, err
	}

	p, ok := asn1tag.ReadBigInt(&seq)
	if !ok {
		return Params{}, DecodeError{Err: fmt.Errorf("missing p")}
	}
	q, ok := asn1tag.ReadBigInt(&seq)
	if !ok {
		return Params{}, DecodeError{Err: fmt.Errorf("missing q")}
	}
	g, ok := asn1tag.ReadBigInt(&seq)
	if !ok {
		return Params{}, DecodeError{Err: fmt.Errorf("missing g")}
	}
	if err := asn1tag.CheckEmpty(seq, "DSA params"); err != nil {
		return Params{}, err
	}
	return Params{P: types.NewInt(p), Q: types.NewInt(q), G: types.NewInt(g)}, nil
}

// Public is a DSA public key: a bare INTEGER (y).
type Public struct {
	Y types.Int
}

// Encode DER-encodes the public key as a single INTEGER.
func (p Public) Encode() []byte {
	var b cryptobyte.Builder
	asn1tag.WriteBigInt(&b, p.Y.BigInt())
	return b.BytesOrPanic()
}

// DecodePublic parses a bare DSA public key.
func DecodePublic(der []byte) (Public, error) {
	in := cryptobyte.String(der)
	y, ok := asn1tag.ReadBigInt(&in)
	if !ok {
		return Public{}, DecodeError{Err: fmt.Errorf("expected INTEGER")}
	}
	if err := asn1tag.CheckEmpty(in, "DSA public key"); err != nil {
		return Public{}, err
	}
	return Public{Y: types.NewInt(y)}, nil
}

// Private is a DSA private key: a bare INTEGER (x).
type Private struct {
	X types.Int
}

// Encode DER-encodes the private key as a single INTEGER.
func (p Private) Encode() []byte {
	var b cryptobyte.Builder
	asn1tag.WriteBigInt(&b, p.X.BigInt())
	return b.BytesOrPanic()
}

// DecodePrivate parses a bare DSA private key.
func DecodePrivate(der []byte) (Private, error) {
	in := cryptobyte.String(der)
	x, ok := asn1tag.ReadBigInt(&in)
	if !ok {
		return Private{}, DecodeError{Err: fmt.Errorf("expected INTEGER")}
	}
	if err := asn1tag.CheckEmpty(in, "DSA private key"); err != nil {
		return Private{}, err
	}
	return Private{X: types.NewInt(x)}, nil
}
