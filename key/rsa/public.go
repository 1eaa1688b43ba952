package rsa

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/internal/asn1tag"
	"github.com/dromara/keyasn1/types"
)

// Public is a bare PKCS#1 RSA public key: SEQUENCE { modulus INTEGER,
// publicExponent INTEGER }.
type Public struct {
	N types.Int // modulus
	E types.Int // publicExponent
}

// Encode DER-encodes the public key as a SEQUENCE of two INTEGERs.
func (p Public) Encode() []byte {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		asn1tag.WriteBigInt(b, p.N.BigInt())
		asn1tag.WriteBigInt(b, p.E.BigInt())
	})
	return b.BytesOrPanic()
}

// DecodePublic parses a bare RSA public key. Trailing bytes after the
// top-level SEQUENCE are a decode error.
func DecodePublic(der []byte) (Public, error) {
	in := cryptobyte.String(der)
	var seq cryptobyte.String
	if !in.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return Public{}, DecodeError{Err: fmt.Errorf("expected SEQUENCE")}
	}
	if err := asn1tag.CheckEmpty(in, "RSA public key"); err != nil {
		return Public{}, err
	}

	n, ok := asn1tag.ReadBigInt(&seq)
	if !ok {
		return Public{}, DecodeError{Err: fmt.Errorf("missing modulus")}
	}
	e, ok := asn1tag.ReadBigInt(&seq)
	if !ok {
		return Public{}, DecodeError{Err: fmt.Errorf("missing publicExponent")}
	}
	if err := asn1tag.CheckEmpty(seq, "RSA public key"); err != nil {
		return Public{}, err
	}
	return Public{N: types.NewInt(n), E: types.NewInt(e)}, nil
}
