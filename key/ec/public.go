package ec

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/internal/asn1tag"
	"github.com/dromara/keyasn1/types"
)

// Public is an EC public key: the uncompressed or compressed curve
// point, carried as a bare OCTET STRING with no further ASN.1
// structure (spec §4.4). Interpreting the point bytes (compression
// format, coordinate size) is the caller's responsibility; this layer
// only moves bytes.
type Public struct {
	Point types.Bytes
}

// Encode DER-encodes the public key as an OCTET STRING.
func (p Public) Encode() []byte {
	var b cryptobyte.Builder
	b.AddASN1OctetString(p.Point)
	return b.BytesOrPanic()
}

// DecodePublic parses an EC public key.
func DecodePublic(der []byte) (Public, error) {
	in := cryptobyte.String(der)
	var point cryptobyte.String
	if !in.ReadASN1(&point, cbasn1.OCTET_STRING) {
		return Public{}, DecodeError{Err: fmt.Errorf("expected OCTET STRING")}
	}
	if err := asn1tag.CheckEmpty(in, "EC public key"); err != nil {
		return Public{}, err
	}
	return Public{Point: types.Bytes(point)}, nil
}
