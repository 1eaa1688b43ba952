package pkcs8

import (
	"testing"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/key/algid"
)

// buildPKCS8WithVersion hand-builds a PrivateKeyInfo SEQUENCE carrying an
// arbitrary version, to exercise the version-pinning check.
func buildPKCS8WithVersion(t *testing.T, ver int64) []byte {
	t.Helper()
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(ver)
		b.AddBytes(algid.DSAIdentifier{}.Encode())
		b.AddASN1OctetString([]byte{0x02, 0x01, 0x07})
	})
	return b.BytesOrPanic()
}

// buildPKCS8WithAttributes hand-builds a PrivateKeyInfo carrying a
// trailing [0] IMPLICIT NULL attributes field, to exercise that it is
// parsed and discarded rather than rejected.
func buildPKCS8WithAttributes(t *testing.T, k PrivateKeyInfo) []byte {
	t.Helper()
	withoutAttrs := cryptobyte.String(k.Encode())
	var seq cryptobyte.String
	if !withoutAttrs.ReadASN1(&seq, cbasn1.SEQUENCE) {
		t.Fatalf("malformed PrivateKeyInfo fixture")
	}

	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddBytes(seq)
		b.AddASN1(cbasn1.Tag(0).ContextSpecific(), func(b *cryptobyte.Builder) {})
	})
	return b.BytesOrPanic()
}
