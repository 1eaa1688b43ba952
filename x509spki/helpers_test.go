package x509spki

import (
	"testing"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/types"
)

// buildSPKIWithOID hand-builds a SubjectPublicKeyInfo carrying an
// arbitrary algorithm OID and raw parameters bytes, to exercise the
// unrecognized-algorithm decode path.
func buildSPKIWithOID(t *testing.T, oid types.OID, rawParameters []byte) []byte {
	t.Helper()
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oid.ToStd())
			b.AddBytes(rawParameters)
		})
		b.AddASN1BitString([]byte{0x00})
	})
	return b.BytesOrPanic()
}
