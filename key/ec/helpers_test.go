package ec

import (
	"testing"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/internal/asn1tag"
	"github.com/dromara/keyasn1/types"
)

// buildFieldRaw hand-builds a Field SEQUENCE whose fieldType OID disagrees
// with the shape of its parameters, to exercise FieldMismatchError.
// wantSeqParams true means the parameters are SEQUENCE-shaped even though
// fieldType is oidFieldPrime (which requires an INTEGER).
func buildFieldRaw(t *testing.T, fieldType types.OID, wantSeqParams bool) []byte {
	t.Helper()
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(fieldType.ToStd())
		if wantSeqParams {
			b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
				asn1tag.WriteBigInt(b, types.IntFromInt64(1).BigInt())
			})
		} else {
			asn1tag.WriteBigInt(b, types.IntFromInt64(1).BigInt())
		}
	})
	return b.BytesOrPanic()
}

// buildBasisMismatchRaw hand-builds a characteristic-two Field whose basis
// OID is trinomial but whose parameters are NULL (Gaussian-normal shaped),
// to exercise BasisMismatchError.
func buildBasisMismatchRaw(t *testing.T) []byte {
	t.Helper()
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oidFieldCharacteristicTwo.ToStd())
		b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
			asn1tag.WriteBigInt(b, types.IntFromInt64(163).BigInt())
			b.AddASN1ObjectIdentifier(oidBasisTrinomial.ToStd())
			b.AddASN1NULL()
		})
	})
	return b.BytesOrPanic()
}

// buildSpecifiedDomainWithVersion hand-builds a SpecifiedDomain SEQUENCE
// carrying an arbitrary version, to exercise the version-pinning check.
func buildSpecifiedDomainWithVersion(t *testing.T, version int64) []byte {
	t.Helper()
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(version)
		encodeField(b, Field{Kind: FieldPrime, P: types.IntFromInt64(23)})
		encodeCurve(b, Curve{A: types.Bytes{0x01}, B: types.Bytes{0x02}})
		b.AddASN1OctetString(types.Bytes{0x04})
		asn1tag.WriteBigInt(b, types.IntFromInt64(19).BigInt())
	})
	return b.BytesOrPanic()
}

// buildPrivateRawWithVersion hand-builds an EC private key SEQUENCE
// carrying an arbitrary version, to exercise the version-pinning check.
func buildPrivateRawWithVersion(t *testing.T, version int64) []byte {
	t.Helper()
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(version)
		b.AddASN1OctetString(types.Bytes{0x01, 0x02, 0x03})
	})
	return b.BytesOrPanic()
}
