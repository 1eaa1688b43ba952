package rsa

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/internal/asn1tag"
	"github.com/dromara/keyasn1/types"
)

// OtherPrimeInfo is one entry of a multi-prime RSA private key's
// otherPrimeInfos extension: SEQUENCE { prime INTEGER, exponent INTEGER,
// coefficient INTEGER }.
type OtherPrimeInfo struct {
	R types.Int // prime
	D types.Int // exponent
	T types.Int // coefficient
}

// Private is a bare PKCS#1 RSA private key. It is the "open" ten-slot
// SEQUENCE named in spec §4.1: nine required INTEGER fields plus one
// trailing optional SEQUENCE OF OtherPrimeInfo, discriminated by the
// version field (0 = two-prime, 1 = multi-prime).
type Private struct {
	N, E, D      types.Int
	P, Q         types.Int
	Dp, Dq, Qinv types.Int
	OtherPrimes  []OtherPrimeInfo
}

// Encode DER-encodes the private key. Per the version/content agreement
// rule, version is derived from OtherPrimes rather than taken as a
// separate field: version 0 and an omitted otherPrimeInfos iff
// OtherPrimes is empty, version 1 and the explicit list otherwise. This
// is the version-aware default the Open Question in spec §9 calls for:
// the source encoder that hard-codes version=0/empty is reproduced
// automatically for ordinary two-prime keys, but callers supplying
// multi-prime data are not silently truncated.
func (p Private) Encode() []byte {
	version := int64(0)
	if len(p.OtherPrimes) != 0 {
		version = 1
	}

	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(version)
		asn1tag.WriteBigInt(b, p.N.BigInt())
		asn1tag.WriteBigInt(b, p.E.BigInt())
		asn1tag.WriteBigInt(b, p.D.BigInt())
		asn1tag.WriteBigInt(b, p.P.BigInt())
		asn1tag.WriteBigInt(b, p.Q.BigInt())
		asn1tag.WriteBigInt(b, p.Dp.BigInt())
		asn1tag.WriteBigInt(b, p.Dq.BigInt())
		asn1tag.WriteBigInt(b, p.Qinv.BigInt())
		if version == 1 {
			b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
				for _, op := range p.OtherPrimes {
					b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
						asn1tag.WriteBigInt(b, op.R.BigInt())
						asn1tag.WriteBigInt(b, op.D.BigInt())
						asn1tag.WriteBigInt(b, op.T.BigInt())
					})
				}
			})
		}
	})
	return b.BytesOrPanic()
}

// DecodePrivate parses a bare RSA private key, enforcing the
// version/otherPrimeInfos agreement and rejecting trailing bytes.
func DecodePrivate(der []byte) (Private, error) {
	in := cryptobyte.String(der)
	var seq cryptobyte.String
	if !in.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return Private{}, DecodeError{Err: fmt.Errorf("expected SEQUENCE")}
	}
	if err := asn1tag.CheckEmpty(in, "RSA private key"); err != nil {
		return Private{}, err
	}

	var version int64
	if !seq.ReadASN1Int64WithTag(&version, cbasn1.INTEGER) {
		return Private{}, DecodeError{Err: fmt.Errorf("missing version")}
	}
	if version != 0 && version != 1 {
		return Private{}, DecodeError{Err: fmt.Errorf("unsupported RSA private key version %d", version)}
	}

	fields := make([]*types.Int, 8)
	values := make([]types.Int, 8)
	for i := range values {
		fields[i] = &values[i]
	}
	labels := []string{"modulus", "publicExponent", "privateExponent", "prime1", "prime2", "exponent1", "exponent2", "coefficient"}
	for i, label := range labels {
		n, ok := asn1tag.ReadBigInt(&seq)
		if !ok {
			return Private{}, DecodeError{Err: fmt.Errorf("missing %s", label)}
		}
		*fields[i] = types.NewInt(n)
	}

	var otherPrimes []OtherPrimeInfo
	if !seq.Empty() {
		var opSeq cryptobyte.String
		if !seq.ReadASN1(&opSeq, cbasn1.SEQUENCE) {
			return Private{}, DecodeError{Err: fmt.Errorf("malformed otherPrimeInfos")}
		}
		for !opSeq.Empty() {
			var entry cryptobyte.String
			if !opSeq.ReadASN1(&entry, cbasn1.SEQUENCE) {
				return Private{}, DecodeError{Err: fmt.Errorf("malformed OtherPrimeInfo")}
			}
			r, ok := asn1tag.ReadBigInt(&entry)
			if !ok {
				return Private{}, DecodeError{Err: fmt.Errorf("missing OtherPrimeInfo.prime")}
			}
			d, ok := asn1tag.ReadBigInt(&entry)
			if !ok {
				return Private{}, DecodeError{Err: fmt.Errorf("missing OtherPrimeInfo.exponent")}
			}
			t, ok := asn1tag.ReadBigInt(&entry)
			if !ok {
				return Private{}, DecodeError{Err: fmt.Errorf("missing OtherPrimeInfo.coefficient")}
			}
			if err := asn1tag.CheckEmpty(entry, "RSA OtherPrimeInfo"); err != nil {
				return Private{}, err
			}
			otherPrimes = append(otherPrimes, OtherPrimeInfo{
				R: types.NewInt(r), D: types.NewInt(d), T: types.NewInt(t),
			})
		}
	}
	if err := asn1tag.CheckEmpty(seq, "RSA private key"); err != nil {
		return Private{}, err
	}

	if (version == 1) != (len(otherPrimes) != 0) {
		return Private{}, VersionMismatchError{}
	}

	return Private{
		N: values[0], E: values[1], D: values[2],
		P: values[3], Q: values[4],
		Dp: values[5], Dq: values[6], Qinv: values[7],
		OtherPrimes: otherPrimes,
	}, nil
}
