package rsa

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/types"
)

func TestPublicRoundTrip(t *testing.T) {
	n := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 2048), big.NewInt(1))
	pub := Public{N: types.NewInt(n), E: types.IntFromInt64(65537)}

	der := pub.Encode()
	got, err := DecodePublic(der)
	require.NoError(t, err)
	assert.True(t, got.N.Equal(pub.N))
	assert.True(t, got.E.Equal(pub.E))

	again := got.Encode()
	assert.Equal(t, der, again, "DER encoding must be canonical")
}

func TestPublicEncodingShape(t *testing.T) {
	n := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 2048), big.NewInt(1))
	pub := Public{N: types.NewInt(n), E: types.IntFromInt64(65537)}
	der := pub.Encode()

	in := cryptobyte.String(der)
	var seq cryptobyte.String
	require.True(t, in.ReadASN1(&seq, cbasn1.SEQUENCE))
	var nTLV, eTLV cryptobyte.String
	require.True(t, seq.ReadASN1(&nTLV, cbasn1.INTEGER))
	assert.Equal(t, 257, len(nTLV)) // leading zero + 256 0xFF bytes
	require.True(t, seq.ReadASN1(&eTLV, cbasn1.INTEGER))
	assert.Equal(t, []byte{0x01, 0x00, 0x01}, []byte(eTLV))
}

func TestPublicTrailingBytes(t *testing.T) {
	pub := Public{N: types.IntFromInt64(3), E: types.IntFromInt64(65537)}
	der := append(pub.Encode(), 0x00)
	_, err := DecodePublic(der)
	assert.ErrorContains(t, err, "non empty leftover")
}

func TestPublicTruncated(t *testing.T) {
	pub := Public{N: types.IntFromInt64(3), E: types.IntFromInt64(65537)}
	der := pub.Encode()
	_, err := DecodePublic(der[:len(der)-1])
	assert.Error(t, err)
}

func twoPrimeKey() Private {
	return Private{
		N: types.IntFromInt64(15), E: types.IntFromInt64(3), D: types.IntFromInt64(3),
		P: types.IntFromInt64(3), Q: types.IntFromInt64(5),
		Dp: types.IntFromInt64(1), Dq: types.IntFromInt64(1), Qinv: types.IntFromInt64(2),
	}
}

func TestPrivateRoundTripTwoPrime(t *testing.T) {
	sk := twoPrimeKey()
	der := sk.Encode()

	got, err := DecodePrivate(der)
	require.NoError(t, err)
	assert.Empty(t, got.OtherPrimes)
	assert.Equal(t, der, got.Encode())
}

func TestPrivateRoundTripMultiPrime(t *testing.T) {
	sk := twoPrimeKey()
	sk.OtherPrimes = []OtherPrimeInfo{
		{R: types.IntFromInt64(7), D: types.IntFromInt64(5), T: types.IntFromInt64(11)},
	}
	der := sk.Encode()

	got, err := DecodePrivate(der)
	require.NoError(t, err)
	require.Len(t, got.OtherPrimes, 1)
	assert.True(t, got.OtherPrimes[0].R.Equal(sk.OtherPrimes[0].R))
	assert.Equal(t, der, got.Encode(), "DER encoding must be canonical")
}

func TestPrivateVersionOtherPrimesMismatch(t *testing.T) {
	sk := twoPrimeKey()
	otherPrimes := []OtherPrimeInfo{
		{R: types.IntFromInt64(7), D: types.IntFromInt64(5), T: types.IntFromInt64(11)},
	}

	// version=1 with no otherPrimeInfos is a mismatch.
	mismatched := buildPrivateRaw(t, 1, sk, nil)
	_, err := DecodePrivate(mismatched)
	assert.ErrorIs(t, err, VersionMismatchError{})

	// version=0 with a non-empty otherPrimeInfos list is also a mismatch.
	mismatched2 := buildPrivateRaw(t, 0, sk, otherPrimes)
	_, err = DecodePrivate(mismatched2)
	assert.ErrorIs(t, err, VersionMismatchError{})
}

func buildPrivateRaw(t *testing.T, version int64, sk Private, otherPrimes []OtherPrimeInfo) []byte {
	t.Helper()
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(version)
		b.AddASN1BigInt(sk.N.BigInt())
		b.AddASN1BigInt(sk.E.BigInt())
		b.AddASN1BigInt(sk.D.BigInt())
		b.AddASN1BigInt(sk.P.BigInt())
		b.AddASN1BigInt(sk.Q.BigInt())
		b.AddASN1BigInt(sk.Dp.BigInt())
		b.AddASN1BigInt(sk.Dq.BigInt())
		b.AddASN1BigInt(sk.Qinv.BigInt())
		if len(otherPrimes) > 0 {
			b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
				for _, op := range otherPrimes {
					b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
						b.AddASN1BigInt(op.R.BigInt())
						b.AddASN1BigInt(op.D.BigInt())
						b.AddASN1BigInt(op.T.BigInt())
					})
				}
			})
		}
	})
	return b.BytesOrPanic()
}

func TestParamsRoundTrip(t *testing.T) {
	der := Params{}.Encode()
	got, err := DecodeParams(der)
	require.NoError(t, err)
	assert.Equal(t, Params{}, got)
}
