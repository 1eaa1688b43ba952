package x509spki

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dromara/keyasn1/key/dsa"
	"github.com/dromara/keyasn1/key/ec"
	"github.com/dromara/keyasn1/key/rsa"
	"github.com/dromara/keyasn1/types"
)

func TestRSARoundTrip(t *testing.T) {
	s := SPKI{Kind: KindRSA, RSA: rsa.Public{N: types.IntFromInt64(3233), E: types.IntFromInt64(17)}}
	der := s.Encode()
	got, err := Decode(der)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestDSARoundTrip(t *testing.T) {
	s := SPKI{
		Kind: KindDSA,
		DSAParams: dsa.Params{
			P: types.IntFromInt64(23),
			Q: types.IntFromInt64(11),
			G: types.IntFromInt64(4),
		},
		DSA: dsa.Public{Y: types.IntFromInt64(42)},
	}
	der := s.Encode()
	got, err := Decode(der)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestECRoundTrip(t *testing.T) {
	point := make(types.Bytes, 65)
	point[0] = 0x04
	s := SPKI{
		Kind:     KindEC,
		ECParams: ec.Params{Kind: ec.ParamsNamed, Named: types.NewOID(1, 2, 840, 10045, 3, 1, 7)},
		EC:       ec.Public{Point: point},
	}
	der := s.Encode()
	got, err := Decode(der)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestDecodeUnrecognizedAlgorithm(t *testing.T) {
	der := buildSPKIWithOID(t, types.NewOID(1, 2, 3, 4), []byte{0x05, 0x00})
	_, err := Decode(der)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Couldn't parse key")
}

func TestDecodeTrailingBytes(t *testing.T) {
	s := SPKI{Kind: KindRSA, RSA: rsa.Public{N: types.IntFromInt64(3233), E: types.IntFromInt64(17)}}
	der := append(s.Encode(), 0x00)
	_, err := Decode(der)
	require.Error(t, err)
}
