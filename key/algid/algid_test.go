package algid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dromara/keyasn1/key/dsa"
	"github.com/dromara/keyasn1/key/ec"
	"github.com/dromara/keyasn1/key/rsa"
	"github.com/dromara/keyasn1/types"
)

func TestIdentify(t *testing.T) {
	assert.Equal(t, RSA, Identify(types.NewOID(1, 2, 840, 113549, 1, 1, 1)))
	assert.Equal(t, DSA, Identify(types.NewOID(1, 2, 840, 10040, 4, 1)))
	assert.Equal(t, EC, Identify(types.NewOID(1, 2, 840, 10045, 2, 1)))
	assert.Equal(t, Unknown, Identify(types.NewOID(1, 2, 3, 4)))
}

func TestRSAIdentifierRoundTrip(t *testing.T) {
	id := RSAIdentifier{Parameters: rsa.Params{}}
	der := id.Encode()
	got, err := DecodeRSAIdentifier(der)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestDSAIdentifierRoundTrip(t *testing.T) {
	id := DSAIdentifier{Parameters: dsa.Params{
		P: types.IntFromInt64(23),
		Q: types.IntFromInt64(11),
		G: types.IntFromInt64(4),
	}}
	der := id.Encode()
	got, err := DecodeDSAIdentifier(der)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestECIdentifierRoundTrip(t *testing.T) {
	id := ECIdentifier{Parameters: ec.Params{
		Kind:  ec.ParamsNamed,
		Named: types.NewOID(1, 2, 840, 10045, 3, 1, 7),
	}}
	der := id.Encode()
	got, err := DecodeECIdentifier(der)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestRSAIdentifierRejectsWrongAlgorithm(t *testing.T) {
	id := DSAIdentifier{Parameters: dsa.Params{
		P: types.IntFromInt64(23),
		Q: types.IntFromInt64(11),
		G: types.IntFromInt64(4),
	}}
	der := id.Encode()
	_, err := DecodeRSAIdentifier(der)
	require.Error(t, err)
	assert.ErrorIs(t, err, MismatchError{})
}
