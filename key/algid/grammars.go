package algid

import (
	encasn1 "encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/dromara/keyasn1/internal/asn1tag"
	"github.com/dromara/keyasn1/key/dsa"
	"github.com/dromara/keyasn1/key/ec"
	"github.com/dromara/keyasn1/key/rsa"
	"github.com/dromara/keyasn1/types"
)

// RSAIdentifier is the algorithm-identifier grammar pinned to the RSA
// family: SEQUENCE (algorithm: rsaEncryption OID, parameters: NULL).
type RSAIdentifier struct {
	Parameters rsa.Params
}

func (id RSAIdentifier) Encode() []byte {
	return encodeIdentifier(RSA, id.Parameters.Encode())
}

// DecodeRSAIdentifier parses an AlgorithmIdentifier, rejecting any OID
// other than rsaEncryption.
func DecodeRSAIdentifier(der []byte) (RSAIdentifier, error) {
	paramsDER, err := decodeIdentifier(der, RSA)
	if err != nil {
		return RSAIdentifier{}, err
	}
	params, err := rsa.DecodeParams(paramsDER)
	if err != nil {
		return RSAIdentifier{}, err
	}
	return RSAIdentifier{Parameters: params}, nil
}

// DSAIdentifier is the algorithm-identifier grammar pinned to the DSA
// family: SEQUENCE (algorithm: id-dsa OID, parameters: DSA Params).
type DSAIdentifier struct {
	Parameters dsa.Params
}

func (id DSAIdentifier) Encode() []byte {
	return encodeIdentifier(DSA, id.Parameters.Encode())
}

// DecodeDSAIdentifier parses an AlgorithmIdentifier, rejecting any OID
// other than id-dsa.
func DecodeDSAIdentifier(der []byte) (DSAIdentifier, error) {
	paramsDER, err := decodeIdentifier(der, DSA)
	if err != nil {
		return DSAIdentifier{}, err
	}
	params, err := dsa.DecodeParams(paramsDER)
	if err != nil {
		return DSAIdentifier{}, err
	}
	return DSAIdentifier{Parameters: params}, nil
}

// ECIdentifier is the algorithm-identifier grammar pinned to the EC
// family: SEQUENCE (algorithm: id-ecPublicKey OID, parameters: EC Params).
type ECIdentifier struct {
	Parameters ec.Params
}

func (id ECIdentifier) Encode() []byte {
	return encodeIdentifier(EC, id.Parameters.Encode())
}

// DecodeECIdentifier parses an AlgorithmIdentifier, rejecting any OID
// other than id-ecPublicKey.
func DecodeECIdentifier(der []byte) (ECIdentifier, error) {
	paramsDER, err := decodeIdentifier(der, EC)
	if err != nil {
		return ECIdentifier{}, err
	}
	params, err := ec.DecodeParams(paramsDER)
	if err != nil {
		return ECIdentifier{}, err
	}
	return ECIdentifier{Parameters: params}, nil
}

func encodeIdentifier(algo Algo, rawParameters []byte) []byte {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(algo.ToStd())
		b.AddBytes(rawParameters)
	})
	return b.BytesOrPanic()
}

// decodeIdentifier reads the common SEQUENCE (algorithm OID, parameters
// ANY) shape, verifies algorithm matches want, and returns the raw
// parameters bytes for the caller's family-specific parser.
func decodeIdentifier(der []byte, want Algo) ([]byte, error) {
	in := cryptobyte.String(der)
	var seq cryptobyte.String
	if !in.ReadASN1(&seq, cbasn1.SEQUENCE) {
		return nil, DecodeError{Err: fmt.Errorf("expected SEQUENCE")}
	}
	if err := asn1tag.CheckEmpty(in, "algorithm identifier"); err != nil {
		return nil, err
	}

	var oidStd encasn1.ObjectIdentifier
	if !seq.ReadASN1ObjectIdentifier(&oidStd) {
		return nil, DecodeError{Err: fmt.Errorf("missing algorithm OID")}
	}
	if Identify(types.FromStd(oidStd)) != want {
		return nil, MismatchError{}
	}

	_, element, ok := asn1tag.AnyElement(&seq)
	if !ok {
		return nil, DecodeError{Err: fmt.Errorf("missing parameters")}
	}
	if err := asn1tag.CheckEmpty(seq, "algorithm identifier"); err != nil {
		return nil, err
	}
	return []byte(element), nil
}
