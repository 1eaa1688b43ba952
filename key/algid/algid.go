// Package algid identifies the three algorithms this module understands
// (RSA, DSA, EC) by their fixed AlgorithmIdentifier OIDs, and wraps each
// key family's own parameters grammar behind the common
// "algorithm OID + algorithm-specific parameters" shape that
// SubjectPublicKeyInfo and PKCS#8 PrivateKeyInfo both carry.
//
// Grounded on moby/zlint's algorithm_identifier.go, which peeks an
// AlgorithmIdentifier's OID with ReadAnyASN1Element before deciding how to
// parse its parameters — the same move used here and in package x509spki
// and package pkcs8 to dispatch on the algorithm actually present on the
// wire rather than trying each grammar in turn.
package algid

import (
	encasn1 "encoding/asn1"

	"github.com/dromara/keyasn1/types"
)

// Algo identifies the algorithm an AlgorithmIdentifier names.
type Algo int

const (
	// Unknown is any algorithm OID this module does not recognize. An
	// Algo value does not store the OID it was identified from. Package
	// x509spki and package pkcs8 reject an Unknown algorithm with a
	// DecodeError whose message names the unrecognized OID.
	Unknown Algo = iota
	RSA
	DSA
	EC
)

// Fixed algorithm OIDs (spec §5).
var (
	oidRSA = types.NewOID(1, 2, 840, 113549, 1, 1, 1)
	oidDSA = types.NewOID(1, 2, 840, 10040, 4, 1)
	oidEC  = types.NewOID(1, 2, 840, 10045, 2, 1)
)

// Identify maps an algorithm OID to the Algo it names.
func Identify(oid types.OID) Algo {
	switch {
	case oid.Equal(oidRSA):
		return RSA
	case oid.Equal(oidDSA):
		return DSA
	case oid.Equal(oidEC):
		return EC
	default:
		return Unknown
	}
}

// OID returns the fixed AlgorithmIdentifier OID for a, or the zero OID for
// Unknown (callers holding an Unknown Algo must carry the original OID
// alongside it; this package never invents one).
func (a Algo) OID() types.OID {
	switch a {
	case RSA:
		return oidRSA
	case DSA:
		return oidDSA
	case EC:
		return oidEC
	default:
		return nil
	}
}

func (a Algo) String() string {
	switch a {
	case RSA:
		return "RSA"
	case DSA:
		return "DSA"
	case EC:
		return "EC"
	default:
		return "Unknown"
	}
}

// ToStd is a convenience for building encoding/asn1-shaped AlgorithmIdentifier
// OIDs, matching the representation cryptobyte's OID reader/writer uses.
func (a Algo) ToStd() encasn1.ObjectIdentifier {
	return a.OID().ToStd()
}
