// @Package keyasn1
// @Description DER encode and decode for RSA, DSA, and EC keys, X.509
// SubjectPublicKeyInfo, and PKCS#8 PrivateKeyInfo.

// Package keyasn1 is the root of a set of small, composable packages
// implementing the ASN.1 grammars for RSA, DSA, and EC public/private
// keys (types/, key/rsa, key/dsa, key/ec), the algorithm-identifier
// layer that ties an OID to one of those families (key/algid), and the
// two standard key containers built on top of it (x509spki, pkcs8).
//
// Every Encode method produces canonical DER. Every Decode function
// reads its input with cryptobyte's ASN.1 reader, which accepts DER
// length forms only: indefinite lengths and non-minimal long-form
// lengths are rejected, so BER input that uses them does not decode.
// Every Decode function also rejects any input with unconsumed trailing
// bytes.
package keyasn1

// Version is the module's semantic version.
const Version = "0.1.0"
