// Package types provides the primitive bindings shared by every key
// grammar in this module: an arbitrary-precision integer, an opaque byte
// buffer, and an object identifier, each with comparison, string, and
// JSON diagnostic support.
package types
