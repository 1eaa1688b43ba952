package ec

import "github.com/dromara/keyasn1/types"

// Field-type and basis-selector OIDs from RFC 5480 / X9.62, naming the ANY
// payload shapes dispatched on in field.go.
var (
	oidFieldPrime             = types.NewOID(1, 2, 840, 10045, 1, 1)
	oidFieldCharacteristicTwo = types.NewOID(1, 2, 840, 10045, 1, 2)

	oidBasisGaussianNormal = types.NewOID(1, 2, 840, 10045, 1, 2, 3, 1)
	oidBasisTrinomial      = types.NewOID(1, 2, 840, 10045, 1, 2, 3, 2)
	oidBasisPentanomial    = types.NewOID(1, 2, 840, 10045, 1, 2, 3, 3)
)
