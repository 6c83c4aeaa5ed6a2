// Package kzg provides the minimal subset of a KZG polynomial commitment
// scheme the evaluator needs: committing a coefficient vector to G1 under a
// structured reference string. Generating and distributing that reference
// string (the trusted setup) is outside this package's scope — UniversalParams
// is constructed from whatever powers of tau a deployment already trusts.
package kzg

import (
	"fmt"
	"math/big"

	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/polynomial"
)

// UniversalParams holds the G1 powers of the setup's secret tau:
// PowersOfG[i] = g1^(tau^i). Only the G1 powers are needed since the
// evaluator only ever produces G1 commitments.
type UniversalParams struct {
	PowersOfG []curve.G1
}

// Setup derives a UniversalParams deterministically from tau, supporting
// polynomials up to the given degree. Meant for tests and local simulation:
// a production deployment must instead load parameters from a setup whose
// tau was never held in one place.
func Setup(tau curve.F, maxDegree int) UniversalParams {
	g1 := curve.Generator1()
	powers := make([]curve.G1, maxDegree+1)

	var tauPow curve.F
	tauPow.SetOne()
	for i := 0; i <= maxDegree; i++ {
		var exp big.Int
		tauPow.BigInt(&exp)
		powers[i] = curve.ScalarMulG1(g1, &exp)
		tauPow.Mul(&tauPow, &tau)
	}

	return UniversalParams{PowersOfG: powers}
}

// CommitG1 computes the KZG commitment to p: the sum of p's coefficients
// each scaled by the matching power of tau in G1.
func CommitG1(pp UniversalParams, p polynomial.Poly) (curve.G1, error) {
	if len(p) > len(pp.PowersOfG) {
		return curve.G1{}, fmt.Errorf("kzg: polynomial degree %d exceeds setup degree %d", len(p)-1, len(pp.PowersOfG)-1)
	}

	acc := curve.ScalarMulG1(pp.PowersOfG[0], zeroScalar())
	for i, coeff := range p {
		var exp big.Int
		coeff.BigInt(&exp)
		term := curve.ScalarMulG1(pp.PowersOfG[i], &exp)
		acc = curve.AddG1(acc, term)
	}
	return acc, nil
}

func zeroScalar() *big.Int {
	return new(big.Int)
}
