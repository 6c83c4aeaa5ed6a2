package sharedeval

import (
	"fmt"

	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/kzg"
	"github.com/luxfi/mpcshare/pkg/polynomial"
	"github.com/luxfi/mpcshare/pkg/wire"
)

// EvalProofWithSharePoly computes this party's share of a KZG evaluation
// proof for the share polynomial f at the public point z: it divides f by
// (X-z) locally, discarding the remainder (the party's share of f(z),
// produced separately via SharePolyEval if the caller needs it), and
// commits the quotient in G1. Because KZG commitment is linear, summing
// every party's output at a later reconstruction step yields the true
// evaluation proof under the trusted setup.
func (e *Evaluator) EvalProofWithSharePoly(pp kzg.UniversalParams, f []wire.Handle, z curve.F) (curve.G1, error) {
	coeffs := make(polynomial.Poly, len(f))
	for i, h := range f {
		coeffs[i] = e.getF(h)
	}
	quotient := polynomial.DivByLinearFactor(coeffs, z)

	proof, err := kzg.CommitG1(pp, quotient)
	if err != nil {
		return curve.G1{}, fmt.Errorf("sharedeval: eval proof: %w", err)
	}
	return proof, nil
}

// BatchEvalProofWithSharePoly runs EvalProofWithSharePoly over aligned
// (share polynomial, evaluation point) pairs.
func (e *Evaluator) BatchEvalProofWithSharePoly(pp kzg.UniversalParams, sharePolys [][]wire.Handle, zs []curve.F) ([]curve.G1, error) {
	if len(sharePolys) != len(zs) {
		return nil, fmt.Errorf("sharedeval: batch eval proof: %w", ErrMismatchedLengths)
	}

	out := make([]curve.G1, len(sharePolys))
	for i := range sharePolys {
		proof, err := e.EvalProofWithSharePoly(pp, sharePolys[i], zs[i])
		if err != nil {
			return nil, fmt.Errorf("sharedeval: batch eval proof: item %d: %w", i, err)
		}
		out[i] = proof
	}
	return out, nil
}
