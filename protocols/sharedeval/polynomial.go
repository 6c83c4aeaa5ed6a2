package sharedeval

import (
	"context"
	"fmt"

	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/params"
	"github.com/luxfi/mpcshare/pkg/polynomial"
	"github.com/luxfi/mpcshare/pkg/wire"
)

// SharePolyEval evaluates the share polynomial f (coefficients in ascending
// degree order, each an additively shared value) at the public point x.
// Purely local: every party's output is its additive share of f(x).
func (e *Evaluator) SharePolyEval(f []wire.Handle, x curve.F) wire.Handle {
	var acc curve.F
	for i := len(f) - 1; i >= 0; i-- {
		acc.Mul(&acc, &x)
		v := e.getF(f[i])
		acc.Add(&acc, &v)
	}
	h := e.freshHandle()
	e.putF(h, acc)
	return h
}

// SharePolyMult computes the share polynomial h = f*g, of degree up to
// 2*PERM_SIZE-1, by evaluating f and g at the 2*PERM_SIZE-th roots of unity
// (locally, via SharePolyEval), multiplying pointwise in a single batched
// round (BatchMult), and interpolating the result locally. Each party's
// local interpolation of its own evaluation shares yields its share of h's
// coefficients, since the interpolation transform is linear.
func (e *Evaluator) SharePolyMult(ctx context.Context, f, g []wire.Handle) ([]wire.Handle, error) {
	domainSize := uint64(2 * params.PermSize)

	gen, err := polynomial.SubgroupGenerator(domainSize)
	if err != nil {
		return nil, fmt.Errorf("sharedeval: share poly mult: %w", err)
	}

	fEvals := make([]wire.Handle, domainSize)
	gEvals := make([]wire.Handle, domainSize)
	var omegaPow curve.F
	omegaPow.SetOne()
	for i := uint64(0); i < domainSize; i++ {
		fEvals[i] = e.SharePolyEval(f, omegaPow)
		gEvals[i] = e.SharePolyEval(g, omegaPow)
		omegaPow.Mul(&omegaPow, &gen)
	}

	hEvalHandles, err := e.BatchMult(ctx, fEvals, gEvals)
	if err != nil {
		return nil, fmt.Errorf("sharedeval: share poly mult: %w", err)
	}

	shares := make([]curve.F, domainSize)
	for i, h := range hEvalHandles {
		shares[i] = e.getF(h)
	}

	coeffShares, err := polynomial.InterpolateOverSubgroup(shares)
	if err != nil {
		return nil, fmt.Errorf("sharedeval: share poly mult: %w", err)
	}

	out := make([]wire.Handle, len(coeffShares))
	for i, c := range coeffShares {
		h := e.freshHandle()
		e.putF(h, c)
		out[i] = h
	}
	return out, nil
}
