package sharedeval

import (
	"context"
	"fmt"

	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/params"
	"github.com/luxfi/mpcshare/pkg/wire"
)

// BatchInv computes handles to the multiplicative inverses of xs, via
// mask-and-open: for each x_i, mask with a fresh random sharing r_i,
// open q_i = x_i*r_i, then output r_i * q_i^-1 = x_i^-1. Undefined (not
// detected) when the logical value behind any x_i is zero.
func (e *Evaluator) BatchInv(ctx context.Context, xs []wire.Handle) ([]wire.Handle, error) {
	l := len(xs)
	if l == 0 {
		return nil, nil
	}

	rs := make([]wire.Handle, l)
	for i := 0; i < l; i++ {
		r, err := e.Ran()
		if err != nil {
			return nil, fmt.Errorf("sharedeval: batch inv: %w", err)
		}
		rs[i] = r
	}

	qs, err := e.BatchMult(ctx, xs, rs)
	if err != nil {
		return nil, fmt.Errorf("sharedeval: batch inv: %w", err)
	}

	opened, err := e.BatchOutputWire(ctx, qs)
	if err != nil {
		return nil, fmt.Errorf("sharedeval: batch inv: %w", err)
	}

	out := make([]wire.Handle, l)
	for i := 0; i < l; i++ {
		var qInv curve.F
		qInv.Inverse(&opened[i])
		out[i] = e.Scale(rs[i], qInv)
	}
	return out, nil
}

// BatchExp computes handles to xs[i]^(2^LOG_PERM_SIZE) by LOG_PERM_SIZE
// iterations of BatchMult(t, t), one reconstruction round per iteration.
func (e *Evaluator) BatchExp(ctx context.Context, xs []wire.Handle) ([]wire.Handle, error) {
	t := make([]wire.Handle, len(xs))
	copy(t, xs)

	for i := 0; i < params.LogPermSize; i++ {
		next, err := e.BatchMult(ctx, t, t)
		if err != nil {
			return nil, fmt.Errorf("sharedeval: batch exp: round %d: %w", i, err)
		}
		t = next
	}

	out := make([]wire.Handle, len(xs))
	for i, h := range t {
		fresh := e.freshHandle()
		e.putF(fresh, e.getF(h))
		out[i] = fresh
	}
	return out, nil
}

// BatchRan64 produces L shared values, each a uniformly random
// 2^LOG_PERM_SIZE-th root of unity: it opens A_i = a_i^(2^LOG_PERM_SIZE) for
// fresh random sharings a_i, finds a root l_i of A_i by LOG_PERM_SIZE
// square roots, and outputs a_i / l_i. It returns ErrImprobableZero if an
// opened intermediate A_i is zero — a
// statistical fault treated as fatal despite its negligible probability.
func (e *Evaluator) BatchRan64(ctx context.Context, l int) ([]wire.Handle, error) {
	as := make([]wire.Handle, l)
	for i := 0; i < l; i++ {
		r, err := e.Ran()
		if err != nil {
			return nil, fmt.Errorf("sharedeval: batch ran 64: %w", err)
		}
		as[i] = r
	}

	capped, err := e.BatchExp(ctx, as)
	if err != nil {
		return nil, fmt.Errorf("sharedeval: batch ran 64: %w", err)
	}

	opened, err := e.BatchOutputWire(ctx, capped)
	if err != nil {
		return nil, fmt.Errorf("sharedeval: batch ran 64: %w", err)
	}

	out := make([]wire.Handle, l)
	for i, a := range opened {
		if a.IsZero() {
			return nil, fmt.Errorf("sharedeval: batch ran 64: %w", ErrImprobableZero)
		}

		root := a
		for j := 0; j < params.LogPermSize; j++ {
			var next curve.F
			if next.Sqrt(&root) == nil {
				return nil, fmt.Errorf("sharedeval: batch ran 64: %w", ErrImprobableZero)
			}
			root = next
		}

		var rootInv curve.F
		rootInv.Inverse(&root)
		out[i] = e.Scale(as[i], rootInv)
	}
	return out, nil
}
