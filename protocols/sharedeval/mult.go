package sharedeval

import (
	"context"
	"fmt"

	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/params"
	"github.com/luxfi/mpcshare/pkg/party"
	"github.com/luxfi/mpcshare/pkg/wire"
)

// Beaver exposes the next preprocessed triple as three fresh wire handles,
// for callers that want to drive the multiplication protocol themselves
// instead of calling Mult.
func (e *Evaluator) Beaver() (a, b, c wire.Handle, err error) {
	t, err := e.nextBeaverTriple()
	if err != nil {
		return "", "", "", err
	}
	a, b, c = e.freshHandle(), e.freshHandle(), e.freshHandle()
	e.putF(a, t.A)
	e.putF(b, t.B)
	e.putF(c, t.C)
	return a, b, c, nil
}

// BatchBeaver is Beaver repeated n times, consuming n triples in order.
func (e *Evaluator) BatchBeaver(n int) ([][3]wire.Handle, error) {
	out := make([][3]wire.Handle, n)
	for i := 0; i < n; i++ {
		a, b, c, err := e.Beaver()
		if err != nil {
			return nil, fmt.Errorf("sharedeval: batch beaver: %w", err)
		}
		out[i] = [3]wire.Handle{a, b, c}
	}
	return out, nil
}

// Mult computes a handle to x*y using one Beaver triple and one round of
// reconstruction.
func (e *Evaluator) Mult(ctx context.Context, x, y wire.Handle) (wire.Handle, error) {
	outs, err := e.BatchMult(ctx, []wire.Handle{x}, []wire.Handle{y})
	if err != nil {
		return "", err
	}
	return outs[0], nil
}

// BatchMult computes handles to xs[i]*ys[i] for every i, consuming one
// triple per pair and reconstructing all 2*len(xs) opened values in a
// single batched round.
func (e *Evaluator) BatchMult(ctx context.Context, xs, ys []wire.Handle) ([]wire.Handle, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("sharedeval: batch mult: %w", ErrMismatchedLengths)
	}
	l := len(xs)
	if l == 0 {
		return nil, nil
	}

	triples := make([]struct{ a, b, c curve.F }, l)
	dShares := make([]curve.F, l)
	eShares := make([]curve.F, l)
	outHandles := make([]wire.Handle, l)
	ids := make([]string, 2*l)

	for i := 0; i < l; i++ {
		t, err := e.nextBeaverTriple()
		if err != nil {
			return nil, fmt.Errorf("sharedeval: batch mult: %w", err)
		}
		triples[i].a, triples[i].b, triples[i].c = t.A, t.B, t.C

		xv, yv := e.getF(xs[i]), e.getF(ys[i])
		dShares[i].Add(&xv, &t.A)
		eShares[i].Add(&yv, &t.B)

		outHandles[i] = e.freshHandle()
		ids[2*i] = "mult_d_" + string(outHandles[i])
		ids[2*i+1] = "mult_e_" + string(outHandles[i])
	}

	values := make([]curve.F, 2*l)
	for i := 0; i < l; i++ {
		values[2*i] = dShares[i]
		values[2*i+1] = eShares[i]
	}

	opened, err := reconstructBatch(ctx, e, fGroup, ids, values, params.ChunkSizeF)
	if err != nil {
		return nil, fmt.Errorf("sharedeval: batch mult: %w", err)
	}

	amConstantAdder := party.IsConstantAdder(e.messaging.GetMyID())
	for i := 0; i < l; i++ {
		d, ee := opened[2*i], opened[2*i+1]
		t := triples[i]

		var out, term1, term2 curve.F
		term1.Mul(&d, &t.b)
		term2.Mul(&ee, &t.a)
		out.Sub(&out, &term1)
		out.Sub(&out, &term2)
		out.Add(&out, &t.c)

		if amConstantAdder {
			var de curve.F
			de.Mul(&d, &ee)
			out.Add(&out, &de)
		}

		e.putF(outHandles[i], out)
	}

	return outHandles, nil
}
