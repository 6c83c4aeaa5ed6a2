package sharedeval_test

import (
	"context"
	"math/big"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/luxfi/mpcshare/internal/nettest"
	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/party"
	"github.com/luxfi/mpcshare/pkg/wire"
	"github.com/luxfi/mpcshare/protocols/sharedeval"
)

// simulate spawns one goroutine per party id 1..n, each running fn against
// its own Evaluator wired to a shared in-memory network, and collects
// per-party results. It is shared between testify- and ginkgo-style specs,
// so it reports failure via a returned error rather than a *testing.T.
func simulate[T any](n uint64, fn func(ctx context.Context, e *sharedeval.Evaluator) (T, error)) (map[party.ID]T, error) {
	net := nettest.New(n)
	ctx := context.Background()

	g, ctx := errgroup.WithContext(ctx)
	resultsCh := make(chan struct {
		id  party.ID
		out T
	}, n)
	for _, id := range party.Range(n) {
		id := id
		g.Go(func() error {
			ep := net.Endpoint(id)
			e, err := sharedeval.New(ctx, ep, sharedeval.Config{})
			if err != nil {
				return err
			}
			out, err := fn(ctx, e)
			if err != nil {
				return err
			}
			resultsCh <- struct {
				id  party.ID
				out T
			}{id, out}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(resultsCh)

	results := make(map[party.ID]T, n)
	for r := range resultsCh {
		results[r.id] = r.out
	}
	return results, nil
}

// runParties is simulate, failing t immediately on any party error.
func runParties[T any](t *testing.T, n uint64, fn func(ctx context.Context, e *sharedeval.Evaluator) (T, error)) map[party.ID]T {
	t.Helper()
	results, err := simulate(n, fn)
	require.NoError(t, err)
	return results
}

func fieldFromUint64(v uint64) curve.F {
	var f curve.F
	f.SetUint64(v)
	return f
}

func bigFrom64(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

func TestMultSevenTimesEleven(t *testing.T) {
	const n = 3
	results := runParties(t, n, func(ctx context.Context, e *sharedeval.Evaluator) (curve.F, error) {
		x := e.FixedWire(fieldFromUint64(7))
		y := e.FixedWire(fieldFromUint64(11))
		z, err := e.Mult(ctx, x, y)
		if err != nil {
			return curve.F{}, err
		}
		return e.OutputWire(ctx, z)
	})

	want := fieldFromUint64(77)
	for id, got := range results {
		require.True(t, got.Equal(&want), "party %d: mult(7,11) mismatch", id)
	}
}

func TestFixedWireAndClearAdd(t *testing.T) {
	const n = 3
	results := runParties(t, n, func(ctx context.Context, e *sharedeval.Evaluator) (curve.F, error) {
		x := e.FixedWire(fieldFromUint64(5))
		y := e.ClearAdd(x, fieldFromUint64(3))
		return e.OutputWire(ctx, y)
	})

	want := fieldFromUint64(8)
	for id, got := range results {
		require.True(t, got.Equal(&want), "party %d: fixed_wire+clear_add mismatch", id)
	}
}

func TestBatchExpRaisesToPermSizePower(t *testing.T) {
	const n = 3
	results := runParties(t, n, func(ctx context.Context, e *sharedeval.Evaluator) (curve.F, error) {
		x := e.FixedWire(fieldFromUint64(3))
		outs, err := e.BatchExp(ctx, []wire.Handle{x})
		if err != nil {
			return curve.F{}, err
		}
		return e.OutputWire(ctx, outs[0])
	})

	three := fieldFromUint64(3)
	var want curve.F
	want.Exp(three, bigFrom64(64))
	for id, got := range results {
		require.True(t, got.Equal(&want), "party %d: batch_exp(3) mismatch", id)
	}
}

func TestBatchInvIsMultiplicativeInverse(t *testing.T) {
	const n = 3
	results := runParties(t, n, func(ctx context.Context, e *sharedeval.Evaluator) (curve.F, error) {
		x := e.FixedWire(fieldFromUint64(4))
		outs, err := e.BatchInv(ctx, []wire.Handle{x})
		if err != nil {
			return curve.F{}, err
		}
		xInv, err := e.OutputWire(ctx, outs[0])
		if err != nil {
			return curve.F{}, err
		}
		four := fieldFromUint64(4)
		var prod curve.F
		prod.Mul(&four, &xInv)
		return prod, nil
	})

	one := fieldFromUint64(1)
	for id, got := range results {
		require.True(t, got.Equal(&one), "party %d: 4 * inv(4) != 1", id)
	}
}

func TestSharePolyMultCoefficients(t *testing.T) {
	const n = 3
	// f(X) = 1 + 2X, g(X) = 3 + 4X  =>  f*g = 3 + 10X + 8X^2
	results := runParties(t, n, func(ctx context.Context, e *sharedeval.Evaluator) ([]curve.F, error) {
		f := []wire.Handle{e.FixedWire(fieldFromUint64(1)), e.FixedWire(fieldFromUint64(2))}
		g := []wire.Handle{e.FixedWire(fieldFromUint64(3)), e.FixedWire(fieldFromUint64(4))}
		h, err := e.SharePolyMult(ctx, f, g)
		if err != nil {
			return nil, err
		}
		return e.BatchOutputWire(ctx, h)
	})

	want := []curve.F{fieldFromUint64(3), fieldFromUint64(10), fieldFromUint64(8)}
	for id, got := range results {
		require.GreaterOrEqual(t, len(got), len(want), "party %d: short coefficient vector", id)
		for i, w := range want {
			require.True(t, got[i].Equal(&w), "party %d: coefficient %d mismatch", id, i)
		}
		for i := len(want); i < len(got); i++ {
			require.True(t, got[i].IsZero(), "party %d: trailing coefficient %d should vanish", id, i)
		}
	}
}

func TestDistIBEEncryptScenario(t *testing.T) {
	const n = 3
	skBig := bigFrom64(12345)
	pk := curve.ScalarMulG2(curve.Generator2(), skBig)

	type ibeOut struct {
		c1 curve.G1
		c2 curve.Gt
	}

	results := runParties(t, n, func(ctx context.Context, e *sharedeval.Evaluator) (ibeOut, error) {
		msg := e.FixedWire(fieldFromUint64(99))
		maskRan, err := e.Ran()
		if err != nil {
			return ibeOut{}, err
		}
		c1, c2, err := e.DistIBEEncrypt(ctx, msg, maskRan, pk, []byte("player-7"))
		if err != nil {
			return ibeOut{}, err
		}
		return ibeOut{c1: c1, c2: c2}, nil
	})

	var first ibeOut
	firstSet := false
	for _, got := range results {
		if !firstSet {
			first = got
			firstSet = true
			continue
		}
		require.True(t, reflect.DeepEqual(first.c1, got.c1), "all parties must reconstruct the same C1")
		require.True(t, first.c2.Equal(got.c2), "all parties must reconstruct the same C2")
	}
}
