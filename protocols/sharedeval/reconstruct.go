package sharedeval

import (
	"context"
	"fmt"

	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/encoding"
	"github.com/luxfi/mpcshare/pkg/params"
	"github.com/luxfi/mpcshare/pkg/wire"
)

// group captures exactly the capability every reconstructible type needs:
// an additive identity, an addition operator, and a canonical wire
// encoding. Reconstruction is written once against this constraint instead
// of once per F/G1/G2/Gt, per the source design's own note that the
// per-group duplication should be factored into a single capability trait.
type group[T any] struct {
	zero   T
	add    func(a, b T) T
	encode func(T) string
	decode func(string) (T, error)
}

var fGroup = group[curve.F]{
	zero: curve.F{},
	add: func(a, b curve.F) curve.F {
		var out curve.F
		out.Add(&a, &b)
		return out
	},
	encode: encoding.EncodeF,
	decode: encoding.DecodeF,
}

var g1Group = group[curve.G1]{
	zero: curve.G1{},
	add: func(a, b curve.G1) curve.G1 {
		return curve.AddG1(a, b)
	},
	encode: encoding.EncodeG1,
	decode: encoding.DecodeG1,
}

var g2Group = group[curve.G2]{
	zero: curve.G2{},
	add: func(a, b curve.G2) curve.G2 {
		return curve.AddG2(a, b)
	},
	encode: encoding.EncodeG2,
	decode: encoding.DecodeG2,
}

var gtGroup = group[curve.Gt]{
	zero: curve.ZeroGt(),
	add: func(a, b curve.Gt) curve.Gt {
		return a.Add(b)
	},
	encode: encoding.EncodeGt,
	decode: encoding.DecodeGt,
}

// reconstructOne broadcasts share under handle, receives every other
// party's contribution, and sums them all (local share included) to
// recover the logical value.
func reconstructOne[T any](ctx context.Context, e *Evaluator, g group[T], handleStr string, share T) (T, error) {
	if err := e.messaging.SendToAll(ctx, []string{handleStr}, []string{g.encode(share)}); err != nil {
		return g.zero, fmt.Errorf("sharedeval: reconstruct: send: %w", err)
	}
	contributions, err := e.messaging.RecvFromAll(ctx, handleStr)
	if err != nil {
		return g.zero, fmt.Errorf("sharedeval: reconstruct: recv: %w", err)
	}

	acc := share
	for _, c := range contributions {
		v, err := g.decode(c.Value)
		if err != nil {
			return g.zero, fmt.Errorf("sharedeval: reconstruct: decode from party %d: %w", c.SenderID, err)
		}
		acc = g.add(acc, v)
	}
	return acc, nil
}

// reconstructBatch runs reconstructOne over aligned (handles, shares),
// splitting the broadcast into chunks of at most chunkSize items — a pure
// throughput optimization; the reconstructed values are identical to one
// giant send.
func reconstructBatch[T any](ctx context.Context, e *Evaluator, g group[T], handleStrs []string, shares []T, chunkSize int) ([]T, error) {
	if len(handleStrs) != len(shares) {
		return nil, fmt.Errorf("sharedeval: reconstruct batch: %w", ErrMismatchedLengths)
	}

	out := make([]T, len(shares))
	for start := 0; start < len(shares); start += chunkSize {
		end := start + chunkSize
		if end > len(shares) {
			end = len(shares)
		}

		chunkHandles := handleStrs[start:end]
		chunkValues := make([]string, len(chunkHandles))
		for i, s := range shares[start:end] {
			chunkValues[i] = g.encode(s)
		}

		if err := e.messaging.SendToAll(ctx, chunkHandles, chunkValues); err != nil {
			return nil, fmt.Errorf("sharedeval: reconstruct batch: send: %w", err)
		}

		for i, h := range chunkHandles {
			contributions, err := e.messaging.RecvFromAll(ctx, h)
			if err != nil {
				return nil, fmt.Errorf("sharedeval: reconstruct batch: recv %q: %w", h, err)
			}
			acc := shares[start+i]
			for _, c := range contributions {
				v, err := g.decode(c.Value)
				if err != nil {
					return nil, fmt.Errorf("sharedeval: reconstruct batch: decode from party %d: %w", c.SenderID, err)
				}
				acc = g.add(acc, v)
			}
			out[start+i] = acc
		}
	}
	return out, nil
}

// OutputWire reconstructs the logical value behind h.
func (e *Evaluator) OutputWire(ctx context.Context, h wire.Handle) (curve.F, error) {
	return reconstructOne(ctx, e, fGroup, string(h), e.getF(h))
}

// BatchOutputWire reconstructs the logical values behind hs, chunking the
// broadcast at params.ChunkSizeF items per round.
func (e *Evaluator) BatchOutputWire(ctx context.Context, hs []wire.Handle) ([]curve.F, error) {
	handleStrs := make([]string, len(hs))
	shares := make([]curve.F, len(hs))
	for i, h := range hs {
		handleStrs[i] = string(h)
		shares[i] = e.getF(h)
	}
	return reconstructBatch(ctx, e, fGroup, handleStrs, shares, params.ChunkSizeF)
}

// AddG1ElementsFromAllParties reconstructs a G1 value additively shared
// under identifier id, given this party's local share.
func (e *Evaluator) AddG1ElementsFromAllParties(ctx context.Context, id string, share curve.G1) (curve.G1, error) {
	return reconstructOne(ctx, e, g1Group, id, share)
}

// BatchAddG1ElementsFromAllParties is the chunked, batched form of
// AddG1ElementsFromAllParties.
func (e *Evaluator) BatchAddG1ElementsFromAllParties(ctx context.Context, ids []string, shares []curve.G1) ([]curve.G1, error) {
	return reconstructBatch(ctx, e, g1Group, ids, shares, params.ChunkSizeG1)
}

// AddG2ElementsFromAllParties is the G2 analogue of
// AddG1ElementsFromAllParties.
func (e *Evaluator) AddG2ElementsFromAllParties(ctx context.Context, id string, share curve.G2) (curve.G2, error) {
	return reconstructOne(ctx, e, g2Group, id, share)
}

// BatchAddG2ElementsFromAllParties is the chunked, batched form of
// AddG2ElementsFromAllParties.
func (e *Evaluator) BatchAddG2ElementsFromAllParties(ctx context.Context, ids []string, shares []curve.G2) ([]curve.G2, error) {
	return reconstructBatch(ctx, e, g2Group, ids, shares, params.ChunkSizeG2)
}

// AddGtElementsFromAllParties is the Gt analogue of
// AddG1ElementsFromAllParties.
func (e *Evaluator) AddGtElementsFromAllParties(ctx context.Context, id string, share curve.Gt) (curve.Gt, error) {
	return reconstructOne(ctx, e, gtGroup, id, share)
}

// BatchAddGtElementsFromAllParties is the chunked, batched form of
// AddGtElementsFromAllParties, chunked at params.ChunkSizeGt — smaller than
// the other groups since Gt elements serialize to far more bytes.
func (e *Evaluator) BatchAddGtElementsFromAllParties(ctx context.Context, ids []string, shares []curve.Gt) ([]curve.Gt, error) {
	return reconstructBatch(ctx, e, gtGroup, ids, shares, params.ChunkSizeGt)
}
