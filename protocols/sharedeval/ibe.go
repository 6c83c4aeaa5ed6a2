package sharedeval

import (
	"context"
	"fmt"
	"math/big"

	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/wire"
)

// ExpAndRevealG1 computes a secret-shared multi-scalar multiplication in
// G1 — sum_i bases[i]^exponentHandles[i], where each exponent is this
// party's share of a secret scalar — and reconstructs the result in the
// clear under the given reconstruction identifier.
func (e *Evaluator) ExpAndRevealG1(ctx context.Context, bases []curve.G1, exponentHandles []wire.Handle, id string) (curve.G1, error) {
	if len(bases) != len(exponentHandles) {
		return curve.G1{}, fmt.Errorf("sharedeval: exp and reveal g1: %w", ErrMismatchedLengths)
	}
	sum := curve.G1{}
	for i, base := range bases {
		share := e.getF(exponentHandles[i])
		var exp big.Int
		share.BigInt(&exp)
		sum = curve.AddG1(sum, curve.ScalarMulG1(base, &exp))
	}
	return e.AddG1ElementsFromAllParties(ctx, id, sum)
}

// ExpAndRevealG2 is the G2 analogue of ExpAndRevealG1.
func (e *Evaluator) ExpAndRevealG2(ctx context.Context, bases []curve.G2, exponentHandles []wire.Handle, id string) (curve.G2, error) {
	if len(bases) != len(exponentHandles) {
		return curve.G2{}, fmt.Errorf("sharedeval: exp and reveal g2: %w", ErrMismatchedLengths)
	}
	sum := curve.G2{}
	for i, base := range bases {
		share := e.getF(exponentHandles[i])
		var exp big.Int
		share.BigInt(&exp)
		sum = curve.AddG2(sum, curve.ScalarMulG2(base, &exp))
	}
	return e.AddG2ElementsFromAllParties(ctx, id, sum)
}

// ExpAndRevealGt is the Gt analogue of ExpAndRevealG1.
func (e *Evaluator) ExpAndRevealGt(ctx context.Context, bases []curve.Gt, exponentHandles []wire.Handle, id string) (curve.Gt, error) {
	if len(bases) != len(exponentHandles) {
		return curve.Gt{}, fmt.Errorf("sharedeval: exp and reveal gt: %w", ErrMismatchedLengths)
	}
	sum := curve.ZeroGt()
	for i, base := range bases {
		share := e.getF(exponentHandles[i])
		var exp big.Int
		share.BigInt(&exp)
		sum = sum.Add(base.Scale(&exp))
	}
	return e.AddGtElementsFromAllParties(ctx, id, sum)
}

// BatchExpAndRevealGt runs ExpAndRevealGt over aligned (bases, exponent
// handles, identifier) triples, reconstructing every result in a single
// batched round. An exponent share exactly equal to 1 skips the scalar
// multiplication: this is how the common-mask IBE batch encryption passes
// a public "1" exponent without spending a real scalar multiplication on
// it (see BatchDistIBEEncryptWithCommonMask).
func (e *Evaluator) BatchExpAndRevealGt(ctx context.Context, bases [][]curve.Gt, exponentHandles [][]wire.Handle, ids []string) ([]curve.Gt, error) {
	if len(bases) != len(exponentHandles) || len(bases) != len(ids) {
		return nil, fmt.Errorf("sharedeval: batch exp and reveal gt: %w", ErrMismatchedLengths)
	}

	one := func() curve.F { var f curve.F; f.SetOne(); return f }()

	sums := make([]curve.Gt, len(bases))
	for i := range bases {
		if len(bases[i]) != len(exponentHandles[i]) {
			return nil, fmt.Errorf("sharedeval: batch exp and reveal gt: item %d: %w", i, ErrMismatchedLengths)
		}
		sum := curve.ZeroGt()
		for j, base := range bases[i] {
			share := e.getF(exponentHandles[i][j])
			if share.Equal(&one) {
				sum = sum.Add(base)
				continue
			}
			var exp big.Int
			share.BigInt(&exp)
			sum = sum.Add(base.Scale(&exp))
		}
		sums[i] = sum
	}

	return e.BatchAddGtElementsFromAllParties(ctx, ids, sums)
}

// DistIBEEncrypt performs distributed identity-based encryption of a
// shared plaintext z under identity id and public master key pk, masked
// by a shared scalar r. Returns (C1, C2) = (g1^r, g_T^z * e(H(id),pk)^r).
func (e *Evaluator) DistIBEEncrypt(ctx context.Context, msgShare, maskShare wire.Handle, pk curve.G2, id []byte) (curve.G1, curve.Gt, error) {
	hashID, err := curve.HashToG1(id)
	if err != nil {
		return curve.G1{}, curve.Gt{}, fmt.Errorf("sharedeval: dist ibe encrypt: %w", err)
	}
	h, err := curve.Pairing(hashID, pk)
	if err != nil {
		return curve.G1{}, curve.Gt{}, fmt.Errorf("sharedeval: dist ibe encrypt: %w", err)
	}

	c1, err := e.ExpAndRevealG1(ctx, []curve.G1{curve.Generator1()}, []wire.Handle{maskShare},
		"ibe_c1_"+string(msgShare)+string(maskShare))
	if err != nil {
		return curve.G1{}, curve.Gt{}, fmt.Errorf("sharedeval: dist ibe encrypt: %w", err)
	}

	c2, err := e.ExpAndRevealGt(ctx, []curve.Gt{curve.GeneratorGt(), h}, []wire.Handle{msgShare, maskShare},
		"ibe_c2"+string(msgShare)+string(maskShare))
	if err != nil {
		return curve.G1{}, curve.Gt{}, fmt.Errorf("sharedeval: dist ibe encrypt: %w", err)
	}

	return c1, c2, nil
}

// BatchDistIBEEncryptWithCommonMask encrypts len(msgShares) shared
// plaintexts to len(ids) identities under a single shared mask: C1 = g2^r
// (G2, not G1 — distinguishing it on the wire from the single-message
// form), and per-identity C2_i = g_T^z_i * e(H(id_i), pk)^r.
//
// The per-identity mask factor e(H(id_i), pk)^r is computed locally by
// every party as e(H(id_i)^r_local, pk) and folded into the MSM as a
// public base rather than reconstructed separately. To pass it through
// ExpAndRevealGt's MSM shape unexponentiated, every party stores the
// public constant 1 — not an additive share of 1 — in a dedicated wire.
// Reconstructing that wire would therefore open to n, not 1; this routine
// only ever uses it as an MSM exponent and never reconstructs it, so each
// party's mask factor enters its local sum exactly once
// (BatchExpAndRevealGt's exponent-equals-1 case skips the scalar
// multiplication, which gives the same result). This is a deliberate, documented
// asymmetry carried over unchanged, not a bug.
func (e *Evaluator) BatchDistIBEEncryptWithCommonMask(ctx context.Context, msgShares []wire.Handle, maskShare wire.Handle, pk curve.G2, ids [][]byte) (curve.G2, []curve.Gt, error) {
	maskShareVal := e.getF(maskShare)

	eIs := make([]curve.Gt, len(ids))
	for i, id := range ids {
		hashID, err := curve.HashToG1(id)
		if err != nil {
			return curve.G2{}, nil, fmt.Errorf("sharedeval: batch dist ibe encrypt: %w", err)
		}
		var exp big.Int
		maskShareVal.BigInt(&exp)
		hashIDPowR := curve.ScalarMulG1(hashID, &exp)
		eIs[i], err = curve.Pairing(hashIDPowR, pk)
		if err != nil {
			return curve.G2{}, nil, fmt.Errorf("sharedeval: batch dist ibe encrypt: %w", err)
		}
	}

	c1, err := e.ExpAndRevealG2(ctx, []curve.G2{curve.Generator2()}, []wire.Handle{maskShare}, "ibe_c1_"+string(maskShare))
	if err != nil {
		return curve.G2{}, nil, fmt.Errorf("sharedeval: batch dist ibe encrypt: %w", err)
	}

	oneWire := e.freshHandle()
	var one curve.F
	one.SetOne()
	e.putF(oneWire, one)

	gtGen := curve.GeneratorGt()
	gtWithEis := make([][]curve.Gt, len(msgShares))
	msgMaskInterleaved := make([][]wire.Handle, len(msgShares))
	ids2 := make([]string, len(msgShares))
	for i, m := range msgShares {
		gtWithEis[i] = []curve.Gt{gtGen, eIs[i]}
		msgMaskInterleaved[i] = []wire.Handle{m, oneWire}
		ids2[i] = "ibe_c2" + string(m)
	}

	c2s, err := e.BatchExpAndRevealGt(ctx, gtWithEis, msgMaskInterleaved, ids2)
	if err != nil {
		return curve.G2{}, nil, fmt.Errorf("sharedeval: batch dist ibe encrypt: %w", err)
	}

	return c1, c2s, nil
}
