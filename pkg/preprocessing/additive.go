package preprocessing

import (
	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/party"
)

// Triple is one additive share of a Beaver triple (a, b, a*b).
type Triple struct {
	A, B, C curve.F
}

// randomF draws a field element from an unpredictable, non-deterministic
// source. Used for the per-triple secret (a, b) pair that only the last
// party ever reconstructs a share of directly; every other party's share of
// it comes entirely off the shared deterministic stream below.
func randomF() (curve.F, error) {
	var f curve.F
	_, err := f.SetRandom()
	return f, err
}

// AdditiveTriples runs the default trial-division preprocessing scheme: n
// parties deterministically derive identical shares for parties 1..n-1 off
// a shared seed, and the n-th party's share is whatever makes the sum
// correct. It is not a secret-sharing scheme in the cryptographic sense —
// party n's share leaks the moment any other party's share does — but the
// evaluator's threat model is semi-honest with no verification of
// preprocessing, so this is adequate for it.
//
// myID must lie in [1, n]. Exactly one triple is produced per count,
// identically ordered across all callers that share seed and n.
func AdditiveTriples(seed [32]byte, n uint64, myID party.ID, count int) ([]Triple, error) {
	stream := newSeededStream(seed)
	out := make([]Triple, 0, count)

	for i := 0; i < count; i++ {
		a, err := randomF()
		if err != nil {
			return nil, err
		}
		b, err := randomF()
		if err != nil {
			return nil, err
		}

		var sumA, sumB, sumC curve.F
		var mine Triple
		haveMine := false

		for j := uint64(1); j < n; j++ {
			shareA := stream.nextF()
			shareB := stream.nextF()
			shareC := stream.nextF()

			sumA.Add(&sumA, &shareA)
			sumB.Add(&sumB, &shareB)
			sumC.Add(&sumC, &shareC)

			if party.ID(j) == myID {
				mine = Triple{A: shareA, B: shareB, C: shareC}
				haveMine = true
			}
		}

		if myID == party.ID(n) {
			var cA, cB, cC, ab curve.F
			cA.Sub(&a, &sumA)
			cB.Sub(&b, &sumB)
			ab.Mul(&a, &b)
			cC.Sub(&ab, &sumC)
			mine = Triple{A: cA, B: cB, C: cC}
			haveMine = true
		}

		if !haveMine {
			if myID < 1 || myID > party.ID(n) {
				panic("preprocessing: party id out of range for AdditiveTriples")
			}
			panic("preprocessing: no triple assigned (unreachable for valid n, myID)")
		}

		out = append(out, mine)
	}

	return out, nil
}

