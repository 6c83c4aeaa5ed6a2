package preprocessing

import (
	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/party"
	"github.com/luxfi/mpcshare/pkg/polynomial"
)

// ShamirShare splits secret into an (n, n)-threshold Shamir sharing:
// degree-(n-1) random polynomial with constant term secret, evaluated at
// x = 1..n. Reconstructing needs every share.
func ShamirShare(secret curve.F, n uint64, rnd func() (curve.F, error)) ([]curve.F, error) {
	coeffs := make(polynomial.Poly, n)
	coeffs[0] = secret
	for i := uint64(1); i < n; i++ {
		r, err := rnd()
		if err != nil {
			return nil, err
		}
		coeffs[i] = r
	}

	shares := make([]curve.F, n)
	for x := uint64(1); x <= n; x++ {
		var xf curve.F
		xf.SetUint64(x)
		shares[x-1] = coeffs.Eval(xf)
	}
	return shares, nil
}

// ShamirTriples is the documented-but-unused Shamir-sharing variant of
// Beaver-triple preprocessing: unlike AdditiveTriples, every party's share
// is a Shamir share, evaluated at x = myID on polynomials whose
// reconstruction needs all n shares. The default evaluator scheme is
// AdditiveTriples. Every party replays the same seeded stream to draw a, b
// and all polynomial coefficients, so any holder of the seed can recompute
// every party's share and the triple itself.
func ShamirTriples(seed [32]byte, n uint64, myID party.ID, count int) ([]Triple, error) {
	stream := newSeededStream(seed)
	out := make([]Triple, count)

	for i := 0; i < count; i++ {
		a := stream.nextF()
		b := stream.nextF()
		var c curve.F
		c.Mul(&a, &b)

		sharesA, err := ShamirShare(a, n, func() (curve.F, error) { return stream.nextF(), nil })
		if err != nil {
			return nil, err
		}
		sharesB, err := ShamirShare(b, n, func() (curve.F, error) { return stream.nextF(), nil })
		if err != nil {
			return nil, err
		}
		sharesC, err := ShamirShare(c, n, func() (curve.F, error) { return stream.nextF(), nil })
		if err != nil {
			return nil, err
		}

		out[i] = Triple{
			A: sharesA[myID-1],
			B: sharesB[myID-1],
			C: sharesC[myID-1],
		}
	}

	return out, nil
}

// ShamirRandSharings is the only generator this package has for plain
// random sharings (as opposed to Beaver triples): every party derives its
// share of a fresh secret via an honest (n,n)-threshold Shamir sharing, off
// the shared Shamir-variant seed. There is no additive-trial-division
// analogue for random sharings — unlike Beaver triples, there is no
// multiplicative structure to reuse the trick on, so the evaluator's
// default preprocessing for random sharings always runs this.
func ShamirRandSharings(seed [32]byte, n uint64, myID party.ID, count int) ([]curve.F, error) {
	stream := newSeededStream(seed)
	out := make([]curve.F, count)

	for i := 0; i < count; i++ {
		secret := stream.nextF()
		shares, err := ShamirShare(secret, n, func() (curve.F, error) { return stream.nextF(), nil })
		if err != nil {
			return nil, err
		}
		out[i] = shares[myID-1]
	}

	return out, nil
}
