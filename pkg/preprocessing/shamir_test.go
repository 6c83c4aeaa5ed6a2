package preprocessing

import (
	"testing"

	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/party"
)

func TestShamirShareReconstructs(t *testing.T) {
	const n = 5
	var secret curve.F
	secret.SetUint64(1234)

	calls := 0
	shares, err := ShamirShare(secret, n, func() (curve.F, error) {
		calls++
		var f curve.F
		f.SetUint64(uint64(1000 + calls))
		return f, nil
	})
	if err != nil {
		t.Fatalf("ShamirShare: %v", err)
	}
	if len(shares) != n {
		t.Fatalf("got %d shares, want %d", len(shares), n)
	}

	// Lagrange-interpolate at x=0 using all n points and check it recovers
	// the secret.
	var recovered curve.F
	for i := uint64(0); i < n; i++ {
		xi := i + 1
		var num, den curve.F
		num.SetOne()
		den.SetOne()
		for j := uint64(0); j < n; j++ {
			if j == i {
				continue
			}
			xj := j + 1
			var negXj, term curve.F
			negXj.SetUint64(xj)
			negXj.Neg(&negXj)
			num.Mul(&num, &negXj)

			var xiF, xjF curve.F
			xiF.SetUint64(xi)
			xjF.SetUint64(xj)
			term.Sub(&xiF, &xjF)
			den.Mul(&den, &term)
		}
		var denInv, coeff curve.F
		denInv.Inverse(&den)
		coeff.Mul(&num, &denInv)

		var term curve.F
		term.Mul(&coeff, &shares[i])
		recovered.Add(&recovered, &term)
	}

	if !recovered.Equal(&secret) {
		t.Fatalf("reconstructed secret = %v, want %v", recovered, secret)
	}
}

func TestShamirTriplesDeterministic(t *testing.T) {
	const n = 3
	const count = 2

	allTriples := make([][]Triple, n+1)
	for id := uint64(1); id <= n; id++ {
		triples, err := ShamirTriples(testSeed, n, party.ID(id), count)
		if err != nil {
			t.Fatalf("ShamirTriples(party %d): %v", id, err)
		}
		allTriples[id] = triples
	}

	// Reconstruct via direct summation is not valid for Shamir shares in
	// general, but at x=1..n with an (n,n) threshold the shares are exactly
	// the n distinct evaluations of the secret-bearing polynomials; what we
	// can check without full Lagrange interpolation is that every party
	// deterministically derives the same shares seed-to-seed.
	again, err := ShamirTriples(testSeed, n, party.ID(1), count)
	if err != nil {
		t.Fatalf("ShamirTriples rerun: %v", err)
	}
	for i := range again {
		if !again[i].A.Equal(&allTriples[1][i].A) {
			t.Fatalf("triple %d not deterministic for party 1", i)
		}
	}
}
