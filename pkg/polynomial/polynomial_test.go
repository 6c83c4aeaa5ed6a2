package polynomial

import (
	"testing"

	"github.com/luxfi/mpcshare/pkg/curve"
)

func fromUint64(v uint64) curve.F {
	var f curve.F
	f.SetUint64(v)
	return f
}

func TestSubgroupGeneratorOrder(t *testing.T) {
	const n = 64
	gen, err := SubgroupGenerator(n)
	if err != nil {
		t.Fatalf("SubgroupGenerator: %v", err)
	}

	pow := ComputePower(gen, n)
	one := fromUint64(1)
	if !pow.Equal(&one) {
		t.Fatalf("gen^%d != 1", n)
	}

	powNMinus1 := ComputePower(gen, n-1)
	if powNMinus1.Equal(&one) {
		t.Fatalf("gen^%d should not be 1", n-1)
	}
}

func TestInterpolateEvaluateRoundTrip(t *testing.T) {
	const n = 8
	evals := make([]curve.F, n)
	for i := range evals {
		evals[i] = fromUint64(uint64(i + 1))
	}

	poly, err := InterpolateOverSubgroup(evals)
	if err != nil {
		t.Fatalf("InterpolateOverSubgroup: %v", err)
	}

	back, err := EvaluateOverSubgroup(poly, n)
	if err != nil {
		t.Fatalf("EvaluateOverSubgroup: %v", err)
	}

	for i := range evals {
		if !back[i].Equal(&evals[i]) {
			t.Fatalf("round trip mismatch at %d: got %v, want %v", i, back[i], evals[i])
		}
	}
}

func TestLagrangeBasisIsIndicator(t *testing.T) {
	const n = 8
	basis, err := LagrangeBasis(3, n)
	if err != nil {
		t.Fatalf("LagrangeBasis: %v", err)
	}

	evals, err := EvaluateOverSubgroup(basis, n)
	if err != nil {
		t.Fatalf("EvaluateOverSubgroup: %v", err)
	}

	one := fromUint64(1)
	zero := fromUint64(0)
	for i, e := range evals {
		if i == 3 {
			if !e.Equal(&one) {
				t.Fatalf("basis[3] at its own index = %v, want 1", e)
			}
		} else if !e.Equal(&zero) {
			t.Fatalf("basis[3] at index %d = %v, want 0", i, e)
		}
	}
}

func TestVanishingPolyZeroOnSubgroup(t *testing.T) {
	const n = 8
	gen, err := SubgroupGenerator(n)
	if err != nil {
		t.Fatalf("SubgroupGenerator: %v", err)
	}
	vp := VanishingPoly(n)

	x := fromUint64(1)
	for i := 0; i < n; i++ {
		v := vp.Eval(x)
		zero := fromUint64(0)
		if !v.Equal(&zero) {
			t.Fatalf("vanishing poly nonzero at subgroup element %d: %v", i, v)
		}
		x.Mul(&x, &gen)
	}
}

func TestDivByLinearFactor(t *testing.T) {
	// p(X) = X^2 - 1 = (X-1)(X+1)
	negOne := fromUint64(0)
	one := fromUint64(1)
	negOne.Sub(&negOne, &one)

	p := Poly{negOne, fromUint64(0), fromUint64(1)}
	q := DivByLinearFactor(p, one)
	if len(q) != 2 {
		t.Fatalf("expected quotient of degree 1, got len %d", len(q))
	}
	// q(X) should be X + 1
	if !q[0].Equal(&one) {
		t.Fatalf("quotient constant term = %v, want 1", q[0])
	}
	if !q[1].Equal(&one) {
		t.Fatalf("quotient leading term = %v, want 1", q[1])
	}
}
