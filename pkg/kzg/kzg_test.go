package kzg

import (
	"testing"

	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/polynomial"
)

func TestCommitIsAdditive(t *testing.T) {
	var tau curve.F
	tau.SetUint64(7)
	pp := Setup(tau, 4)

	var one, two curve.F
	one.SetUint64(1)
	two.SetUint64(2)
	p := polynomial.Poly{one, two}
	q := polynomial.Poly{two, one}

	cp, err := CommitG1(pp, p)
	if err != nil {
		t.Fatalf("CommitG1(p): %v", err)
	}
	cq, err := CommitG1(pp, q)
	if err != nil {
		t.Fatalf("CommitG1(q): %v", err)
	}

	var three curve.F
	three.SetUint64(3)
	sum := polynomial.Poly{three, three}
	cSum, err := CommitG1(pp, sum)
	if err != nil {
		t.Fatalf("CommitG1(sum): %v", err)
	}

	if !curve.AddG1(cp, cq).Equal(&cSum) {
		t.Fatal("commitment is not additive over polynomial addition")
	}
}

func TestCommitDegreeTooHigh(t *testing.T) {
	var tau curve.F
	tau.SetUint64(7)
	pp := Setup(tau, 1)

	p := make(polynomial.Poly, 5)
	if _, err := CommitG1(pp, p); err == nil {
		t.Fatal("expected error for polynomial exceeding setup degree")
	}
}
