// Package polynomial provides the dense-polynomial algebra share_poly_eval
// and share_poly_mult are built on: evaluation over a power-of-two
// multiplicative subgroup, Lagrange interpolation via FFT, the vanishing
// polynomial of a subgroup, and the field square-root/exponentiation
// helpers the KZG evaluation proof needs.
package polynomial

import (
	"fmt"
	"math/big"

	"github.com/luxfi/mpcshare/pkg/curve"
)

// Poly is a dense polynomial, coefficients in ascending degree order:
// Poly[i] is the coefficient of X^i.
type Poly []curve.F

// Degree returns the polynomial's degree. The zero polynomial has degree 0,
// matching the convention the original implementation's DensePolynomial
// uses for a single-coefficient vector.
func (p Poly) Degree() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Eval evaluates p at x by Horner's method.
func (p Poly) Eval(x curve.F) curve.F {
	var acc curve.F
	for i := len(p) - 1; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &p[i])
	}
	return acc
}

// isPowerOfTwo reports whether n is a power of two (and nonzero).
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// SubgroupGenerator returns a generator of the multiplicative subgroup of F
// of order n. n must be a power of two.
func SubgroupGenerator(n uint64) (curve.F, error) {
	if !isPowerOfTwo(int(n)) {
		return curve.F{}, fmt.Errorf("polynomial: subgroup size %d is not a power of 2", n)
	}
	return curve.NewDomain(n).Generator(), nil
}

// InterpolateOverSubgroup returns the unique polynomial of degree < len(v)
// whose evaluations over the multiplicative subgroup of order len(v) are v.
// len(v) must be a power of two.
func InterpolateOverSubgroup(v []curve.F) (Poly, error) {
	n := len(v)
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("polynomial: interpolation domain size %d is not a power of 2", n)
	}
	coeffs := make([]curve.F, n)
	copy(coeffs, v)
	curve.NewDomain(uint64(n)).FFTInverse(coeffs)
	return Poly(coeffs), nil
}

// EvaluateOverSubgroup evaluates p's coefficients (zero-padded to n) at
// every point of the multiplicative subgroup of order n, n a power of two.
func EvaluateOverSubgroup(p Poly, n uint64) (Poly, error) {
	if !isPowerOfTwo(int(n)) {
		return nil, fmt.Errorf("polynomial: evaluation domain size %d is not a power of 2", n)
	}
	evals := make([]curve.F, n)
	copy(evals, p)
	curve.NewDomain(n).FFT(evals)
	return Poly(evals), nil
}

// LagrangeBasis returns the i-th Lagrange basis polynomial over the
// multiplicative subgroup of order n: the unique degree-(n-1) polynomial
// that is 1 at the i-th subgroup element and 0 at every other.
func LagrangeBasis(i, n uint64) (Poly, error) {
	if i >= n {
		return nil, fmt.Errorf("polynomial: lagrange basis index %d out of range for domain size %d", i, n)
	}
	evals := make([]curve.F, n)
	evals[i].SetOne()
	return InterpolateOverSubgroup(evals)
}

// VanishingPoly returns t(X) = X^n - 1, the polynomial that is zero at
// every element of the multiplicative subgroup of order n.
func VanishingPoly(n uint64) Poly {
	coeffs := make([]curve.F, n+1)
	coeffs[0].SetOne()
	coeffs[0].Neg(&coeffs[0])
	coeffs[n].SetOne()
	return Poly(coeffs)
}

// ComputeRoot returns a square root of x and true, or false when x is not
// a quadratic residue. It does not panic.
func ComputeRoot(x curve.F) (curve.F, bool) {
	var out curve.F
	r := out.Sqrt(&x)
	return out, r != nil
}

// ComputePower returns x^n.
func ComputePower(x curve.F, n uint64) curve.F {
	var out curve.F
	out.Exp(x, new(big.Int).SetUint64(n))
	return out
}

// DivByLinearFactor divides p by (X - z), returning the quotient q such
// that p(X) = q(X)*(X - z) + p(z). Used by the KZG evaluation proof: the
// remainder is discarded since the caller already knows p(z) and only wants
// the commitment to q.
func DivByLinearFactor(p Poly, z curve.F) Poly {
	n := len(p)
	if n == 0 {
		return Poly{}
	}
	q := make([]curve.F, n-1)
	var remainder curve.F
	remainder = p[n-1]
	for i := n - 2; i >= 0; i-- {
		q[i] = remainder
		var term curve.F
		term.Mul(&remainder, &z)
		remainder.Add(&p[i], &term)
	}
	return Poly(q)
}

// DomainDivByGenerator returns a new polynomial g such that g(X) = f(X/ω):
// every coefficient above the constant term is divided by the matching
// power of ω. Used to shift a share polynomial's evaluation domain by one
// subgroup step without re-interpolating.
func DomainDivByGenerator(f Poly, omega curve.F) Poly {
	out := make(Poly, len(f))
	copy(out, f)
	var omegaPow curve.F
	omegaPow = omega
	for i := 1; i < len(out); i++ {
		var inv curve.F
		inv.Inverse(&omegaPow)
		out[i].Mul(&out[i], &inv)
		omegaPow.Mul(&omegaPow, &omega)
	}
	return out
}
