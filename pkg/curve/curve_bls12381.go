//go:build !bls12377

package curve

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// domainTag is the hash-to-curve domain separation tag, mirroring the
// original implementation's per-curve DOMAIN_STRING_HASH_ID.
const domainTag = "SUPRA_POKER_ID-hashtoG1-with-BLS12381G1_XMD:SHA-256_SSWU_RO"

// Name identifies the curve variant compiled into this build.
const Name = "bls12-381"

// F is a scalar field element.
type F = fr.Element

// G1 is an affine point on the curve's G1 subgroup.
type G1 = bls12381.G1Affine

// G2 is an affine point on the curve's G2 subgroup.
type G2 = bls12381.G2Affine

// Gt wraps a target-group element in additive notation.
type Gt struct {
	inner bls12381.GT
}

// ZeroGt is the additive identity of Gt (the multiplicative identity of GT).
func ZeroGt() Gt {
	g := Gt{}
	g.inner.SetOne()
	return g
}

// Add returns g + h, i.e. the product of the underlying GT elements.
func (g Gt) Add(h Gt) Gt {
	var out Gt
	out.inner.Mul(&g.inner, &h.inner)
	return out
}

// Neg returns -g, i.e. the inverse of the underlying GT element.
func (g Gt) Neg() Gt {
	var out Gt
	out.inner.Inverse(&g.inner)
	return out
}

// Scale returns g scaled by s, i.e. the underlying GT element raised to s.
func (g Gt) Scale(s *big.Int) Gt {
	var out Gt
	out.inner.Exp(g.inner, s)
	return out
}

// Equal reports whether g and h represent the same element.
func (g Gt) Equal(h Gt) bool {
	return g.inner.Equal(&h.inner)
}

// IsZero reports whether g is the additive identity.
func (g Gt) IsZero() bool {
	return g.inner.IsOne()
}

// Bytes returns the canonical (uncompressed) serialization of g.
func (g Gt) Bytes() []byte {
	b := g.inner.Bytes()
	return b[:]
}

// GtFromBytes parses the canonical serialization produced by Bytes.
func GtFromBytes(b []byte) (Gt, error) {
	var out Gt
	var arr [bls12381.SizeOfGT]byte
	copy(arr[:], b)
	if err := out.inner.SetBytes(arr[:]); err != nil {
		return Gt{}, err
	}
	return out, nil
}

// Generator1 returns the canonical G1 generator.
func Generator1() G1 {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

// Generator2 returns the canonical G2 generator.
func Generator2() G2 {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

// ScalarMulG1 returns p scaled by s.
func ScalarMulG1(p G1, s *big.Int) G1 {
	var jac bls12381.G1Jac
	jac.FromAffine(&p)
	jac.ScalarMultiplication(&jac, s)
	var out G1
	out.FromJacobian(&jac)
	return out
}

// ScalarMulG2 returns p scaled by s.
func ScalarMulG2(p G2, s *big.Int) G2 {
	var jac bls12381.G2Jac
	jac.FromAffine(&p)
	jac.ScalarMultiplication(&jac, s)
	var out G2
	out.FromJacobian(&jac)
	return out
}

// AddG1 returns a + b.
func AddG1(a, b G1) G1 {
	var aj bls12381.G1Jac
	aj.FromAffine(&a)
	var bj bls12381.G1Jac
	bj.FromAffine(&b)
	aj.AddAssign(&bj)
	var out G1
	out.FromJacobian(&aj)
	return out
}

// AddG2 returns a + b.
func AddG2(a, b G2) G2 {
	var aj bls12381.G2Jac
	aj.FromAffine(&a)
	var bj bls12381.G2Jac
	bj.FromAffine(&b)
	aj.AddAssign(&bj)
	var out G2
	out.FromJacobian(&aj)
	return out
}

// Pairing computes e(p, q) and wraps it in additive notation.
func Pairing(p G1, q G2) (Gt, error) {
	res, err := bls12381.Pair([]bls12381.G1Affine{p}, []bls12381.G2Affine{q})
	if err != nil {
		return Gt{}, err
	}
	return Gt{inner: res}, nil
}

// GeneratorGt returns e(Generator1(), Generator2()), the canonical Gt base
// used wherever IBE needs a public "g_T" to exponentiate.
func GeneratorGt() Gt {
	g, err := Pairing(Generator1(), Generator2())
	if err != nil {
		// Pairing only fails on malformed input points; the canonical
		// generators are never malformed.
		panic("curve: pairing of canonical generators failed: " + err.Error())
	}
	return g
}

// HashToG1 hashes msg to a G1 point under the curve's domain separation tag.
func HashToG1(msg []byte) (G1, error) {
	return bls12381.HashToG1(msg, []byte(domainTag))
}

// Domain is the multiplicative subgroup of F used as the evaluation domain
// for share polynomials: the n-th roots of unity for some power-of-two n.
type Domain struct {
	inner *fft.Domain
}

// NewDomain returns the domain of size n, n required to be a power of two.
func NewDomain(n uint64) Domain {
	return Domain{inner: fft.NewDomain(n)}
}

// Generator returns the domain's canonical n-th root of unity.
func (d Domain) Generator() F {
	return d.inner.Generator
}

// Size returns the domain's cardinality.
func (d Domain) Size() uint64 {
	return d.inner.Cardinality
}

// FFT evaluates the polynomial with coefficients a over the domain, in
// place, in coefficient-to-evaluation direction.
func (d Domain) FFT(a []F) {
	d.inner.FFT(a, fft.DIF)
	fft.BitReverse(a)
}

// FFTInverse interpolates evaluations a over the domain back to
// coefficients, in place.
func (d Domain) FFTInverse(a []F) {
	fft.BitReverse(a)
	d.inner.FFTInverse(a, fft.DIT)
}
