// Package curve supplies the scalar field and group arithmetic the evaluator
// is built over. Exactly one of two pairing-friendly curves backs the build:
// BLS12-381 (the default) or BLS12-377, selected with the "bls12377" build
// tag. The two curve_*.go files are mutually exclusive build-tag pairs, so
// exactly one set of definitions for F, G1, G2, and Gt exists in any given
// build — there is no runtime curve switch.
//
// Gt is wrapped in additive notation: Add composes pairing outputs by
// multiplying them, ZeroGt is the multiplicative identity, and Scale raises to
// a scalar power. This mirrors how the rest of the evaluator treats F, G1,
// and G2 as additive groups, so reconstruction code is curve-group agnostic.
package curve
