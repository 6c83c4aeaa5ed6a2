// Package encoding provides the canonical wire representation for scalars
// and group elements: base58 over each type's canonical byte serialization.
// Wire handles (see pkg/wire) use the same base58 alphabet, so a handle and
// an encoded field element are never visually ambiguous in logs.
package encoding

import (
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/luxfi/mpcshare/pkg/curve"
)

// EncodeF returns the base58 encoding of f's canonical serialization.
func EncodeF(f curve.F) string {
	b := f.Bytes()
	return base58.Encode(b[:])
}

// DecodeF parses the output of EncodeF.
func DecodeF(s string) (curve.F, error) {
	var out curve.F
	b, err := base58.Decode(s)
	if err != nil {
		return out, fmt.Errorf("encoding: decode F: %w", err)
	}
	out.SetBytes(b)
	return out, nil
}

// EncodeG1 returns the base58 encoding of p's canonical compressed form.
func EncodeG1(p curve.G1) string {
	b := p.Bytes()
	return base58.Encode(b[:])
}

// DecodeG1 parses the output of EncodeG1.
func DecodeG1(s string) (curve.G1, error) {
	var out curve.G1
	b, err := base58.Decode(s)
	if err != nil {
		return out, fmt.Errorf("encoding: decode G1: %w", err)
	}
	if _, err := out.SetBytes(b); err != nil {
		return out, fmt.Errorf("encoding: decode G1: %w", err)
	}
	return out, nil
}

// EncodeG2 returns the base58 encoding of p's canonical compressed form.
func EncodeG2(p curve.G2) string {
	b := p.Bytes()
	return base58.Encode(b[:])
}

// DecodeG2 parses the output of EncodeG2.
func DecodeG2(s string) (curve.G2, error) {
	var out curve.G2
	b, err := base58.Decode(s)
	if err != nil {
		return out, fmt.Errorf("encoding: decode G2: %w", err)
	}
	if _, err := out.SetBytes(b); err != nil {
		return out, fmt.Errorf("encoding: decode G2: %w", err)
	}
	return out, nil
}

// EncodeGt returns the base58 encoding of g's canonical serialization.
func EncodeGt(g curve.Gt) string {
	return base58.Encode(g.Bytes())
}

// DecodeGt parses the output of EncodeGt.
func DecodeGt(s string) (curve.Gt, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return curve.Gt{}, fmt.Errorf("encoding: decode Gt: %w", err)
	}
	g, err := curve.GtFromBytes(b)
	if err != nil {
		return curve.Gt{}, fmt.Errorf("encoding: decode Gt: %w", err)
	}
	return g, nil
}
