// Package preprocessing generates the Beaver triples and random sharings
// the evaluator consumes during Mult, BatchMult, and Ran. Two schemes are
// provided: Additive, the default trial-division scheme for Beaver triples
// that every party runs independently from a shared seed, and Shamir, an
// (n,n)-threshold variant. The evaluator uses ShamirRandSharings for its
// random sharings; ShamirTriples is kept for reference and is not used by
// the evaluator. Neither scheme is verified:
// a party that deviates from it is undetectable, matching the evaluator's
// semi-honest threat model.
package preprocessing

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"

	"github.com/luxfi/mpcshare/pkg/curve"
)

// seededStream is a deterministic byte stream keyed by a 32-byte seed,
// standing in for the ChaCha8 stream the original implementation seeds its
// preprocessing RNG from. golang.org/x/crypto only ships the 20-round
// cipher; since nothing here depends on cross-implementation bit-for-bit
// reproducibility (preprocessing is unverified and entirely local to each
// party), the 20-round variant is used in its place, keyed the same way.
type seededStream struct {
	cipher *chacha20.Cipher
}

// newSeededStream returns a stream deterministically derived from seed.
func newSeededStream(seed [32]byte) *seededStream {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// chacha20.NewUnauthenticatedCipher only fails on malformed key/nonce
		// lengths, which are both fixed-size arrays here.
		panic("preprocessing: chacha20 key/nonce size invariant violated: " + err.Error())
	}
	return &seededStream{cipher: c}
}

// nextBytes fills and returns a freshly zeroed buffer of n bytes of
// keystream.
func (s *seededStream) nextBytes(n int) []byte {
	buf := make([]byte, n)
	s.cipher.XORKeyStream(buf, buf)
	return buf
}

// nextF draws one scalar field element from the stream. Reducing 32 raw
// bytes modulo the field modulus is not perfectly uniform, but the bias is
// negligible and, per the package doc, preprocessing here is not a
// security boundary.
func (s *seededStream) nextF() curve.F {
	var f curve.F
	f.SetBytes(s.nextBytes(fr32))
	return f
}

// fr32 is the byte width used when drawing a field element off the stream.
const fr32 = 32

// nextUint64 draws a little-endian uint64 off the stream. Neither scheme in
// this package calls it.
func (s *seededStream) nextUint64() uint64 {
	return binary.LittleEndian.Uint64(s.nextBytes(8))
}
