// Package wire defines wire handles, the evaluator's addressing scheme for
// shared values, and the table that backs them.
//
// A handle is the base58 encoding of the big-endian bytes of a monotonic
// per-kind counter. Handles are never reused: a gate's output handle is
// always strictly newer, under the counter's ordering, than every handle it
// was computed from. This lets Table catch use-before-produce bugs by
// construction rather than by tracking a dependency graph.
package wire

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/mr-tron/base58"
)

// Kind labels a Counter. A handle encodes only the counter value, not the
// kind, so counters of different kinds produce the same handle sequence.
// The evaluator allocates every handle it stores (gate outputs, Beaver-triple
// shares, random sharings) from a single KindGate counter.
type Kind int

const (
	// KindGate counts handles produced by arithmetic gates (add, mult, ...).
	KindGate Kind = iota
	// KindBeaver counts Beaver triples consumed by Mult/BatchMult.
	KindBeaver
	// KindRand counts random sharings consumed by Ran/BatchRan64.
	KindRand
)

// Handle is an opaque, base58-encoded reference to a shared value.
type Handle string

// Counter is a monotonic, per-kind allocator of handles. It is not safe for
// concurrent use; the evaluator that owns it is single-goroutine by design.
type Counter struct {
	kind Kind
	next uint64
}

// NewCounter returns a counter of the given kind starting at zero.
func NewCounter(kind Kind) *Counter {
	return &Counter{kind: kind}
}

// Next allocates and returns the next handle in sequence.
func (c *Counter) Next() Handle {
	n := new(saferith.Nat).SetUint64(c.next)
	c.next++
	return Handle(base58.Encode(n.Bytes()))
}

// Peek returns how many handles this counter has allocated so far.
func (c *Counter) Peek() uint64 {
	return c.next
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindGate:
		return "gate"
	case KindBeaver:
		return "beaver"
	case KindRand:
		return "rand"
	default:
		return fmt.Sprintf("wire.Kind(%d)", int(k))
	}
}
