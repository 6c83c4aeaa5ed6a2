// Package sharedeval implements the secret-shared evaluator: the object
// that manages preprocessed randomness, maintains a wire table, offers the
// arithmetic gate API, drives reconstruction, and composes those into
// share-polynomial algebra, KZG evaluation proofs, and distributed IBE
// encryption. It is the cryptographic core of a larger mental-poker MPC
// engine; the shuffle/permutation layer built on top is out of scope here.
package sharedeval

import (
	"context"
	"errors"

	"github.com/luxfi/mpcshare/pkg/party"
)

// MessagingSystem is the peer-to-peer substrate Evaluator is built against.
// It is consumed, never implemented, by this package; internal/nettest
// supplies an in-memory reference implementation for tests and local
// simulation.
type MessagingSystem interface {
	// GetMyID returns this party's id, in [1, N()].
	GetMyID() party.ID

	// N returns the number of parties in the session.
	N() uint64

	// SendToAll broadcasts an aligned (handles, values) pair to every other
	// party. It is fire-and-forget from the evaluator's point of view: the
	// call returns once the local send is enqueued, not once delivered.
	SendToAll(ctx context.Context, handles []string, values []string) error

	// RecvFromAll blocks until every other party has contributed exactly
	// one value tagged with handle, then returns them as (sender id, value)
	// pairs. Order is not guaranteed to match send order across parties.
	RecvFromAll(ctx context.Context, handle string) ([]Contribution, error)
}

// Contribution is one party's tagged value in a RecvFromAll response.
type Contribution struct {
	SenderID party.ID
	Value    string
}

// Sentinel errors for the evaluator's fatal invariant violations. They are
// returned wrapped, never panicked; a caller treats any of them as fatal to
// the session. A missing wire-table handle is the one violation that panics
// instead (see wire.Table.Get).
var (
	// ErrCounterExhausted is returned when a gate needs a preprocessed
	// Beaver triple or random sharing and none remain.
	ErrCounterExhausted = errors.New("sharedeval: preprocessing counter exhausted")

	// ErrImprobableZero is returned by BatchRan64 when an opened A_i is
	// zero — a statistical fault the spec treats as fatal despite its
	// negligible probability.
	ErrImprobableZero = errors.New("sharedeval: batch_ran_64 observed a zero opening")

	// ErrMismatchedLengths is returned when aligned input slices to a
	// batched operation have different lengths.
	ErrMismatchedLengths = errors.New("sharedeval: mismatched batch lengths")

	// ErrNonPowerOfTwo names the error of an evaluation domain whose size is
	// not a power of two. The routines in pkg/polynomial report that case
	// with their own errors, which do not wrap ErrNonPowerOfTwo.
	ErrNonPowerOfTwo = errors.New("sharedeval: domain size is not a power of 2")
)
