package sharedeval

import (
	"context"
	"fmt"

	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/params"
	"github.com/luxfi/mpcshare/pkg/party"
	"github.com/luxfi/mpcshare/pkg/preprocessing"
	"github.com/luxfi/mpcshare/pkg/wire"
)

// Evaluator holds everything one party needs to drive the shared circuit:
// the messaging adapter, preprocessed Beaver triples and random sharings,
// the wire table, and the gate/beaver/rand counters. It is not safe for
// concurrent gate calls — only the reconstruction primitives suspend, and
// those must still be called from a single owning goroutine per the
// messaging adapter's own concurrency contract.
type Evaluator struct {
	messaging MessagingSystem

	beaverTriples []preprocessing.Triple
	randSharings  []curve.F

	table       *wire.Table
	gateCounter *wire.Counter

	beaverCounter uint64
	randCounter   uint64
}

// Config controls how much preprocessed material New generates up front.
// Zero-value Config uses the protocol's standard sizing (pkg/params).
type Config struct {
	NumBeaverTriples int
	NumRandSharings  int

	// TripleSeed seeds the deterministic additive triple generator.
	// Defaults to params.PreprocessSeedAdditive.
	TripleSeed [32]byte
	// RandSeed seeds the deterministic Shamir random-sharing generator.
	// Defaults to params.PreprocessSeedShamir.
	RandSeed [32]byte
}

// defaulted fills in Config's zero fields with the protocol's standard
// preprocessing sizing and seeds.
func (c Config) defaulted() Config {
	if c.NumBeaverTriples == 0 {
		c.NumBeaverTriples = params.NumBeaverTriples
	}
	if c.NumRandSharings == 0 {
		c.NumRandSharings = params.NumRandSharings
	}
	var zeroSeed [32]byte
	if c.TripleSeed == zeroSeed {
		c.TripleSeed = params.PreprocessSeedAdditive
	}
	if c.RandSeed == zeroSeed {
		c.RandSeed = params.PreprocessSeedShamir
	}
	return c
}

// New runs preprocessing and returns a ready-to-use Evaluator. Preprocessing
// is purely local — it does not touch the messaging adapter. ctx is checked
// once, before preprocessing starts; a cancellation during the run is not
// observed.
func New(ctx context.Context, messaging MessagingSystem, cfg Config) (*Evaluator, error) {
	cfg = cfg.defaulted()

	n := messaging.N()
	myID := messaging.GetMyID()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sharedeval: new: %w", err)
	}

	triples, err := preprocessing.AdditiveTriples(cfg.TripleSeed, n, myID, cfg.NumBeaverTriples)
	if err != nil {
		return nil, fmt.Errorf("sharedeval: new: generating beaver triples: %w", err)
	}
	rands, err := preprocessing.ShamirRandSharings(cfg.RandSeed, n, myID, cfg.NumRandSharings)
	if err != nil {
		return nil, fmt.Errorf("sharedeval: new: generating random sharings: %w", err)
	}

	return &Evaluator{
		messaging:     messaging,
		beaverTriples: triples,
		randSharings:  rands,
		table:         wire.NewTable(),
		gateCounter:   wire.NewCounter(wire.KindGate),
	}, nil
}

// freshHandle allocates the next gate-output handle.
func (e *Evaluator) freshHandle() wire.Handle {
	return e.gateCounter.Next()
}

// getF returns the F share stored at h. Like the wire table it wraps, a
// missing handle is a programmer error and panics rather than returning an
// error.
func (e *Evaluator) getF(h wire.Handle) curve.F {
	return e.table.Get(h).(curve.F)
}

func (e *Evaluator) putF(h wire.Handle, v curve.F) {
	e.table.Put(h, v)
}

// Add returns a handle to the sum of x and y: a purely local gate.
func (e *Evaluator) Add(x, y wire.Handle) wire.Handle {
	var sum curve.F
	xv, yv := e.getF(x), e.getF(y)
	sum.Add(&xv, &yv)
	h := e.freshHandle()
	e.putF(h, sum)
	return h
}

// Sub returns a handle to x - y.
func (e *Evaluator) Sub(x, y wire.Handle) wire.Handle {
	var diff curve.F
	xv, yv := e.getF(x), e.getF(y)
	diff.Sub(&xv, &yv)
	h := e.freshHandle()
	e.putF(h, diff)
	return h
}

// Scale returns a handle to k*x, k a public scalar known to every party.
func (e *Evaluator) Scale(x wire.Handle, k curve.F) wire.Handle {
	var out curve.F
	xv := e.getF(x)
	out.Mul(&xv, &k)
	h := e.freshHandle()
	e.putF(h, out)
	return h
}

// FixedWire injects a public constant v into the shared state: party 1
// stores v, every other party stores 0. Opening the result yields v.
func (e *Evaluator) FixedWire(v curve.F) wire.Handle {
	h := e.freshHandle()
	if party.IsConstantAdder(e.messaging.GetMyID()) {
		e.putF(h, v)
	} else {
		var zero curve.F
		e.putF(h, zero)
	}
	return h
}

// ClearAdd adds the public constant v to the shared value at x: party 1
// stores get(x)+v, every other party stores get(x) unchanged.
func (e *Evaluator) ClearAdd(x wire.Handle, v curve.F) wire.Handle {
	xv := e.getF(x)
	h := e.freshHandle()
	if party.IsConstantAdder(e.messaging.GetMyID()) {
		var sum curve.F
		sum.Add(&xv, &v)
		e.putF(h, sum)
	} else {
		e.putF(h, xv)
	}
	return h
}

// Ran consumes the next preprocessed random sharing, returning a handle to
// it. The parties' shares sum to a pseudorandom value in F. Every party
// derives all shares from the same seed (see
// preprocessing.ShamirRandSharings), so the value is not hidden from a
// party that holds the seed.
func (e *Evaluator) Ran() (wire.Handle, error) {
	if e.randCounter >= uint64(len(e.randSharings)) {
		return "", fmt.Errorf("sharedeval: ran: %w", ErrCounterExhausted)
	}
	r := e.randSharings[e.randCounter]
	e.randCounter++
	h := e.freshHandle()
	e.putF(h, r)
	return h, nil
}

// nextBeaverTriple consumes and returns the next preprocessed triple.
func (e *Evaluator) nextBeaverTriple() (preprocessing.Triple, error) {
	if e.beaverCounter >= uint64(len(e.beaverTriples)) {
		return preprocessing.Triple{}, fmt.Errorf("sharedeval: %w", ErrCounterExhausted)
	}
	t := e.beaverTriples[e.beaverCounter]
	e.beaverCounter++
	return t, nil
}

// N is the number of parties in the session.
func (e *Evaluator) N() uint64 { return e.messaging.N() }

// MyID is this party's id.
func (e *Evaluator) MyID() party.ID { return e.messaging.GetMyID() }
