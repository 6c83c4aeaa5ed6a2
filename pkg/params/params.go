// Package params pins the numeric constants that size the evaluator's
// preprocessing pools and the share-polynomial domain.
package params

const (
	// PermSize is the degree bound used by share-polynomial operations; the
	// shuffle/permutation layer built on top of the evaluator works over
	// permutations of this size.
	PermSize = 64

	// LogPermSize is log2(PermSize), the number of batch_mult rounds BatchExp
	// needs to raise a share to the PermSize-th power.
	LogPermSize = 6

	// DeckSize is carried over from the game this evaluator backs; unused by
	// the evaluator itself but retained since the original preprocessing
	// sizing assumes it.
	DeckSize = 52

	// NumSamples bounds the batch size of the permutation-proof sampling
	// layer built on top of this evaluator (out of scope here).
	NumSamples = 420

	// NumBeaverTriples is how many Beaver triples preprocessing produces per
	// party; Evaluator.Mult/BatchMult consume them in order.
	NumBeaverTriples = 3466

	// NumRandSharings is how many random sharings preprocessing produces per
	// party; Evaluator.Ran consumes them in order.
	NumRandSharings = 987
)

// Chunk thresholds for batched reconstruction: above these sizes, a batch
// send is split into multiple send_to_all calls. Purely a throughput knob —
// reconstruction semantics do not depend on it.
const (
	ChunkSizeF  = 256
	ChunkSizeG1 = 256
	ChunkSizeG2 = 256
	ChunkSizeGt = 64
)

// PreprocessSeedAdditive seeds the deterministic ChaCha20 stream used by the
// default additive (trial-division) Beaver-triple generator. Random sharings
// are seeded by PreprocessSeedShamir instead. This is a demo/test seed;
// production deployments must replace it with a properly generated one.
var PreprocessSeedAdditive = [32]byte{
	42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42,
	42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42,
}

// PreprocessSeedShamir seeds the Shamir-sharing preprocessing scheme: the
// sole generator for random sharings, and a documented-but-unused
// alternate generator for Beaver triples (see ShamirTriples). Also a
// demo/test seed.
var PreprocessSeedShamir = [32]byte{
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
}
