// Package config assembles the long-term, serializable configuration one
// party needs to join a shared-evaluator session: its id, the address book
// of its peers, and the preprocessing sizing/seeds.
package config

import (
	"errors"
	"fmt"

	"github.com/luxfi/mpcshare/pkg/addressbook"
	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/params"
	"github.com/luxfi/mpcshare/pkg/party"
	"github.com/luxfi/mpcshare/protocols/sharedeval"
)

// Config is one party's view of a session: who it is, who its peers are,
// and how much preprocessed randomness to generate before evaluation
// starts.
type Config struct {
	// ID is this party's identifier.
	ID party.ID

	// N is the total number of parties in the session.
	N uint64

	// Peers is the address book mapping every party id to its network
	// identity. Nil for purely in-process simulation.
	Peers addressbook.Book

	// Curve names the curve variant this session expects, for a sanity
	// check against the build's compiled-in curve.Name.
	Curve string

	// NumBeaverTriples and NumRandSharings size the preprocessing pools;
	// zero uses the protocol's standard sizing (pkg/params).
	NumBeaverTriples int
	NumRandSharings  int

	// TripleSeed and RandSeed seed the deterministic preprocessing
	// generators; zero uses the protocol's standard demo seeds.
	TripleSeed [32]byte
	RandSeed   [32]byte
}

// Default returns a Config for an n-party session with standard
// preprocessing sizing and seeds, and no address book (suitable for
// in-process simulation via internal/nettest).
func Default(id party.ID, n uint64) *Config {
	return &Config{
		ID:    id,
		N:     n,
		Curve: curve.Name,
	}
}

// Validate checks that the config is well-formed and consistent with the
// build's compiled-in curve.
func (c *Config) Validate() error {
	if c.N == 0 {
		return errors.New("config: missing party count")
	}
	if c.ID < 1 || uint64(c.ID) > c.N {
		return fmt.Errorf("config: id %d out of range [1, %d]", c.ID, c.N)
	}
	if c.Curve != "" && c.Curve != curve.Name {
		return fmt.Errorf("config: configured curve %q does not match compiled-in curve %q", c.Curve, curve.Name)
	}
	if c.Peers != nil {
		if _, ok := addressbook.PeerIDFromNodeID(c.Peers, c.ID); !ok {
			return fmt.Errorf("config: address book has no peer entry for party %d", c.ID)
		}
		if nodeIDs := addressbook.NodeIDs(c.Peers); len(nodeIDs) != int(c.N) {
			return fmt.Errorf("config: address book has %d peers, want %d", len(nodeIDs), c.N)
		}
	}
	return nil
}

// EvaluatorConfig translates this session config into the sharedeval.Config
// New needs to seed preprocessing.
func (c *Config) EvaluatorConfig() sharedeval.Config {
	cfg := sharedeval.Config{
		NumBeaverTriples: c.NumBeaverTriples,
		NumRandSharings:  c.NumRandSharings,
		TripleSeed:       c.TripleSeed,
		RandSeed:         c.RandSeed,
	}
	if cfg.NumBeaverTriples == 0 {
		cfg.NumBeaverTriples = params.NumBeaverTriples
	}
	if cfg.NumRandSharings == 0 {
		cfg.NumRandSharings = params.NumRandSharings
	}
	return cfg
}

// Copy returns a deep copy of c.
func (c *Config) Copy() *Config {
	out := *c
	if c.Peers != nil {
		out.Peers = make(addressbook.Book, len(c.Peers))
		for k, v := range c.Peers {
			out.Peers[k] = v
		}
	}
	return &out
}
