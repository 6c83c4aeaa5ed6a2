// Package nettest provides an in-memory MessagingSystem for driving
// protocols/sharedeval.Evaluator instances in tests and local simulations,
// without any real network transport.
package nettest

import (
	"context"
	"fmt"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/sync/errgroup"

	"github.com/luxfi/mpcshare/pkg/party"
	"github.com/luxfi/mpcshare/protocols/sharedeval"
)

// envelope is the wire format exchanged between simulated parties. Values
// are already base58-encoded strings by the time they reach the network, so
// the envelope only needs to carry routing metadata plus the opaque payload.
type envelope struct {
	From  party.ID
	Value string
}

// Network simulates n parties exchanging messages over in-process channels,
// keyed by handle string. Every SendToAll fans a batch of (handle, value)
// pairs out to every other party's inbox; every RecvFromAll blocks until it
// has collected a contribution from each of the other n-1 parties for that
// handle.
type Network struct {
	n uint64

	mu      sync.Mutex
	inboxes map[party.ID]map[string][]envelope
	waiters map[party.ID]map[string]chan struct{}
}

// New returns a Network wired for n parties, IDs 1..n.
func New(n uint64) *Network {
	net := &Network{
		n:       n,
		inboxes: make(map[party.ID]map[string][]envelope),
		waiters: make(map[party.ID]map[string]chan struct{}),
	}
	for _, id := range party.Range(n) {
		net.inboxes[id] = make(map[string][]envelope)
		net.waiters[id] = make(map[string]chan struct{})
	}
	return net
}

// Endpoint returns the MessagingSystem view of the network for party id.
func (net *Network) Endpoint(id party.ID) *Endpoint {
	return &Endpoint{net: net, id: id}
}

func (net *Network) deliver(to party.ID, from party.ID, handle, value string) {
	net.mu.Lock()
	defer net.mu.Unlock()
	net.inboxes[to][handle] = append(net.inboxes[to][handle], envelope{From: from, Value: value})
	if ch, ok := net.waiters[to][handle]; ok && len(net.inboxes[to][handle]) == int(net.n)-1 {
		close(ch)
		delete(net.waiters[to], handle)
	}
}

// waitAndTake registers id as waiting on handle if fewer than n-1
// contributions have arrived yet, returning the wait channel to block on;
// otherwise it returns nil, meaning the messages are already all present.
func (net *Network) waitAndTake(id party.ID, handle string) (chan struct{}, []envelope) {
	net.mu.Lock()
	defer net.mu.Unlock()
	if len(net.inboxes[id][handle]) >= int(net.n)-1 {
		msgs := net.inboxes[id][handle]
		delete(net.inboxes[id], handle)
		return nil, msgs
	}
	ch, ok := net.waiters[id][handle]
	if !ok {
		ch = make(chan struct{})
		net.waiters[id][handle] = ch
	}
	return ch, nil
}

func (net *Network) take(id party.ID, handle string) []envelope {
	net.mu.Lock()
	defer net.mu.Unlock()
	msgs := net.inboxes[id][handle]
	delete(net.inboxes[id], handle)
	return msgs
}

// Endpoint is one party's handle onto a shared Network. It implements
// sharedeval.MessagingSystem.
type Endpoint struct {
	net *Network
	id  party.ID
}

// GetMyID returns this endpoint's party id.
func (ep *Endpoint) GetMyID() party.ID { return ep.id }

// N returns the number of parties in the network.
func (ep *Endpoint) N() uint64 { return ep.net.n }

// SendToAll broadcasts aligned (handle, value) pairs to every other party,
// concurrently, stopping at the first delivery failure.
func (ep *Endpoint) SendToAll(ctx context.Context, handles, values []string) error {
	if len(handles) != len(values) {
		return fmt.Errorf("nettest: send to all: %d handles, %d values", len(handles), len(values))
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, peer := range party.Range(ep.net.n) {
		if peer == ep.id {
			continue
		}
		peer := peer
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i, h := range handles {
				payload, err := cbor.Marshal(values[i])
				if err != nil {
					return fmt.Errorf("nettest: encode envelope: %w", err)
				}
				var decoded string
				if err := cbor.Unmarshal(payload, &decoded); err != nil {
					return fmt.Errorf("nettest: decode envelope: %w", err)
				}
				ep.net.deliver(peer, ep.id, h, decoded)
			}
			return nil
		})
	}
	return g.Wait()
}

// RecvFromAll blocks until every other party has contributed under handle,
// then returns their contributions.
func (ep *Endpoint) RecvFromAll(ctx context.Context, handle string) ([]sharedeval.Contribution, error) {
	if ep.net.n <= 1 {
		return nil, nil
	}

	ch, msgs := ep.net.waitAndTake(ep.id, handle)
	if ch != nil {
		select {
		case <-ch:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		msgs = ep.net.take(ep.id, handle)
	}

	out := make([]sharedeval.Contribution, len(msgs))
	for i, m := range msgs {
		out[i] = sharedeval.Contribution{SenderID: m.From, Value: m.Value}
	}
	return out, nil
}
