// Package addressbook maps network peer identities onto the party.ID space
// the evaluator addresses parties by. A peer is identified by the base58
// encoding of its ed25519 public key; node IDs are the dense 1..n indices
// the evaluator and its preprocessing layer actually compute over.
package addressbook

import (
	"encoding/json"
	"fmt"

	"github.com/luxfi/mpcshare/pkg/party"
)

// PeerID is the base58 encoding of a party's ed25519 public key.
type PeerID string

// Peer is one entry of a Book: a peer's network identity and its evaluator
// node ID.
type Peer struct {
	PeerID PeerID   `json:"peer_id"`
	NodeID party.ID `json:"node_id"`
}

// String renders a Peer the way the original implementation does: node ID
// first, since that's what evaluator code actually keys on.
func (p Peer) String() string {
	return fmt.Sprintf("(%d, %s)", p.NodeID, p.PeerID)
}

// Book maps peer IDs to their Peer record. The node ID space is not assumed
// to be contiguous or ordered by insertion; NodeIDs returns the sorted view
// when one is needed.
type Book map[PeerID]Peer

// New returns an empty address book.
func New() Book {
	return make(Book)
}

// Add registers peerID under nodeID, overwriting any prior entry for the
// same peer.
func (b Book) Add(peerID PeerID, nodeID party.ID) {
	b[peerID] = Peer{PeerID: peerID, NodeID: nodeID}
}

// NodeIDFromPeerID returns the node ID registered for peerID, if any.
func NodeIDFromPeerID(book Book, peerID PeerID) (party.ID, bool) {
	p, ok := book[peerID]
	if !ok {
		return 0, false
	}
	return p.NodeID, true
}

// PeerIDFromNodeID does the reverse lookup of NodeIDFromPeerID. It is O(n)
// in the size of the book since Book is keyed by peer ID, not node ID; the
// evaluator calls it only during setup, never per-gate.
func PeerIDFromNodeID(book Book, nodeID party.ID) (PeerID, bool) {
	for _, p := range book {
		if p.NodeID == nodeID {
			return p.PeerID, true
		}
	}
	return "", false
}

// NodeIDs returns the book's node IDs in sorted order.
func NodeIDs(book Book) party.IDSlice {
	out := make(party.IDSlice, 0, len(book))
	for _, p := range book {
		out = append(out, p.NodeID)
	}
	return out.Sorted()
}

// MarshalJSON encodes a Book as a JSON list of Peer entries rather than as
// an object keyed by peer ID; Load parses that list back into a Book. The
// order of the entries follows map iteration order and is not fixed.
func (b Book) MarshalJSON() ([]byte, error) {
	peers := make([]Peer, 0, len(b))
	for _, p := range b {
		peers = append(peers, p)
	}
	return json.Marshal(peers)
}

// Load parses a JSON array of Peer entries into a Book.
func Load(data []byte) (Book, error) {
	var peers []Peer
	if err := json.Unmarshal(data, &peers); err != nil {
		return nil, fmt.Errorf("addressbook: load: %w", err)
	}
	book := New()
	for _, p := range peers {
		book.Add(p.PeerID, p.NodeID)
	}
	return book, nil
}
