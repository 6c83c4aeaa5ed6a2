package addressbook

import "testing"

func TestAddAndLookup(t *testing.T) {
	book := New()
	book.Add("peer-A", 1)
	book.Add("peer-B", 2)

	nodeID, ok := NodeIDFromPeerID(book, "peer-A")
	if !ok || nodeID != 1 {
		t.Fatalf("NodeIDFromPeerID(peer-A) = (%d, %v), want (1, true)", nodeID, ok)
	}

	peerID, ok := PeerIDFromNodeID(book, 2)
	if !ok || peerID != "peer-B" {
		t.Fatalf("PeerIDFromNodeID(2) = (%q, %v), want (peer-B, true)", peerID, ok)
	}

	if _, ok := NodeIDFromPeerID(book, "peer-C"); ok {
		t.Fatal("expected lookup of unknown peer to fail")
	}
}

func TestNodeIDsSorted(t *testing.T) {
	book := New()
	book.Add("c", 3)
	book.Add("a", 1)
	book.Add("b", 2)

	ids := NodeIDs(book)
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Fatalf("NodeIDs not sorted: %v", ids)
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	book := New()
	book.Add("peer-A", 1)
	book.Add("peer-B", 2)

	data, err := book.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	loaded, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != len(book) {
		t.Fatalf("round trip changed size: got %d, want %d", len(loaded), len(book))
	}
	nodeID, ok := NodeIDFromPeerID(loaded, "peer-A")
	if !ok || nodeID != 1 {
		t.Fatalf("round trip lost peer-A: (%d, %v)", nodeID, ok)
	}
}
