package wire

import "testing"

func TestCounterMonotonic(t *testing.T) {
	c := NewCounter(KindGate)
	seen := make(map[Handle]bool)
	for i := 0; i < 1000; i++ {
		h := c.Next()
		if seen[h] {
			t.Fatalf("handle %q allocated twice at iteration %d", h, i)
		}
		seen[h] = true
	}
	if c.Peek() != 1000 {
		t.Fatalf("expected counter at 1000, got %d", c.Peek())
	}
}

func TestCounterKindString(t *testing.T) {
	cases := map[Kind]string{
		KindGate:   "gate",
		KindBeaver: "beaver",
		KindRand:   "rand",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestTablePutGet(t *testing.T) {
	tbl := NewTable()
	c := NewCounter(KindGate)
	h := c.Next()

	tbl.Put(h, 42)
	got, ok := tbl.Lookup(h)
	if !ok {
		t.Fatal("expected handle to be present")
	}
	if got.(int) != 42 {
		t.Fatalf("got %v, want 42", got)
	}
	if tbl.Len() != 1 {
		t.Fatalf("expected len 1, got %d", tbl.Len())
	}

	tbl.Delete(h)
	if _, ok := tbl.Lookup(h); ok {
		t.Fatal("expected handle to be gone after Delete")
	}
}

func TestTableGetMissingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Get on a missing handle to panic")
		}
	}()
	tbl := NewTable()
	tbl.Get(Handle("does-not-exist"))
}
