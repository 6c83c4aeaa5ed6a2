package wire

import "fmt"

// Table stores the concrete value behind each handle the evaluator has
// allocated. Values are stored as `any` since the table is shared across
// the F, G1, G2, and Gt share types; callers type-assert on retrieval.
type Table struct {
	values map[Handle]any
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{values: make(map[Handle]any)}
}

// Put records v under h, overwriting any previous value. Gates never
// legitimately reuse a handle, but Put does not enforce that itself — the
// counter in Counter.Next is what guarantees freshness.
func (t *Table) Put(h Handle, v any) {
	t.values[h] = v
}

// Get returns the value stored under h. It panics if h was never put,
// mirroring the original evaluator's behavior of treating a missing wire as
// an unrecoverable programming error rather than a user-facing one: every
// handle in scope was necessarily produced by a prior call on the same
// evaluator, so a miss means the caller fabricated or corrupted a handle.
func (t *Table) Get(h Handle) any {
	v, ok := t.values[h]
	if !ok {
		panic(fmt.Sprintf("wire: handle %q not found in table", h))
	}
	return v
}

// Lookup is the non-panicking form of Get.
func (t *Table) Lookup(h Handle) (any, bool) {
	v, ok := t.values[h]
	return v, ok
}

// Len reports how many handles are currently populated.
func (t *Table) Len() int {
	return len(t.values)
}

// Delete removes h from the table. The evaluator does not call it, so its
// table keeps every value it has stored.
func (t *Table) Delete(h Handle) {
	delete(t.values, h)
}
