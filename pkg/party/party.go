// Package party defines party identifiers for the n-party evaluator.
package party

import "sort"

// ID identifies a party in the protocol. Valid IDs lie in [1, n]; party 1 is
// the designated constant-adder for gates that inject a public value into
// the shared state.
type ID uint64

// IDSlice is a sortable collection of party IDs.
type IDSlice []ID

func (s IDSlice) Len() int           { return len(s) }
func (s IDSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s IDSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Sorted returns a sorted copy of the slice.
func (s IDSlice) Sorted() IDSlice {
	out := make(IDSlice, len(s))
	copy(out, s)
	sort.Sort(out)
	return out
}

// Contains reports whether id appears in the slice.
func (s IDSlice) Contains(id ID) bool {
	for _, x := range s {
		if x == id {
			return true
		}
	}
	return false
}

// IsConstantAdder reports whether id is the party responsible for injecting
// public constants into shared state (fixed_wire, clear_add, and the
// constant term of mult/batch_mult).
func IsConstantAdder(id ID) bool {
	return id == 1
}

// Range returns the party IDs [1, n].
func Range(n uint64) IDSlice {
	out := make(IDSlice, n)
	for i := range out {
		out[i] = ID(i + 1)
	}
	return out
}
