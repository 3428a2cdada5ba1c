// Package weights - the List type and its invariant checks.
//
// A List is an ordered sequence of real-valued weights, one per item to
// partition. Order matters: bit i of a solver's assignment refers to
// element i of the originating List.
package weights

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// List is an ordered sequence of finite real-valued weights.
// Treat a List as immutable once produced: solvers and encoders never
// modify it, and callers should not either (Clone first).
type List []float64

// Sum returns the total of all weights.
//
// Complexity: O(n).
func (l List) Sum() float64 {
	return floats.Sum(l)
}

// Clone returns an independent copy of the list.
// A nil receiver yields a nil copy.
//
// Complexity: O(n) time, O(n) space.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)

	return out
}

// Validate checks that every weight is finite (no NaN, no ±Inf).
// An empty list is valid here; whether it is acceptable is the caller's
// policy (ising.Encode accepts it, partition.Solve rejects it).
//
// Returns ErrNonFinite on the first offending entry.
//
// Complexity: O(n).
func (l List) Validate() error {
	var (
		i int
		w float64
	)
	for i = 0; i < len(l); i++ {
		w = l[i]
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return ErrNonFinite
		}
	}

	return nil
}
