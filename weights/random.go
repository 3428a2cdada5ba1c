// Package weights - deterministic random instance generation.
//
// Goals:
//   - Determinism: same (count, maxWeight, seed) ⇒ identical List across
//     platforms; no time-based randomness anywhere.
//   - Encapsulation: a single seed policy shared with the solver package
//     (seed==0 ⇒ fixed default stream).
package weights

import "math/rand"

// defaultRandomSeed is the fixed "zero" seed used when callers pass
// seed==0. The value is arbitrary but stable to keep reproducible
// defaults.
const defaultRandomSeed int64 = 1

// Random generates count integer-valued weights drawn uniformly from
// [1..maxWeight]. Integer values keep generated instances comparable to
// the classic integer partition benchmarks while the List type stays
// real-valued.
//
// Policy: seed==0 ⇒ defaultRandomSeed; otherwise the seed is used
// verbatim.
//
// Errors: ErrBadCount when count < 0; ErrBadMaxWeight when maxWeight < 1.
//
// Complexity: O(count).
func Random(count, maxWeight int, seed int64) (List, error) {
	if count < 0 {
		return nil, ErrBadCount
	}
	if maxWeight < 1 {
		return nil, ErrBadMaxWeight
	}

	s := seed
	if s == 0 {
		s = defaultRandomSeed
	}
	rng := rand.New(rand.NewSource(s))

	out := make(List, count)

	var i int
	for i = 0; i < count; i++ {
		out[i] = float64(rng.Intn(maxWeight) + 1)
	}

	return out, nil
}
