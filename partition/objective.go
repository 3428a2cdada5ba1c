// Package partition — objective decoding shared by all solvers.
//
// This file computes the real-world partition objective of a candidate
// bit assignment, independent of which solver produced it. Solver output
// is always re-scored here; printed solver energies are never trusted as
// the objective.
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity: O(n) time, O(1) extra space.
package partition

import "math"

// roundScale controls final objective stabilization precision (1e-9).
const roundScale = 1e9

// Objective computes |S₁ − S₂| for the split induced by bits over w:
// S₁ sums weights whose bit is 1, S₂ the rest.
//
// Contracts:
//   - len(bits) must equal len(w) (ErrLengthMismatch).
//   - Every bit must be 0 or 1 (ErrBadBit).
//   - Invariant under the global bit flip: Objective(complement(x), w)
//     == Objective(x, w).
//
// Complexity: O(n).
func Objective(bits []uint8, w []float64) (float64, error) {
	if len(bits) != len(w) {
		return 0, ErrLengthMismatch
	}

	// Signed accumulation S₁ − S₂ in one pass.
	var (
		diff float64
		i    int
	)
	for i = 0; i < len(bits); i++ {
		switch bits[i] {
		case 1:
			diff += w[i]
		case 0:
			diff -= w[i]
		default:
			return 0, ErrBadBit
		}
	}

	return round1e9(math.Abs(diff)), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision. This keeps
// reported objectives stable across platforms without affecting
// optimality.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
