// Package partition — exhaustive exact solver.
//
// solveExact scans every assignment of n weights with bit 0 fixed to 1:
// the objective is invariant under the global flip, so half the search
// space is redundant. This is the "exact diagonalization" view of the
// Ising encoding — the Hamiltonian is diagonal in the computational
// basis, so its ground state is simply the basis state of minimal value.
//
// Complexity: O(n·2^(n−1)) time, O(n) space. Guarded by MaxExactSpins in
// validateAll.
package partition

import (
	"math"

	"github.com/katalvlaran/numpart/weights"
)

// solveExact returns the optimal bit assignment (bit 0 == 1).
// Determinism: ties resolve to the lowest enumeration index; a perfect
// partition (imbalance ≤ eps) stops the scan early.
func solveExact(w weights.List, opts Options) ([]uint8, error) {
	n := len(w)
	total := w.Sum()

	// Enumerate subsets of indices 1..n−1 joining S₁ alongside index 0.
	// For a mask m, S₁−S₂ = 2·(w₀ + Σ_{m} w_i) − total.
	var (
		bestMask int
		bestAbs  = math.Inf(1)
		m        int
		i        int
		s        float64
		d        float64
		half     = 1 << (n - 1)
	)
	for m = 0; m < half; m++ {
		s = w[0]
		for i = 1; i < n; i++ {
			if m&(1<<(i-1)) != 0 {
				s += w[i]
			}
		}
		d = math.Abs(2*s - total)
		if d < bestAbs {
			bestAbs = d
			bestMask = m
			if d <= opts.Eps {
				break // perfect partition; nothing can improve
			}
		}
	}

	// Materialize the winning assignment.
	bits := make([]uint8, n)
	bits[0] = 1
	for i = 1; i < n; i++ {
		if bestMask&(1<<(i-1)) != 0 {
			bits[i] = 1
		}
	}

	return bits, nil
}
