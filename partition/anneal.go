// Package partition — simulated annealing over single spin flips.
//
// solveAnneal is the stochastic-sampling strategy: Metropolis dynamics
// on the Ising form of the objective, run as several independent reads
// whose best outcome wins (the classical analogue of taking the
// most-likely sample from a physics-inspired solver).
//
// Energy bookkeeping is O(1) per flip: with m = Σ w_i·z_i the objective
// is m², and flipping spin k moves m to m − 2·w_k·z_k, so
//
//	Δ(m²) = 4·w_k·z_k·(w_k·z_k − m).
//
// Determinism:
//   - Each read r uses an independent substream derived from the base
//     seed via deriveRNG(seed, r); same Options ⇒ identical result.
//   - The best-ever configuration across all sweeps and reads is
//     tracked, not the final state, so late rejected moves cannot lose
//     an already-found optimum.
//
// Complexity: O(Reads·Sweeps·n) flip attempts, O(n) space per read.
package partition

import (
	"math"

	"github.com/katalvlaran/numpart/weights"
)

// annealTempFloor bounds the schedule from below. The start temperature
// scales with the coarsest possible move (Σ|w|)² so early sweeps accept
// almost everything; the floor keeps exp() well-behaved.
const annealTempFloor = 1e-3

// solveAnneal runs Reads independent annealing restarts and returns the
// best assignment seen. Never fails on a validated instance.
func solveAnneal(w weights.List, opts Options) ([]uint8, error) {
	n := len(w)
	if n == 1 {
		return []uint8{1}, nil
	}

	reads := opts.Reads
	if reads == 0 {
		reads = DefaultReads
	}
	sweeps := opts.Sweeps
	if sweeps == 0 {
		sweeps = DefaultSweeps
	}

	// Temperature schedule: geometric from T₀ = (Σ|w|)² down to the
	// floor across the sweep budget.
	var (
		absSum float64
		i      int
	)
	for i = 0; i < n; i++ {
		absSum += math.Abs(w[i])
	}
	t0 := absSum * absSum
	if t0 < annealTempFloor {
		t0 = annealTempFloor
	}
	ratio := math.Pow(annealTempFloor/t0, 1/float64(sweeps))

	var (
		bestAbs   = math.Inf(1)
		bestSpins []int8
	)

	var (
		r     int
		sweep int
		k     int
		flip  int
	)
	for r = 0; r < reads; r++ {
		rng := deriveRNG(opts.Seed, uint64(r))
		spins := randomSpins(n, rng)

		// Running magnetization m = Σ w_i·z_i; |m| is the imbalance.
		var m float64
		for i = 0; i < n; i++ {
			m += w[i] * float64(spins[i])
		}
		if math.Abs(m) < bestAbs {
			bestAbs = math.Abs(m)
			bestSpins = append([]int8(nil), spins...)
		}

		temp := t0
		for sweep = 0; sweep < sweeps && bestAbs > opts.Eps; sweep++ {
			for flip = 0; flip < n; flip++ {
				k = rng.Intn(n)
				c := w[k] * float64(spins[k])
				delta := 4 * c * (c - m)

				// Metropolis acceptance.
				if delta <= 0 || rng.Float64() < math.Exp(-delta/temp) {
					spins[k] = -spins[k]
					m -= 2 * c
					if math.Abs(m) < bestAbs {
						bestAbs = math.Abs(m)
						bestSpins = append(bestSpins[:0], spins...)
					}
				}
			}
			temp *= ratio
		}

		if bestAbs <= opts.Eps {
			break // perfect partition found; later reads cannot improve
		}
	}

	// bestSpins is always set: the initial configuration of read 0 beats
	// +Inf. Convert via the shared bit convention (+1 ⇒ 1).
	bits := make([]uint8, n)
	for i = 0; i < n; i++ {
		if bestSpins[i] == 1 {
			bits[i] = 1
		}
	}

	return bits, nil
}
