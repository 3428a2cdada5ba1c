package partition

import "time"

// Algorithm selects the solver strategy used by Solve.
type Algorithm int

const (
	// ExactEnumeration scans every assignment (bit 0 fixed). Optimal;
	// rejected beyond MaxExactSpins with ErrTooLarge.
	ExactEnumeration Algorithm = iota

	// CompleteDifferencing is the complete Karmarkar–Karp
	// branch-and-bound (CKK): optimal and anytime.
	CompleteDifferencing

	// Differencing is the Karmarkar–Karp largest-differencing heuristic:
	// fast, no optimality guarantee.
	Differencing

	// Annealing is seeded multi-read simulated annealing over single
	// spin flips.
	Annealing

	// ExternalQuadratic delegates the QUBO form to the injected
	// Options.Solver backend.
	ExternalQuadratic
)

// String returns the canonical strategy name.
func (a Algorithm) String() string {
	switch a {
	case ExactEnumeration:
		return "ExactEnumeration"
	case CompleteDifferencing:
		return "CompleteDifferencing"
	case Differencing:
		return "Differencing"
	case Annealing:
		return "Annealing"
	case ExternalQuadratic:
		return "ExternalQuadratic"
	default:
		return "Unknown"
	}
}

// Defaults - single source of truth for zero-value Options behavior.
const (
	// DefaultReads is the number of independent annealing restarts used
	// when Options.Reads == 0.
	DefaultReads = 16

	// DefaultSweeps is the number of temperature sweeps per read used
	// when Options.Sweeps == 0.
	DefaultSweeps = 128

	// DefaultEps is the acceptance tolerance: an imbalance ≤ Eps counts
	// as a perfect partition (early-stop in exact searches).
	DefaultEps = 1e-9

	// MaxExactSpins caps ExactEnumeration; beyond it the 2^(n−1) scan is
	// pointless next to CompleteDifferencing.
	MaxExactSpins = 30
)

// Options configures Solve. The zero value is NOT valid everywhere; use
// DefaultOptions and override fields.
type Options struct {
	// Algo selects the strategy. See Algorithm.
	Algo Algorithm

	// Seed drives all stochastic solvers; 0 selects a fixed default
	// stream (deterministic runs either way).
	Seed int64

	// Reads is the number of independent annealing restarts
	// (0 ⇒ DefaultReads).
	Reads int

	// Sweeps is the number of temperature sweeps per annealing read
	// (0 ⇒ DefaultSweeps).
	Sweeps int

	// Eps is the perfect-partition tolerance: |S₁−S₂| ≤ Eps stops exact
	// searches early. Must be ≥ 0.
	Eps float64

	// TimeLimit is a soft budget for CompleteDifferencing
	// (0 ⇒ unlimited). Exceeding it yields ErrTimeLimit.
	TimeLimit time.Duration

	// Solver is the injected external QUBO backend; nil means the
	// ExternalQuadratic strategy is unavailable.
	Solver QuadraticSolver
}

// DefaultOptions returns the canonical configuration: exact enumeration,
// deterministic default streams, strict tolerance, no time budget.
func DefaultOptions() Options {
	return Options{
		Algo:      ExactEnumeration,
		Seed:      0,
		Reads:     DefaultReads,
		Sweeps:    DefaultSweeps,
		Eps:       DefaultEps,
		TimeLimit: 0,
		Solver:    nil,
	}
}

// RunnableAlgorithms reports the strategies that can actually run under
// opts: the built-in solvers always qualify, ExternalQuadratic only when
// a backend is injected. This is the capability query for optional
// backends — absence removes the strategy from the set instead of
// failing at solve time.
func RunnableAlgorithms(opts Options) []Algorithm {
	out := []Algorithm{ExactEnumeration, CompleteDifferencing, Differencing, Annealing}
	if opts.Solver != nil {
		out = append(out, ExternalQuadratic)
	}

	return out
}
