package partition

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "partition: ..." for consistency and to
// allow easy grepping across logs. Solvers MUST return these sentinels
// and tests MUST check them via errors.Is. Errors originating in the
// weights or ising packages are forwarded as-is.

var (
	// ErrNoWeights is returned when Solve receives an empty list; a
	// partition instance needs at least one weight.
	ErrNoWeights = errors.New("partition: empty weight list")

	// ErrLengthMismatch is returned when a bit assignment's length
	// differs from the originating weight list's length.
	ErrLengthMismatch = errors.New("partition: assignment length mismatch")

	// ErrBadBit is returned when an assignment value is neither 0 nor 1.
	ErrBadBit = errors.New("partition: bit must be 0 or 1")

	// ErrUnsupportedAlgorithm is returned for an Algorithm value outside
	// the known set.
	ErrUnsupportedAlgorithm = errors.New("partition: unsupported algorithm")

	// ErrSolverUnavailable is returned when Options.Algo selects
	// ExternalQuadratic but no QuadraticSolver backend is injected.
	ErrSolverUnavailable = errors.New("partition: external quadratic solver unavailable")

	// ErrTooLarge is returned when ExactEnumeration is requested beyond
	// its instance-size cap (see MaxExactSpins).
	ErrTooLarge = errors.New("partition: instance too large for exact enumeration")

	// ErrTimeLimit is returned when a positive time budget is exceeded
	// before the search completes.
	ErrTimeLimit = errors.New("partition: time limit exceeded")

	// ErrBadOptions is returned for internally inconsistent Options
	// (negative budgets, negative tolerances, negative read counts).
	ErrBadOptions = errors.New("partition: invalid options")
)

// Result holds the outcome of a partition solver.
type Result struct {
	// Bits assigns each weight to a subset: bit=1 ⇒ S₁, bit=0 ⇒ S₂.
	// Canonicalized so that Bits[0] == 1; the complement denotes the
	// same split.
	Bits []uint8

	// Energy is the Ising coupling energy Σ_{i≠j} J·z_i·z_j of the
	// assignment. Energy + offset (Σ w²) equals the squared imbalance.
	Energy float64

	// Objective is the true partition imbalance |S₁ − S₂| (non-squared).
	Objective float64
}
