// Package partition — injectable external quadratic backend.
//
// Commercial QP solvers and annealer bindings live outside this module
// (they are typically cgo-bound or licensed). The strategy surface here
// is therefore an interface plus a capability check: inject a backend
// via Options.Solver and ExternalQuadratic joins RunnableAlgorithms;
// leave it nil and the strategy is simply absent — no probing, no
// exception-driven detection.
package partition

import "github.com/katalvlaran/numpart/ising"

// QuadraticSolver is the uniform contract an external QUBO-capable
// backend must satisfy. Implementations receive the full symmetric QUBO
// matrix (linear terms on the diagonal) and return one {0,1} assignment
// minimizing xᵀQx — the "most likely" sample when the backend is
// distribution-based.
type QuadraticSolver interface {
	// Name identifies the backend in diagnostics.
	Name() string

	// SolveQUBO minimizes xᵀQx over x ∈ {0,1}ⁿ for the n×n matrix q and
	// returns the winning assignment. Backend-specific failures are
	// returned as-is.
	SolveQUBO(q [][]float64) ([]uint8, error)
}

// solveExternal converts the operator to QUBO form, delegates to the
// injected backend, and validates the returned assignment shape. The
// caller re-scores the result with Objective regardless of what the
// backend reported.
func solveExternal(op *ising.Operator, opts Options) ([]uint8, error) {
	if opts.Solver == nil {
		return nil, ErrSolverUnavailable
	}

	q, _, err := op.QUBO()
	if err != nil {
		return nil, err
	}

	bits, err := opts.Solver.SolveQUBO(q)
	if err != nil {
		return nil, err
	}

	// Solver output is untrusted: enforce shape and domain before any
	// scoring happens.
	if len(bits) != op.NumSpins() {
		return nil, ErrLengthMismatch
	}

	var i int
	for i = 0; i < len(bits); i++ {
		if bits[i] > 1 {
			return nil, ErrBadBit
		}
	}

	return bits, nil
}
