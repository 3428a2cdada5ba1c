// Package partition - unified dispatcher for partition solvers.
//
// This file provides the canonical entry point:
//
//   - Solve: validate the instance and options, encode the Ising
//     operator once, route to the requested strategy, then normalize and
//     re-score the winning assignment.
//
// Design principles:
//   - Deterministic: seed routing to stochastic solvers; no time-based
//     randomness.
//   - Strict sentinels: only errors from types.go (weights/ising errors
//     forwarded as-is); no fmt.Errorf where a sentinel suffices.
//   - Uniform scoring: every strategy's output goes through the same
//     canonicalization, energy evaluation, and Objective re-scoring —
//     solver-reported numbers are never trusted.
package partition

import (
	"github.com/katalvlaran/numpart/ising"
	"github.com/katalvlaran/numpart/weights"
)

// Solve partitions w into two subsets minimizing |S₁ − S₂| using the
// strategy selected by opts.Algo.
//
// Contracts:
//   - w must be non-empty and finite (ErrNoWeights, weights.ErrNonFinite).
//   - opts must be internally consistent (ErrBadOptions,
//     ErrUnsupportedAlgorithm, ErrSolverUnavailable, ErrTooLarge).
//   - The returned assignment satisfies Bits[0]==1 and scores exactly:
//     Energy + Σ w² == Objective².
//
// Errors beyond validation: ErrTimeLimit (CompleteDifferencing with a
// positive budget), plus backend errors forwarded from an injected
// QuadraticSolver.
//
// Complexity: O(n²) encoding + per strategy (see the solver files).
func Solve(w weights.List, opts Options) (Result, error) {
	// Stage 1 - unified validation (Options + weights + caps).
	if _, err := validateAll(w, opts); err != nil {
		return Result{}, err
	}

	// Stage 2 - encode once; every strategy scores against the same
	// operator.
	op, err := ising.Encode(w)
	if err != nil {
		return Result{}, err
	}

	// Stage 3 - route by algorithm.
	var bits []uint8
	switch opts.Algo {
	case ExactEnumeration:
		bits, err = solveExact(w, opts)
	case CompleteDifferencing:
		bits, err = solveCKK(w, opts)
	case Differencing:
		bits, err = solveDifferencing(w)
	case Annealing:
		bits, err = solveAnneal(w, opts)
	case ExternalQuadratic:
		bits, err = solveExternal(op, opts)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return Result{}, err
	}

	// Stage 4 - canonical orientation + uniform scoring.
	bits = canonicalizeBits(bits)

	spins, err := ising.SpinsFromBits(bits)
	if err != nil {
		return Result{}, err
	}
	energy, err := op.Energy(spins)
	if err != nil {
		return Result{}, err
	}
	obj, err := Objective(bits, w)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Bits:      bits,
		Energy:    round1e9(energy),
		Objective: obj,
	}, nil
}
