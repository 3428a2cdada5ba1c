// Package partition - validation utilities shared by all solvers.
//
// This file contains small, tight helpers that:
//  1. Validate Options combinations (algo ↔ backend, bounds, limits).
//  2. Validate weight lists (non-empty, finite).
//  3. Normalize solver output (canonical bit orientation).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go (weights-package sentinels are forwarded as-is).
package partition

import "github.com/katalvlaran/numpart/weights"

// validateAll verifies Options + weight list. It returns n (instance
// size) on success.
//
// Complexity: O(n).
func validateAll(w weights.List, opts Options) (int, error) {
	var err error

	// Stage 1: Options-only sanity.
	if err = validateOptions(opts); err != nil {
		return 0, err
	}

	// Stage 2: weights (emptiness, finiteness).
	if err = validateWeights(w); err != nil {
		return 0, err
	}

	// Stage 3: per-algorithm instance caps.
	n := len(w)
	if opts.Algo == ExactEnumeration && n > MaxExactSpins {
		return 0, ErrTooLarge
	}

	return n, nil
}

// validateOptions checks internal consistency of Options without
// referencing the instance. Algo↔backend constraints are enforced here.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// Negative budgets/tolerances invert acceptance semantics ⇒ reject.
	if opts.TimeLimit < 0 {
		return ErrBadOptions
	}
	if opts.Eps < 0 {
		return ErrBadOptions
	}
	if opts.Reads < 0 || opts.Sweeps < 0 {
		return ErrBadOptions
	}

	// Accept only known algorithms.
	switch opts.Algo {
	case ExactEnumeration, CompleteDifferencing, Differencing, Annealing:
		// ok
	case ExternalQuadratic:
		// The optional backend gates this strategy (capability check,
		// not exception-driven detection).
		if opts.Solver == nil {
			return ErrSolverUnavailable
		}
	default:
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// validateWeights enforces a non-empty, finite instance.
// weights.ErrNonFinite is forwarded as-is.
//
// Complexity: O(n).
func validateWeights(w weights.List) error {
	if len(w) == 0 {
		return ErrNoWeights
	}

	return w.Validate()
}

// canonicalizeBits enforces the reporting convention Bits[0]==1 by
// complementing in place when needed. The complement names the same
// split (global spin-flip symmetry), so the objective is untouched.
//
// Contract: bits is non-empty and already validated to {0,1}.
//
// Complexity: O(n).
func canonicalizeBits(bits []uint8) []uint8 {
	if len(bits) == 0 || bits[0] == 1 {
		return bits
	}

	var i int
	for i = 0; i < len(bits); i++ {
		bits[i] ^= 1
	}

	return bits
}
