// Package ising: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// ising package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user input.

package ising

import "errors"

var (
	// ErrNonFinite is returned by Encode when a weight is NaN or ±Inf.
	ErrNonFinite = errors.New("ising: non-finite weight")

	// ErrLengthMismatch is returned when an assignment's length differs
	// from the operator's spin count.
	ErrLengthMismatch = errors.New("ising: assignment length mismatch")

	// ErrBadSpin is returned when a spin value is neither −1 nor +1.
	ErrBadSpin = errors.New("ising: spin must be -1 or +1")

	// ErrBadBit is returned when a bit value is neither 0 nor 1.
	ErrBadBit = errors.New("ising: bit must be 0 or 1")

	// ErrIndexOutOfRange is returned by Coupling for indices outside
	// [0..n-1].
	ErrIndexOutOfRange = errors.New("ising: index out of range")

	// ErrNilOperator is returned when a nil *Operator receiver is used.
	ErrNilOperator = errors.New("ising: nil operator")
)
