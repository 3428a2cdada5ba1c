// Package weights: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// weights package. All loaders and generators MUST return these sentinels
// and tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions.

package weights

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "weights: ..." for consistency and to
// allow easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX)
// only at an outer boundary where context is essential; callers still
// match via errors.Is.

var (
	// ErrNonFinite is returned when a weight is NaN or ±Inf. Partition
	// encodings are defined over finite reals only.
	ErrNonFinite = errors.New("weights: non-finite weight")

	// ErrBadWeight is returned when a token in a text source does not
	// parse as a real number. Boundary wrapping may add the offending
	// token for diagnostics.
	ErrBadWeight = errors.New("weights: unparsable weight token")

	// ErrBadCount is returned by Random when count < 0.
	ErrBadCount = errors.New("weights: negative count")

	// ErrBadMaxWeight is returned by Random when maxWeight < 1.
	ErrBadMaxWeight = errors.New("weights: maximum weight must be >= 1")
)
