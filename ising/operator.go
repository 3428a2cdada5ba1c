// Package ising - Operator construction and energy evaluation.
package ising

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Operator is the Ising form of a partition objective: a symmetric
// pairwise coupling matrix plus a scalar offset. Operators are built by
// Encode and never mutated afterwards.
type Operator struct {
	n        int           // number of spins (== number of weights)
	coupling *mat.SymDense // J[i][j] = w_i·w_j, zero diagonal; nil when n==0
	offset   float64       // Σ w_i² (folded diagonal terms)
	weights  []float64     // private copy of the source list (QUBO conversion)
}

// A Term is one pairwise coefficient of the operator in list form, as
// consumed by external QUBO/Ising backends. I < J always holds; Value
// already accounts for both orderings of the pair, so
//
//	Offset + Σ_terms Value·z_I·z_J
//
// reproduces the full objective.
type Term struct {
	I     int
	J     int
	Value float64
}

// Encode builds the Ising operator for the given weights.
//
// Contracts:
//   - Every weight must be finite (ErrNonFinite otherwise).
//   - An empty list is accepted and yields the zero operator
//     (NumSpins==0, Offset==0, Energy(nil)==0).
//   - Pure and idempotent: identical inputs produce identical
//     coefficients; the input slice is not retained.
//
// Complexity: O(n²) time, O(n²) space.
func Encode(w []float64) (*Operator, error) {
	n := len(w)

	// Stage 1: finiteness scan (strict sentinel, no partial operators).
	var i, j int
	for i = 0; i < n; i++ {
		if math.IsNaN(w[i]) || math.IsInf(w[i], 0) {
			return nil, ErrNonFinite
		}
	}

	// Stage 2: degenerate empty instance ⇒ zero operator.
	if n == 0 {
		return &Operator{n: 0, coupling: nil, offset: 0, weights: nil}, nil
	}

	// Stage 3: couplings J[i][j] = w_i·w_j for i≠j; diagonal stays zero
	// because z_i² == 1 folds those terms into the offset.
	c := mat.NewSymDense(n, nil)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			c.SetSym(i, j, w[i]*w[j])
		}
	}

	// Private copy: the caller's slice must stay untouched and later
	// mutations of it must not leak into the operator.
	wc := make([]float64, n)
	copy(wc, w)

	return &Operator{
		n:        n,
		coupling: c,
		offset:   floats.Dot(w, w),
		weights:  wc,
	}, nil
}

// NumSpins returns the number of spin variables.
func (o *Operator) NumSpins() int {
	if o == nil {
		return 0
	}

	return o.n
}

// Offset returns the constant term Σ w_i².
func (o *Operator) Offset() float64 {
	if o == nil {
		return 0
	}

	return o.offset
}

// Coupling returns J[i][j]. The matrix is symmetric with a zero
// diagonal; indices outside [0..n-1] yield ErrIndexOutOfRange.
//
// Complexity: O(1).
func (o *Operator) Coupling(i, j int) (float64, error) {
	if o == nil {
		return 0, ErrNilOperator
	}
	if i < 0 || i >= o.n || j < 0 || j >= o.n {
		return 0, ErrIndexOutOfRange
	}
	if i == j {
		return 0, nil
	}

	return o.coupling.At(i, j), nil
}

// Energy evaluates the coupling part Σ_{i≠j} J[i][j]·z_i·z_j as a
// quadratic form zᵀJz. The full objective is Offset() + Energy(z).
//
// Contracts:
//   - len(spins) must equal NumSpins (ErrLengthMismatch).
//   - Every spin must be −1 or +1 (ErrBadSpin).
//
// Complexity: O(n²).
func (o *Operator) Energy(spins []int8) (float64, error) {
	if o == nil {
		return 0, ErrNilOperator
	}
	if len(spins) != o.n {
		return 0, ErrLengthMismatch
	}
	if o.n == 0 {
		return 0, nil
	}

	// Lift spins into a dense vector, validating the ±1 domain.
	z := mat.NewVecDense(o.n, nil)

	var i int
	for i = 0; i < o.n; i++ {
		if spins[i] != -1 && spins[i] != 1 {
			return 0, ErrBadSpin
		}
		z.SetVec(i, float64(spins[i]))
	}

	return mat.Inner(z, o.coupling, z), nil
}

// Value evaluates the complete objective Offset + Energy, i.e. the
// squared imbalance (Σ w_i z_i)² of the split induced by spins.
//
// Complexity: O(n²).
func (o *Operator) Value(spins []int8) (float64, error) {
	e, err := o.Energy(spins)
	if err != nil {
		return 0, err
	}

	return o.offset + e, nil
}

// Terms returns the operator as an upper-triangle coefficient list, the
// form external Ising/QUBO backends consume. Each unordered pair appears
// once with Value = 2·J[i][j] (both orderings collapsed), so
// Offset + Σ Value·z_I·z_J equals the full objective.
//
// The zero operator yields an empty (non-nil) list.
//
// Complexity: O(n²) time and space.
func (o *Operator) Terms() []Term {
	if o == nil || o.n == 0 {
		return []Term{}
	}

	out := make([]Term, 0, o.n*(o.n-1)/2)

	var i, j int
	for i = 0; i < o.n; i++ {
		for j = i + 1; j < o.n; j++ {
			out = append(out, Term{I: i, J: j, Value: 2 * o.coupling.At(i, j)})
		}
	}

	return out
}
