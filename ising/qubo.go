// Package ising - QUBO form of the partition operator.
//
// External quadratic backends (commercial QP solvers, annealer bindings)
// typically consume the 0/1 formulation. Substituting z_i = 2·x_i − 1
// into (Σ w_i z_i)² and using x_i² == x_i gives
//
//	f(x) = Σ_i 4·w_i·(w_i − W)·x_i + Σ_{i<j} 8·w_i·w_j·x_i·x_j + W²
//
// with W = Σ w_i. Packing linear terms on the diagonal of a symmetric
// matrix Q (Q[i][i] = 4·w_i·(w_i − W), Q[i][j] = 4·w_i·w_j for i≠j)
// yields f(x) = xᵀQx + W², so minimizing xᵀQx minimizes the squared
// imbalance.
package ising

// QUBO returns the symmetric QUBO matrix Q and the constant W² such that
// for every bit vector x, xᵀQx + W² equals the squared imbalance of the
// induced split. The zero operator yields an empty matrix and zero
// constant.
//
// The returned matrix is freshly allocated on every call; callers may
// mutate it freely.
//
// Complexity: O(n²) time and space.
func (o *Operator) QUBO() ([][]float64, float64, error) {
	if o == nil {
		return nil, 0, ErrNilOperator
	}
	if o.n == 0 {
		return [][]float64{}, 0, nil
	}

	// Total weight W; needed for the linear (diagonal) terms.
	var (
		total float64
		i, j  int
	)
	for i = 0; i < o.n; i++ {
		total += o.weights[i]
	}

	q := make([][]float64, o.n)
	for i = 0; i < o.n; i++ {
		q[i] = make([]float64, o.n)
	}
	for i = 0; i < o.n; i++ {
		q[i][i] = 4 * o.weights[i] * (o.weights[i] - total)
		for j = i + 1; j < o.n; j++ {
			v := 4 * o.weights[i] * o.weights[j]
			q[i][j] = v
			q[j][i] = v
		}
	}

	return q, total * total, nil
}
