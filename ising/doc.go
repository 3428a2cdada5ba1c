// Package ising encodes the number-partitioning objective as an Ising
// Hamiltonian and evaluates it over spin or bit assignments.
//
// Encoding:
//
//	Given weights w_0..w_{n-1}, the squared imbalance of any two-way split
//	is (Σ w_i·z_i)² with z_i ∈ {−1,+1} (z_i=+1 assigns item i to subset
//	S₁). Expanding the square separates a constant offset from pairwise
//	coupling terms:
//
//	    (Σ w_i z_i)² = Σ w_i²  +  Σ_{i≠j} w_i·w_j · z_i z_j
//	                   \_____/     \___________________/
//	                    offset          couplings J
//
//	so J[i][j] = w_i·w_j off the diagonal, the diagonal z_i² = 1 terms
//	fold into the offset, and minimizing the coupling energy minimizes
//	the squared imbalance of the split.
//
// Invariant (holds for every assignment, asserted in tests):
//
//	Offset + Energy(z) == (Σ w_i z_i)²
//
// Design principles:
//   - Pure: Encode is a function of the weight list only; identical
//     inputs produce identical coefficients; operators are never mutated.
//   - Strict sentinels: only errors from errors.go; no panics on user
//     input.
//   - Dense symmetric storage: couplings live in a gonum mat.SymDense and
//     energies are evaluated as a quadratic form.
//
// QUBO form:
//
//	Operator.QUBO applies the change of variables z = 2x−1 and yields the
//	equivalent 0/1 formulation for backends that consume QUBO matrices
//	(see partition.QuadraticSolver).
package ising
