// Package numpart is your in-memory toolkit for the number-partitioning
// problem — encode a list of weights as an Ising/QUBO objective and
// split it into two balanced subsets with interchangeable solvers.
//
// 🚀 What is numpart?
//
//	A small, deterministic optimization library that brings together:
//		• Input handling: load weight lists from flat text, or generate
//		  them reproducibly from a seed
//		• Ising encoding: pairwise couplings + offset reproducing the
//		  squared subset-sum imbalance exactly
//		• Exact solvers: exhaustive enumeration & complete
//		  Karmarkar–Karp branch-and-bound
//		• Heuristics: largest-differencing & seeded simulated annealing
//		• External backends: inject any QUBO-capable solver behind a
//		  uniform strategy interface with an availability query
//
// ✨ Why choose numpart?
//
//   - Deterministic – seed-driven randomness only; identical runs on CI
//   - Rock-solid guarantees – strict sentinel errors, no panics on input
//   - Uniform scoring – every strategy's output is re-validated against
//     the same objective, never trusted as printed
//
// Under the hood, everything is organized under three subpackages:
//
//	weights/   — weight lists: loading, generation, validation
//	ising/     — operator encoding, energy evaluation, spin/bit helpers
//	partition/ — solver strategies, dispatcher, objective decoding
//
// Quick start:
//
//	list, _ := weights.Random(8, 100, 42)
//	res, err := partition.Solve(list, partition.DefaultOptions())
//	// res.Bits: which subset each weight joins (1 ⇒ S₁, 0 ⇒ S₂)
//	// res.Objective: |S₁ − S₂| of the best split found
//
// Dive into examples/ for complete runnable scenarios.
//
//	go get github.com/katalvlaran/numpart
package numpart
