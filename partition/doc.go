// Package partition provides number-partitioning solvers: split a list
// of weights into two subsets minimizing the absolute difference of
// their sums.
//
// It routes one problem encoding (see ising.Encode) to interchangeable
// solver strategies:
//
//   - ExactEnumeration — exhaustive scan of all assignments (bit 0 fixed
//     by the global flip symmetry). Optimal; n ≲ 30.
//
//   - CompleteDifferencing — complete Karmarkar–Karp branch-and-bound
//     (CKK). Optimal, anytime, prunes aggressively; practical far beyond
//     the enumeration cap.
//
//   - Differencing — the Karmarkar–Karp largest-differencing heuristic.
//     Fast (O(n log n)), no optimality guarantee.
//
//   - Annealing — seeded simulated annealing over single spin flips,
//     multi-read with independent derived streams. Stochastic but fully
//     deterministic under a fixed seed.
//
//   - ExternalQuadratic — delegates the QUBO form to an injected
//     QuadraticSolver backend (commercial QP solvers, annealer
//     bindings). Absent backend ⇒ the strategy is simply not runnable;
//     see RunnableAlgorithms.
//
// Design principles:
//   - Deterministic: seed routing to stochastic solvers; no time-based
//     randomness.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where a
//     sentinel suffices.
//   - Stable results: objectives and energies are rounded to 1e−9 to
//     prevent FP drift; returned assignments are canonicalized so that
//     bit 0 == 1 (the complement names the same split).
//
// Use Solve as the single entry point; solver-specific knobs live in
// Options.
package partition
