// Package weights provides the input side of a number-partitioning
// instance: an immutable-by-convention list of finite real weights,
// loaded from a flat text source or generated deterministically.
//
// Design principles:
//   - Deterministic: random generation is seed-driven; seed==0 selects a
//     fixed default stream, never a time-based source.
//   - Strict sentinels: malformed input yields errors from errors.go;
//     no panics on user data.
//   - Side-effect free: Load and Random return fresh slices; nothing in
//     this package mutates caller state.
//
// A List is consumed by ising.Encode and partition.Solve; see those
// packages for the encoding and solver contracts.
package weights
