// Package ising_test provides a runnable, deterministic example of
// encoding a partition instance and evaluating assignments against it.
package ising_test

import (
	"fmt"

	"github.com/katalvlaran/numpart/ising"
)

// ExampleEncode encodes a five-number instance and evaluates the
// perfectly balanced assignment: the offset is Σw² = 694, the coupling
// energy of the balanced split is −694, and their sum — the squared
// imbalance — is zero.
func ExampleEncode() {
	op, err := ising.Encode([]float64{9, 8, 23, 4, 2})
	if err != nil {
		fmt.Println("encode failed:", err)
		return
	}

	spins, _ := ising.SpinsFromBits([]uint8{1, 1, 0, 1, 1})
	energy, _ := op.Energy(spins)
	value, _ := op.Value(spins)

	fmt.Println("spins:", op.NumSpins())
	fmt.Println("offset:", op.Offset())
	fmt.Println("energy:", energy)
	fmt.Println("squared imbalance:", value)

	// Output:
	// spins: 5
	// offset: 694
	// energy: -694
	// squared imbalance: 0
}
