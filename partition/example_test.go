// Package partition_test provides runnable, deterministic examples that
// demonstrate the solver strategies. Each example prints an assignment
// and its scores with a stable // Output: block.
package partition_test

import (
	"fmt"

	"github.com/katalvlaran/numpart/partition"
	"github.com/katalvlaran/numpart/weights"
)

// ExampleSolve partitions the documented five-number instance with the
// exact solver: 9+8+4+2 balances 23 exactly, so the imbalance is zero
// and the coupling energy reaches −Σw² = −694.
func ExampleSolve() {
	list := weights.List{9, 8, 23, 4, 2}

	res, err := partition.Solve(list, partition.DefaultOptions())
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println("assignment:", res.Bits)
	fmt.Println("energy:", res.Energy)
	fmt.Println("objective:", res.Objective)

	// Output:
	// assignment: [1 1 0 1 1]
	// energy: -694
	// objective: 0
}

// ExampleSolve_differencing runs the Karmarkar–Karp heuristic on the
// same instance; its greedy trace 23−9, 14−8, 6−4, 2−2 happens to end
// at the perfect split too.
func ExampleSolve_differencing() {
	list := weights.List{9, 8, 23, 4, 2}

	opts := partition.DefaultOptions()
	opts.Algo = partition.Differencing

	res, err := partition.Solve(list, opts)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println("assignment:", res.Bits)
	fmt.Println("objective:", res.Objective)

	// Output:
	// assignment: [1 1 0 1 1]
	// objective: 0
}

// ExampleRunnableAlgorithms shows the capability query for optional
// backends: without an injected QuadraticSolver the external strategy
// is absent from the runnable set.
func ExampleRunnableAlgorithms() {
	opts := partition.DefaultOptions()

	for _, algo := range partition.RunnableAlgorithms(opts) {
		fmt.Println(algo)
	}

	// Output:
	// ExactEnumeration
	// CompleteDifferencing
	// Differencing
	// Annealing
}
