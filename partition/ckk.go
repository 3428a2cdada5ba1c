// Package partition — Complete Karmarkar–Karp (exact search with pruning).
//
// solveCKK enumerates partitions via a depth-first branch-and-bound over
// differencing states, deterministic branching, and a soft time budget.
//
// Rationale (succinct):
//  1. Each search node holds the multiset of remaining differencing
//     values (see differencing.go for the node representation). The two
//     largest values a ≥ b branch two ways: place them in opposite
//     subsets (replace by a−b, the KK move, tried first — it is the
//     heuristic's choice and tightens the incumbent early) or in the
//     same subset (replace by a+b).
//  2. Seeding: the plain Karmarkar–Karp heuristic provides the initial
//     incumbent, so pruning starts strong (mirrors seeding an upper
//     bound from a constructive heuristic before exact search).
//  3. Dominance bound: when the largest value dominates the sum of the
//     rest, the optimal completion is forced — put everything else
//     opposite the largest — and the subtree collapses to one leaf.
//  4. Perfect partitions (value ≤ eps) stop the whole search.
//  5. Soft time limit: rare deadline checks (every 4096 node events)
//     keep overhead negligible.
//
// Complexity:
//   - Worst case exponential in n (exact search); with the dominance
//     bound the tree for integer weights of magnitude ≤ 2^k collapses
//     quickly once values differentiate. Per node: O(n) for the rest-sum
//     and ordered reinsertion.
package partition

import (
	"math"
	"time"

	"github.com/katalvlaran/numpart/weights"
)

// ckkEngine holds search state and policies. A dedicated engine struct
// (instead of closures) keeps dependencies explicit and hot-path state
// predictable.
type ckkEngine struct {
	n   int
	eps float64

	// Time budget.
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline check counter
	timedOut    bool

	// Incumbent.
	bestVal  float64
	bestBits []uint8
	perfect  bool // bestVal ≤ eps; stop unwinding
}

// deadlineCheck performs a rare deadline test (every 4096 node events).
func (e *ckkEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.timedOut = true
	}

	return e.timedOut
}

// record commits a fully combined node as the new incumbent when it
// improves on the current one.
func (e *ckkEngine) record(final *kkItem) {
	if final.value >= e.bestVal {
		return
	}
	e.bestVal = final.value
	e.bestBits = final.bitsOf(e.n)
	if e.bestVal <= e.eps {
		e.perfect = true
	}
}

// insertSorted places it into items (sorted by value desc, lead asc)
// and returns a fresh slice; the input backing array is never shared
// between sibling branches.
func insertSorted(items []*kkItem, it *kkItem) []*kkItem {
	out := make([]*kkItem, 0, len(items)+1)

	var (
		i      int
		placed bool
	)
	for i = 0; i < len(items); i++ {
		if !placed && (it.value > items[i].value ||
			(it.value == items[i].value && it.lead < items[i].lead)) {
			out = append(out, it)
			placed = true
		}
		out = append(out, items[i])
	}
	if !placed {
		out = append(out, it)
	}

	return out
}

// combineSum merges b into a on the same side: the node's value becomes
// a+b and members keep their orientation.
func combineSum(a, b *kkItem) *kkItem {
	out := &kkItem{
		value: a.value + b.value,
		lead:  a.lead,
		plus:  append(append(make([]int, 0, len(a.plus)+len(b.plus)), a.plus...), b.plus...),
		minus: append(append(make([]int, 0, len(a.minus)+len(b.minus)), a.minus...), b.minus...),
	}
	if b.lead < out.lead {
		out.lead = b.lead
	}

	return out
}

// dfs explores the differencing tree rooted at items (sorted desc).
func (e *ckkEngine) dfs(items []*kkItem) {
	if e.perfect || e.timedOut || e.deadlineCheck() {
		return
	}

	// Leaf: one value left — it IS the imbalance of the encoded split.
	if len(items) == 1 {
		e.record(items[0])

		return
	}

	// Dominance bound: largest ≥ sum of the rest ⇒ the only optimal
	// completion puts every remaining item opposite the largest.
	var (
		rest float64
		i    int
	)
	for i = 1; i < len(items); i++ {
		rest += items[i].value
	}
	a := items[0]
	if a.value >= rest {
		final := a
		for i = 1; i < len(items); i++ {
			final = combineDiff(final, items[i])
		}
		e.record(final)

		return
	}

	// Prune: no completion of this node can beat the incumbent. Any
	// sequence of ± combinations of nonnegative values stays ≥ 0, and
	// the best conceivable outcome is 0 — only worth exploring while
	// the incumbent is above eps.
	if e.bestVal <= e.eps {
		return
	}

	b := items[1]

	// Branch 1 — differencing move (opposite subsets), the KK choice.
	e.dfs(insertSorted(items[2:], combineDiff(a, b)))

	// Branch 2 — same subset.
	e.dfs(insertSorted(items[2:], combineSum(a, b)))
}

// solveCKK runs the complete differencing search and returns the optimal
// assignment. Errors: ErrTimeLimit when a positive budget expires before
// the search completes.
func solveCKK(w weights.List, opts Options) ([]uint8, error) {
	n := len(w)
	if n == 1 {
		return []uint8{1}, nil
	}

	e := &ckkEngine{
		n:       n,
		eps:     opts.Eps,
		bestVal: math.Inf(1),
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	// Seed the incumbent with the plain heuristic: a strong initial
	// upper bound dramatically strengthens pruning.
	if seed, err := solveDifferencing(w); err == nil {
		if obj, oerr := Objective(seed, w); oerr == nil {
			e.bestVal = obj
			e.bestBits = seed
			e.perfect = obj <= e.eps
		}
	}

	// Root state: sorted differencing nodes.
	items := newKKItems(w)
	e.dfs(insertAllSorted(items))

	if e.timedOut {
		return nil, ErrTimeLimit
	}

	return e.bestBits, nil
}

// insertAllSorted sorts the initial nodes by (value desc, lead asc)
// using repeated ordered insertion; n is small at the root and this
// reuses the exact comparator the search maintains.
func insertAllSorted(items []*kkItem) []*kkItem {
	out := make([]*kkItem, 0, len(items))
	for _, it := range items {
		out = insertSorted(out, it)
	}

	return out
}
