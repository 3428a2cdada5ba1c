package partition_test

import (
	"testing"

	"github.com/katalvlaran/numpart/partition"
	"github.com/katalvlaran/numpart/weights"
	"github.com/stretchr/testify/require"
)

// oracleList is the documented reference instance: sum 46, perfectly
// balanced by {9,8,4,2} vs {23}, coupling energy −694 at the optimum.
var oracleList = weights.List{9, 8, 23, 4, 2}

func TestSolve_Oracle_AllStrategies(t *testing.T) {
	algos := []partition.Algorithm{
		partition.ExactEnumeration,
		partition.CompleteDifferencing,
		partition.Differencing,
		partition.Annealing,
	}
	for _, algo := range algos {
		opts := partition.DefaultOptions()
		opts.Algo = algo
		opts.Reads = 64
		opts.Sweeps = 256

		res, err := partition.Solve(oracleList, opts)
		require.NoError(t, err, algo.String())
		require.Equal(t, []uint8{1, 1, 0, 1, 1}, res.Bits, algo.String())
		require.Equal(t, -694.0, res.Energy, algo.String())
		require.Equal(t, 0.0, res.Objective, algo.String())
	}
}

func TestSolve_EightElementList(t *testing.T) {
	// Sum 69 is odd, so no perfect split exists; the optimum is 1
	// (e.g. 1+3+4+10+16 = 34 vs 35).
	l := weights.List{1, 3, 4, 7, 10, 13, 15, 16}

	for _, algo := range []partition.Algorithm{
		partition.ExactEnumeration,
		partition.CompleteDifferencing,
	} {
		opts := partition.DefaultOptions()
		opts.Algo = algo

		res, err := partition.Solve(l, opts)
		require.NoError(t, err, algo.String())
		require.Equal(t, 1.0, res.Objective, algo.String())
		// Energy + Σw² == Objective² for any consistent scoring;
		// Σw² = 825 here, so the optimal energy is −824.
		require.Equal(t, res.Objective*res.Objective,
			res.Energy+825.0, algo.String())
	}
}

func TestSolve_ScoringInvariant(t *testing.T) {
	// Every strategy's result must satisfy Energy + Σw² == Objective²
	// and the canonical orientation Bits[0]==1.
	l, err := weights.Random(12, 50, 4242)
	require.NoError(t, err)
	offset := 0.0
	for _, w := range l {
		offset += w * w
	}

	for _, algo := range []partition.Algorithm{
		partition.ExactEnumeration,
		partition.CompleteDifferencing,
		partition.Differencing,
		partition.Annealing,
	} {
		opts := partition.DefaultOptions()
		opts.Algo = algo

		res, err := partition.Solve(l, opts)
		require.NoError(t, err, algo.String())
		require.Len(t, res.Bits, len(l), algo.String())
		require.Equal(t, uint8(1), res.Bits[0], algo.String())
		require.InDelta(t, res.Objective*res.Objective,
			res.Energy+offset, 1e-6, algo.String())
	}
}

func TestSolve_ExactMatchesCompleteDifferencing(t *testing.T) {
	// Cross-validation: two independent exact strategies must agree on
	// the optimal objective over a batch of random instances.
	for seed := int64(1); seed <= 10; seed++ {
		l, err := weights.Random(12, 100, seed)
		require.NoError(t, err)

		optExact := partition.DefaultOptions()
		optExact.Algo = partition.ExactEnumeration
		a, err := partition.Solve(l, optExact)
		require.NoError(t, err)

		optCKK := partition.DefaultOptions()
		optCKK.Algo = partition.CompleteDifferencing
		b, err := partition.Solve(l, optCKK)
		require.NoError(t, err)

		require.Equal(t, a.Objective, b.Objective, "seed %d list %v", seed, l)
	}
}

func TestSolve_HeuristicsNeverBeatExact(t *testing.T) {
	for seed := int64(20); seed < 26; seed++ {
		l, err := weights.Random(14, 75, seed)
		require.NoError(t, err)

		optExact := partition.DefaultOptions()
		exact, err := partition.Solve(l, optExact)
		require.NoError(t, err)

		for _, algo := range []partition.Algorithm{
			partition.Differencing,
			partition.Annealing,
		} {
			opts := partition.DefaultOptions()
			opts.Algo = algo
			res, err := partition.Solve(l, opts)
			require.NoError(t, err, algo.String())
			require.GreaterOrEqual(t, res.Objective, exact.Objective,
				"%s undercut the optimum on seed %d", algo.String(), seed)
		}
	}
}

func TestSolve_SingleElement(t *testing.T) {
	// n==1: the lone weight sits alone in S₁; the imbalance is |w|.
	for _, algo := range []partition.Algorithm{
		partition.ExactEnumeration,
		partition.CompleteDifferencing,
		partition.Differencing,
		partition.Annealing,
	} {
		opts := partition.DefaultOptions()
		opts.Algo = algo

		res, err := partition.Solve(weights.List{42}, opts)
		require.NoError(t, err, algo.String())
		require.Equal(t, []uint8{1}, res.Bits, algo.String())
		require.Equal(t, 42.0, res.Objective, algo.String())
		require.Equal(t, 0.0, res.Energy, algo.String())
	}
}

func TestSolve_TwoEqualElements(t *testing.T) {
	res, err := partition.Solve(weights.List{5, 5}, partition.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 0}, res.Bits)
	require.Equal(t, 0.0, res.Objective)
	require.Equal(t, -50.0, res.Energy) // −2·w₀·w₁
}

func TestSolve_ValidationErrors(t *testing.T) {
	opts := partition.DefaultOptions()

	_, err := partition.Solve(weights.List{}, opts)
	require.ErrorIs(t, err, partition.ErrNoWeights)

	opts.Eps = -1
	_, err = partition.Solve(oracleList, opts)
	require.ErrorIs(t, err, partition.ErrBadOptions)

	opts = partition.DefaultOptions()
	opts.TimeLimit = -1
	_, err = partition.Solve(oracleList, opts)
	require.ErrorIs(t, err, partition.ErrBadOptions)

	opts = partition.DefaultOptions()
	opts.Reads = -2
	_, err = partition.Solve(oracleList, opts)
	require.ErrorIs(t, err, partition.ErrBadOptions)

	opts = partition.DefaultOptions()
	opts.Algo = partition.Algorithm(99)
	_, err = partition.Solve(oracleList, opts)
	require.ErrorIs(t, err, partition.ErrUnsupportedAlgorithm)

	opts = partition.DefaultOptions()
	opts.Algo = partition.ExternalQuadratic // no backend injected
	_, err = partition.Solve(oracleList, opts)
	require.ErrorIs(t, err, partition.ErrSolverUnavailable)
}

func TestSolve_ExactCap(t *testing.T) {
	l, err := weights.Random(partition.MaxExactSpins+1, 10, 7)
	require.NoError(t, err)

	opts := partition.DefaultOptions()
	opts.Algo = partition.ExactEnumeration
	_, err = partition.Solve(l, opts)
	require.ErrorIs(t, err, partition.ErrTooLarge)

	// The same instance is fine for the branch-and-bound.
	opts.Algo = partition.CompleteDifferencing
	res, err := partition.Solve(l, opts)
	require.NoError(t, err)
	require.Len(t, res.Bits, partition.MaxExactSpins+1)
}

func TestRunnableAlgorithms(t *testing.T) {
	opts := partition.DefaultOptions()
	require.Equal(t, []partition.Algorithm{
		partition.ExactEnumeration,
		partition.CompleteDifferencing,
		partition.Differencing,
		partition.Annealing,
	}, partition.RunnableAlgorithms(opts))

	opts.Solver = enumBackend{}
	require.Contains(t, partition.RunnableAlgorithms(opts),
		partition.ExternalQuadratic)
}

func TestAlgorithm_String(t *testing.T) {
	require.Equal(t, "ExactEnumeration", partition.ExactEnumeration.String())
	require.Equal(t, "CompleteDifferencing", partition.CompleteDifferencing.String())
	require.Equal(t, "Differencing", partition.Differencing.String())
	require.Equal(t, "Annealing", partition.Annealing.String())
	require.Equal(t, "ExternalQuadratic", partition.ExternalQuadratic.String())
	require.Equal(t, "Unknown", partition.Algorithm(99).String())
}
