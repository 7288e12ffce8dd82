// Package builder_test contains functional tests for the Constructor
// implementations, checking counts, closed-form neighbor orders, error
// wrapping and determinism.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/core"
)

// adjacencyOf snapshots every neighbor list of g for comparison.
func adjacencyOf[T any](t *testing.T, g *core.Graph[T]) [][]int {
	t.Helper()
	out := make([][]int, g.VertexCount())
	for v := range out {
		nbrs, err := g.Neighbors(v)
		require.NoError(t, err)
		out[v] = nbrs
	}

	return out
}

// ringNeighbors is the closed-form lattice list of v: counter-clockwise block first.
func ringNeighbors(v, n, k int) []int {
	out := make([]int, 0, k)
	for j := 1; j <= k/2; j++ {
		out = append(out, (v-j+n)%n)
	}
	for j := 1; j <= k/2; j++ {
		out = append(out, (v+j)%n)
	}

	return out
}

func TestErdosRenyi_Boundaries(t *testing.T) {
	t.Parallel()

	// p == 0 and p == 1 need no RNG.
	empty, err := builder.NewErdosRenyi[int](10, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, empty.VertexCount())
	assert.Equal(t, 0, empty.EdgeCount())

	full, err := builder.NewErdosRenyi[int](10, 1)
	require.NoError(t, err)
	assert.Equal(t, 45, full.EdgeCount())
	for v := 0; v < 10; v++ {
		d, err := full.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, 9, d)
	}

	single, err := builder.NewErdosRenyi[int](1, 0.5, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 1, single.VertexCount())
	assert.Equal(t, 0, single.EdgeCount())
}

func TestErdosRenyi_ListsInTrialOrder(t *testing.T) {
	t.Parallel()

	g, err := builder.NewErdosRenyi[int](4, 1)
	require.NoError(t, err)
	// Pairs are visited i asc then j asc, so every list is sorted for p == 1.
	assert.Equal(t, [][]int{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}, adjacencyOf(t, g))
}

func TestErdosRenyi_SeededRunsAreIdentical(t *testing.T) {
	t.Parallel()

	a, err := builder.NewErdosRenyi[int](60, 0.1, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.NewErdosRenyi[int](60, 0.1, builder.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	assert.Equal(t, adjacencyOf(t, a), adjacencyOf(t, b))
	assert.True(t, a.IsSymmetric())
	assert.True(t, a.IsSimple())
	assert.Greater(t, a.EdgeCount(), 0)
}

func TestErdosRenyi_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		n    int
		p    float64
		opts []builder.BuilderOption
		want error
	}{
		{"zero vertices", 0, 0.5, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"negative p", 5, -0.1, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"p above one", 5, 1.1, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"NaN p", 5, math.NaN(), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"missing rng", 5, 0.5, nil, builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.NewErdosRenyi[int](tc.n, tc.p, tc.opts...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "BuildGraph: ")
		})
	}
}

func TestRingLattice_ClosedForm(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ n, k int }{{1, 0}, {6, 2}, {7, 4}, {10, 6}} {
		g, err := builder.BuildGraph[int](nil, builder.RingLattice(tc.n, tc.k))
		require.NoError(t, err)
		got := adjacencyOf(t, g)
		for v := 0; v < tc.n; v++ {
			assert.Equal(t, ringNeighbors(v, tc.n, tc.k), got[v], "n=%d k=%d v=%d", tc.n, tc.k, v)
		}
		assert.Equal(t, tc.n*tc.k/2, g.EdgeCount())
		assert.True(t, g.IsSymmetric())
		assert.True(t, g.IsSimple())
	}
}

func TestRingLattice_InvalidDegree(t *testing.T) {
	t.Parallel()

	for _, k := range []int{-2, 3, 6, 8} {
		_, err := builder.BuildGraph[int](nil, builder.RingLattice(6, k))
		assert.ErrorIs(t, err, builder.ErrInvalidDegree, "k=%d", k)
	}
}

func TestWattsStrogatz_ZeroBetaIsLattice(t *testing.T) {
	t.Parallel()

	// No RNG needed when nothing can be rewired.
	ws, err := builder.NewWattsStrogatz[int](20, 4, 0)
	require.NoError(t, err)
	lattice, err := builder.BuildGraph[int](nil, builder.RingLattice(20, 4))
	require.NoError(t, err)

	assert.Equal(t, adjacencyOf(t, lattice), adjacencyOf(t, ws))
	for _, d := range ws.Degrees() {
		assert.Equal(t, 4, d)
	}
}

func TestWattsStrogatz_RewiringPreservesTotals(t *testing.T) {
	t.Parallel()

	const n, k = 200, 6
	for _, beta := range []float64{0.1, 0.5, 1} {
		g, err := builder.NewWattsStrogatz[int](n, k, beta, builder.WithSeed(7))
		require.NoError(t, err, "beta=%v", beta)

		sum := 0
		for _, d := range g.Degrees() {
			assert.GreaterOrEqual(t, d, k/2)
			sum += d
		}
		assert.Equal(t, n*k, sum)
		assert.Equal(t, n*k/2, g.EdgeCount())
		assert.True(t, g.IsSymmetric())
		assert.True(t, g.IsSimple())
	}
}

func TestWattsStrogatz_FullRewireLeavesLattice(t *testing.T) {
	t.Parallel()

	g, err := builder.NewWattsStrogatz[int](100, 2, 1, builder.WithSeed(3))
	require.NoError(t, err)
	lattice, err := builder.BuildGraph[int](nil, builder.RingLattice(100, 2))
	require.NoError(t, err)

	// With beta == 1 every clockwise edge moves, so the graph must differ.
	assert.NotEqual(t, adjacencyOf(t, lattice), adjacencyOf(t, g))
}

func TestWattsStrogatz_SeededRunsAreIdentical(t *testing.T) {
	t.Parallel()

	a, err := builder.NewWattsStrogatz[int](80, 4, 0.3, builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.NewWattsStrogatz[int](80, 4, 0.3, builder.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, adjacencyOf(t, a), adjacencyOf(t, b))
}

func TestWattsStrogatz_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.NewWattsStrogatz[int](0, 0, 0.5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.NewWattsStrogatz[int](10, 3, 0.5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidDegree)

	_, err = builder.NewWattsStrogatz[int](10, 10, 0.5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidDegree)

	_, err = builder.NewWattsStrogatz[int](10, 4, 1.5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.NewWattsStrogatz[int](10, 4, 0.5)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	// k == n-1: every vertex already touches all others.
	_, err = builder.NewWattsStrogatz[int](5, 4, 0.5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	// A second WattsStrogatz cannot run on an already-built lattice.
	_, err = builder.BuildGraph[int](nil, builder.RingLattice(10, 2), builder.WattsStrogatz(10, 2, 0))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_Composition(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph[int](nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())

	_, err = builder.BuildGraph[int](nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	// Mismatched vertex counts cannot share one topology.
	_, err = builder.BuildGraph[int](nil, builder.RingLattice(6, 2), builder.ErdosRenyi(7, 0))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	// Same size composes: lattice plus an empty random layer.
	g, err = builder.BuildGraph[int](nil, builder.RingLattice(6, 2), builder.ErdosRenyi(6, 0))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())

	// Payloads start at the zero value of T.
	p, err := g.Payload(3)
	require.NoError(t, err)
	assert.Zero(t, p)
}
