package bfs_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/bfs"
	"github.com/katalvlaran/epinet/core"
)

func TestComponents(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, 6, [][2]int{{0, 3}, {3, 4}, {1, 2}})
	groups, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 3, 4}, {1, 2}, {5}}, groups)
	assert.Equal(t, 3, bfs.LargestComponentSize(groups))

	empty := mustGraph(t, 0, nil)
	groups, err = bfs.Components(empty)
	require.NoError(t, err)
	assert.Empty(t, groups)
	assert.Equal(t, 0, bfs.LargestComponentSize(groups))

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestAveragePathLength(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	// Path 0–1–2: ordered distances 1,2,1,1,2,1 → 8/6.
	apl, err := bfs.AveragePathLength(ctx, mustGraph(t, 3, chain(3)))
	require.NoError(t, err)
	assert.InDelta(t, 8.0/6.0, apl, 1e-12)

	// Complete graph K4: every pair at distance 1.
	k4 := mustGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	apl, err = bfs.AveragePathLength(ctx, k4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, apl)

	// Unreachable pairs are excluded: two disjoint edges.
	apl, err = bfs.AveragePathLength(ctx, mustGraph(t, 4, [][2]int{{0, 1}, {2, 3}}))
	require.NoError(t, err)
	assert.Equal(t, 1.0, apl)

	// No reachable pair at all.
	apl, err = bfs.AveragePathLength(ctx, mustGraph(t, 3, nil))
	require.NoError(t, err)
	assert.Equal(t, 0.0, apl)
	assert.False(t, math.IsNaN(apl))
}

func TestAveragePathLength_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.AveragePathLength(ctx, mustGraph(t, 10, chain(10)))
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = bfs.AveragePathLength(context.Background(), nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestAveragePathLength_Asymmetric(t *testing.T) {
	t.Parallel()

	// 0→1→2 only: ordered reachable pairs (0,1)=1, (0,2)=2, (1,2)=1.
	g, err := core.FromAdjacency[int]([][]int{{1}, {2}, {}})
	require.NoError(t, err)
	apl, err := bfs.AveragePathLength(context.Background(), g)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, apl, 1e-12)
}
