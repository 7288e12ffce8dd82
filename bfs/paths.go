// SPDX-License-Identifier: MIT
// Package: epinet/bfs
//
// paths.go - whole-graph reachability measures built on the walker.
//
// Both functions follow neighbor lists exactly as stored. On a symmetric graph
// Components yields the connected components; on an asymmetric (loaded) graph
// each group is the set newly reachable from its lowest-index seed.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

// Components partitions the vertices into groups reachable from successive
// unvisited seeds, scanned in ascending index order. Each group lists its
// vertices in BFS visit order; the groups are ordered by their seed.
//
// Complexity: O(V + E) time, O(V) memory.
func Components(g core.Topology) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	seen := make([]bool, n)
	var groups [][]int
	queue := make([]int, 0, n)

	for seed := 0; seed < n; seed++ {
		if seen[seed] {
			continue
		}
		seen[seed] = true
		queue = append(queue[:0], seed)
		group := make([]int, 0, 1)

		for head := 0; head < len(queue); head++ {
			cur := queue[head]
			group = append(group, cur)

			nbrs, err := g.Neighbors(cur)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, cur, err)
			}
			for _, nbr := range nbrs {
				if nbr < 0 || nbr >= n {
					return nil, fmt.Errorf("%w: vertex %d lists %d", ErrNeighbors, cur, nbr)
				}
				if !seen[nbr] {
					seen[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// LargestComponentSize returns the size of the biggest group from Components,
// or 0 for an empty graph.
func LargestComponentSize(groups [][]int) int {
	largest := 0
	for _, grp := range groups {
		if len(grp) > largest {
			largest = len(grp)
		}
	}

	return largest
}

// AveragePathLength returns the characteristic path length of g: the mean
// BFS distance over all ordered pairs (s, t), s ≠ t, with t reachable from s.
// Unreachable pairs are excluded; the result is 0 when no pair is reachable.
// One BFS runs per vertex; ctx is checked between and during searches.
//
// Complexity: O(V·(V + E)) time, O(V) memory per search.
func AveragePathLength(ctx context.Context, g core.Topology) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	var total, pairs int64
	for s := 0; s < g.VertexCount(); s++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		res, err := BFS(g, s, WithContext(ctx))
		if err != nil {
			return 0, fmt.Errorf("bfs: AveragePathLength from %d: %w", s, err)
		}
		for _, d := range res.Depth {
			if d > 0 {
				total += int64(d)
				pairs++
			}
		}
	}
	if pairs == 0 {
		return 0, nil
	}

	return float64(total) / float64(pairs), nil
}
