// SPDX-License-Identifier: MIT
// Package: epinet/clustering
//
// clustering.go - local and average clustering coefficients.
//
// Counting rule:
//   • k is the stored degree of the vertex (duplicates included).
//   • L counts index pairs i<j of the neighbor list whose IDs differ and are
//     linked in either direction, so an asymmetric file still scores in [0,1].
//
// Complexity: O(Σ_{u∈N(v)} deg(u) + k²) per vertex.

package clustering

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("clustering: graph is nil")

// LocalCoefficient returns 2L/(k(k-1)) for vertex id, or 0 when k ≤ 1.
//
// Errors: ErrGraphNil, and the graph's own error (core.ErrVertexOutOfRange)
// for an invalid id.
func LocalCoefficient(g core.Topology, id int) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return 0, fmt.Errorf("clustering: LocalCoefficient(%d): %w", id, err)
	}
	k := len(nbrs)
	// explicit guard: the denominator is zero for k ≤ 1
	if k <= 1 {
		return 0, nil
	}

	sets, err := neighborSets(g, nbrs)
	if err != nil {
		return 0, fmt.Errorf("clustering: LocalCoefficient(%d): %w", id, err)
	}

	links := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			u, v := nbrs[i], nbrs[j]
			if u == v {
				continue
			}
			if _, ok := sets[u][v]; ok {
				links++
				continue
			}
			if _, ok := sets[v][u]; ok {
				links++
			}
		}
	}

	return 2 * float64(links) / (float64(k) * float64(k-1)), nil
}

// neighborSets indexes the lists of every distinct vertex in nbrs.
func neighborSets(g core.Topology, nbrs []int) (map[int]map[int]struct{}, error) {
	sets := make(map[int]map[int]struct{}, len(nbrs))
	for _, u := range nbrs {
		if _, done := sets[u]; done {
			continue
		}
		list, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		set := make(map[int]struct{}, len(list))
		for _, w := range list {
			set[w] = struct{}{}
		}
		sets[u] = set
	}

	return sets, nil
}

// Coefficients returns LocalCoefficient for every vertex, indexed by ID.
func Coefficients(g core.Topology) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out := make([]float64, g.VertexCount())
	for v := range out {
		c, err := LocalCoefficient(g, v)
		if err != nil {
			return nil, err
		}
		out[v] = c
	}

	return out, nil
}

// Average returns the mean local coefficient over all vertices, 0 for an
// empty graph.
func Average(g core.Topology) (float64, error) {
	coefs, err := Coefficients(g)
	if err != nil {
		return 0, err
	}

	return Mean(coefs), nil
}

// Mean returns the arithmetic mean of values, 0 when empty.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range values {
		sum += x
	}

	return sum / float64(len(values))
}
