// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors that create a Graph whole from a complete topology.
// Policy:
//   - Inputs are validated before anything is allocated for the result.
//   - Inputs are deep-copied; the caller may reuse its slices afterwards.
//   - No public edge insertion exists once a Graph is returned.

package core

import "fmt"

// FromAdjacency creates a Graph with len(adj) vertices whose neighbor lists
// are copies of adj[i], in the given order. Payloads are zero values.
//
// Validation:
//   - every listed ID must lie in [0, len(adj)) → ErrVertexOutOfRange;
//   - no vertex may list itself → ErrSelfLoop.
//
// Symmetry is NOT checked or repaired; see IsSymmetric.
//
// Complexity: O(V + Σdeg) time and space.
func FromAdjacency[T any](adj [][]int) (*Graph[T], error) {
	n := len(adj)
	for v, nbrs := range adj {
		for _, u := range nbrs {
			if u < 0 || u >= n {
				return nil, fmt.Errorf("FromAdjacency: vertex %d lists %d (n=%d): %w", v, u, n, ErrVertexOutOfRange)
			}
			if u == v {
				return nil, fmt.Errorf("FromAdjacency: vertex %d: %w", v, ErrSelfLoop)
			}
		}
	}

	g := &Graph[T]{vertices: make([]Vertex[T], n)}
	for v, nbrs := range adj {
		if len(nbrs) == 0 {
			continue
		}
		g.vertices[v].neighbors = append(make([]int, 0, len(nbrs)), nbrs...)
	}

	return g, nil
}

// FromEdges creates an n-vertex Graph and inserts every pair {u,v} of edges
// in both directions (u gets v appended, then v gets u appended), in order.
//
// Duplicate pairs are inserted as given; callers wanting a simple graph must
// not repeat pairs.
//
// Errors: ErrNegativeSize, ErrVertexOutOfRange, ErrSelfLoop.
//
// Complexity: O(n + len(edges)).
func FromEdges[T any](n int, edges [][2]int) (*Graph[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("FromEdges: n=%d: %w", n, ErrNegativeSize)
	}
	adj := make([][]int, n)
	for i, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("FromEdges: edge #%d {%d,%d} (n=%d): %w", i, u, v, n, ErrVertexOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("FromEdges: edge #%d {%d,%d}: %w", i, u, v, ErrSelfLoop)
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	// adj is private here; hand ownership over without a second copy.
	g := &Graph[T]{vertices: make([]Vertex[T], n)}
	for v := range adj {
		g.vertices[v].neighbors = adj[v]
	}

	return g, nil
}
