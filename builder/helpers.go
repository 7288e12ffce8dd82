// Package builder provides internal helper functions used by Constructor
// implementations to build and mutate the private adjacency.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Index-based slice manipulation only; no iterator invalidation hazards.
package builder

import (
	"fmt"
	"math/rand"
)

// topology is the mutable adjacency a Constructor works on. Vertex v's
// neighbors live in adj[v] in insertion order.
type topology struct {
	adj [][]int
}

// ensure sizes an empty topology to n vertices. Composing constructors over
// the same vertex set is allowed; a size mismatch is not.
//
// Complexity: O(n) on first call, O(1) afterwards.
func (t *topology) ensure(method string, n int) error {
	switch len(t.adj) {
	case 0:
		t.adj = make([][]int, n)
	case n:
	default:
		return fmt.Errorf("%s: n=%d conflicts with existing %d vertices: %w",
			method, n, len(t.adj), ErrConstructFailed)
	}

	return nil
}

// link appends v to u's list and u to v's list.
func (t *topology) link(u, v int) {
	t.adj[u] = append(t.adj[u], v)
	t.adj[v] = append(t.adj[v], u)
}

// edgeCount returns Σdeg/2 over the current adjacency.
func (t *topology) edgeCount() int {
	total := 0
	for _, nbrs := range t.adj {
		total += len(nbrs)
	}

	return total / 2
}

// bernoulli reports a success with probability p on the discrete grid
// {0, 1/ProbabilityResolution, …}: success iff draw ≤ p.
//
// p ≤ 0 never succeeds and p ≥ 1 always succeeds; neither consumes a draw,
// so rng may be nil for those two cases.
func bernoulli(rng *rand.Rand, p float64) bool {
	switch {
	case p <= MinProbability:
		return false
	case p >= MaxProbability:
		return true
	}
	draw := float64(rng.Intn(ProbabilityResolution)) / ProbabilityResolution

	return draw <= p
}

// contains reports whether id occurs in ids.
func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}

// removeFirst deletes the first occurrence of id from ids, preserving order.
// Returns ids unchanged when id is absent.
func removeFirst(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
