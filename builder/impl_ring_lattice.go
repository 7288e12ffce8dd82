// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_ring_lattice.go - implementation of RingLattice(n, k) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • k even, 0 ≤ k < n (else ErrInvalidDegree).
//   • Vertex v lists, in this order:
//       v-1, v-2, …, v-k/2   (counter-clockwise, mod n)
//       v+1, v+2, …, v+k/2   (clockwise, mod n)
//   • Every vertex ends with degree exactly k; the result is simple and symmetric.
//
// Complexity:
//   • Time: O(n·k).
//   • Space: O(n·k).
//
// Determinism:
//   • Fully deterministic; no RNG involved.

package builder

// RingLattice returns a Constructor that builds the regular ring lattice
// underlying the Watts–Strogatz model.
func RingLattice(n, k int) Constructor {
	return func(t *topology, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if err := validateVertices(MethodRingLattice, n); err != nil {
			return err
		}
		if err := validateLatticeDegree(MethodRingLattice, n, k); err != nil {
			return err
		}
		if err := t.ensure(MethodRingLattice, n); err != nil {
			return err
		}

		fillRingLattice(t.adj, n, k/2)
		cfg.debug("ring lattice built", "n", n, "k", k)

		return nil
	}
}

// fillRingLattice appends the lattice neighbors of every vertex.
// Each vertex writes only its own list, so the per-vertex order is exactly
// counter-clockwise block then clockwise block.
func fillRingLattice(adj [][]int, n, half int) {
	for v := 0; v < n; v++ {
		nbrs := make([]int, 0, 2*half)
		for j := 1; j <= half; j++ {
			nbrs = append(nbrs, (v-j+n)%n)
		}
		for j := 1; j <= half; j++ {
			nbrs = append(nbrs, (v+j)%n)
		}
		adj[v] = append(adj[v], nbrs...)
	}
}
