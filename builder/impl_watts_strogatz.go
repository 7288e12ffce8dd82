// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_watts_strogatz.go - implementation of WattsStrogatz(n, k, beta) constructor.
//
// Canonical model:
//   • Phase 1: RingLattice(n, k).
//   • Phase 2: for every vertex v (ascending), rewire its clockwise block only, so
//     each undirected lattice edge is examined exactly once across the graph.
//     For each of the k/2 clockwise entries, one Bernoulli(beta) trial; on success
//     a new target is drawn uniformly from [0,n) by rejection (≠ v, not already
//     listed by v), then:
//         old target drops v   (first occurrence)
//         new target appends v
//         v's entry is overwritten in place
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • k even, 0 ≤ k < n (else ErrInvalidDegree).
//   • 0 ≤ beta ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when beta > 0 (else ErrNeedRandSource).
//   • beta > 0 with k ≥ n-1 leaves no admissible target (else ErrConstructFailed).
//   • Must run on an empty topology (else ErrConstructFailed).
//   • Rewiring never changes the initiator's degree; the old target loses one
//     edge and the new target gains one. Σdeg == n·k, symmetry and simplicity
//     are preserved, and every vertex keeps at least k/2 neighbors.
//
// Complexity:
//   • Lattice O(n·k); rewiring O(n·k·(k + draws)), ~O(n·k²) when n >> k.
//
// Determinism:
//   • Fixed vertex order, fixed entry order and fixed draw order per seed.

package builder

import (
	"fmt"
	"math/rand"
)

// WattsStrogatz returns a Constructor that builds a small-world network by
// rewiring a ring lattice.
func WattsStrogatz(n, k int, beta float64) Constructor {
	return func(t *topology, cfg builderConfig) error {
		// 1) Validate parameters (fail fast; zero side-effects on invalid input).
		if err := validateVertices(MethodWattsStrogatz, n); err != nil {
			return err
		}
		if err := validateLatticeDegree(MethodWattsStrogatz, n, k); err != nil {
			return err
		}
		if err := validateProbability(MethodWattsStrogatz, "beta", beta); err != nil {
			return err
		}
		if cfg.rng == nil && beta > MinProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodWattsStrogatz, ErrNeedRandSource)
		}
		half := k / 2
		if beta > MinProbability && half > 0 && k >= n-1 {
			return fmt.Errorf("%s: k=%d leaves no rewiring target among n=%d vertices: %w",
				MethodWattsStrogatz, k, n, ErrConstructFailed)
		}
		if len(t.adj) != 0 {
			return fmt.Errorf("%s: requires an empty topology, found %d vertices: %w",
				MethodWattsStrogatz, len(t.adj), ErrConstructFailed)
		}

		// 2) Phase 1: regular ring lattice.
		t.adj = make([][]int, n)
		fillRingLattice(t.adj, n, half)

		// 3) Phase 2: rewiring. Nothing to do for an empty lattice or beta == 0.
		if half == 0 || beta <= MinProbability {
			cfg.debug("watts-strogatz built without rewiring", "n", n, "k", k, "beta", beta)
			return nil
		}

		stats, err := rewireClockwise(t.adj, n, half, beta, cfg.rng, cfg.maxRewireAttempts)
		if err != nil {
			return err
		}
		cfg.debug("watts-strogatz rewired",
			"n", n, "k", k, "beta", beta, "rewired", stats.rewired, "draws", stats.draws)

		return nil
	}
}

// rewireStats summarizes one rewiring pass.
type rewireStats struct {
	rewired int // edges moved to a new target
	draws   int // target draws including rejected ones
}

// rewireClockwise runs Phase 2 over a freshly built lattice.
func rewireClockwise(adj [][]int, n, half int, beta float64, rng *rand.Rand, maxAttempts int) (rewireStats, error) {
	var stats rewireStats
	for v := 0; v < n; v++ {
		if err := rewireVertex(adj, v, n, half, beta, rng, maxAttempts, &stats); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

// rewireVertex rewires the clockwise block of v. len(adj[v]) is unchanged on return.
func rewireVertex(adj [][]int, v, n, half int, beta float64, rng *rand.Rand, maxAttempts int, stats *rewireStats) error {
	// Split point computed once; only v itself writes inside [start, start+half).
	start := clockwiseStart(adj[v], v, n, half)
	if start < 0 || start+half > len(adj[v]) {
		return fmt.Errorf("%s: clockwise block of vertex %d not found: %w",
			MethodWattsStrogatz, v, ErrConstructFailed)
	}

	for i := start; i < start+half; i++ {
		if !bernoulli(rng, beta) {
			continue
		}

		target, draws, ok := drawTarget(rng, adj[v], v, n, maxAttempts)
		stats.draws += draws
		if !ok {
			return fmt.Errorf("%s: no admissible target for vertex %d after %d draws: %w",
				MethodWattsStrogatz, v, draws, ErrConstructFailed)
		}

		old := adj[v][i]
		adj[old] = removeFirst(adj[old], v)
		adj[target] = append(adj[target], v)
		adj[v][i] = target
		stats.rewired++
	}

	return nil
}

// clockwiseStart returns the index of the first entry of nbrs that lies in the
// window [v+1, v+half]. When v+1 wraps past n-1 the window is shifted by -n.
// Returns -1 when no entry matches.
func clockwiseStart(nbrs []int, v, n, half int) int {
	lo, hi := v+1, v+half
	if lo >= n {
		lo -= n
		hi -= n
	}
	for i, u := range nbrs {
		if lo <= u && u <= hi {
			return i
		}
	}

	return -1
}

// drawTarget samples uniformly from [0,n) until the candidate is neither self
// nor present in current, giving up after maxAttempts draws.
func drawTarget(rng *rand.Rand, current []int, self, n, maxAttempts int) (target, draws int, ok bool) {
	for draws < maxAttempts {
		draws++
		c := rng.Intn(n)
		if c != self && !contains(current, c) {
			return c, draws, true
		}
	}

	return -1, draws, false
}
