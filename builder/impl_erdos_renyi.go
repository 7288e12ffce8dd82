// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_erdos_renyi.go - implementation of ErdosRenyi(n, p) constructor.
//
// Canonical model:
//   - G(n, p): include each unordered pair {i,j}, i<j, independently with probability p.
//   - One Bernoulli trial per pair on the ProbabilityResolution grid (draw ≤ p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - p == 0 yields no edges; p == 1 yields the complete graph; neither draws.
//   - Every accepted pair appends j to i and i to j exactly once → simple, symmetric.
//
// Complexity:
//   - Time: O(n²) trials.
//   - Space: O(n + E).
//
// Determinism:
//   - Stable edge-trial order: i asc, then j asc (j > i).
//   - Identical graphs for a fixed seed.

package builder

import "fmt"

// ErdosRenyi returns a Constructor that samples an Erdős–Rényi graph over n
// vertices with independent edge probability p.
func ErdosRenyi(n int, p float64) Constructor {
	return func(t *topology, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateVertices(MethodErdosRenyi, n); err != nil {
			return err
		}
		if err := validateProbability(MethodErdosRenyi, "p", p); err != nil {
			return err
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodErdosRenyi, ErrNeedRandSource)
		}

		// 2) Size the vertex set.
		if err := t.ensure(MethodErdosRenyi, n); err != nil {
			return err
		}
		before := t.edgeCount()

		// 3) One trial per unordered pair in a stable order.
		if p > MinProbability {
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if bernoulli(cfg.rng, p) {
						t.link(i, j)
					}
				}
			}
		}

		cfg.debug("erdos-renyi sampled",
			"n", n, "p", p, "edges", t.edgeCount()-before, "expected", p*float64(n)*float64(n-1)/2)

		return nil
	}
}
