// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph[T](bopts, cons...). Resolves cfg, runs cons in order
//     over a private adjacency, then freezes it into a core.Graph[T].
//   - Public factories are declared here and implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Never insert self-loops.
//   - Preserve determinism for the same config and call order.
//
// Constructors work on the builder's private adjacency; the resulting
// core.Graph exposes no edge mutation afterwards.
type Constructor func(t *topology, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the frozen graph with zero-value payloads.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; nothing partial is returned.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying constructors: Σ cost of each constructor, plus O(V+E) to freeze.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     ErrTooFewVertices, ErrInvalidProbability, ErrInvalidDegree,
//     ErrNeedRandSource, ErrConstructFailed.
func BuildGraph[T any](bopts []BuilderOption, cons ...Constructor) (*core.Graph[T], error) {
	cfg := newBuilderConfig(bopts...)
	t := &topology{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.FromAdjacency[T](t.adj)
	if err != nil {
		// Constructors never produce out-of-range IDs or loops; reaching this
		// means a constructor broke its contract.
		return nil, fmt.Errorf("BuildGraph: freeze: %v: %w", err, ErrConstructFailed)
	}

	return g, nil
}

// NewErdosRenyi builds an n-vertex Erdős–Rényi graph with edge probability p.
// Shorthand for BuildGraph[T](opts, ErdosRenyi(n, p)).
func NewErdosRenyi[T any](n int, p float64, opts ...BuilderOption) (*core.Graph[T], error) {
	return BuildGraph[T](opts, ErdosRenyi(n, p))
}

// NewWattsStrogatz builds an n-vertex Watts–Strogatz small-world graph with
// mean degree k and rewiring probability beta.
// Shorthand for BuildGraph[T](opts, WattsStrogatz(n, k, beta)).
func NewWattsStrogatz[T any](n, k int, beta float64, opts ...BuilderOption) (*core.Graph[T], error) {
	return BuildGraph[T](opts, WattsStrogatz(n, k, beta))
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// ErdosRenyi samples every unordered pair {i,j} once with probability p.
// Requires cfg.rng != nil when 0 < p < 1.
// Complexity: O(n^2) Bernoulli trials.
//func ErdosRenyi(n int, p float64) Constructor

// RingLattice links every vertex to its k/2 nearest neighbors on each side of a ring.
// Complexity: O(n*k).
//func RingLattice(n, k int) Constructor

// WattsStrogatz builds RingLattice(n, k) and rewires its clockwise half with probability beta.
// Requires cfg.rng != nil when beta > 0.
// Complexity: O(n*k*(k + attempts)) worst case, ~O(n*k^2) for n >> k.
//func WattsStrogatz(n, k int, beta float64) Constructor
