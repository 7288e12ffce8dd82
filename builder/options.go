// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand" // RNG source for stochastic builders

	"github.com/charmbracelet/log"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and experiments to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxRewireAttempts bounds the rejection sampling performed for every
// rewired Watts–Strogatz edge. Exhaustion fails the build with ErrConstructFailed.
// Panics if n < 1.
func WithMaxRewireAttempts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxRewireAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxRewireAttempts = n
	}
}

// WithLogger routes construction diagnostics (edge counts, rewiring
// statistics) to l at debug level. Panics on nil.
func WithLogger(l *log.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
