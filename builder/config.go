// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng               = nil                       (pure/deterministic unless seeded)
//   • maxRewireAttempts = DefaultMaxRewireAttempts  (per rewired edge)
//   • logger            = nil                       (silent)

package builder

import (
	"math/rand" // RNG for stochastic builders

	"github.com/charmbracelet/log"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Upper bound on target draws per rewired edge (Watts–Strogatz).
	maxRewireAttempts int
	// Optional diagnostics sink; nil disables logging.
	logger *log.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:               nil,
		maxRewireAttempts: DefaultMaxRewireAttempts,
		logger:            nil,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// debug forwards to the configured logger, if any.
func (c builderConfig) debug(msg string, keyvals ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, keyvals...)
	}
}
