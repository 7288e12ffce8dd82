// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates a vertex count below the constructor's minimum.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability (p or beta) lies outside
// the closed interval [0,1] or is NaN.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidDegree indicates a lattice degree k that is negative, odd, or not
// smaller than the vertex count.
var ErrInvalidDegree = errors.New("builder: invalid lattice degree")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not complete without
// breaking invariants: rewiring found no admissible target within the attempt
// budget, the parameters admit no target at all, or constructors were composed
// in an unsupported order. Reported once, at construction time.
// Usage: if errors.Is(err, ErrConstructFailed) { /* retry with other n/k or seed */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// Priority (tie-break when multiple validations fail):
//   • ErrTooFewVertices     - size checks first (n).
//   • ErrInvalidDegree      - then lattice degree (k).
//   • ErrInvalidProbability - then probability ranges.
//   • ErrNeedRandSource     - then RNG presence for stochastic builders.
//   • ErrConstructFailed    - only after feasibility checks or attempts are exhausted.
