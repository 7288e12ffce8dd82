// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapping a sentinel when its precondition
// is violated.
package builder

import (
	"fmt"
	"math"
)

// validateVertices ensures n ≥ MinVertices.
// Returns "<Method>: n=<n> < min=1: builder: parameter too small" otherwise.
//
// Complexity: O(1) time and space.
func validateVertices(method string, n int) error {
	if n < MinVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, MinVertices, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability] and rejects NaN.
// name is the parameter label used in the message ("p", "beta").
//
// Complexity: O(1) time and space.
func validateProbability(method, name string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: %s=%.6f not in [%.1f,%.1f]: %w",
			method, name, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateLatticeDegree enforces 0 ≤ k < n with k even, so that every vertex
// has k/2 distinct neighbors on each side of the ring.
//
// Complexity: O(1) time and space.
func validateLatticeDegree(method string, n, k int) error {
	switch {
	case k < 0:
		return fmt.Errorf("%s: k=%d is negative: %w", method, k, ErrInvalidDegree)
	case k%2 != 0:
		return fmt.Errorf("%s: k=%d must be even: %w", method, k, ErrInvalidDegree)
	case k >= n:
		return fmt.Errorf("%s: k=%d must be < n=%d: %w", method, k, n, ErrInvalidDegree)
	}

	return nil
}
