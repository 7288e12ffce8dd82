// SPDX-License-Identifier: MIT
// Package: epinet/converters
//
// errors.go - sentinel errors and the positional ParseError.

package converters

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCount indicates a first line that is not a non-negative
	// decimal vertex count, or a count above the configured maximum.
	ErrMalformedCount = errors.New("converters: malformed vertex count")

	// ErrTruncated indicates fewer neighbor lines than the declared count.
	ErrTruncated = errors.New("converters: truncated input")

	// ErrBadNeighbor indicates a non-numeric token, an out-of-range ID, or a
	// vertex listing itself.
	ErrBadNeighbor = errors.New("converters: bad neighbor entry")

	// ErrTrailingData indicates non-blank content after the last vertex line.
	ErrTrailingData = errors.New("converters: trailing data after last vertex")

	// ErrAsymmetric indicates u lists v without v listing u the same number
	// of times. Reported only under WithStrictSymmetry.
	ErrAsymmetric = errors.New("converters: asymmetric adjacency")
)

// ParseError locates a load failure. Line is 1-based; line 1 is the count.
// Err wraps one of the sentinels above; match with errors.Is.
type ParseError struct {
	Line int
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("converters: line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the underlying sentinel.
func (e *ParseError) Unwrap() error { return e.Err }

// parseErrorf builds a ParseError whose Err wraps sentinel with detail.
func parseErrorf(line int, sentinel error, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: line, Err: fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...)}
}
