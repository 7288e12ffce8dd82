// SPDX-License-Identifier: MIT
// Package: epinet/converters
//
// options.go - functional options for the loader.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs; Read never panics.
//   • Defaults: permissive symmetry, DefaultMaxVertices, DefaultMaxLineBytes.

package converters

// DefaultMaxVertices bounds the declared vertex count so a corrupt header
// cannot request an unbounded allocation.
const DefaultMaxVertices = 1 << 24

// DefaultMaxLineBytes bounds a single neighbor line.
const DefaultMaxLineBytes = 16 << 20

// Option customizes a load.
type Option func(*readConfig)

type readConfig struct {
	strictSymmetry bool
	maxVertices    int
	maxLineBytes   int
}

func newReadConfig(opts ...Option) readConfig {
	cfg := readConfig{
		strictSymmetry: false,
		maxVertices:    DefaultMaxVertices,
		maxLineBytes:   DefaultMaxLineBytes,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStrictSymmetry rejects files where some u lists v without v listing u
// equally often (ErrAsymmetric).
func WithStrictSymmetry() Option {
	return func(c *readConfig) {
		c.strictSymmetry = true
	}
}

// WithMaxVertices caps the declared vertex count; larger counts fail with
// ErrMalformedCount. Panics if n < 0.
func WithMaxVertices(n int) Option {
	if n < 0 {
		panic("converters: WithMaxVertices(n<0)")
	}
	return func(c *readConfig) {
		c.maxVertices = n
	}
}

// WithMaxLineBytes caps the length of one line. Panics if n < 1.
func WithMaxLineBytes(n int) Option {
	if n < 1 {
		panic("converters: WithMaxLineBytes(n<1)")
	}
	return func(c *readConfig) {
		c.maxLineBytes = n
	}
}
