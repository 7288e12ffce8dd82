// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Graph and Topology declarations plus sentinel errors.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an ID outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrSelfLoop indicates a vertex listing itself as a neighbor.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeSize indicates a negative vertex count passed to a constructor.
	ErrNegativeSize = errors.New("core: negative vertex count")
)

// Vertex is a single network node: an opaque payload plus its neighbor IDs.
type Vertex[T any] struct {
	// Payload is the caller-defined data attached to the vertex.
	Payload T

	// neighbors holds adjacent vertex IDs in insertion order.
	neighbors []int
}

// Graph is an ordered sequence of vertices indexed 0..N-1.
//
// The zero value is an empty graph with N == 0. Topology is fixed at
// construction; only payloads change afterwards.
type Graph[T any] struct {
	vertices []Vertex[T]
}

// Topology is the read-only structural view shared by every Graph[T],
// regardless of payload type. Analysis packages accept it instead of a
// concrete Graph so they stay payload-agnostic.
type Topology interface {
	// VertexCount returns N.
	VertexCount() int
	// HasVertex reports whether 0 <= id < N.
	HasVertex(id int) bool
	// Degree returns the length of id's neighbor list.
	Degree(id int) (int, error)
	// Neighbors returns a copy of id's neighbor list in stored order.
	Neighbors(id int) ([]int, error)
	// Adjacent reports whether b appears in a's neighbor list.
	Adjacent(a, b int) (bool, error)
}

// compile-time check
var _ Topology = (*Graph[struct{}])(nil)
