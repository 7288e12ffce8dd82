// File: methods_vertices.go
// Role: Vertex existence, counts, degrees and payload access.
// Determinism:
//   - Degrees() is indexed by vertex ID.
// Safety:
//   - Every ID-taking method validates the ID first and returns
//     ErrVertexOutOfRange instead of touching the backing slice.

package core

import "fmt"

// HasVertex reports whether id addresses a vertex, i.e. 0 <= id < N.
// Complexity: O(1).
func (g *Graph[T]) HasVertex(id int) bool {
	return id >= 0 && id < len(g.vertices)
}

// VertexCount returns the number of vertices N.
// Complexity: O(1).
func (g *Graph[T]) VertexCount() int {
	return len(g.vertices)
}

// Degree returns the length of id's neighbor list (duplicates included).
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(1).
func (g *Graph[T]) Degree(id int) (int, error) {
	if err := g.checkID("Degree", id); err != nil {
		return 0, err
	}

	return len(g.vertices[id].neighbors), nil
}

// Degrees returns the degree of every vertex, indexed by ID.
// Complexity: O(V).
func (g *Graph[T]) Degrees() []int {
	out := make([]int, len(g.vertices))
	for i := range g.vertices {
		out[i] = len(g.vertices[i].neighbors)
	}

	return out
}

// Payload returns a copy of id's payload. Mutating the returned value does not
// affect the graph; use SetPayload or PayloadPtr for that.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(1).
func (g *Graph[T]) Payload(id int) (T, error) {
	if err := g.checkID("Payload", id); err != nil {
		var zero T
		return zero, err
	}

	return g.vertices[id].Payload, nil
}

// Payloads returns a copy of every payload, indexed by ID.
// Complexity: O(V).
func (g *Graph[T]) Payloads() []T {
	out := make([]T, len(g.vertices))
	for i := range g.vertices {
		out[i] = g.vertices[i].Payload
	}

	return out
}

// PayloadPtr returns a pointer to id's payload for in-place mutation.
//
// The pointer stays valid for the lifetime of the Graph: the vertex slice is
// never reallocated after construction. It must not be shared with a Clone.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(1).
func (g *Graph[T]) PayloadPtr(id int) (*T, error) {
	if err := g.checkID("PayloadPtr", id); err != nil {
		return nil, err
	}

	return &g.vertices[id].Payload, nil
}

// SetPayload replaces id's payload with p.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(1).
func (g *Graph[T]) SetPayload(id int, p T) error {
	if err := g.checkID("SetPayload", id); err != nil {
		return err
	}
	g.vertices[id].Payload = p

	return nil
}

// checkID wraps ErrVertexOutOfRange with the calling method and the ID.
func (g *Graph[T]) checkID(method string, id int) error {
	if id < 0 || id >= len(g.vertices) {
		return fmt.Errorf("%s(%d): n=%d: %w", method, id, len(g.vertices), ErrVertexOutOfRange)
	}

	return nil
}
