// File: methods_clone.go
// Role: Deep copy of a Graph.

package core

// Clone returns a deep copy of the Graph: payloads are copied by value and every
// neighbor list gets its own backing array, so mutating either graph never
// affects the other.
//
// Payload types holding pointers, maps or slices are copied shallowly (Go value
// semantics); such payloads should be treated as immutable or replaced whole.
//
// Complexity: O(V + Σdeg).
func (g *Graph[T]) Clone() *Graph[T] {
	clone := &Graph[T]{vertices: make([]Vertex[T], len(g.vertices))}
	for i := range g.vertices {
		clone.vertices[i].Payload = g.vertices[i].Payload
		if nbrs := g.vertices[i].neighbors; len(nbrs) > 0 {
			clone.vertices[i].neighbors = append(make([]int, 0, len(nbrs)), nbrs...)
		}
	}

	return clone
}
