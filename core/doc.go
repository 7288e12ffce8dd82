// Package core provides the generic, index-addressed network used as the
// substrate for epidemic-spread simulation.
//
// A Graph[T] G = (V,E) is an ordered slice of vertices addressed by dense
// integer IDs in [0, N). Each vertex carries:
//
//   - a caller-defined payload of type T (zero value by default, copied by value);
//   - an ordered neighbor list ([]int) whose insertion order is preserved so that
//     randomized builders stay reproducible for a fixed seed.
//
// Invariants:
//
//   - No self-loops: every constructor in this module rejects v→v.
//   - Intended symmetry: if i lists j, j is expected to list i. Symmetry is
//     guaranteed by the random builders, NOT by file loading; use IsSymmetric
//     to verify a graph obtained elsewhere.
//   - Multiplicity: neighbor lists are not guaranteed duplicate-free (IsSimple).
//
// Lifecycle:
//
//	FromAdjacency / FromEdges / builder.BuildGraph / converters.Read
//	        │  (topology fixed from here on)
//	        ▼
//	Payload / PayloadPtr / SetPayload   ← the only mutations
//	        │
//	        ▼
//	Clone()                              ← deep copy, no shared storage
//
// Query methods:
//
//	HasVertex(id) bool                     // O(1)
//	Adjacent(a, b) (bool, error)           // O(deg(a))
//	Neighbors(id) ([]int, error)           // O(deg(id)), copy in stored order
//	Degree(id) (int, error)                // O(1)
//	VertexCount() int                      // O(1)
//	EdgeCount() int                        // O(V), Σdeg/2, symmetric graphs only
//	Payloads() []T                         // O(V), copy indexed by ID
//
// Invalid IDs never read out of bounds: every accessor returns
// ErrVertexOutOfRange wrapped with the offending ID.
//
// Concurrency: a Graph is owned by the scope that built it. It carries no locks;
// callers that share one across goroutines must synchronize themselves, or Clone.
package core
