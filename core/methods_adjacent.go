// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Adjacent), edge count and structural checks.
// Determinism:
//   - Neighbors() returns IDs in stored (insertion) order, never re-sorted.
// Notes:
//   - EdgeCount assumes the symmetry invariant; IsSymmetric verifies it.

package core

// Neighbors returns a copy of id's neighbor list in stored order.
//
// The copy is independent of the graph: appending to or overwriting it has no
// effect on the topology.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(deg(id)) time and space.
func (g *Graph[T]) Neighbors(id int) ([]int, error) {
	if err := g.checkID("Neighbors", id); err != nil {
		return nil, err
	}
	src := g.vertices[id].neighbors
	out := make([]int, len(src))
	copy(out, src)

	return out, nil
}

// Adjacent reports whether b appears in a's neighbor list.
//
// Only a's list is scanned, so for an asymmetric graph Adjacent(a,b) and
// Adjacent(b,a) may differ. Both IDs are validated.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(deg(a)).
func (g *Graph[T]) Adjacent(a, b int) (bool, error) {
	if err := g.checkID("Adjacent", a); err != nil {
		return false, err
	}
	if err := g.checkID("Adjacent", b); err != nil {
		return false, err
	}

	return g.lists(a, b), nil
}

// EdgeCount returns Σdeg(v)/2.
//
// Precondition: the graph is symmetric. For an asymmetric graph (possible only
// through file loading) the value has no meaning; it is still returned without
// error so batch callers are never interrupted.
//
// Complexity: O(V).
func (g *Graph[T]) EdgeCount() int {
	total := 0
	for i := range g.vertices {
		total += len(g.vertices[i].neighbors)
	}

	return total / 2
}

// IsSymmetric reports whether every listed pair is listed in both directions
// with the same multiplicity.
//
// Complexity: O(V + Σdeg) time, O(Σdeg) space.
func (g *Graph[T]) IsSymmetric() bool {
	// directed pair → net count; +1 for (u,v) with u<v, -1 for (v,u).
	balance := make(map[[2]int]int)
	for u := range g.vertices {
		for _, v := range g.vertices[u].neighbors {
			if u < v {
				balance[[2]int{u, v}]++
			} else {
				balance[[2]int{v, u}]--
			}
		}
	}
	for _, c := range balance {
		if c != 0 {
			return false
		}
	}

	return true
}

// IsSimple reports whether no neighbor list contains a duplicate ID.
// Self-loops cannot occur (constructors reject them).
//
// Complexity: O(V + Σdeg) time, O(max deg) space.
func (g *Graph[T]) IsSimple() bool {
	seen := make(map[int]struct{})
	for u := range g.vertices {
		clear(seen)
		for _, v := range g.vertices[u].neighbors {
			if _, dup := seen[v]; dup {
				return false
			}
			seen[v] = struct{}{}
		}
	}

	return true
}

// lists is the unchecked form of Adjacent.
func (g *Graph[T]) lists(a, b int) bool {
	for _, v := range g.vertices[a].neighbors {
		if v == b {
			return true
		}
	}

	return false
}
