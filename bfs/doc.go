// Package bfs provides breadth-first search over a core.Topology,
// returning unweighted shortest-path distances, parent links, and visit order,
// plus the whole-graph measures epinet reports for every network.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: slice indexed by vertex, distance from start or Unreached
//   - Parent: slice indexed by vertex, predecessor in the BFS tree or Unreached
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor entries via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Components and AveragePathLength summarize reachability for a whole graph.
//
// Determinism
//
//	Neighbor lists are walked in stored order, so the visit sequence is fully
//	reproducible for a given graph and start vertex.
//
// Direction
//
//	Lists are followed exactly as stored. Builders produce symmetric graphs;
//	a loaded file may not be, in which case reachability is directional.
//
// Complexity (V = |Vertices|, E = Σdeg)
//
//   - BFS:               O(V + E) time, O(V) memory
//   - Components:        O(V + E)
//   - AveragePathLength: O(V·(V + E))
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//	path, err := res.PathTo(42)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if Neighbors fails or lists an out-of-range index.
//   - ctx.Err() on cancellation and wrapped OnVisit errors.
package bfs
