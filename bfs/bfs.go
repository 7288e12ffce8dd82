// Package bfs provides breadth-first search over a core.Topology,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph core.Topology
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
// The partial result is returned alongside traversal errors.
func BFS(g core.Topology, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res:   newResult(start, n),
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, Unreached)
	// Main loop
	return w.res, w.loop()
}

// newResult allocates a result with every vertex marked Unreached.
func newResult(start, n int) *BFSResult {
	res := &BFSResult{
		Start:  start,
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = Unreached
		res.Parent[i] = Unreached
	}

	return res
}

// enqueue marks id discovered at depth d, records its parent,
// calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each undiscovered neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	// cancellation check before expanding the frontier
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if nbr < 0 || nbr >= len(w.res.Depth) {
			return fmt.Errorf("%w: vertex %d lists %d", ErrNeighbors, item.id, nbr)
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		// duplicates in a loaded list are discovered once
		if w.res.Depth[nbr] == Unreached {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
