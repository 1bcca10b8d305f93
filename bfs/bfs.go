package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bacon/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     *core.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts Options
	ctx  context.Context
	goal string // empty: exhaust the component

	queue      []queueItem
	discovered map[string]bool
	res        *Result
}

// BFS runs breadth-first search on g from startID and explores its whole
// component (subject to MaxDepth).
// Returns ErrGraphNil, ErrVertexNotFound, ErrOptionViolation, a context
// error, or a wrapped OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, startID, "", opts)
	if err != nil {
		return nil, err
	}
	if _, err = w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// FindPath returns the shortest sequence of vertex names from source to
// goal inclusive.
//
// Behavior highlights:
//   - source == goal ⇒ [source].
//   - Unreachable goal ⇒ empty slice and nil error.
//   - Missing source or goal ⇒ ErrVertexNotFound.
//   - The search stops when goal is dequeued.
func FindPath(g *core.Graph, source, goal string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Contains(goal) {
		return nil, fmt.Errorf("%w: goal %q", ErrVertexNotFound, goal)
	}
	w, err := newWalker(g, source, goal, opts)
	if err != nil {
		return nil, err
	}
	found, err := w.loop()
	if err != nil {
		return nil, err
	}
	if !found {
		return []string{}, nil
	}

	return w.res.PathTo(goal), nil
}

func newWalker(g *core.Graph, startID, goal string, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	start, ok := g.FindVertex(startID)
	if !ok {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, startID)
	}

	n := g.Order()
	w := &walker{
		opts:       o,
		ctx:        o.Ctx,
		goal:       goal,
		queue:      make([]queueItem, 0, n),
		discovered: make(map[string]bool, n),
		res: &Result{
			Start:  startID,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w, nil
}

// enqueue marks v discovered at depth d, records its parent and appends it.
func (w *walker) enqueue(v *core.Vertex, d int, parent string) {
	name := v.Name()
	w.discovered[name] = true
	w.res.Depth[name] = d
	if parent != "" {
		w.res.Parent[name] = parent
	}
	w.opts.OnEnqueue(name, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until it is empty, the goal is dequeued, or an
// error occurs. It reports whether the goal was reached.
func (w *walker) loop() (bool, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return false, err
		}
		if w.goal != "" && item.v.Name() == w.goal {
			return true, nil
		}
		w.enqueueNeighbors(item)
	}

	return false, nil
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v.Name(), item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	name := item.v.Name()
	w.res.Order = append(w.res.Order, name)
	if err := w.opts.OnVisit(name, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", name, err)
	}

	return nil
}

// enqueueNeighbors enqueues each undiscovered neighbor in adjacency order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range item.v.Adjacents() {
		if w.discovered[nbr.Name()] {
			continue
		}
		w.enqueue(nbr, nextDepth, item.v.Name())
	}
}
