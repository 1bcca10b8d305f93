package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/bacon/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVertexNotFound is returned when the source or goal is absent.
	ErrVertexNotFound = fmt.Errorf("bfs: %w", core.ErrVertexNotFound)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// the search starts.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation; the default never cancels.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued.
	OnEnqueue func(id string, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(id string, depth int)

	// OnVisit is called when visiting a vertex. A non-nil error aborts the
	// search and is returned wrapped.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, no-op hooks and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
		OnVisit:   func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: vertex name → hop count from the start (discovered vertices).
//   - Parent: vertex name → first discoverer; the start has no entry.
type Result struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the path from the start vertex to dest by walking
// parent links back and reversing. An undiscovered dest yields an empty
// slice.
func (r *Result) PathTo(dest string) []string {
	if _, ok := r.Depth[dest]; !ok {
		return []string{}
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
