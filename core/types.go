package core

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates a nil *Vertex was passed where a vertex is required.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrEmptyVertexID indicates that the provided Vertex has an empty name.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Vertex represents one actor in the graph.
//
// adjacents keeps neighbors in first-insertion order; adjIndex mirrors it
// for O(1) membership. edges maps a neighbor name to the connecting label.
type Vertex struct {
	name      string
	adjacents []*Vertex
	adjIndex  map[string]struct{}
	edges     map[string]string
}

// NewVertex returns an isolated vertex named name.
func NewVertex(name string) *Vertex {
	return &Vertex{
		name:     name,
		adjIndex: make(map[string]struct{}),
		edges:    make(map[string]string),
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLogger routes diagnostic notices (duplicate vertices) to l.
// A nil logger keeps the default no-op logger.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph is an undirected collection of uniquely named vertices.
//
// order counts registered vertices; size counts AddEdge calls, so an
// undirected relation reported from both endpoints is counted twice.
type Graph struct {
	log *zap.Logger

	order int
	size  int

	// vertices holds registration order; byName indexes it.
	vertices []*Vertex
	byName   map[string]*Vertex
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		log:    zap.NewNop(),
		byName: make(map[string]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
