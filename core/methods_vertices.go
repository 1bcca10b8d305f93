// File: methods_vertices.go
// Role: vertex catalog lifecycle & queries.
//
// Determinism:
//   - Vertices() returns names in registration order.
package core

import "go.uber.org/zap"

// AddVertex registers v unless a vertex with the same name already exists.
//
// Implementation:
//   - Stage 1: Reject nil (ErrNilVertex) and empty names (ErrEmptyVertexID).
//   - Stage 2: If the name is taken, emit a warn-level notice and return nil.
//   - Stage 3: Append to the catalog and increment order.
//
// Behavior highlights:
//   - Idempotent per name: a duplicate insert leaves Order() unchanged and is
//     not an error.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(v *Vertex) error {
	if v == nil {
		return ErrNilVertex
	}
	if v.name == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.byName[v.name]; exists {
		g.log.Warn("duplicate vertex found", zap.String("vertex", v.name))
		return nil
	}

	g.byName[v.name] = v
	g.vertices = append(g.vertices, v)
	g.order++

	return nil
}

// FindVertex returns the vertex named name, or (nil, false) if absent.
func (g *Graph) FindVertex(name string) (*Vertex, bool) {
	v, ok := g.byName[name]

	return v, ok
}

// Vertex returns the vertex named name or ErrVertexNotFound.
func (g *Graph) Vertex(name string) (*Vertex, error) {
	v, ok := g.byName[name]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Contains reports whether a vertex named name exists.
func (g *Graph) Contains(name string) bool {
	_, ok := g.byName[name]

	return ok
}

// Vertices returns all vertex names in registration order.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.name
	}

	return out
}

// Order returns the number of registered vertices.
func (g *Graph) Order() int { return g.order }
