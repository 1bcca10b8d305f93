// File: methods_vertex.go
// Role: per-vertex adjacency and edge-label bookkeeping.
//
// Determinism:
//   - Adjacents() returns neighbors in first-insertion order.
package core

// Name returns the vertex name.
func (v *Vertex) Name() string { return v.name }

// Order returns the number of distinct neighbors.
func (v *Vertex) Order() int { return len(v.adjacents) }

// AddNeighbor appends n to the adjacency list.
//
// Behavior highlights:
//   - nil is ignored.
//   - A neighbor already present (by name) is not appended again; its
//     original position is kept, so traversal order is that of the first
//     insertion.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (v *Vertex) AddNeighbor(n *Vertex) {
	if n == nil {
		return
	}
	if _, ok := v.adjIndex[n.name]; ok {
		return
	}
	v.adjIndex[n.name] = struct{}{}
	v.adjacents = append(v.adjacents, n)
}

// IsAdjacent reports whether a neighbor named name has been added.
func (v *Vertex) IsAdjacent(name string) bool {
	_, ok := v.adjIndex[name]

	return ok
}

// Adjacents returns a copy of the neighbor list in insertion order.
// The returned *Vertex values are live; treat them as read-only.
func (v *Vertex) Adjacents() []*Vertex {
	out := make([]*Vertex, len(v.adjacents))
	copy(out, v.adjacents)

	return out
}

// AdjacentNames returns neighbor names in insertion order.
func (v *Vertex) AdjacentNames() []string {
	out := make([]string, len(v.adjacents))
	for i, n := range v.adjacents {
		out[i] = n.name
	}

	return out
}

// MakeEdge records label under key unless key already has a label.
//
// Behavior highlights:
//   - First write wins: later calls for the same key are ignored, even with
//     a different label.
//   - An empty key is ignored; Edge("") always reports no value.
//   - An empty label is stored as-is and blocks later labels for key.
//
// An edge label may be recorded without a matching adjacency entry.
func (v *Vertex) MakeEdge(key, label string) {
	if key == "" {
		return
	}
	if _, ok := v.edges[key]; ok {
		return
	}
	v.edges[key] = label
}

// Edge returns the label stored for key and whether one was recorded.
func (v *Vertex) Edge(key string) (string, bool) {
	label, ok := v.edges[key]

	return label, ok
}

// Edges returns a copy of the neighbor-name → label map.
func (v *Vertex) Edges() map[string]string {
	out := make(map[string]string, len(v.edges))
	for k, l := range v.edges {
		out[k] = l
	}

	return out
}
