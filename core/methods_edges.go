// File: methods_edges.go
// Role: undirected edge insertion and queries.
package core

// AddEdge connects source and destination in both directions and labels
// each side with label.
//
// Steps:
//  1. Reject nil endpoints (ErrNilVertex).
//  2. Append each vertex to the other's adjacency (de-duplicated by name).
//  3. MakeEdge on both sides; the first label recorded for a pair wins.
//  4. Increment size.
//
// No self-loop or parallel-edge guard is applied: repeated calls for the
// same pair still increment size. Endpoints need not be registered.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(source, destination *Vertex, label string) error {
	if source == nil || destination == nil {
		return ErrNilVertex
	}

	source.AddNeighbor(destination)
	destination.AddNeighbor(source)
	source.MakeEdge(destination.name, label)
	destination.MakeEdge(source.name, label)
	g.size++

	return nil
}

// HasEdge reports whether w is adjacent to v and the recorded label of
// v's edge toward w equals label.
//
// A nil v or w reports false.
func (g *Graph) HasEdge(v, w *Vertex, label string) bool {
	if v == nil || w == nil {
		return false
	}
	if !v.IsAdjacent(w.name) {
		return false
	}
	got, ok := v.Edge(w.name)

	return ok && got == label
}

// Size returns the number of AddEdge calls made on g.
func (g *Graph) Size() int { return g.size }
