// Package core defines the actor co-appearance graph: Vertex and Graph.
//
// A Vertex is one actor. It owns an ordered adjacency list (neighbors in
// insertion order, one entry per distinct neighbor name) and a label map
// from neighbor name to the movie title that connects them.
//
// A Graph is a catalog of uniquely named vertices plus the bookkeeping of
// order (vertex count) and size (edge-insertion count).
//
// Determinism:
//
//	Vertices() and Vertex.Adjacents() preserve insertion order. Callers that
//	build graphs from ordered input get reproducible traversals.
//
// Concurrency:
//
//	A Graph is populated once and read afterwards. Concurrent reads of a
//	fully built Graph are safe; concurrent mutation is not supported.
//
// Errors:
//
//	ErrNilVertex      - vertex pointer is nil.
//	ErrEmptyVertexID  - vertex name is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
package core
