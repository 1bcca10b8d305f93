// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links and visit order, plus FindPath for the
// single-pair shortest collaboration chain.
//
// What
//
//   - BFS explores every vertex reachable from a start vertex in
//     non-decreasing distance and returns a Result (Order, Depth, Parent).
//   - FindPath stops as soon as the goal is dequeued and returns the ordered
//     vertex names from source to goal inclusive.
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//   - MaxDepth limits exploration; 0 means no limit.
//
// Determinism
//
//	Neighbors are enumerated in adjacency order, which follows graph
//	construction order. A vertex is enqueued at most once and its parent is
//	the first vertex that discovered it, so among several shortest paths the
//	one returned is fixed by construction order.
//
// Results
//
//   - FindPath(g, a, a) == [a].
//   - Unreachable goal: empty slice, nil error.
//   - Missing source or goal: ErrVertexNotFound (wraps core.ErrVertexNotFound).
//
// Complexity (V = |Vertices|, E = |adjacency entries|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
