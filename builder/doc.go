// SPDX-License-Identifier: MIT
// Package builder assembles a core.Graph from a dataset.Index.
//
// One vertex is registered per distinct actor, in first-seen order. Then,
// for every actor a, every title t of a and every co-actor c of t (c != a),
// an edge a-c labeled t is inserted. Each collaboration is therefore seen
// from both endpoints, and a pair sharing several titles keeps the label of
// the first shared title encountered in input order.
//
// Determinism:
//
//	Same records in the same order ⇒ identical adjacency order and labels.
package builder
