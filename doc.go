// Package bacon computes degrees of separation between actors: the
// shortest chain of shared movies linking two people in a co-appearance
// graph built from flat (actor, title) records.
//
// Packages, leaves first:
//
//	core/     - Vertex and Graph: unique actors, adjacency, edge labels
//	dataset/  - TSV records and insertion-ordered name/title indexes
//	builder/  - one edge insertion per (actor, co-actor, shared title)
//	bfs/      - breadth-first search, FindPath, parent-link reconstruction
//	pipeline/ - index → build → search composition, hop labels, report
//	config/, logging/, metrics/ - CLI settings, zap logger, prometheus collectors
//	cmd/baconnumber - command-line entry point
//
// Quick ASCII example:
//
//	Lori Singer ──Footloose── Kevin Bacon ──Apollo 13── Tom Hanks
//
// gives Tom Hanks a Bacon number of 1 and Lori Singer → Tom Hanks a chain
// of two hops.
//
//	go run ./cmd/baconnumber cast.tsv "Tom Hanks"
package bacon
