// Package pipeline composes the degrees-of-separation stages:
//
//	records → dataset.Index → builder.Build → core.Graph → bfs.FindPath → Report
//
// Each stage is a separate package and testable on its own; Calculator
// only wires them together, records metrics and logs progress. Report
// renders the hop-by-hop chain and the Bacon number summary.
package pipeline
