// SPDX-License-Identifier: MIT
// Package: bacon/builder
//
// api.go - Build entry point.

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/bacon/core"
	"github.com/katalvlaran/bacon/dataset"
)

// Build creates a graph with one vertex per actor in idx and one edge
// insertion per (actor, co-actor, shared title) triple.
//
// Complexity:
//   - Time O(Σ_a Σ_{t∈titles(a)} |names(t)|), Space O(V + E).
//
// Errors:
//   - ErrNilIndex if idx is nil.
//   - ErrConstructFailed wrapping a core sentinel if insertion fails.
func Build(idx *dataset.Index, opts ...BuilderOption) (*core.Graph, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}
	cfg := newBuilderConfig(opts...)
	g := core.NewGraph(cfg.gopts...)

	if err := addActors(g, idx, cfg.log); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if err := addCoAppearances(g, idx); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	cfg.log.Debug("graph built",
		zap.Int("order", g.Order()),
		zap.Int("size", g.Size()),
		zap.Int("titles", idx.TitleCount()),
	)

	return g, nil
}

// addActors registers a vertex per distinct actor name. Records with an
// empty name get no vertex, so their titles link nobody to them.
func addActors(g *core.Graph, idx *dataset.Index, log *zap.Logger) error {
	for _, name := range idx.Names() {
		if name == "" {
			log.Warn("skipping records with empty actor name",
				zap.Int("titles", len(idx.TitlesOf(name))))
			continue
		}
		if err := g.AddVertex(core.NewVertex(name)); err != nil {
			return fmt.Errorf("%w: vertex %q: %w", ErrConstructFailed, name, err)
		}
	}

	return nil
}

// addCoAppearances links every actor to each co-actor of each of its titles.
func addCoAppearances(g *core.Graph, idx *dataset.Index) error {
	for _, name := range idx.Names() {
		actor, ok := g.FindVertex(name)
		if !ok {
			continue
		}
		for _, title := range idx.TitlesOf(name) {
			for _, co := range idx.NamesIn(title) {
				if co == name {
					continue
				}
				coActor, ok := g.FindVertex(co)
				if !ok {
					continue
				}
				if err := g.AddEdge(actor, coActor, title); err != nil {
					return fmt.Errorf("%w: edge %q-%q: %w", ErrConstructFailed, name, co, err)
				}
			}
		}
	}

	return nil
}
