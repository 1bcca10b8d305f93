package pipeline

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/bacon/bfs"
	"github.com/katalvlaran/bacon/builder"
	"github.com/katalvlaran/bacon/core"
	"github.com/katalvlaran/bacon/dataset"
	"github.com/katalvlaran/bacon/metrics"
)

// Sentinel errors for the pipeline.
var (
	// ErrNotLoaded is returned when a query runs before Load.
	ErrNotLoaded = errors.New("pipeline: graph not loaded")

	// ErrUnknownActor is returned when an endpoint is not in the graph.
	ErrUnknownActor = fmt.Errorf("pipeline: unknown actor: %w", core.ErrVertexNotFound)
)

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the pipeline logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics records build and search metrics on r. nil is ignored.
func WithMetrics(r *metrics.Recorder) Option {
	return func(c *Calculator) {
		if r != nil {
			c.rec = r
		}
	}
}

// Calculator builds the co-appearance graph once and answers path queries.
type Calculator struct {
	log *zap.Logger
	rec *metrics.Recorder

	idx *dataset.Index
	g   *core.Graph
}

// New returns an empty Calculator.
func New(opts ...Option) *Calculator {
	c := &Calculator{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load indexes records and builds the graph, replacing any previous one.
func (c *Calculator) Load(records []dataset.Record) error {
	start := time.Now()
	idx := dataset.NewIndex(records)
	g, err := builder.Build(idx, builder.WithLogger(c.log))
	if err != nil {
		return fmt.Errorf("pipeline: build graph: %w", err)
	}
	c.idx, c.g = idx, g

	elapsed := time.Since(start)
	if c.rec != nil {
		c.rec.ObserveBuild(len(records), g.Order(), g.Size(), elapsed)
	}
	c.log.Info("graph loaded",
		zap.Int("records", len(records)),
		zap.Int("actors", idx.NameCount()),
		zap.Int("titles", idx.TitleCount()),
		zap.Duration("elapsed", elapsed),
	)

	return nil
}

// Graph returns the loaded graph, or nil before Load.
func (c *Calculator) Graph() *core.Graph { return c.g }

// Stats summarizes the loaded data. Size counts edge insertions; every
// collaboration is inserted from both endpoints, so Size/2 approximates
// distinct collaborations.
type Stats struct {
	Actors int
	Titles int
	Order  int
	Size   int
}

// Collaborations returns Size/2.
func (s Stats) Collaborations() int { return s.Size / 2 }

// Stats returns counts for the loaded graph.
func (c *Calculator) Stats() (Stats, error) {
	if c.g == nil {
		return Stats{}, ErrNotLoaded
	}

	return Stats{
		Actors: c.idx.NameCount(),
		Titles: c.idx.TitleCount(),
		Order:  c.g.Order(),
		Size:   c.g.Size(),
	}, nil
}

// Path returns the shortest chain of actor names from from to to.
// An unreachable pair yields an empty path and nil error.
func (c *Calculator) Path(from, to string) ([]string, error) {
	if c.g == nil {
		return nil, ErrNotLoaded
	}
	for _, name := range []string{from, to} {
		if !c.g.Contains(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownActor, name)
		}
	}

	start := time.Now()
	path, err := bfs.FindPath(c.g, from, to)
	c.observeSearch(path, err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("pipeline: find path %q -> %q: %w", from, to, err)
	}
	c.log.Debug("path search done",
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("hops", hops(path)),
	)

	return path, nil
}

func (c *Calculator) observeSearch(path []string, err error, d time.Duration) {
	if c.rec == nil {
		return
	}
	switch {
	case err != nil:
		c.rec.ObserveSearch(metrics.OutcomeError, 0, d)
	case len(path) == 0:
		c.rec.ObserveSearch(metrics.OutcomeUnreachable, 0, d)
	default:
		c.rec.ObserveSearch(metrics.OutcomeFound, hops(path), d)
	}
}

// Hops labels each consecutive pair of path with its connecting title.
func (c *Calculator) Hops(path []string) ([]Hop, error) {
	if c.g == nil {
		return nil, ErrNotLoaded
	}
	return LabelHops(c.g, path)
}

// Report runs Path and labels the result.
func (c *Calculator) Report(from, to string) (*Report, error) {
	path, err := c.Path(from, to)
	if err != nil {
		return nil, err
	}
	hopList, err := c.Hops(path)
	if err != nil {
		return nil, err
	}

	return &Report{Path: path, Hops: hopList}, nil
}

func hops(path []string) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}
