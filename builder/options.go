// SPDX-License-Identifier: MIT
// Package: bacon/builder
//
// options.go - functional options for Build.

package builder

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/bacon/core"
)

// BuilderOption customizes Build.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	log   *zap.Logger
	gopts []core.GraphOption
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger sets the logger used for construction progress and passes it
// to the graph for duplicate-vertex notices. Panics on nil.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.log = l
		c.gopts = append(c.gopts, core.WithLogger(l))
	}
}

// WithGraphOptions forwards extra options to core.NewGraph.
func WithGraphOptions(opts ...core.GraphOption) BuilderOption {
	return func(c *builderConfig) {
		c.gopts = append(c.gopts, opts...)
	}
}
