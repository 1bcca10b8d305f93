// Command baconnumber prints the shortest co-appearance chain between an
// actor and a center actor (Kevin Bacon by default).
//
//	baconnumber [flags] <data-file> <actor> [center-actor]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bacon/config"
	"github.com/katalvlaran/bacon/dataset"
	"github.com/katalvlaran/bacon/logging"
	"github.com/katalvlaran/bacon/metrics"
	"github.com/katalvlaran/bacon/pipeline"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	cfg := config.FromEnv()
	cmd := &cobra.Command{
		Use:   "baconnumber <data-file> <actor> [center-actor]",
		Short: "Find the shortest co-appearance chain between two actors",
		Long: `Reads a tab-separated file of "actor<TAB>title" lines, builds the
co-appearance graph and prints the chain of movies linking the center actor
to the given actor. The center defaults to "` + config.DefaultCenter + `".`,
		Args:          cobra.RangeArgs(1, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.ApplyArgs(args); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg, out)
		},
	}
	cfg.BindFlags(cmd.Flags())

	return cmd
}

func run(cfg *config.Config, out io.Writer) error {
	logger, err := logging.NewLogger(logging.Options{
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
		RunID:  cfg.RunID,
	})
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	rec := metrics.New()
	defer func() {
		if cfg.MetricsPath == "" {
			return
		}
		if err := rec.WriteTextfile(cfg.MetricsPath); err != nil {
			logger.Warn("failed to write metrics", zap.String("path", cfg.MetricsPath), zap.Error(err))
		}
	}()

	records, err := dataset.ReadFile(cfg.DataFile)
	if err != nil {
		return err
	}

	calc := pipeline.New(pipeline.WithLogger(logger), pipeline.WithMetrics(rec))
	if err := calc.Load(records); err != nil {
		return err
	}
	if cfg.Stats {
		s, _ := calc.Stats()
		logger.Info("graph stats",
			zap.Int("order", s.Order),
			zap.Int("size", s.Size),
			zap.Int("collaborations", s.Collaborations()),
		)
	}

	report, err := calc.Report(cfg.Center, cfg.Actor)
	if errors.Is(err, pipeline.ErrUnknownActor) {
		return fmt.Errorf("invalid vertices provided: %w", err)
	}
	if err != nil {
		return err
	}

	return report.Render(out)
}
