package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/vanshika/creatorgen/internal/config"
	"github.com/vanshika/creatorgen/internal/generator"
	"github.com/vanshika/creatorgen/internal/logging"
	"github.com/vanshika/creatorgen/internal/metrics"
	"github.com/vanshika/creatorgen/internal/report"
)

const stdoutPath = "-"

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a dataset and write it as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   `Output file ("-" for stdout); defaults to the configured output path`,
			},
			&cli.BoolFlag{
				Name:  "stdout",
				Usage: "Write the dataset to stdout instead of a file",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Random seed for deterministic generation (0 seeds from the clock)",
			},
			&cli.IntFlag{
				Name:  "days",
				Usage: "Number of days to generate",
			},
			&cli.IntFlag{
				Name:  "fan-pool",
				Usage: "Draw fan ids from a pool of this size so fans repeat (0 mints one fan per transaction)",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write generation metrics in Prometheus text format to this file",
			},
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "Print an earnings summary to stderr after generating (JSON with --json)",
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyGenerateFlags(c, &cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger := logging.New(cfg.Logging, c.App.ErrWriter).With(
		"component", "datagen",
		"run_id", uuid.NewString(),
	)

	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry)

	gen, err := generator.New(cfg.Generator,
		generator.WithMetrics(m),
		generator.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	start := time.Now()
	doc, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	logger.Info("generation complete", "duration", time.Since(start).String())

	if cfg.Output.Path == stdoutPath {
		if err := generator.EncodeDocument(c.App.Writer, doc); err != nil {
			return fmt.Errorf("failed to write dataset to stdout: %w", err)
		}
	} else {
		if err := generator.WriteDocument(doc, cfg.Output.Path); err != nil {
			return fmt.Errorf("failed to write dataset: %w", err)
		}
		fmt.Fprintf(c.App.Writer, "Generated %d transactions and %d fans into %s\n",
			len(doc.Transactions), len(doc.Fans), cfg.Output.Path)
	}

	if cfg.Output.MetricsFile != "" {
		if err := writeMetrics(logger, cfg.Output.MetricsFile, registry); err != nil {
			return err
		}
	}

	if c.Bool("summary") {
		summary := report.Summarize(doc, cfg.Generator.Days)
		if c.Bool("json") {
			return writeJSON(c.App.ErrWriter, summary)
		}
		return report.Write(c.App.ErrWriter, summary)
	}
	return nil
}

func applyGenerateFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("output") {
		cfg.Output.Path = c.String("output")
	}
	if c.Bool("stdout") {
		cfg.Output.Path = stdoutPath
	}
	if c.IsSet("seed") {
		cfg.Generator.Seed = c.Int64("seed")
	}
	if c.IsSet("days") {
		cfg.Generator.Days = c.Int("days")
	}
	if c.IsSet("fan-pool") {
		cfg.Generator.FanPoolSize = c.Int("fan-pool")
	}
	if c.IsSet("metrics-file") {
		cfg.Output.MetricsFile = c.String("metrics-file")
	}
}

func writeMetrics(logger *slog.Logger, path string, registry *prometheus.Registry) error {
	if err := metrics.WriteTextfile(path, registry); err != nil {
		return err
	}
	logger.Info("metrics written", "path", path)
	return nil
}
