package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "datagen",
		Usage: "Synthetic creator earnings dataset generator",
		Description: `Generates a 30-day dataset of creator platform transactions (messages, tips,
subscriptions, posts) that tracks a daily revenue band, and inspects generated datasets.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Commands: []*cli.Command{
			generateCommand(),
			summaryCommand(),
			queryCommand(),
			exportCommand(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML/JSON/TOML generator profile",
				EnvVars: []string{"DATAGEN_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Output in JSON format",
			},
		},
	}
}
