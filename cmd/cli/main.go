package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jaywantadh/papermatch/config"
	"github.com/jaywantadh/papermatch/internal/compare"
	"github.com/jaywantadh/papermatch/pkg/env"
	"github.com/jaywantadh/papermatch/pkg/logging"
)

func main() {

	env.LoadEnv()

	app := &cli.App{
		Name:  "PaperMatch",
		Usage: "Find papers with similar titles across two PDF collections",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: ".",
				Usage: "directory containing config.yaml",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (trace, debug, info, warn, error)",
			},
		},
		Before: func(c *cli.Context) error {
			config.LoadConfig(c.String("config"))
			level := c.String("log-level")
			if level == "" {
				level = env.GetEnv("LOG_LEVEL", config.Config.LogLevel)
			}
			logging.InitLoggerWithLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:    "compare",
				Aliases: []string{"c"},
				Usage:   "Compare the titles of the PDFs in two folders",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "folder-a",
						Aliases:  []string{"a"},
						Usage:    "first collection root",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "folder-b",
						Aliases:  []string{"b"},
						Usage:    "second collection root",
						Required: true,
					},
					&cli.Float64Flag{
						Name:    "threshold",
						Aliases: []string{"t"},
						Usage:   "similarity threshold in [0,1]",
					},
					&cli.BoolFlag{
						Name:    "recursive",
						Aliases: []string{"r"},
						Value:   true,
						Usage:   "descend into subfolders",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "path of the persisted report",
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "number of pairs shown on the console",
					},
					&cli.BoolFlag{
						Name:  "no-save",
						Usage: "skip writing the report file",
					},
				},
				Action: runCompare,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logging.Log.Fatal(err)
	}
}

// runCompare assembles the validated run configuration from flags and config
// defaults, runs the comparison, and emits the results.
func runCompare(c *cli.Context) error {
	cfg := &config.CompareConfig{
		FolderA:          c.String("folder-a"),
		FolderB:          c.String("folder-b"),
		Threshold:        config.Config.Threshold,
		Recursive:        c.Bool("recursive"),
		OutputPath:       config.Config.OutputPath,
		TopN:             config.Config.TopN,
		ParallelismRatio: config.Config.ParallelismRatio,
		SaveReport:       !c.Bool("no-save"),
	}
	if c.IsSet("threshold") {
		cfg.Threshold = c.Float64("threshold")
	}
	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if c.IsSet("top") {
		cfg.TopN = c.Int("top")
	}

	rep, err := compare.Run(cfg)
	if err != nil {
		return err
	}

	rep.Preview(os.Stdout, cfg.TopN)

	if cfg.SaveReport {
		if err := rep.Save(cfg.OutputPath); err != nil {
			return fmt.Errorf("results computed but not persisted: %w", err)
		}
		logging.Log.WithField("path", cfg.OutputPath).Info("report saved")
	}
	return nil
}
