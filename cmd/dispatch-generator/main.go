// Package main provides the CLI entrypoint for dispatch-generator.
//
// dispatch-generator turns tables of sorted integer ranges into nested
// if/else threshold searches:
//   - gen writes one source file per table
//   - check reports configuration problems
//   - dump prints the normalized table and its decision tree
//   - watch regenerates when a config file changes
//   - init writes a starter config
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

const version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		stop()
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "dispatch-generator",
		Usage:     "Generate binary threshold searches from integer range tables",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug output (normalized tables, tree statistics)",
			},
		},
		Before: func(cCtx *cli.Context) error {
			level := slog.LevelInfo
			if cCtx.Bool("verbose") {
				level = slog.LevelDebug
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(cCtx.App.ErrWriter, &slog.HandlerOptions{Level: level})))

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "gen",
				Aliases:   []string{"g"},
				Usage:     "Generate source files",
				UsageText: "dispatch-generator gen [options] PATH...",
				Description: "PATH is a dispatch file or a directory searched for dispatch files. " +
					"Output goes next to each dispatch file unless --out is given.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output directory",
					},
					&cli.BoolFlag{
						Name:  "stdout",
						Usage: "Print generated files instead of writing them",
					},
					&cli.BoolFlag{
						Name:  "unchecked",
						Usage: "Skip order, overlap, bounds and gap checks",
					},
					patternFlag(),
				},
				Action: genAction,
			},
			{
				Name:      "check",
				Aliases:   []string{"c"},
				Usage:     "Validate dispatch files",
				UsageText: "dispatch-generator check [options] PATH...",
				Flags:     []cli.Flag{patternFlag()},
				Action:    checkAction,
			},
			{
				Name:      "dump",
				Usage:     "Print normalized tables and their decision trees",
				UsageText: "dispatch-generator dump [options] FILE",
				Flags: []cli.Flag{
					&cli.Int64SliceFlag{
						Name:  "value",
						Usage: "Evaluate the tree for a value (repeatable)",
					},
				},
				Action: dumpAction,
			},
			{
				Name:      "watch",
				Aliases:   []string{"w"},
				Usage:     "Regenerate when dispatch files change",
				UsageText: "dispatch-generator watch [options] PATH...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output directory",
					},
					patternFlag(),
				},
				Action: watchAction,
			},
			{
				Name:      "init",
				Usage:     "Write a starter dispatch file",
				UsageText: "dispatch-generator init [--force] FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Overwrite an existing file",
					},
				},
				Action: initAction,
			},
		},
	}
}

func patternFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "pattern",
		Aliases: []string{"p"},
		Usage:   "Glob for dispatch files inside directories",
	}
}
