package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"dispatch-generator/internal/discover"
	"dispatch-generator/internal/gen"
	"dispatch-generator/internal/table"
	"dispatch-generator/internal/tree"
	"dispatch-generator/internal/watch"
	"dispatch-generator/options"
)

var errNoPaths = errors.New("no dispatch files given")

// resolvePaths expands directories into the dispatch files they contain.
func resolvePaths(args []string, pattern string) ([]string, error) {
	if len(args) == 0 {
		return nil, errNoPaths
	}

	var files []string

	for _, arg := range args {
		st, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !st.IsDir() {
			files = append(files, arg)
			continue
		}

		found, err := discover.Find(arg, pattern)
		if err != nil {
			return nil, err
		}

		if len(found) == 0 {
			slog.Warn("no dispatch files found", "dir", arg)
		}

		files = append(files, found...)
	}

	return files, nil
}

// generateFile loads path and generates its tables into outDir, or next to
// path when outDir is empty.
func generateFile(ctx context.Context, w io.Writer, path, outDir string, checks options.CheckEnum, toStdout bool) error {
	f, err := table.LoadFile(path)
	if err != nil {
		return err
	}

	if outDir == "" {
		outDir = filepath.Dir(path)
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.OutputDir = outDir
	cfg.Checks = checks
	cfg.Logger = slog.Default().With("file", path)

	files, err := gen.NewGenerator(cfg).Generate(ctx, f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if toStdout {
		return gen.Print(w, files)
	}

	if err := gen.WriteFiles(files, outDir); err != nil {
		return err
	}

	for _, file := range files {
		slog.Info("generated", "table", file.Table, "file", filepath.Join(outDir, file.Filename),
			"leaves", file.Stats.Leaves, "depth", file.Stats.Depth)
	}

	return nil
}

func genAction(cCtx *cli.Context) error {
	paths, err := resolvePaths(cCtx.Args().Slice(), cCtx.String("pattern"))
	if err != nil {
		return err
	}

	checks := options.CheckEnum(options.CheckAll)
	if cCtx.Bool("unchecked") {
		checks = options.CheckNone
	}

	for _, path := range paths {
		if err := generateFile(cCtx.Context, cCtx.App.Writer, path, cCtx.String("out"), checks, cCtx.Bool("stdout")); err != nil {
			return err
		}
	}

	return nil
}

func checkAction(cCtx *cli.Context) error {
	paths, err := resolvePaths(cCtx.Args().Slice(), cCtx.String("pattern"))
	if err != nil {
		return err
	}

	w := cCtx.App.Writer
	failed := 0

	for _, path := range paths {
		f, err := table.LoadFile(path)
		if err != nil {
			_, _ = fmt.Fprintf(w, "%s: %s\n", path, err)
			failed++

			continue
		}

		diags := table.Validate(f, options.CheckAll)
		for _, d := range diags.All() {
			_, _ = fmt.Fprintf(w, "%s: %s: %s\n", path, d.Severity, d)
		}

		if diags.HasErrors() {
			failed++
		} else {
			_, _ = fmt.Fprintf(w, "%s: ok (%d tables)\n", path, len(f.Tables))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(paths))
	}

	return nil
}

func dumpAction(cCtx *cli.Context) error {
	if cCtx.NArg() != 1 {
		return errors.New("dump takes exactly one dispatch file")
	}

	f, err := table.LoadFile(cCtx.Args().First())
	if err != nil {
		return err
	}

	w := cCtx.App.Writer
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}

	for i := range f.Tables {
		t := &f.Tables[i]

		ranges, outputs, err := t.Resolve()
		if err != nil {
			return fmt.Errorf("%s: %w", t.Name, err)
		}

		root, err := tree.BuildLists(ranges, outputs)
		if err != nil {
			return fmt.Errorf("%s: %w", t.Name, err)
		}

		_, _ = fmt.Fprintf(w, "=== %s (%s, %s) ===\n", t.Name, t.KindEnum().TypeName(), t.Lang())

		for j, r := range ranges {
			_, _ = fmt.Fprintf(w, "%s -> %s\n", r, outputs[j])
		}

		cfg.Fdump(w, root)

		st := tree.Collect(root)
		_, _ = fmt.Fprintf(w, "leaves=%d branches=%d depth=%d\n", st.Leaves, st.Branches, st.Depth)

		for _, v := range cCtx.Int64Slice("value") {
			_, _ = fmt.Fprintf(w, "eval(%d) = %s\n", v, tree.Eval(root, v))
		}
	}

	return nil
}

func watchAction(cCtx *cli.Context) error {
	paths, err := resolvePaths(cCtx.Args().Slice(), cCtx.String("pattern"))
	if err != nil {
		return err
	}

	out := cCtx.String("out")
	regenerate := func(ctx context.Context, path string) error {
		return generateFile(ctx, cCtx.App.Writer, path, out, options.CheckAll, false)
	}

	for _, path := range paths {
		if err := regenerate(cCtx.Context, path); err != nil {
			slog.Error("initial generation failed", "file", path, "error", err)
		}
	}

	w, err := watch.New(paths, regenerate)
	if err != nil {
		return err
	}

	slog.Info("watching", "files", len(paths))

	return w.Run(cCtx.Context)
}

func initAction(cCtx *cli.Context) error {
	if cCtx.NArg() != 1 {
		return errors.New("init takes exactly one file name")
	}

	path := cCtx.Args().First()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return fmt.Errorf("%s: init writes YAML, use a .dispatch.yaml name", path)
	}

	if _, err := os.Stat(path); err == nil && !cCtx.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := table.WriteFile(table.Starter(), path); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cCtx.App.Writer, "wrote %s\n", path)

	return nil
}
