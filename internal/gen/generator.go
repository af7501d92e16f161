package gen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"dispatch-generator/internal/common"
	"dispatch-generator/internal/diagnostic"
	"dispatch-generator/internal/render"
	"dispatch-generator/internal/table"
	"dispatch-generator/internal/tree"
	"dispatch-generator/options"
)

// DefaultPackageName is used for go tables when nothing else names the package.
const DefaultPackageName = "dispatch"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the Go package for go tables when the file sets none.
	// Empty derives it from OutputDir.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Checks limits range validation, see table.Validate.
	Checks options.CheckEnum
	// Logger receives warnings and debug traces. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir: "./generated",
		Checks:    options.CheckAll,
	}
}

// Generator generates source files from dispatch files.
type Generator struct {
	config GeneratorConfig
	log    *slog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	log := config.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Generator{config: config, log: log}
}

// GeneratedFile represents a generated source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "leading_zeros.cs").
	Filename string
	// Content is the generated source.
	Content []byte
	// Table is the name of the table the file was generated from.
	Table string
	// Stats describes the decision tree behind the file.
	Stats tree.Stats
}

// Validate runs the checks Generate runs before building anything.
func (g *Generator) Validate(f *table.File) *diagnostic.Diagnostics {
	return table.Validate(f, g.config.Checks)
}

// Generate generates one file per table of f, in table order.
func (g *Generator) Generate(ctx context.Context, f *table.File) ([]GeneratedFile, error) {
	diags := g.Validate(f)
	for _, w := range diags.Warnings {
		g.log.Warn(w.Message, "code", w.Code, "table", w.Table, "entry", w.Entry)
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid dispatch file: %w", err)
	}

	pkg := g.packageName(f)
	files := make([]GeneratedFile, len(f.Tables))

	eg, ctx := errgroup.WithContext(ctx)

	for i := range f.Tables {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := g.generateTable(pkg, &f.Tables[i])
			if err != nil {
				return fmt.Errorf("generating %s: %w", f.Tables[i].Name, err)
			}

			files[i] = *file

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

func (g *Generator) packageName(f *table.File) string {
	if f.Package != "" {
		return f.Package
	}

	if g.config.PackageName != "" {
		return g.config.PackageName
	}

	return common.PkgNameForDir(g.config.OutputDir, DefaultPackageName)
}

func (g *Generator) generateTable(pkg string, t *table.Table) (*GeneratedFile, error) {
	ranges, outputs, err := t.Resolve()
	if err != nil {
		return nil, err
	}

	g.log.Debug("normalized table", "table", t.Name, "ranges", ranges, "outputs", outputs)

	root, err := tree.BuildLists(ranges, outputs)
	if err != nil {
		return nil, err
	}

	file := &GeneratedFile{
		Filename: t.FileStem() + t.Lang().Extension(),
		Table:    t.Name,
		Stats:    tree.Collect(root),
	}

	g.log.Debug("built decision tree", "table", t.Name,
		"leaves", file.Stats.Leaves, "branches", file.Stats.Branches, "depth", file.Stats.Depth)

	if t.Lang().IsCStyle() {
		file.Content, err = renderCStyle(t, root)
	} else {
		file.Content, err = g.renderGo(pkg, t, root, file.Filename)
	}

	if err != nil {
		return nil, err
	}

	return file, nil
}

func (g *Generator) renderGo(pkg string, t *table.Table, root tree.Node, filename string) ([]byte, error) {
	src, err := render.Go(root, render.GoFunc{
		Package:  pkg,
		Name:     t.FuncName(),
		Variable: t.Variable,
		Kind:     t.KindEnum().TypeName(),
		Result:   t.Result,
		Doc:      t.Doc,
	})
	if err != nil {
		if src != nil && g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, src)
		}

		return nil, err
	}

	return src, nil
}

func renderCStyle(t *table.Table, root tree.Node) ([]byte, error) {
	body := render.CStyle(root, render.Options{
		Variable:   t.Variable,
		Indent:     t.Indent,
		IndentWith: t.IndentWith,
	})

	text, err := render.Wrap(t.Template, render.WrapData{
		Name:     t.Name,
		Func:     t.FuncName(),
		Variable: t.Variable,
		Kind:     t.KindEnum().TypeName(),
		Body:     body,
	})
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	return []byte(text), nil
}
