package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"

	"dispatch-generator/internal/render"
	"dispatch-generator/internal/tree"
	"dispatch-generator/options"
	"dispatch-generator/primitive"
)

const (
	DefaultVersion    = "1"
	DefaultKind       = "int32"
	DefaultLanguage   = "csharp"
	DefaultIndentWith = "\t"
)

var (
	// ErrUnknownKind is returned when a table names a kind that is not an integer kind.
	ErrUnknownKind = errors.New("unknown kind")
	// ErrBothForms is returned when a table sets entries together with ranges/outputs.
	ErrBothForms = errors.New("entries and ranges/outputs are mutually exclusive")
)

// File is the top-level dispatch configuration.
type File struct {
	// Version of the schema.
	Version string `yaml:"version" toml:"version"`
	// Package is the Go package name used for go tables.
	Package string `yaml:"package,omitempty" toml:"package,omitempty"`
	// Tables to generate, in output order.
	Tables []Table `yaml:"tables" toml:"-"`
}

// Table describes one range-to-output mapping.
type Table struct {
	Name     string `yaml:"name"`
	Variable string `yaml:"variable"`
	// Kind is the integer type of Variable, e.g. "int32".
	Kind     string `yaml:"kind,omitempty"`
	Language string `yaml:"language,omitempty"`
	// Indent is the starting nesting depth of C-style output.
	Indent     int    `yaml:"indent,omitempty"`
	IndentWith string `yaml:"indent_with,omitempty"`
	// Func overrides the generated Go function name.
	Func string `yaml:"func,omitempty"`
	// Result is the Go return type.
	Result string `yaml:"result,omitempty"`
	// Template wraps C-style output, see render.WrapData.
	Template string `yaml:"template,omitempty"`
	Doc      string `yaml:"doc,omitempty"`
	// Checks narrows validation; empty means all.
	Checks StringArray `yaml:"checks,omitempty"`

	Entries []Entry     `yaml:"entries,omitempty"`
	Ranges  []RangeSpec `yaml:"ranges,omitempty"`
	Outputs []string    `yaml:"outputs,omitempty"`
}

// Entry pairs a range descriptor with an output expression.
type Entry struct {
	Range  RangeSpec `yaml:"range"`
	Output string    `yaml:"output"`
}

// RangeSpec is a range descriptor as written: a bare integer or a pair.
type RangeSpec struct {
	Lo   Bound
	Hi   Bound
	Pair bool
}

// Bound is one end of a RangeSpec. Sym is "min" or "max" for sentinels.
type Bound struct {
	Value int64
	Sym   string
}

// Bound sentinels.
const (
	SymMin = "min"
	SymMax = "max"
)

// StringArray accepts a single string or a list of strings.
type StringArray []string

// Single returns the width-1 descriptor v.
func Single(v int64) RangeSpec {
	return RangeSpec{Lo: Bound{Value: v}, Hi: Bound{Value: v}}
}

// Span returns the pair descriptor [lo, hi].
func Span(lo, hi Bound) RangeSpec {
	return RangeSpec{Lo: lo, Hi: hi, Pair: true}
}

// Val is a literal bound.
func Val(v int64) Bound { return Bound{Value: v} }

// Min is the kind minimum sentinel.
func Min() Bound { return Bound{Sym: SymMin} }

// Max is the kind maximum sentinel.
func Max() Bound { return Bound{Sym: SymMax} }

// Resolve returns the bound's value for the given kind.
func (b Bound) Resolve(kind primitive.KindEnum) int64 {
	switch b.Sym {
	case SymMin:
		return kind.Min()
	case SymMax:
		return kind.Max()
	default:
		return b.Value
	}
}

// Normalize converts descriptors to explicit ranges of identical length and
// order. Ordering and disjointness are left to Validate.
func Normalize(specs []RangeSpec, kind primitive.KindEnum) []tree.Range {
	res := make([]tree.Range, len(specs))
	for i, s := range specs {
		res[i] = tree.Range{Min: s.Lo.Resolve(kind), Max: s.Hi.Resolve(kind)}
	}

	return res
}

// foldName case-folds a configuration keyword.
func foldName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// KindEnum returns the parsed kind, or 0 when unknown.
func (t *Table) KindEnum() primitive.KindEnum {
	return primitive.Parse(foldName(t.Kind))
}

// Lang returns the parsed target language, or 0 when unknown.
func (t *Table) Lang() render.Language {
	return render.ParseLanguage(t.Language)
}

// FuncName is the generated Go function name.
func (t *Table) FuncName() string {
	if t.Func != "" {
		return t.Func
	}

	return inflect.Camelize(t.Name)
}

// FileStem is the output file name without extension.
func (t *Table) FileStem() string {
	return inflect.Underscore(t.Name)
}

// CheckMask returns the selected checks and any unrecognised names.
func (t *Table) CheckMask() (options.CheckEnum, []string) {
	if len(t.Checks) == 0 {
		return options.CheckAll, nil
	}

	var (
		mask    options.CheckEnum
		unknown []string
	)

	for _, name := range t.Checks {
		c, ok := options.ParseCheck(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}

		mask |= c
	}

	return mask, unknown
}

// Specs returns the range descriptors and outputs from whichever form the
// table uses.
func (t *Table) Specs() ([]RangeSpec, []string, error) {
	if len(t.Entries) > 0 && (len(t.Ranges) > 0 || len(t.Outputs) > 0) {
		return nil, nil, ErrBothForms
	}

	if len(t.Entries) == 0 {
		return t.Ranges, t.Outputs, nil
	}

	specs := make([]RangeSpec, len(t.Entries))
	outputs := make([]string, len(t.Entries))

	for i, e := range t.Entries {
		specs[i] = e.Range
		outputs[i] = e.Output
	}

	return specs, outputs, nil
}

// Resolve returns the normalized ranges and their outputs.
// The two slices may differ in length for the parallel list form.
func (t *Table) Resolve() ([]tree.Range, []string, error) {
	kind := t.KindEnum()
	if !kind.IsValid() {
		return nil, nil, fmt.Errorf("%w %q", ErrUnknownKind, t.Kind)
	}

	specs, outputs, err := t.Specs()
	if err != nil {
		return nil, nil, err
	}

	return Normalize(specs, kind), outputs, nil
}

// Build resolves the table and builds its decision tree.
func (t *Table) Build() (tree.Node, error) {
	ranges, outputs, err := t.Resolve()
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", t.Name, err)
	}

	root, err := tree.BuildLists(ranges, outputs)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", t.Name, err)
	}

	return root, nil
}
