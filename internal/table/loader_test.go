package table

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch-generator/internal/render"
	"dispatch-generator/internal/tree"
	"dispatch-generator/options"
	"dispatch-generator/primitive"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
package: lookup
tables:
  - name: sign
    variable: v
    kind: int8
    language: go
    result: int
    entries:
      - range: [min, -1]
        output: "-1"
      - range: 0
        output: "0"
      - range: [1, max]
        output: "1"
  - name: digits
    variable: value.val
    indent: 2
    checks: [order, overlap]
    ranges: [0x0, [1, 9], ["10", 99]]
    outputs: [zero, one, two]
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.Len(t, f.Tables, 2)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "lookup", f.Package)

	sign := f.Tables[0]
	assert.Equal(t, primitive.KindInt8, sign.KindEnum())
	assert.Equal(t, render.LangGo, sign.Lang())
	assert.Equal(t, "Sign", sign.FuncName())
	require.Len(t, sign.Entries, 3)
	assert.Equal(t, Span(Min(), Val(-1)), sign.Entries[0].Range)
	assert.Equal(t, Single(0), sign.Entries[1].Range)
	assert.Equal(t, Span(Val(1), Max()), sign.Entries[2].Range)

	ranges, outputs, err := sign.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []tree.Range{{Min: -128, Max: -1}, tree.Point(0), {Min: 1, Max: 127}}, ranges)
	assert.Equal(t, []string{"-1", "0", "1"}, outputs)

	digits := f.Tables[1]
	assert.Equal(t, DefaultKind, digits.Kind)
	assert.Equal(t, DefaultLanguage, digits.Language)
	assert.Equal(t, DefaultIndentWith, digits.IndentWith)
	assert.Equal(t, StringArray{"order", "overlap"}, digits.Checks)

	ranges, outputs, err = digits.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []tree.Range{tree.Point(0), {Min: 1, Max: 9}, {Min: 10, Max: 99}}, ranges)
	assert.Equal(t, []string{"zero", "one", "two"}, outputs)
}

func TestParseRangeErrors(t *testing.T) {
	tests := []struct {
		name string
		rng  string
	}{
		{"three items", "[1, 2, 3]"},
		{"bad literal", "twelve"},
		{"fraction", "1.5"},
		{"bad pair bound", "[0, lots]"},
		{"nested map", "{a: 1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte("tables:\n  - name: x\n    entries:\n      - range: " + tt.rng + "\n        output: a\n"))
			require.Error(t, err)
		})
	}
}

func TestParseTOML(t *testing.T) {
	data := `
version = "1"

[[tables]]
name = "sign"
variable = "v"
kind = "int16"
ranges = [["min", -1], 0, [1, "max"]]
outputs = ["neg", "zero", "pos"]

[[tables]]
name = "small"
variable = "x"
checks = ["none"]

[[tables.entries]]
range = 0
output = "a"

[[tables.entries]]
range = [1, 4]
output = "b"
`

	f, err := ParseTOML([]byte(data))
	require.NoError(t, err)
	require.Len(t, f.Tables, 2)

	ranges, outputs, err := f.Tables[0].Resolve()
	require.NoError(t, err)
	assert.Equal(t, []tree.Range{{Min: -32768, Max: -1}, tree.Point(0), {Min: 1, Max: 32767}}, ranges)
	assert.Equal(t, []string{"neg", "zero", "pos"}, outputs)
	assert.Equal(t, DefaultLanguage, f.Tables[0].Language)

	small := f.Tables[1]
	require.Len(t, small.Entries, 2)
	assert.Equal(t, Span(Val(1), Val(4)), small.Entries[1].Range)

	_, err = ParseTOML([]byte("[[tables]]\nname = \"x\"\nranges = [[1, 2, 3]]\n"))
	require.Error(t, err)
}

func TestResolveErrors(t *testing.T) {
	tbl := Table{Name: "x", Kind: "int128", Ranges: []RangeSpec{Single(1)}, Outputs: []string{"a"}}
	_, _, err := tbl.Resolve()
	require.ErrorIs(t, err, ErrUnknownKind)

	tbl = Table{
		Name:    "x",
		Kind:    "int32",
		Entries: []Entry{{Range: Single(1), Output: "a"}},
		Outputs: []string{"b"},
	}
	_, _, err = tbl.Resolve()
	require.ErrorIs(t, err, ErrBothForms)

	tbl = Table{
		Name:    "x",
		Kind:    "int32",
		Ranges:  []RangeSpec{Single(0), Single(1), Single(2)},
		Outputs: []string{"a", "b"},
	}
	root, err := tbl.Build()
	require.ErrorIs(t, err, tree.ErrCountMismatch)
	assert.Nil(t, root)
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starter.dispatch.yaml")

	require.NoError(t, WriteFile(Starter(), path))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Starter(), f)
}

func TestStarter(t *testing.T) {
	f := Starter()
	require.Len(t, f.Tables, 1)
	require.Len(t, f.Tables[0].Entries, 33)

	assert.True(t, Validate(f, options.CheckAll).IsValid())

	root, err := f.Tables[0].Build()
	require.NoError(t, err)

	assert.Equal(t, "new uint(0)", tree.Eval(root, -5))
	assert.Equal(t, "new uint(32)", tree.Eval(root, 0))
	assert.Equal(t, "new uint(31)", tree.Eval(root, 1))
	assert.Equal(t, "new uint(29)", tree.Eval(root, 7))
	assert.Equal(t, "new uint(1)", tree.Eval(root, 1<<30))
	assert.Equal(t, "new uint(1)", tree.Eval(root, 1<<31-1))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read dispatch file")
}
