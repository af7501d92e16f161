package table

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// tomlFile mirrors File for go-toml, which has no hook for values that may
// be either a scalar or an array.
type tomlFile struct {
	Version string      `toml:"version"`
	Package string      `toml:"package"`
	Tables  []tomlTable `toml:"tables"`
}

type tomlTable struct {
	Name       string      `toml:"name"`
	Variable   string      `toml:"variable"`
	Kind       string      `toml:"kind"`
	Language   string      `toml:"language"`
	Indent     int         `toml:"indent"`
	IndentWith string      `toml:"indent_with"`
	Func       string      `toml:"func"`
	Result     string      `toml:"result"`
	Template   string      `toml:"template"`
	Doc        string      `toml:"doc"`
	Checks     []string    `toml:"checks"`
	Entries    []tomlEntry `toml:"entries"`
	Ranges     []any       `toml:"ranges"`
	Outputs    []string    `toml:"outputs"`
}

type tomlEntry struct {
	Range  any    `toml:"range"`
	Output string `toml:"output"`
}

// ParseTOML parses TOML data into a File.
//
//	version = "1"
//
//	[[tables]]
//	name = "sign"
//	variable = "v"
//	ranges = [["min", -1], 0, [1, "max"]]
//	outputs = ["-1", "0", "1"]
func ParseTOML(data []byte) (*File, error) {
	var raw tomlFile

	err := toml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dispatch TOML: %w", err)
	}

	f := &File{Version: raw.Version, Package: raw.Package}

	for _, rt := range raw.Tables {
		t, err := rt.table()
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", rt.Name, err)
		}

		f.Tables = append(f.Tables, t)
	}

	applyDefaults(f)

	return f, nil
}

func (rt tomlTable) table() (Table, error) {
	t := Table{
		Name:       rt.Name,
		Variable:   rt.Variable,
		Kind:       rt.Kind,
		Language:   rt.Language,
		Indent:     rt.Indent,
		IndentWith: rt.IndentWith,
		Func:       rt.Func,
		Result:     rt.Result,
		Template:   rt.Template,
		Doc:        rt.Doc,
		Checks:     rt.Checks,
		Outputs:    rt.Outputs,
	}

	for i, e := range rt.Entries {
		spec, err := parseRangeValue(e.Range)
		if err != nil {
			return Table{}, fmt.Errorf("entries[%d]: %w", i, err)
		}

		t.Entries = append(t.Entries, Entry{Range: spec, Output: e.Output})
	}

	for i, r := range rt.Ranges {
		spec, err := parseRangeValue(r)
		if err != nil {
			return Table{}, fmt.Errorf("ranges[%d]: %w", i, err)
		}

		t.Ranges = append(t.Ranges, spec)
	}

	return t, nil
}
