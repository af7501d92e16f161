package table

import (
	"fmt"
	"go/token"

	"dispatch-generator/internal/diagnostic"
	"dispatch-generator/internal/match"
	"dispatch-generator/internal/render"
	"dispatch-generator/internal/tree"
	"dispatch-generator/options"
	"dispatch-generator/primitive"
)

// Validate checks a dispatch file. mask limits the range checks on top of
// each table's own "checks" selection; options.CheckNone trusts the ranges
// as given, which reproduces unchecked generation.
func Validate(f *File, mask options.CheckEnum) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "dispatch file is nil", "", "")
		return res
	}

	if len(f.Tables) == 0 {
		res.AddError("no_tables", "no tables defined", "", "")
		return res
	}

	if f.Package != "" && !token.IsIdentifier(f.Package) {
		res.AddError("invalid_package", fmt.Sprintf("package %q is not a Go identifier", f.Package), "", "")
	}

	seen := map[string]struct{}{}

	for i := range f.Tables {
		t := &f.Tables[i]

		name := t.Name
		if name == "" {
			name = fmt.Sprintf("tables[%d]", i)
			res.AddError("missing_name", "table has no name", name, "")
		} else if _, ok := seen[name]; ok {
			res.AddError("duplicate_table", fmt.Sprintf("duplicate table %q", name), name, "")
		}

		seen[name] = struct{}{}

		validateTable(res, name, t, mask)
	}

	return res
}

func validateTable(res *diagnostic.Diagnostics, name string, t *Table, mask options.CheckEnum) {
	if t.Variable == "" {
		res.AddError("missing_variable", "variable is required", name, "")
	}

	kind := t.KindEnum()
	if !kind.IsValid() {
		res.AddError("unknown_kind", fmt.Sprintf("unknown kind %q", t.Kind), name, "",
			match.Suggest(t.Kind, kindNames())...)
	}

	lang := t.Lang()
	if !lang.IsValid() {
		res.AddError("unknown_language", fmt.Sprintf("unknown language %q", t.Language), name, "",
			match.Suggest(t.Language, render.LanguageNames())...)
	}

	if lang == render.LangGo {
		validateGo(res, name, t)
	} else if t.Template != "" {
		if _, err := render.ParseWrap(t.Template); err != nil {
			res.AddError("invalid_template", err.Error(), name, "")
		}
	}

	if t.Indent < 0 {
		res.AddError("invalid_indent", fmt.Sprintf("indent %d is negative", t.Indent), name, "")
	}

	tableMask, unknown := t.CheckMask()
	for _, u := range unknown {
		res.AddError("unknown_check", fmt.Sprintf("unknown check %q", u), name, "",
			match.Suggest(u, options.CheckNames())...)
	}

	specs, outputs, err := t.Specs()
	if err != nil {
		res.AddError("both_forms", err.Error(), name, "")
		return
	}

	if len(specs) != len(outputs) {
		res.AddError("count_mismatch",
			fmt.Sprintf("%s: %d ranges, %d outputs", tree.ErrCountMismatch, len(specs), len(outputs)), name, "")
		return
	}

	if len(specs) == 0 {
		res.AddError("empty_table", tree.ErrEmptyInput.Error(), name, "")
		return
	}

	if !kind.IsValid() {
		return
	}

	validateRanges(res, name, Normalize(specs, kind), kind, mask&tableMask)
}

func validateGo(res *diagnostic.Diagnostics, name string, t *Table) {
	if t.Variable != "" && !token.IsIdentifier(t.Variable) {
		res.AddError("go_variable_not_ident",
			fmt.Sprintf("variable %q must be a Go identifier for go tables", t.Variable), name, "")
	}

	if t.Result == "" {
		res.AddError("go_missing_result", "result type is required for go tables", name, "")
	}

	if fn := t.FuncName(); !token.IsIdentifier(fn) {
		res.AddError("go_invalid_func", fmt.Sprintf("function name %q is not a Go identifier", fn), name, "")
	}
}

func validateRanges(res *diagnostic.Diagnostics, name string, ranges []tree.Range, kind primitive.KindEnum, mask options.CheckEnum) {
	for i, r := range ranges {
		ref := diagnostic.EntryRef(i)

		if r.Min > r.Max {
			res.AddError("invalid_range", fmt.Sprintf("range %s has min above max", r), name, ref)
		}

		if mask.Has(options.CheckBounds) && (r.Min < kind.Min() || r.Max > kind.Max()) {
			res.AddError("out_of_bounds",
				fmt.Sprintf("range %s exceeds %s bounds [%d,%d]", r, kind.TypeName(), kind.Min(), kind.Max()), name, ref)
		}

		if i == 0 {
			continue
		}

		prev := ranges[i-1]

		switch {
		case r.Min <= prev.Min:
			if mask.Has(options.CheckOrder) {
				res.AddError("unsorted",
					fmt.Sprintf("range %s does not start after previous range %s", r, prev), name, ref)
			}
		case r.Overlaps(prev):
			if mask.Has(options.CheckOverlap) {
				res.AddError("overlap", fmt.Sprintf("range %s overlaps previous range %s", r, prev), name, ref)
			}
		case uint64(r.Min)-uint64(prev.Max) > 1:
			if mask.Has(options.CheckGaps) {
				res.AddWarning("gap",
					fmt.Sprintf("values %d..%d are not covered and resolve to %s", prev.Max+1, r.Min-1,
						diagnostic.EntryRef(i-1)), name, ref)
			}
		}
	}

	if !mask.Has(options.CheckGaps) {
		return
	}

	first, last := ranges[0], ranges[len(ranges)-1]
	if first.Min > kind.Min() {
		res.AddInfo("uncovered_low",
			fmt.Sprintf("values below %d resolve to %s", first.Min, diagnostic.EntryRef(0)), name, "")
	}

	if last.Max < kind.Max() {
		res.AddInfo("uncovered_high",
			fmt.Sprintf("values above %d resolve to %s", last.Max, diagnostic.EntryRef(len(ranges)-1)), name, "")
	}
}

func kindNames() []string {
	var res []string
	for _, k := range primitive.Kinds() {
		res = append(res, k.TypeName())
	}

	return res
}
