package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"

	"dispatch-generator/internal/tree"
)

// GeneratedHeader starts every generated Go file.
const GeneratedHeader = "Code generated by dispatch-generator. DO NOT EDIT."

// GoFunc describes the generated Go function.
type GoFunc struct {
	Package string
	// Name of the function.
	Name string
	// Variable is the parameter compared against thresholds.
	Variable string
	// Kind is the parameter type, e.g. "int32".
	Kind string
	// Result is the return type.
	Result string
	// Doc replaces the default doc comment.
	Doc string
}

// Go renders root as a Go source file holding a single function. The nested
// branches use early returns, so the high half follows each if block.
//
// When formatting fails the unformatted source is returned along with the
// error.
func Go(root tree.Node, fn GoFunc) ([]byte, error) {
	f := jen.NewFile(fn.Package)
	f.NoFormat = true
	f.HeaderComment(GeneratedHeader)

	if fn.Doc != "" {
		f.Comment(fn.Doc)
	} else {
		f.Commentf("%s maps %s to its output by binary threshold search.", fn.Name, fn.Variable)
	}

	f.Func().Id(fn.Name).Params(jen.Id(fn.Variable).Id(fn.Kind)).Id(fn.Result).Block(goStmts(root, fn.Variable)...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", fn.Name, err)
	}

	out, err := imports.Process(fn.Name+".go", buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return buf.Bytes(), fmt.Errorf("formatting %s: %w", fn.Name, err)
	}

	return out, nil
}

func goStmts(n tree.Node, variable string) []jen.Code {
	switch n := n.(type) {
	case *tree.Leaf:
		return []jen.Code{jen.Return(jen.Id(n.Output))}
	case *tree.Branch:
		cond := jen.Id(variable).Op("<").Id(strconv.FormatInt(n.Threshold, 10))
		stmts := []jen.Code{jen.If(cond).Block(goStmts(n.Low, variable)...)}

		return append(stmts, goStmts(n.High, variable)...)
	default:
		panic(fmt.Sprintf("render: unexpected node %T", n))
	}
}
