package render

import (
	"fmt"
	"strconv"
	"strings"

	"dispatch-generator/internal/tree"
)

// Options controls C-style emission.
type Options struct {
	// Variable is the expression compared against thresholds.
	Variable string
	// Indent is the nesting depth of the outermost statement.
	Indent int
	// IndentWith is repeated once per nesting level, a tab when empty.
	IndentWith string
}

// CStyle renders root as nested if/else statements. Lines are separated by
// "\n" without a trailing newline.
func CStyle(root tree.Node, opts Options) string {
	if opts.IndentWith == "" {
		opts.IndentWith = "\t"
	}

	w := &cWriter{opts: opts}
	w.node(root, opts.Indent)

	return strings.Join(w.lines, "\n")
}

type cWriter struct {
	opts  Options
	lines []string
}

func (w *cWriter) line(depth int, format string, args ...any) {
	w.lines = append(w.lines, strings.Repeat(w.opts.IndentWith, depth)+fmt.Sprintf(format, args...))
}

func (w *cWriter) node(n tree.Node, depth int) {
	switch n := n.(type) {
	case *tree.Leaf:
		w.line(depth, "return %s;", n.Output)
	case *tree.Branch:
		cond := w.opts.Variable + " < " + strconv.FormatInt(n.Threshold, 10)

		if n.IsTerminal() {
			w.line(depth, "if (%s) return %s;", cond, n.Low.(*tree.Leaf).Output)
			w.line(depth, "return %s;", n.High.(*tree.Leaf).Output)

			return
		}

		w.line(depth, "if (%s) {", cond)
		w.node(n.Low, depth+1)
		w.line(depth, "} else {")
		w.node(n.High, depth+1)
		w.line(depth, "}")
	default:
		panic(fmt.Sprintf("render: unexpected node %T", n))
	}
}
