package render

import (
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch-generator/internal/tree"
)

func buildTree(t *testing.T, n int) ([]tree.Entry, tree.Node) {
	t.Helper()

	entries := make([]tree.Entry, n)
	for i := range n {
		lo := int64(i*4 - 20)
		entries[i] = tree.Entry{Range: tree.Range{Min: lo, Max: lo + 3}, Output: "v" + strconv.Itoa(i)}
	}

	root, err := tree.Build(entries)
	require.NoError(t, err)

	return entries, root
}

func TestCStyle_Leaf(t *testing.T) {
	got := CStyle(&tree.Leaf{Output: "A"}, Options{Variable: "x", Indent: 2})
	assert.Equal(t, "\t\treturn A;", got)
	assert.NotContains(t, got, "if")
}

func TestCStyle_Pair(t *testing.T) {
	_, root := buildTree(t, 2)

	got := CStyle(root, Options{Variable: "x"})
	assert.Equal(t, "if (x < -16) return v0;\nreturn v1;", got)
	assert.Equal(t, 1, strings.Count(got, "<"))
}

func TestCStyle_ThreeEntries(t *testing.T) {
	root, err := tree.BuildLists(
		[]tree.Range{{Min: -2147483648, Max: -1}, tree.Point(0), tree.Point(1)},
		[]string{"A", "B", "C"},
	)
	require.NoError(t, err)

	want := strings.Join([]string{
		"if (value < 0) {",
		"    return A;",
		"} else {",
		"    if (value < 1) return B;",
		"    return C;",
		"}",
	}, "\n")

	assert.Equal(t, want, CStyle(root, Options{Variable: "value", IndentWith: "    "}))
}

func TestCStyle_IndentFollowsDepth(t *testing.T) {
	_, root := buildTree(t, 8)

	got := CStyle(root, Options{Variable: "x", Indent: 3})
	for _, l := range strings.Split(got, "\n") {
		assert.True(t, strings.HasPrefix(l, "\t\t\t"), l)
	}

	assert.Contains(t, got, "\n\t\t\t\t\tif (x < -16) return v0;")
}

func TestCStyle_EmittedTextResolvesEveryValue(t *testing.T) {
	for n := 1; n <= 40; n++ {
		entries, root := buildTree(t, n)
		lines := strings.Split(CStyle(root, Options{Variable: "x"}), "\n")

		for _, e := range entries {
			for v := e.Range.Min; v <= e.Range.Max; v++ {
				require.Equal(t, e.Output, interpret(t, lines, v), "n=%d value %d", n, v)
			}
		}
	}
}

func TestCStyle_Idempotent(t *testing.T) {
	_, root := buildTree(t, 21)
	opts := Options{Variable: "x", Indent: 1}

	assert.Equal(t, CStyle(root, opts), CStyle(root, opts))
}

// interpret executes C-style output for value v.
func interpret(t *testing.T, lines []string, v int64) string {
	t.Helper()

outer:
	for i := 0; i < len(lines); i++ {
		l := strings.TrimSpace(lines[i])

		if out, ok := strings.CutPrefix(l, "return "); ok {
			return strings.TrimSuffix(out, ";")
		}

		if !strings.HasPrefix(l, "if (") {
			t.Fatalf("unexpected line %q", l)
		}

		thr := threshold(t, l)

		if !strings.HasSuffix(l, "{") {
			if v < thr {
				_, rest, _ := strings.Cut(l, ") return ")
				return strings.TrimSuffix(rest, ";")
			}

			continue
		}

		if v < thr {
			continue
		}

		// skip the if block up to its "} else {"
		depth := 0

		for i++; i < len(lines); i++ {
			m := strings.TrimSpace(lines[i])

			switch {
			case strings.HasPrefix(m, "if (") && strings.HasSuffix(m, "{"):
				depth++
			case m == "}":
				depth--
			case m == "} else {" && depth == 0:
				continue outer
			}
		}

		t.Fatalf("unbalanced output")
	}

	t.Fatalf("no return reached for %d", v)

	return ""
}

func threshold(t *testing.T, line string) int64 {
	t.Helper()

	_, rest, _ := strings.Cut(line, " < ")
	num, _, _ := strings.Cut(rest, ")")

	v, err := strconv.ParseInt(num, 10, 64)
	require.NoError(t, err)

	return v
}

func TestWrap(t *testing.T) {
	got, err := Wrap("static uint {{.Func}}(int {{.Variable}}) {\n{{.Body}}\n}", WrapData{
		Func:     "Lzcnt",
		Variable: "value",
		Body:     "\treturn 0;",
	})
	require.NoError(t, err)
	assert.Equal(t, "static uint Lzcnt(int value) {\n\treturn 0;\n}", got)

	got, err = Wrap("", WrapData{Body: "return 1;"})
	require.NoError(t, err)
	assert.Equal(t, "return 1;", got)

	_, err = Wrap("{{.Body", WrapData{})
	require.Error(t, err)

	_, err = Wrap("{{.Missing}}", WrapData{})
	require.Error(t, err)
}

func TestGo(t *testing.T) {
	root, err := tree.BuildLists(
		[]tree.Range{{Min: -128, Max: -1}, tree.Point(0), {Min: 1, Max: 127}},
		[]string{"-1", "0", "1"},
	)
	require.NoError(t, err)

	src, err := Go(root, GoFunc{Package: "lookup", Name: "Sign", Variable: "v", Kind: "int8", Result: "int"})
	require.NoError(t, err)

	got := string(src)
	assert.True(t, strings.HasPrefix(got, "// "+GeneratedHeader+"\n"), got)
	assert.Contains(t, got, "package lookup")
	assert.Contains(t, got, "// Sign maps v to its output by binary threshold search.")
	assert.Contains(t, got, "func Sign(v int8) int {")
	assert.Contains(t, got, "\tif v < 0 {\n\t\treturn -1\n\t}\n")
	assert.Contains(t, got, "\tif v < 1 {\n\t\treturn 0\n\t}\n\treturn 1\n}")

	_, err = parser.ParseFile(token.NewFileSet(), "sign.go", src, parser.AllErrors)
	require.NoError(t, err)

	again, err := Go(root, GoFunc{Package: "lookup", Name: "Sign", Variable: "v", Kind: "int8", Result: "int"})
	require.NoError(t, err)
	assert.Equal(t, src, again)
}

func TestGo_InvalidOutputReturnsRawSource(t *testing.T) {
	src, err := Go(&tree.Leaf{Output: "new uint(0);;)"}, GoFunc{
		Package: "lookup", Name: "Broken", Variable: "v", Kind: "int32", Result: "uint",
	})
	require.Error(t, err)
	assert.Contains(t, string(src), "Broken")
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		name string
		want Language
		ext  string
	}{
		{"csharp", LangCSharp, ".cs"},
		{"C#", LangCSharp, ".cs"},
		{"c", LangC, ".c"},
		{"Java", LangJava, ".java"},
		{"js", LangJavaScript, ".js"},
		{"go", LangGo, ".go"},
		{"golang", LangGo, ".go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ParseLanguage(tt.name)
			assert.Equal(t, tt.want, l)
			assert.Equal(t, tt.ext, l.Extension())
			assert.Equal(t, tt.want != LangGo, l.IsCStyle())
		})
	}

	assert.False(t, ParseLanguage("rust").IsValid())
	assert.Equal(t, "unknown", ParseLanguage("rust").String())
	assert.Equal(t, []string{"csharp", "c", "java", "javascript", "go"}, LanguageNames())
}
