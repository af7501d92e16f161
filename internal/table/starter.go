package table

import "fmt"

// Starter returns a sample file: a leading zero count over int32, where
// each power-of-two bucket maps to its zero count.
func Starter() *File {
	t := Table{
		Name:       "leading_zeros",
		Variable:   "value.val",
		Kind:       DefaultKind,
		Language:   DefaultLanguage,
		Indent:     3,
		IndentWith: DefaultIndentWith,
		Entries: []Entry{
			{Range: Span(Min(), Val(-1)), Output: "new uint(0)"},
			{Range: Single(0), Output: "new uint(32)"},
		},
	}

	for i := range 31 {
		t.Entries = append(t.Entries, Entry{
			Range:  Span(Val(1<<i), Val(1<<(i+1)-1)),
			Output: fmt.Sprintf("new uint(%d)", 31-i),
		})
	}

	return &File{Version: DefaultVersion, Tables: []Table{t}}
}
