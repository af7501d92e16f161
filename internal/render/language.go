package render

import (
	"strings"

	"golang.org/x/text/cases"

	"dispatch-generator/internal/common"
)

// Language is an output target.
type Language int

const (
	_ Language = iota

	LangCSharp
	LangC
	LangJava
	LangJavaScript
	LangGo

	// LangTotal is the number of languages plus the invalid zero value.
	LangTotal = int(iota)
)

var languages = [...]struct {
	name string
	ext  string
}{
	LangCSharp:     {"csharp", ".cs"},
	LangC:          {"c", ".c"},
	LangJava:       {"java", ".java"},
	LangJavaScript: {"javascript", ".js"},
	LangGo:         {"go", ".go"},
}

var languageAliases = map[string]Language{
	"c#":     LangCSharp,
	"cs":     LangCSharp,
	"js":     LangJavaScript,
	"golang": LangGo,
}

// LanguageNames returns the canonical language names.
func LanguageNames() []string {
	res := make([]string, 0, LangTotal-1)
	for l := Language(1); int(l) < LangTotal; l++ {
		res = append(res, l.String())
	}

	return res
}

// ParseLanguage resolves a language name or alias, case-insensitively.
// The zero Language is returned for unknown names.
func ParseLanguage(name string) Language {
	folded := cases.Fold().String(strings.TrimSpace(name))

	for l := Language(1); int(l) < LangTotal; l++ {
		if languages[l].name == folded {
			return l
		}
	}

	return languageAliases[folded]
}

func (l Language) IsValid() bool {
	return l > 0 && int(l) < LangTotal
}

// IsCStyle reports whether the target uses "if (x < t) return y;" syntax.
func (l Language) IsCStyle() bool {
	return l.IsValid() && l != LangGo
}

// Extension returns the file extension including the dot.
func (l Language) Extension() string {
	if !l.IsValid() {
		return ".txt"
	}

	return languages[l].ext
}

func (l Language) String() string {
	if !l.IsValid() {
		return common.UnknownStr
	}

	return languages[l].name
}
