package common

import (
	"path"
	"path/filepath"
	"strings"
	"unicode"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// PkgNameForDir derives a Go package name from an output directory,
// falling back to fallback when the directory name is not usable.
func PkgNameForDir(dir, fallback string) string {
	alias := PkgAlias(filepath.ToSlash(filepath.Clean(dir)))

	alias = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}

		return -1
	}, alias)

	if alias == "" || unicode.IsDigit(rune(alias[0])) {
		return fallback
	}

	return alias
}
