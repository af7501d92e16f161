// Package discover finds dispatch files below a directory.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/boyter/gocodewalker"
)

// DefaultPattern matches dispatch files at any depth.
const DefaultPattern = "**/*.dispatch.{yaml,yml,toml}"

// Find walks root and returns the files whose slash-separated path relative
// to root matches pattern, sorted. Ignore files (.gitignore, .ignore) are
// honoured and .git is skipped.
func Find(root, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	if st, err := os.Stat(root); err != nil {
		return nil, err
	} else if !st.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	fileListQueue := make(chan *gocodewalker.File, 100)

	walker := gocodewalker.NewFileWalker(root, fileListQueue)
	walker.IncludeHidden = true
	walker.ExcludeDirectory = []string{".git"}

	errChan := make(chan error, 1)

	go func() {
		errChan <- walker.Start()
		close(errChan)
	}()

	var found []string

	for f := range fileListQueue {
		rel, err := filepath.Rel(root, f.Location)
		if err != nil {
			continue
		}

		ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return nil, err
		}

		if ok {
			found = append(found, f.Location)
		}
	}

	if err := <-errChan; err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	slices.Sort(found)

	return found, nil
}
