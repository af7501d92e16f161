package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes source that failed formatting to a sidecar
// next to the intended output. This is best-effort and should never make
// generation fail harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	ext := filepath.Ext(filename)
	debugName := strings.TrimSuffix(filename, ext) + ".unformatted" + ext

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
