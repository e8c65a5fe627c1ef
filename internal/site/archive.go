package site

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteArchive streams a zip of a generated site's three artifacts to w.
// Entry names match the on-disk artifact names.
func WriteArchive(w io.Writer, dir string) error {
	zw := zip.NewWriter(w)

	for _, name := range []string{markupFile, styleFile, scriptFile} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read artifact %s: %w", name, err)
		}
		entry, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("failed to create zip entry %s: %w", name, err)
		}
		if _, err := entry.Write(content); err != nil {
			return fmt.Errorf("failed to write zip entry %s: %w", name, err)
		}
	}

	return zw.Close()
}
