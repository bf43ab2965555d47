package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// WriteFileAtomic replaces path with data, creating its directory if needed.
// Readers never observe a partial header.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	err := renameio.WriteFile(path, data, 0o644,
		renameio.WithTempDir(dir),
		renameio.WithStaticPermissions(0o644),
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// writeOutput writes data to path and logs the resulting file size.
func writeOutput(path string, data []byte) error {
	if err := WriteFileAtomic(path, data); err != nil {
		return err
	}
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	log.Printf("Wrote %s (%d bytes)", path, st.Size())
	return nil
}
