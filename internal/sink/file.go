package sink

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFilename names the saved transcript when the caller does not.
const DefaultFilename = "transcript.txt"

// File writes the rendered text to Path as plain text. The write goes
// through a temp file in the target directory and renames it into place; the
// temp file is removed on every failure path so nothing is left behind.
type File struct {
	Path string
}

func (f File) Write(text string) error {
	path := f.Path
	if path == "" {
		path = DefaultFilename
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".transcript-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
