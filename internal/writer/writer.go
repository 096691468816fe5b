// Package writer persists generated files so that a reader never observes a
// partially written file.
package writer

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

type Writer struct {
	Fs afero.Fs
}

func New(fs afero.Fs) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Writer{Fs: fs}
}

// WriteFile replaces path with content. The content goes to a temporary file
// in the same directory first and is renamed into place once it is complete.
func (w *Writer) WriteFile(path string, content []byte) (err error) {
	dir := filepath.Dir(path)
	if err = w.Fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := afero.TempFile(w.Fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = w.Fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = w.Fs.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = w.Fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

func (w *Writer) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(w.Fs, path)
}
