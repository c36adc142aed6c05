package writer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Writer abstracts where generated wiki content lands.
type Writer interface {
	// Write replaces the file at path with content, creating parent
	// directories as needed.
	Write(path string, content []byte) error
}

// FileWriter writes through a temporary file and a rename, so readers see
// either the previous file or the complete new one.
type FileWriter struct {
	// Perm is applied to files that did not exist before the write.
	Perm os.FileMode
}

// NewFile creates a FileWriter producing 0644 files.
func NewFile() *FileWriter {
	return &FileWriter{Perm: 0644}
}

func (w *FileWriter) Write(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	_, statErr := os.Stat(path)
	created := errors.Is(statErr, os.ErrNotExist)

	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if created {
		if err := os.Chmod(path, w.Perm); err != nil {
			return fmt.Errorf("failed to set permissions on %s: %w", path, err)
		}
	}
	return nil
}
