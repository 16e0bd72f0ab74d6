// Package writer encodes policy files and exposes sinks for the bytes.
package writer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPerm is the mode given to files FileWriter creates.
const DefaultPerm fs.FileMode = 0o644

// Sink receives an encoded policy file.
type Sink interface {
	WritePol(buf []byte) error
}

// FileWriter replaces the file at Path atomically. Readers of Path see
// either the old contents or the new ones, never a partial write.
type FileWriter struct {
	Path string

	// Perm is the mode of the written file. Zero means DefaultPerm.
	Perm fs.FileMode
}

// WritePol writes policy bytes to Path.
func (w *FileWriter) WritePol(buf []byte) error {
	return w.WriteFile(buf)
}

// WriteFile writes buf to Path via a temp file in the same directory.
func (w *FileWriter) WriteFile(buf []byte) error {
	if info, err := os.Stat(w.Path); err == nil && info.IsDir() {
		return fmt.Errorf("write %s: is a directory", w.Path)
	}
	perm := w.Perm
	if perm == 0 {
		perm = DefaultPerm
	}

	// Same directory, so the rename stays on one filesystem
	tmpFile, err := os.CreateTemp(filepath.Dir(w.Path), ".polkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}

	// CreateTemp opens with 0600
	if chmodErr := tmpFile.Chmod(perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}

	// Sync to disk
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}
