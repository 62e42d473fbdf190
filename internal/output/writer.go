// Package output handles writing generated manifests to the filesystem.
package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/puremeth/puremeth-go/internal/domain"
	"github.com/puremeth/puremeth-go/internal/utils"
)

// Writer writes manifest files under a base directory
type Writer struct {
	baseDir string
	force   bool
	dryRun  bool
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	BaseDir string
	Force   bool
	DryRun  bool
}

// NewWriter creates a new manifest writer. An empty BaseDir means the
// current working directory.
func NewWriter(opts WriterOptions) *Writer {
	if opts.BaseDir == "" {
		opts.BaseDir = "."
	}

	return &Writer{
		baseDir: opts.BaseDir,
		force:   opts.Force,
		dryRun:  opts.DryRun,
	}
}

// Write saves data under name and returns the resolved path. An existing
// file fails with domain.ErrOutputExists unless the writer was created with
// Force; dry-run mode resolves the path without writing.
func (w *Writer) Write(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := w.Path(name)

	if !w.force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%w: %s", domain.ErrOutputExists, path)
		}
	}

	if w.dryRun {
		return path, nil
	}

	if err := utils.EnsureDir(path); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}

	return path, nil
}

// Path returns the output path for a manifest name. Absolute names are used
// unchanged.
func (w *Writer) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(w.baseDir, name)
}

// Exists checks if a manifest already exists
func (w *Writer) Exists(name string) bool {
	_, err := os.Stat(w.Path(name))
	return err == nil
}

// EnsureBaseDir creates the base directory if it doesn't exist
func (w *Writer) EnsureBaseDir() error {
	return os.MkdirAll(w.baseDir, 0755)
}
