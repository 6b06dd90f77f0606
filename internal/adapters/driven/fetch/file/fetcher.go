// Package file provides a DatasetFetcher that reads CSV snapshots from a
// local directory.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sdvotes/runoff/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.DatasetFetcher = (*Fetcher)(nil)

// Fetcher reads dataset files relative to a base directory.
type Fetcher struct {
	baseDir string
}

// NewFetcher creates a fetcher rooted at baseDir.
// An empty baseDir reads relative to the working directory.
func NewFetcher(baseDir string) *Fetcher {
	return &Fetcher{baseDir: baseDir}
}

// Fetch reads the named file in one shot.
func (f *Fetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Location(name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// Location returns the path the named file is read from.
func (f *Fetcher) Location(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(f.baseDir, name)
}
