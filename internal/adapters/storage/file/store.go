// Package file persists the project collection as a single JSON or YAML
// document on the local filesystem.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/storage/record"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
	"github.com/jsamuelsen11/gantt-dashboard/internal/ports"
)

const filePerm = 0o644

// Store implements ports.ProjectStore over one file. Every Save rewrites the
// whole document.
type Store struct {
	path   string
	format Format
	codec  codec
}

var _ ports.ProjectStore = (*Store)(nil)

// New returns a Store for path. The encoding follows the file extension.
func New(path string) *Store {
	f := FormatFor(path)
	return &Store{path: path, format: f, codec: codecFor(f)}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Format returns the encoding in use.
func (s *Store) Format() Format { return s.format }

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "file" }

// HealthCheck reports whether the directory holding the file is usable.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if err != nil {
		return &domain.StorageError{Op: "stat", Err: err}
	}
	if !info.IsDir() {
		return &domain.StorageError{Op: "stat", Err: fmt.Errorf("%s is not a directory", dir)}
	}
	return nil
}

// Load reads and decodes the file. A missing file is an empty collection.
func (s *Store) Load(ctx context.Context) (map[string]project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]project.Project{}, nil
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Err: err}
	}

	c, err := s.codec.decode(data)
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Err: fmt.Errorf("%s: %w", s.path, err)}
	}

	projects, err := record.ToDomain(c)
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Err: fmt.Errorf("%s: %w", s.path, err)}
	}
	return projects, nil
}

// Save encodes the full collection and atomically replaces the file.
func (s *Store) Save(ctx context.Context, projects map[string]project.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.codec.encode(record.FromDomain(projects))
	if err != nil {
		return &domain.StorageError{Op: "encode", Err: err}
	}
	if err := writeFileAtomic(s.path, data, filePerm); err != nil {
		return &domain.StorageError{Op: "save", Err: err}
	}
	return nil
}

// Close is a no-op; the file is not held open between calls.
func (s *Store) Close() error { return nil }
