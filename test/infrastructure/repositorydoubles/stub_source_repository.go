//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rios0rios0/thutor/internal/domain/entities"
	"github.com/rios0rios0/thutor/internal/domain/repositories"
)

// StubSourceRepository implements repositories.SourceRepository without any network.
// Clone materializes Files (relative path -> content) and Symlinks
// (relative path -> link target) inside the target directory.
type StubSourceRepository struct {
	// --- Exists ---
	ExistsErr   error
	ExistsCalls []entities.RemoteSource

	// --- Clone ---
	Files      map[string][]byte
	Symlinks   map[string]string
	CloneErr   error
	ClonedDirs []string
}

var _ repositories.SourceRepository = (*StubSourceRepository)(nil)

func (s *StubSourceRepository) Exists(_ context.Context, source entities.RemoteSource) error {
	s.ExistsCalls = append(s.ExistsCalls, source)
	return s.ExistsErr
}

func (s *StubSourceRepository) Clone(_ context.Context, _ entities.RemoteSource, dir string) error {
	s.ClonedDirs = append(s.ClonedDirs, dir)
	if s.CloneErr != nil {
		return s.CloneErr
	}
	for relative, content := range s.Files {
		path := filepath.Join(dir, filepath.FromSlash(relative))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, content, 0o600); err != nil {
			return err
		}
	}
	for relative, linkTarget := range s.Symlinks {
		path := filepath.Join(dir, filepath.FromSlash(relative))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.Symlink(linkTarget, path); err != nil {
			return err
		}
	}
	return nil
}
