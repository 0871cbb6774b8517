//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/thutor/internal/domain/entities"
	"github.com/rios0rios0/thutor/internal/domain/repositories"
)

// StubContentRepository implements repositories.ContentRepository with canned bytes.
type StubContentRepository struct {
	Content        []byte
	FetchErr       error
	FetchedSources []entities.RemoteSource
}

var _ repositories.ContentRepository = (*StubContentRepository)(nil)

func (s *StubContentRepository) Fetch(_ context.Context, source entities.RemoteSource) ([]byte, error) {
	s.FetchedSources = append(s.FetchedSources, source)
	return s.Content, s.FetchErr
}
