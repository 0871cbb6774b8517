//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/thutor/internal/domain/entities"
	"github.com/rios0rios0/thutor/internal/domain/repositories"
)

// SpyGenerationRepository implements repositories.GenerationRepository as a configurable spy.
// Set Responder to vary the answer per request; otherwise Response, Answered
// and GenerateErr are returned for every call.
type SpyGenerationRepository struct {
	// --- Generate ---
	Response    string
	Answered    bool
	GenerateErr error
	Responder   func(request entities.GenerationRequest) (entities.GenerationResult, error)
	// spy: requests received, in call order
	Requests []entities.GenerationRequest

	// --- ListModels ---
	Models        []string
	ListModelsErr error
	// spy: endpoints queried
	ListedEndpoints []string
}

var _ repositories.GenerationRepository = (*SpyGenerationRepository)(nil)

// NewAnsweringGenerationRepository returns a spy that answers every prompt with response.
func NewAnsweringGenerationRepository(response string) *SpyGenerationRepository {
	return &SpyGenerationRepository{Response: response, Answered: true}
}

func (s *SpyGenerationRepository) Generate(
	_ context.Context,
	request entities.GenerationRequest,
) (entities.GenerationResult, error) {
	s.Requests = append(s.Requests, request)
	if s.Responder != nil {
		return s.Responder(request)
	}
	if s.GenerateErr != nil {
		return entities.GenerationResult{}, s.GenerateErr
	}
	return entities.GenerationResult{Response: s.Response, Answered: s.Answered}, nil
}

func (s *SpyGenerationRepository) ListModels(_ context.Context, endpoint string) ([]string, error) {
	s.ListedEndpoints = append(s.ListedEndpoints, endpoint)
	if s.ListModelsErr != nil {
		return nil, s.ListModelsErr
	}
	return append([]string(nil), s.Models...), nil
}
