package repositories

import (
	"context"

	"github.com/rios0rios0/thutor/internal/domain/entities"
)

// GenerationRepository abstracts the external text-generation service.
type GenerationRepository interface {
	// Generate issues one synchronous, non-streaming request. Transport
	// failures and non-2xx statuses are returned as errors.
	Generate(ctx context.Context, request entities.GenerationRequest) (entities.GenerationResult, error)

	// ListModels returns the model identifiers the service behind endpoint serves.
	ListModels(ctx context.Context, endpoint string) ([]string, error)
}
