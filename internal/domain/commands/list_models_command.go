package commands

import (
	"context"
	"fmt"
	"slices"

	"github.com/rios0rios0/thutor/internal/domain/entities"
	"github.com/rios0rios0/thutor/internal/domain/repositories"
)

// ListModels is the interface for the models command.
type ListModels interface {
	Execute(ctx context.Context, settings entities.Settings) ([]string, error)
}

// ListModelsCommand lists the models served at the configured endpoint.
type ListModelsCommand struct {
	repository repositories.GenerationRepository
}

// NewListModelsCommand creates a new ListModelsCommand.
func NewListModelsCommand(repository repositories.GenerationRepository) *ListModelsCommand {
	return &ListModelsCommand{repository: repository}
}

// Execute returns the model names sorted alphabetically.
func (it *ListModelsCommand) Execute(ctx context.Context, settings entities.Settings) ([]string, error) {
	models, err := it.repository.ListModels(ctx, settings.APIURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list models at %s: %w", settings.APIURL, err)
	}
	slices.Sort(models)
	return models, nil
}
