package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/thutor/internal/domain/entities"
	"github.com/rios0rios0/thutor/internal/domain/repositories"
)

// AnnotateLine is the interface for the line annotator.
type AnnotateLine interface {
	Execute(ctx context.Context, request entities.AnnotationRequest) string
}

// AnnotateLineCommand asks the text-generation service for a one-sentence
// explanation of a single line, using the whole file as context.
type AnnotateLineCommand struct {
	repository repositories.GenerationRepository
}

// NewAnnotateLineCommand creates a new AnnotateLineCommand backed by the given service.
func NewAnnotateLineCommand(repository repositories.GenerationRepository) *AnnotateLineCommand {
	return &AnnotateLineCommand{repository: repository}
}

// Execute never fails: when the service cannot be reached it logs the cause
// and returns entities.ConnectionErrorAnnotation so the file keeps going.
func (it *AnnotateLineCommand) Execute(ctx context.Context, request entities.AnnotationRequest) string {
	result, err := it.repository.Generate(ctx, entities.GenerationRequest{
		Endpoint: request.Endpoint,
		Model:    request.Model,
		Prompt:   request.Prompt(),
		Stream:   false,
	})
	if err != nil {
		logger.Errorf("Error connecting to Ollama: %v", err)
		return entities.ConnectionErrorAnnotation
	}

	answer := result.Response
	if !result.Answered {
		answer = entities.MissingAnswerAnnotation
	}
	return entities.SanitizeAnnotation(answer)
}
