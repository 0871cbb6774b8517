package repositories

import (
	"go.uber.org/dig"

	gitRepo "github.com/rios0rios0/thutor/internal/infrastructure/repositories/git"
	ollamaRepo "github.com/rios0rios0/thutor/internal/infrastructure/repositories/ollama"
	rawRepo "github.com/rios0rios0/thutor/internal/infrastructure/repositories/raw"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Each constructor returns its domain interface, so no extra binding is needed
	constructors := []any{
		ollamaRepo.NewGenerationRepository,
		gitRepo.NewSourceRepository,
		rawRepo.NewContentRepository,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}
