package internal

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/thutor/internal/domain/commands"
	"github.com/rios0rios0/thutor/internal/domain/entities"
	"github.com/rios0rios0/thutor/internal/infrastructure/controllers"
	"github.com/rios0rios0/thutor/internal/infrastructure/repositories"
)

// RegisterProviders registers every layer with the DIG container, bottom-up:
// infrastructure repositories, domain entities, domain commands, controllers.
func RegisterProviders(container *dig.Container) error {
	layers := []func(*dig.Container) error{
		repositories.RegisterProviders,
		entities.RegisterProviders,
		commands.RegisterProviders,
		controllers.RegisterProviders,
	}
	for _, register := range layers {
		if err := register(container); err != nil {
			return err
		}
	}

	return container.Provide(NewAppInternal)
}
