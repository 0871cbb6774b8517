package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/thutor/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewAnalyzeController); err != nil {
		return err
	}
	if err := container.Provide(NewConfigureController); err != nil {
		return err
	}
	if err := container.Provide(NewModelsController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the AppInternal.
// The analyze controller is mounted as the root command and is not part of it.
func NewControllers(
	configureController *ConfigureController,
	modelsController *ModelsController,
) *[]entities.Controller {
	return &[]entities.Controller{
		configureController,
		modelsController,
	}
}
