package internal

import "github.com/rios0rios0/thutor/internal/domain/entities"

// AppInternal holds the subcommand controllers assembled by the container.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates a new AppInternal from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the controllers to mount as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
