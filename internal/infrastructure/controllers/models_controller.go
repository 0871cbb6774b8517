package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/thutor/internal/domain/commands"
	"github.com/rios0rios0/thutor/internal/domain/entities"
)

// ModelsController handles the "models" subcommand.
type ModelsController struct {
	command commands.ListModels
}

// NewModelsController creates a new ModelsController.
func NewModelsController(command commands.ListModels) *ModelsController {
	return &ModelsController{command: command}
}

// GetBind returns the Cobra command metadata for the models controller.
func (it *ModelsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "models",
		Short: "List the models served by the configured endpoint",
	}
}

// Execute prints one model name per line.
func (it *ModelsController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	models, err := it.command.Execute(ctx, *settings)
	if err != nil {
		return err
	}
	for _, model := range models {
		fmt.Fprintln(cmd.OutOrStdout(), model)
	}
	return nil
}
