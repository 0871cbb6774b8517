package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/thutor/internal/domain/commands"
	"github.com/rios0rios0/thutor/internal/domain/entities"
)

// ConfigureController handles the "configure" subcommand.
type ConfigureController struct {
	command commands.Configure
}

// NewConfigureController creates a new ConfigureController.
func NewConfigureController(command commands.Configure) *ConfigureController {
	return &ConfigureController{command: command}
}

// GetBind returns the Cobra command metadata for the configure controller.
func (it *ConfigureController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "configure",
		Short: "Write the service URL, model and output directory",
		Long: `Create or replace the thutor configuration file.

Unless --skip-check is given, the service is asked for its model list
and the chosen model must be present. The file is written to --config,
or to ~/.thutor.yaml when no path is given.`,
	}
}

// Execute validates the flags and saves the configuration.
func (it *ConfigureController) Execute(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	apiURL, _ := cmd.Flags().GetString("api-url")
	model, _ := cmd.Flags().GetString("model")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	skipCheck, _ := cmd.Flags().GetBool("skip-check")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, err := it.command.Execute(ctx, commands.ConfigureOptions{
		Path:      configPath,
		APIURL:    apiURL,
		Model:     model,
		OutputDir: outputDir,
		SkipCheck: skipCheck,
	})
	return err
}

// AddFlags adds the configure-specific flags to the given Cobra command.
func (it *ConfigureController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("api-url", "http://localhost:11434/api/generate",
		"Full URL of the generation endpoint")
	cmd.Flags().String("model", "", "Model name served by the endpoint")
	cmd.Flags().String("output-dir", "", "Root directory for annotated output")
	cmd.Flags().Bool("skip-check", false, "Do not ask the service whether the model exists")
}
