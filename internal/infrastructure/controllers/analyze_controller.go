package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/thutor/internal/domain/commands"
	"github.com/rios0rios0/thutor/internal/domain/entities"
)

// AnalyzeController handles the root command: annotate one file or repository.
type AnalyzeController struct {
	command commands.Analyze
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(command commands.Analyze) *AnalyzeController {
	return &AnalyzeController{command: command}
}

// GetBind returns the Cobra command metadata for the analyze controller.
func (it *AnalyzeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "thutor <file-or-repository>",
		Short: "Explain source code line by line with a local LLM",
		Long: `Annotate every non-blank line of a file with a one-sentence explanation
generated by an Ollama-compatible service.

The target may be:
  a local file                   thutor ./main.go
  a GitHub or GitLab file URL    thutor https://github.com/owner/repo/blob/main/main.go
  a GitHub or GitLab repository  thutor https://github.com/owner/repo

Annotated copies are written to <output_dir>/<timestamp>_<name>/.
Run 'thutor configure' once before the first analysis.

A local file named like a subcommand must be given as a path,
for example 'thutor ./models' or 'thutor ./configure'.`,
	}
}

// Execute loads the settings and runs one analysis.
func (it *AnalyzeController) Execute(cmd *cobra.Command, arguments []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Infof("Using model %s at %s", settings.Model, settings.APIURL)
	_, err = it.command.Execute(ctx, commands.AnalyzeOptions{
		Target: arguments[0],
		Output: cmd.OutOrStdout(),
	}, *settings)
	return err
}
