package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/thutor/internal/domain/entities"
	"github.com/rios0rios0/thutor/internal/domain/repositories"
)

const (
	latestTagSuffix = ":latest"
	outputRootMode  = 0o755
)

// Configure is the interface for the configure command.
type Configure interface {
	Execute(ctx context.Context, opts ConfigureOptions) (*entities.Settings, error)
}

// ConfigureOptions holds the values written to the configuration file.
type ConfigureOptions struct {
	Path      string // empty means entities.DefaultConfigPath()
	APIURL    string
	Model     string
	OutputDir string
	SkipCheck bool // do not ask the service whether the model exists
}

// ConfigureCommand validates and persists the settings used by later runs.
type ConfigureCommand struct {
	repository repositories.GenerationRepository
}

// NewConfigureCommand creates a new ConfigureCommand.
func NewConfigureCommand(repository repositories.GenerationRepository) *ConfigureCommand {
	return &ConfigureCommand{repository: repository}
}

// Execute checks the values, optionally confirms the model is served,
// creates the output root and saves the file.
func (it *ConfigureCommand) Execute(ctx context.Context, opts ConfigureOptions) (*entities.Settings, error) {
	settings := entities.Settings{
		APIURL:    strings.TrimSpace(opts.APIURL),
		Model:     strings.TrimSpace(opts.Model),
		OutputDir: entities.ExpandHome(strings.TrimSpace(opts.OutputDir)),
	}

	switch {
	case settings.APIURL == "":
		return nil, errors.New("--api-url is required")
	case settings.Model == "":
		return nil, errors.New("--model is required")
	case settings.OutputDir == "":
		return nil, errors.New("--output-dir is required")
	}

	if !opts.SkipCheck {
		models, err := it.repository.ListModels(ctx, settings.APIURL)
		if err != nil {
			return nil, fmt.Errorf("failed to reach the service at %s: %w", settings.APIURL, err)
		}
		if !hasModel(models, settings.Model) {
			return nil, fmt.Errorf(
				"model %q is not available, choose one of: %s",
				settings.Model, strings.Join(models, ", "),
			)
		}
	}

	if err := os.MkdirAll(settings.OutputDir, outputRootMode); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	path := opts.Path
	if path == "" {
		var err error
		if path, err = entities.DefaultConfigPath(); err != nil {
			return nil, err
		}
	}

	if err := settings.Save(path); err != nil {
		return nil, err
	}
	logger.Infof("Configuration saved to: %s", path)

	return &settings, nil
}

// hasModel accepts both "name" and "name:latest" spellings.
func hasModel(models []string, model string) bool {
	return slices.Contains(models, model) || slices.Contains(models, model+latestTagSuffix)
}
