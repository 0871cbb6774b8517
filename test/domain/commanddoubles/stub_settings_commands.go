//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/thutor/internal/domain/commands"
	"github.com/rios0rios0/thutor/internal/domain/entities"
)

// StubConfigureCommand is a stub implementation of commands.Configure.
type StubConfigureCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.ConfigureOptions
}

var _ commands.Configure = (*StubConfigureCommand)(nil)

func (s *StubConfigureCommand) Execute(
	_ context.Context,
	opts commands.ConfigureOptions,
) (*entities.Settings, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return &entities.Settings{APIURL: opts.APIURL, Model: opts.Model, OutputDir: opts.OutputDir}, nil
}

// StubListModelsCommand is a stub implementation of commands.ListModels.
type StubListModelsCommand struct {
	ExecuteCallCount int
	Models           []string
	ExecuteErr       error
	LastSettings     entities.Settings
}

var _ commands.ListModels = (*StubListModelsCommand)(nil)

func (s *StubListModelsCommand) Execute(_ context.Context, settings entities.Settings) ([]string, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Models, s.ExecuteErr
}
