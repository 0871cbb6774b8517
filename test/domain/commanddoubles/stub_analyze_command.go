//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/thutor/internal/domain/commands"
	"github.com/rios0rios0/thutor/internal/domain/entities"
)

// StubResolveTargetCommand is a stub implementation of commands.ResolveTarget.
type StubResolveTargetCommand struct {
	ExecuteCallCount int
	Report           entities.ResolveReport
	ExecuteErr       error
	LastTarget       entities.Target
	LastRunDir       string
}

var _ commands.ResolveTarget = (*StubResolveTargetCommand)(nil)

func (s *StubResolveTargetCommand) Execute(
	_ context.Context,
	target entities.Target,
	runDir string,
	_ entities.Settings,
) (entities.ResolveReport, error) {
	s.ExecuteCallCount++
	s.LastTarget = target
	s.LastRunDir = runDir
	return s.Report, s.ExecuteErr
}

// StubAnalyzeCommand is a stub implementation of commands.Analyze.
type StubAnalyzeCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.AnalyzeOptions
	LastSettings     entities.Settings
}

var _ commands.Analyze = (*StubAnalyzeCommand)(nil)

func (s *StubAnalyzeCommand) Execute(
	_ context.Context,
	opts commands.AnalyzeOptions,
	settings entities.Settings,
) (*entities.RunContext, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	s.LastSettings = settings
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return &entities.RunContext{}, nil
}
