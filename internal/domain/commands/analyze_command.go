package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/thutor/internal/domain/entities"
)

const runDirMode = 0o755

// Analyze is the interface for the run orchestrator.
type Analyze interface {
	Execute(ctx context.Context, opts AnalyzeOptions, settings entities.Settings) (*entities.RunContext, error)
}

// AnalyzeOptions holds runtime options for one run.
type AnalyzeOptions struct {
	Target string
	Output io.Writer // receives the summary block; os.Stdout when nil
}

// AnalyzeCommand creates the run directory, resolves the target into it and
// prints the completion summary.
type AnalyzeCommand struct {
	resolver ResolveTarget
	clock    func() time.Time
	isFile   func(string) bool
}

// NewAnalyzeCommand creates a new AnalyzeCommand with the given resolver.
func NewAnalyzeCommand(resolver ResolveTarget) *AnalyzeCommand {
	return &AnalyzeCommand{
		resolver: resolver,
		clock:    time.Now,
		isFile:   entities.IsRegularFile,
	}
}

// Execute runs one analysis. Per-file skips never fail the run; only the
// fatal conditions raised by the resolver are returned.
func (it *AnalyzeCommand) Execute(
	ctx context.Context,
	opts AnalyzeOptions,
	settings entities.Settings,
) (*entities.RunContext, error) {
	target := entities.ClassifyTarget(opts.Target, it.isFile)
	runCtx := entities.NewRunContext(target, settings.OutputDir, it.clock())

	if err := os.MkdirAll(runCtx.RunDir, runDirMode); err != nil {
		return nil, fmt.Errorf("failed to create run directory %s: %w", runCtx.RunDir, err)
	}
	if absDir, err := filepath.Abs(runCtx.RunDir); err == nil {
		runCtx.RunDir = absDir
	}
	logger.Infof("Output will be saved to: %s", runCtx.RunDir)
	logger.Debugf("Target %q classified as %s", target.Raw, target.Kind)

	report, err := it.resolver.Execute(ctx, target, runCtx.RunDir, settings)
	runCtx.Report = report
	if err != nil {
		return runCtx, err
	}

	logger.Infof(
		"Run complete: %d files processed, %d annotated, %d skipped",
		report.Processed, report.Annotated, report.Skipped,
	)

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	fmt.Fprint(output, runCtx.Summary())

	return runCtx, nil
}
