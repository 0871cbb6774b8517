package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/thutor/internal/domain/entities"
	"github.com/rios0rios0/thutor/internal/domain/repositories"
)

const (
	scratchFilePattern  = "thutor-file-*"
	scratchClonePattern = "thutor-clone-*"
	scratchFileMode     = 0o600
	mirrorDirMode       = 0o755
)

// ResolveTarget is the interface for the target resolver.
type ResolveTarget interface {
	Execute(
		ctx context.Context,
		target entities.Target,
		runDir string,
		settings entities.Settings,
	) (entities.ResolveReport, error)
}

// ResolveTargetCommand materializes a classified target into local text
// files and feeds each of them to the annotation engine.
type ResolveTargetCommand struct {
	engine   AnnotateFile
	sources  repositories.SourceRepository
	contents repositories.ContentRepository
}

// NewResolveTargetCommand creates a new ResolveTargetCommand.
func NewResolveTargetCommand(
	engine AnnotateFile,
	sources repositories.SourceRepository,
	contents repositories.ContentRepository,
) *ResolveTargetCommand {
	return &ResolveTargetCommand{
		engine:   engine,
		sources:  sources,
		contents: contents,
	}
}

// Execute dispatches on the target kind. Scratch resources created for
// remote targets are removed before it returns, on every path.
func (it *ResolveTargetCommand) Execute(
	ctx context.Context,
	target entities.Target,
	runDir string,
	settings entities.Settings,
) (entities.ResolveReport, error) {
	switch target.Kind {
	case entities.TargetLocalFile:
		return it.resolveLocalFile(ctx, target, runDir, settings), nil
	case entities.TargetRemoteFile:
		return it.resolveRemoteFile(ctx, target, runDir, settings)
	case entities.TargetRemoteRepository:
		return it.resolveRepository(ctx, target, runDir, settings)
	case entities.TargetInvalid:
		fallthrough
	default:
		return entities.ResolveReport{}, fmt.Errorf("the path %q is %w", target.Raw, entities.ErrInvalidTarget)
	}
}

func (it *ResolveTargetCommand) resolveLocalFile(
	ctx context.Context,
	target entities.Target,
	runDir string,
	settings entities.Settings,
) entities.ResolveReport {
	var report entities.ResolveReport
	destPath := filepath.Join(runDir, target.FileName())

	logger.Infof("Analyzing: %s", target.Raw)
	report.Add(it.engine.Execute(ctx, target.Raw, destPath, settings))
	return report
}

func (it *ResolveTargetCommand) resolveRemoteFile(
	ctx context.Context,
	target entities.Target,
	runDir string,
	settings entities.Settings,
) (entities.ResolveReport, error) {
	var report entities.ResolveReport

	rawURL := target.RawURL()
	logger.Infof("Downloading: %s", rawURL)

	content, err := it.contents.Fetch(ctx, entities.NewRemoteSource(rawURL, target.Provider))
	if err != nil {
		return report, fmt.Errorf("%w %s: %w", entities.ErrDownloadFailed, rawURL, err)
	}

	scratchDir, err := os.MkdirTemp("", scratchFilePattern)
	if err != nil {
		return report, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer removeScratch(scratchDir)

	scratchPath := filepath.Join(scratchDir, target.FileName())
	if writeErr := os.WriteFile(scratchPath, content, scratchFileMode); writeErr != nil {
		return report, fmt.Errorf("failed to store downloaded file: %w", writeErr)
	}

	logger.Infof("Analyzing: %s", target.Raw)
	report.Add(it.engine.Execute(ctx, scratchPath, filepath.Join(runDir, target.FileName()), settings))
	return report, nil
}

func (it *ResolveTargetCommand) resolveRepository(
	ctx context.Context,
	target entities.Target,
	runDir string,
	settings entities.Settings,
) (entities.ResolveReport, error) {
	var report entities.ResolveReport
	source := entities.NewRemoteSource(target.CloneURL(), target.Provider)
	logger.Debugf("Resolved %s to remote %s", target.Raw, source.URL)

	if err := it.sources.Exists(ctx, source); err != nil {
		return report, fmt.Errorf("the repository at %q: %w: %w", target.Raw, entities.ErrRepositoryNotFound, err)
	}

	scratchDir, err := os.MkdirTemp("", scratchClonePattern)
	if err != nil {
		return report, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer removeScratch(scratchDir)

	logger.Infof("Cloning repository: %s/%s", target.Repository.Organization, target.Repository.Name)
	if cloneErr := it.sources.Clone(ctx, source, scratchDir); cloneErr != nil {
		return report, fmt.Errorf(
			"%w %q, check the URL and your permissions: %w", entities.ErrCloneFailed, target.Raw, cloneErr,
		)
	}
	logger.Info("Repository cloned successfully.")

	for file, walkErr := range entities.WalkCandidates(scratchDir) {
		if walkErr != nil {
			if errors.Is(walkErr, entities.ErrOutsideTarget) {
				logger.Warnf("Skipping file: %v", walkErr)
			} else {
				logger.Errorf("Skipping unreadable path: %v", walkErr)
			}
			report.Skipped++
			continue
		}

		if probeErr := entities.ProbeText(file.SourcePath); probeErr != nil {
			logger.Warnf("Skipping binary file: %s (%v)", file.RelativePath, probeErr)
			report.Skipped++
			continue
		}

		destPath := filepath.Join(runDir, file.RelativePath)
		if mkErr := os.MkdirAll(filepath.Dir(destPath), mirrorDirMode); mkErr != nil {
			logger.Errorf("Error analyzing file %s: %v", file.RelativePath, mkErr)
			report.Skipped++
			continue
		}

		logger.Infof("Analyzing: %s", file.RelativePath)
		report.Add(it.engine.Execute(ctx, file.SourcePath, destPath, settings))
	}

	return report, nil
}

func removeScratch(path string) {
	if err := os.RemoveAll(path); err != nil {
		logger.Warnf("Failed to remove scratch directory %s: %v", path, err)
	}
}
