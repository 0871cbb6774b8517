package commands

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/thutor/internal/domain/entities"
)

const outputFileMode = 0o644

// AnnotateFile is the interface for the file annotation engine.
type AnnotateFile interface {
	Execute(ctx context.Context, sourcePath, destPath string, settings entities.Settings) *entities.AnnotatedFile
}

// AnnotateFileCommand annotates every non-blank line of a text file and
// writes the result to a destination whose directory already exists.
type AnnotateFileCommand struct {
	annotator AnnotateLine
}

// NewAnnotateFileCommand creates a new AnnotateFileCommand with the given line annotator.
func NewAnnotateFileCommand(annotator AnnotateLine) *AnnotateFileCommand {
	return &AnnotateFileCommand{annotator: annotator}
}

// Execute returns nil, after logging why, when the file is skipped or fails.
// Errors never propagate to the caller.
func (it *AnnotateFileCommand) Execute(
	ctx context.Context,
	sourcePath, destPath string,
	settings entities.Settings,
) *entities.AnnotatedFile {
	if info, statErr := os.Stat(sourcePath); statErr == nil && info.IsDir() {
		logger.Warnf("Skipping file (not a text file): %s", sourcePath)
		return nil
	}

	data, err := os.ReadFile(sourcePath)
	if err != nil {
		logger.Errorf("Error analyzing file %s: %v", sourcePath, err)
		return nil
	}
	if !utf8.Valid(data) {
		logger.Warnf("Skipping file (not a text file): %s", sourcePath)
		return nil
	}

	text := entities.NormalizeNewlines(string(data))
	lines := entities.SplitLines(text)
	marker := entities.CommentMarkerFor(sourcePath)

	result := make([]string, 0, len(lines))
	annotated := 0
	for i, line := range lines {
		if entities.IsBlank(line) {
			result = append(result, line)
			continue
		}

		request := entities.NewAnnotationRequest(strings.TrimSpace(line), text, settings)
		annotation := it.annotator.Execute(ctx, request)
		result = append(result, entities.AnnotateLine(line, marker, annotation))
		annotated++
		logger.Debugf("[%s] line %d/%d annotated", sourcePath, i+1, len(lines))
	}

	content := entities.JoinLines(result)
	if writeErr := os.WriteFile(destPath, []byte(content), outputFileMode); writeErr != nil {
		logger.Errorf("Error analyzing file %s: %v", sourcePath, writeErr)
		return nil
	}

	return &entities.AnnotatedFile{
		SourcePath: sourcePath,
		DestPath:   destPath,
		Content:    content,
		Lines:      len(lines),
		Annotated:  annotated,
	}
}
