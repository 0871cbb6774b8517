//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"

	"github.com/rios0rios0/thutor/internal/domain/commands"
	"github.com/rios0rios0/thutor/internal/domain/entities"
)

// StubAnnotateLineCommand is a stub implementation of commands.AnnotateLine.
type StubAnnotateLineCommand struct {
	Annotation string
	Requests   []entities.AnnotationRequest
}

var _ commands.AnnotateLine = (*StubAnnotateLineCommand)(nil)

func (s *StubAnnotateLineCommand) Execute(_ context.Context, request entities.AnnotationRequest) string {
	s.Requests = append(s.Requests, request)
	return s.Annotation
}

// AnnotateFileCall records a single invocation of AnnotateFile.
type AnnotateFileCall struct {
	SourcePath string
	DestPath   string
	Content    []byte // source bytes as seen during the call
}

// StubAnnotateFileCommand is a stub implementation of commands.AnnotateFile.
// It copies the source to the destination unless the source is listed in Skip.
type StubAnnotateFileCommand struct {
	Skip  map[string]bool
	Calls []AnnotateFileCall
}

var _ commands.AnnotateFile = (*StubAnnotateFileCommand)(nil)

func (s *StubAnnotateFileCommand) Execute(
	_ context.Context,
	sourcePath, destPath string,
	_ entities.Settings,
) *entities.AnnotatedFile {
	content, _ := os.ReadFile(sourcePath)
	s.Calls = append(s.Calls, AnnotateFileCall{SourcePath: sourcePath, DestPath: destPath, Content: content})
	if s.Skip[sourcePath] {
		return nil
	}
	if err := os.WriteFile(destPath, content, 0o600); err != nil {
		return nil
	}
	return &entities.AnnotatedFile{
		SourcePath: sourcePath,
		DestPath:   destPath,
		Content:    string(content),
	}
}
