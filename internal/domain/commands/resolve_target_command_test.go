//go:build unit

package commands_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/thutor/internal/domain/commands"
	"github.com/rios0rios0/thutor/internal/domain/entities"
	"github.com/rios0rios0/thutor/test/domain/commanddoubles"
	"github.com/rios0rios0/thutor/test/infrastructure/repositorydoubles"
)

func TestResolveTargetCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should annotate a local file into the run directory", func(t *testing.T) {
		t.Parallel()

		// given
		source := writeSource(t, t.TempDir(), "notes.txt", []byte("hello\n"))
		runDir := t.TempDir()
		engine := &commanddoubles.StubAnnotateFileCommand{}
		command := commands.NewResolveTargetCommand(
			engine, &repositorydoubles.StubSourceRepository{}, &repositorydoubles.StubContentRepository{},
		)
		target := entities.ClassifyTarget(source, entities.IsRegularFile)

		// when
		report, err := command.Execute(context.Background(), target, runDir, entities.Settings{})

		// then
		require.NoError(t, err)
		require.Len(t, engine.Calls, 1)
		assert.Equal(t, source, engine.Calls[0].SourcePath)
		assert.Equal(t, filepath.Join(runDir, "notes.txt"), engine.Calls[0].DestPath)
		assert.Equal(t, entities.ResolveReport{Processed: 1, Annotated: 1}, report)
	})

	t.Run("should download a remote file through its raw URL and remove the scratch copy", func(t *testing.T) {
		t.Parallel()

		// given
		runDir := t.TempDir()
		engine := &commanddoubles.StubAnnotateFileCommand{}
		contents := &repositorydoubles.StubContentRepository{Content: []byte("print('hi')\n")}
		command := commands.NewResolveTargetCommand(engine, &repositorydoubles.StubSourceRepository{}, contents)
		target := entities.ClassifyTarget("https://github.com/owner/widgets/blob/main/src/app.py", nil)

		// when
		report, err := command.Execute(context.Background(), target, runDir, entities.Settings{})

		// then
		require.NoError(t, err)
		require.Len(t, contents.FetchedSources, 1)
		assert.Equal(t, "https://raw.githubusercontent.com/owner/widgets/main/src/app.py", contents.FetchedSources[0].URL)
		require.Len(t, engine.Calls, 1)
		assert.Equal(t, "app.py", filepath.Base(engine.Calls[0].SourcePath))
		assert.Equal(t, "print('hi')\n", string(engine.Calls[0].Content))
		assert.Equal(t, filepath.Join(runDir, "app.py"), engine.Calls[0].DestPath)
		assert.NoFileExists(t, engine.Calls[0].SourcePath)
		assert.NoDirExists(t, filepath.Dir(engine.Calls[0].SourcePath))
		assert.Equal(t, 1, report.Annotated)
	})

	t.Run("should fail fast when the remote file cannot be downloaded", func(t *testing.T) {
		t.Parallel()

		// given
		engine := &commanddoubles.StubAnnotateFileCommand{}
		contents := &repositorydoubles.StubContentRepository{FetchErr: errors.New("404 Not Found")}
		command := commands.NewResolveTargetCommand(engine, &repositorydoubles.StubSourceRepository{}, contents)
		target := entities.ClassifyTarget("https://github.com/owner/widgets/blob/main/missing.py", nil)

		// when
		_, err := command.Execute(context.Background(), target, t.TempDir(), entities.Settings{})

		// then
		require.ErrorIs(t, err, entities.ErrDownloadFailed)
		assert.Contains(t, err.Error(), "404 Not Found")
		assert.Empty(t, engine.Calls)
	})

	t.Run("should mirror text files of a cloned repository and skip binaries and .git", func(t *testing.T) {
		t.Parallel()

		// given
		runDir := t.TempDir()
		engine := &commanddoubles.StubAnnotateFileCommand{}
		sources := &repositorydoubles.StubSourceRepository{Files: map[string][]byte{
			"main.go":          []byte("package main\n"),
			"pkg/util/util.go": []byte("package util\n"),
			"assets/logo.png":  {0x89, 'P', 'N', 'G', 0xff, 0xd8},
			".git/config":      []byte("[core]\n"),
		}}
		command := commands.NewResolveTargetCommand(engine, sources, &repositorydoubles.StubContentRepository{})
		target := entities.ClassifyTarget("https://github.com/owner/widgets.git", nil)

		// when
		report, err := command.Execute(context.Background(), target, runDir, entities.Settings{})

		// then
		require.NoError(t, err)
		require.Len(t, sources.ExistsCalls, 1)
		assert.Equal(t, "https://github.com/owner/widgets.git", sources.ExistsCalls[0].URL)
		require.Len(t, engine.Calls, 2)
		assert.Equal(t, filepath.Join(runDir, "main.go"), engine.Calls[0].DestPath)
		assert.Equal(t, filepath.Join(runDir, "pkg", "util", "util.go"), engine.Calls[1].DestPath)
		assert.FileExists(t, filepath.Join(runDir, "pkg", "util", "util.go"))
		assert.NoDirExists(t, filepath.Join(runDir, ".git"))
		assert.Equal(t, entities.ResolveReport{Processed: 2, Annotated: 2, Skipped: 1}, report)
		require.Len(t, sources.ClonedDirs, 1)
		assert.NoDirExists(t, sources.ClonedDirs[0])
	})

	t.Run("should skip symbolic links that point outside the clone", func(t *testing.T) {
		t.Parallel()

		// given
		secret := writeSource(t, t.TempDir(), "id_rsa", []byte("PRIVATE KEY\n"))
		runDir := t.TempDir()
		engine := &commanddoubles.StubAnnotateFileCommand{}
		sources := &repositorydoubles.StubSourceRepository{
			Files:    map[string][]byte{"a.go": []byte("package a\n")},
			Symlinks: map[string]string{"leak.txt": secret, "docs/linked": filepath.Dir(secret)},
		}
		command := commands.NewResolveTargetCommand(engine, sources, &repositorydoubles.StubContentRepository{})
		target := entities.ClassifyTarget("https://github.com/owner/widgets", nil)

		// when
		report, err := command.Execute(context.Background(), target, runDir, entities.Settings{})

		// then
		require.NoError(t, err)
		require.Len(t, engine.Calls, 1)
		assert.Equal(t, filepath.Join(runDir, "a.go"), engine.Calls[0].DestPath)
		for _, call := range engine.Calls {
			assert.NotContains(t, string(call.Content), "PRIVATE KEY")
		}
		assert.NoFileExists(t, filepath.Join(runDir, "leak.txt"))
		assert.Equal(t, entities.ResolveReport{Processed: 1, Annotated: 1, Skipped: 2}, report)
	})

	t.Run("should probe and clone the normalized remote of a browsing URL", func(t *testing.T) {
		t.Parallel()

		// given
		sources := &repositorydoubles.StubSourceRepository{}
		command := commands.NewResolveTargetCommand(
			&commanddoubles.StubAnnotateFileCommand{}, sources, &repositorydoubles.StubContentRepository{},
		)
		target := entities.ClassifyTarget("https://github.com/owner/widgets/tree/main/docs/", nil)

		// when
		_, err := command.Execute(context.Background(), target, t.TempDir(), entities.Settings{})

		// then
		require.NoError(t, err)
		require.Len(t, sources.ExistsCalls, 1)
		assert.Equal(t, "https://github.com/owner/widgets.git", sources.ExistsCalls[0].URL)
		assert.Equal(t, "github", sources.ExistsCalls[0].Provider)
		assert.Len(t, sources.ClonedDirs, 1)
	})

	t.Run("should fail fast when the repository does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		sources := &repositorydoubles.StubSourceRepository{ExistsErr: errors.New("authentication required")}
		command := commands.NewResolveTargetCommand(
			&commanddoubles.StubAnnotateFileCommand{}, sources, &repositorydoubles.StubContentRepository{},
		)
		target := entities.ClassifyTarget("https://github.com/owner/ghost", nil)

		// when
		_, err := command.Execute(context.Background(), target, t.TempDir(), entities.Settings{})

		// then
		require.ErrorIs(t, err, entities.ErrRepositoryNotFound)
		assert.Contains(t, err.Error(), "https://github.com/owner/ghost")
		assert.Empty(t, sources.ClonedDirs)
	})

	t.Run("should fail fast and clean up when cloning fails", func(t *testing.T) {
		t.Parallel()

		// given
		sources := &repositorydoubles.StubSourceRepository{CloneErr: errors.New("remote hung up")}
		command := commands.NewResolveTargetCommand(
			&commanddoubles.StubAnnotateFileCommand{}, sources, &repositorydoubles.StubContentRepository{},
		)
		target := entities.ClassifyTarget("https://gitlab.com/group/project", nil)

		// when
		_, err := command.Execute(context.Background(), target, t.TempDir(), entities.Settings{})

		// then
		require.ErrorIs(t, err, entities.ErrCloneFailed)
		assert.Contains(t, err.Error(), "remote hung up")
		require.Len(t, sources.ClonedDirs, 1)
		assert.NoDirExists(t, sources.ClonedDirs[0])
	})

	t.Run("should reject an invalid target", func(t *testing.T) {
		t.Parallel()

		// given
		engine := &commanddoubles.StubAnnotateFileCommand{}
		command := commands.NewResolveTargetCommand(
			engine, &repositorydoubles.StubSourceRepository{}, &repositorydoubles.StubContentRepository{},
		)
		target := entities.ClassifyTarget("no/such/file.txt", entities.IsRegularFile)

		// when
		_, err := command.Execute(context.Background(), target, t.TempDir(), entities.Settings{})

		// then
		require.ErrorIs(t, err, entities.ErrInvalidTarget)
		assert.Contains(t, err.Error(), "no/such/file.txt")
		assert.Empty(t, engine.Calls)
	})
}
