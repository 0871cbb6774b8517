//go:build unit

package main //nolint:testpackage // tests unexported functions

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/thutor/internal"
	"github.com/rios0rios0/thutor/internal/domain/entities"
	"github.com/rios0rios0/thutor/internal/infrastructure/controllers"
	"github.com/rios0rios0/thutor/test/domain/commanddoubles"
	"github.com/rios0rios0/thutor/test/domain/entitybuilders"
)

type cliFixture struct {
	analyze *commanddoubles.StubAnalyzeCommand
	models  *commanddoubles.StubListModelsCommand
	config  string
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	config := filepath.Join(t.TempDir(), "thutor.yaml")
	settings := entitybuilders.NewSettingsBuilder().WithOutputDir(t.TempDir()).BuildSettings()
	require.NoError(t, settings.Save(config))
	return &cliFixture{
		analyze: &commanddoubles.StubAnalyzeCommand{},
		models:  &commanddoubles.StubListModelsCommand{Models: []string{"codellama"}},
		config:  config,
	}
}

func (f *cliFixture) execute(args ...string) error {
	root := buildRootCommand(controllers.NewAnalyzeController(f.analyze))
	addSubcommands(root, internal.NewAppInternal(&[]entities.Controller{
		controllers.NewConfigureController(&commanddoubles.StubConfigureCommand{}),
		controllers.NewModelsController(f.models),
	}))
	root.SetOut(&bytes.Buffer{})
	root.SetArgs(append(args, "--config", f.config))
	return root.Execute()
}

func TestRootCommandRouting(t *testing.T) {
	t.Parallel()

	t.Run("should analyze a path that shadows a subcommand name", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newCLIFixture(t)

		// when
		err := fixture.execute("./models")

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, fixture.analyze.ExecuteCallCount)
		assert.Equal(t, "./models", fixture.analyze.LastOpts.Target)
		assert.Zero(t, fixture.models.ExecuteCallCount)
	})

	t.Run("should dispatch the bare name to the subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newCLIFixture(t)

		// when
		err := fixture.execute("models")

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, fixture.models.ExecuteCallCount)
		assert.Zero(t, fixture.analyze.ExecuteCallCount)
	})

	t.Run("should document the path form in the root help", func(t *testing.T) {
		t.Parallel()

		// given
		root := buildRootCommand(controllers.NewAnalyzeController(&commanddoubles.StubAnalyzeCommand{}))

		// when
		long := root.Long

		// then
		assert.Contains(t, long, "thutor ./models")
	})
}
