//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/thutor/internal/domain/entities"
)

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should load a YAML file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "thutor.yaml")
		writeFile(t, path, []byte("api_url: http://localhost:11434/api/generate\nmodel: codellama\noutput_dir: /tmp/out\n"))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:11434/api/generate", settings.APIURL)
		assert.Equal(t, "codellama", settings.Model)
		assert.Equal(t, "/tmp/out", settings.OutputDir)
	})

	t.Run("should load a JSON file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "config.json")
		writeFile(t, path, []byte(`{"api_url": "http://h/api/generate", "model": "llama3", "output_dir": "/tmp/o"}`))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "llama3", settings.Model)
	})

	t.Run("should load an HCL file with the home variable", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "thutor.hcl")
		writeFile(t, path, []byte(
			"api_url    = \"http://localhost:11434/api/generate\"\n"+
				"model      = \"codellama\"\n"+
				"output_dir = \"${home}/thutor-out\"\n",
		))
		homeDir, err := os.UserHomeDir()
		require.NoError(t, err)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, homeDir+"/thutor-out", settings.OutputDir)
	})

	t.Run("should fail fast when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		settings, err := entities.NewSettings(path)

		// then
		assert.Nil(t, settings)
		assert.ErrorIs(t, err, entities.ErrConfigurationMissing)
	})

	t.Run("should report missing fields as an unconfigured tool", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "thutor.yaml")
		writeFile(t, path, []byte("model: codellama\n"))

		// when
		_, err := entities.NewSettings(path)

		// then
		require.ErrorIs(t, err, entities.ErrConfigurationMissing)
		assert.Contains(t, err.Error(), "api_url")
		assert.Contains(t, err.Error(), "output_dir")
	})

	t.Run("should reject malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "thutor.yaml")
		writeFile(t, path, []byte("api_url: [unterminated\n"))

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrConfigurationMissing)
	})
}

func TestNewSettingsEnvOverrides(t *testing.T) {
	t.Run("should let THUTOR_* variables override the file", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "thutor.yaml")
		writeFile(t, path, []byte("api_url: http://file/api/generate\nmodel: codellama\noutput_dir: /tmp/out\n"))
		t.Setenv("THUTOR_MODEL", "llama3")
		t.Setenv("THUTOR_OUTPUT_DIR", "/tmp/env-out")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "http://file/api/generate", settings.APIURL)
		assert.Equal(t, "llama3", settings.Model)
		assert.Equal(t, "/tmp/env-out", settings.OutputDir)
	})

	t.Run("should not substitute for a missing file", func(t *testing.T) {
		// given
		t.Setenv("THUTOR_API_URL", "http://env/api/generate")
		t.Setenv("THUTOR_MODEL", "llama3")
		t.Setenv("THUTOR_OUTPUT_DIR", "/tmp/env-out")

		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "absent.yaml"))

		// then
		assert.ErrorIs(t, err, entities.ErrConfigurationMissing)
	})
}

func TestSettingsSave(t *testing.T) {
	t.Parallel()

	t.Run("should write a file that loads back", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "nested", ".thutor.yaml")
		original := entities.Settings{APIURL: "http://h/api/generate", Model: "m", OutputDir: "/tmp/o"}

		// when
		err := original.Save(path)

		// then
		require.NoError(t, err)
		loaded, loadErr := entities.NewSettings(path)
		require.NoError(t, loadErr)
		assert.Equal(t, original, *loaded)
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})
}
