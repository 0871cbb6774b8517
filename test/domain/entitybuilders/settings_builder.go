//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/thutor/internal/domain/entities"
)

const (
	defaultAPIURL = "http://localhost:11434/api/generate"
	defaultModel  = "codellama"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	apiURL    string
	model     string
	outputDir string
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		apiURL:      defaultAPIURL,
		model:       defaultModel,
		outputDir:   "output",
	}
}

// WithAPIURL sets the generation endpoint.
func (b *SettingsBuilder) WithAPIURL(apiURL string) *SettingsBuilder {
	b.apiURL = apiURL
	return b
}

// WithModel sets the model name.
func (b *SettingsBuilder) WithModel(model string) *SettingsBuilder {
	b.model = model
	return b
}

// WithOutputDir sets the output root.
func (b *SettingsBuilder) WithOutputDir(outputDir string) *SettingsBuilder {
	b.outputDir = outputDir
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() entities.Settings {
	return entities.Settings{
		APIURL:    b.apiURL,
		Model:     b.model,
		OutputDir: b.outputDir,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.apiURL = defaultAPIURL
	b.model = defaultModel
	b.outputDir = "output"
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		apiURL:      b.apiURL,
		model:       b.model,
		outputDir:   b.outputDir,
	}
}
