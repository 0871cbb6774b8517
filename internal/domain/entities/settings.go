package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFileName is where `thutor configure` saves settings under the home directory.
	DefaultConfigFileName = ".thutor.yaml"

	envAPIURL    = "THUTOR_API_URL"
	envModel     = "THUTOR_MODEL"
	envOutputDir = "THUTOR_OUTPUT_DIR"

	configFileMode = 0o600
	configDirMode  = 0o755
)

// Settings is the immutable configuration bundle threaded through every command.
type Settings struct {
	APIURL    string `yaml:"api_url"    hcl:"api_url,optional"`
	Model     string `yaml:"model"      hcl:"model,optional"`
	OutputDir string `yaml:"output_dir" hcl:"output_dir,optional"`
}

// NewSettings reads the configuration file at path, applies the THUTOR_*
// environment overrides and validates the result. A missing file or an
// incomplete configuration is reported as ErrConfigurationMissing.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: config file %q does not exist", ErrConfigurationMissing, path)
		}
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings, parseErr := parseSettings(path, data)
	if parseErr != nil {
		return nil, parseErr
	}

	settings.applyEnvOverrides()
	settings.OutputDir = ExpandHome(settings.OutputDir)

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or ErrConfigurationMissing.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".thutor.yaml",
		".thutor.yml",
		"thutor.yaml",
		"thutor.yml",
		".thutor.hcl",
		"thutor.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", fmt.Errorf(
		"%w: no config file found, run 'thutor configure' first", ErrConfigurationMissing,
	)
}

// DefaultConfigPath returns the path `thutor configure` writes to when none is given.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, DefaultConfigFileName), nil
}

// Save writes the settings as YAML, creating the parent directory if needed.
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if mkErr := os.MkdirAll(filepath.Dir(path), configDirMode); mkErr != nil {
		return fmt.Errorf("failed to create config directory: %w", mkErr)
	}
	if writeErr := os.WriteFile(path, data, configFileMode); writeErr != nil {
		return fmt.Errorf("failed to write config file %q: %w", path, writeErr)
	}
	return nil
}

func parseSettings(path string, data []byte) (*Settings, error) {
	var settings Settings

	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCL(data, path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
		}

		homeDir, _ := os.UserHomeDir()
		evalCtx := &hcl.EvalContext{
			Variables: map[string]cty.Value{
				"home": cty.StringVal(homeDir),
			},
		}
		if decodeDiags := gohcl.DecodeBody(file.Body, evalCtx, &settings); decodeDiags.HasErrors() {
			return nil, fmt.Errorf("failed to decode config file: %s", decodeDiags.Error())
		}
		return &settings, nil
	}

	// JSON documents are valid YAML, so .json files go through the same decoder.
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &settings, nil
}

func (s *Settings) applyEnvOverrides() {
	if v := os.Getenv(envAPIURL); v != "" {
		logger.Debugf("Overriding api_url from %s", envAPIURL)
		s.APIURL = v
	}
	if v := os.Getenv(envModel); v != "" {
		logger.Debugf("Overriding model from %s", envModel)
		s.Model = v
	}
	if v := os.Getenv(envOutputDir); v != "" {
		logger.Debugf("Overriding output_dir from %s", envOutputDir)
		s.OutputDir = v
	}
}

func (s *Settings) validate() error {
	missing := make([]string, 0, 3) //nolint:mnd // three required fields
	if strings.TrimSpace(s.APIURL) == "" {
		missing = append(missing, "api_url")
	}
	if strings.TrimSpace(s.Model) == "" {
		missing = append(missing, "model")
	}
	if strings.TrimSpace(s.OutputDir) == "" {
		missing = append(missing, "output_dir")
	}
	if len(missing) > 0 {
		return fmt.Errorf(
			"%w: missing %s, run 'thutor configure' first",
			ErrConfigurationMissing, strings.Join(missing, ", "),
		)
	}
	return nil
}

// ExpandHome replaces a leading "~" with the current user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
