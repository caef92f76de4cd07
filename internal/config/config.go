package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/pyfmt/internal/model"
)

// ToolConfig holds the override for a single tool.
type ToolConfig struct {
	// Command is the executable to run instead of the default name.
	// Empty keeps the default.
	Command string `yaml:"command" json:"command"`
}

// Config is the parsed contents of a pyfmt config file.
type Config struct {
	Isort ToolConfig `yaml:"isort" json:"isort"`
	Black ToolConfig `yaml:"black" json:"black"`
}

// Load reads and parses the config file at path. The format is chosen by
// extension. Every failure is a CLIError with ExitConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("config file not found: %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}
	return cfg, nil
}

// Parse decodes data according to ext (".yaml", ".yml", ".json" or ".jsonc",
// case-insensitive). Unknown keys are rejected so typos do not go unnoticed.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; treat it as an empty config.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case ".json", ".jsonc":
		// Strip // and /* */ comments and trailing commas first.
		clean := jsonc.ToJSON(data)
		if len(bytes.TrimSpace(clean)) == 0 {
			return &cfg, nil
		}
		dec := json.NewDecoder(bytes.NewReader(clean))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (valid: .yaml, .yml, .json, .jsonc)", ext)
	}

	return &cfg, nil
}

// Apply merges cfg with command-line overrides. A non-empty flag wins over
// the file; an empty result means the tool's default executable.
// A nil receiver behaves like an empty config.
func (c *Config) Apply(isortFlag, blackFlag string) (isort, black string) {
	isort, black = isortFlag, blackFlag
	if c == nil {
		return isort, black
	}
	if isort == "" {
		isort = c.Isort.Command
	}
	if black == "" {
		black = c.Black.Command
	}
	return isort, black
}
