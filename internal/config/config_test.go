package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/pyfmt/internal/model"
)

// writeConfig writes content to a file with the given name in a temp dir.
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoad covers each supported format.
func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantSort string
		wantFmt  string
	}{
		{
			name:     "yaml",
			file:     "pyfmt.yaml",
			content:  "isort:\n  command: /venv/bin/isort\nblack:\n  command: /venv/bin/black\n",
			wantSort: "/venv/bin/isort",
			wantFmt:  "/venv/bin/black",
		},
		{
			name:     "yml with only black",
			file:     "pyfmt.yml",
			content:  "black:\n  command: black-22\n",
			wantSort: "",
			wantFmt:  "black-22",
		},
		{
			name: "jsonc with comments and trailing comma",
			file: "pyfmt.jsonc",
			content: `{
  // pinned sorter
  "isort": {"command": "/venv/bin/isort"},
  /* formatter */
  "black": {"command": "/venv/bin/black"},
}`,
			wantSort: "/venv/bin/isort",
			wantFmt:  "/venv/bin/black",
		},
		{
			name:     "plain json upper-case extension",
			file:     "pyfmt.JSON",
			content:  `{"isort": {"command": "i"}}`,
			wantSort: "i",
		},
		{
			name:    "empty yaml",
			file:    "empty.yaml",
			content: "",
		},
		{
			name:    "json with only a comment",
			file:    "empty.jsonc",
			content: "// nothing here\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantSort, cfg.Isort.Command)
			assert.Equal(t, tt.wantFmt, cfg.Black.Command)
		})
	}
}

// TestLoad_Errors verifies that every failure carries ExitConfigError.
func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
		},
		{
			name: "unsupported extension",
			path: func(t *testing.T) string { return writeConfig(t, "pyfmt.toml", "x = 1\n") },
		},
		{
			name: "malformed yaml",
			path: func(t *testing.T) string { return writeConfig(t, "pyfmt.yaml", "isort: [\n") },
		},
		{
			name: "unknown yaml key",
			path: func(t *testing.T) string { return writeConfig(t, "pyfmt.yaml", "isrot:\n  command: x\n") },
		},
		{
			name: "unknown json key",
			path: func(t *testing.T) string { return writeConfig(t, "pyfmt.json", `{"black": {"cmd": "x"}}`) },
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string { return writeConfig(t, "pyfmt.json", `{"black": `) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			require.Error(t, err)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, model.ExitConfigError, cliErr.Code)
		})
	}
}

// TestApply verifies flag > file > default precedence.
func TestApply(t *testing.T) {
	cfg := &Config{
		Isort: ToolConfig{Command: "file-isort"},
		Black: ToolConfig{Command: "file-black"},
	}

	tests := []struct {
		name      string
		cfg       *Config
		isortFlag string
		blackFlag string
		wantIsort string
		wantBlack string
	}{
		{name: "file only", cfg: cfg, wantIsort: "file-isort", wantBlack: "file-black"},
		{name: "flags win", cfg: cfg, isortFlag: "flag-isort", blackFlag: "flag-black", wantIsort: "flag-isort", wantBlack: "flag-black"},
		{name: "mixed", cfg: cfg, blackFlag: "flag-black", wantIsort: "file-isort", wantBlack: "flag-black"},
		{name: "nil config", cfg: nil, isortFlag: "flag-isort", wantIsort: "flag-isort"},
		{name: "nothing set", cfg: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isort, black := tt.cfg.Apply(tt.isortFlag, tt.blackFlag)
			assert.Equal(t, tt.wantIsort, isort)
			assert.Equal(t, tt.wantBlack, black)
		})
	}
}
