package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "lisp >> ", cfg.REPL.Prompt)
	assert.True(t, cfg.REPL.Color)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvConfig, "")

	path := writeConfig(t, `
[repl]
prompt = "> "
color = false

[output]
format = "yaml"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "> ", cfg.REPL.Prompt)
	assert.False(t, cfg.REPL.Color)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadPartial(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[output]\nformat = \"json\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "lisp >> ", cfg.REPL.Prompt)
	assert.True(t, cfg.REPL.Color)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvConfig, writeConfig(t, "[repl]\nprompt = \"? \"\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "? ", cfg.REPL.Prompt)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvConfig, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[output\nformat = "))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[output]\nformat = \"xml\"\n"))
	assert.EqualError(t, err, `unknown output format "xml"`)

	_, err = Load(writeConfig(t, "[log]\nlevel = \"loud\"\n"))
	assert.EqualError(t, err, `unknown log level "loud"`)
}
