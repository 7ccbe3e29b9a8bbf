package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvConfig names the environment variable holding the config file path
const EnvConfig = "MINILISP_CONFIG"

// Output formats understood by the ast command
const (
	FormatText   = "text"
	FormatEncode = "encode"
	FormatYAML   = "yaml"
	FormatJSON   = "json"
)

// Config holds the settings of the minilisp command
type Config struct {
	REPL   REPLConfig   `toml:"repl"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// REPLConfig holds the interactive reader settings
type REPLConfig struct {
	Prompt string `toml:"prompt"`
	Color  bool   `toml:"color"`
}

// OutputConfig holds the AST dump settings
type OutputConfig struct {
	Format string `toml:"format"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.REPL.Color = true
	cfg.applyDefaults()
	return cfg
}

// Load reads a TOML file on top of the defaults. An empty path falls back to
// $MINILISP_CONFIG, and to the defaults when that is unset too.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		return Default(), nil
	}
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "lisp >> "
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate rejects unknown output formats and log levels
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatEncode, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// SlogLevel returns the configured log level, info if it can't be parsed
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
