// Package config loads the minijs command-line configuration from TOML.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable consulted for a config path when
// none is given on the command line.
const EnvVar = "MINIJS_CONFIG"

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "minijs.toml"

// Config holds the complete CLI configuration
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls how ASTs are printed
type OutputConfig struct {
	Format string `toml:"format"` // text | json | yaml
	Indent int    `toml:"indent"` // spaces per level; 0 means compact JSON
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level"` // debug | info | warn | error
}

var (
	formats = map[string]bool{"text": true, "json": true, "yaml": true}
	levels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults(toml.MetaData{})
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	cfg.applyDefaults(md)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve finds and loads the configuration. The lookup order is the
// explicit path, then $MINIJS_CONFIG, then ./minijs.toml. An explicit or
// environment path must exist; a missing default file yields Default().
// The returned path is empty when defaults are used.
func Resolve(explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}

	if _, err := os.Stat(DefaultFile); err == nil {
		cfg, err := Load(DefaultFile)
		return cfg, DefaultFile, err
	}
	return Default(), "", nil
}

// applyDefaults sets default values for missing configuration. md tells
// whether indent was set explicitly, since 0 is a meaningful value.
func (c *Config) applyDefaults(md toml.MetaData) {
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if !md.IsDefined("output", "indent") {
		c.Output.Indent = 2
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate rejects unknown formats and log levels and negative indents.
func (c *Config) Validate() error {
	if !formats[c.Output.Format] {
		return fmt.Errorf("output.format: unknown format %q (want text, json or yaml)", c.Output.Format)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent: must not be negative, got %d", c.Output.Indent)
	}
	if !levels[c.Log.Level] {
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	return nil
}
