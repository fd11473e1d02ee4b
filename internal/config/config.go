// Package config loads the settings of the typekit command line tool.
//
// Configuration comes from a single file named by the --config flag or, when
// the flag is absent, by the TYPEKIT_CONFIG environment variable. There is no
// discovery: with neither set, the built-in defaults apply. Files ending in
// .yaml or .yml are read as YAML and files ending in .toml as TOML. Command
// line flags override values from the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const EnvVar = "TYPEKIT_CONFIG"

var (
	ErrUnsupportedFormat = errors.New("unsupported config file format")
	ErrInvalidConfig     = errors.New("invalid config")
)

type Config struct {
	Parse  ParseConfig  `yaml:"parse" toml:"parse"`
	Output OutputConfig `yaml:"output" toml:"output"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

// ParseConfig holds the defaults for integer conversion.
type ParseConfig struct {
	// Base is 0 for prefix detection, or 2 through 36.
	Base int `yaml:"base" toml:"base"`
	// Delims lists the characters allowed to end a number.
	Delims string `yaml:"delims" toml:"delims"`
}

type OutputConfig struct {
	// Format is one of text, json, yaml, cbor.
	Format string `yaml:"format" toml:"format"`
	// Shell is one of auto, sh, powershell, cmd.
	Shell string `yaml:"shell" toml:"shell"`
	// EnvPrefix is prepended to exported variable names. ${VAR} and
	// ${VAR:-default} are expanded from the environment.
	EnvPrefix string `yaml:"env_prefix" toml:"env_prefix"`
	// MultiFormat is a comma separated list of comma, newline, space and
	// json. Empty keeps every argument as one value.
	MultiFormat string `yaml:"multi_format" toml:"multi_format"`
}

type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	// Format is text or json.
	Format string `yaml:"format" toml:"format"`
}

func Default() *Config {
	return &Config{
		Parse: ParseConfig{Base: 0},
		Output: OutputConfig{
			Format: "text",
			Shell:  "auto",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads the file at path, or the file named by TYPEKIT_CONFIG when path
// is empty. With neither, it returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads one configuration file over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.expandVariables()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, c)
	case ".toml":
		meta, err := toml.DecodeFile(path, c)
		if err != nil {
			return err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Validate checks the fields that have a closed set of values.
func (c *Config) Validate() error {
	if c.Parse.Base != 0 && (c.Parse.Base < 2 || c.Parse.Base > 36) {
		return fmt.Errorf("%w: parse.base %d is not 0 or 2..36", ErrInvalidConfig, c.Parse.Base)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format %q is not text or json", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

func (c *Config) expandVariables() {
	c.Output.EnvPrefix = expandVars(c.Output.EnvPrefix)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}
