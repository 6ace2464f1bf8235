// Package config resolves bracecheck settings from defaults, the
// .bracecheck.yaml file, .env and the process environment.
//
// Precedence (highest to lowest): command line flags (applied by the caller),
// environment variables, config file, defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/bracecheck/pkg/bracecheck"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the file looked up in the working directory.
const ConfigFileName = ".bracecheck.yaml"

// Environment variables consulted by ApplyEnv.
const (
	EnvColor           = "BRACECHECK_COLOR"
	EnvEncoding        = "BRACECHECK_ENCODING"
	EnvContextWidth    = "BRACECHECK_CONTEXT_WIDTH"
	EnvFailOnImbalance = "BRACECHECK_FAIL_ON_IMBALANCE"
)

// Config holds the settings that can be given outside the command line.
type Config struct {
	Color           string `yaml:"color"`
	Encoding        string `yaml:"encoding"`
	ContextWidth    int    `yaml:"context_width"`
	FailOnImbalance bool   `yaml:"fail_on_imbalance"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Color:        bracecheck.ColorAuto,
		Encoding:     bracecheck.DefaultEncoding,
		ContextWidth: bracecheck.DefaultContextWidth,
	}
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file. Keys missing from the file keep their default.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", path, err, bracecheck.ErrInvalidConfig)
	}
	return &cfg, nil
}

// Resolve builds the effective configuration for a run started in dir.
//
// If explicitPath is set that file must exist; otherwise ConfigFileName in dir
// is used when present. A .env file in dir is loaded into the process
// environment (without overriding variables already set) before the
// environment is consulted.
func Resolve(dir, explicitPath string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if explicitPath != "" {
		cfg, err = LoadFile(explicitPath)
		if errors.Is(err, ErrConfigNotFound) {
			return nil, fmt.Errorf("config file %s not found: %w", explicitPath, bracecheck.ErrInvalidConfig)
		}
	} else {
		cfg, err = Load(dir)
		if errors.Is(err, ErrConfigNotFound) {
			def := Default()
			cfg, err = &def, nil
		}
	}
	if err != nil {
		return nil, err
	}

	if err := LoadDotEnv(dir); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads dir/.env if it exists. Variables already present in the
// environment win over the file.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %v: %w", path, err, bracecheck.ErrInvalidConfig)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvColor); ok && v != "" {
		c.Color = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvEncoding); ok && v != "" {
		c.Encoding = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvContextWidth); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q is not a number: %w", EnvContextWidth, v, bracecheck.ErrInvalidConfig)
		}
		c.ContextWidth = n
	}
	if v, ok := lookup(EnvFailOnImbalance); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q is not a boolean: %w", EnvFailOnImbalance, v, bracecheck.ErrInvalidConfig)
		}
		c.FailOnImbalance = b
	}
	return nil
}

// Validate checks the fields that are not validated by bracecheck.CheckConfig.
func (c *Config) Validate() error {
	switch c.Color {
	case bracecheck.ColorAuto, bracecheck.ColorOn, bracecheck.ColorOff:
	default:
		return fmt.Errorf("color must be one of auto, on, off; got %q: %w", c.Color, bracecheck.ErrInvalidConfig)
	}
	if c.ContextWidth < 1 {
		return fmt.Errorf("context_width must be at least 1, got %d: %w", c.ContextWidth, bracecheck.ErrInvalidConfig)
	}
	return nil
}
