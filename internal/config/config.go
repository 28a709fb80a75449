// Package config loads the quaero CLI configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the quaero CLI configuration.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServiceConfig holds the search service connection settings.
type ServiceConfig struct {
	Endpoint   string `yaml:"endpoint"`
	APIKey     string `yaml:"api_key"`
	Index      string `yaml:"index"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Env   string `yaml:"env"`   // prod, dev (default: dev)
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads configuration from a YAML file. Values of the form ${VAR}
// are substituted from the environment before parsing.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Service.TimeoutSec <= 0 {
		c.Service.TimeoutSec = 30
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "dev"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Service.Endpoint == "" {
		return fmt.Errorf("service.endpoint is required")
	}
	if !strings.HasPrefix(c.Service.Endpoint, "http://") &&
		!strings.HasPrefix(c.Service.Endpoint, "https://") {
		return fmt.Errorf("service.endpoint must be an http(s) URL, got %q", c.Service.Endpoint)
	}
	switch c.Logging.Env {
	case "prod", "dev", "local", "docker":
	default:
		return fmt.Errorf("logging.env must be prod, dev, local or docker, got %q", c.Logging.Env)
	}
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// expandEnvVars substitutes ${VAR} references with environment values.
// Unset variables expand to the empty string.
func expandEnvVars(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		name := envVarPattern.FindSubmatch(match)[1]
		return []byte(os.Getenv(string(name)))
	})
}
