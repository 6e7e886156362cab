// Package config loads jugsolver settings from YAML or TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds all jugsolver configuration
type Config struct {
	Profile   string       `yaml:"profile" toml:"profile"`
	Format    string       `yaml:"format" toml:"format"`
	Heuristic string       `yaml:"heuristic" toml:"heuristic"`
	LogLevel  string       `yaml:"log_level" toml:"log_level"`
	Server    ServerConfig `yaml:"server" toml:"server"`

	// The path the config was loaded from, empty for defaults
	LoadPath string `yaml:"-" toml:"-"`
}

// ServerConfig holds HTTP service settings
type ServerConfig struct {
	Host           string   `yaml:"host" toml:"host"`
	Port           int      `yaml:"port" toml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" toml:"allowed_origins"`
	MaxSessions    int      `yaml:"max_sessions" toml:"max_sessions"`
	SessionTTL     Duration `yaml:"session_ttl" toml:"session_ttl"`
	MaxCapacity    int      `yaml:"max_capacity" toml:"max_capacity"`
	ReadTimeout    Duration `yaml:"read_timeout" toml:"read_timeout"`
}

// Duration is a time.Duration written as a string such as "5s" in both formats.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed

	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Accepted values for the enumerated settings.
var (
	Profiles   = []string{"water-jug", "space-calibration", "fuel-blending"}
	Formats    = []string{"table", "text", "json"}
	Heuristics = []string{"min-distance", "unit"}
	LogLevels  = []string{"error", "warn", "info", "debug"}
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads configuration from a file. Files ending in .toml are parsed as
// TOML, anything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	cfg.LoadPath = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Profile == "" {
		c.Profile = "water-jug"
	}
	if c.Format == "" {
		c.Format = "table"
	}
	if c.Heuristic == "" {
		c.Heuristic = "min-distance"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if c.Server.MaxSessions == 0 {
		c.Server.MaxSessions = 64
	}
	if c.Server.SessionTTL.Duration == 0 {
		c.Server.SessionTTL.Duration = 5 * time.Minute
	}
	if c.Server.MaxCapacity == 0 {
		c.Server.MaxCapacity = 10000
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 5 * time.Second
	}
}

// Validate checks the enumerated settings and the server limits.
func (c *Config) Validate() error {
	checks := []struct {
		field   string
		value   string
		allowed []string
	}{
		{field: "profile", value: c.Profile, allowed: Profiles},
		{field: "format", value: c.Format, allowed: Formats},
		{field: "heuristic", value: c.Heuristic, allowed: Heuristics},
		{field: "log_level", value: c.LogLevel, allowed: LogLevels},
	}
	for _, check := range checks {
		if !slices.Contains(check.allowed, check.value) {
			return fmt.Errorf("unsupported %s %q - must be one of: %s", check.field, check.value, strings.Join(check.allowed, ", "))
		}
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Server.MaxSessions < 0 {
		return fmt.Errorf("server max_sessions cannot be negative (got %d)", c.Server.MaxSessions)
	}
	if c.Server.MaxCapacity < 0 {
		return fmt.Errorf("server max_capacity cannot be negative (got %d)", c.Server.MaxCapacity)
	}
	if c.Server.SessionTTL.Duration < 0 {
		return fmt.Errorf("server session_ttl cannot be negative (got %s)", c.Server.SessionTTL)
	}

	return nil
}

// Address is the host:port the HTTP service listens on.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
