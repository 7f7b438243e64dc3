// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the SkillShare client.
//
// Configuration is loaded from a single file specified by:
//   - SKILLSHARE_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. When neither is present the
// built-in defaults apply, so a config file is only needed to point the client
// at a non-default backend or tune timing.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the master configuration for the SkillShare client.
type Config struct {
	// Server configures the backend connection.
	Server ServerConfig `yaml:"server"`

	// Mentors configures the mentor session view.
	Mentors MentorsConfig `yaml:"mentors"`

	// Session configures local session persistence.
	Session SessionConfig `yaml:"session"`
}

// ServerConfig configures the backend connection.
type ServerConfig struct {
	// BaseURL is the root of the SkillShare backend.
	// Default: http://localhost:3000
	BaseURL string `yaml:"base_url"`

	// RequestTimeout bounds each API request.
	// Default: 15s
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// MentorsConfig configures the mentor session view.
type MentorsConfig struct {
	// PollInterval is how often the mentor list refreshes while the
	// mentors page is visible.
	// Default: 30s
	PollInterval time.Duration `yaml:"poll_interval"`
}

// SessionConfig configures local session persistence.
type SessionConfig struct {
	// TokenPath overrides where the session token is stored.
	// Default: $XDG_CONFIG_HOME/skillshare/session.json
	TokenPath string `yaml:"token_path"`
}

// Default returns the default configuration. These defaults make the client
// usable against a local backend with no config file at all.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:        "http://localhost:3000",
			RequestTimeout: 15 * time.Second,
		},
		Mentors: MentorsConfig{
			PollInterval: 30 * time.Second,
		},
		Session: SessionConfig{
			TokenPath: "",
		},
	}
}

// Load loads configuration from the SKILLSHARE_CONFIG environment variable.
// If the variable is unset the defaults are returned unchanged.
func Load() (*Config, error) {
	configPath := os.Getenv("SKILLSHARE_CONFIG")
	if configPath == "" {
		return Default(), nil
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth for the values it sets.
// Fields absent from the file keep their defaults. Environment variables do
// not override file values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", c.Server.BaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base_url %q must use http or https", c.Server.BaseURL)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.Server.RequestTimeout)
	}
	if c.Mentors.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", c.Mentors.PollInterval)
	}
	return nil
}
