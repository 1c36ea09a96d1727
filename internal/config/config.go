// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for github-activity with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by applyEnvOverrides.
const (
	EnvAPIEndpoint = "GITHUB_API_ENDPOINT"
	EnvLogLevel    = "GITHUB_ACTIVITY_LOG_LEVEL"
	EnvTimeout     = "GITHUB_ACTIVITY_TIMEOUT"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .github-activity.yaml (current directory)
//   - .github-activity.yml (current directory)
//   - ~/.github-activity/config.yaml
//   - ~/.github-activity/config.yml
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(expandPath(configPath), cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		for _, path := range defaultPaths() {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.GitHub.APIEndpoint = strings.TrimRight(cfg.GitHub.APIEndpoint, "/")
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))

	return cfg, nil
}

func defaultPaths() []string {
	home := homeDir()
	return []string{
		".github-activity.yaml",
		".github-activity.yml",
		filepath.Join(home, ".github-activity", "config.yaml"),
		filepath.Join(home, ".github-activity", "config.yml"),
	}
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) error {
	if endpoint := os.Getenv(EnvAPIEndpoint); endpoint != "" {
		cfg.GitHub.APIEndpoint = endpoint
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if timeout := os.Getenv(EnvTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvTimeout, timeout, err)
		}
		cfg.GitHub.Timeout = d
	}
	return nil
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir(), path[2:])
	}
	return os.ExpandEnv(path)
}

func homeDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home = os.Getenv("USERPROFILE") // Windows
	}
	return home
}

// Validate checks if the configuration contains valid values. This should be
// called after flags are applied so a bad flag is reported the same way as a
// bad file entry.
func (c *Config) Validate() error {
	if c.GitHub.APIEndpoint == "" {
		return fmt.Errorf("GitHub API endpoint cannot be empty")
	}
	u, err := url.Parse(c.GitHub.APIEndpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("GitHub API endpoint %q is not an absolute URL", c.GitHub.APIEndpoint)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("GitHub API endpoint scheme must be http or https, got: %s", u.Scheme)
	}
	if c.GitHub.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got: %s", c.GitHub.Timeout)
	}
	if !slices.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("unknown log level %q (want one of %s)", c.Logging.Level, strings.Join(validLevels, ", "))
	}
	if !slices.Contains(validFormats, c.Logging.Format) {
		return fmt.Errorf("unknown log format %q (want one of %s)", c.Logging.Format, strings.Join(validFormats, ", "))
	}
	return nil
}
