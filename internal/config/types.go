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

// Package config types define the configuration structures used throughout
// github-activity. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

import "time"

// Config represents the complete configuration for github-activity.
type Config struct {
	GitHub  GitHubConfig  `yaml:"github"`
	Logging LoggingConfig `yaml:"logging"`
}

// GitHubConfig contains the REST endpoint used for the events request.
// Pointing APIEndpoint at a GitHub Enterprise host or a local test server
// is the only reason to change it.
type GitHubConfig struct {
	APIEndpoint string `yaml:"api_endpoint"`

	// Timeout bounds the whole request. Zero leaves the HTTP client's
	// defaults in place, which means no timeout.
	Timeout time.Duration `yaml:"timeout"`
}

// LoggingConfig controls the diagnostic log written to stderr. It never
// affects the activity lines printed on stdout.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config that talks to public GitHub.com and keeps
// diagnostics quiet.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIEndpoint: "https://api.github.com",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
