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

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ConfigFile describes the YAML config written by WriteConfigFile. Empty
// fields are left out.
type ConfigFile struct {
	APIEndpoint string
	Timeout     string
	LogLevel    string
	LogFormat   string
}

// YAML renders the config file contents.
func (c ConfigFile) YAML() string {
	var b strings.Builder
	if c.APIEndpoint != "" || c.Timeout != "" {
		b.WriteString("github:\n")
		if c.APIEndpoint != "" {
			fmt.Fprintf(&b, "  api_endpoint: %s\n", c.APIEndpoint)
		}
		if c.Timeout != "" {
			fmt.Fprintf(&b, "  timeout: %s\n", c.Timeout)
		}
	}
	if c.LogLevel != "" || c.LogFormat != "" {
		b.WriteString("logging:\n")
		if c.LogLevel != "" {
			fmt.Fprintf(&b, "  level: %s\n", c.LogLevel)
		}
		if c.LogFormat != "" {
			fmt.Fprintf(&b, "  format: %s\n", c.LogFormat)
		}
	}
	return b.String()
}

// WriteConfigFile writes cfg to dir/name, creating dir if needed, and
// returns the path.
func WriteConfigFile(t *testing.T, dir, name string, cfg ConfigFile) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(cfg.YAML()), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

// CreateTempFile creates a temporary file with the given content
func CreateTempFile(t *testing.T, dir, pattern, content string) string {
	t.Helper()

	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	if _, err := file.WriteString(content); err != nil {
		file.Close()
		t.Fatalf("Failed to write to temp file: %v", err)
	}

	if err := file.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	t.Cleanup(func() {
		os.Remove(file.Name())
	})

	return file.Name()
}

// ListFiles returns the paths of all regular files under dir, relative to dir.
func ListFiles(t *testing.T, dir string) []string {
	t.Helper()

	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to list %s: %v", dir, err)
	}
	return files
}
