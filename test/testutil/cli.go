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
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var (
	binaryOnce sync.Once
	binaryPath string
	buildErr   error
)

// BuildBinary builds the github-activity binary once per test run
func BuildBinary(t *testing.T) string {
	t.Helper()

	binaryOnce.Do(func() {
		// Create a persistent temp directory, not tied to test cleanup
		tmpDir, err := os.MkdirTemp("", "github-activity-test")
		if err != nil {
			buildErr = err
			return
		}
		binaryPath = filepath.Join(tmpDir, "github-activity")

		// Find project root by looking for go.mod
		projectRoot, err := findProjectRoot()
		if err != nil {
			buildErr = err
			return
		}

		cmd := exec.Command("go", "build", "-o", binaryPath, filepath.Join(projectRoot, "cmd", "github-activity"))
		if output, err := cmd.CombinedOutput(); err != nil {
			buildErr = err
			t.Logf("Build output: %s", output)
		}
	})

	if buildErr != nil {
		t.Fatalf("Failed to build binary: %v", buildErr)
	}

	return binaryPath
}

// CLIResult contains the result of running a CLI command
type CLIResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

// Lines splits Stdout into lines without the trailing newline.
func (r CLIResult) Lines() []string {
	out := strings.TrimSuffix(r.Stdout, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// CLIEnv returns a minimal environment for the binary: an empty HOME so no
// user config is discovered, plus the given overrides.
func CLIEnv(t *testing.T, env map[string]string) []string {
	t.Helper()

	result := []string{
		"HOME=" + t.TempDir(),
		"PATH=" + os.Getenv("PATH"),
	}
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	return result
}

// NewCLICommand prepares the binary to run with args in dir. An empty dir
// means a fresh temporary directory.
func NewCLICommand(t *testing.T, dir string, args []string, env map[string]string) *exec.Cmd {
	t.Helper()

	if dir == "" {
		dir = t.TempDir()
	}

	cmd := exec.Command(BuildBinary(t), args...)
	cmd.Dir = dir
	cmd.Env = CLIEnv(t, env)
	return cmd
}

// RunCLI executes the github-activity binary with the given arguments
func RunCLI(t *testing.T, args []string, env map[string]string) CLIResult {
	t.Helper()
	return RunCLIInDir(t, "", args, env)
}

// RunCLIInDir is RunCLI with a chosen working directory.
func RunCLIInDir(t *testing.T, dir string, args []string, env map[string]string) CLIResult {
	t.Helper()

	cmd := NewCLICommand(t, dir, args, env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	return result(cmd.Run(), &stdout, &stderr)
}

// WaitCLI waits for a command started with NewCLICommand whose output was
// captured in stdout and stderr.
func WaitCLI(cmd *exec.Cmd, stdout, stderr *bytes.Buffer) CLIResult {
	return result(cmd.Wait(), stdout, stderr)
}

func result(err error, stdout, stderr *bytes.Buffer) CLIResult {
	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		exitCode = -1
	}

	return CLIResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Err:      err,
	}
}

// AssertCLISuccess checks that the CLI command succeeded
func AssertCLISuccess(t *testing.T, result CLIResult) {
	t.Helper()

	if result.Err != nil {
		t.Fatalf("Command failed: %v\nStdout: %s\nStderr: %s", result.Err, result.Stdout, result.Stderr)
	}
}

// AssertCLIError checks that the CLI command failed and printed the
// expected error. Errors are printed on stdout.
func AssertCLIError(t *testing.T, result CLIResult, expectedError string) {
	t.Helper()

	if result.Err == nil {
		t.Fatal("Expected command to fail, but it succeeded")
	}

	if expectedError != "" && !strings.Contains(result.Stdout, expectedError) {
		t.Errorf("Expected error containing %q, got: %s", expectedError, result.Stdout)
	}
}

// AssertExitCode checks the command exit code
func AssertExitCode(t *testing.T, result CLIResult, expected int) {
	t.Helper()

	if result.ExitCode != expected {
		t.Errorf("Expected exit code %d, got %d\nStdout: %s\nStderr: %s", expected, result.ExitCode, result.Stdout, result.Stderr)
	}
}

// RunWithMockServer runs the CLI for user against server
func RunWithMockServer(t *testing.T, server *MockServer, user string, args ...string) CLIResult {
	t.Helper()

	fullArgs := append([]string{user}, args...)
	env := map[string]string{
		"GITHUB_API_ENDPOINT": server.URL,
	}

	return RunCLI(t, fullArgs, env)
}

// findProjectRoot finds the project root by looking for go.mod
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
