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

//go:build !windows

package integration

import (
	"bytes"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/sirseerhq/github-activity/test/testutil"
)

func TestCLI_Interrupt(t *testing.T) {
	for _, sig := range []os.Signal{os.Interrupt, syscall.SIGTERM} {
		t.Run(sig.String(), func(t *testing.T) {
			server, arrived := testutil.NewHangingServer(t)

			cmd := testutil.NewCLICommand(t, "", []string{"octocat"}, map[string]string{
				"GITHUB_API_ENDPOINT": server.URL,
			})
			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			if err := cmd.Start(); err != nil {
				t.Fatalf("Failed to start CLI: %v", err)
			}

			select {
			case <-arrived:
			case <-time.After(30 * time.Second):
				_ = cmd.Process.Kill()
				t.Fatal("request never reached the server")
			}

			if err := cmd.Process.Signal(sig); err != nil {
				t.Fatalf("Failed to signal CLI: %v", err)
			}

			result := testutil.WaitCLI(cmd, &stdout, &stderr)
			testutil.AssertExitCode(t, result, 0)
			testutil.AssertLines(t, result.Stdout, "", "Program interrupted by user")
		})
	}
}
