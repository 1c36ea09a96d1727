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
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"testing"
	"time"
)

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	return resp, body
}

func TestNewEventsServer(t *testing.T) {
	server := NewEventsServer(t, Feed(
		NewPushEvent("octocat/Hello-World", 2),
		NewStarEvent("octocat/Spoon-Knife").WithActor("hubot"),
	))

	resp, body := get(t, server.URL+"/users/octocat/events")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("X-RateLimit-Remaining") != "59" {
		t.Errorf("X-RateLimit-Remaining = %q, want 59", resp.Header.Get("X-RateLimit-Remaining"))
	}

	var feed []map[string]any
	if err := json.Unmarshal(body, &feed); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("len(feed) = %d, want 2", len(feed))
	}

	push := feed[0]
	if push["type"] != "PushEvent" {
		t.Errorf("type = %v, want PushEvent", push["type"])
	}
	commits := push["payload"].(map[string]any)["commits"].([]any)
	if len(commits) != 2 {
		t.Errorf("len(commits) = %d, want 2", len(commits))
	}
	if push["id"] == feed[1]["id"] {
		t.Error("events should get distinct ids")
	}

	star := feed[1]
	if star["actor"].(map[string]any)["login"] != "hubot" {
		t.Errorf("actor = %v, want hubot", star["actor"])
	}

	if server.Requests() != 1 {
		t.Errorf("Requests() = %d, want 1", server.Requests())
	}
	if paths := server.Paths(); len(paths) != 1 || paths[0] != "/users/octocat/events" {
		t.Errorf("Paths() = %v", paths)
	}
}

func TestNewEventsServer_EmptyFeed(t *testing.T) {
	server := NewEventsServer(t, Feed())

	_, body := get(t, server.URL)
	if got := string(body); got != "[]\n" {
		t.Errorf("body = %q, want empty array", got)
	}
}

func TestBuilderOmissions(t *testing.T) {
	event := NewPushEvent("a/b", 1).WithoutPayload("commits").WithoutRepo().Build()

	if _, ok := event["repo"]; ok {
		t.Error("repo should be omitted")
	}
	if _, ok := event["payload"].(map[string]any)["commits"]; ok {
		t.Error("commits should be omitted")
	}
}

func TestNewRateLimitServer(t *testing.T) {
	reset := time.Unix(1700000000, 0)
	server := NewRateLimitServer(t, Feed(), reset)

	resp, _ := get(t, server.URL)

	if resp.Header.Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("X-RateLimit-Remaining = %q, want 0", resp.Header.Get("X-RateLimit-Remaining"))
	}
	if resp.Header.Get("X-RateLimit-Reset") != strconv.FormatInt(reset.Unix(), 10) {
		t.Errorf("X-RateLimit-Reset = %q", resp.Header.Get("X-RateLimit-Reset"))
	}
}

func TestNewErrorServer(t *testing.T) {
	server := NewErrorServer(t, http.StatusNotFound)

	resp, body := get(t, server.URL)

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	var msg map[string]any
	if err := json.Unmarshal(body, &msg); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if msg["message"] != "Not Found" {
		t.Errorf("message = %v, want Not Found", msg["message"])
	}
}

func TestUnreachableURL(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}
	if _, err := client.Get(UnreachableURL(t)); err == nil {
		t.Error("expected connection to be refused")
	}
}

func TestNewHangingServer(t *testing.T) {
	server, arrived := NewHangingServer(t)

	client := &http.Client{Timeout: 100 * time.Millisecond}
	if _, err := client.Get(server.URL); err == nil {
		t.Fatal("expected the request to time out")
	}

	select {
	case <-arrived:
	default:
		t.Error("request arrival was not signalled")
	}
}

func TestConfigFileYAML(t *testing.T) {
	tests := []struct {
		name string
		cfg  ConfigFile
		want string
	}{
		{name: "empty", cfg: ConfigFile{}, want: ""},
		{
			name: "endpoint only",
			cfg:  ConfigFile{APIEndpoint: "http://127.0.0.1:1"},
			want: "github:\n  api_endpoint: http://127.0.0.1:1\n",
		},
		{
			name: "all",
			cfg:  ConfigFile{APIEndpoint: "http://x", Timeout: "5s", LogLevel: "debug", LogFormat: "json"},
			want: "github:\n  api_endpoint: http://x\n  timeout: 5s\nlogging:\n  level: debug\n  format: json\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.YAML(); got != tt.want {
				t.Errorf("YAML() = %q, want %q", got, tt.want)
			}
		})
	}
}
