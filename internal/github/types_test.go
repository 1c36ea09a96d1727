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

package github

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"
)

func decodeEvent(t *testing.T, raw string) Event {
	t.Helper()
	var e Event
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("Failed to decode event: %v", err)
	}
	return e
}

func TestEventUnmarshalKeepsNumbersVerbatim(t *testing.T) {
	e := decodeEvent(t, `{"type": "IssueCommentEvent", "payload": {"issue": {"number": 12345678901234567890}}}`)

	if e.Type != "IssueCommentEvent" {
		t.Errorf("Type = %q, want IssueCommentEvent", e.Type)
	}
	v, err := e.Lookup("payload", "issue", "number")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	n, ok := v.(json.Number)
	if !ok {
		t.Fatalf("number decoded as %T, want json.Number", v)
	}
	if n.String() != "12345678901234567890" {
		t.Errorf("number = %s, want it unchanged", n)
	}
}

func TestEventWithoutType(t *testing.T) {
	e := decodeEvent(t, `{"id": "7", "repo": {"name": "a/b"}}`)
	if e.Type != "" {
		t.Errorf("Type = %q, want empty", e.Type)
	}

	e = decodeEvent(t, `{"type": 42}`)
	if e.Type != "" {
		t.Errorf("Type = %q, want empty for a non-string tag", e.Type)
	}
}

func TestEventLookup(t *testing.T) {
	e := decodeEvent(t, `{
		"type": "PushEvent",
		"repo": {"name": "octocat/Hello-World"},
		"payload": {"commits": [], "issue": null, "ref": "refs/heads/main"}
	}`)

	tests := []struct {
		name        string
		path        []string
		wantMissing string
		wantType    string
	}{
		{name: "nested string", path: []string{"repo", "name"}},
		{name: "empty array is present", path: []string{"payload", "commits"}},
		{name: "missing leaf", path: []string{"payload", "pull_request"}, wantMissing: "pull_request"},
		{name: "missing top level", path: []string{"actor", "login"}, wantMissing: "actor"},
		{name: "step into null", path: []string{"payload", "issue", "number"}, wantType: "payload.issue"},
		{name: "step into string", path: []string{"payload", "ref", "x"}, wantType: "payload.ref"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Lookup(tt.path...)

			var missing *MissingFieldError
			var typeErr *FieldTypeError
			switch {
			case tt.wantMissing != "":
				if !errors.As(err, &missing) {
					t.Fatalf("error = %v, want *MissingFieldError", err)
				}
				if missing.Field != tt.wantMissing {
					t.Errorf("Field = %q, want %q", missing.Field, tt.wantMissing)
				}
			case tt.wantType != "":
				if !errors.As(err, &typeErr) {
					t.Fatalf("error = %v, want *FieldTypeError", err)
				}
				if typeErr.Path != tt.wantType {
					t.Errorf("Path = %q, want %q", typeErr.Path, tt.wantType)
				}
			default:
				if err != nil {
					t.Errorf("Lookup(%v) unexpected error: %v", tt.path, err)
				}
			}
		})
	}
}

func TestEventMarshalRoundTrip(t *testing.T) {
	raw := `{"id":"1","payload":{"action":"started"},"type":"WatchEvent"}`
	e := decodeEvent(t, raw)

	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != raw {
		t.Errorf("Marshal() = %s, want %s", out, raw)
	}
}

func TestParseRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		headers       map[string]string
		wantKnown     bool
		wantRemaining int
		wantLimit     int
		wantReset     time.Time
		wantExhausted bool
	}{
		{
			name:    "no headers",
			headers: map[string]string{},
		},
		{
			name: "full set",
			headers: map[string]string{
				"X-RateLimit-Limit":     "60",
				"X-RateLimit-Remaining": "59",
				"X-RateLimit-Reset":     "1700000000",
			},
			wantKnown:     true,
			wantRemaining: 59,
			wantLimit:     60,
			wantReset:     time.Unix(1700000000, 0),
		},
		{
			name: "exhausted",
			headers: map[string]string{
				"X-RateLimit-Remaining": "0",
			},
			wantKnown:     true,
			wantExhausted: true,
		},
		{
			name: "garbage values ignored",
			headers: map[string]string{
				"X-RateLimit-Remaining": "zero",
				"X-RateLimit-Reset":     "later",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}
			rl := parseRateLimit(h)

			if rl.Known != tt.wantKnown {
				t.Errorf("Known = %v, want %v", rl.Known, tt.wantKnown)
			}
			if rl.Remaining != tt.wantRemaining {
				t.Errorf("Remaining = %d, want %d", rl.Remaining, tt.wantRemaining)
			}
			if rl.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", rl.Limit, tt.wantLimit)
			}
			if !rl.Reset.Equal(tt.wantReset) {
				t.Errorf("Reset = %v, want %v", rl.Reset, tt.wantReset)
			}
			if rl.Exhausted() != tt.wantExhausted {
				t.Errorf("Exhausted() = %v, want %v", rl.Exhausted(), tt.wantExhausted)
			}
		})
	}
}
