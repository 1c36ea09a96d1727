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
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	activityerrors "github.com/sirseerhq/github-activity/internal/errors"
	"github.com/sirseerhq/github-activity/internal/username"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
type MockClient struct {
	// Events to return
	Events []Event

	// RateLimit reported on the returned page
	RateLimit RateLimit

	// Error to return
	Error error

	// Behavior flags
	ShouldFailNetwork  bool
	ShouldFailNotFound bool

	// Track calls for verification
	CallCount    int
	LastUsername username.Username
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Events: generateTestEvents(),
	}
}

// ListUserEvents implements the Client interface
func (m *MockClient) ListUserEvents(ctx context.Context, user username.Username) (*EventsPage, error) {
	m.CallCount++
	m.LastUsername = user

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.ShouldFailNetwork {
		return nil, fmt.Errorf("dial tcp: %w", activityerrors.ErrNetworkFailure)
	}

	if m.ShouldFailNotFound || user == "nonexistent" {
		return nil, &StatusError{StatusCode: http.StatusNotFound, Message: "Not Found"}
	}

	if m.Error != nil {
		return nil, m.Error
	}

	return &EventsPage{Events: m.Events, RateLimit: m.RateLimit}, nil
}

// generateTestEvents creates one event of every formatted type
func generateTestEvents() []Event {
	const feed = `[
		{"id": "1", "type": "PushEvent", "repo": {"name": "octocat/Hello-World"},
		 "payload": {"commits": [{"sha": "a"}, {"sha": "b"}, {"sha": "c"}]}},
		{"id": "2", "type": "IssuesEvent", "repo": {"name": "octocat/Spoon-Knife"},
		 "payload": {"action": "opened", "issue": {"number": 12}}},
		{"id": "3", "type": "IssueCommentEvent", "repo": {"name": "octocat/Spoon-Knife"},
		 "payload": {"action": "created", "issue": {"number": 12}}},
		{"id": "4", "type": "PullRequestEvent", "repo": {"name": "octocat/linguist"},
		 "payload": {"action": "opened", "pull_request": {"number": 7}}},
		{"id": "5", "type": "PullRequestReviewEvent", "repo": {"name": "octocat/linguist"},
		 "payload": {"action": "created", "pull_request": {"number": 7}}},
		{"id": "6", "type": "WatchEvent", "repo": {"name": "octocat/git-consortium"},
		 "payload": {"action": "started"}}
	]`

	var events []Event
	if err := json.Unmarshal([]byte(feed), &events); err != nil {
		panic(err)
	}
	return events
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithEvents sets specific events to return
func WithEvents(events []Event) MockClientOption {
	return func(m *MockClient) {
		m.Events = events
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithNetworkFailure makes the client simulate a connection failure
func WithNetworkFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailNetwork = true
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
