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
	"sync/atomic"
	"time"
)

// EventBuilder provides a fluent API for creating feed entries the way the
// events endpoint returns them.
type EventBuilder struct {
	id        string
	eventType string
	repo      string
	actor     string
	createdAt time.Time
	payload   map[string]any
	omitRepo  bool
}

var nextEventID atomic.Int64

// NewEventBuilder creates a builder for an event of the given type with an
// empty payload.
func NewEventBuilder(eventType, repo string) *EventBuilder {
	return &EventBuilder{
		id:        fmt.Sprintf("%d", 1000+nextEventID.Add(1)),
		eventType: eventType,
		repo:      repo,
		actor:     "octocat",
		createdAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		payload:   map[string]any{},
	}
}

// NewPushEvent creates a PushEvent with n commits.
func NewPushEvent(repo string, n int) *EventBuilder {
	commits := make([]any, 0, n)
	for i := 0; i < n; i++ {
		commits = append(commits, map[string]any{
			"sha":     fmt.Sprintf("%040d", i),
			"message": fmt.Sprintf("commit %d", i),
		})
	}
	return NewEventBuilder("PushEvent", repo).WithPayload("commits", commits)
}

// NewStarEvent creates a WatchEvent, which is what starring produces.
func NewStarEvent(repo string) *EventBuilder {
	return NewEventBuilder("WatchEvent", repo).WithPayload("action", "started")
}

// NewIssueEvent creates an IssuesEvent for issue number.
func NewIssueEvent(repo string, number int) *EventBuilder {
	return NewEventBuilder("IssuesEvent", repo).
		WithPayload("action", "opened").
		WithPayload("issue", map[string]any{"number": number})
}

// NewIssueCommentEvent creates an IssueCommentEvent on issue number.
func NewIssueCommentEvent(repo string, number int) *EventBuilder {
	return NewEventBuilder("IssueCommentEvent", repo).
		WithPayload("action", "created").
		WithPayload("issue", map[string]any{"number": number})
}

// NewPullRequestEvent creates a PullRequestEvent for PR number.
func NewPullRequestEvent(repo string, number int) *EventBuilder {
	return NewEventBuilder("PullRequestEvent", repo).
		WithPayload("action", "opened").
		WithPayload("pull_request", map[string]any{"number": number})
}

// NewPullRequestReviewEvent creates a PullRequestReviewEvent for PR number.
func NewPullRequestReviewEvent(repo string, number int) *EventBuilder {
	return NewEventBuilder("PullRequestReviewEvent", repo).
		WithPayload("action", "created").
		WithPayload("pull_request", map[string]any{"number": number})
}

// WithPayload sets one payload member.
func (b *EventBuilder) WithPayload(key string, value any) *EventBuilder {
	b.payload[key] = value
	return b
}

// WithoutPayload removes one payload member.
func (b *EventBuilder) WithoutPayload(key string) *EventBuilder {
	delete(b.payload, key)
	return b
}

// WithoutRepo drops the repo member entirely.
func (b *EventBuilder) WithoutRepo() *EventBuilder {
	b.omitRepo = true
	return b
}

// WithActor sets the actor login
func (b *EventBuilder) WithActor(login string) *EventBuilder {
	b.actor = login
	return b
}

// Build creates the JSON object for the event
func (b *EventBuilder) Build() map[string]any {
	event := map[string]any{
		"id":   b.id,
		"type": b.eventType,
		"actor": map[string]any{
			"login": b.actor,
		},
		"payload":    b.payload,
		"public":     true,
		"created_at": b.createdAt.Format(time.RFC3339),
	}
	if !b.omitRepo {
		event["repo"] = map[string]any{
			"name": b.repo,
			"url":  "https://api.github.com/repos/" + b.repo,
		}
	}
	return event
}

// Feed builds a list of events ready to be served as an events response.
func Feed(builders ...*EventBuilder) []map[string]any {
	feed := make([]map[string]any, 0, len(builders))
	for _, b := range builders {
		feed = append(feed, b.Build())
	}
	return feed
}
