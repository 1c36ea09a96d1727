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

// Package activity prints a GitHub user's recent public activity.
//
// A Runner fetches the first page of the user's event feed, renders each
// event through the events formatter and writes one line per event. Events
// of unsupported types are skipped without output. Events that cannot be
// rendered produce a warning line and the run continues.
package activity

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	activityerrors "github.com/sirseerhq/github-activity/internal/errors"
	"github.com/sirseerhq/github-activity/internal/events"
	"github.com/sirseerhq/github-activity/internal/github"
	"github.com/sirseerhq/github-activity/internal/output"
	"github.com/sirseerhq/github-activity/internal/username"
)

// Summary describes what a run did.
type Summary struct {
	// Events is the number of events in the feed.
	Events int
	// Printed is the number of activity lines written.
	Printed int
	// Warnings is the number of events that could not be rendered.
	Warnings int
	// Skipped is the number of events with an unsupported type.
	Skipped int
}

// Runner ties a client to an output writer.
type Runner struct {
	client github.Client
	out    output.LineWriter
	logger *zap.Logger
}

// NewRunner creates a Runner. A nil logger disables diagnostics.
func NewRunner(client github.Client, out output.LineWriter, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{client: client, out: out, logger: logger}
}

// Run fetches and prints the activity of user.
//
// Errors from the client are returned unchanged. If ctx is canceled while
// events are being printed, Run stops and returns an error matching
// ErrInterrupted together with the partial summary.
func (r *Runner) Run(ctx context.Context, user username.Username) (*Summary, error) {
	page, err := r.client.ListUserEvents(ctx, user)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Events: len(page.Events)}
	if len(page.Events) == 0 {
		if err := r.out.Printf("No recent activity found for user: %s", user); err != nil {
			return summary, fmt.Errorf("failed to write output: %w", err)
		}
		r.logSummary(user, summary)
		return summary, nil
	}

	for _, e := range page.Events {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return summary, fmt.Errorf("%w: %w", activityerrors.ErrInterrupted, ctxErr)
		}

		line, ok := r.render(e, summary)
		if !ok {
			continue
		}
		if err := r.out.WriteLine(line); err != nil {
			return summary, fmt.Errorf("failed to write output: %w", err)
		}
	}

	r.logSummary(user, summary)
	return summary, nil
}

// render returns the line to print for e and counts it in summary. ok is
// false for events that are skipped.
func (r *Runner) render(e github.Event, summary *Summary) (line string, ok bool) {
	line, err := events.Format(e)
	if err == nil {
		summary.Printed++
		return line, true
	}

	if errors.Is(err, events.ErrUnknownEventType) {
		summary.Skipped++
		r.logger.Debug("skipping event",
			zap.String("id", e.ID()),
			zap.String("type", e.Type),
		)
		return "", false
	}

	summary.Warnings++
	r.logger.Debug("event not rendered",
		zap.String("id", e.ID()),
		zap.String("type", e.Type),
		zap.Error(err),
	)

	var missing *github.MissingFieldError
	if errors.As(err, &missing) {
		return fmt.Sprintf("Warning: Could not process event due to missing data: '%s'", missing.Field), true
	}
	return fmt.Sprintf("Warning: Unexpected error processing event: %v", err), true
}

func (r *Runner) logSummary(user username.Username, s *Summary) {
	r.logger.Info("activity_summary",
		zap.String("user", user.String()),
		zap.Int("events", s.Events),
		zap.Int("printed", s.Printed),
		zap.Int("warnings", s.Warnings),
		zap.Int("skipped", s.Skipped),
	)
}
