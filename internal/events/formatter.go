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

package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sirseerhq/github-activity/internal/github"
)

// ErrUnknownEventType is returned by Format for event types that have no
// formatter.
var ErrUnknownEventType = errors.New("unknown event type")

// FormatFunc renders a single event as one line of text.
type FormatFunc func(e github.Event) (string, error)

var formatters = map[string]FormatFunc{
	"PushEvent":              formatPush,
	"IssuesEvent":            formatIssues,
	"IssueCommentEvent":      formatIssueComment,
	"PullRequestEvent":       formatPullRequest,
	"PullRequestReviewEvent": formatPullRequestReview,
	"WatchEvent":             formatWatch,
}

// Format renders e with the formatter registered for its type.
//
// A field absent from the event yields *github.MissingFieldError for the
// first such field in the order the line reads. A field of the wrong JSON
// type yields *github.FieldTypeError.
func Format(e github.Event) (string, error) {
	fn, ok := formatters[e.Type]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEventType, e.Type)
	}
	return fn(e)
}

// Supported reports whether t has a formatter.
func Supported(t string) bool {
	_, ok := formatters[t]
	return ok
}

// Types lists the supported event types in sorted order.
func Types() []string {
	types := make([]string, 0, len(formatters))
	for t := range formatters {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func formatPush(e github.Event) (string, error) {
	n, err := count(e, "payload", "commits")
	if err != nil {
		return "", err
	}
	repo, err := scalar(e, "repo", "name")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Pushed %d commits to %s", n, repo), nil
}

func formatIssues(e github.Event) (string, error) {
	repo, err := scalar(e, "repo", "name")
	if err != nil {
		return "", err
	}
	return "Opened a new issue in " + repo, nil
}

func formatIssueComment(e github.Event) (string, error) {
	number, err := scalar(e, "payload", "issue", "number")
	if err != nil {
		return "", err
	}
	repo, err := scalar(e, "repo", "name")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Commented on issue %s in %s", number, repo), nil
}

func formatPullRequest(e github.Event) (string, error) {
	number, err := scalar(e, "payload", "pull_request", "number")
	if err != nil {
		return "", err
	}
	repo, err := scalar(e, "repo", "name")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Opened pull request %s in %s", number, repo), nil
}

func formatPullRequestReview(e github.Event) (string, error) {
	number, err := scalar(e, "payload", "pull_request", "number")
	if err != nil {
		return "", err
	}
	repo, err := scalar(e, "repo", "name")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Reviewed pull request %s in %s", number, repo), nil
}

func formatWatch(e github.Event) (string, error) {
	repo, err := scalar(e, "repo", "name")
	if err != nil {
		return "", err
	}
	return "Starred " + repo, nil
}

// count returns the length of the array at path.
func count(e github.Event, path ...string) (int, error) {
	v, err := e.Lookup(path...)
	if err != nil {
		return 0, err
	}
	arr, ok := v.([]any)
	if !ok {
		return 0, &github.FieldTypeError{Path: strings.Join(path, "."), Want: "array", Got: kind(v)}
	}
	return len(arr), nil
}

// scalar renders the string, number, boolean or null at path.
func scalar(e github.Event, path ...string) (string, error) {
	v, err := e.Lookup(path...)
	if err != nil {
		return "", err
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	case nil:
		return "null", nil
	default:
		return "", &github.FieldTypeError{Path: strings.Join(path, "."), Want: "scalar", Got: kind(v)}
	}
}

func kind(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}
