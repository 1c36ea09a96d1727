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
	"fmt"
	"net/http"

	activityerrors "github.com/sirseerhq/github-activity/internal/errors"
)

// StatusError is returned when the events endpoint answers with a non-2xx
// status. 404 and 403 match ErrUserNotFound and ErrAccessDenied.
type StatusError struct {
	StatusCode int

	// Message is the "message" member of GitHub's error body, if any.
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github api request failed with status code %d", e.StatusCode)
}

// Is maps well-known status codes onto the shared sentinels.
func (e *StatusError) Is(target error) bool {
	switch target {
	case activityerrors.ErrUserNotFound:
		return e.StatusCode == http.StatusNotFound
	case activityerrors.ErrAccessDenied:
		return e.StatusCode == http.StatusForbidden
	}
	return false
}

// IsNotFoundError is consulted by giterror.ErrorChainInspector.
func (e *StatusError) IsNotFoundError() bool { return e.StatusCode == http.StatusNotFound }

// IsAccessDeniedError is consulted by giterror.ErrorChainInspector.
func (e *StatusError) IsAccessDeniedError() bool { return e.StatusCode == http.StatusForbidden }

// RateLimitError is returned when a successful response reports that no
// requests remain in the current window. The page that came with it is
// discarded.
type RateLimitError struct {
	RateLimit RateLimit
}

func (e *RateLimitError) Error() string {
	if e.RateLimit.Reset.IsZero() {
		return activityerrors.ErrRateLimit.Error()
	}
	return fmt.Sprintf("%s, resets at %s", activityerrors.ErrRateLimit, e.RateLimit.Reset.Format("15:04:05"))
}

func (e *RateLimitError) Unwrap() error { return activityerrors.ErrRateLimit }

// IsRateLimitError is consulted by giterror.ErrorChainInspector.
func (e *RateLimitError) IsRateLimitError() bool { return true }

// MissingFieldError reports a key absent from an event document.
type MissingFieldError struct {
	// Field is the key that was missing.
	Field string
	// Path is the dotted path up to and including Field.
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Path)
}

// FieldTypeError reports a value of the wrong JSON type inside an event.
type FieldTypeError struct {
	Path string
	Want string
	Got  string
}

func (e *FieldTypeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("event is %s, want %s", e.Got, e.Want)
	}
	return fmt.Sprintf("field %q is %s, want %s", e.Path, e.Got, e.Want)
}
