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

package main

import (
	"errors"
	"fmt"

	activityerrors "github.com/sirseerhq/github-activity/internal/errors"
	"github.com/sirseerhq/github-activity/internal/giterror"
	"github.com/sirseerhq/github-activity/internal/github"
	"github.com/sirseerhq/github-activity/internal/username"
)

// configError marks failures to build a configuration.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }

func (e *configError) Unwrap() error { return e.err }

func (e *configError) Is(target error) bool { return target == activityerrors.ErrInvalidConfig }

// describeError renders err as the lines printed to the user.
//
// Status errors are matched before the rate limit text check so that a 429
// reports its status code like any other failed request.
func describeError(err error, user username.Username, inspector giterror.Inspector) []string {
	var (
		invalid   *username.InvalidError
		cfgErr    *configError
		statusErr *github.StatusError
		rateErr   *github.RateLimitError
	)

	switch {
	case errors.Is(err, activityerrors.ErrMissingUsername):
		return []string{
			"Error: No username provided",
			"Usage: github-activity <username>",
		}
	case errors.As(err, &invalid):
		return []string{
			fmt.Sprintf("Error: Invalid username format: %s", invalid.Value),
			"Username can only contain alphanumeric characters, hyphens, and underscores",
		}
	case errors.As(err, &cfgErr):
		return []string{fmt.Sprintf("Error: Invalid configuration: %v", cfgErr.err)}
	case inspector.IsNotFoundError(err):
		return []string{fmt.Sprintf("Error: User '%s' not found", user)}
	case inspector.IsAccessDeniedError(err):
		return []string{"Error: GitHub API access denied. You might be rate limited."}
	case errors.As(err, &statusErr):
		return []string{fmt.Sprintf("Error: GitHub API request failed with status code %d", statusErr.StatusCode)}
	case inspector.IsRateLimitError(err):
		lines := []string{"Error: GitHub API rate limit exceeded. Please try again later."}
		if errors.As(err, &rateErr) && !rateErr.RateLimit.Reset.IsZero() {
			lines = append(lines, "Rate limit resets at "+rateErr.RateLimit.Reset.Format("15:04:05"))
		}
		return lines
	case inspector.IsNetworkError(err):
		return []string{"Error: Failed to connect to GitHub API. Please check your internet connection."}
	default:
		return []string{fmt.Sprintf("Error: An unexpected error occurred: %v", err)}
	}
}

// mapErrorToExitCode maps internal errors to exit codes
func mapErrorToExitCode(err error) int {
	if err == nil || errors.Is(err, activityerrors.ErrInterrupted) {
		return 0
	}
	return 1 // General error
}
