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

// Package errors defines sentinel errors for consistent error handling across the application.
// The CLI matches on these with errors.Is to pick the message it prints and the exit code.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrMissingUsername indicates no username argument was supplied.
	// Maps to exit code 1.
	ErrMissingUsername = errors.New("no username provided")

	// ErrInvalidUsername indicates the username contains characters outside
	// [A-Za-z0-9_-]. Maps to exit code 1.
	ErrInvalidUsername = errors.New("invalid username format")

	// ErrUserNotFound indicates GitHub answered 404 for the user's event feed.
	// Maps to exit code 1.
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied indicates GitHub answered 403.
	// Maps to exit code 1.
	ErrAccessDenied = errors.New("github api access denied")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 1.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrRateLimit indicates GitHub API rate limit has been exceeded.
	// Maps to exit code 1.
	ErrRateLimit = errors.New("github rate limit exceeded")

	// ErrInvalidConfig indicates the config file, environment or flags could
	// not be turned into a usable configuration. Maps to exit code 1.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInterrupted indicates the run was cancelled by SIGINT or SIGTERM.
	// Maps to exit code 0.
	ErrInterrupted = errors.New("interrupted by user")
)
