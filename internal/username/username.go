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

// Package username validates the GitHub login passed on the command line.
package username

import (
	"fmt"
	"regexp"

	activityerrors "github.com/sirseerhq/github-activity/internal/errors"
)

var pattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Username is a login that passed Validate. The allowed character set keeps
// it safe to embed verbatim in a URL path.
type Username string

// String returns the login.
func (u Username) String() string { return string(u) }

// InvalidError reports a username with characters outside [A-Za-z0-9_-].
type InvalidError struct {
	Value string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid username format: %s", e.Value)
}

// Is lets callers match with errors.Is(err, ErrInvalidUsername).
func (e *InvalidError) Is(target error) bool {
	return target == activityerrors.ErrInvalidUsername
}

// Validate checks that args holds exactly one username and that it only
// uses the allowed characters.
func Validate(args []string) (Username, error) {
	if len(args) == 0 {
		return "", activityerrors.ErrMissingUsername
	}
	if len(args) > 1 {
		return "", fmt.Errorf("expected exactly one username, got %d: %w", len(args), activityerrors.ErrMissingUsername)
	}
	return Parse(args[0])
}

// Parse validates a single username.
func Parse(s string) (Username, error) {
	if !pattern.MatchString(s) {
		return "", &InvalidError{Value: s}
	}
	return Username(s), nil
}
