package giterror

import (
	"errors"
	"fmt"
	"net"
	"testing"

	activityerrors "github.com/sirseerhq/github-activity/internal/errors"
)

func TestGitHubErrorInspector_IsAccessDeniedError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "403 forbidden",
			err:  errors.New("403 Forbidden"),
			want: true,
		},
		{
			name: "access denied text",
			err:  errors.New("GitHub API access denied"),
			want: true,
		},
		{
			name: "wrapped forbidden",
			err:  fmt.Errorf("failed to query: %w", errors.New("forbidden")),
			want: true,
		},
		{
			name: "status code text",
			err:  errors.New("github api request failed with status code 403"),
			want: true,
		},
		{
			name: "port number is not a status",
			err:  errors.New("dial tcp 127.0.0.1:40312: i/o timeout"),
			want: false,
		},
		{
			name: "not an access error",
			err:  errors.New("something went wrong"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAccessDeniedError(tt.err); got != tt.want {
				t.Errorf("IsAccessDeniedError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsNotFoundError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "404 not found",
			err:  errors.New("404 Not Found"),
			want: true,
		},
		{
			name: "user not found",
			err:  errors.New("user not found"),
			want: true,
		},
		{
			name: "wrapped not found error",
			err:  fmt.Errorf("failed to fetch: %w", errors.New("404 Not Found")),
			want: true,
		},
		{
			name: "port number is not a status",
			err:  errors.New("read tcp 127.0.0.1:40404: connection reset by peer"),
			want: false,
		},
		{
			name: "not a not found error",
			err:  errors.New("internal server error"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNotFoundError(tt.err); got != tt.want {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsRateLimitError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "rate limit exceeded",
			err:  errors.New("API rate limit exceeded for 203.0.113.7"),
			want: true,
		},
		{
			name: "secondary rate limit",
			err:  errors.New("You have exceeded a secondary rate limit"),
			want: true,
		},
		{
			name: "status 429 alone is not classified",
			err:  errors.New("github api request failed with status code 429"),
			want: false,
		},
		{
			name: "not a rate limit error",
			err:  errors.New("timeout occurred"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsRateLimitError(tt.err); got != tt.want {
				t.Errorf("IsRateLimitError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsNetworkError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "connection refused",
			err:  errors.New("dial tcp 127.0.0.1:443: connection refused"),
			want: true,
		},
		{
			name: "no such host",
			err:  errors.New("dial tcp: lookup api.github.com: no such host"),
			want: true,
		},
		{
			name: "typed dns error",
			err:  &net.DNSError{Err: "server misbehaving", Name: "api.github.com"},
			want: true,
		},
		{
			name: "typed dial error",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("boom")},
			want: true,
		},
		{
			name: "typed read error",
			err:  &net.OpError{Op: "read", Net: "tcp", Err: errors.New("boom")},
			want: false,
		},
		{
			name: "temporary failure",
			err:  errors.New("temporary failure in name resolution"),
			want: true,
		},
		{
			name: "network unreachable",
			err:  errors.New("network is unreachable"),
			want: true,
		},
		{
			name: "wrapped network error",
			err:  fmt.Errorf("failed to connect: %w", errors.New("connection refused")),
			want: true,
		},
		{
			name: "not a network error",
			err:  errors.New("invalid json response"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNetworkError(tt.err); got != tt.want {
				t.Errorf("IsNetworkError() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Custom error types for testing ErrorChainInspector
type deniedError struct{}

func (deniedError) Error() string             { return "custom error" }
func (deniedError) IsAccessDeniedError() bool { return true }

type rateLimitError struct{}

func (rateLimitError) Error() string          { return "custom error" }
func (rateLimitError) IsRateLimitError() bool { return true }

func TestErrorChainInspector(t *testing.T) {
	baseInspector := NewInspector()
	chainInspector := NewErrorChainInspector(baseInspector)

	tests := []struct {
		name   string
		err    error
		method string
		want   bool
	}{
		{
			name:   "custom access denied type",
			err:    deniedError{},
			method: "denied",
			want:   true,
		},
		{
			name:   "wrapped custom access denied type",
			err:    fmt.Errorf("operation failed: %w", deniedError{}),
			method: "denied",
			want:   true,
		},
		{
			name:   "custom rate limit error type",
			err:    rateLimitError{},
			method: "ratelimit",
			want:   true,
		},
		{
			name:   "sentinel not found",
			err:    fmt.Errorf("octocat: %w", activityerrors.ErrUserNotFound),
			method: "notfound",
			want:   true,
		},
		{
			name:   "sentinel network failure",
			err:    fmt.Errorf("%w: boom", activityerrors.ErrNetworkFailure),
			method: "network",
			want:   true,
		},
		{
			name:   "falls back to string checking",
			err:    errors.New("403 Forbidden"),
			method: "denied",
			want:   true,
		},
		{
			name:   "no match in chain or string",
			err:    errors.New("some other error"),
			method: "denied",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			switch tt.method {
			case "denied":
				got = chainInspector.IsAccessDeniedError(tt.err)
			case "notfound":
				got = chainInspector.IsNotFoundError(tt.err)
			case "ratelimit":
				got = chainInspector.IsRateLimitError(tt.err)
			case "network":
				got = chainInspector.IsNetworkError(tt.err)
			}
			if got != tt.want {
				t.Errorf("ErrorChainInspector.%s() = %v, want %v", tt.method, got, tt.want)
			}
		})
	}
}
