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
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	activityerrors "github.com/sirseerhq/github-activity/internal/errors"
	"github.com/sirseerhq/github-activity/internal/giterror"
	"github.com/sirseerhq/github-activity/internal/username"
)

// DefaultAPIEndpoint is the public GitHub REST API.
const DefaultAPIEndpoint = "https://api.github.com"

// RESTClient implements Client against the GitHub REST API with a single
// unauthenticated GET per call.
type RESTClient struct {
	httpClient *http.Client
	endpoint   string
	logger     *zap.Logger
	inspector  giterror.Inspector
}

// Option configures a RESTClient.
type Option func(*RESTClient)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *RESTClient) {
		c.logger = logger
	}
}

// WithTimeout bounds each request. Zero keeps the http.Client default of no
// timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *RESTClient) {
		c.httpClient.Timeout = d
	}
}

// WithTransport replaces the underlying round tripper. The logging wrapper
// is still applied on top of it.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *RESTClient) {
		c.httpClient.Transport = rt
	}
}

// NewRESTClient creates a client for the given API endpoint, e.g.
// "https://api.github.com". An empty endpoint means DefaultAPIEndpoint.
func NewRESTClient(endpoint string, opts ...Option) *RESTClient {
	if endpoint == "" {
		endpoint = DefaultAPIEndpoint
	}

	c := &RESTClient{
		httpClient: &http.Client{},
		endpoint:   strings.TrimRight(endpoint, "/"),
		logger:     zap.NewNop(),
		inspector:  giterror.NewErrorChainInspector(giterror.NewInspector()),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.httpClient.Transport = newLoggingTransport(c.httpClient.Transport, c.logger)
	return c
}

// EventsURL returns the URL requested for user's events.
func (c *RESTClient) EventsURL(user username.Username) string {
	// Validated usernames are limited to [A-Za-z0-9_-] and need no escaping.
	return c.endpoint + "/users/" + user.String() + "/events"
}

// ListUserEvents fetches the first page of user's public events.
func (c *RESTClient) ListUserEvents(ctx context.Context, user username.Username) (*EventsPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.EventsURL(user), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.mapError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
		c.logger.Debug("api_status_error",
			zap.Int("status", statusErr.StatusCode),
			zap.String("message", statusErr.Message),
		)
		return nil, statusErr
	}

	rate := parseRateLimit(resp.Header)
	c.logger.Debug("api_rate_limit",
		zap.Bool("known", rate.Known),
		zap.Int("limit", rate.Limit),
		zap.Int("remaining", rate.Remaining),
		zap.Time("reset", rate.Reset),
	)
	if rate.Exhausted() {
		return nil, &RateLimitError{RateLimit: rate}
	}

	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("failed to decode events response: %w", err)
	}

	return &EventsPage{Events: events, RateLimit: rate}, nil
}

// mapError classifies a transport failure. Cancellation is passed through
// untouched so the caller can tell an interrupt from a real failure. Other
// failures drop the request URL, which carries the username.
func (c *RESTClient) mapError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("%w: %w", activityerrors.ErrNetworkFailure, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	return fmt.Errorf("request to GitHub API failed: %w", err)
}

// readErrorMessage extracts the "message" member of a GitHub error body.
func readErrorMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 64*1024)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}
