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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// MockServer wraps httptest.Server and counts the requests it served.
type MockServer struct {
	*httptest.Server

	requests atomic.Int32

	mu    sync.Mutex
	paths []string
}

// Requests returns how many requests reached the server.
func (s *MockServer) Requests() int {
	return int(s.requests.Load())
}

// Paths returns the request paths seen so far, in order.
func (s *MockServer) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...)
}

// NewMockServer starts a server that records each request and then hands it
// to handler. The server is closed when the test ends.
func NewMockServer(t *testing.T, handler http.HandlerFunc) *MockServer {
	t.Helper()
	s := &MockServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		s.mu.Lock()
		s.paths = append(s.paths, r.URL.Path)
		s.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// NewEventsServer serves feed as the events list with a healthy rate limit.
func NewEventsServer(t *testing.T, feed []map[string]any) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		SetRateLimitHeaders(w, 60, 59, time.Now().Add(time.Hour))
		writeJSON(w, http.StatusOK, feed)
	})
}

// NewRawServer answers every request with status and the literal body.
func NewRawServer(t *testing.T, status int, body string) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// NewErrorServer answers every request with statusCode and a GitHub style
// error body.
func NewErrorServer(t *testing.T, statusCode int) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, statusCode, map[string]any{
			"message":           http.StatusText(statusCode),
			"documentation_url": "https://docs.github.com/rest",
		})
	})
}

// NewRateLimitServer answers 200 with a valid feed but reports that no
// requests remain until reset.
func NewRateLimitServer(t *testing.T, feed []map[string]any, reset time.Time) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		SetRateLimitHeaders(w, 60, 0, reset)
		writeJSON(w, http.StatusOK, feed)
	})
}

// NewHangingServer never answers. The returned channel receives a value
// each time a request arrives; the handler returns once the client goes
// away or the test ends.
func NewHangingServer(t *testing.T) (*MockServer, <-chan struct{}) {
	t.Helper()
	arrived := make(chan struct{}, 16)
	done := make(chan struct{})
	server := NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case arrived <- struct{}{}:
		default:
		}
		select {
		case <-r.Context().Done():
		case <-done:
		}
	})
	// Registered after the server's Close, so it runs first.
	t.Cleanup(func() { close(done) })
	return server, arrived
}

// SetRateLimitHeaders writes the X-RateLimit-* headers.
func SetRateLimitHeaders(w http.ResponseWriter, limit, remaining int, reset time.Time) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
}

// UnreachableURL returns the URL of a server that has already been shut
// down, so connecting to it is refused.
func UnreachableURL(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()
	return url
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
