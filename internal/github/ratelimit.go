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
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Rate limit headers sent by the REST API.
const (
	headerRateLimit     = "X-RateLimit-Limit"
	headerRateRemaining = "X-RateLimit-Remaining"
	headerRateReset     = "X-RateLimit-Reset"
)

// parseRateLimit reads the rate limit headers of a response. A remaining
// count that is absent or not an integer leaves Known false, so only an
// explicit "0" counts as exhausted.
func parseRateLimit(h http.Header) RateLimit {
	var rl RateLimit

	if v := strings.TrimSpace(h.Get(headerRateRemaining)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rl.Remaining = n
			rl.Known = true
		}
	}
	if v := strings.TrimSpace(h.Get(headerRateLimit)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rl.Limit = n
		}
	}
	if v := strings.TrimSpace(h.Get(headerRateReset)); v != "" {
		if secs, err := strconv.ParseInt(v, 10, 64); err == nil && secs > 0 {
			rl.Reset = time.Unix(secs, 0)
		}
	}

	return rl
}
