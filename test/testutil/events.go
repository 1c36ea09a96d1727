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
	"testing"

	"github.com/sirseerhq/github-activity/internal/github"
)

// Events round-trips the built feed through JSON so the result is decoded
// exactly as the REST client would decode it.
func Events(t *testing.T, builders ...*EventBuilder) []github.Event {
	t.Helper()
	return DecodeEvents(t, Feed(builders...))
}

// DecodeEvents decodes an arbitrary feed the same way the REST client does.
func DecodeEvents(t *testing.T, feed any) []github.Event {
	t.Helper()

	data, err := json.Marshal(feed)
	if err != nil {
		t.Fatalf("Failed to marshal feed: %v", err)
	}

	var events []github.Event
	if err := json.Unmarshal(data, &events); err != nil {
		t.Fatalf("Failed to decode feed: %v", err)
	}
	return events
}
