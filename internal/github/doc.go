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

// Package github provides a client for GitHub's public events REST API.
// It issues a single unauthenticated GET for a user's event feed, checks the
// status code and rate limit headers, and decodes the feed into Event values.
//
// The package includes:
//   - A Client interface for fetching a user's events
//   - A REST implementation on net/http with debug logging through zap
//   - Typed errors for status codes, rate limits and missing event fields
//   - Mock client for testing
//
// Basic usage:
//
//	client := github.NewRESTClient("https://api.github.com")
//	page, err := client.ListUserEvents(ctx, user)
//	if err != nil {
//	    // Handle error
//	}
//	for _, ev := range page.Events {
//	    // Process event
//	}
package github
