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

// Package main implements the github-activity command-line interface.
// It prints a GitHub user's recent public activity, one line per event,
// using the unauthenticated events endpoint.
//
// Usage:
//
//	github-activity <username> [flags]
//
// Example:
//
//	github-activity octocat
//	Pushed 3 commits to octocat/Hello-World
//	Starred octocat/Spoon-Knife
//
// Everything the user is meant to read goes to standard output, including
// warnings and errors. Diagnostics enabled with --log-level go to standard
// error.
//
// Exit codes:
//   - 0: Success, no activity, or interrupted by the user
//   - 1: Any error
package main
