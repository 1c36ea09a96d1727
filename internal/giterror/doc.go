// Package giterror provides error inspection capabilities for GitHub API errors.
// It centralizes the logic for identifying the different failures of an events
// request (not found, access denied, rate limited, network) so callers do not
// scatter string checks through the codebase.
package giterror
