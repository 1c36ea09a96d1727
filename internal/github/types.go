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

// Package github provides types and interfaces for interacting with the GitHub API.
package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Event is one entry of a user's public event feed.
//
// The payload shape depends on the event type, so the event is kept as the
// decoded JSON document rather than a fixed struct. That way a formatter can
// tell a field that is absent from one that is present but empty.
type Event struct {
	// Type is the event type tag, e.g. "PushEvent". Empty when the feed
	// entry carries no string "type" member.
	Type string

	doc map[string]any
}

// NewEvent builds an Event from an already decoded JSON object. Numbers in
// doc should be json.Number to match what UnmarshalJSON produces, though
// plain Go numeric types are accepted by the formatters as well.
func NewEvent(doc map[string]any) Event {
	e := Event{doc: doc}
	e.Type, _ = doc["type"].(string)
	return e
}

// UnmarshalJSON decodes a feed entry, keeping numbers as json.Number so
// issue and pull request numbers print exactly as GitHub sent them.
func (e *Event) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("event is not a JSON object: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("event is null")
	}

	*e = NewEvent(doc)
	return nil
}

// MarshalJSON writes the event back out unchanged.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.doc)
}

// ID returns the event id, or "" when absent.
func (e Event) ID() string {
	id, _ := e.doc["id"].(string)
	return id
}

// Lookup walks path through nested JSON objects and returns the value found
// at the end. A key that is absent yields *MissingFieldError naming that key.
// Stepping into something that is not an object yields *FieldTypeError.
func (e Event) Lookup(path ...string) (any, error) {
	var cur any = e.doc
	for i, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, &FieldTypeError{
				Path: strings.Join(path[:i], "."),
				Want: "object",
				Got:  jsonKind(cur),
			}
		}
		v, ok := obj[key]
		if !ok {
			return nil, &MissingFieldError{Field: key, Path: strings.Join(path[:i+1], ".")}
		}
		cur = v
	}
	return cur, nil
}

// jsonKind names the JSON type of a decoded value for error messages.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// EventsPage is the result of one events request. Only the first page is
// ever requested.
type EventsPage struct {
	Events    []Event
	RateLimit RateLimit
}

// RateLimit is the rate limit budget GitHub reported on a response.
// Known is false when the response carried no X-RateLimit-Remaining header.
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
	Known     bool
}

// Exhausted reports whether GitHub said no requests remain.
func (r RateLimit) Exhausted() bool {
	return r.Known && r.Remaining == 0
}
