// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/swaggest/jsonschema-go"
)

// Schema validates untrusted input into a typed value and documents itself.
//
// Parse either returns the typed value or fails with a [*ValidationError]
// carrying every issue found in that one pass. Any other error returned
// from Parse indicates a bug in the schema implementation, not invalid
// input.
//
// Implementations must be immutable once constructed so that a single
// schema instance can be shared by any number of concurrent callers.
type Schema[T any] interface {
	Parse(v any) (T, error)

	Documentation() jsonschema.Schema
}

// IssueKind is the machine readable category of a validation failure.
type IssueKind string

const (
	// InvalidType reports a value whose runtime type does not satisfy the schema.
	InvalidType IssueKind = "invalid_type"

	// TooShort reports a value below an inclusive minimum length.
	TooShort IssueKind = "too_short"

	// TooLong reports a value above an inclusive maximum length.
	TooLong IssueKind = "too_long"

	// TooSmall reports a number below an inclusive minimum.
	TooSmall IssueKind = "too_small"

	// TooBig reports a number above an inclusive maximum.
	TooBig IssueKind = "too_big"

	// Missing reports a required object field absent from the input.
	Missing IssueKind = "missing"
)

// Issue is one atomic validation failure.
//
// Path locates the failing value within the parsed input: array indices
// are rendered as decimal strings and object fields as their names. An
// empty Path refers to the input value itself. Issues are immutable;
// composite schemas relocate them with [ValidationError.WithPrefix]
// rather than editing Path in place.
type Issue struct {
	Kind     IssueKind
	Path     []string
	Expected string
	Actual   string
}

// String renders the issue deterministically for human consumption.
func (i Issue) String() string {
	if len(i.Path) == 0 {
		return fmt.Sprintf("%s: expected %s, got %s", i.Kind, i.Expected, i.Actual)
	}
	return fmt.Sprintf("%s at %s: expected %s, got %s", i.Kind, strings.Join(i.Path, "."), i.Expected, i.Actual)
}

// ValidationError is the ordered aggregate of every [Issue] found by a
// single Parse call. It is created per failed parse and never shared or
// mutated afterwards.
type ValidationError struct {
	issues []Issue
}

// NewValidationError initializes a [ValidationError] from the given issues.
func NewValidationError(issues ...Issue) *ValidationError {
	return &ValidationError{
		issues: issues,
	}
}

// Issues returns the issues in the order they were found.
func (e *ValidationError) Issues() []Issue {
	return e.issues
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.issues) == 0 {
		return "schema: validation failed"
	}
	if len(e.issues) == 1 {
		return "schema: " + e.issues[0].String()
	}

	rendered := make([]string, len(e.issues))
	for i, issue := range e.issues {
		rendered[i] = issue.String()
	}
	return fmt.Sprintf("schema: %d issues: %s", len(e.issues), strings.Join(rendered, "; "))
}

// WithPrefix returns a new [ValidationError] equal to e except that
// segment is prepended to the path of every issue. The receiver and its
// issues are left untouched. Composite schemas use this to attribute a
// child schema's failure to the field or index it occurred at.
func (e *ValidationError) WithPrefix(segment string) *ValidationError {
	issues := make([]Issue, len(e.issues))
	for i, issue := range e.issues {
		path := make([]string, 0, len(issue.Path)+1)
		path = append(path, segment)
		path = append(path, issue.Path...)

		issue.Path = path
		issues[i] = issue
	}
	return &ValidationError{
		issues: issues,
	}
}

func invalidType(expected string, v any) *ValidationError {
	return NewValidationError(Issue{
		Kind:     InvalidType,
		Expected: expected,
		Actual:   typeNameOf(v),
	})
}

// typeNameOf maps a decoded JSON value to its type tag for reporting in
// [Issue.Actual]. Values outside the JSON data model fall back to their
// Go type name.
func typeNameOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number, float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case time.Time:
		return "date"
	default:
		return fmt.Sprintf("%T", v)
	}
}
