// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"errors"
	"strconv"

	"github.com/swaggest/jsonschema-go"
	"github.com/z5labs/sdk-go/ptr"
)

// ArraySchema accepts an array whose items all satisfy a shared item
// schema, optionally bounded by an inclusive minimum and maximum item count.
type ArraySchema[T any] struct {
	item     Schema[T]
	minItems *int
	maxItems *int
}

// Array initializes an unbounded [ArraySchema] over the given item schema.
//
// Example:
//
//	flags := schema.Array(schema.Boolean()).Min(2).Max(4)
func Array[T any](item Schema[T]) ArraySchema[T] {
	return ArraySchema[T]{
		item: item,
	}
}

// Min returns a copy of the schema with an inclusive minimum item count.
func (s ArraySchema[T]) Min(n int) ArraySchema[T] {
	s.minItems = &n
	return s
}

// Max returns a copy of the schema with an inclusive maximum item count.
func (s ArraySchema[T]) Max(n int) ArraySchema[T] {
	s.maxItems = &n
	return s
}

// Length returns a copy of the schema accepting exactly n items.
func (s ArraySchema[T]) Length(n int) ArraySchema[T] {
	return s.Min(n).Max(n)
}

// Parse implements the [Schema] interface.
//
// A bound violation is reported alone, without descending into the
// items. Otherwise every item is validated independently: one failing
// item does not stop validation of the ones after it, and the issues of
// all failed items are aggregated with each item's index prepended to
// its issue paths. An item schema failing with anything other than a
// [*ValidationError] is a bug in that schema and its error is returned
// unchanged instead of being aggregated.
func (s ArraySchema[T]) Parse(v any) ([]T, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, invalidType("array", v)
	}

	if s.minItems != nil && len(items) < *s.minItems {
		return nil, NewValidationError(Issue{
			Kind:     TooShort,
			Expected: strconv.Itoa(*s.minItems),
			Actual:   strconv.Itoa(len(items)),
		})
	}
	if s.maxItems != nil && len(items) > *s.maxItems {
		return nil, NewValidationError(Issue{
			Kind:     TooLong,
			Expected: strconv.Itoa(*s.maxItems),
			Actual:   strconv.Itoa(len(items)),
		})
	}

	parsed := make([]T, 0, len(items))
	var issues []Issue
	for i, item := range items {
		val, err := s.item.Parse(item)
		if err == nil {
			parsed = append(parsed, val)
			continue
		}

		var verr *ValidationError
		if !errors.As(err, &verr) {
			return nil, err
		}
		issues = append(issues, verr.WithPrefix(strconv.Itoa(i)).Issues()...)
	}
	if len(issues) > 0 {
		return nil, NewValidationError(issues...)
	}
	return parsed, nil
}

// Documentation implements the [Schema] interface.
func (s ArraySchema[T]) Documentation() jsonschema.Schema {
	var doc jsonschema.Schema
	doc.AddType(jsonschema.Array)

	itemDoc := s.item.Documentation()
	itemOrBool := itemDoc.ToSchemaOrBool()
	doc.Items = &jsonschema.Items{
		SchemaOrBool: &itemOrBool,
	}

	if s.minItems != nil {
		doc.MinItems = int64(*s.minItems)
	}
	if s.maxItems != nil {
		doc.MaxItems = ptr.Ref(int64(*s.maxItems))
	}
	return doc
}
