// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"strconv"

	"github.com/swaggest/jsonschema-go"
	"github.com/z5labs/sdk-go/ptr"
)

// StringSchema accepts a string, optionally bounded by an inclusive
// minimum and maximum length in bytes.
type StringSchema struct {
	minLength *int
	maxLength *int
}

// String initializes an unbounded [StringSchema].
func String() StringSchema {
	return StringSchema{}
}

// Min returns a copy of the schema with an inclusive minimum length.
func (s StringSchema) Min(n int) StringSchema {
	s.minLength = &n
	return s
}

// Max returns a copy of the schema with an inclusive maximum length.
func (s StringSchema) Max(n int) StringSchema {
	s.maxLength = &n
	return s
}

// Length returns a copy of the schema accepting exactly length n.
func (s StringSchema) Length(n int) StringSchema {
	return s.Min(n).Max(n)
}

// Parse implements the [Schema] interface.
//
// Strings are leaf values so the first failing check is reported alone.
func (s StringSchema) Parse(v any) (string, error) {
	str, ok := v.(string)
	if !ok {
		return "", invalidType("string", v)
	}

	if s.minLength != nil && len(str) < *s.minLength {
		return "", NewValidationError(Issue{
			Kind:     TooShort,
			Expected: strconv.Itoa(*s.minLength),
			Actual:   strconv.Itoa(len(str)),
		})
	}
	if s.maxLength != nil && len(str) > *s.maxLength {
		return "", NewValidationError(Issue{
			Kind:     TooLong,
			Expected: strconv.Itoa(*s.maxLength),
			Actual:   strconv.Itoa(len(str)),
		})
	}
	return str, nil
}

// Documentation implements the [Schema] interface.
func (s StringSchema) Documentation() jsonschema.Schema {
	var doc jsonschema.Schema
	doc.AddType(jsonschema.String)

	if s.minLength != nil {
		doc.MinLength = int64(*s.minLength)
	}
	if s.maxLength != nil {
		doc.MaxLength = ptr.Ref(int64(*s.maxLength))
	}
	return doc
}
