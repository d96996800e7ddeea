// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"encoding/json"
	"strconv"

	"github.com/swaggest/jsonschema-go"
	"github.com/z5labs/sdk-go/ptr"
)

// NumberSchema accepts a numeric value, optionally bounded by an
// inclusive minimum and maximum.
type NumberSchema struct {
	min *float64
	max *float64
}

// Number initializes an unbounded [NumberSchema].
func Number() NumberSchema {
	return NumberSchema{}
}

// Min returns a copy of the schema with an inclusive minimum.
func (s NumberSchema) Min(n float64) NumberSchema {
	s.min = &n
	return s
}

// Max returns a copy of the schema with an inclusive maximum.
func (s NumberSchema) Max(n float64) NumberSchema {
	s.max = &n
	return s
}

// Parse implements the [Schema] interface.
//
// Every Go numeric type and [json.Number] are accepted. The parsed
// value is always a float64, matching how encoding/json decodes JSON
// numbers into any. Numbers are leaf values so the first failing check
// is reported alone.
func (s NumberSchema) Parse(v any) (float64, error) {
	n, ok := numericValue(v)
	if !ok {
		return 0, invalidType("number", v)
	}

	if s.min != nil && n < *s.min {
		return 0, NewValidationError(Issue{
			Kind:     TooSmall,
			Expected: formatNumber(*s.min),
			Actual:   formatNumber(n),
		})
	}
	if s.max != nil && n > *s.max {
		return 0, NewValidationError(Issue{
			Kind:     TooBig,
			Expected: formatNumber(*s.max),
			Actual:   formatNumber(n),
		})
	}
	return n, nil
}

// Documentation implements the [Schema] interface.
func (s NumberSchema) Documentation() jsonschema.Schema {
	var doc jsonschema.Schema
	doc.AddType(jsonschema.Number)

	if s.min != nil {
		doc.Minimum = ptr.Ref(*s.min)
	}
	if s.max != nil {
		doc.Maximum = ptr.Ref(*s.max)
	}
	return doc
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func numericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
