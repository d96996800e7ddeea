// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/swaggest/jsonschema-go"
	"github.com/z5labs/sdk-go/ptr"
)

// DateSchema accepts date values, date strings and epoch timestamps.
type DateSchema struct{}

// Date initializes a [DateSchema].
func Date() DateSchema {
	return DateSchema{}
}

// Parse implements the [Schema] interface.
//
// A [time.Time] passes through unchanged. A string is accepted if it is
// date-parseable in any commonly used layout, regardless of format. A
// number is treated as a Unix epoch timestamp in milliseconds. Anything
// else, including an unparseable string, fails with an invalid_type issue.
func (DateSchema) Parse(v any) (time.Time, error) {
	if t, ok := v.(time.Time); ok {
		return t, nil
	}

	if s, ok := v.(string); ok {
		t, err := dateparse.ParseAny(s)
		if err != nil {
			return time.Time{}, invalidType("date", v)
		}
		return t, nil
	}

	if millis, ok := numericValue(v); ok {
		return time.UnixMilli(int64(millis)).UTC(), nil
	}

	return time.Time{}, invalidType("date", v)
}

// Documentation implements the [Schema] interface.
func (DateSchema) Documentation() jsonschema.Schema {
	var doc jsonschema.Schema
	doc.AddType(jsonschema.String)
	doc.Format = ptr.Ref("date-time")
	return doc
}
