// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"github.com/swaggest/jsonschema-go"
)

// BooleanSchema accepts exactly the boolean values true and false.
type BooleanSchema struct{}

// Boolean initializes a [BooleanSchema].
func Boolean() BooleanSchema {
	return BooleanSchema{}
}

// Parse implements the [Schema] interface.
func (BooleanSchema) Parse(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, invalidType("boolean", v)
	}
	return b, nil
}

// Documentation implements the [Schema] interface.
func (BooleanSchema) Documentation() jsonschema.Schema {
	var doc jsonschema.Schema
	doc.AddType(jsonschema.Boolean)
	return doc
}
