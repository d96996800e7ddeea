// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"errors"
	"maps"
	"slices"

	"github.com/swaggest/jsonschema-go"
)

type objectField struct {
	schema   Schema[any]
	required bool
}

// ObjectSchema accepts a JSON object whose declared fields all satisfy
// their field schemas. Keys without a declared field are dropped from
// the parsed result.
type ObjectSchema struct {
	fields map[string]objectField
}

// Object initializes an [ObjectSchema] with no declared fields.
// Declare fields with [ObjectSchema.Field] and [ObjectSchema.OptionalField],
// type-erasing each field schema with [Any].
//
// Example:
//
//	user := schema.Object().
//	    Field("name", schema.Any(schema.String().Min(1))).
//	    OptionalField("admin", schema.Any(schema.Boolean()))
func Object() ObjectSchema {
	return ObjectSchema{}
}

// Field returns a copy of the schema with a required field added.
func (s ObjectSchema) Field(name string, field Schema[any]) ObjectSchema {
	return s.withField(name, field, true)
}

// OptionalField returns a copy of the schema with an optional field added.
// An absent optional field is simply left out of the parsed result.
func (s ObjectSchema) OptionalField(name string, field Schema[any]) ObjectSchema {
	return s.withField(name, field, false)
}

func (s ObjectSchema) withField(name string, field Schema[any], required bool) ObjectSchema {
	fields := make(map[string]objectField, len(s.fields)+1)
	maps.Copy(fields, s.fields)
	fields[name] = objectField{
		schema:   field,
		required: required,
	}

	s.fields = fields
	return s
}

// Parse implements the [Schema] interface.
//
// Fields are validated independently and their failures aggregated, each
// with the field name prepended to its issue paths. A missing required
// field contributes a single missing issue at the field's path. Fields
// are visited in sorted name order so the issue sequence is deterministic.
// A field schema failing with anything other than a [*ValidationError]
// is a bug in that schema and its error is returned unchanged.
func (s ObjectSchema) Parse(v any) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, invalidType("object", v)
	}

	out := make(map[string]any, len(s.fields))
	var issues []Issue
	for _, name := range slices.Sorted(maps.Keys(s.fields)) {
		field := s.fields[name]

		raw, found := obj[name]
		if !found {
			if field.required {
				issues = append(issues, Issue{
					Kind:     Missing,
					Path:     []string{name},
					Expected: "value",
					Actual:   "undefined",
				})
			}
			continue
		}

		val, err := field.schema.Parse(raw)
		if err == nil {
			out[name] = val
			continue
		}

		var verr *ValidationError
		if !errors.As(err, &verr) {
			return nil, err
		}
		issues = append(issues, verr.WithPrefix(name).Issues()...)
	}
	if len(issues) > 0 {
		return nil, NewValidationError(issues...)
	}
	return out, nil
}

// Documentation implements the [Schema] interface.
func (s ObjectSchema) Documentation() jsonschema.Schema {
	var doc jsonschema.Schema
	doc.AddType(jsonschema.Object)

	if len(s.fields) == 0 {
		return doc
	}

	props := make(map[string]jsonschema.SchemaOrBool, len(s.fields))
	var required []string
	for _, name := range slices.Sorted(maps.Keys(s.fields)) {
		field := s.fields[name]

		fieldDoc := field.schema.Documentation()
		props[name] = fieldDoc.ToSchemaOrBool()

		if field.required {
			required = append(required, name)
		}
	}

	doc.Properties = props
	doc.Required = required
	return doc
}
