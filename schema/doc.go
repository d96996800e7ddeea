// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package schema provides declarative validation of untrusted input into typed values.
//
// # Overview
//
// A [Schema] does two things: it parses untrusted input (typically the
// result of decoding a JSON document into any) into a typed value, and
// it documents itself as a JSON schema for consumption by an OpenAPI
// document generator.
//
// Composite schemas never stop at the first problem. Every failure found
// in one parse is collected into a single [ValidationError], with each
// [Issue] carrying the path to the exact value that failed:
//
//	s := schema.Array(schema.Boolean()).Min(1)
//
//	_, err := s.Parse([]any{true, 1.0, "x"})
//
//	var verr *schema.ValidationError
//	if errors.As(err, &verr) {
//	    for _, issue := range verr.Issues() {
//	        // invalid_type at 1: expected boolean, got number
//	        // invalid_type at 2: expected boolean, got string
//	    }
//	}
//
// # Immutability
//
// Schemas are constructed once, at definition time, and never mutated.
// Every modifier returns a new schema instance, so a base schema can be
// shared and specialized freely:
//
//	flags := schema.Array(schema.Boolean())
//	few := flags.Max(4)
//	many := flags.Min(100)
//
// Since parsing allocates only transient per-call state, a schema is
// safe for unrestricted concurrent use by parallel request handlers.
//
// # Object fields
//
// Field schemas of differing value types are composed by erasing their
// type with [Any]:
//
//	user := schema.Object().
//	    Field("name", schema.Any(schema.String().Min(1))).
//	    OptionalField("admin", schema.Any(schema.Boolean()))
package schema
