// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package route compiles URL path patterns into reusable matchers.
//
// # Pattern grammar
//
// A pattern starts with '/' and is made of '/'-delimited segments. A
// segment prefixed with ':' is a named parameter which captures the
// corresponding candidate segment. A segment suffixed with '?' is
// optional; once one segment is optional every segment after it must be
// optional too.
//
//	/books                 literal only
//	/books/:id             required parameter
//	/books/:id?            optional parameter
//	/files/:dir/:name?     mixed
//
// Patterns are compiled once with [New] (or [Must] at route registration
// time, where a malformed pattern is a programmer error) and then matched
// against incoming URL paths any number of times:
//
//	p := route.Must(route.New("/books/:id?"))
//
//	params, ok := p.Match("/books/37") // ok, params["id"] == "37"
//	params, ok = p.Match("/books")     // ok, no "id" capture
//	params, ok = p.Match("/books/1/x") // no match
//
// # Mounting sub-routes
//
// [Path.WithPrefix] prepends another compiled pattern's segments, the way
// a router mounts a sub-router under a base path. The combined segment
// sequence is re-validated so a required segment can never end up behind
// an optional one.
//
// A compiled [Path] is immutable and safe for unrestricted concurrent use.
package route
