// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package route

import (
	"fmt"
	"strings"
)

// segment is one '/'-delimited unit of a compiled pattern.
type segment struct {
	// name is the literal text or, for parameters, the capture name.
	name     string
	param    bool
	optional bool
}

func (s segment) String() string {
	var sb strings.Builder
	if s.param {
		sb.WriteByte(':')
	}
	sb.WriteString(s.name)
	if s.optional {
		sb.WriteByte('?')
	}
	return sb.String()
}

// Path is a pattern compiled into its segment sequence. The pattern
// string is parsed exactly once, at construction; matching is a linear
// scan over the compiled segments.
//
// The zero value is the root pattern "/".
type Path struct {
	segments []segment
}

// MissingLeadingSlashError is returned by [New] for a pattern which does
// not start with '/'.
type MissingLeadingSlashError struct {
	Pattern string
}

func (e MissingLeadingSlashError) Error() string {
	return fmt.Sprintf("path pattern %q must start with '/'", e.Pattern)
}

// InvalidSegmentError is returned by [New] for a segment which does not
// have the [':'][token]['?'] shape, where token is non-empty and free of
// further ':' and '?' characters.
type InvalidSegmentError struct {
	Pattern string
	Segment string
}

func (e InvalidSegmentError) Error() string {
	return fmt.Sprintf("invalid segment %q in path pattern %q", e.Segment, e.Pattern)
}

// OptionalOrderError is returned by [New] and [Path.WithPrefix] when a
// non-optional segment follows an optional one.
type OptionalOrderError struct {
	Pattern string
}

func (e OptionalOrderError) Error() string {
	return fmt.Sprintf("path pattern %q: optional segment cannot be followed by non-optional segment", e.Pattern)
}

// New compiles the given pattern.
//
// Malformed patterns fail with a [MissingLeadingSlashError],
// [InvalidSegmentError] or [OptionalOrderError] naming the pattern.
// These are programmer errors and are meant to surface at route
// registration time, not per request.
func New(pattern string) (Path, error) {
	if !strings.HasPrefix(pattern, "/") {
		return Path{}, MissingLeadingSlashError{Pattern: pattern}
	}
	if pattern == "/" {
		return Path{}, nil
	}

	parts := strings.Split(pattern[1:], "/")
	segments := make([]segment, 0, len(parts))
	for _, part := range parts {
		seg, err := parseSegment(pattern, part)
		if err != nil {
			return Path{}, err
		}
		segments = append(segments, seg)
	}

	err := checkOptionalOrder(pattern, segments)
	if err != nil {
		return Path{}, err
	}
	return Path{segments: segments}, nil
}

func parseSegment(pattern, part string) (segment, error) {
	var seg segment

	rest := part
	if strings.HasSuffix(rest, "?") {
		seg.optional = true
		rest = strings.TrimSuffix(rest, "?")
	}
	if strings.HasPrefix(rest, ":") {
		seg.param = true
		rest = strings.TrimPrefix(rest, ":")
	}
	if rest == "" || strings.ContainsAny(rest, ":?") {
		return segment{}, InvalidSegmentError{
			Pattern: pattern,
			Segment: part,
		}
	}

	seg.name = rest
	return seg, nil
}

func checkOptionalOrder(pattern string, segments []segment) error {
	optionalSeen := false
	for _, seg := range segments {
		if optionalSeen && !seg.optional {
			return OptionalOrderError{Pattern: pattern}
		}
		optionalSeen = optionalSeen || seg.optional
	}
	return nil
}

// Must is a convenience for compiling patterns known to be valid, in the
// style of [regexp.MustCompile].
//
//	books := route.Must(route.New("/books/:id?"))
func Must(p Path, err error) Path {
	if err != nil {
		panic(err)
	}
	return p
}

// String reconstructs the pattern this Path was compiled from. For every
// valid pattern p, Must(New(p)).String() == p.
func (p Path) String() string {
	if len(p.segments) == 0 {
		return "/"
	}

	var sb strings.Builder
	for _, seg := range p.segments {
		sb.WriteByte('/')
		sb.WriteString(seg.String())
	}
	return sb.String()
}

// Params returns the capture names of the parameter segments, in pattern
// order. Routers use these to register the path parameters an operation
// exposes.
func (p Path) Params() []string {
	var names []string
	for _, seg := range p.segments {
		if seg.param {
			names = append(names, seg.name)
		}
	}
	return names
}

// Match reports whether candidate, a URL path with any query string
// already removed, matches this pattern.
//
// On a match it returns the values captured by the parameter segments
// the candidate reached. Optional parameters the candidate never reached
// are absent from the map, never present with an empty value. There is
// no catch-all: a candidate with segments left over after the pattern is
// exhausted does not match.
func (p Path) Match(candidate string) (map[string]string, bool) {
	parts := splitCandidate(candidate)

	params := make(map[string]string)
	for i, seg := range p.segments {
		if i >= len(parts) {
			if seg.optional {
				// every later segment is guaranteed optional
				return params, true
			}
			return nil, false
		}

		if seg.param {
			params[seg.name] = parts[i]
			continue
		}
		if parts[i] != seg.name {
			return nil, false
		}
	}
	if len(parts) > len(p.segments) {
		return nil, false
	}
	return params, true
}

func splitCandidate(candidate string) []string {
	var parts []string
	for part := range strings.SplitSeq(candidate, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// WithPrefix returns a new Path whose segments are prefix's segments
// followed by p's. This is how a sub-route is mounted under a base path.
// The combined sequence is checked against the optional ordering rule
// again, since a required segment of p may now sit behind an optional
// segment of the prefix.
func (p Path) WithPrefix(prefix Path) (Path, error) {
	segments := make([]segment, 0, len(prefix.segments)+len(p.segments))
	segments = append(segments, prefix.segments...)
	segments = append(segments, p.segments...)

	combined := Path{segments: segments}
	err := checkOptionalOrder(combined.String(), segments)
	if err != nil {
		return Path{}, err
	}
	return combined, nil
}
