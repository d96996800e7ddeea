// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"github.com/swaggest/jsonschema-go"
	"github.com/z5labs/sdk-go/ptr"
)

// Modifiers are implemented as decorators wrapping an inner schema,
// rather than as a base type each concrete schema derives from. Wrapping
// keeps the set of concrete schemas closed and lets modifiers compose in
// any order without a shared mutable base.

type anySchema[T any] struct {
	inner Schema[T]
}

// Any type-erases a schema so that schemas over different value types
// can be composed, for example as the fields of an [ObjectSchema].
// Parsing and documentation are delegated to the wrapped schema.
func Any[T any](s Schema[T]) Schema[any] {
	return anySchema[T]{
		inner: s,
	}
}

// Parse implements the [Schema] interface.
func (s anySchema[T]) Parse(v any) (any, error) {
	val, err := s.inner.Parse(v)
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Documentation implements the [Schema] interface.
func (s anySchema[T]) Documentation() jsonschema.Schema {
	return s.inner.Documentation()
}

type optionalSchema[T any] struct {
	inner Schema[T]
}

// Optional wraps a schema so that null input parses to a nil pointer
// instead of failing. Non-null input is parsed by the inner schema.
func Optional[T any](s Schema[T]) Schema[*T] {
	return optionalSchema[T]{
		inner: s,
	}
}

// Parse implements the [Schema] interface.
func (s optionalSchema[T]) Parse(v any) (*T, error) {
	if v == nil {
		return nil, nil
	}

	val, err := s.inner.Parse(v)
	if err != nil {
		return nil, err
	}
	return &val, nil
}

// Documentation implements the [Schema] interface.
func (s optionalSchema[T]) Documentation() jsonschema.Schema {
	doc := s.inner.Documentation()
	doc.AddType(jsonschema.Null)
	return doc
}

type defaultSchema[T any] struct {
	inner    Schema[T]
	fallback T
}

// Default wraps a schema so that null input parses to the given
// fallback value instead of failing. Non-null input is parsed by the
// inner schema.
func Default[T any](s Schema[T], fallback T) Schema[T] {
	return defaultSchema[T]{
		inner:    s,
		fallback: fallback,
	}
}

// Parse implements the [Schema] interface.
func (s defaultSchema[T]) Parse(v any) (T, error) {
	if v == nil {
		return s.fallback, nil
	}
	return s.inner.Parse(v)
}

// Documentation implements the [Schema] interface.
func (s defaultSchema[T]) Documentation() jsonschema.Schema {
	doc := s.inner.Documentation()
	doc.Default = ptr.Ref[any](s.fallback)
	return doc
}
