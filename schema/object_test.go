// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swaggest/jsonschema-go"
)

func TestObject_Parse(t *testing.T) {
	userSchema := Object().
		Field("name", Any(String().Min(1))).
		Field("active", Any(Boolean())).
		OptionalField("age", Any(Number().Min(0)))

	t.Run("will accept an object satisfying every field", func(t *testing.T) {
		v, err := userSchema.Parse(map[string]any{
			"name":   "ada",
			"active": true,
			"age":    36.0,
		})
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, map[string]any{
			"name":   "ada",
			"active": true,
			"age":    36.0,
		}, v)
	})

	t.Run("will leave an absent optional field out of the result", func(t *testing.T) {
		v, err := userSchema.Parse(map[string]any{
			"name":   "ada",
			"active": true,
		})
		if !assert.NoError(t, err) {
			return
		}
		_, found := v["age"]
		assert.False(t, found)
	})

	t.Run("will drop undeclared keys", func(t *testing.T) {
		v, err := userSchema.Parse(map[string]any{
			"name":   "ada",
			"active": true,
			"extra":  "ignored",
		})
		if !assert.NoError(t, err) {
			return
		}
		_, found := v["extra"]
		assert.False(t, found)
	})

	t.Run("will fail non-object input with one invalid_type issue", func(t *testing.T) {
		_, err := userSchema.Parse([]any{})

		var verr *ValidationError
		if !assert.ErrorAs(t, err, &verr) {
			return
		}

		issues := verr.Issues()
		if !assert.Len(t, issues, 1) {
			return
		}
		assert.Equal(t, InvalidType, issues[0].Kind)
		assert.Equal(t, "object", issues[0].Expected)
		assert.Equal(t, "array", issues[0].Actual)
	})

	t.Run("will report a missing required field at its path", func(t *testing.T) {
		_, err := userSchema.Parse(map[string]any{
			"active": true,
		})

		var verr *ValidationError
		if !assert.ErrorAs(t, err, &verr) {
			return
		}

		issues := verr.Issues()
		if !assert.Len(t, issues, 1) {
			return
		}
		assert.Equal(t, Missing, issues[0].Kind)
		assert.Equal(t, []string{"name"}, issues[0].Path)
	})

	t.Run("will aggregate failures across sibling fields in field name order", func(t *testing.T) {
		_, err := userSchema.Parse(map[string]any{
			"name":   1.0,
			"active": "yes",
			"age":    -1.0,
		})

		var verr *ValidationError
		if !assert.ErrorAs(t, err, &verr) {
			return
		}

		issues := verr.Issues()
		if !assert.Len(t, issues, 3) {
			return
		}
		assert.Equal(t, []string{"active"}, issues[0].Path)
		assert.Equal(t, []string{"age"}, issues[1].Path)
		assert.Equal(t, []string{"name"}, issues[2].Path)
	})

	t.Run("will attribute issues through nested composites", func(t *testing.T) {
		s := Object().
			Field("flags", Any(Array(Boolean())))

		_, err := s.Parse(map[string]any{
			"flags": []any{true, "x"},
		})

		var verr *ValidationError
		if !assert.ErrorAs(t, err, &verr) {
			return
		}

		issues := verr.Issues()
		if !assert.Len(t, issues, 1) {
			return
		}
		assert.Equal(t, []string{"flags", "1"}, issues[0].Path)
	})

	t.Run("will propagate a non-ValidationError field failure unchanged", func(t *testing.T) {
		bug := errors.New("field schema misbehaved")
		s := Object().
			Field("x", Any[bool](failingSchema{err: bug}))

		_, err := s.Parse(map[string]any{"x": true})

		assert.ErrorIs(t, err, bug)
	})

	t.Run("will not mutate the receiver when adding fields", func(t *testing.T) {
		base := Object().Field("a", Any(Boolean()))
		base.Field("b", Any(Boolean()))

		_, err := base.Parse(map[string]any{"a": true})
		assert.NoError(t, err)
	})
}

func TestObject_Documentation(t *testing.T) {
	t.Run("will carry properties and required field names", func(t *testing.T) {
		doc := Object().
			Field("name", Any(String())).
			OptionalField("admin", Any(Boolean())).
			Documentation()

		if !assert.NotNil(t, doc.Type) {
			return
		}
		assert.Equal(t, jsonschema.Object, *doc.Type.SimpleTypes)

		if !assert.Len(t, doc.Properties, 2) {
			return
		}
		assert.Contains(t, doc.Properties, "name")
		assert.Contains(t, doc.Properties, "admin")

		assert.Equal(t, []string{"name"}, doc.Required)
	})

	t.Run("will describe a fieldless object plainly", func(t *testing.T) {
		doc := Object().Documentation()

		assert.Empty(t, doc.Properties)
		assert.Empty(t, doc.Required)
	})
}
