// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swaggest/jsonschema-go"
)

func TestBoolean_Parse(t *testing.T) {
	t.Run("will accept true and false", func(t *testing.T) {
		s := Boolean()

		v, err := s.Parse(true)
		if !assert.NoError(t, err) {
			return
		}
		assert.True(t, v)

		v, err = s.Parse(false)
		if !assert.NoError(t, err) {
			return
		}
		assert.False(t, v)
	})

	t.Run("will fail any non-boolean with one invalid_type issue at the empty path", func(t *testing.T) {
		for input, actual := range map[any]string{
			"x": "string",
			1.0: "number",
			nil: "null",
		} {
			_, err := Boolean().Parse(input)

			var verr *ValidationError
			if !assert.ErrorAs(t, err, &verr, "input %v", input) {
				continue
			}

			issues := verr.Issues()
			if !assert.Len(t, issues, 1) {
				continue
			}
			assert.Equal(t, InvalidType, issues[0].Kind)
			assert.Empty(t, issues[0].Path)
			assert.Equal(t, "boolean", issues[0].Expected)
			assert.Equal(t, actual, issues[0].Actual)
		}
	})

	t.Run("will report composite inputs by their type tag", func(t *testing.T) {
		_, err := Boolean().Parse([]any{true})

		var verr *ValidationError
		if !assert.ErrorAs(t, err, &verr) {
			return
		}
		assert.Equal(t, "array", verr.Issues()[0].Actual)
	})
}

func TestBoolean_Documentation(t *testing.T) {
	t.Run("will describe itself as a boolean", func(t *testing.T) {
		doc := Boolean().Documentation()

		if !assert.NotNil(t, doc.Type) {
			return
		}
		if !assert.NotNil(t, doc.Type.SimpleTypes) {
			return
		}
		assert.Equal(t, jsonschema.Boolean, *doc.Type.SimpleTypes)
	})
}
