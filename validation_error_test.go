package rulebook_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulebook"
	"github.com/dmitrymomot/rulebook/pkg/validator"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		ve := rulebook.NewValidationError()
		assert.True(t, ve.IsEmpty())
		assert.Equal(t, "validation failed", ve.Error())
	})

	t.Run("add and read", func(t *testing.T) {
		t.Parallel()
		ve := rulebook.NewValidationError()
		ve.Add("name", "Name is required.")
		ve.Add("name", "Name is too short.")
		ve.Add("email", "Email is invalid.")

		assert.True(t, ve.Has("name"))
		assert.False(t, ve.Has("age"))
		assert.Equal(t, "Name is required.", ve.Get("name"))
		assert.Equal(t, "", ve.Get("age"))
		assert.Equal(t, "validation error: email: Email is invalid., name: Name is required.", ve.Error())
	})

	t.Run("from report", func(t *testing.T) {
		t.Parallel()
		ve := rulebook.FromReport(validator.Report{Errors: map[string]map[string]string{
			"name": {"required": "R", "alpha": "A"},
		}})
		assert.Equal(t, []string{"A", "R"}, ve["name"])
	})

	t.Run("wrapped", func(t *testing.T) {
		t.Parallel()
		ve := rulebook.NewValidationError()
		ve.Add("x", "bad")

		got, ok := rulebook.IsValidationError(fmt.Errorf("signup: %w", ve))
		assert.True(t, ok)
		assert.Equal(t, "bad", got.Get("x"))
	})
}
