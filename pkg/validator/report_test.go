package validator_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulebook/pkg/validator"
)

func TestReport(t *testing.T) {
	t.Parallel()

	t.Run("renders prettified attribute", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t)
		e.SetRuleMessage("email", "The :attribute field must be valid.")

		e.Validate(map[string]any{"email": "bad"}, validator.NewRuleSet(validator.Field("email", "email")))
		report, err := e.Report()
		require.NoError(t, err)
		assert.Equal(t, map[string]map[string]string{
			"email": {"email": "The Email field must be valid."},
		}, report.Errors)
	})

	t.Run("singular alternative for plain patterns", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t)
		e.SetRuleMessage("in_list", "The :attribute is|are invalid.")

		e.Validate(map[string]any{"role": "root"}, validator.NewRuleSet(validator.Field("role", "in_list:user,admin")))
		report, err := e.Report()
		require.NoError(t, err)
		assert.Equal(t, "The Role is invalid.", report.Errors["role"]["in_list"])
	})

	t.Run("both alternatives kept for wildcard patterns", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t)
		e.SetRuleMessage("in_list", "The :attribute is|are invalid.")

		e.Validate(map[string]any{"tags": []any{"x"}}, validator.NewRuleSet(validator.Field("tags.*", "in_list:a")))
		report, err := e.Report()
		require.NoError(t, err)
		assert.Equal(t, "The Tags 0 is|are invalid.", report.Errors["tags.0"]["in_list"])
	})

	t.Run("slash alternatives", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t)
		e.SetRuleMessage("email", "Check the :attribute entry/entries.")
		e.AddError("email", "email")

		report, err := e.Report()
		require.NoError(t, err)
		assert.Equal(t, "Check the Email entry.", report.Errors["email"]["email"])
	})

	t.Run("literal and pretty keys", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t)
		e.SetRuleMessage("in_list", "The :attribute must be one of %values.")

		e.Validate(map[string]any{"first_name": "z"}, validator.NewRuleSet(validator.Field("first_name", "in_list:a,b")))
		report, err := e.Report()
		require.NoError(t, err)
		assert.Equal(t, "The First Name must be one of a, b.", report.Errors["first_name"]["in_list"])
	})

	t.Run("longer keys are substituted first", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t)
		e.SetRuleMessage("same", "The :attribute must match :attribute_confirmation.")
		e.AddError("password", "same", map[string]any{":attribute_confirmation": "password_confirmation"})

		report, err := e.Report()
		require.NoError(t, err)
		assert.Equal(t, "The Password must match Password Confirmation.", report.Errors["password"]["same"])
	})

	t.Run("plurality runs before values are substituted", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t)
		e.SetRuleMessage("in_list", "Use %values.")
		e.AddError("mode", "in_list", map[string]any{"%values": "read|write"})

		report, err := e.Report()
		require.NoError(t, err)
		assert.Equal(t, "Use read|write.", report.Errors["mode"]["in_list"])
	})

	t.Run("custom prettifier", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, validator.WithPrettifier(strings.ToUpper))
		e.SetRuleMessage("email", ":attribute!")
		e.AddError("email", "email")

		report, err := e.Report()
		require.NoError(t, err)
		assert.Equal(t, "EMAIL!", report.Errors["email"]["email"])
	})

	t.Run("later violation of the same pair wins", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t)
		e.SetRuleMessage("min", "At least %min.")
		e.AddError("age", "min", map[string]any{"%min": 1})
		e.AddError("age", "min", map[string]any{"%min": 18})

		report, err := e.Report()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"min": "At least 18."}, report.Errors["age"])
	})

	t.Run("empty report", func(t *testing.T) {
		t.Parallel()
		report, err := newEngine(t).Report()
		require.NoError(t, err)
		assert.True(t, report.IsEmpty())
		assert.NotNil(t, report.Errors)
	})
}

func TestReportTemplateSelection(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	e.SetRuleMessage("email", "rule message")
	e.SetAttributeMessages(map[string]string{
		"users.0.email": "exact message",
		"users.*.email": "pattern message",
		"*.*.email":     "broad message",
	})

	e.AddError("users.0.email", "email")
	e.AddError("users.1.email", "email")
	e.AddError("admins.1.email", "email")
	e.AddError("contact", "email")

	report, err := e.Report()
	require.NoError(t, err)
	assert.Equal(t, "exact message", report.Errors["users.0.email"]["email"])
	assert.Equal(t, "pattern message", report.Errors["users.1.email"]["email"])
	assert.Equal(t, "broad message", report.Errors["admins.1.email"]["email"])
	assert.Equal(t, "rule message", report.Errors["contact"]["email"])
}

func TestReportMissingTemplate(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	e.Validate(map[string]any{"email": "bad"}, validator.NewRuleSet(validator.Field("email", "email")))

	_, err := e.Report()
	require.ErrorIs(t, err, validator.ErrMissingTemplate)

	var missing *validator.MissingTemplateError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "email", missing.Attribute)
	assert.Equal(t, "email", missing.Rule)
}

func TestReportAccessors(t *testing.T) {
	t.Parallel()

	report := validator.Report{Errors: map[string]map[string]string{
		"name":  {"required": "Name is required.", "alpha": "Name must be letters."},
		"email": {"email": "Bad email."},
	}}

	assert.True(t, report.Has("name"))
	assert.False(t, report.Has("age"))

	msg, ok := report.Get("email", "email")
	assert.True(t, ok)
	assert.Equal(t, "Bad email.", msg)

	assert.Equal(t, []string{"Name must be letters.", "Name is required."}, report.Messages("name"))
	assert.Empty(t, report.Messages("age"))
	assert.Equal(t, []string{"email", "name"}, report.Fields())

	first, ok := report.First("name")
	assert.True(t, ok)
	assert.Equal(t, "Name must be letters.", first)
	_, ok = report.First("age")
	assert.False(t, ok)

	raw, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors":{"email":{"email":"Bad email."},"name":{"alpha":"Name must be letters.","required":"Name is required."}}}`, string(raw))
}
