package rules_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulebook/pkg/i18n"
	"github.com/dmitrymomot/rulebook/pkg/pathresolve"
	"github.com/dmitrymomot/rulebook/pkg/rules"
	"github.com/dmitrymomot/rulebook/pkg/validator"
)

func newEngine(t *testing.T, opts ...validator.Option) *validator.Engine {
	t.Helper()
	opts = append([]validator.Option{validator.WithBootstrap(rules.Register)}, opts...)
	e, err := validator.New(opts...)
	require.NoError(t, err)
	return e
}

// failures validates data against a single declaration and returns the failing paths.
func failures(t *testing.T, data any, pattern, decl string) []string {
	t.Helper()
	e := newEngine(t)
	e.Validate(data, validator.NewRuleSet(validator.Field(pattern, decl)))

	var paths []string
	for _, v := range e.Violations() {
		paths = append(paths, v.Attribute)
	}
	return paths
}

func decode(t *testing.T, doc string) any {
	t.Helper()
	data, err := pathresolve.DecodeJSON(strings.NewReader(doc))
	require.NoError(t, err)
	return data
}

func TestRegister(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	for _, name := range rules.Names() {
		assert.True(t, e.HasRule(name), name)
	}
	assert.Contains(t, rules.Names(), "required")
	assert.IsNonDecreasing(t, rules.Names())

	require.NoError(t, e.Reset())
	assert.True(t, e.HasRule("between"), "rules survive reset")
}

func TestDefaultCatalogCoversRules(t *testing.T) {
	t.Parallel()

	catalog, err := i18n.Default(context.Background())
	require.NoError(t, err)

	for _, lang := range catalog.Languages() {
		messages, _, err := catalog.Lookup(lang)
		require.NoError(t, err)
		for _, name := range rules.Names() {
			assert.Contains(t, messages, name, "%s: no message for %q", lang, name)
		}
	}
}

func TestInvalidParametersAreLogged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	e := newEngine(t, validator.WithLogger(newTestLogger(buf)))
	e.Validate(map[string]any{"a": "x"}, validator.NewRuleSet(
		validator.Field("a", "min:abc"),
		validator.Field("a", "between:1"),
		validator.FieldList("a", "regex:(["),
	))

	assert.False(t, e.HasErrors())
	assert.Contains(t, buf.String(), "rule=min")
	assert.Contains(t, buf.String(), "rule=between")
	assert.Contains(t, buf.String(), "rule=regex")
}
