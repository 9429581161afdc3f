package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	t.Run("absent plain path reports the pattern", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"email"}, failures(t, map[string]any{}, "email", "required"))
		assert.Equal(t, []string{"user.name"}, failures(t, map[string]any{"user": map[string]any{}}, "user.name", "required"))
	})

	t.Run("empty values", func(t *testing.T) {
		t.Parallel()
		data := decode(t, `{"a":"  ","b":[],"c":{},"d":null,"e":0,"f":false,"g":"x"}`)
		for _, field := range []string{"a", "b", "c", "d"} {
			assert.Equal(t, []string{field}, failures(t, data, field, "required"), field)
		}
		for _, field := range []string{"e", "f", "g"} {
			assert.Empty(t, failures(t, data, field, "required"), field)
		}
	})

	t.Run("wildcard literal tail reports each missing leaf", func(t *testing.T) {
		t.Parallel()
		data := decode(t, `{"items":[{"qty":1},{}]}`)
		assert.Equal(t, []string{"items.1.qty"}, failures(t, data, "items.*.qty", "required"))
	})

	t.Run("missing wildcard level yields nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, failures(t, map[string]any{}, "items.*.qty", "required"))
	})
}

func TestFilled(t *testing.T) {
	t.Parallel()

	data := decode(t, `{"a":"","b":"x"}`)
	assert.Equal(t, []string{"a"}, failures(t, data, "a", "filled"))
	assert.Empty(t, failures(t, data, "b", "filled"))
	assert.Empty(t, failures(t, data, "missing", "filled"))
}

func TestAccepted(t *testing.T) {
	t.Parallel()

	data := decode(t, `{"a":"yes","b":"On","c":1,"d":true,"e":"no","f":0}`)
	for _, field := range []string{"a", "b", "c", "d"} {
		assert.Empty(t, failures(t, data, field, "accepted"), field)
	}
	for _, field := range []string{"e", "f", "missing"} {
		assert.Equal(t, []string{field}, failures(t, data, field, "accepted"), field)
	}
}
