package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/rulebook/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:  "applies multiple transforms in sequence",
			input: "  HELLO   WORLD  ",
			transforms: []func(string) string{
				sanitizer.RemoveExtraWhitespace,
				sanitizer.ToLower,
			},
			expected: "hello world",
		},
		{
			name:       "no transforms returns input",
			input:      "as-is",
			transforms: nil,
			expected:   "as-is",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	label := sanitizer.Compose(sanitizer.Humanize, sanitizer.TitleCaseFor(language.German))
	assert.Equal(t, "Shipping Address", label("shipping_address"))
	assert.Equal(t, "Shipping Address", label("shippingAddress"))
}

func TestHumanize(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"email":          "email",
		"first_name":     "first name",
		"billingAddress": "billing address",
		"users.0.email":  "users 0 email",
		"__x--y__":       "x y",
		"HTTPStatus":     "httpstatus",
		"address2Line":   "address2 line",
		"":               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizer.Humanize(in), in)
	}
}

func TestPrettify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Email", sanitizer.Prettify("email"))
	assert.Equal(t, "First Name", sanitizer.Prettify("first_name"))
	assert.Equal(t, "Password Confirmation", sanitizer.Prettify("password_confirmation"))
	assert.Equal(t, "Tags 1", sanitizer.Prettify("tags.1"))
}
