package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// RemoveExtraWhitespace collapses whitespace runs into single spaces and trims the result.
func RemoveExtraWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Humanize turns an attribute name or path into lowercase words:
// separators ("_", "-", ".") become spaces and camelCase boundaries are split.
//
//	Humanize("first_name")      // "first name"
//	Humanize("billingAddress")  // "billing address"
//	Humanize("users.0.email")   // "users 0 email"
func Humanize(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	var prev rune
	for i, r := range s {
		switch {
		case r == '_' || r == '-' || r == '.':
			b.WriteRune(' ')
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
				b.WriteRune(' ')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return RemoveExtraWhitespace(b.String())
}

// TitleCase capitalizes every word using English casing rules.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// TitleCaseFor returns a title-casing transform for the given language.
// A cases.Caser is stateful, so each call builds its own.
func TitleCaseFor(tag language.Tag) func(string) string {
	return func(s string) string {
		return cases.Title(tag).String(s)
	}
}

// Prettify is the default attribute prettifier: Humanize followed by TitleCase.
//
//	Prettify("email")       // "Email"
//	Prettify("first_name")  // "First Name"
var Prettify = Compose(Humanize, TitleCase)
