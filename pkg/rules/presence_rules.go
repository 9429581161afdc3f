package rules

import (
	"slices"

	"github.com/dmitrymomot/rulebook/pkg/sanitizer"
	"github.com/dmitrymomot/rulebook/pkg/validator"
)

var (
	acceptedValues = []string{"yes", "on", "1", "true"}
	normalize      = sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)
)

// required fails missing values, blank strings and empty collections.
func required(e *validator.Engine, data any, pattern, rule string, _ []string) {
	for path, val := range each(data, pattern) {
		if isEmpty(val) {
			e.AddError(path, rule)
		}
	}
}

// filled fails values that are present but empty. Absent values pass.
func filled(e *validator.Engine, data any, pattern, rule string, _ []string) {
	for path, val := range present(data, pattern) {
		if isEmpty(val) {
			e.AddError(path, rule)
		}
	}
}

// accepted expects "yes", "on", "1", 1 or true. Missing values fail.
func accepted(e *validator.Engine, data any, pattern, rule string, _ []string) {
	for path, val := range each(data, pattern) {
		s, ok := asString(val)
		if !ok || !slices.Contains(acceptedValues, normalize(s)) {
			e.AddError(path, rule)
		}
	}
}
