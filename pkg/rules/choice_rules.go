package rules

import (
	"slices"

	"github.com/dmitrymomot/rulebook/pkg/validator"
)

// choice implements in (member true) and not_in. Values are compared by their textual
// form, so json.Number 1 matches the parameter "1".
func choice(member bool) validator.Predicate {
	return func(e *validator.Engine, data any, pattern, rule string, params []string) {
		for path, val := range present(data, pattern) {
			s, ok := asString(val)
			if !ok || slices.Contains(params, s) != member {
				e.AddError(path, rule, map[string]any{KeyValues: params})
			}
		}
	}
}
