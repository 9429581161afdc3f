package rules

import (
	"reflect"

	"github.com/dmitrymomot/rulebook/pkg/pathresolve"
	"github.com/dmitrymomot/rulebook/pkg/validator"
)

// ConfirmationSuffix names the field that confirmed compares against.
const ConfirmationSuffix = "_confirmation"

// confirmed expects "<path>_confirmation" to hold the same value as every present path.
func confirmed(e *validator.Engine, data any, pattern, rule string, _ []string) {
	for path, val := range present(data, pattern) {
		other, ok := pathresolve.ResolveFirst(data, path+ConfirmationSuffix)
		if !ok || !equal(val, other) {
			e.AddError(path, rule)
		}
	}
}

// compare implements same (want true) and different. The parameter is a pattern; the first
// value it resolves to is the comparison target.
func compare(want bool) validator.Predicate {
	return func(e *validator.Engine, data any, pattern, rule string, params []string) {
		if len(params) == 0 || params[0] == "" {
			return
		}
		target := params[0]
		other, found := pathresolve.ResolveFirst(data, target)

		for path, val := range present(data, pattern) {
			same := found && equal(val, other)
			if same != want {
				e.AddError(path, rule, map[string]any{KeyOther: target})
			}
		}
	}
}

// equal compares scalars by their textual form and anything else structurally.
func equal(a, b any) bool {
	as, aok := asString(a)
	bs, bok := asString(b)
	if aok && bok {
		return as == bs
	}
	return reflect.DeepEqual(a, b)
}
