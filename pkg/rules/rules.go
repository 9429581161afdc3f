package rules

import (
	"iter"
	"maps"
	"slices"

	"github.com/dmitrymomot/rulebook/pkg/pathresolve"
	"github.com/dmitrymomot/rulebook/pkg/validator"
)

// Replacement keys set by the built-in rules.
const (
	KeyMin    = "%min"
	KeyMax    = "%max"
	KeySize   = "%size"
	KeyValues = "%values"
	KeyDigits = "%digits"
	KeyFormat = "%format"
	KeyDate   = "%date"
	KeyOther  = ":other"
)

// Register installs every built-in rule on e, replacing registrations with the same names.
func Register(e *validator.Engine) {
	for name, fn := range builtins() {
		e.AddRule(name, fn)
	}
}

// Names returns the built-in rule names, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(builtins()))
}

func builtins() map[string]validator.Predicate {
	return map[string]validator.Predicate{
		"required": required,
		"filled":   filled,
		"accepted": accepted,

		"string":  check(isString),
		"numeric": check(isNumeric),
		"integer": check(isInteger),
		"boolean": check(isBoolean),
		"array":   check(pathresolve.IsContainer),

		"alpha":       check(matches(alphaRegex)),
		"alpha_num":   check(matches(alphaNumRegex)),
		"alpha_dash":  check(matches(alphaDashRegex)),
		"email":       check(format("email")),
		"url":         check(format("url")),
		"ip":          check(format("ip")),
		"ipv4":        check(format("ipv4")),
		"ipv6":        check(format("ipv6")),
		"uuid":        check(isUUID),
		"regex":       regex(true),
		"not_regex":   regex(false),
		"starts_with": affix(true),
		"ends_with":   affix(false),
		"digits":      digits,

		"in":     choice(true),
		"not_in": choice(false),

		"min":     minRule,
		"max":     maxRule,
		"between": betweenRule,
		"size":    sizeRule,

		"confirmed": confirmed,
		"same":      compare(true),
		"different": compare(false),

		"date":        check(isDate),
		"date_format": dateFormat,
		"after":       dateOrder(true),
		"before":      dateOrder(false),
	}
}

// each yields the values addressed by pattern. A pattern without wildcards whose path is
// absent yields the pattern itself with a nil value, so presence rules can report it.
func each(data any, pattern string) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		found := false
		for path, val := range pathresolve.ResolveAll(data, pattern) {
			found = true
			if !yield(path, val) {
				return
			}
		}
		if !found && !pathresolve.HasWildcard(pattern) {
			yield(pattern, nil)
		}
	}
}

// present yields the non-nil values addressed by pattern.
func present(data any, pattern string) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for path, val := range pathresolve.ResolveAll(data, pattern) {
			if val == nil {
				continue
			}
			if !yield(path, val) {
				return
			}
		}
	}
}

// check builds a predicate failing every present value for which ok returns false.
func check(ok func(any) bool) validator.Predicate {
	return func(e *validator.Engine, data any, pattern, rule string, _ []string) {
		for path, val := range present(data, pattern) {
			if !ok(val) {
				e.AddError(path, rule)
			}
		}
	}
}
