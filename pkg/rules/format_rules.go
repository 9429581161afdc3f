package rules

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dmitrymomot/rulebook/pkg/logger"
	"github.com/dmitrymomot/rulebook/pkg/validator"
)

var (
	alphaRegex     = regexp.MustCompile(`^[\pL\pM]+$`)
	alphaNumRegex  = regexp.MustCompile(`^[\pL\pM\pN]+$`)
	alphaDashRegex = regexp.MustCompile(`^[\pL\pM\pN_-]+$`)
	digitsRegex    = regexp.MustCompile(`^[0-9]+$`)

	// formats backs the email, url and ip rules; a playground.Validate is safe for
	// concurrent use and caches its parsed tags.
	formats = playground.New(playground.WithRequiredStructEnabled())
)

func matches(re *regexp.Regexp) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && re.MatchString(s)
	}
}

// format checks string values against a go-playground validation tag.
func format(tag string) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && formats.Var(s, tag) == nil
	}
}

func isUUID(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// regex fails values that do not match (or, with want false, that match) the expression.
// An invalid expression is logged and the rule is skipped.
func regex(want bool) validator.Predicate {
	return func(e *validator.Engine, data any, pattern, rule string, params []string) {
		expr := joined(params)
		re, err := regexp.Compile(expr)
		if err != nil {
			e.Logger().Warn("invalid rule parameter",
				logger.Rule(rule),
				logger.Pattern(pattern),
				logger.Error(err),
			)
			return
		}

		for path, val := range present(data, pattern) {
			s, ok := asString(val)
			if !ok || re.MatchString(s) != want {
				e.AddError(path, rule)
			}
		}
	}
}

// affix implements starts_with (prefix true) and ends_with.
func affix(prefix bool) validator.Predicate {
	return func(e *validator.Engine, data any, pattern, rule string, params []string) {
		for path, val := range present(data, pattern) {
			s, _ := asString(val)
			if !hasAffix(s, params, prefix) {
				e.AddError(path, rule, map[string]any{KeyValues: params})
			}
		}
	}
}

func hasAffix(s string, candidates []string, prefix bool) bool {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if prefix && strings.HasPrefix(s, c) || !prefix && strings.HasSuffix(s, c) {
			return true
		}
	}
	return false
}

// digits expects a numeric value of exactly N digits.
func digits(e *validator.Engine, data any, pattern, rule string, params []string) {
	if len(params) == 0 {
		return
	}
	n, err := strconv.Atoi(params[0])
	if err != nil || n < 1 {
		e.Logger().Warn("invalid rule parameter",
			logger.Rule(rule),
			logger.Pattern(pattern),
			slog.String("param", params[0]),
		)
		return
	}

	for path, val := range present(data, pattern) {
		s, ok := asString(val)
		if !ok || !digitsRegex.MatchString(s) || len(s) != n {
			e.AddError(path, rule, map[string]any{KeyDigits: n})
		}
	}
}
