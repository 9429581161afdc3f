package rules

import (
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/rulebook/pkg/logger"
	"github.com/dmitrymomot/rulebook/pkg/pathresolve"
	"github.com/dmitrymomot/rulebook/pkg/validator"
)

// DateLayouts are tried in order by the date, after and before rules.
var DateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
}

// asTime parses strings with DateLayouts; time.Time values pass through.
func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range DateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

func isDate(v any) bool {
	_, ok := asTime(v)
	return ok
}

// dateFormat expects strings matching a Go time layout, e.g. "date_format:2006-01-02".
func dateFormat(e *validator.Engine, data any, pattern, rule string, params []string) {
	layout := joined(params)
	if layout == "" {
		return
	}

	for path, val := range present(data, pattern) {
		s, ok := val.(string)
		if !ok {
			e.AddError(path, rule, map[string]any{KeyFormat: layout})
			continue
		}
		if _, err := time.Parse(layout, s); err != nil {
			e.AddError(path, rule, map[string]any{KeyFormat: layout})
		}
	}
}

// dateOrder implements after (later true) and before. The parameter is either a date or
// a pattern whose first value is a date, so "after:starts_at" compares two fields.
func dateOrder(later bool) validator.Predicate {
	return func(e *validator.Engine, data any, pattern, rule string, params []string) {
		if len(params) == 0 {
			return
		}
		ref := joined(params)
		bound, ok := asTime(ref)
		if !ok {
			if other, found := pathresolve.ResolveFirst(data, ref); found {
				bound, ok = asTime(other)
			}
		}
		if !ok {
			e.Logger().Debug("no reference date",
				logger.Rule(rule),
				logger.Pattern(pattern),
				slog.String("param", ref),
			)
			return
		}

		for path, val := range present(data, pattern) {
			t, ok := asTime(val)
			if !ok || later && !t.After(bound) || !later && !t.Before(bound) {
				e.AddError(path, rule, map[string]any{KeyDate: ref})
			}
		}
	}
}
