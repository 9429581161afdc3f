package rules

import (
	"log/slog"

	"github.com/dmitrymomot/rulebook/pkg/logger"
	"github.com/dmitrymomot/rulebook/pkg/validator"
)

// bounds parses the first n parameters as numbers. Invalid parameters are logged and
// disable the rule.
func bounds(e *validator.Engine, pattern, rule string, params []string, n int) ([]float64, bool) {
	if len(params) < n {
		e.Logger().Warn("missing rule parameter",
			logger.Rule(rule),
			logger.Pattern(pattern),
			slog.Int("want", n),
			slog.Int("got", len(params)),
		)
		return nil, false
	}

	out := make([]float64, n)
	for i := range n {
		f, ok := parseFloat(params[i])
		if !ok {
			e.Logger().Warn("invalid rule parameter",
				logger.Rule(rule),
				logger.Pattern(pattern),
				slog.String("param", params[i]),
			)
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// sized fails every present value whose measure is unknown or for which ok returns false.
func sized(e *validator.Engine, data any, pattern, rule string, ok func(float64) bool, replacements map[string]any) {
	for path, val := range present(data, pattern) {
		m, measurable := measure(val)
		if !measurable || !ok(m) {
			e.AddError(path, rule, replacements)
		}
	}
}

func minRule(e *validator.Engine, data any, pattern, rule string, params []string) {
	b, ok := bounds(e, pattern, rule, params, 1)
	if !ok {
		return
	}
	sized(e, data, pattern, rule,
		func(m float64) bool { return m >= b[0] },
		map[string]any{KeyMin: formatNumber(b[0])},
	)
}

func maxRule(e *validator.Engine, data any, pattern, rule string, params []string) {
	b, ok := bounds(e, pattern, rule, params, 1)
	if !ok {
		return
	}
	sized(e, data, pattern, rule,
		func(m float64) bool { return m <= b[0] },
		map[string]any{KeyMax: formatNumber(b[0])},
	)
}

func betweenRule(e *validator.Engine, data any, pattern, rule string, params []string) {
	b, ok := bounds(e, pattern, rule, params, 2)
	if !ok {
		return
	}
	sized(e, data, pattern, rule,
		func(m float64) bool { return m >= b[0] && m <= b[1] },
		map[string]any{KeyMin: formatNumber(b[0]), KeyMax: formatNumber(b[1])},
	)
}

func sizeRule(e *validator.Engine, data any, pattern, rule string, params []string) {
	b, ok := bounds(e, pattern, rule, params, 1)
	if !ok {
		return
	}
	sized(e, data, pattern, rule,
		func(m float64) bool { return m == b[0] },
		map[string]any{KeySize: formatNumber(b[0])},
	)
}
