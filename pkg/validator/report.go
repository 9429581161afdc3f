package validator

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/rulebook/pkg/pathresolve"
)

var pluralityRegex = regexp.MustCompile(PluralityMarker)

// Report is the rendered form of the recorded violations.
type Report struct {
	// Errors maps attribute to rule to rendered message.
	Errors map[string]map[string]string `json:"errors"`
}

// Has reports whether attribute has at least one message.
func (r Report) Has(attribute string) bool {
	return len(r.Errors[attribute]) > 0
}

// Get returns the message rendered for attribute and rule.
func (r Report) Get(attribute, rule string) (string, bool) {
	msg, ok := r.Errors[attribute][rule]
	return msg, ok
}

// Messages returns the messages of attribute ordered by rule name.
func (r Report) Messages(attribute string) []string {
	rules := r.Errors[attribute]
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]string, len(names))
	for i, name := range names {
		out[i] = rules[name]
	}
	return out
}

// First returns the first message of attribute in rule name order.
func (r Report) First(attribute string) (string, bool) {
	msgs := r.Messages(attribute)
	if len(msgs) == 0 {
		return "", false
	}
	return msgs[0], true
}

// Fields returns the attributes with messages, sorted.
func (r Report) Fields() []string {
	fields := make([]string, 0, len(r.Errors))
	for f := range r.Errors {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// IsEmpty reports whether the report holds no messages.
func (r Report) IsEmpty() bool {
	return len(r.Errors) == 0
}

// Report renders every violation, in recording order, into attribute -> rule -> message.
// A later violation of the same attribute and rule overwrites an earlier one.
//
// The template is the attribute message for the concrete path, then the most specific
// wildcard attribute message matching it, then the rule message. A violation with none
// of these fails the whole report with a *MissingTemplateError.
func (e *Engine) Report() (Report, error) {
	report := Report{Errors: make(map[string]map[string]string)}

	for _, v := range e.violations {
		tmpl, ok := e.template(v.Attribute, v.Rule)
		if !ok {
			return Report{}, &MissingTemplateError{Attribute: v.Attribute, Rule: v.Rule}
		}

		if report.Errors[v.Attribute] == nil {
			report.Errors[v.Attribute] = make(map[string]string)
		}
		report.Errors[v.Attribute][v.Rule] = e.render(tmpl, v.Replacements)
	}
	return report, nil
}

func (e *Engine) template(attribute, rule string) (string, bool) {
	if tmpl, ok := e.attributeMessages[attribute]; ok {
		return tmpl, true
	}

	var (
		best      string
		bestCount = -1
	)
	for pattern := range e.attributeMessages {
		if !matchPattern(pattern, attribute) {
			continue
		}
		n := strings.Count(pattern, pathresolve.Wildcard)
		if bestCount < 0 || n < bestCount || (n == bestCount && pattern < best) {
			best, bestCount = pattern, n
		}
	}
	if bestCount >= 0 {
		return e.attributeMessages[best], true
	}

	tmpl, ok := e.ruleMessages[rule]
	return tmpl, ok
}

// render substitutes replacements into tmpl. The plurality marker is applied first so that
// substituted values are never mistaken for "word|word" constructs; the remaining keys
// are applied longest first, ":"-prefixed values going through the prettifier.
func (e *Engine) render(tmpl string, replacements map[string]any) string {
	if singular, ok := replacements[PluralityMarker]; ok && truthy(singular) {
		tmpl = pluralityRegex.ReplaceAllString(tmpl, "${1}")
	}

	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		if k != "" && k != PluralityMarker {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	for _, k := range keys {
		val := stringify(replacements[k])
		if strings.HasPrefix(k, ":") {
			val = e.prettify(val)
		}
		tmpl = strings.ReplaceAll(tmpl, k, val)
	}
	return tmpl
}

func matchPattern(pattern, attribute string) bool {
	if !pathresolve.HasWildcard(pattern) {
		return false
	}
	ps, as := pathresolve.Split(pattern), pathresolve.Split(attribute)
	if len(ps) != len(as) {
		return false
	}
	for i := range ps {
		if ps[i] != pathresolve.Wildcard && ps[i] != as[i] {
			return false
		}
	}
	return true
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []string:
		return strings.Join(t, ", ")
	case []any:
		parts := make([]string, len(t))
		for i, p := range t {
			parts[i] = stringify(p)
		}
		return strings.Join(parts, ", ")
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
