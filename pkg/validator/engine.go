package validator

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/rulebook/pkg/logger"
	"github.com/dmitrymomot/rulebook/pkg/pathresolve"
	"github.com/dmitrymomot/rulebook/pkg/sanitizer"
)

const (
	// AttributeKey is the implicit replacement holding the violation's concrete path.
	AttributeKey = ":attribute"

	// PluralityMarker is the implicit replacement key controlling singular/plural phrasing.
	// It is also the expression matched against templates: a "word|word" or "word/word"
	// construct. When the value is true (the rule's pattern had no wildcard) every such
	// construct collapses to its first alternative; otherwise the template keeps both.
	PluralityMarker = `(\w+)[|/](\w+)`
)

// Predicate is a named rule. It resolves its own values from data (usually with
// pathresolve.ResolveAll or ResolveFirst) and calls e.AddError for every violation.
type Predicate func(e *Engine, data any, pattern, rule string, params []string)

// Violation is a recorded failure of one concrete attribute against one rule.
type Violation struct {
	Attribute    string
	Rule         string
	Replacements map[string]any
}

// Engine applies rule sets to data and accumulates violations.
//
// The rule registry, message registry and violation list are owned by the instance and
// are not guarded by locks: use one Engine per goroutine.
type Engine struct {
	rules             map[string]Predicate
	ruleMessages      map[string]string
	attributeMessages map[string]string
	violations        []Violation

	// messages set through the Set*Message methods; layered over every installed catalog
	ruleOverrides      map[string]string
	attributeOverrides map[string]string

	language  string
	catalog   MessageCatalog
	bootstrap []Bootstrap
	prettify  func(string) string
	logger    *slog.Logger

	// pattern being evaluated by Validate; drives the plurality default of AddError
	current string
}

// New creates an Engine, runs its bootstrap routines and installs the catalog messages for
// the selected language. A catalog without that language is a configuration error.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		language: DefaultLanguage,
		prettify: sanitizer.Prettify,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// AddRule registers fn under name, replacing any previous registration.
func (e *Engine) AddRule(name string, fn Predicate) {
	e.rules[name] = fn
}

// HasRule reports whether a predicate is registered under name.
func (e *Engine) HasRule(name string) bool {
	_, ok := e.rules[name]
	return ok
}

// SetRuleMessage sets the template used for violations of rule. It takes precedence over
// catalog messages and survives SetLanguage.
func (e *Engine) SetRuleMessage(rule, template string) {
	e.ruleOverrides[rule] = template
	e.ruleMessages[rule] = template
}

// SetAttributeMessage sets a template for an attribute. The key is a concrete path or a
// wildcard pattern; it takes precedence over the rule template.
func (e *Engine) SetAttributeMessage(pattern, template string) {
	e.attributeOverrides[pattern] = template
	e.attributeMessages[pattern] = template
}

// SetRuleMessages bulk-registers rule templates.
func (e *Engine) SetRuleMessages(messages map[string]string) {
	maps.Copy(e.ruleOverrides, messages)
	maps.Copy(e.ruleMessages, messages)
}

// SetAttributeMessages bulk-registers attribute templates.
func (e *Engine) SetAttributeMessages(messages map[string]string) {
	maps.Copy(e.attributeOverrides, messages)
	maps.Copy(e.attributeMessages, messages)
}

// Logger returns the engine logger, for predicates that need to report misconfiguration.
func (e *Engine) Logger() *slog.Logger {
	return e.logger
}

// Language returns the active catalog language.
func (e *Engine) Language() string {
	return e.language
}

// SetLanguage replaces the catalog messages with those of lang. Messages registered with
// the Set*Message methods are kept on top. On error the engine keeps its previous
// language and messages.
func (e *Engine) SetLanguage(lang string) error {
	if err := e.install(lang); err != nil {
		return err
	}
	e.language = lang
	return nil
}

// Clear empties the violation list. Rules and messages are kept.
func (e *Engine) Clear() {
	e.violations = nil
}

// Reset returns the engine to its freshly constructed state: rules, messages and
// violations are dropped, bootstrap routines re-run and the catalog is reinstalled.
func (e *Engine) Reset() error {
	e.rules = make(map[string]Predicate)
	e.ruleMessages = make(map[string]string)
	e.attributeMessages = make(map[string]string)
	e.ruleOverrides = make(map[string]string)
	e.attributeOverrides = make(map[string]string)
	e.violations = nil
	e.current = ""

	for _, fn := range e.bootstrap {
		fn(e)
	}
	return e.install(e.language)
}

func (e *Engine) install(lang string) error {
	if e.catalog == nil {
		return nil
	}

	rules, attributes, err := e.catalog.Lookup(lang)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrLanguageNotFound, lang, err)
	}
	e.ruleMessages = layer(rules, e.ruleOverrides)
	e.attributeMessages = layer(attributes, e.attributeOverrides)

	e.logger.Info("message catalog installed",
		logger.Language(lang),
		logger.Group("messages",
			slog.Int("rules", len(rules)),
			slog.Int("attributes", len(attributes)),
		),
	)
	return nil
}

func layer(base, top map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(top))
	maps.Copy(out, base)
	maps.Copy(out, top)
	return out
}

// Validate applies every declaration of rs to data, in rule-set order and then in
// declaration order. Rule names without a registered predicate are skipped.
//
// The result reports whether any violation is recorded after the call, including
// violations left over from earlier calls: violations accumulate until Clear is called.
func (e *Engine) Validate(data any, rs RuleSet) bool {
	prev := e.current
	defer func() { e.current = prev }()

	for _, decl := range rs {
		for _, tok := range decl.Tokens() {
			fn, ok := e.rules[tok.Name]
			if tok.Name == "" || !ok {
				e.logger.Debug("skipping unknown rule",
					logger.Rule(tok.Name),
					logger.Pattern(decl.Pattern),
				)
				continue
			}

			e.current = decl.Pattern
			fn(e, data, decl.Pattern, tok.Name, tok.Params)
		}
	}
	return e.HasErrors()
}

// AddError records a violation of rule by attribute. Every violation carries two implicit
// replacements: AttributeKey set to attribute and PluralityMarker set to whether the
// pattern being validated has no wildcard. Keys in replacements override them.
func (e *Engine) AddError(attribute, rule string, replacements ...map[string]any) {
	r := map[string]any{
		AttributeKey:    attribute,
		PluralityMarker: !pathresolve.HasWildcard(e.current),
	}
	for _, m := range replacements {
		maps.Copy(r, m)
	}

	e.logger.Debug("violation recorded", logger.Attribute(attribute), logger.Rule(rule))
	e.violations = append(e.violations, Violation{
		Attribute:    attribute,
		Rule:         rule,
		Replacements: r,
	})
}

// HasErrors reports whether any violation is recorded.
func (e *Engine) HasErrors() bool {
	return len(e.violations) > 0
}

// Violations returns a copy of the recorded violations in insertion order.
func (e *Engine) Violations() []Violation {
	out := make([]Violation, len(e.violations))
	copy(out, e.violations)
	return out
}
