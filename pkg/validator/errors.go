package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTemplate is returned by Engine.Report when a violation has neither an
	// attribute message nor a rule message.
	ErrMissingTemplate = errors.New("missing message template")

	// ErrLanguageNotFound is returned when the message catalog has no entry for the
	// requested language.
	ErrLanguageNotFound = errors.New("message catalog language not found")

	// ErrInvalidRuleSet is returned when a rule-set document cannot be parsed.
	ErrInvalidRuleSet = errors.New("invalid rule set")
)

// MissingTemplateError identifies the violation that could not be rendered.
type MissingTemplateError struct {
	Attribute string
	Rule      string
}

func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("%s: attribute %q, rule %q", ErrMissingTemplate, e.Attribute, e.Rule)
}

func (e *MissingTemplateError) Unwrap() error {
	return ErrMissingTemplate
}
