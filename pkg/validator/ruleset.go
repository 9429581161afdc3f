package validator

import "strings"

// RuleToken is a parsed rule declaration: a rule name plus its ordered parameters.
type RuleToken struct {
	Name   string
	Params []string
}

// ParseRuleToken splits a declaration such as "between:1, 10" on the first ":" into the
// rule name and a parameter blob, then splits the blob on "," trimming each parameter.
// A declaration without ":" has no parameters.
func ParseRuleToken(decl string) RuleToken {
	name, blob, found := strings.Cut(decl, ":")
	tok := RuleToken{Name: strings.TrimSpace(name)}
	if !found {
		return tok
	}

	parts := strings.Split(blob, ",")
	tok.Params = make([]string, len(parts))
	for i, p := range parts {
		tok.Params[i] = strings.TrimSpace(p)
	}
	return tok
}

// Declaration binds a pattern to its rule declarations.
type Declaration struct {
	Pattern string

	// Rules holds either a single pipe-delimited string (Piped is true)
	// or an explicit list of declarations.
	Rules []string
	Piped bool
}

// Field declares rules for pattern in pipe-delimited form, e.g. "required|min:3".
func Field(pattern, rules string) Declaration {
	return Declaration{Pattern: pattern, Rules: []string{rules}, Piped: true}
}

// FieldList declares rules for pattern as an explicit sequence. Declarations are not
// split on "|", so a regex parameter may contain it.
func FieldList(pattern string, rules ...string) Declaration {
	return Declaration{Pattern: pattern, Rules: rules}
}

// Tokens normalizes the declaration into rule tokens in declaration order.
func (d Declaration) Tokens() []RuleToken {
	var decls []string
	if d.Piped {
		for _, r := range d.Rules {
			decls = append(decls, strings.Split(r, "|")...)
		}
	} else {
		decls = d.Rules
	}

	tokens := make([]RuleToken, 0, len(decls))
	for _, decl := range decls {
		tokens = append(tokens, ParseRuleToken(decl))
	}
	return tokens
}

// RuleSet is an ordered list of declarations. Patterns are evaluated in order.
type RuleSet []Declaration

// NewRuleSet builds a rule set from declarations.
func NewRuleSet(decls ...Declaration) RuleSet {
	return RuleSet(decls)
}

// Add appends a pipe-delimited declaration for pattern.
func (rs RuleSet) Add(pattern, rules string) RuleSet {
	return append(rs, Field(pattern, rules))
}

// Patterns returns the patterns in evaluation order.
func (rs RuleSet) Patterns() []string {
	out := make([]string, len(rs))
	for i, d := range rs {
		out[i] = d.Pattern
	}
	return out
}
