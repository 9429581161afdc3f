// Package validator implements a declarative validation engine for loosely typed, nested
// data: form submissions, decoded API payloads, configuration trees.
//
// A rule set binds dotted patterns ("email", "users.*.email") to rule declarations
// ("required|email", "between:1,10"). The Engine resolves nothing itself: for each rule
// token it calls the Predicate registered under the rule name, and the predicate walks the
// data with package pathresolve and records violations through Engine.AddError.
// Engine.Report then renders the violations through message templates.
//
// # Architecture
//
// Core building blocks:
//   - Engine          – owns the rule registry, message registry and violation list
//   - Predicate       – func(e, data, pattern, rule, params), side effects only
//   - RuleSet         – ordered declarations built with Field, FieldList or parsed from
//     YAML/JSON with ParseRuleSetYAML/ParseRuleSetJSON
//   - MessageCatalog  – language-keyed source of rule and attribute templates
//   - Report          – attribute -> rule -> rendered message
//
// There is no global state: independent engines may use different languages and rule sets.
// An Engine is not safe for concurrent use.
//
// # Usage
//
//	e, err := validator.New(
//	    validator.WithCatalog(catalog),
//	    validator.WithBootstrap(rules.Register),
//	)
//	if err != nil {
//	    // catalog has no "en" messages
//	}
//
//	failed := e.Validate(data, validator.NewRuleSet(
//	    validator.Field("email", "required|email"),
//	    validator.Field("tags.*", "in:go,rust"),
//	))
//	if failed {
//	    report, err := e.Report()
//	    // report.Errors["email"]["email"] == "The Email must be a valid email address."
//	}
//
// # Accumulation
//
// Violations are never cleared implicitly. Validate returns whether any violation exists
// after the call, including those recorded by earlier calls; call Clear between unrelated
// validations.
//
// # Message templates
//
// Replacement keys starting with ":" are substituted with the prettified value (":attribute"
// becomes "Email"); other keys, conventionally "%"-prefixed, are substituted literally.
// The PluralityMarker replacement collapses "is|are" style constructs to their first
// alternative when the rule's pattern had no wildcard, and leaves them untouched otherwise.
//
// # Error Handling
//
// Unknown rule names are skipped silently. Missing templates surface from Report as a
// *MissingTemplateError (errors.Is ErrMissingTemplate). Missing catalog languages surface
// from New, Reset and SetLanguage as ErrLanguageNotFound.
package validator
