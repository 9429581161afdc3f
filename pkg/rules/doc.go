// Package rules provides the built-in rule predicates for validator.Engine.
//
// Register installs every rule under its conventional name and is meant to be passed to
// validator.WithBootstrap so the rules survive Engine.Reset:
//
//	e, err := validator.New(validator.WithBootstrap(rules.Register))
//
// # Rules
//
//	presence:   required, filled, accepted
//	type:       string, numeric, integer, boolean, array
//	format:     alpha, alpha_num, alpha_dash, email, url, ip, ipv4, ipv6, uuid,
//	            regex, not_regex, starts_with, ends_with, digits
//	choice:     in, not_in
//	size:       min, max, between, size
//	comparison: confirmed, same, different
//	date:       date, date_format, after, before
//
// Only required, filled and accepted look at missing values; every other rule skips nil.
// For a pattern without wildcards whose path is absent, required reports the pattern
// itself as the attribute.
//
// Size rules measure strings by rune count, collections by length and numbers by value.
// Numeric strings are strings: form input such as "42" is two characters long.
//
// The regex, not_regex and date_format parameters are re-joined with "," so that
// expressions and layouts may contain commas.
package rules
