// Package sanitizer provides string transforms used to turn attribute names and paths into
// human-readable labels for validation messages.
//
// Transforms are plain func(string) string values and can be chained with Apply and Compose:
//
//	label := sanitizer.Compose(
//	    sanitizer.Humanize,
//	    sanitizer.TitleCaseFor(language.German),
//	)
//
//	label("shipping_address") // "Shipping Address"
//
// Prettify is the ready-made default (Humanize then English TitleCase) used by the
// validation engine for ":"-prefixed placeholders.
//
// The package is stateless and all helpers are safe for concurrent use.
package sanitizer
