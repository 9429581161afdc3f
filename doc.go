// Package rulebook validates loosely typed, nested data against declarative rule sets and
// renders human-readable messages for every violation.
//
// It wires the building blocks found under pkg/:
//
//   - pkg/pathresolve – wildcard path resolution ("users.*.email") over nested data
//   - pkg/validator   – the engine: rule dispatch, violation tracking, message rendering
//   - pkg/rules       – built-in predicates (required, email, between, ...)
//   - pkg/i18n        – message catalogs, with embedded English and Spanish messages
//   - pkg/sanitizer   – attribute prettification ("first_name" -> "First Name")
//   - binder          – HTTP request to data tree conversion
//
// # Usage
//
//	engine, err := rulebook.New(ctx, rulebook.WithLanguage("es"))
//	if err != nil {
//		return err
//	}
//
//	rs := validator.NewRuleSet(
//		validator.Field("email", "required|email"),
//		validator.Field("users.*.name", "required|between:2,64"),
//	)
//
//	data, err := binder.Request(r, binder.JSON)
//	if err != nil {
//		return err
//	}
//	if err := rulebook.Check(engine, data, rs); err != nil {
//		if ve, ok := rulebook.IsValidationError(err); ok {
//			// ve.Get("email") == "El campo Email debe ser una dirección de correo válida."
//		}
//		return err
//	}
//
// An engine is not safe for concurrent use; build one per goroutine or request. Catalog
// loading dominates construction cost, so long-lived workers should keep their engine and
// rely on Check clearing it between validations.
//
// # Configuration
//
// NewFromEnv reads RULEBOOK_LANGUAGE, RULEBOOK_CATALOG_DIR, RULEBOOK_LOG_LEVEL and
// RULEBOOK_LOG_FORMAT (optionally from a .env file).
package rulebook
