// Package i18n loads validation message catalogs.
//
// A catalog file maps a language identifier to two sections: "rules", holding one template
// per rule name, and "custom", holding templates for concrete attribute paths or wildcard
// patterns. Nested "custom" keys are joined with dots.
//
//	en:
//	  rules:
//	    required: "The :attribute field is|are required."
//	  custom:
//	    users:
//	      "*":
//	        email: "Each user needs a valid email."
//
// Sources are pluggable through the Adapter interface. MapAdapter, FileAdapter, FSAdapter
// (any fs.FS, including embed.FS) and NewDirectoryAdapter are included; ChainAdapter
// merges several sources, later ones winning.
//
// # Usage
//
//	catalog, err := i18n.Default(ctx)
//	if err != nil {
//		return err
//	}
//	rules, custom, err := catalog.Lookup("es")
//
// Catalog satisfies validator.MessageCatalog and is safe for concurrent use. A missing
// language is reported as *ErrLanguageNotSupported.
//
// Negotiate matches an Accept-Language header against the loaded languages using
// golang.org/x/text/language.
package i18n
