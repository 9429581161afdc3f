package i18n

import (
	"errors"
	"fmt"
)

var (
	// Parsing
	ErrParsingCancelled  = errors.New("catalog parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidCatalog    = errors.New("invalid message catalog")

	// Loading
	ErrLoadingCancelled  = errors.New("loading catalog cancelled")
	ErrFailedToReadFile  = errors.New("failed to read catalog file")
	ErrFailedToParseFile = errors.New("failed to parse catalog file")
	ErrFailedToReadDir   = errors.New("failed to read catalog directory")
	ErrNoCatalogFiles    = errors.New("no catalog files found")
)

// ErrLanguageNotSupported indicates that the requested language is not in the catalog.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
