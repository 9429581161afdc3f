// Package logger provides a small factory around Go's slog package with functional
// options for output format, level, destination and static attributes, plus helper
// attribute constructors that keep key names consistent across the module.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithJSONFormatter(),
//	    logger.WithAttr(slog.String("component", "signup-form")),
//	)
//	log.Debug("skipping unknown rule", logger.Rule("uniq"), logger.Pattern("email"))
//
// Without options New writes text records at WARN level to stderr. Discard returns a
// logger that drops everything and is the default for every component in this module.
//
// # Error Handling
//
// Error produces an attribute only for a non-nil error, so callers can write
//
//	log.Warn("catalog reload failed", logger.Error(err))
//
// without a nil check.
package logger
