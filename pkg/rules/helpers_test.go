package rules_test

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/rulebook/pkg/logger"
)

func newTestLogger(w io.Writer) *slog.Logger {
	return logger.New(logger.WithOutput(w), logger.WithLevel(slog.LevelDebug))
}
