package core

import (
	"sync/atomic"

	"github.com/inoxlang/substrate/internal/core/slog"
	"github.com/rs/zerolog"
)

const (
	LOG_SRC = "core"
)

var (
	logger atomic.Pointer[zerolog.Logger]
)

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger sets the logger used by the package, the src field of the logger is set to LOG_SRC and
// its level is the level of LOG_SRC in slog.DEFAULT_LEVELS. The package does not log anything by default.
func SetLogger(l zerolog.Logger) {
	child := slog.ChildLoggerForSource(l, LOG_SRC, slog.DEFAULT_LEVELS)
	logger.Store(&child)
}

func getLogger() *zerolog.Logger {
	return logger.Load()
}
