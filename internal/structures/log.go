package structures

import (
	"sync/atomic"

	"github.com/go-kit/log"
)

type loggerRef struct {
	logger log.Logger
}

var currentLogger atomic.Pointer[loggerRef]

func init() {
	currentLogger.Store(&loggerRef{logger: log.NewNopLogger()})
}

// SetLogger installs the logger used for package diagnostics.
// A nil logger restores the default nop logger.
func SetLogger(logger log.Logger) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	currentLogger.Store(&loggerRef{logger: log.With(logger, "component", "structures")})
}

// Logger returns the logger used for package diagnostics.
func Logger() log.Logger {
	return currentLogger.Load().logger
}
