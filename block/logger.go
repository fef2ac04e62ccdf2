package block

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nopLogger = zap.NewNop()
	logger    atomic.Pointer[zap.Logger]
)

// Logger returns the logger used for block write and verification events.
// It is a no-op logger until SetLogger installs one.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}

	return nopLogger
}

// SetLogger installs l as the package logger; nil restores the no-op logger.
// It may be called at any time, including while other goroutines are logging.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
