package tcss

import "go.uber.org/zap"

// logger is a nop until the host application installs one. The engine
// only logs at debug level: skipped declarations, unknown properties,
// dirty-resolution tracing.
var logger = zap.NewNop()

// SetLogger installs a logger for engine diagnostics. Pass nil to
// silence it again.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
