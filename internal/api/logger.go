package api

// Logger is the interface used by [Client] for logging requests,
// retries, and errors. Implement it to integrate with your logging
// library; the default [NoopLogger] discards all output.
type Logger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [Logger] that silently discards all log messages.
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}
