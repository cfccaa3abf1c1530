package svcadapters

// NoopLogger is a logger that does nothing.
type NoopLogger struct {
	name string
}

// NewNoopLogger creates a new NoopLogger with the given name.
func NewNoopLogger(name string) Logger {
	return &NoopLogger{name: name}
}

// Ensure NoopLogger implements Logger interface.
var _ Logger = (*NoopLogger)(nil)

// Name returns the logger name.
func (l *NoopLogger) Name() string { return l.name }

// Level checks: nothing is enabled.

// IsTraceEnabled always returns false.
func (*NoopLogger) IsTraceEnabled() bool { return false }

// IsDebugEnabled always returns false.
func (*NoopLogger) IsDebugEnabled() bool { return false }

// IsInfoEnabled always returns false.
func (*NoopLogger) IsInfoEnabled() bool { return false }

// IsWarnEnabled always returns false.
func (*NoopLogger) IsWarnEnabled() bool { return false }

// IsErrorEnabled always returns false.
func (*NoopLogger) IsErrorEnabled() bool { return false }

// Basic logging methods.

// Trace discards the message.
func (*NoopLogger) Trace(_ string) {}

// Debug discards the message.
func (*NoopLogger) Debug(_ string) {}

// Info discards the message.
func (*NoopLogger) Info(_ string) {}

// Warn discards the message.
func (*NoopLogger) Warn(_ string) {}

// Error discards the message.
func (*NoopLogger) Error(_ string) {}

// Audit discards the message.
func (*NoopLogger) Audit(_ string) {}

// Formatted logging methods.

// Tracef discards the message.
func (*NoopLogger) Tracef(_ string, _ ...any) {}

// Debugf discards the message.
func (*NoopLogger) Debugf(_ string, _ ...any) {}

// Infof discards the message.
func (*NoopLogger) Infof(_ string, _ ...any) {}

// Warnf discards the message.
func (*NoopLogger) Warnf(_ string, _ ...any) {}

// Errorf discards the message.
func (*NoopLogger) Errorf(_ string, _ ...any) {}

// Auditf discards the message.
func (*NoopLogger) Auditf(_ string, _ ...any) {}

// Consumer methods never run the consumer.

// TraceFn does not call fn.
func (*NoopLogger) TraceFn(_ LoggerConsumer) error { return nil }

// DebugFn does not call fn.
func (*NoopLogger) DebugFn(_ LoggerConsumer) error { return nil }

// InfoFn does not call fn.
func (*NoopLogger) InfoFn(_ LoggerConsumer) error { return nil }

// WarnFn does not call fn.
func (*NoopLogger) WarnFn(_ LoggerConsumer) error { return nil }

// ErrorFn does not call fn.
func (*NoopLogger) ErrorFn(_ LoggerConsumer) error { return nil }

// NoopLogService discards every record and hands out no-op loggers.
type NoopLogService struct{}

// NewNoopLogService creates a new NoopLogService.
func NewNoopLogService() LoggerService {
	return NoopLogService{}
}

// Log discards the record.
func (NoopLogService) Log(_ Level, _ string) {}

// LogError discards the record.
func (NoopLogService) LogError(_ Level, _ string, _ error) {}

// LogRef discards the record.
func (NoopLogService) LogRef(_ ServiceReference, _ Level, _ string) {}

// LogRefError discards the record.
func (NoopLogService) LogRefError(_ ServiceReference, _ Level, _ string, _ error) {}

// Logger returns a NoopLogger with the given name.
func (NoopLogService) Logger(name string) Logger { return NewNoopLogger(name) }
