package console

import (
	"fmt"

	"github.com/hyp3rd/svcadapters"
)

// Logger is a named logger backed by a Service.
// Level checks follow the service threshold at call time.
type Logger struct {
	name string
	svc  *Service
}

// Ensure Logger implements the Logger interface.
var _ svcadapters.Logger = (*Logger)(nil)

// Name returns the logger name.
func (l *Logger) Name() string { return l.name }

// IsTraceEnabled reports whether trace records are written.
func (l *Logger) IsTraceEnabled() bool { return l.svc.Enabled(svcadapters.TraceLevel) }

// IsDebugEnabled reports whether debug records are written.
func (l *Logger) IsDebugEnabled() bool { return l.svc.Enabled(svcadapters.DebugLevel) }

// IsInfoEnabled reports whether info records are written.
func (l *Logger) IsInfoEnabled() bool { return l.svc.Enabled(svcadapters.InfoLevel) }

// IsWarnEnabled reports whether warning records are written.
func (l *Logger) IsWarnEnabled() bool { return l.svc.Enabled(svcadapters.WarningLevel) }

// IsErrorEnabled reports whether error records are written.
func (l *Logger) IsErrorEnabled() bool { return l.svc.Enabled(svcadapters.ErrorLevel) }

// Trace logs msg at TraceLevel.
func (l *Logger) Trace(msg string) { l.log(svcadapters.TraceLevel, msg) }

// Debug logs msg at DebugLevel.
func (l *Logger) Debug(msg string) { l.log(svcadapters.DebugLevel, msg) }

// Info logs msg at InfoLevel.
func (l *Logger) Info(msg string) { l.log(svcadapters.InfoLevel, msg) }

// Warn logs msg at WarningLevel.
func (l *Logger) Warn(msg string) { l.log(svcadapters.WarningLevel, msg) }

// Error logs msg at ErrorLevel.
func (l *Logger) Error(msg string) { l.log(svcadapters.ErrorLevel, msg) }

// Audit logs msg at AuditLevel.
func (l *Logger) Audit(msg string) { l.log(svcadapters.AuditLevel, msg) }

// Tracef logs a formatted message at TraceLevel.
func (l *Logger) Tracef(format string, args ...any) { l.logf(svcadapters.TraceLevel, format, args) }

// Debugf logs a formatted message at DebugLevel.
func (l *Logger) Debugf(format string, args ...any) { l.logf(svcadapters.DebugLevel, format, args) }

// Infof logs a formatted message at InfoLevel.
func (l *Logger) Infof(format string, args ...any) { l.logf(svcadapters.InfoLevel, format, args) }

// Warnf logs a formatted message at WarningLevel.
func (l *Logger) Warnf(format string, args ...any) { l.logf(svcadapters.WarningLevel, format, args) }

// Errorf logs a formatted message at ErrorLevel.
func (l *Logger) Errorf(format string, args ...any) { l.logf(svcadapters.ErrorLevel, format, args) }

// Auditf logs a formatted message at AuditLevel.
func (l *Logger) Auditf(format string, args ...any) { l.logf(svcadapters.AuditLevel, format, args) }

// TraceFn runs fn when trace is enabled.
func (l *Logger) TraceFn(fn svcadapters.LoggerConsumer) error {
	return l.consume(svcadapters.TraceLevel, fn)
}

// DebugFn runs fn when debug is enabled.
func (l *Logger) DebugFn(fn svcadapters.LoggerConsumer) error {
	return l.consume(svcadapters.DebugLevel, fn)
}

// InfoFn runs fn when info is enabled.
func (l *Logger) InfoFn(fn svcadapters.LoggerConsumer) error {
	return l.consume(svcadapters.InfoLevel, fn)
}

// WarnFn runs fn when warning is enabled.
func (l *Logger) WarnFn(fn svcadapters.LoggerConsumer) error {
	return l.consume(svcadapters.WarningLevel, fn)
}

// ErrorFn runs fn when error is enabled.
func (l *Logger) ErrorFn(fn svcadapters.LoggerConsumer) error {
	return l.consume(svcadapters.ErrorLevel, fn)
}

func (l *Logger) log(level svcadapters.Level, msg string) {
	l.svc.log(&svcadapters.Entry{Level: level, Logger: l.name, Message: msg})
}

func (l *Logger) logf(level svcadapters.Level, format string, args []any) {
	// Skip formatting for filtered levels.
	if !l.svc.Enabled(level) {
		return
	}

	l.log(level, fmt.Sprintf(format, args...))
}

func (l *Logger) consume(level svcadapters.Level, fn svcadapters.LoggerConsumer) error {
	if fn == nil || !l.svc.Enabled(level) {
		return nil
	}

	return fn(l)
}
