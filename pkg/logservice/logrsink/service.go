// Package logrsink provides a LogService that writes through a logr.Logger.
//
// Levels map onto logr as follows: error records go to Logger.Error, audit,
// warning and info records to V(0), debug to V(1) and trace to V(2). Every
// record carries a "severity" key so that warnings stay distinguishable.
package logrsink

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/hyp3rd/svcadapters"
)

// Verbosity used for each level below info.
const (
	DebugVerbosity = 1
	TraceVerbosity = 2
)

// Keys added to every record.
const (
	SeverityKey = "severity"
	ServiceKey  = "service"
	ErrorKey    = "error"
)

// Service forwards records to a logr.Logger.
type Service struct {
	logger logr.Logger
}

// Ensure Service implements the LoggerService interface.
var _ svcadapters.LoggerService = (*Service)(nil)

// New creates a service writing to logger.
func New(logger logr.Logger) *Service {
	return &Service{logger: logger}
}

// Log writes msg at level.
func (s *Service) Log(level svcadapters.Level, msg string) {
	write(s.logger, level, msg, nil, nil)
}

// LogError writes msg at level with err attached.
func (s *Service) LogError(level svcadapters.Level, msg string, err error) {
	write(s.logger, level, msg, err, nil)
}

// LogRef writes msg at level about ref.
func (s *Service) LogRef(ref svcadapters.ServiceReference, level svcadapters.Level, msg string) {
	write(s.logger, level, msg, nil, ref)
}

// LogRefError writes msg at level about ref with err attached.
func (s *Service) LogRefError(ref svcadapters.ServiceReference, level svcadapters.Level, msg string, err error) {
	write(s.logger, level, msg, err, ref)
}

// Logger returns a logger named through logr.Logger.WithName.
func (s *Service) Logger(name string) svcadapters.Logger {
	return &Logger{name: name, logger: s.logger.WithName(name)}
}

func write(logger logr.Logger, level svcadapters.Level, msg string, err error, ref svcadapters.ServiceReference) {
	keysAndValues := []any{SeverityKey, level.String()}
	if ref != nil {
		keysAndValues = append(keysAndValues, ServiceKey, ref.String())
	}

	if level == svcadapters.ErrorLevel {
		logger.Error(err, msg, keysAndValues...)

		return
	}

	if err != nil {
		keysAndValues = append(keysAndValues, ErrorKey, err.Error())
	}

	logger.V(verbosity(level)).Info(msg, keysAndValues...)
}

func verbosity(level svcadapters.Level) int {
	switch level {
	case svcadapters.TraceLevel:
		return TraceVerbosity
	case svcadapters.DebugLevel:
		return DebugVerbosity
	default:
		return 0
	}
}

// Logger is a named logger writing through logr.
type Logger struct {
	name   string
	logger logr.Logger
}

// Ensure Logger implements the Logger interface.
var _ svcadapters.Logger = (*Logger)(nil)

// Name returns the logger name.
func (l *Logger) Name() string { return l.name }

// IsTraceEnabled reports whether V(2) is enabled.
func (l *Logger) IsTraceEnabled() bool { return l.logger.V(TraceVerbosity).Enabled() }

// IsDebugEnabled reports whether V(1) is enabled.
func (l *Logger) IsDebugEnabled() bool { return l.logger.V(DebugVerbosity).Enabled() }

// IsInfoEnabled reports whether V(0) is enabled.
func (l *Logger) IsInfoEnabled() bool { return l.logger.Enabled() }

// IsWarnEnabled reports whether V(0) is enabled.
func (l *Logger) IsWarnEnabled() bool { return l.logger.Enabled() }

// IsErrorEnabled reports whether the logger has a sink. logr never filters errors by verbosity.
func (l *Logger) IsErrorEnabled() bool { return l.logger.GetSink() != nil }

// Trace logs msg at V(2).
func (l *Logger) Trace(msg string) { write(l.logger, svcadapters.TraceLevel, msg, nil, nil) }

// Debug logs msg at V(1).
func (l *Logger) Debug(msg string) { write(l.logger, svcadapters.DebugLevel, msg, nil, nil) }

// Info logs msg at V(0).
func (l *Logger) Info(msg string) { write(l.logger, svcadapters.InfoLevel, msg, nil, nil) }

// Warn logs msg at V(0) with a WARNING severity.
func (l *Logger) Warn(msg string) { write(l.logger, svcadapters.WarningLevel, msg, nil, nil) }

// Error logs msg through logr.Logger.Error with a nil error.
func (l *Logger) Error(msg string) { write(l.logger, svcadapters.ErrorLevel, msg, nil, nil) }

// Audit logs msg at V(0) with an AUDIT severity.
func (l *Logger) Audit(msg string) { write(l.logger, svcadapters.AuditLevel, msg, nil, nil) }

// Tracef logs a formatted message at V(2).
func (l *Logger) Tracef(format string, args ...any) {
	if l.IsTraceEnabled() {
		l.Trace(fmt.Sprintf(format, args...))
	}
}

// Debugf logs a formatted message at V(1).
func (l *Logger) Debugf(format string, args ...any) {
	if l.IsDebugEnabled() {
		l.Debug(fmt.Sprintf(format, args...))
	}
}

// Infof logs a formatted message at V(0).
func (l *Logger) Infof(format string, args ...any) {
	if l.IsInfoEnabled() {
		l.Info(fmt.Sprintf(format, args...))
	}
}

// Warnf logs a formatted message at V(0) with a WARNING severity.
func (l *Logger) Warnf(format string, args ...any) {
	if l.IsWarnEnabled() {
		l.Warn(fmt.Sprintf(format, args...))
	}
}

// Errorf logs a formatted message through logr.Logger.Error.
func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}

// Auditf logs a formatted message at V(0) with an AUDIT severity.
func (l *Logger) Auditf(format string, args ...any) {
	l.Audit(fmt.Sprintf(format, args...))
}

// TraceFn runs fn when trace is enabled.
func (l *Logger) TraceFn(fn svcadapters.LoggerConsumer) error {
	return l.consume(l.IsTraceEnabled(), fn)
}

// DebugFn runs fn when debug is enabled.
func (l *Logger) DebugFn(fn svcadapters.LoggerConsumer) error {
	return l.consume(l.IsDebugEnabled(), fn)
}

// InfoFn runs fn when info is enabled.
func (l *Logger) InfoFn(fn svcadapters.LoggerConsumer) error {
	return l.consume(l.IsInfoEnabled(), fn)
}

// WarnFn runs fn when warning is enabled.
func (l *Logger) WarnFn(fn svcadapters.LoggerConsumer) error {
	return l.consume(l.IsWarnEnabled(), fn)
}

// ErrorFn runs fn when error is enabled.
func (l *Logger) ErrorFn(fn svcadapters.LoggerConsumer) error {
	return l.consume(l.IsErrorEnabled(), fn)
}

func (l *Logger) consume(enabled bool, fn svcadapters.LoggerConsumer) error {
	if !enabled || fn == nil {
		return nil
	}

	return fn(l)
}
