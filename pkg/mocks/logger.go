package mocks

import (
	"fmt"

	"github.com/hyp3rd/svcadapters"
)

// MockLogger is a named logger that records into a MockLogService.
//
// Trace messages are recorded with the DEBUG prefix and audit messages with
// the ERROR prefix. Audit messages are recorded regardless of the toggles.
type MockLogger struct {
	name    string
	service *MockLogService
}

// Ensure MockLogger implements Logger interface.
var _ svcadapters.Logger = (*MockLogger)(nil)

// Name returns the logger name.
func (l *MockLogger) Name() string { return l.name }

// IsTraceEnabled mirrors the service toggle.
func (l *MockLogger) IsTraceEnabled() bool { return l.service.IsTraceEnabled() }

// IsDebugEnabled mirrors the service toggle.
func (l *MockLogger) IsDebugEnabled() bool { return l.service.IsDebugEnabled() }

// IsInfoEnabled mirrors the service toggle.
func (l *MockLogger) IsInfoEnabled() bool { return l.service.IsInfoEnabled() }

// IsWarnEnabled mirrors the service toggle.
func (l *MockLogger) IsWarnEnabled() bool { return l.service.IsWarnEnabled() }

// IsErrorEnabled mirrors the service toggle.
func (l *MockLogger) IsErrorEnabled() bool { return l.service.IsErrorEnabled() }

// Trace records msg as DEBUG when trace is enabled.
func (l *MockLogger) Trace(msg string) {
	if l.IsTraceEnabled() {
		l.service.Log(svcadapters.DebugLevel, msg)
	}
}

// Debug records msg when debug is enabled.
func (l *MockLogger) Debug(msg string) {
	if l.IsDebugEnabled() {
		l.service.Log(svcadapters.DebugLevel, msg)
	}
}

// Info records msg when info is enabled.
func (l *MockLogger) Info(msg string) {
	if l.IsInfoEnabled() {
		l.service.Log(svcadapters.InfoLevel, msg)
	}
}

// Warn records msg when warnings are enabled.
func (l *MockLogger) Warn(msg string) {
	if l.IsWarnEnabled() {
		l.service.Log(svcadapters.WarningLevel, msg)
	}
}

// Error records msg when errors are enabled.
func (l *MockLogger) Error(msg string) {
	if l.IsErrorEnabled() {
		l.service.Log(svcadapters.ErrorLevel, msg)
	}
}

// Audit always records msg as ERROR.
func (l *MockLogger) Audit(msg string) {
	l.service.Log(svcadapters.ErrorLevel, msg)
}

// Tracef formats and records as Trace does.
func (l *MockLogger) Tracef(format string, args ...any) {
	if l.IsTraceEnabled() {
		l.service.Log(svcadapters.DebugLevel, fmt.Sprintf(format, args...))
	}
}

// Debugf formats and records as Debug does.
func (l *MockLogger) Debugf(format string, args ...any) {
	if l.IsDebugEnabled() {
		l.service.Log(svcadapters.DebugLevel, fmt.Sprintf(format, args...))
	}
}

// Infof formats and records as Info does.
func (l *MockLogger) Infof(format string, args ...any) {
	if l.IsInfoEnabled() {
		l.service.Log(svcadapters.InfoLevel, fmt.Sprintf(format, args...))
	}
}

// Warnf formats and records as Warn does.
func (l *MockLogger) Warnf(format string, args ...any) {
	if l.IsWarnEnabled() {
		l.service.Log(svcadapters.WarningLevel, fmt.Sprintf(format, args...))
	}
}

// Errorf formats and records as Error does.
func (l *MockLogger) Errorf(format string, args ...any) {
	if l.IsErrorEnabled() {
		l.service.Log(svcadapters.ErrorLevel, fmt.Sprintf(format, args...))
	}
}

// Auditf formats and records as Audit does.
func (l *MockLogger) Auditf(format string, args ...any) {
	l.service.Log(svcadapters.ErrorLevel, fmt.Sprintf(format, args...))
}

// Consumer variants are not recorded.

// TraceFn does not call fn.
func (*MockLogger) TraceFn(_ svcadapters.LoggerConsumer) error { return nil }

// DebugFn does not call fn.
func (*MockLogger) DebugFn(_ svcadapters.LoggerConsumer) error { return nil }

// InfoFn does not call fn.
func (*MockLogger) InfoFn(_ svcadapters.LoggerConsumer) error { return nil }

// WarnFn does not call fn.
func (*MockLogger) WarnFn(_ svcadapters.LoggerConsumer) error { return nil }

// ErrorFn does not call fn.
func (*MockLogger) ErrorFn(_ svcadapters.LoggerConsumer) error { return nil }
