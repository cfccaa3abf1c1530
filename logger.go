// Package svcadapters defines late-binding service adapters for Go components.
//
// Components are frequently constructed before the services they depend on
// are available: the log sink is configured after the component graph is
// built, the database connector after configuration is loaded, and so on.
// This package defines the service contracts shared by the adapters:
//
// - LogService: a level-tagged log sink with error and service-reference variants
// - Logger and LoggerFactory: named loggers with per-level enablement
// - DataSource and DataSourceFactory: SQL connectors built from JDBC-style properties
//
// Concrete adapters live under pkg/adapter. They hand out a stable, non-nil
// reference immediately and switch to the real service once it is set:
//
//	logs := logservice.New()
//	logs.Log(svcadapters.InfoLevel, "component created") // buffered
//
//	svc, _ := console.New(svcadapters.DefaultConfig())
//	logs.SetLogService(svc) // buffered records are replayed, then passed through
//
// Mock implementations for unit tests are provided by pkg/mocks.
package svcadapters

import (
	"strings"

	"github.com/hyp3rd/ewrap"
)

// Level represents the severity of a log record.
//
// The numeric values of ErrorLevel through DebugLevel match the classic
// LogService constants (1 to 4), so lower values are more severe.
type Level uint8

const (
	// AuditLevel marks records that are always logged regardless of the threshold.
	AuditLevel Level = iota
	// ErrorLevel represents error messages.
	ErrorLevel
	// WarningLevel represents warning messages.
	WarningLevel
	// InfoLevel represents general operational information.
	InfoLevel
	// DebugLevel represents debugging information.
	DebugLevel
	// TraceLevel represents verbose debugging information.
	TraceLevel
)

// String returns the string representation of a log level.
func (l Level) String() string {
	switch l {
	case AuditLevel:
		return "AUDIT"
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the given Level is a valid log level, and false otherwise.
func (l Level) IsValid() bool {
	return l <= TraceLevel
}

// Enables reports whether a threshold set to l lets records at level through.
func (l Level) Enables(level Level) bool {
	return level <= l
}

// ParseLevel parses a level name. Matching is case-insensitive and "warn" is
// accepted as an alias of "warning".
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "audit":
		return AuditLevel, nil
	case "error":
		return ErrorLevel, nil
	case "warn", "warning":
		return WarningLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	default:
		return InfoLevel, ewrap.Wrap(ErrInvalidLevel, "cannot parse level").WithMetadata("level", level)
	}
}

// Field represents a key-value pair in structured logging.
type Field struct {
	Key   string
	Value any
}

// Logger defines a named logger with per-level enablement.
type Logger interface {
	// Name returns the logger name.
	Name() string

	IsTraceEnabled() bool
	IsDebugEnabled() bool
	IsInfoEnabled() bool
	IsWarnEnabled() bool
	IsErrorEnabled() bool

	Trace(msg string)
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	// Audit logs a message that is never filtered by level.
	Audit(msg string)

	// Formatted log methods
	FormattedLogger

	// Consumer log methods
	ConsumerLogger
}

// FormattedLogger defines the interface for logging formatted messages.
type FormattedLogger interface {
	// Tracef logs a message at the Trace level
	Tracef(format string, args ...any)
	// Debugf logs a message at the Debug level
	Debugf(format string, args ...any)
	// Infof logs a message at the Info level
	Infof(format string, args ...any)
	// Warnf logs a message at the Warning level
	Warnf(format string, args ...any)
	// Errorf logs a message at the Error level
	Errorf(format string, args ...any)
	// Auditf logs a message at the Audit level
	Auditf(format string, args ...any)
}

// LoggerConsumer receives a logger when its level is enabled.
type LoggerConsumer func(Logger) error

// ConsumerLogger runs a consumer only when the matching level is enabled.
// The consumer's error is returned to the caller unchanged.
type ConsumerLogger interface {
	TraceFn(fn LoggerConsumer) error
	DebugFn(fn LoggerConsumer) error
	InfoFn(fn LoggerConsumer) error
	WarnFn(fn LoggerConsumer) error
	ErrorFn(fn LoggerConsumer) error
}
