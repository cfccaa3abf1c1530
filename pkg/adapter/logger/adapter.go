// Package logger provides a named Logger adapter that resolves its real
// logger from a LoggerFactory once one is injected.
//
// Until SetLogService is called the adapter forwards to a no-op logger, so
// components can log unconditionally from construction onwards.
package logger

import (
	"reflect"
	"sync"

	"github.com/hyp3rd/svcadapters"
	"github.com/hyp3rd/svcadapters/internal/utils"
)

// Adapter implements svcadapters.Logger by forwarding to the current logger.
type Adapter struct {
	mu     sync.RWMutex
	name   string
	logger svcadapters.Logger
}

// Ensure Adapter implements Logger interface.
var _ svcadapters.Logger = (*Adapter)(nil)

// New creates an adapter for the logger called name.
func New(name string) *Adapter {
	return &Adapter{
		name:   name,
		logger: svcadapters.NewNoopLogger(name),
	}
}

// For creates an adapter named after T's package path and type name,
// e.g. "github.com/acme/app/store.Repository".
func For[T any]() *Adapter {
	return New(TypeName(reflect.TypeFor[T]()))
}

// TypeName returns the name used by For for the given type.
func TypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}

// SetLogService resolves the adapter's logger from factory. A nil factory
// resets the adapter to a no-op logger.
func (a *Adapter) SetLogService(factory svcadapters.LoggerFactory) {
	var resolved svcadapters.Logger
	if !utils.IsNil(factory) {
		resolved = factory.Logger(a.name)
	}

	if utils.IsNil(resolved) {
		resolved = svcadapters.NewNoopLogger(a.name)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.logger = resolved
}

func (a *Adapter) current() svcadapters.Logger {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.logger
}

// Name returns the current logger's name.
func (a *Adapter) Name() string { return a.current().Name() }

// IsTraceEnabled forwards to the current logger.
func (a *Adapter) IsTraceEnabled() bool { return a.current().IsTraceEnabled() }

// IsDebugEnabled forwards to the current logger.
func (a *Adapter) IsDebugEnabled() bool { return a.current().IsDebugEnabled() }

// IsInfoEnabled forwards to the current logger.
func (a *Adapter) IsInfoEnabled() bool { return a.current().IsInfoEnabled() }

// IsWarnEnabled forwards to the current logger.
func (a *Adapter) IsWarnEnabled() bool { return a.current().IsWarnEnabled() }

// IsErrorEnabled forwards to the current logger.
func (a *Adapter) IsErrorEnabled() bool { return a.current().IsErrorEnabled() }

// Trace forwards to the current logger.
func (a *Adapter) Trace(msg string) { a.current().Trace(msg) }

// Debug forwards to the current logger.
func (a *Adapter) Debug(msg string) { a.current().Debug(msg) }

// Info forwards to the current logger.
func (a *Adapter) Info(msg string) { a.current().Info(msg) }

// Warn forwards to the current logger.
func (a *Adapter) Warn(msg string) { a.current().Warn(msg) }

// Error forwards to the current logger.
func (a *Adapter) Error(msg string) { a.current().Error(msg) }

// Audit forwards to the current logger.
func (a *Adapter) Audit(msg string) { a.current().Audit(msg) }

// Tracef forwards to the current logger.
func (a *Adapter) Tracef(format string, args ...any) { a.current().Tracef(format, args...) }

// Debugf forwards to the current logger.
func (a *Adapter) Debugf(format string, args ...any) { a.current().Debugf(format, args...) }

// Infof forwards to the current logger.
func (a *Adapter) Infof(format string, args ...any) { a.current().Infof(format, args...) }

// Warnf forwards to the current logger.
func (a *Adapter) Warnf(format string, args ...any) { a.current().Warnf(format, args...) }

// Errorf forwards to the current logger.
func (a *Adapter) Errorf(format string, args ...any) { a.current().Errorf(format, args...) }

// Auditf forwards to the current logger.
func (a *Adapter) Auditf(format string, args ...any) { a.current().Auditf(format, args...) }

// TraceFn forwards to the current logger.
func (a *Adapter) TraceFn(fn svcadapters.LoggerConsumer) error { return a.current().TraceFn(fn) }

// DebugFn forwards to the current logger.
func (a *Adapter) DebugFn(fn svcadapters.LoggerConsumer) error { return a.current().DebugFn(fn) }

// InfoFn forwards to the current logger.
func (a *Adapter) InfoFn(fn svcadapters.LoggerConsumer) error { return a.current().InfoFn(fn) }

// WarnFn forwards to the current logger.
func (a *Adapter) WarnFn(fn svcadapters.LoggerConsumer) error { return a.current().WarnFn(fn) }

// ErrorFn forwards to the current logger.
func (a *Adapter) ErrorFn(fn svcadapters.LoggerConsumer) error { return a.current().ErrorFn(fn) }
