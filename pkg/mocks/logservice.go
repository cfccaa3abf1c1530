// Package mocks provides LogService and Logger implementations intended for
// unit tests.
//
// A typical test creates a MockLogService, injects it where a real log
// service would go, and later inspects Messages to verify what was logged:
//
//	logs := mocks.NewMockLogService()
//	component.SetLogService(logs)
//	component.DoWork()
//	require.Contains(t, logs.Messages(), "[INFO] work done")
//
// Every message is also echoed to stderr, or to the writer set with SetOutput.
package mocks

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/hyp3rd/svcadapters"
)

// MockLogService records formatted log messages in memory.
type MockLogService struct {
	mu       sync.Mutex
	messages []string
	out      io.Writer
	enabled  map[svcadapters.Level]bool
}

// Ensure MockLogService implements the LoggerService interface.
var _ svcadapters.LoggerService = (*MockLogService)(nil)

// NewMockLogService creates a mock with every level enabled, echoing to stderr.
func NewMockLogService() *MockLogService {
	return &MockLogService{
		out: os.Stderr,
		enabled: map[svcadapters.Level]bool{
			svcadapters.TraceLevel:   true,
			svcadapters.DebugLevel:   true,
			svcadapters.InfoLevel:    true,
			svcadapters.WarningLevel: true,
			svcadapters.ErrorLevel:   true,
		},
	}
}

// SetOutput sets where messages are echoed. A nil writer disables echoing.
func (m *MockLogService) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		w = io.Discard
	}

	m.out = w
}

// Messages returns the formatted messages received so far, oldest first.
func (m *MockLogService) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.messages)
}

// Reset forgets all received messages.
func (m *MockLogService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = nil
}

// Log stores "[LEVEL] msg".
func (m *MockLogService) Log(level svcadapters.Level, msg string) {
	m.store(prefix(level) + msg)
}

// LogError stores "[LEVEL] msg err".
func (m *MockLogService) LogError(level svcadapters.Level, msg string, err error) {
	m.store(fmt.Sprintf("%s%s %v", prefix(level), msg, err))
}

// LogRef stores "[LEVEL] ref msg".
func (m *MockLogService) LogRef(ref svcadapters.ServiceReference, level svcadapters.Level, msg string) {
	m.store(fmt.Sprintf("%s%v %s", prefix(level), ref, msg))
}

// LogRefError stores "[LEVEL] ref msg err".
func (m *MockLogService) LogRefError(ref svcadapters.ServiceReference, level svcadapters.Level, msg string, err error) {
	m.store(fmt.Sprintf("%s%v %s %v", prefix(level), ref, msg, err))
}

// Logger returns a MockLogger bound to this service.
func (m *MockLogService) Logger(name string) svcadapters.Logger {
	return &MockLogger{name: name, service: m}
}

// IsTraceEnabled reports whether trace messages are recorded.
func (m *MockLogService) IsTraceEnabled() bool { return m.isEnabled(svcadapters.TraceLevel) }

// IsDebugEnabled reports whether debug messages are recorded.
func (m *MockLogService) IsDebugEnabled() bool { return m.isEnabled(svcadapters.DebugLevel) }

// IsInfoEnabled reports whether info messages are recorded.
func (m *MockLogService) IsInfoEnabled() bool { return m.isEnabled(svcadapters.InfoLevel) }

// IsWarnEnabled reports whether warning messages are recorded.
func (m *MockLogService) IsWarnEnabled() bool { return m.isEnabled(svcadapters.WarningLevel) }

// IsErrorEnabled reports whether error messages are recorded.
func (m *MockLogService) IsErrorEnabled() bool { return m.isEnabled(svcadapters.ErrorLevel) }

// SetTraceEnabled toggles trace messages from loggers.
func (m *MockLogService) SetTraceEnabled(enabled bool) { m.setEnabled(svcadapters.TraceLevel, enabled) }

// SetDebugEnabled toggles debug messages from loggers.
func (m *MockLogService) SetDebugEnabled(enabled bool) { m.setEnabled(svcadapters.DebugLevel, enabled) }

// SetInfoEnabled toggles info messages from loggers.
func (m *MockLogService) SetInfoEnabled(enabled bool) { m.setEnabled(svcadapters.InfoLevel, enabled) }

// SetWarnEnabled toggles warning messages from loggers.
func (m *MockLogService) SetWarnEnabled(enabled bool) {
	m.setEnabled(svcadapters.WarningLevel, enabled)
}

// SetErrorEnabled toggles error messages from loggers.
func (m *MockLogService) SetErrorEnabled(enabled bool) { m.setEnabled(svcadapters.ErrorLevel, enabled) }

func (m *MockLogService) isEnabled(level svcadapters.Level) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.enabled[level]
}

func (m *MockLogService) setEnabled(level svcadapters.Level, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled[level] = enabled
}

func (m *MockLogService) store(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = append(m.messages, message)
	fmt.Fprintln(m.out, message)
}

func prefix(level svcadapters.Level) string {
	return "[" + level.String() + "] "
}
