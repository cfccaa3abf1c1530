package logrsink

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyp3rd/svcadapters"
)

type call struct {
	name          string
	verbosity     int
	isError       bool
	err           error
	msg           string
	keysAndValues []any
}

// recordingSink is a logr.LogSink that keeps every call.
type recordingSink struct {
	mu        *sync.Mutex
	calls     *[]call
	name      string
	verbosity int
}

func newRecordingSink(verbosity int) *recordingSink {
	return &recordingSink{mu: &sync.Mutex{}, calls: &[]call{}, verbosity: verbosity}
}

func (*recordingSink) Init(logr.RuntimeInfo) {}

func (s *recordingSink) Enabled(level int) bool { return level <= s.verbosity }

func (s *recordingSink) Info(level int, msg string, keysAndValues ...any) {
	s.record(call{name: s.name, verbosity: level, msg: msg, keysAndValues: keysAndValues})
}

func (s *recordingSink) Error(err error, msg string, keysAndValues ...any) {
	s.record(call{name: s.name, isError: true, err: err, msg: msg, keysAndValues: keysAndValues})
}

func (s *recordingSink) WithValues(...any) logr.LogSink { return s }

func (s *recordingSink) WithName(name string) logr.LogSink {
	clone := *s
	clone.name = strings.TrimPrefix(s.name+"/"+name, "/")

	return &clone
}

func (s *recordingSink) record(c call) {
	s.mu.Lock()
	defer s.mu.Unlock()

	*s.calls = append(*s.calls, c)
}

func (s *recordingSink) Calls() []call {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]call(nil), *s.calls...)
}

func TestService_LevelMapping(t *testing.T) {
	sink := newRecordingSink(TraceVerbosity)
	svc := New(logr.New(sink))

	svc.Log(svcadapters.TraceLevel, "trace")
	svc.Log(svcadapters.DebugLevel, "debug")
	svc.Log(svcadapters.InfoLevel, "info")
	svc.Log(svcadapters.WarningLevel, "warning")
	svc.Log(svcadapters.AuditLevel, "audit")
	svc.Log(svcadapters.ErrorLevel, "error")

	calls := sink.Calls()
	require.Len(t, calls, 6)

	assert.Equal(t, call{verbosity: 2, msg: "trace", keysAndValues: []any{SeverityKey, "TRACE"}}, calls[0])
	assert.Equal(t, call{verbosity: 1, msg: "debug", keysAndValues: []any{SeverityKey, "DEBUG"}}, calls[1])
	assert.Equal(t, call{verbosity: 0, msg: "info", keysAndValues: []any{SeverityKey, "INFO"}}, calls[2])
	assert.Equal(t, call{verbosity: 0, msg: "warning", keysAndValues: []any{SeverityKey, "WARNING"}}, calls[3])
	assert.Equal(t, call{verbosity: 0, msg: "audit", keysAndValues: []any{SeverityKey, "AUDIT"}}, calls[4])
	assert.Equal(t, call{isError: true, msg: "error", keysAndValues: []any{SeverityKey, "ERROR"}}, calls[5])
}

func TestService_ErrorsAndReferences(t *testing.T) {
	sink := newRecordingSink(0)
	svc := New(logr.New(sink))
	ref := svcadapters.NamedReference("db")
	boom := errors.New("boom")

	svc.LogError(svcadapters.ErrorLevel, "failed", boom)
	svc.LogRef(ref, svcadapters.InfoLevel, "bound")
	svc.LogRefError(ref, svcadapters.WarningLevel, "retrying", boom)
	svc.LogRefError(ref, svcadapters.ErrorLevel, "gave up", boom)

	calls := sink.Calls()
	require.Len(t, calls, 4)

	assert.Equal(t, call{isError: true, err: boom, msg: "failed", keysAndValues: []any{SeverityKey, "ERROR"}}, calls[0])
	assert.Equal(t, call{msg: "bound", keysAndValues: []any{SeverityKey, "INFO", ServiceKey, "db"}}, calls[1])
	assert.Equal(t, call{
		msg:           "retrying",
		keysAndValues: []any{SeverityKey, "WARNING", ServiceKey, "db", ErrorKey, "boom"},
	}, calls[2])
	assert.Equal(t, call{
		isError:       true,
		err:           boom,
		msg:           "gave up",
		keysAndValues: []any{SeverityKey, "ERROR", ServiceKey, "db"},
	}, calls[3])
}

func TestService_VerbosityFilters(t *testing.T) {
	sink := newRecordingSink(0)
	svc := New(logr.New(sink))

	svc.Log(svcadapters.DebugLevel, "hidden")
	svc.Log(svcadapters.TraceLevel, "hidden")
	svc.Log(svcadapters.InfoLevel, "shown")

	calls := sink.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "shown", calls[0].msg)
}

func TestLogger_Named(t *testing.T) {
	sink := newRecordingSink(DebugVerbosity)
	logger := New(logr.New(sink)).Logger("orders")

	assert.Equal(t, "orders", logger.Name())
	assert.False(t, logger.IsTraceEnabled())
	assert.True(t, logger.IsDebugEnabled())
	assert.True(t, logger.IsInfoEnabled())
	assert.True(t, logger.IsWarnEnabled())
	assert.True(t, logger.IsErrorEnabled())

	logger.Tracef("hidden %d", 1)
	logger.Debugf("order %d", 7)
	logger.Warn("stock low")
	logger.Errorf("payment %s", "declined")
	logger.Auditf("refund %d", 3)

	calls := sink.Calls()
	require.Len(t, calls, 4)

	for _, c := range calls {
		assert.Equal(t, "orders", c.name)
	}

	assert.Equal(t, "order 7", calls[0].msg)
	assert.Equal(t, 1, calls[0].verbosity)
	assert.Equal(t, []any{SeverityKey, "WARNING"}, calls[1].keysAndValues)
	assert.True(t, calls[2].isError)
	assert.Equal(t, "payment declined", calls[2].msg)
	assert.Equal(t, []any{SeverityKey, "AUDIT"}, calls[3].keysAndValues)
}

func TestLogger_Consumers(t *testing.T) {
	logger := New(logr.New(newRecordingSink(0))).Logger("consumer")

	boom := errors.New("boom")
	called := 0
	consumer := func(svcadapters.Logger) error {
		called++

		return boom
	}

	require.NoError(t, logger.TraceFn(consumer))
	require.NoError(t, logger.DebugFn(consumer))
	require.ErrorIs(t, logger.InfoFn(consumer), boom)
	require.ErrorIs(t, logger.WarnFn(consumer), boom)
	require.ErrorIs(t, logger.ErrorFn(consumer), boom)

	assert.Equal(t, 3, called)
}

func TestLogger_Discard(t *testing.T) {
	logger := New(logr.Discard()).Logger("quiet")

	assert.False(t, logger.IsInfoEnabled())
	assert.False(t, logger.IsErrorEnabled())

	logger.Error("dropped")
	require.NoError(t, logger.ErrorFn(func(svcadapters.Logger) error { return errors.New("not called") }))
}
