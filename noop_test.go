package svcadapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger("orders")

	assert.Equal(t, "orders", logger.Name())
	assert.False(t, logger.IsTraceEnabled())
	assert.False(t, logger.IsDebugEnabled())
	assert.False(t, logger.IsInfoEnabled())
	assert.False(t, logger.IsWarnEnabled())
	assert.False(t, logger.IsErrorEnabled())

	called := false
	consumer := func(Logger) error {
		called = true

		return nil
	}

	require.NoError(t, logger.TraceFn(consumer))
	require.NoError(t, logger.DebugFn(consumer))
	require.NoError(t, logger.InfoFn(consumer))
	require.NoError(t, logger.WarnFn(consumer))
	require.NoError(t, logger.ErrorFn(consumer))
	assert.False(t, called)

	assert.NotPanics(t, func() {
		logger.Info("dropped")
		logger.Errorf("dropped %d", 1)
		logger.Audit("dropped")
	})
}

func TestNoopLogService(t *testing.T) {
	svc := NewNoopLogService()

	assert.NotPanics(t, func() {
		svc.Log(InfoLevel, "dropped")
		svc.LogError(ErrorLevel, "dropped", ErrNoDataSource)
		svc.LogRef(NamedReference("ref"), WarningLevel, "dropped")
		svc.LogRefError(NamedReference("ref"), ErrorLevel, "dropped", ErrNoFactory)
	})

	assert.Equal(t, "jobs", svc.Logger("jobs").Name())
}
