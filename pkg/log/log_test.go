package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyp3rd/svcadapters"
	"github.com/hyp3rd/svcadapters/internal/constants"
	"github.com/hyp3rd/svcadapters/pkg/mocks"
)

func TestNewWithDefaults(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		service     string
		wantLevel   svcadapters.Level
		wantJSON    bool
	}{
		{
			name:        "non-production environment",
			environment: constants.NonProductionEnvironment,
			service:     "test-service",
			wantLevel:   svcadapters.DebugLevel,
			wantJSON:    false,
		},
		{
			name:        "production environment",
			environment: "production",
			service:     "test-service",
			wantLevel:   svcadapters.InfoLevel,
			wantJSON:    true,
		},
		{
			name:        "empty environment",
			environment: "",
			service:     "test-service",
			wantLevel:   svcadapters.InfoLevel,
			wantJSON:    true,
		},
		{
			name:        "empty service name",
			environment: constants.NonProductionEnvironment,
			service:     "",
			wantLevel:   svcadapters.DebugLevel,
			wantJSON:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewWithDefaults(tt.environment, tt.service)
			require.NoError(t, err)
			require.NotNil(t, svc)

			cfg := svc.Config()
			assert.Equal(t, tt.wantLevel, cfg.Level)
			assert.Equal(t, tt.wantJSON, cfg.EnableJSON)
			assert.Equal(t, []svcadapters.Field{
				svcadapters.Str("service", tt.service),
				svcadapters.Str("environment", tt.environment),
			}, cfg.AdditionalFields)
		})
	}
}

func TestGlobalAdapters(t *testing.T) {
	t.Cleanup(func() { Attach(nil) })

	early := Logger("early")
	assert.Same(t, early, Logger("early"))

	Service().Log(svcadapters.InfoLevel, "before attach")
	early.Info("dropped by the no-op logger")

	logs := mocks.NewMockLogService()
	logs.SetOutput(nil)

	Attach(logs)

	early.Info("from early")
	Logger("late").Warn("from late")
	Service().Log(svcadapters.ErrorLevel, "after attach")

	assert.Equal(t, []string{
		"[INFO] before attach",
		"[INFO] from early",
		"[WARNING] from late",
		"[ERROR] after attach",
	}, logs.Messages())

	Attach(nil)

	early.Info("dropped again")
	Service().Log(svcadapters.InfoLevel, "buffered again")

	assert.Len(t, logs.Messages(), 4)
	assert.Equal(t, 1, Service().Stats().Pending)
}
