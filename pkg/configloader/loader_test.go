package configloader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hyp3rd/svcadapters"
)

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_LOG_ENABLE_JSON", "false")
	t.Setenv("APP_LOG_DISABLE_TIMESTAMP", "true")
	t.Setenv("APP_LOG_COLOR_FORCE_TTY", "true")
	t.Setenv("APP_LOG_SAMPLING_ENABLED", "true")
	t.Setenv("APP_LOG_SAMPLING_INITIAL", "10")
	t.Setenv("APP_LOG_SAMPLING_THEREAFTER", "5")
	t.Setenv("APP_DATASOURCE_DRIVER", "pgx")
	t.Setenv("APP_DATASOURCE_URL", "postgres://db/orders")
	t.Setenv("APP_DATASOURCE_MAX_POOL_SIZE", "8")
	t.Setenv("APP_DATASOURCE_LOGIN_TIMEOUT", "3s")

	settings, err := FromEnv("app_")
	require.NoError(t, err)

	cfg := settings.Log
	require.Equal(t, svcadapters.WarningLevel, cfg.Level)
	require.False(t, cfg.EnableJSON)
	require.True(t, cfg.DisableTimestamp)
	require.True(t, cfg.Color.ForceTTY)
	require.Equal(t, svcadapters.SamplingConfig{Enabled: true, Initial: 10, Thereafter: 5}, cfg.Sampling)

	require.Equal(t, "pgx", settings.DataSource.Driver)
	require.Equal(t, 3*time.Second, settings.DataSource.LoginTimeout)
	require.Equal(t, svcadapters.Properties{
		svcadapters.PropURL:         "postgres://db/orders",
		svcadapters.PropMaxPoolSize: "8",
	}, settings.DataSource.Properties)
}

func TestFromEnvDefaults(t *testing.T) {
	settings, err := FromEnv("")
	require.NoError(t, err)

	defaults := svcadapters.DefaultConfig()

	require.Equal(t, defaults.Level, settings.Log.Level)
	require.Equal(t, defaults.EnableJSON, settings.Log.EnableJSON)
	require.Equal(t, DefaultDriver, settings.DataSource.Driver)
	require.Empty(t, settings.DataSource.Properties)
}

func TestFromYAML(t *testing.T) {
	settings, err := FromYAML([]byte(`
log:
  level: debug
  enable_json: false
  time_format: "15:04:05"
  encoder: console
  output: stderr
  fields:
    service: orders
    env: staging
  color:
    enable: false
datasource:
  server_name: db.internal
  port_number: 5433
  database_name: orders
  user: app
  password: secret
  sslmode: disable
  max_pool_size: 10
  min_pool_size: 2
  max_idle_time: 90s
`))
	require.NoError(t, err)

	cfg := settings.Log
	require.Equal(t, svcadapters.DebugLevel, cfg.Level)
	require.False(t, cfg.EnableJSON)
	require.Equal(t, "15:04:05", cfg.TimeFormat)
	require.Equal(t, "console", cfg.EncoderName())
	require.Same(t, os.Stderr, cfg.Output)
	require.False(t, cfg.Color.Enable)
	require.Equal(t, []svcadapters.Field{
		svcadapters.Str("env", "staging"),
		svcadapters.Str("service", "orders"),
	}, cfg.AdditionalFields)

	require.Equal(t, svcadapters.Properties{
		svcadapters.PropServerName:   "db.internal",
		svcadapters.PropPortNumber:   "5433",
		svcadapters.PropDatabaseName: "orders",
		svcadapters.PropUser:         "app",
		svcadapters.PropPassword:     "secret",
		svcadapters.PropSSLMode:      "disable",
		svcadapters.PropMaxPoolSize:  "10",
		svcadapters.PropMinPoolSize:  "2",
		svcadapters.PropMaxIdleTime:  "90",
	}, settings.DataSource.Properties)
}

func TestFromYAMLMaxIdleTimeRoundsUp(t *testing.T) {
	tests := map[string]string{
		"500ms":  "1",
		"1s":     "1",
		"1500ms": "2",
		"2m":     "120",
	}

	for idle, want := range tests {
		t.Run(idle, func(t *testing.T) {
			settings, err := FromYAML([]byte("datasource:\n  max_idle_time: " + idle + "\n"))
			require.NoError(t, err)
			require.Equal(t, want, settings.DataSource.Properties[svcadapters.PropMaxIdleTime])
		})
	}
}

func TestFromYAMLInvalidLevel(t *testing.T) {
	_, err := FromYAML([]byte("log:\n  level: verbose\n"))
	require.ErrorIs(t, err, svcadapters.ErrInvalidLevel)
}

func TestFromYAMLMalformed(t *testing.T) {
	_, err := FromYAML([]byte("log: [unterminated"))
	require.Error(t, err)
}

func TestFromFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()

	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
log:
  level: info
  output: stdout
datasource:
  url: postgres://file-host/orders
`), 0o600))

	t.Setenv("SVCADAPTERS_LOG_LEVEL", "trace")
	t.Setenv("SVCADAPTERS_DATASOURCE_USER", "from-env")

	settings, err := FromFile(configPath)
	require.NoError(t, err)

	require.Equal(t, svcadapters.TraceLevel, settings.Log.Level)
	require.Same(t, os.Stdout, settings.Log.Output)
	require.Equal(t, "postgres://file-host/orders", settings.DataSource.Properties.Get(svcadapters.PropURL))
	require.Equal(t, "from-env", settings.DataSource.Properties.Get(svcadapters.PropUser))
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNormalizePrefix(t *testing.T) {
	require.Equal(t, "SVCADAPTERS", normalizePrefix("  "))
	require.Equal(t, "MY_APP", normalizePrefix("my-app_"))
}
