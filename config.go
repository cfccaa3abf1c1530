package svcadapters

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/svcadapters/internal/constants"
	"github.com/hyp3rd/svcadapters/internal/utils"
)

const (
	// DefaultTimeFormat is the default time format for log records.
	DefaultTimeFormat = time.RFC3339
	// DefaultLevel is the default logging threshold.
	DefaultLevel = InfoLevel
	// LogFilePermissions are the default file permissions for log files.
	LogFilePermissions = 0o666
	// DefaultSamplingInitial is the default number of records logged before sampling starts.
	DefaultSamplingInitial = 100
	// DefaultSamplingThereafter is the default sampling rate (1/N) after the initial records.
	DefaultSamplingThereafter = 10
)

// SamplingConfig defines parameters for log sampling.
// Warnings and more severe records are never sampled.
type SamplingConfig struct {
	// Enabled turns sampling on/off.
	Enabled bool
	// Initial is the number of records to log before sampling starts.
	Initial int
	// Thereafter is the sampling rate (1/N) after Initial records.
	Thereafter int
	// PerLevelThreshold when true, keeps separate counters per level.
	PerLevelThreshold bool
}

// Config holds configuration for log service implementations.
type Config struct {
	// Level is the most verbose level that is logged.
	Level Level
	// Output is where the records will be written.
	Output io.Writer
	// TimeFormat specifies the format for timestamps.
	TimeFormat string
	// EnableJSON enables JSON output format.
	EnableJSON bool
	// DisableTimestamp disables timestamp in log records.
	DisableTimestamp bool
	// AdditionalFields adds these fields to all log records.
	AdditionalFields []Field
	// Color configuration.
	Color ColorConfig
	// Sampling configures log sampling for high-volume scenarios.
	Sampling SamplingConfig
	// Encoder names the encoder to use. Empty selects "json" or "console"
	// depending on EnableJSON.
	Encoder string
	// EncoderRegistry resolves Encoder. Nil uses a registry with the defaults.
	EncoderRegistry *EncoderRegistry
}

// DefaultConfig returns the default log configuration.
func DefaultConfig() Config {
	return Config{
		Output:           os.Stdout,
		Level:            DefaultLevel,
		TimeFormat:       DefaultTimeFormat,
		EnableJSON:       true,
		DisableTimestamp: false,
		AdditionalFields: make([]Field, 0),
		Color:            DefaultColorConfig(),
		Sampling: SamplingConfig{
			Enabled:           false,
			Initial:           DefaultSamplingInitial,
			Thereafter:        DefaultSamplingThereafter,
			PerLevelThreshold: false,
		},
	}
}

// ProductionConfig returns a configuration optimized for production environments.
// It enables JSON output and disables colors.
func ProductionConfig() Config {
	config := DefaultConfig()
	config.EnableJSON = true
	config.Color.Enable = false

	return config
}

// DevelopmentConfig returns a configuration optimized for development environments.
// It enables colors, text output and a more verbose level.
func DevelopmentConfig() Config {
	config := DefaultConfig()
	config.EnableJSON = false
	config.Color.Enable = true
	config.Level = DebugLevel

	return config
}

// Validate checks the configuration and fills defaults for missing values.
func (c *Config) Validate() error {
	if c == nil {
		return ewrap.New("log config cannot be nil")
	}

	if !c.Level.IsValid() {
		return ewrap.New("invalid log level").WithMetadata("level", c.Level)
	}

	if c.Output == nil {
		return ewrap.New("output writer is required")
	}

	if c.TimeFormat == "" {
		c.TimeFormat = DefaultTimeFormat
	}

	if c.Color.LevelColors == nil {
		c.Color.LevelColors = DefaultLevelColors()
	}

	if c.Sampling.Initial <= 0 {
		c.Sampling.Initial = DefaultSamplingInitial
	}

	if c.Sampling.Thereafter <= 0 {
		c.Sampling.Thereafter = DefaultSamplingThereafter
	}

	return nil
}

// EncoderName returns the configured encoder name or the default for EnableJSON.
func (c *Config) EncoderName() string {
	if c.Encoder != "" {
		return c.Encoder
	}

	if c.EnableJSON {
		return JSONEncoderName
	}

	return ConsoleEncoderName
}

// SetOutput resolves an output destination. It accepts "stdout", "stderr",
// or a file path. Files are created if missing and opened in append mode.
func SetOutput(output string) (io.Writer, error) {
	switch strings.ToLower(output) {
	case constants.OutputStdout:
		return os.Stdout, nil
	case constants.OutputStderr:
		return os.Stderr, nil
	default:
		if strings.TrimSpace(output) == "" {
			return nil, ewrap.New("output path cannot be empty")
		}

		path := filepath.Clean(output)

		if !filepath.IsAbs(path) {
			securePath, err := utils.SecurePath(path)
			if err != nil {
				return nil, ewrap.Wrap(err, "invalid output path")
			}

			path = securePath
		}

		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermissions)
		if err != nil {
			return nil, ewrap.Wrapf(err, "failed to open log file %s", path)
		}

		return file, nil
	}
}
