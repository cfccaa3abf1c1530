package svcadapters

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, os.Stdout, config.Output)
	assert.Equal(t, DefaultLevel, config.Level)
	assert.Equal(t, DefaultTimeFormat, config.TimeFormat)
	assert.True(t, config.EnableJSON)
	assert.Empty(t, config.AdditionalFields)
	assert.False(t, config.Sampling.Enabled)
	assert.Equal(t, DefaultSamplingInitial, config.Sampling.Initial)
	assert.Equal(t, DefaultSamplingThereafter, config.Sampling.Thereafter)
}

func TestPresetConfigs(t *testing.T) {
	production := ProductionConfig()
	assert.True(t, production.EnableJSON)
	assert.False(t, production.Color.Enable)
	assert.Equal(t, InfoLevel, production.Level)

	development := DevelopmentConfig()
	assert.False(t, development.EnableJSON)
	assert.True(t, development.Color.Enable)
	assert.Equal(t, DebugLevel, development.Level)
}

func TestConfigValidate(t *testing.T) {
	var nilConfig *Config
	require.Error(t, nilConfig.Validate())

	config := Config{Level: Level(42), Output: io.Discard}
	require.Error(t, config.Validate())

	config = Config{Level: InfoLevel}
	require.Error(t, config.Validate())

	config = Config{Level: WarningLevel, Output: &bytes.Buffer{}}
	require.NoError(t, config.Validate())
	assert.Equal(t, DefaultTimeFormat, config.TimeFormat)
	assert.Equal(t, DefaultLevelColors(), config.Color.LevelColors)
	assert.Equal(t, DefaultSamplingInitial, config.Sampling.Initial)
	assert.Equal(t, DefaultSamplingThereafter, config.Sampling.Thereafter)
}

func TestConfigEncoderName(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, JSONEncoderName, config.EncoderName())

	config.EnableJSON = false
	assert.Equal(t, ConsoleEncoderName, config.EncoderName())

	config.Encoder = "logfmt"
	assert.Equal(t, "logfmt", config.EncoderName())
}

func TestSetOutput(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		wantWriter  io.Writer
		wantErr     bool
		isFile      bool
		permissions os.FileMode
	}{
		{
			name:       "stdout output",
			output:     "stdout",
			wantWriter: os.Stdout,
		},
		{
			name:       "stderr output",
			output:     "STDERR",
			wantWriter: os.Stderr,
		},
		{
			name:        "valid file path",
			output:      filepath.Join(t.TempDir(), "test.log"),
			isFile:      true,
			permissions: 0o644,
		},
		{
			name:    "invalid file path",
			output:  "/nonexistent/directory/test.log",
			wantErr: true,
		},
		{
			name:    "empty path",
			output:  "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer, err := SetOutput(tt.output)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, writer)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, writer)

			if tt.wantWriter != nil {
				assert.Equal(t, tt.wantWriter, writer)
			}

			if tt.isFile {
				file, ok := writer.(*os.File)
				require.True(t, ok)

				info, err := file.Stat()
				require.NoError(t, err)
				assert.Equal(t, tt.permissions, info.Mode().Perm())
				require.NoError(t, file.Close())
			}
		})
	}
}
