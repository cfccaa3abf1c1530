package svcadapters

import (
	"io"
	"os"
)

// ConfigBuilder provides a fluent API for constructing log configurations.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new builder starting from DefaultConfig.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{config: DefaultConfig()}
}

// WithOutput sets the output destination.
func (b *ConfigBuilder) WithOutput(output io.Writer) *ConfigBuilder {
	b.config.Output = output

	return b
}

// WithConsoleOutput writes to stdout.
func (b *ConfigBuilder) WithConsoleOutput() *ConfigBuilder {
	b.config.Output = os.Stdout

	return b
}

// WithLevel sets the most verbose level that is logged.
func (b *ConfigBuilder) WithLevel(level Level) *ConfigBuilder {
	b.config.Level = level

	return b
}

// WithDebugLevel is shorthand for WithLevel(DebugLevel).
func (b *ConfigBuilder) WithDebugLevel() *ConfigBuilder {
	return b.WithLevel(DebugLevel)
}

// WithTimeFormat sets the timestamp layout.
func (b *ConfigBuilder) WithTimeFormat(format string) *ConfigBuilder {
	b.config.TimeFormat = format

	return b
}

// WithNoTimestamp omits timestamps from records.
func (b *ConfigBuilder) WithNoTimestamp() *ConfigBuilder {
	b.config.DisableTimestamp = true

	return b
}

// WithJSONFormat toggles JSON output.
func (b *ConfigBuilder) WithJSONFormat(enable bool) *ConfigBuilder {
	b.config.EnableJSON = enable

	return b
}

// WithColors toggles colored text output.
func (b *ConfigBuilder) WithColors(enable bool) *ConfigBuilder {
	b.config.Color.Enable = enable

	return b
}

// WithForceColors applies colors even when the output is not a terminal.
func (b *ConfigBuilder) WithForceColors(force bool) *ConfigBuilder {
	b.config.Color.ForceTTY = force

	return b
}

// WithField adds a field to every record.
func (b *ConfigBuilder) WithField(key string, value any) *ConfigBuilder {
	b.config.AdditionalFields = append(b.config.AdditionalFields, Field{Key: key, Value: value})

	return b
}

// WithFields adds several fields to every record.
func (b *ConfigBuilder) WithFields(fields ...Field) *ConfigBuilder {
	b.config.AdditionalFields = append(b.config.AdditionalFields, fields...)

	return b
}

// WithEncoder selects an encoder by name.
func (b *ConfigBuilder) WithEncoder(name string) *ConfigBuilder {
	b.config.Encoder = name

	return b
}

// WithEncoderRegistry sets the registry used to resolve the encoder name.
func (b *ConfigBuilder) WithEncoderRegistry(registry *EncoderRegistry) *ConfigBuilder {
	b.config.EncoderRegistry = registry

	return b
}

// WithSampling enables sampling: the first initial records pass, then one in every thereafter.
func (b *ConfigBuilder) WithSampling(initial, thereafter int, perLevel bool) *ConfigBuilder {
	b.config.Sampling = SamplingConfig{
		Enabled:           true,
		Initial:           initial,
		Thereafter:        thereafter,
		PerLevelThreshold: perLevel,
	}

	return b
}

// WithDevelopmentDefaults applies DevelopmentConfig while keeping the output and fields.
func (b *ConfigBuilder) WithDevelopmentDefaults() *ConfigBuilder {
	return b.withPreset(DevelopmentConfig())
}

// WithProductionDefaults applies ProductionConfig while keeping the output and fields.
func (b *ConfigBuilder) WithProductionDefaults() *ConfigBuilder {
	return b.withPreset(ProductionConfig())
}

// Build returns a copy of the configuration.
func (b *ConfigBuilder) Build() *Config {
	cfg := b.config
	cfg.AdditionalFields = append([]Field(nil), b.config.AdditionalFields...)

	return &cfg
}

func (b *ConfigBuilder) withPreset(preset Config) *ConfigBuilder {
	preset.Output = b.config.Output
	preset.AdditionalFields = b.config.AdditionalFields
	preset.Encoder = b.config.Encoder
	preset.EncoderRegistry = b.config.EncoderRegistry
	b.config = preset

	return b
}
