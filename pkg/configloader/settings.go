package configloader

import (
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/svcadapters"
)

// DefaultDriver is the data source driver used when none is configured.
const DefaultDriver = "postgres"

// Settings is the loaded configuration.
type Settings struct {
	// Log configures the console log service.
	Log svcadapters.Config
	// DataSource configures the data source factory.
	DataSource DataSourceSettings
}

// DataSourceSettings selects a driver and the properties passed to its factory.
type DataSourceSettings struct {
	Driver       string
	Properties   svcadapters.Properties
	LoginTimeout time.Duration
}

type rawSettings struct {
	Log struct {
		Level            string            `mapstructure:"level"`
		Output           string            `mapstructure:"output"`
		EnableJSON       *bool             `mapstructure:"enable_json"`
		DisableTimestamp *bool             `mapstructure:"disable_timestamp"`
		TimeFormat       string            `mapstructure:"time_format"`
		Encoder          string            `mapstructure:"encoder"`
		Fields           map[string]string `mapstructure:"fields"`
		Color            struct {
			Enable   *bool `mapstructure:"enable"`
			ForceTTY *bool `mapstructure:"force_tty"`
		} `mapstructure:"color"`
		Sampling struct {
			Enabled    *bool `mapstructure:"enabled"`
			Initial    *int  `mapstructure:"initial"`
			Thereafter *int  `mapstructure:"thereafter"`
			PerLevel   *bool `mapstructure:"per_level"`
		} `mapstructure:"sampling"`
	} `mapstructure:"log"`
	DataSource struct {
		Driver       string        `mapstructure:"driver"`
		URL          string        `mapstructure:"url"`
		User         string        `mapstructure:"user"`
		Password     string        `mapstructure:"password"`
		DatabaseName string        `mapstructure:"database_name"`
		ServerName   string        `mapstructure:"server_name"`
		PortNumber   *int          `mapstructure:"port_number"`
		SSLMode      string        `mapstructure:"sslmode"`
		MaxPoolSize  *int          `mapstructure:"max_pool_size"`
		MinPoolSize  *int          `mapstructure:"min_pool_size"`
		MaxIdleTime  time.Duration `mapstructure:"max_idle_time"`
		LoginTimeout time.Duration `mapstructure:"login_timeout"`
	} `mapstructure:"datasource"`
}

func (raw *rawSettings) apply() (*Settings, error) {
	cfg, err := raw.logConfig()
	if err != nil {
		return nil, err
	}

	return &Settings{
		Log:        cfg,
		DataSource: raw.dataSource(),
	}, nil
}

func (raw *rawSettings) logConfig() (svcadapters.Config, error) {
	cfg := svcadapters.DefaultConfig()
	log := raw.Log

	if log.Level != "" {
		level, err := svcadapters.ParseLevel(log.Level)
		if err != nil {
			return cfg, err
		}

		cfg.Level = level
	}

	setIfPresent(&cfg.EnableJSON, log.EnableJSON)
	setIfPresent(&cfg.DisableTimestamp, log.DisableTimestamp)
	setIfPresent(&cfg.Color.Enable, log.Color.Enable)
	setIfPresent(&cfg.Color.ForceTTY, log.Color.ForceTTY)
	setIfPresent(&cfg.Sampling.Enabled, log.Sampling.Enabled)
	setIfPresent(&cfg.Sampling.Initial, log.Sampling.Initial)
	setIfPresent(&cfg.Sampling.Thereafter, log.Sampling.Thereafter)
	setIfPresent(&cfg.Sampling.PerLevelThreshold, log.Sampling.PerLevel)

	if log.TimeFormat != "" {
		cfg.TimeFormat = log.TimeFormat
	}

	if log.Encoder != "" {
		cfg.Encoder = log.Encoder
	}

	for _, key := range slices.Sorted(maps.Keys(log.Fields)) {
		cfg.AdditionalFields = append(cfg.AdditionalFields, svcadapters.Str(key, log.Fields[key]))
	}

	if log.Output != "" {
		writer, err := svcadapters.SetOutput(log.Output)
		if err != nil {
			return cfg, ewrap.Wrap(err, "invalid log output").WithMetadata("output", log.Output)
		}

		cfg.Output = writer
	}

	return cfg, nil
}

func (raw *rawSettings) dataSource() DataSourceSettings {
	src := raw.DataSource

	settings := DataSourceSettings{
		Driver:       src.Driver,
		Properties:   svcadapters.Properties{},
		LoginTimeout: src.LoginTimeout,
	}

	if settings.Driver == "" {
		settings.Driver = DefaultDriver
	}

	setProperty(settings.Properties, svcadapters.PropURL, src.URL)
	setProperty(settings.Properties, svcadapters.PropUser, src.User)
	setProperty(settings.Properties, svcadapters.PropPassword, src.Password)
	setProperty(settings.Properties, svcadapters.PropDatabaseName, src.DatabaseName)
	setProperty(settings.Properties, svcadapters.PropServerName, src.ServerName)
	setProperty(settings.Properties, svcadapters.PropSSLMode, src.SSLMode)
	setIntProperty(settings.Properties, svcadapters.PropPortNumber, src.PortNumber)
	setIntProperty(settings.Properties, svcadapters.PropMaxPoolSize, src.MaxPoolSize)
	setIntProperty(settings.Properties, svcadapters.PropMinPoolSize, src.MinPoolSize)

	// The property is in whole seconds; partial seconds round up.
	if src.MaxIdleTime > 0 {
		seconds := int((src.MaxIdleTime + time.Second - 1) / time.Second)
		setIntProperty(settings.Properties, svcadapters.PropMaxIdleTime, &seconds)
	}

	return settings
}

func setIfPresent[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}

func setProperty(props svcadapters.Properties, key, value string) {
	if value != "" {
		props[key] = value
	}
}

func setIntProperty(props svcadapters.Properties, key string, value *int) {
	if value != nil {
		props[key] = strconv.Itoa(*value)
	}
}

func allKeys() []string {
	return []string{
		"log.level",
		"log.output",
		"log.enable_json",
		"log.disable_timestamp",
		"log.time_format",
		"log.encoder",
		"log.color.enable",
		"log.color.force_tty",
		"log.sampling.enabled",
		"log.sampling.initial",
		"log.sampling.thereafter",
		"log.sampling.per_level",
		"datasource.driver",
		"datasource.url",
		"datasource.user",
		"datasource.password",
		"datasource.database_name",
		"datasource.server_name",
		"datasource.port_number",
		"datasource.sslmode",
		"datasource.max_pool_size",
		"datasource.min_pool_size",
		"datasource.max_idle_time",
		"datasource.login_timeout",
	}
}
