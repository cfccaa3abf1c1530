package sqlsource

import (
	"database/sql"
	"database/sql/driver"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/svcadapters"
)

// Factory creates data sources for a registered database/sql driver.
type Factory struct {
	driverName string
	drv        driver.Driver
	build      DSNBuilder
	connector  func(drv driver.Driver) ConnectorFunc
	loggers    svcadapters.LoggerFactory
}

// Ensure Factory implements the DataSourceFactory interface.
var _ svcadapters.DataSourceFactory = (*Factory)(nil)

// Option configures a Factory.
type Option func(*Factory)

// WithDSNBuilder replaces the default URLDSN builder.
func WithDSNBuilder(build DSNBuilder) Option {
	return func(f *Factory) {
		if build != nil {
			f.build = build
		}
	}
}

// WithDriver uses drv instead of looking the driver name up in database/sql.
func WithDriver(drv driver.Driver) Option {
	return func(f *Factory) {
		f.drv = drv
	}
}

// WithConnector replaces the driver's own connector.
func WithConnector(connector ConnectorFunc) Option {
	return func(f *Factory) {
		if connector != nil {
			f.connector = func(driver.Driver) ConnectorFunc { return connector }
		}
	}
}

// WithLoggerFactory sets the factory returned loggers come from in ParentLogger.
func WithLoggerFactory(loggers svcadapters.LoggerFactory) Option {
	return func(f *Factory) {
		f.loggers = loggers
	}
}

// NewFactory creates a factory for the driver registered as driverName.
func NewFactory(driverName string, opts ...Option) *Factory {
	factory := &Factory{
		driverName: driverName,
		build:      URLDSN,
		connector:  driverConnector,
	}

	for _, opt := range opts {
		opt(factory)
	}

	return factory
}

// DriverName returns the database/sql driver name.
func (f *Factory) DriverName() string {
	return f.driverName
}

// CreateDataSource creates a data source. No connection is opened.
// On error the returned interface is nil.
func (f *Factory) CreateDataSource(props svcadapters.Properties) (svcadapters.DataSource, error) {
	source, err := f.newDataSource(props)
	if err != nil {
		return nil, err
	}

	return source, nil
}

// CreateConnectionPool creates a *sql.DB over a new data source.
// maxPoolSize, minPoolSize and maxIdleTime size the pool.
func (f *Factory) CreateConnectionPool(props svcadapters.Properties) (*sql.DB, error) {
	settings, err := poolSettingsFrom(props)
	if err != nil {
		return nil, err
	}

	source, err := f.newDataSource(props)
	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(source)
	settings.apply(db)

	return db, nil
}

// CreateDriver returns the registered driver.
func (f *Factory) CreateDriver(_ svcadapters.Properties) (driver.Driver, error) {
	return f.lookupDriver()
}

func (f *Factory) newDataSource(props svcadapters.Properties) (*DataSource, error) {
	drv, err := f.lookupDriver()
	if err != nil {
		return nil, err
	}

	return &DataSource{
		driverName: f.driverName,
		drv:        drv,
		props:      props.Clone(),
		build:      f.build,
		connector:  f.connector(drv),
		loggers:    f.loggers,
	}, nil
}

// lookupDriver resolves the driver without opening a connection.
func (f *Factory) lookupDriver() (driver.Driver, error) {
	if f.drv != nil {
		return f.drv, nil
	}

	db, err := sql.Open(f.driverName, "")
	if err != nil {
		return nil, ewrap.Wrap(err, "driver not registered").WithMetadata("driver", f.driverName)
	}

	drv := db.Driver()

	err = db.Close()
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to release driver lookup")
	}

	return drv, nil
}

type poolSettings struct {
	maxOpen, maxIdle int
	maxIdleTime      time.Duration
}

func poolSettingsFrom(props svcadapters.Properties) (poolSettings, error) {
	var settings poolSettings

	maxOpen, _, err := props.Int(svcadapters.PropMaxPoolSize)
	if err != nil {
		return settings, err
	}

	maxIdle, _, err := props.Int(svcadapters.PropMinPoolSize)
	if err != nil {
		return settings, err
	}

	idleSeconds, _, err := props.Int(svcadapters.PropMaxIdleTime)
	if err != nil {
		return settings, err
	}

	if maxOpen < 0 || maxIdle < 0 || idleSeconds < 0 {
		return settings, ewrap.New("pool properties cannot be negative").
			WithMetadata(svcadapters.PropMaxPoolSize, maxOpen).
			WithMetadata(svcadapters.PropMinPoolSize, maxIdle).
			WithMetadata(svcadapters.PropMaxIdleTime, idleSeconds)
	}

	if maxOpen > 0 && maxIdle > maxOpen {
		return settings, ewrap.New("minPoolSize exceeds maxPoolSize").
			WithMetadata(svcadapters.PropMaxPoolSize, maxOpen).
			WithMetadata(svcadapters.PropMinPoolSize, maxIdle)
	}

	settings.maxOpen = maxOpen
	settings.maxIdle = maxIdle
	settings.maxIdleTime = time.Duration(idleSeconds) * time.Second

	return settings, nil
}

func (s poolSettings) apply(db *sql.DB) {
	if s.maxOpen > 0 {
		db.SetMaxOpenConns(s.maxOpen)
	}

	if s.maxIdle > 0 {
		db.SetMaxIdleConns(s.maxIdle)
	}

	if s.maxIdleTime > 0 {
		db.SetConnMaxIdleTime(s.maxIdleTime)
	}
}
