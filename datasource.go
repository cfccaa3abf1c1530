package svcadapters

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"strconv"
	"time"

	"github.com/hyp3rd/ewrap"
)

// Property keys understood by DataSourceFactory implementations.
const (
	PropURL          = "url"
	PropUser         = "user"
	PropPassword     = "password"
	PropDatabaseName = "databaseName"
	PropServerName   = "serverName"
	PropPortNumber   = "portNumber"
	PropMaxPoolSize  = "maxPoolSize"
	PropMinPoolSize  = "minPoolSize"
	// PropMaxIdleTime is expressed in seconds.
	PropMaxIdleTime = "maxIdleTime"
	PropSSLMode     = "sslmode"
)

// DataSource is a SQL connection source.
//
// It embeds driver.Connector so any DataSource, adapters included, can be
// handed to sql.OpenDB.
type DataSource interface {
	driver.Connector

	// ConnectAs opens a connection with explicit credentials.
	ConnectAs(ctx context.Context, username, password string) (driver.Conn, error)
	// LogWriter returns the writer receiving driver diagnostics, nil when unset.
	LogWriter() io.Writer
	// SetLogWriter sets the writer receiving driver diagnostics.
	SetLogWriter(w io.Writer) error
	// LoginTimeout returns the connect timeout, zero meaning no timeout.
	LoginTimeout() time.Duration
	// SetLoginTimeout sets the connect timeout.
	SetLoginTimeout(timeout time.Duration) error
	// ParentLogger returns the logger used by the data source.
	ParentLogger() (Logger, error)
}

// DataSourceFactory creates data sources from connection properties.
type DataSourceFactory interface {
	// CreateDataSource creates a non-pooled data source.
	CreateDataSource(props Properties) (DataSource, error)
	// CreateConnectionPool creates a pooled handle sized from the pool properties.
	CreateConnectionPool(props Properties) (*sql.DB, error)
	// CreateDriver returns the driver backing the factory.
	CreateDriver(props Properties) (driver.Driver, error)
}

// Properties are connection properties keyed by the Prop* constants.
type Properties map[string]string

// Get returns the property value, or "" when unset.
func (p Properties) Get(key string) string {
	if p == nil {
		return ""
	}

	return p[key]
}

// Int returns the property parsed as an integer. Missing keys yield (0, false, nil).
func (p Properties) Int(key string) (int, bool, error) {
	raw := p.Get(key)
	if raw == "" {
		return 0, false, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, ewrap.Wrap(err, "invalid integer property").WithMetadata("key", key)
	}

	return val, true, nil
}

// Clone returns a copy of the properties.
func (p Properties) Clone() Properties {
	cloned := make(Properties, len(p))
	for k, v := range p {
		cloned[k] = v
	}

	return cloned
}
