// Package sqlsource implements DataSource and DataSourceFactory on top of
// registered database/sql drivers.
//
// A Factory is bound to a driver name and a DSNBuilder that turns connection
// properties into the driver's data source name. Data sources it creates open
// connections on demand; pools are plain *sql.DB handles sized from the pool
// properties.
package sqlsource

import (
	"context"
	"database/sql/driver"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/svcadapters"
)

// ConnectorFunc opens a connector for a data source name.
type ConnectorFunc func(dsn string) (driver.Connector, error)

// DataSource opens connections through a database/sql driver.
type DataSource struct {
	mu           sync.RWMutex
	driverName   string
	drv          driver.Driver
	props        svcadapters.Properties
	build        DSNBuilder
	connector    ConnectorFunc
	loggers      svcadapters.LoggerFactory
	logWriter    io.Writer
	loginTimeout time.Duration
}

// Ensure DataSource implements the DataSource interface.
var _ svcadapters.DataSource = (*DataSource)(nil)

// Connect opens a connection with the user and password properties.
func (d *DataSource) Connect(ctx context.Context) (driver.Conn, error) {
	return d.ConnectAs(ctx, d.props.Get(svcadapters.PropUser), d.props.Get(svcadapters.PropPassword))
}

// ConnectAs opens a connection with explicit credentials.
// The login timeout, when set, bounds the connect call.
func (d *DataSource) ConnectAs(ctx context.Context, username, password string) (driver.Conn, error) {
	dsn, err := d.build(d.props, username, password)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to build data source name").WithMetadata("driver", d.driverName)
	}

	d.mu.RLock()
	timeout, logWriter := d.loginTimeout, d.logWriter
	d.mu.RUnlock()

	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if logWriter != nil {
		fmt.Fprintf(logWriter, "%s: connecting as %q\n", d.driverName, username)
	}

	connector, err := d.connector(dsn)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to create connector").WithMetadata("driver", d.driverName)
	}

	conn, err := connector.Connect(ctx)
	if err != nil {
		if logWriter != nil {
			fmt.Fprintf(logWriter, "%s: connect failed: %v\n", d.driverName, err)
		}

		return nil, ewrap.Wrap(err, "failed to connect").WithMetadata("driver", d.driverName)
	}

	return conn, nil
}

// Driver returns the underlying driver.
func (d *DataSource) Driver() driver.Driver {
	return d.drv
}

// LogWriter returns the diagnostics writer, nil when unset.
func (d *DataSource) LogWriter() io.Writer {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.logWriter
}

// SetLogWriter sets the diagnostics writer. Nil disables diagnostics.
func (d *DataSource) SetLogWriter(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.logWriter = w

	return nil
}

// LoginTimeout returns the connect timeout.
func (d *DataSource) LoginTimeout() time.Duration {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.loginTimeout
}

// SetLoginTimeout sets the connect timeout. Zero disables it.
func (d *DataSource) SetLoginTimeout(timeout time.Duration) error {
	if timeout < 0 {
		return ewrap.New("login timeout cannot be negative").WithMetadata("timeout", timeout)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.loginTimeout = timeout

	return nil
}

// ParentLogger returns a logger named after the driver from the factory's
// LoggerFactory, or svcadapters.ErrFeatureNotSupported when none is set.
func (d *DataSource) ParentLogger() (svcadapters.Logger, error) {
	if d.loggers == nil {
		return nil, svcadapters.ErrFeatureNotSupported
	}

	return d.loggers.Logger("sqlsource." + d.driverName), nil
}

// dsnConnector adapts a driver without DriverContext support.
type dsnConnector struct {
	dsn string
	drv driver.Driver
}

func (c dsnConnector) Connect(ctx context.Context) (driver.Conn, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	return c.drv.Open(c.dsn)
}

func (c dsnConnector) Driver() driver.Driver {
	return c.drv
}

func driverConnector(drv driver.Driver) ConnectorFunc {
	return func(dsn string) (driver.Connector, error) {
		if dc, ok := drv.(driver.DriverContext); ok {
			return dc.OpenConnector(dsn)
		}

		return dsnConnector{dsn: dsn, drv: drv}, nil
	}
}
