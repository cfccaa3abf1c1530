package jdbc

import (
	"context"
	"database/sql/driver"
	"io"
	"time"

	"github.com/hyp3rd/svcadapters"
)

// NullDataSource is the data source used before a real one is set.
//
// Getters return neutral values, setters are ignored so the shared instance
// never retains state, and connecting fails with svcadapters.ErrNoDataSource.
type NullDataSource struct{}

//nolint:gochecknoglobals // the null object is shared process-wide.
var nullDataSource = &NullDataSource{}

// Ensure NullDataSource implements the DataSource interface.
var _ svcadapters.DataSource = (*NullDataSource)(nil)

// Null returns the shared NullDataSource.
func Null() *NullDataSource {
	return nullDataSource
}

// Connect always fails with svcadapters.ErrNoDataSource.
func (*NullDataSource) Connect(_ context.Context) (driver.Conn, error) {
	return nil, svcadapters.ErrNoDataSource
}

// ConnectAs always fails with svcadapters.ErrNoDataSource.
func (*NullDataSource) ConnectAs(_ context.Context, _, _ string) (driver.Conn, error) {
	return nil, svcadapters.ErrNoDataSource
}

// Driver returns a driver whose Open always fails.
func (*NullDataSource) Driver() driver.Driver {
	return nullDriver{}
}

// LogWriter returns nil.
func (*NullDataSource) LogWriter() io.Writer { return nil }

// SetLogWriter is ignored.
func (*NullDataSource) SetLogWriter(_ io.Writer) error { return nil }

// LoginTimeout returns zero.
func (*NullDataSource) LoginTimeout() time.Duration { return 0 }

// SetLoginTimeout is ignored.
func (*NullDataSource) SetLoginTimeout(_ time.Duration) error { return nil }

// ParentLogger fails with svcadapters.ErrFeatureNotSupported.
func (*NullDataSource) ParentLogger() (svcadapters.Logger, error) {
	return nil, svcadapters.ErrFeatureNotSupported
}

type nullDriver struct{}

func (nullDriver) Open(_ string) (driver.Conn, error) {
	return nil, svcadapters.ErrNoDataSource
}
