// Package jdbc provides data source adapters that can be used before the real
// data source or factory is available.
//
// DataSourceAdapter is a null object: until SetDataSource is called it
// forwards to the shared NullDataSource, which returns neutral values. It
// implements driver.Connector, so it can be handed to sql.OpenDB right away:
//
//	source := jdbc.NewDataSourceAdapter()
//	db := sql.OpenDB(source) // connections fail until a source is set
//	...
//	source.SetDataSource(real)
//
// DataSourceFactoryAdapter does the same for DataSourceFactory.
package jdbc

import (
	"context"
	"database/sql/driver"
	"io"
	"sync"
	"time"

	"github.com/hyp3rd/svcadapters"
	"github.com/hyp3rd/svcadapters/internal/utils"
)

// DataSourceAdapter forwards every call to the current data source.
// Errors from the data source are returned unchanged.
type DataSourceAdapter struct {
	mu     sync.RWMutex
	source svcadapters.DataSource
}

// Ensure DataSourceAdapter implements the DataSource interface.
var _ svcadapters.DataSource = (*DataSourceAdapter)(nil)

// NewDataSourceAdapter creates an adapter backed by the NullDataSource.
func NewDataSourceAdapter() *DataSourceAdapter {
	return &DataSourceAdapter{source: Null()}
}

// SetDataSource sets the data source to forward to. Nil, including a typed nil
// pointer, resets to the NullDataSource.
func (a *DataSourceAdapter) SetDataSource(source svcadapters.DataSource) {
	if utils.IsNil(source) {
		source = Null()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.source = source
}

// Current returns the data source calls are forwarded to.
func (a *DataSourceAdapter) Current() svcadapters.DataSource {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.source
}

// Connect forwards to the current data source.
func (a *DataSourceAdapter) Connect(ctx context.Context) (driver.Conn, error) {
	return a.Current().Connect(ctx)
}

// ConnectAs forwards to the current data source.
func (a *DataSourceAdapter) ConnectAs(ctx context.Context, username, password string) (driver.Conn, error) {
	return a.Current().ConnectAs(ctx, username, password)
}

// Driver forwards to the current data source.
func (a *DataSourceAdapter) Driver() driver.Driver {
	return a.Current().Driver()
}

// LogWriter forwards to the current data source.
func (a *DataSourceAdapter) LogWriter() io.Writer {
	return a.Current().LogWriter()
}

// SetLogWriter forwards to the current data source.
func (a *DataSourceAdapter) SetLogWriter(w io.Writer) error {
	return a.Current().SetLogWriter(w)
}

// LoginTimeout forwards to the current data source.
func (a *DataSourceAdapter) LoginTimeout() time.Duration {
	return a.Current().LoginTimeout()
}

// SetLoginTimeout forwards to the current data source.
func (a *DataSourceAdapter) SetLoginTimeout(timeout time.Duration) error {
	return a.Current().SetLoginTimeout(timeout)
}

// ParentLogger forwards to the current data source.
func (a *DataSourceAdapter) ParentLogger() (svcadapters.Logger, error) {
	return a.Current().ParentLogger()
}
