package jdbc

import (
	"database/sql"
	"database/sql/driver"
	"sync"

	"github.com/hyp3rd/svcadapters"
	"github.com/hyp3rd/svcadapters/internal/utils"
)

// DataSourceFactoryAdapter forwards to a DataSourceFactory once one is set.
type DataSourceFactoryAdapter struct {
	mu      sync.RWMutex
	factory svcadapters.DataSourceFactory
}

// Ensure DataSourceFactoryAdapter implements the DataSourceFactory interface.
var _ svcadapters.DataSourceFactory = (*DataSourceFactoryAdapter)(nil)

// NewDataSourceFactoryAdapter creates an adapter with no factory.
func NewDataSourceFactoryAdapter() *DataSourceFactoryAdapter {
	return &DataSourceFactoryAdapter{}
}

// SetFactory sets the factory all calls are forwarded to. Nil unsets it.
func (a *DataSourceFactoryAdapter) SetFactory(factory svcadapters.DataSourceFactory) {
	if utils.IsNil(factory) {
		factory = nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.factory = factory
}

func (a *DataSourceFactoryAdapter) current() svcadapters.DataSourceFactory {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.factory
}

// CreateDataSource forwards to the factory, or returns the NullDataSource when none is set.
func (a *DataSourceFactoryAdapter) CreateDataSource(props svcadapters.Properties) (svcadapters.DataSource, error) {
	factory := a.current()
	if factory == nil {
		return Null(), nil
	}

	return factory.CreateDataSource(props)
}

// CreateConnectionPool forwards to the factory, or fails with svcadapters.ErrNoFactory.
func (a *DataSourceFactoryAdapter) CreateConnectionPool(props svcadapters.Properties) (*sql.DB, error) {
	factory := a.current()
	if factory == nil {
		return nil, svcadapters.ErrNoFactory
	}

	return factory.CreateConnectionPool(props)
}

// CreateDriver forwards to the factory, or fails with svcadapters.ErrNoFactory.
func (a *DataSourceFactoryAdapter) CreateDriver(props svcadapters.Properties) (driver.Driver, error) {
	factory := a.current()
	if factory == nil {
		return nil, svcadapters.ErrNoFactory
	}

	return factory.CreateDriver(props)
}
