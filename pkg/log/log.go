// Package log provides the application-level entry points: a console log
// service configured for an environment, and process-wide adapters that
// components can use before that service exists.
//
// - In non-production environments: Debug level with readable text output
// - In production environments: Info level with structured JSON output
// - Service name and environment included as fields in every record
//
// Usage:
//
//	logs := log.Service()              // usable immediately, records are buffered
//	repo := log.Logger("store.Repository")
//
//	svc, err := log.NewWithDefaults(constants.NonProductionEnvironment, "user-service")
//	if err != nil {
//		panic(err)
//	}
//
//	log.Attach(svc) // buffered records are replayed, loggers resolve through svc
package log

import (
	"os"
	"sync"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/svcadapters"
	"github.com/hyp3rd/svcadapters/internal/constants"
	"github.com/hyp3rd/svcadapters/pkg/adapter/logger"
	"github.com/hyp3rd/svcadapters/pkg/adapter/logservice"
	"github.com/hyp3rd/svcadapters/pkg/logservice/console"
)

// NewWithDefaults creates a console log service for the environment and service.
func NewWithDefaults(environment, service string) (*console.Service, error) {
	cfg := svcadapters.ProductionConfig()
	if environment == constants.NonProductionEnvironment {
		cfg = svcadapters.DevelopmentConfig()
	}

	cfg.Output = os.Stdout
	cfg.AdditionalFields = []svcadapters.Field{
		svcadapters.Str("service", service),
		svcadapters.Str("environment", environment),
	}

	svc, err := console.New(cfg)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to create log service")
	}

	return svc, nil
}

type registry struct {
	mu       sync.Mutex
	logs     *logservice.Adapter
	loggers  map[string]*logger.Adapter
	attached svcadapters.LoggerService
}

//nolint:gochecknoglobals // process-wide adapters are the point of this package.
var global = sync.OnceValue(func() *registry {
	return &registry{
		logs:    logservice.New(),
		loggers: make(map[string]*logger.Adapter),
	}
})

// Service returns the process-wide log service adapter.
func Service() *logservice.Adapter {
	return global().logs
}

// Logger returns the process-wide logger adapter called name.
// Repeated calls with the same name return the same adapter.
func Logger(name string) *logger.Adapter {
	reg := global()

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if adapter, ok := reg.loggers[name]; ok {
		return adapter
	}

	adapter := logger.New(name)
	if reg.attached != nil {
		adapter.SetLogService(reg.attached)
	}

	reg.loggers[name] = adapter

	return adapter
}

// Attach sets svc as the delegate of the service adapter and of every
// logger adapter, current and future. Nil detaches.
func Attach(svc svcadapters.LoggerService) {
	reg := global()

	reg.mu.Lock()
	defer reg.mu.Unlock()

	reg.attached = svc

	for _, adapter := range reg.loggers {
		adapter.SetLogService(svc)
	}

	reg.logs.SetLogService(svc)
}
