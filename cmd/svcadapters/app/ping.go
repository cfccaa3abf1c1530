package app

import (
	"context"
	"database/sql"
	"io"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/hyp3rd/svcadapters"
	"github.com/hyp3rd/svcadapters/pkg/adapter/jdbc"
	"github.com/hyp3rd/svcadapters/pkg/adapter/logservice"
	"github.com/hyp3rd/svcadapters/pkg/configloader"
	"github.com/hyp3rd/svcadapters/pkg/logservice/console"
	"github.com/hyp3rd/svcadapters/pkg/metrics"
	"github.com/hyp3rd/svcadapters/pkg/sqlsource"
)

const adapterName = "cli"

func newPingCommand(shared *options) *cobra.Command {
	opts := &pingOptions{options: shared}

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Open the configured data source through the adapters and ping it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	opts.AddFlags(cmd.Flags())

	return cmd
}

func (o *pingOptions) run(ctx context.Context, stdout, stderr io.Writer) error {
	settings, err := o.settings()
	if err != nil {
		return err
	}

	if o.driver != "" {
		settings.DataSource.Driver = o.driver
	}

	// Records logged before the console service exists are replayed into it.
	logs := logservice.New()
	logs.Log(svcadapters.DebugLevel, "loaded configuration for driver "+settings.DataSource.Driver)

	registry := prometheus.NewRegistry()
	levels := metrics.NewLevelCounter()
	collector := metrics.NewAdapterCollector()
	collector.Track(adapterName, logs)
	registry.MustRegister(levels, collector)

	settings.Log.Output = o.logOutput(settings.Log.Output, stdout, stderr)

	svc, err := console.New(settings.Log)
	if err != nil {
		return err
	}

	defer func() {
		_ = svc.Close()
	}()

	err = svc.AddHook("levels", levels)
	if err != nil {
		return err
	}

	logs.SetLogService(svc)

	db := openDB(settings, svc, logs)

	defer func() {
		_ = db.Close()
	}()

	pingCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	err = db.PingContext(pingCtx)
	if err != nil {
		logs.LogError(svcadapters.ErrorLevel, "ping failed", err)

		return ewrap.Wrap(err, "ping failed").
			WithMetadata("driver", settings.DataSource.Driver)
	}

	logs.Log(svcadapters.InfoLevel, "ping succeeded")

	if o.withMetrics {
		return writeMetrics(stdout, registry)
	}

	return nil
}

// openDB hands a data source adapter to database/sql first and binds the
// real data source afterwards.
func openDB(settings *configloader.Settings, svc *console.Service, logs svcadapters.LogService) *sql.DB {
	source := jdbc.NewDataSourceAdapter()
	db := sql.OpenDB(source)

	factories := jdbc.NewDataSourceFactoryAdapter()
	factories.SetFactory(newFactory(settings.DataSource.Driver, svc))

	backing, err := factories.CreateDataSource(settings.DataSource.Properties)
	if err != nil {
		logs.LogError(svcadapters.WarningLevel, "falling back to the null data source", err)

		return db
	}

	err = backing.SetLoginTimeout(settings.DataSource.LoginTimeout)
	if err != nil {
		logs.LogError(svcadapters.WarningLevel, "ignoring login timeout", err)
	}

	err = backing.SetLogWriter(&logWriter{logs: logs})
	if err != nil {
		logs.LogError(svcadapters.WarningLevel, "ignoring data source log writer", err)
	}

	source.SetDataSource(backing)

	return db
}

func newFactory(driverName string, loggers svcadapters.LoggerFactory) svcadapters.DataSourceFactory {
	if driverName == sqlsource.PostgresDriverName {
		return sqlsource.NewPostgresFactory(sqlsource.WithLoggerFactory(loggers))
	}

	return sqlsource.NewFactory(driverName, sqlsource.WithLoggerFactory(loggers))
}

func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return ewrap.Wrap(err, "failed to gather metrics")
	}

	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))

	for _, family := range families {
		err = encoder.Encode(family)
		if err != nil {
			return ewrap.Wrap(err, "failed to encode metrics")
		}
	}

	return nil
}

// logWriter turns data source diagnostics into debug records.
type logWriter struct {
	logs svcadapters.LogService
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.logs.Log(svcadapters.DebugLevel, strings.TrimRight(string(p), "\n"))

	return len(p), nil
}
