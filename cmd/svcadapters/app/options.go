package app

import (
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/hyp3rd/svcadapters/internal/constants"
	"github.com/hyp3rd/svcadapters/pkg/configloader"
)

// options holds the flags shared by every command.
type options struct {
	configPath string
	envPrefix  string
}

// AddFlags adds the persistent flags to fs.
func (o *options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "path to a YAML configuration file")
	fs.StringVar(&o.envPrefix, "env-prefix", constants.EnvPrefix, "prefix of the environment variables read when no configuration file is given")
}

// settings loads the configuration file, or the environment when no file is set.
func (o *options) settings() (*configloader.Settings, error) {
	if o.configPath != "" {
		return configloader.FromFile(o.configPath)
	}

	return configloader.FromEnv(o.envPrefix)
}

// pingOptions holds the flags of the ping command.
type pingOptions struct {
	*options

	driver      string
	timeout     time.Duration
	withMetrics bool
}

// AddFlags adds the ping flags to fs.
func (o *pingOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.driver, "driver", "", "database/sql driver name, overrides the configured one")
	fs.DurationVar(&o.timeout, "timeout", constants.DefaultTimeout, "time allowed for the connection check")
	fs.BoolVar(&o.withMetrics, "metrics", false, "print adapter metrics in the Prometheus text format when done")
}

// streamFor maps the standard streams chosen by configuration onto the
// command's writers.
func streamFor(configured, stdout, stderr io.Writer) io.Writer {
	switch configured {
	case os.Stdout:
		return stdout
	case os.Stderr:
		return stderr
	default:
		return configured
	}
}

// logOutput picks the stream for log records. With --metrics, stdout carries
// only the metrics, so records bound for it go to stderr.
func (o *pingOptions) logOutput(configured, stdout, stderr io.Writer) io.Writer {
	if o.withMetrics && configured == os.Stdout {
		return stderr
	}

	return streamFor(configured, stdout, stderr)
}
