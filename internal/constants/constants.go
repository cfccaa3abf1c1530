// Package constants provides values shared across the adapters, log services,
// middleware and the command line tool.
package constants

import "time"

const (
	// NonProductionEnvironment is the environment name for non-production environments.
	NonProductionEnvironment = "development"
	// DefaultTimeout bounds connection checks issued by the command line tool.
	DefaultTimeout = 5 * time.Second
	// EnvPrefix is the prefix of environment variables read by the config loader.
	EnvPrefix = "SVCADAPTERS"
)

// Named log outputs accepted by configuration. Anything else is a file path.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)
