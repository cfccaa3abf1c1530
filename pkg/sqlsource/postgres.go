package sqlsource

import (
	"database/sql/driver"
	"strings"

	"github.com/lib/pq"

	"github.com/hyp3rd/svcadapters"
)

// PostgresDriverName is the name lib/pq registers with database/sql.
const PostgresDriverName = "postgres"

// NewPostgresFactory creates a factory backed by lib/pq.
// The url property wins when set; otherwise serverName, portNumber,
// databaseName and sslmode are assembled into a key/value DSN.
func NewPostgresFactory(opts ...Option) *Factory {
	base := []Option{
		WithDriver(&pq.Driver{}),
		WithDSNBuilder(PostgresDSN),
		WithConnector(func(dsn string) (driver.Connector, error) {
			return pq.NewConnector(dsn)
		}),
	}

	return NewFactory(PostgresDriverName, append(base, opts...)...)
}

// PostgresDSN builds a lib/pq data source name.
func PostgresDSN(props svcadapters.Properties, username, password string) (string, error) {
	if props.Get(svcadapters.PropURL) != "" {
		return URLDSN(props, username, password)
	}

	pairs := []struct{ key, value string }{
		{"host", props.Get(svcadapters.PropServerName)},
		{"port", props.Get(svcadapters.PropPortNumber)},
		{"dbname", props.Get(svcadapters.PropDatabaseName)},
		{"user", username},
		{"password", password},
		{"sslmode", props.Get(svcadapters.PropSSLMode)},
	}

	var builder strings.Builder

	for _, pair := range pairs {
		if pair.value == "" {
			continue
		}

		if builder.Len() > 0 {
			builder.WriteByte(' ')
		}

		builder.WriteString(pair.key)
		builder.WriteByte('=')
		writeQuoted(&builder, pair.value)
	}

	if builder.Len() == 0 {
		return "", ErrMissingURL
	}

	return builder.String(), nil
}

// writeQuoted writes a single-quoted DSN value with backslash escapes.
func writeQuoted(builder *strings.Builder, value string) {
	builder.WriteByte('\'')

	for _, r := range value {
		if r == '\'' || r == '\\' {
			builder.WriteByte('\\')
		}

		builder.WriteRune(r)
	}

	builder.WriteByte('\'')
}
