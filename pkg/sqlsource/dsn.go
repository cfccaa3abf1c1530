package sqlsource

import (
	"net/url"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/svcadapters"
)

// ErrMissingURL is returned when no url property is set.
var ErrMissingURL = ewrap.New("url property is required")

// DSNBuilder builds a data source name from properties and credentials.
type DSNBuilder func(props svcadapters.Properties, username, password string) (string, error)

// URLDSN uses the url property as the data source name.
// When the url has a scheme and host, non-empty credentials replace its user info.
func URLDSN(props svcadapters.Properties, username, password string) (string, error) {
	raw := props.Get(svcadapters.PropURL)
	if raw == "" {
		return "", ErrMissingURL
	}

	if username == "" {
		return raw, nil
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		// Opaque driver DSN: pass it through untouched.
		return raw, nil //nolint:nilerr
	}

	if password == "" {
		parsed.User = url.User(username)
	} else {
		parsed.User = url.UserPassword(username, password)
	}

	return parsed.String(), nil
}
