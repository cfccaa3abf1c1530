// Package httpmw provides net/http middleware that stores request identifiers
// in the context and logs completed requests to a LogService.
package httpmw

import (
	"context"
	"crypto/rand"
	"net/http"

	"github.com/hyp3rd/svcadapters/internal/constants"
)

// Option configures ContextMiddleware.
type Option func(*options)

type options struct {
	traceHeader   string
	requestHeader string
	newID         func() string
	generate      bool
}

// WithTraceHeader reads the trace id from name instead of X-Trace-ID.
func WithTraceHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.traceHeader = name
		}
	}
}

// WithRequestHeader reads the request id from name instead of X-Request-ID.
func WithRequestHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.requestHeader = name
		}
	}
}

// WithIDGenerator replaces the generator used for missing identifiers.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithGenerateMissingIDs controls whether missing identifiers are generated. Defaults to true.
func WithGenerateMissingIDs(enable bool) Option {
	return func(o *options) {
		o.generate = enable
	}
}

// ContextMiddleware stores the trace and request identifiers in the request context.
func ContextMiddleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := options{
		traceHeader:   constants.TraceHeader,
		requestHeader: constants.RequestHeader,
		newID:         rand.Text,
		generate:      true,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := cfg.identify(r.Context(), r.Header.Get(cfg.traceHeader), constants.TraceKey{})
			ctx = cfg.identify(ctx, r.Header.Get(cfg.requestHeader), constants.RequestKey{})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// identify stores id under key, generating one when id is empty and generation is on.
func (o *options) identify(ctx context.Context, id string, key any) context.Context {
	if id == "" && o.generate {
		id = o.newID()
	}

	if id == "" {
		return ctx
	}

	return context.WithValue(ctx, key, id)
}
