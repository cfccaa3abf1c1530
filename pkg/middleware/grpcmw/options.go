package grpcmw

import (
	"github.com/hyp3rd/svcadapters"
	"github.com/hyp3rd/svcadapters/internal/constants"
)

// Option configures how identifiers are read from incoming metadata.
type Option func(*options)

type options struct {
	traceKey   string
	requestKey string
}

// WithTraceKey sets the metadata key holding the trace identifier.
func WithTraceKey(name string) Option {
	return func(o *options) {
		if o == nil || name == "" {
			return
		}

		o.traceKey = name
	}
}

// WithRequestKey sets the metadata key holding the request identifier.
func WithRequestKey(name string) Option {
	return func(o *options) {
		if o == nil || name == "" {
			return
		}

		o.requestKey = name
	}
}

func resolveOptions(opts ...Option) options {
	cfg := options{
		traceKey:   constants.TraceMetadataKey,
		requestKey: constants.RequestMetadataKey,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// LogOption configures the logging interceptor.
type LogOption func(*logOptions)

type logOptions struct {
	reference  svcadapters.ServiceReference
	extractors []svcadapters.ContextExtractor
}

// WithReference logs every call against ref.
func WithReference(ref svcadapters.ServiceReference) LogOption {
	return func(o *logOptions) {
		o.reference = ref
	}
}

// WithExtractors adds context extractors on top of the identifier and global extractors.
func WithExtractors(extractors ...svcadapters.ContextExtractor) LogOption {
	return func(o *logOptions) {
		o.extractors = append(o.extractors, extractors...)
	}
}
