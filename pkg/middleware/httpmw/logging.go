package httpmw

import (
	"net/http"
	"time"

	"github.com/hyp3rd/svcadapters"
)

// LogOption configures LoggingMiddleware.
type LogOption func(*logOptions)

type logOptions struct {
	reference  svcadapters.ServiceReference
	extractors []svcadapters.ContextExtractor
	now        func() time.Time
}

// WithReference logs every request against ref.
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

// LoggingMiddleware logs one record per request to logs once the handler returns.
//
// Server errors are logged at ErrorLevel, client errors at WarningLevel and
// everything else at InfoLevel. Fields from the context extractors are
// appended to the message.
func LoggingMiddleware(logs svcadapters.LogService, opts ...LogOption) func(http.Handler) http.Handler {
	cfg := logOptions{now: time.Now}

	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := cfg.now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			extractors := append([]svcadapters.ContextExtractor{svcadapters.IDExtractor}, svcadapters.GlobalContextExtractors()...)
			extractors = append(extractors, cfg.extractors...)

			fields := []svcadapters.Field{
				svcadapters.Str("method", r.Method),
				svcadapters.Str("path", r.URL.Path),
				svcadapters.Int("status", recorder.status),
				svcadapters.Duration("duration", cfg.now().Sub(start)),
			}
			fields = append(fields, svcadapters.ApplyContextExtractors(r.Context(), extractors...)...)

			msg := svcadapters.AppendFields("http request", fields)
			level := statusLevel(recorder.status)

			if cfg.reference != nil {
				logs.LogRef(cfg.reference, level, msg)

				return
			}

			logs.Log(level, msg)
		})
	}
}

func statusLevel(status int) svcadapters.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return svcadapters.ErrorLevel
	case status >= http.StatusBadRequest:
		return svcadapters.WarningLevel
	default:
		return svcadapters.InfoLevel
	}
}

type statusRecorder struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}

	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	r.wroteHeader = true

	return r.ResponseWriter.Write(p)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
