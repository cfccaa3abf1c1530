package constants

type (
	// TraceKey is the context key for the trace id.
	TraceKey struct{}
	// RequestKey is the context key for the request id.
	RequestKey struct{}
)

// Where the middleware reads identifiers from.
const (
	TraceHeader   = "X-Trace-ID"
	RequestHeader = "X-Request-ID"

	// gRPC metadata keys are lower case.
	TraceMetadataKey   = "x-trace-id"
	RequestMetadataKey = "x-request-id"
)

// ContextKeyMap returns the context keys keyed by the field name they are logged under.
func ContextKeyMap() map[string]any {
	return map[string]any{
		"trace_id":   TraceKey{},
		"request_id": RequestKey{},
	}
}
