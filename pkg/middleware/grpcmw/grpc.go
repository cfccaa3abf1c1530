// Package grpcmw provides gRPC server interceptors that store request
// identifiers in the context and log completed calls to a LogService.
package grpcmw

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/hyp3rd/svcadapters"
	"github.com/hyp3rd/svcadapters/internal/constants"
)

// UnaryServerInterceptor stores the trace and request identifiers found in
// the incoming metadata in the handler context.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	cfg := resolveOptions(opts...)

	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		return handler(withIdentifiers(ctx, cfg), req)
	}
}

// StreamServerInterceptor is the streaming counterpart of UnaryServerInterceptor.
func StreamServerInterceptor(opts ...Option) grpc.StreamServerInterceptor {
	cfg := resolveOptions(opts...)

	return func(srv any, stream grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		return handler(srv, &contextStream{ServerStream: stream, ctx: withIdentifiers(stream.Context(), cfg)})
	}
}

// UnaryLoggingInterceptor logs one record per call to logs.
//
// Successful calls are logged at InfoLevel, calls failing with a client
// status code at WarningLevel and any other failure at ErrorLevel together
// with the returned error.
func UnaryLoggingInterceptor(logs svcadapters.LogService, opts ...LogOption) grpc.UnaryServerInterceptor {
	cfg := logOptions{}

	for _, opt := range opts {
		opt(&cfg)
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)

		code := status.Code(err)

		extractors := append([]svcadapters.ContextExtractor{svcadapters.IDExtractor}, svcadapters.GlobalContextExtractors()...)
		extractors = append(extractors, cfg.extractors...)

		fields := []svcadapters.Field{
			svcadapters.Str("method", info.FullMethod),
			svcadapters.Str("code", code.String()),
		}
		fields = append(fields, svcadapters.ApplyContextExtractors(ctx, extractors...)...)

		msg := svcadapters.AppendFields("grpc call", fields)
		level := codeLevel(code)

		switch {
		case cfg.reference != nil && err != nil:
			logs.LogRefError(cfg.reference, level, msg, err)
		case cfg.reference != nil:
			logs.LogRef(cfg.reference, level, msg)
		case err != nil:
			logs.LogError(level, msg, err)
		default:
			logs.Log(level, msg)
		}

		return resp, err
	}
}

func codeLevel(code codes.Code) svcadapters.Level {
	switch code {
	case codes.OK:
		return svcadapters.InfoLevel
	case codes.Canceled, codes.InvalidArgument, codes.NotFound, codes.AlreadyExists,
		codes.PermissionDenied, codes.Unauthenticated, codes.ResourceExhausted,
		codes.FailedPrecondition, codes.OutOfRange:
		return svcadapters.WarningLevel
	default:
		return svcadapters.ErrorLevel
	}
}

func withIdentifiers(ctx context.Context, cfg options) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}

	if values := md.Get(cfg.traceKey); len(values) > 0 && values[0] != "" {
		ctx = context.WithValue(ctx, constants.TraceKey{}, values[0])
	}

	if values := md.Get(cfg.requestKey); len(values) > 0 && values[0] != "" {
		ctx = context.WithValue(ctx, constants.RequestKey{}, values[0])
	}

	return ctx
}

type contextStream struct {
	grpc.ServerStream

	ctx context.Context //nolint:containedctx // the stream exposes it through Context.
}

func (s *contextStream) Context() context.Context {
	return s.ctx
}
