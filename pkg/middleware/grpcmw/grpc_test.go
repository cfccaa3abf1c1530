package grpcmw

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/hyp3rd/svcadapters"
	"github.com/hyp3rd/svcadapters/internal/constants"
	"github.com/hyp3rd/svcadapters/pkg/mocks"
)

func TestUnaryServerInterceptorMetadataExtraction(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		constants.TraceHeader, "trace-123",
		constants.RequestHeader, "request-456",
	))

	var capturedTrace, capturedRequest string

	handler := func(ctx context.Context, _ any) (any, error) {
		capturedTrace, _ = ctx.Value(constants.TraceKey{}).(string)
		capturedRequest, _ = ctx.Value(constants.RequestKey{}).(string)

		return nil, nil
	}

	_, err := UnaryServerInterceptor()(ctx, nil, &grpc.UnaryServerInfo{}, handler)
	require.NoError(t, err)
	require.Equal(t, "trace-123", capturedTrace)
	require.Equal(t, "request-456", capturedRequest)
}

func TestUnaryServerInterceptorCustomKeys(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		"x-trace", "custom-trace",
		"x-request", "custom-request",
	))

	interceptor := UnaryServerInterceptor(
		WithTraceKey("x-trace"),
		WithRequestKey("x-request"),
	)

	handler := func(ctx context.Context, _ any) (any, error) {
		require.Equal(t, "custom-trace", ctx.Value(constants.TraceKey{}))
		require.Equal(t, "custom-request", ctx.Value(constants.RequestKey{}))

		return nil, nil
	}

	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, handler)
	require.NoError(t, err)
}

func TestUnaryServerInterceptorWithoutMetadata(t *testing.T) {
	t.Parallel()

	handler := func(ctx context.Context, _ any) (any, error) {
		require.Nil(t, ctx.Value(constants.TraceKey{}))

		return "ok", nil
	}

	resp, err := UnaryServerInterceptor()(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	require.NoError(t, err)
	require.Equal(t, "ok", resp)
}

type fakeStream struct {
	grpc.ServerStream

	ctx context.Context //nolint:containedctx
}

func (s fakeStream) Context() context.Context { return s.ctx }

func TestStreamServerInterceptor(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-trace-id", "stream-trace"))

	var captured string

	err := StreamServerInterceptor()(nil, fakeStream{ctx: ctx}, &grpc.StreamServerInfo{}, func(_ any, stream grpc.ServerStream) error {
		captured, _ = stream.Context().Value(constants.TraceKey{}).(string)

		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "stream-trace", captured)
}

func TestUnaryLoggingInterceptor(t *testing.T) {
	logs := mocks.NewMockLogService()
	logs.SetOutput(nil)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-request-id", "r-1"))
	chain := func(err error) error {
		info := &grpc.UnaryServerInfo{FullMethod: "/orders.Orders/Get"}
		logging := UnaryLoggingInterceptor(logs)

		_, callErr := UnaryServerInterceptor()(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
			return logging(ctx, req, info, func(context.Context, any) (any, error) { return nil, err })
		})

		return callErr
	}

	require.NoError(t, chain(nil))

	notFound := status.Error(codes.NotFound, "no such order")
	require.ErrorIs(t, chain(notFound), notFound)

	internal := status.Error(codes.Internal, "db down")
	require.ErrorIs(t, chain(internal), internal)

	require.Equal(t, []string{
		"[INFO] grpc call {method=/orders.Orders/Get, code=OK, request_id=r-1}",
		"[WARNING] grpc call {method=/orders.Orders/Get, code=NotFound, request_id=r-1} " + notFound.Error(),
		"[ERROR] grpc call {method=/orders.Orders/Get, code=Internal, request_id=r-1} " + internal.Error(),
	}, logs.Messages())
}

func TestUnaryLoggingInterceptorReference(t *testing.T) {
	logs := mocks.NewMockLogService()
	logs.SetOutput(nil)

	ref := svcadapters.NamedReference("orders")
	info := &grpc.UnaryServerInfo{FullMethod: "/orders.Orders/List"}
	interceptor := UnaryLoggingInterceptor(logs, WithReference(ref))

	_, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) { return nil, nil })
	require.NoError(t, err)

	failure := status.Error(codes.Unavailable, "try later")
	_, err = interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) { return nil, failure })
	require.ErrorIs(t, err, failure)

	require.Equal(t, []string{
		"[INFO] orders grpc call {method=/orders.Orders/List, code=OK}",
		"[ERROR] orders grpc call {method=/orders.Orders/List, code=Unavailable} " + failure.Error(),
	}, logs.Messages())
}

func TestCodeLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, svcadapters.InfoLevel, codeLevel(codes.OK))
	require.Equal(t, svcadapters.WarningLevel, codeLevel(codes.PermissionDenied))
	require.Equal(t, svcadapters.ErrorLevel, codeLevel(codes.Unknown))
	require.Equal(t, svcadapters.ErrorLevel, codeLevel(codes.DataLoss))
}
