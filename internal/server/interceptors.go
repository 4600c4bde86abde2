package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joshp123/robosim/internal/logging"
)

// UnaryLoggingInterceptor stores a method-scoped logger in the request
// context and logs each call's code and duration.
func UnaryLoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		scoped := logger.With("method", info.FullMethod)
		resp, err := handler(logging.NewContext(ctx, scoped), req)
		logCall(ctx, scoped, start, err)
		return resp, err
	}
}

// StreamLoggingInterceptor is the streaming counterpart of
// UnaryLoggingInterceptor.
func StreamLoggingInterceptor(logger *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		scoped := logger.With("method", info.FullMethod)
		ctx := logging.NewContext(ss.Context(), scoped)
		err := handler(srv, &contextStream{ServerStream: ss, ctx: ctx})
		logCall(ctx, scoped, start, err)
		return err
	}
}

type contextStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *contextStream) Context() context.Context {
	return s.ctx
}

func logCall(ctx context.Context, logger *slog.Logger, start time.Time, err error) {
	code := status.Code(err)
	level := slog.LevelDebug
	switch code {
	case codes.OK, codes.Canceled:
	case codes.Internal, codes.Unknown, codes.DataLoss:
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	attrs := []any{"code", code.String(), "duration", time.Since(start)}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	logger.Log(ctx, level, "rpc finished", attrs...)
}
