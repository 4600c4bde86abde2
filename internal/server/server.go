package server

import (
	"context"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// GRPCOptions configures the gRPC server.
type GRPCOptions struct {
	// MaxWorkers bounds how many RPCs are handled at once.
	MaxWorkers int
	Logger     *slog.Logger
}

// GRPCServer wraps a gRPC server, its listener and the health service.
type GRPCServer struct {
	Server   *grpc.Server
	Listener net.Listener
	Health   *health.Server
}

func NewGRPCServer(addr string, opts GRPCOptions) (*GRPCServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return NewGRPCServerWithListener(ln, opts), nil
}

// NewGRPCServerWithListener builds the server on an existing listener.
func NewGRPCServerWithListener(ln net.Listener, opts GRPCOptions) *GRPCServer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	pool := newWorkerPool(opts.MaxWorkers)
	serverOpts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(UnaryLoggingInterceptor(logger), pool.unary),
		grpc.ChainStreamInterceptor(StreamLoggingInterceptor(logger), pool.stream),
	}
	if opts.MaxWorkers > 0 {
		serverOpts = append(serverOpts, grpc.NumStreamWorkers(uint32(opts.MaxWorkers)))
	}

	s := grpc.NewServer(serverOpts...)
	reflection.Register(s)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)

	return &GRPCServer{Server: s, Listener: ln, Health: hs}
}

func (s *GRPCServer) Serve() error {
	return s.Server.Serve(s.Listener)
}

// GracefulStop marks every service NOT_SERVING and drains in-flight RPCs.
func (s *GRPCServer) GracefulStop() {
	s.Health.Shutdown()
	s.Server.GracefulStop()
}

// Shutdown drains gracefully until ctx is done, then cancels whatever is
// still running. Long-lived control streams would otherwise hold it open.
func (s *GRPCServer) Shutdown(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.Server.Stop()
		<-done
	}
}
