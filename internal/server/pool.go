package server

import (
	"context"
	"strings"

	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// workerPool admits at most n robot RPCs into their handlers at once. A
// unary call holds its slot until it returns. A stream holds a slot only
// while it applies a received message, never while it waits in Recv. gRPC
// infrastructure services (health, reflection) bypass the pool.
type workerPool struct {
	sem *semaphore.Weighted
}

func newWorkerPool(n int) *workerPool {
	if n <= 0 {
		return &workerPool{}
	}
	return &workerPool{sem: semaphore.NewWeighted(int64(n))}
}

func (p *workerPool) metered(method string) bool {
	return p.sem != nil && !strings.HasPrefix(method, "/grpc.")
}

func (p *workerPool) acquire(ctx context.Context) (func(), error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	return func() { p.sem.Release(1) }, nil
}

func (p *workerPool) unary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !p.metered(info.FullMethod) {
		return handler(ctx, req)
	}
	release, err := p.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return handler(ctx, req)
}

func (p *workerPool) stream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if !p.metered(info.FullMethod) {
		return handler(srv, ss)
	}
	ms := &meteredStream{ServerStream: ss, pool: p}
	defer ms.releaseHeld()
	return handler(srv, ms)
}

// meteredStream takes a slot after each received message and gives it back
// before the next receive.
type meteredStream struct {
	grpc.ServerStream
	pool    *workerPool
	release func()
}

func (s *meteredStream) RecvMsg(m any) error {
	s.releaseHeld()
	if err := s.ServerStream.RecvMsg(m); err != nil {
		return err
	}
	release, err := s.pool.acquire(s.Context())
	if err != nil {
		return err
	}
	s.release = release
	return nil
}

func (s *meteredStream) releaseHeld() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
}
