package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestJSONHandler(t *testing.T) {
	handler := JSONHandler(func() any { return map[string]string{"mode": "GUIDED"} })
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["mode"] != "GUIDED" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestDashboardsHandler(t *testing.T) {
	handler := DashboardsHandler("/dashboards/", map[string][]byte{
		"/dashboards/robot/overview.json": []byte(`{"title":"robot"}`),
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboards/robot/overview.json", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != `{"title":"robot"}` {
		t.Fatalf("unexpected dashboard response: %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboards/", nil))
	var paths []string
	if err := json.Unmarshal(rec.Body.Bytes(), &paths); err != nil {
		t.Fatalf("decode index: %v", err)
	}
	if len(paths) != 1 || paths[0] != "/dashboards/robot/overview.json" {
		t.Fatalf("unexpected index: %v", paths)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboards/missing.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMetricsHandler(t *testing.T) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "robosim_build_info",
		Help: "Build information",
	}, func() float64 { return 1 }))

	srv := httptest.NewServer(MetricsHandler(registry))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "robosim_build_info 1") {
		t.Fatalf("metric missing from output: %s", body)
	}
}

func TestWorkerPoolBoundsConcurrency(t *testing.T) {
	pool := newWorkerPool(1)
	info := &grpc.UnaryServerInfo{FullMethod: "/robot.v1.StopService/Stop"}

	entered := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_, _ = pool.unary(context.Background(), nil, info, func(context.Context, any) (any, error) {
			close(entered)
			<-release
			return nil, nil
		})
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := pool.unary(ctx, nil, info, func(context.Context, any) (any, error) {
		t.Fatalf("second call must wait for a free worker")
		return nil, nil
	})
	if status.Code(err) != codes.DeadlineExceeded {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}

	// Health checks are never queued behind robot calls.
	healthInfo := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	called := false
	if _, err := pool.unary(context.Background(), nil, healthInfo, func(context.Context, any) (any, error) {
		called = true
		return nil, nil
	}); err != nil || !called {
		t.Fatalf("health check blocked: called=%v err=%v", called, err)
	}

	close(release)
}

type blockingStream struct {
	grpc.ServerStream
	ctx  context.Context
	recv chan struct{}
}

func (s *blockingStream) Context() context.Context { return s.ctx }

func (s *blockingStream) RecvMsg(any) error {
	select {
	case <-s.recv:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	}
}

func TestWorkerPoolStreamHoldsSlotOnlyPerMessage(t *testing.T) {
	pool := newWorkerPool(1)
	streamInfo := &grpc.StreamServerInfo{FullMethod: "/robot.v1.RCService/Move", IsClientStream: true}
	unaryInfo := &grpc.UnaryServerInfo{FullMethod: "/robot.v1.StopService/Stop"}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ss := &blockingStream{ctx: ctx, recv: make(chan struct{})}

	applied := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- pool.stream(nil, ss, streamInfo, func(_ any, stream grpc.ServerStream) error {
			for {
				if err := stream.RecvMsg(nil); err != nil {
					return err
				}
				applied <- struct{}{}
			}
		})
	}()

	ss.recv <- struct{}{}
	<-applied

	// The stream is back in RecvMsg and must not hold the only slot.
	callCtx, callCancel := context.WithTimeout(context.Background(), time.Second)
	defer callCancel()
	if _, err := pool.unary(callCtx, nil, unaryInfo, func(context.Context, any) (any, error) {
		return nil, nil
	}); err != nil {
		t.Fatalf("unary call blocked by idle stream: %v", err)
	}

	cancel()
	if err := <-done; err == nil {
		t.Fatalf("expected stream to end with the context error")
	}

	// The slot is free once the stream has ended.
	if _, err := pool.unary(context.Background(), nil, unaryInfo, func(context.Context, any) (any, error) {
		return nil, nil
	}); err != nil {
		t.Fatalf("slot leaked after stream ended: %v", err)
	}
}
