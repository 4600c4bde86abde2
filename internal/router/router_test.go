package router

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/jhump/protoreflect/grpcreflect"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	robotv1 "github.com/joshp123/robosim/api/robot/v1"
	"github.com/joshp123/robosim/internal/capabilities"
	"github.com/joshp123/robosim/internal/core"
	"github.com/joshp123/robosim/internal/robot"
	"github.com/joshp123/robosim/internal/server"
	"github.com/joshp123/robosim/internal/telemetry"
)

func newTestRobot(t *testing.T, opts ...robot.Option) *robot.Robot {
	t.Helper()
	r, err := robot.New(robot.Config{
		Templates:        []robot.Template{{Name: "Arnie", Model: "T-800", Description: "GOOD"}},
		UIDStartMin:      100,
		UIDStartMax:      101,
		StopFailureOneIn: 5,
		Seed:             7,
	}, opts...)
	if err != nil {
		t.Fatalf("robot.New: %v", err)
	}
	return r
}

func startServer(t *testing.T, caps []core.Capability) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := server.NewGRPCServerWithListener(lis, server.GRPCOptions{
		MaxWorkers: 4,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	RegisterCapabilities(srv.Server, srv.Health, caps)
	go func() { _ = srv.Serve() }()
	t.Cleanup(srv.GracefulStop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func setMode(t *testing.T, ctx context.Context, conn *grpc.ClientConn, mode robotv1.Mode) *robotv1.SetModeReply {
	t.Helper()
	reply, err := robotv1.NewTelemServiceClient(conn).SetMode(ctx, &robotv1.SetModeRequest{Mode: mode})
	if err != nil {
		t.Fatalf("SetMode(%s): %v", mode, err)
	}
	return reply
}

func telemetrySnapshot(t *testing.T, ctx context.Context, conn *grpc.ClientConn) *robotv1.TelemetryReply {
	t.Helper()
	reply, err := robotv1.NewTelemServiceClient(conn).GetTelemetry(ctx, &robotv1.TelemetryRequest{})
	if err != nil {
		t.Fatalf("GetTelemetry: %v", err)
	}
	return reply
}

func waitForPosition(t *testing.T, ctx context.Context, conn *grpc.ClientConn, x, y float64) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		snap := telemetrySnapshot(t, ctx, conn)
		if snap.X == x && snap.Y == y {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("robot never reached (%v, %v): %+v", x, y, snap)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestGuidedNavigation(t *testing.T) {
	r := newTestRobot(t)
	conn := startServer(t, capabilities.Compiled(capabilities.Deps{Robot: r}))
	ctx := testContext(t)

	modeReply := setMode(t, ctx, conn, robotv1.Mode_MODE_GUIDED)
	if !modeReply.Success {
		t.Fatalf("expected GUIDED to be accepted")
	}
	if modeReply.Header.Uid != "00000000000000000100" {
		t.Fatalf("unexpected first uid: %s", modeReply.Header.Uid)
	}

	client := robotv1.NewGoToServiceClient(conn)
	cases := []struct {
		name string
		x, y float64
		want robotv1.GoToResult
	}{
		{"valid", 3, 4, robotv1.GoToResult_GO_TO_RESULT_SUCCESS},
		{"negative", -1, 2, robotv1.GoToResult_GO_TO_RESULT_INVALID_COORDINATES},
		{"nan", math.NaN(), 2, robotv1.GoToResult_GO_TO_RESULT_UNDEFINED},
		{"infinite", 1, math.Inf(1), robotv1.GoToResult_GO_TO_RESULT_UNDEFINED},
	}
	for _, tc := range cases {
		reply, err := client.GoToCoordinates(ctx, &robotv1.GoToRequest{XCoord: tc.x, YCoord: tc.y})
		if err != nil {
			t.Fatalf("%s: GoToCoordinates: %v", tc.name, err)
		}
		if reply.Result != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, reply.Result)
		}
	}

	snap := telemetrySnapshot(t, ctx, conn)
	if snap.X != 3 || snap.Y != 4 || snap.Mode != robotv1.Mode_MODE_GUIDED {
		t.Fatalf("unexpected telemetry: %+v", snap)
	}
	if snap.Header.Uid != "00000000000000000105" {
		t.Fatalf("expected uid 105 after five stamped replies, got %s", snap.Header.Uid)
	}
}

func TestNavigationRequiresGuided(t *testing.T) {
	conn := startServer(t, capabilities.Compiled(capabilities.Deps{Robot: newTestRobot(t)}))
	ctx := testContext(t)

	reply, err := robotv1.NewGoToServiceClient(conn).GoToCoordinates(ctx, &robotv1.GoToRequest{XCoord: 1, YCoord: 1})
	if err != nil {
		t.Fatalf("GoToCoordinates: %v", err)
	}
	if reply.Result != robotv1.GoToResult_GO_TO_RESULT_CANNOT_MOVE {
		t.Fatalf("expected CANNOT_MOVE, got %s", reply.Result)
	}

	setMode(t, ctx, conn, robotv1.Mode_MODE_MANUAL)
	reply, err = robotv1.NewGoToServiceClient(conn).GoToCoordinates(ctx, &robotv1.GoToRequest{XCoord: -1, YCoord: 1})
	if err != nil {
		t.Fatalf("GoToCoordinates: %v", err)
	}
	if reply.Result != robotv1.GoToResult_GO_TO_RESULT_CANNOT_MOVE {
		t.Fatalf("mode gate must win over coordinate checks, got %s", reply.Result)
	}
}

func TestSetModeRejectsUnknown(t *testing.T) {
	conn := startServer(t, capabilities.Compiled(capabilities.Deps{Robot: newTestRobot(t)}))
	ctx := testContext(t)

	setMode(t, ctx, conn, robotv1.Mode_MODE_MANUAL)
	if reply := setMode(t, ctx, conn, robotv1.Mode_MODE_UNKNOWN); reply.Success {
		t.Fatalf("UNKNOWN must be refused")
	}
	if snap := telemetrySnapshot(t, ctx, conn); snap.Mode != robotv1.Mode_MODE_MANUAL {
		t.Fatalf("refused change must keep MANUAL, got %s", snap.Mode)
	}
}

func TestEmergencyStopResetsMode(t *testing.T) {
	conn := startServer(t, capabilities.Compiled(capabilities.Deps{Robot: newTestRobot(t)}))
	ctx := testContext(t)
	client := robotv1.NewStopServiceClient(conn)

	for i := 0; i < 20; i++ {
		setMode(t, ctx, conn, robotv1.Mode_MODE_GUIDED)
		reply, err := client.Stop(ctx, &robotv1.StopRequest{Header: &robotv1.Header{Uid: "client"}})
		if err != nil {
			t.Fatalf("Stop: %v", err)
		}
		if reply.Status != robotv1.StopStatus_STOP_STATUS_SUCCESS && reply.Status != robotv1.StopStatus_STOP_STATUS_FAIL {
			t.Fatalf("unexpected stop status %s", reply.Status)
		}
		if snap := telemetrySnapshot(t, ctx, conn); snap.Mode != robotv1.Mode_MODE_UNKNOWN {
			t.Fatalf("stop must reset mode regardless of status, got %s", snap.Mode)
		}
	}
}

func TestManualControlStream(t *testing.T) {
	r := newTestRobot(t)
	metrics := telemetry.NewMetricsCollector()
	conn := startServer(t, capabilities.Compiled(capabilities.Deps{Robot: r, Metrics: metrics}))
	ctx := testContext(t)

	setMode(t, ctx, conn, robotv1.Mode_MODE_MANUAL)

	stream, err := robotv1.NewRCServiceClient(conn).Move(ctx)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if err := stream.Send(&robotv1.ControlFrame{
		XAxis:           5,
		YAxis:           6,
		LeftArmCommand:  robotv1.ArmState_ARM_STATE_OPEN,
		RightArmCommand: robotv1.ArmState_ARM_STATE_CLOSED,
	}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	waitForPosition(t, ctx, conn, 5, 6)

	// Leaving MANUAL mid-stream must stop later frames from applying.
	setMode(t, ctx, conn, robotv1.Mode_MODE_GUIDED)
	if err := stream.Send(&robotv1.ControlFrame{XAxis: 9, YAxis: 9, LeftArmCommand: robotv1.ArmState_ARM_STATE_CLOSED}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if _, err := stream.CloseAndRecv(); err != nil {
		t.Fatalf("CloseAndRecv: %v", err)
	}

	snap := telemetrySnapshot(t, ctx, conn)
	if snap.X != 5 || snap.Y != 6 {
		t.Fatalf("ignored frame moved the robot: %+v", snap)
	}
	if snap.LeftArm != robotv1.ArmState_ARM_STATE_OPEN || snap.RightArm != robotv1.ArmState_ARM_STATE_CLOSED {
		t.Fatalf("unexpected arms: %s/%s", snap.LeftArm, snap.RightArm)
	}
	if snap.Mode != robotv1.Mode_MODE_GUIDED {
		t.Fatalf("control stream must not change mode, got %s", snap.Mode)
	}
}

func TestCancelledControlStream(t *testing.T) {
	r := newTestRobot(t)
	conn := startServer(t, capabilities.Compiled(capabilities.Deps{Robot: r}))
	ctx := testContext(t)

	setMode(t, ctx, conn, robotv1.Mode_MODE_MANUAL)

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stream, err := robotv1.NewRCServiceClient(conn).Move(streamCtx)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if err := stream.Send(&robotv1.ControlFrame{XAxis: 2, YAxis: 3}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	waitForPosition(t, ctx, conn, 2, 3)

	cancel()
	_, err = stream.CloseAndRecv()
	if status.Code(err) != codes.Canceled {
		t.Fatalf("expected Canceled, got %v", err)
	}
	// Sends after cancellation never reach the robot.
	_ = stream.Send(&robotv1.ControlFrame{XAxis: 8, YAxis: 8})

	time.Sleep(50 * time.Millisecond)
	if snap := telemetrySnapshot(t, ctx, conn); snap.X != 2 || snap.Y != 3 {
		t.Fatalf("frame applied after cancel: %+v", snap)
	}
	if snap := telemetrySnapshot(t, ctx, conn); snap.Mode != robotv1.Mode_MODE_MANUAL {
		t.Fatalf("cancel must not change mode, got %s", snap.Mode)
	}
}

func TestStopAnswersWhileControlStreamsAreOpen(t *testing.T) {
	conn := startServer(t, capabilities.Compiled(capabilities.Deps{Robot: newTestRobot(t)}))
	ctx := testContext(t)

	setMode(t, ctx, conn, robotv1.Mode_MODE_MANUAL)

	// As many idle streams as the server has workers.
	for i := 0; i < 4; i++ {
		stream, err := robotv1.NewRCServiceClient(conn).Move(ctx)
		if err != nil {
			t.Fatalf("Move %d: %v", i, err)
		}
		if err := stream.Send(&robotv1.ControlFrame{XAxis: float64(i + 1)}); err != nil {
			t.Fatalf("Send %d: %v", i, err)
		}
	}

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	reply, err := robotv1.NewStopServiceClient(conn).Stop(stopCtx, &robotv1.StopRequest{})
	if err != nil {
		t.Fatalf("Stop with open control streams: %v", err)
	}
	if reply.GetStatus() != robotv1.StopStatus_STOP_STATUS_SUCCESS && reply.GetStatus() != robotv1.StopStatus_STOP_STATUS_FAIL {
		t.Fatalf("unexpected stop status %s", reply.GetStatus())
	}
	if snap := telemetrySnapshot(t, ctx, conn); snap.Mode != robotv1.Mode_MODE_UNKNOWN {
		t.Fatalf("stop must reset mode, got %s", snap.Mode)
	}
}

func TestMoveWithoutFramesReturnsEmpty(t *testing.T) {
	conn := startServer(t, capabilities.Compiled(capabilities.Deps{Robot: newTestRobot(t)}))
	ctx := testContext(t)

	stream, err := robotv1.NewRCServiceClient(conn).Move(ctx)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	reply, err := stream.CloseAndRecv()
	if err != nil {
		t.Fatalf("CloseAndRecv: %v", err)
	}
	if reply == nil {
		t.Fatalf("expected an empty reply")
	}
}

func TestMetadata(t *testing.T) {
	r := newTestRobot(t)
	conn := startServer(t, capabilities.Compiled(capabilities.Deps{Robot: r}))
	ctx := testContext(t)

	md, err := robotv1.NewMetaServiceClient(conn).GetMetadata(ctx, &robotv1.MetadataRequest{})
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if md.Name != "Arnie" || !strings.HasPrefix(md.FirmwareVersion, "T-800-") {
		t.Fatalf("unexpected metadata: %+v", md)
	}
	if len(md.SerialId) != 20 || md.SerialId != r.Metadata().SerialID {
		t.Fatalf("unexpected serial: %q", md.SerialId)
	}
	if !strings.HasSuffix(md.BatteryType, "S-T-800") {
		t.Fatalf("unexpected battery type: %q", md.BatteryType)
	}

	again, err := robotv1.NewMetaServiceClient(conn).GetMetadata(ctx, &robotv1.MetadataRequest{})
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if !proto.Equal(again, md) {
		t.Fatalf("metadata changed between calls: %+v vs %+v", again, md)
	}
}

func TestRegistryAndHealth(t *testing.T) {
	conn := startServer(t, capabilities.Compiled(capabilities.Deps{Robot: newTestRobot(t), Metrics: telemetry.NewMetricsCollector()}))
	ctx := testContext(t)

	list, err := robotv1.NewRegistryClient(conn).ListCapabilities(ctx, &robotv1.ListCapabilitiesRequest{})
	if err != nil {
		t.Fatalf("ListCapabilities: %v", err)
	}
	if len(list.Capabilities) != 5 {
		t.Fatalf("expected 5 capabilities, got %d", len(list.Capabilities))
	}

	desc, err := robotv1.NewRegistryClient(conn).DescribeCapability(ctx, &robotv1.DescribeCapabilityRequest{CapabilityId: "telem"})
	if err != nil {
		t.Fatalf("DescribeCapability: %v", err)
	}
	if desc.Capability == nil || len(desc.Capability.Dashboards) != 1 {
		t.Fatalf("expected telem with one dashboard, got %+v", desc.Capability)
	}
	if desc.Capability.Dashboards[0].Path != "/dashboards/telem/robot-overview.json" {
		t.Fatalf("unexpected dashboard path: %s", desc.Capability.Dashboards[0].Path)
	}

	health := healthpb.NewHealthClient(conn)
	for _, svc := range []string{"robot.v1.StopService", "robot.v1.GoToService", "robot.v1.TelemService", "robot.v1.RCService", "robot.v1.MetaService", "robot.v1.Registry"} {
		resp, err := health.Check(ctx, &healthpb.HealthCheckRequest{Service: svc})
		if err != nil {
			t.Fatalf("health check %s: %v", svc, err)
		}
		if resp.Status != healthpb.HealthCheckResponse_SERVING {
			t.Fatalf("%s: expected SERVING, got %s", svc, resp.Status)
		}
	}
}

func TestUnconfiguredRobot(t *testing.T) {
	conn := startServer(t, capabilities.Compiled(capabilities.Deps{}))
	ctx := testContext(t)

	_, err := robotv1.NewStopServiceClient(conn).Stop(ctx, &robotv1.StopRequest{})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: "robot.v1.StopService"})
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	if resp.Status != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Fatalf("expected NOT_SERVING, got %s", resp.Status)
	}
}

func TestDefaultProtoClientAndReflection(t *testing.T) {
	conn := startServer(t, capabilities.Compiled(capabilities.Deps{Robot: newTestRobot(t)}))
	ctx := testContext(t)

	// A generic client with no generated stubs and the default codec.
	reply := &robotv1.StopReply{}
	if err := conn.Invoke(ctx, robotv1.StopService_Stop_FullMethodName, &robotv1.StopRequest{}, reply); err != nil {
		t.Fatalf("Invoke Stop: %v", err)
	}
	if len(reply.GetHeader().GetUid()) != 20 || reply.GetHeader().GetTimestamp() == nil {
		t.Fatalf("unexpected stop reply: %v", reply)
	}

	client := grpcreflect.NewClientAuto(ctx, conn)
	defer client.Reset()
	for _, name := range []string{"robot.v1.StopService", "robot.v1.GoToService", "robot.v1.TelemService", "robot.v1.RCService", "robot.v1.MetaService"} {
		svc, err := client.ResolveService(name)
		if err != nil {
			t.Fatalf("resolve %s: %v", name, err)
		}
		if len(svc.GetMethods()) == 0 {
			t.Fatalf("%s resolved without methods", name)
		}
	}
	move, err := client.ResolveService("robot.v1.RCService")
	if err != nil {
		t.Fatalf("resolve RCService: %v", err)
	}
	if m := move.FindMethodByName("Move"); m == nil || !m.IsClientStreaming() || m.GetInputType().GetFullyQualifiedName() != "robot.v1.ControlFrame" {
		t.Fatalf("unexpected Move descriptor: %v", m)
	}
}
