package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/joshp123/robosim/internal/capabilities"
	"github.com/joshp123/robosim/internal/robot"
	"github.com/joshp123/robosim/internal/router"
	"github.com/joshp123/robosim/internal/server"
)

type harness struct {
	t     *testing.T
	lis   *bufconn.Listener
	robot *robot.Robot
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	r, err := robot.New(robot.Config{
		Templates:   []robot.Template{{Name: "Robert", Model: "T-1000", Description: "BAD"}},
		UIDStartMin: 0,
		UIDStartMax: 10,
		Seed:        11,
	})
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := server.NewGRPCServerWithListener(lis, server.GRPCOptions{
		MaxWorkers: 4,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	router.RegisterCapabilities(srv.Server, srv.Health, capabilities.Compiled(capabilities.Deps{Robot: r}))
	go func() { _ = srv.Serve() }()
	t.Cleanup(srv.GracefulStop)

	return &harness{t: t, lis: lis, robot: r}
}

func (h *harness) run(stdin string, args ...string) (string, error) {
	h.t.Helper()
	a := &app{
		in: strings.NewReader(stdin),
		dial: func(ctx context.Context, _ string) (*grpc.ClientConn, error) {
			return grpc.NewClient("passthrough:///bufnet",
				grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
					return h.lis.DialContext(ctx)
				}),
				grpc.WithTransportCredentials(insecure.NewCredentials()),
			)
		},
	}
	cmd := newRootCommand(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--addr", "bufnet", "--timeout", "5s"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandTree(t *testing.T) {
	cmd := newRootCommand(&app{})

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"stop", "goto", "mode", "telemetry", "metadata", "move", "capabilities", "services", "health"} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("addr"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("json"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("timeout"))
}

func TestModeAndGoTo(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "mode", "Guided")
	require.NoError(t, err)
	assert.Contains(t, out, "success:")
	assert.Contains(t, out, "true")

	out, err = h.run("", "--json", "goto", "2", "3")
	require.NoError(t, err)
	var reply struct {
		Result string `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &reply))
	assert.Equal(t, "GO_TO_RESULT_SUCCESS", reply.Result)

	out, err = h.run("", "goto", "abc", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "UNDEFINED")

	pos := h.robot.Position()
	assert.Equal(t, robot.Position{X: 2, Y: 3}, pos)
}

func TestModeSuggestsClosestName(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "mode", "gided")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "guided"`)
}

func TestMoveStreamsFramesFromStdin(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "mode", "manual")
	require.NoError(t, err)

	frames := `{"x_axis": 1, "y_axis": 1}
{"x_axis": 4, "y_axis": 5, "left_arm_command": "ARM_STATE_OPEN", "right_arm_command": "ARM_STATE_CLOSED"}

`
	out, err := h.run(frames, "move", "--rate", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "sent 2 frames")

	assert.Equal(t, robot.Position{X: 4, Y: 5}, h.robot.Position())
	assert.Equal(t, robot.Arms{Left: robot.ArmOpen, Right: robot.ArmClosed}, h.robot.Arms())
}

func TestMoveRejectsMalformedFrame(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(`{"x_axis": 1, "left_arm_command": "FLAILING"}`, "move", "--rate", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame 1")
}

func TestTelemetryMetadataAndStop(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "metadata")
	require.NoError(t, err)
	assert.Contains(t, out, "Robert")
	assert.Contains(t, out, h.robot.Metadata().SerialID)

	_, err = h.run("", "stop")
	require.NoError(t, err)

	out, err = h.run("", "telemetry")
	require.NoError(t, err)
	assert.Contains(t, out, "UNKNOWN")
}

func TestCapabilitiesAndHealth(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "capabilities", "list")
	require.NoError(t, err)
	for _, id := range []string{"estop", "navigate", "telem", "rc", "meta"} {
		assert.Contains(t, out, id)
	}

	out, err = h.run("", "capabilities", "describe", "Remote Control")
	require.NoError(t, err)
	assert.Contains(t, out, "robot.v1.RCService")

	out, err = h.run("", "health", "robot.v1.MetaService")
	require.NoError(t, err)
	assert.Equal(t, "SERVING", strings.TrimSpace(out))
}

func TestServicesViaReflection(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "services")
	require.NoError(t, err)
	assert.Contains(t, out, "robot.v1.GoToService")
	assert.Contains(t, out, "grpc.health.v1.Health")
}

func TestDialable(t *testing.T) {
	assert.Equal(t, "localhost:9000", dialable("[::]:9000"))
	assert.Equal(t, "localhost:9000", dialable("0.0.0.0:9000"))
	assert.Equal(t, "localhost:9000", dialable(":9000"))
	assert.Equal(t, "robot:9000", dialable("robot:9000"))
}

func TestResolveAddrPrefersEnvironment(t *testing.T) {
	t.Setenv("ROBOSIM_GRPC_ADDR", "[::]:7001")
	assert.Equal(t, "localhost:7001", resolveAddr())
}

func TestTelemetryJSONUsesProtoNames(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "mode", "guided")
	require.NoError(t, err)
	_, err = h.run("", "goto", "1", "2")
	require.NoError(t, err)

	out, err := h.run("", "--json", "telemetry")
	require.NoError(t, err)
	var reply map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &reply))
	assert.Equal(t, "MODE_GUIDED", reply["mode"])
	assert.Equal(t, "ARM_STATE_UNKNOWN", reply["left_arm"])
	assert.Equal(t, float64(1), reply["x"])
	header, ok := reply["header"].(map[string]any)
	require.True(t, ok, "expected header object, got %v", reply["header"])
	assert.Len(t, header["uid"], 20)
}
