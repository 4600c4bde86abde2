package telem

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	robotv1 "github.com/joshp123/robosim/api/robot/v1"
	"github.com/joshp123/robosim/internal/logging"
	"github.com/joshp123/robosim/internal/robot"
	"github.com/joshp123/robosim/internal/wire"
)

type service struct {
	robotv1.UnimplementedTelemServiceServer
	robot *robot.Robot
}

func RegisterTelemService(server grpc.ServiceRegistrar, r *robot.Robot) {
	robotv1.RegisterTelemServiceServer(server, &service{robot: r})
}

// SetMode switches between MANUAL and GUIDED. UNKNOWN is refused with
// success=false.
func (s *service) SetMode(ctx context.Context, req *robotv1.SetModeRequest) (*robotv1.SetModeReply, error) {
	if s.robot == nil {
		return nil, status.Error(codes.FailedPrecondition, "robot not configured")
	}
	reply := s.robot.SetMode(wire.ModeFromWire(req.Mode))
	if !reply.Success {
		logging.FromContext(ctx).Debug("mode change refused",
			"request_uid", wire.RequestUID(req.Header), "mode", req.Mode.String())
	}
	return &robotv1.SetModeReply{
		Header:  wire.Header(reply.Header),
		Success: reply.Success,
	}, nil
}

func (s *service) GetTelemetry(ctx context.Context, _ *robotv1.TelemetryRequest) (*robotv1.TelemetryReply, error) {
	if s.robot == nil {
		return nil, status.Error(codes.FailedPrecondition, "robot not configured")
	}
	return toTelemetryReply(s.robot.Telemetry()), nil
}

func toTelemetryReply(t robot.TelemetryReply) *robotv1.TelemetryReply {
	return &robotv1.TelemetryReply{
		Header:   wire.Header(t.Header),
		Mode:     wire.Mode(t.Mode),
		X:        t.Position.X,
		Y:        t.Position.Y,
		LeftArm:  wire.ArmState(t.Arms.Left),
		RightArm: wire.ArmState(t.Arms.Right),
	}
}
