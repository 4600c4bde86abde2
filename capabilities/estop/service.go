package estop

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
	robotv1.UnimplementedStopServiceServer
	robot *robot.Robot
}

func RegisterStopService(server grpc.ServiceRegistrar, r *robot.Robot) {
	robotv1.RegisterStopServiceServer(server, &service{robot: r})
}

// Stop drops the robot out of its active mode. A FAIL status is a normal
// reply, not an RPC error.
func (s *service) Stop(ctx context.Context, req *robotv1.StopRequest) (*robotv1.StopReply, error) {
	if s.robot == nil {
		return nil, status.Error(codes.FailedPrecondition, "robot not configured")
	}
	reply := s.robot.EmergencyStop()
	if reply.Status == robot.StopFail {
		logging.FromContext(ctx).Warn("emergency stop reported failure",
			"request_uid", wire.RequestUID(req.Header), "uid", reply.Header.UID)
	}
	return &robotv1.StopReply{
		Header: wire.Header(reply.Header),
		Status: wire.StopStatus(reply.Status),
	}, nil
}
