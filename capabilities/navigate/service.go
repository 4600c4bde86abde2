package navigate

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
	robotv1.UnimplementedGoToServiceServer
	robot *robot.Robot
}

func RegisterGoToService(server grpc.ServiceRegistrar, r *robot.Robot) {
	robotv1.RegisterGoToServiceServer(server, &service{robot: r})
}

// GoToCoordinates moves the robot when it is GUIDED. Rejections are
// reported in the result field with an OK status.
func (s *service) GoToCoordinates(ctx context.Context, req *robotv1.GoToRequest) (*robotv1.GoToReply, error) {
	if s.robot == nil {
		return nil, status.Error(codes.FailedPrecondition, "robot not configured")
	}
	x, y := wire.Target(req)
	reply := s.robot.Navigate(x, y)
	if reply.Result != robot.NavigateSuccess {
		logging.FromContext(ctx).Debug("navigation rejected",
			"request_uid", wire.RequestUID(req.Header),
			"x", x, "y", y, "result", reply.Result.String())
	}
	return &robotv1.GoToReply{
		Header: wire.Header(reply.Header),
		Result: wire.GoToResult(reply.Result),
	}, nil
}
