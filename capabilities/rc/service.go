package rc

import (
	"errors"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	robotv1 "github.com/joshp123/robosim/api/robot/v1"
	"github.com/joshp123/robosim/internal/logging"
	"github.com/joshp123/robosim/internal/robot"
	"github.com/joshp123/robosim/internal/wire"
)

type service struct {
	robotv1.UnimplementedRCServiceServer
	robot  *robot.Robot
	frames FrameCounter
}

func RegisterRCService(server grpc.ServiceRegistrar, r *robot.Robot, frames FrameCounter) {
	robotv1.RegisterRCServiceServer(server, &service{robot: r, frames: frames})
}

// Move applies each frame as it arrives. The mode is checked per frame, so
// a stream that outlives a mode change stops taking effect from the next
// frame on. Frames received outside MANUAL mode are dropped silently.
func (s *service) Move(stream robotv1.RCService_MoveServer) error {
	if s.robot == nil {
		return status.Error(codes.FailedPrecondition, "robot not configured")
	}
	ctx := stream.Context()
	logger := logging.FromContext(ctx)

	var applied, ignored int
	for {
		frame, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			logger.Debug("control stream closed", "applied", applied, "ignored", ignored)
			return stream.SendAndClose(&emptypb.Empty{})
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return status.FromContextError(ctxErr).Err()
			}
			return err
		}

		if s.robot.ApplyControl(wire.Frame(frame)) {
			applied++
			continue
		}
		ignored++
		if s.frames != nil {
			s.frames.IgnoredFrame()
		}
	}
}
