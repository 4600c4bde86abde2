package meta

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	robotv1 "github.com/joshp123/robosim/api/robot/v1"
	"github.com/joshp123/robosim/internal/robot"
)

type service struct {
	robotv1.UnimplementedMetaServiceServer
	robot *robot.Robot
}

func RegisterMetaService(server grpc.ServiceRegistrar, r *robot.Robot) {
	robotv1.RegisterMetaServiceServer(server, &service{robot: r})
}

func (s *service) GetMetadata(context.Context, *robotv1.MetadataRequest) (*robotv1.Metadata, error) {
	if s.robot == nil {
		return nil, status.Error(codes.FailedPrecondition, "robot not configured")
	}
	return toMetadata(s.robot.Metadata()), nil
}

func toMetadata(id robot.Identity) *robotv1.Metadata {
	return &robotv1.Metadata{
		Name:            id.Name,
		FirmwareVersion: id.FirmwareVersion,
		Birthday:        id.Birthday,
		SerialId:        id.SerialID,
		BatteryType:     id.BatteryType,
	}
}
