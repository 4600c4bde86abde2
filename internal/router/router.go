package router

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	robotv1 "github.com/joshp123/robosim/api/robot/v1"
	"github.com/joshp123/robosim/internal/core"
)

// RegisterCapabilities registers capability services and core services on
// the gRPC server. When hs is non-nil every service gets a health status
// derived from its capability.
func RegisterCapabilities(server grpc.ServiceRegistrar, hs *health.Server, capabilities []core.Capability) {
	robotv1.RegisterRegistryServer(server, core.NewRegistryService(capabilities))

	for _, c := range capabilities {
		c.RegisterGRPC(server)
	}

	if hs == nil {
		return
	}
	hs.SetServingStatus(robotv1.Registry_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	for _, c := range capabilities {
		status := healthpb.HealthCheckResponse_SERVING
		if c.Health() == core.HealthError {
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
		for _, svc := range c.Manifest().Services {
			hs.SetServingStatus(svc, status)
		}
	}
}
