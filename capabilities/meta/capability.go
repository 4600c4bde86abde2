package meta

import (
	_ "embed"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"

	"github.com/joshp123/robosim/internal/core"
	"github.com/joshp123/robosim/internal/robot"
)

//go:embed DESCRIPTION.md
var descriptionMD string

// Capability serves the robot's fixed identity.
type Capability struct {
	robot         *robot.Robot
	health        core.HealthStatus
	healthMessage string
}

func NewCapability(r *robot.Robot) Capability {
	if r == nil {
		return Capability{health: core.HealthError, healthMessage: "robot not configured"}
	}
	return Capability{robot: r, health: core.HealthHealthy}
}

func (c Capability) ID() string {
	return "meta"
}

func (c Capability) Manifest() core.Manifest {
	return core.Manifest{
		CapabilityID: "meta",
		DisplayName:  "Metadata",
		Version:      "0.1.0",
		Services:     []string{"robot.v1.MetaService"},
	}
}

func (c Capability) Description() string {
	return descriptionMD
}

func (c Capability) Dashboards() []core.Dashboard {
	return nil
}

func (c Capability) RegisterGRPC(server grpc.ServiceRegistrar) {
	RegisterMetaService(server, c.robot)
}

func (c Capability) Collectors() []prometheus.Collector {
	return nil
}

func (c Capability) Health() core.HealthStatus {
	return c.health
}

func (c Capability) HealthMessage() string {
	return c.healthMessage
}
