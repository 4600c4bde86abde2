package rc

import (
	_ "embed"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"

	"github.com/joshp123/robosim/internal/core"
	"github.com/joshp123/robosim/internal/robot"
)

//go:embed DESCRIPTION.md
var descriptionMD string

// FrameCounter is told about every frame the mode gate rejects.
type FrameCounter interface {
	IgnoredFrame()
}

// Capability serves the manual-control stream.
type Capability struct {
	robot         *robot.Robot
	frames        FrameCounter
	health        core.HealthStatus
	healthMessage string
}

func NewCapability(r *robot.Robot, frames FrameCounter) Capability {
	if r == nil {
		return Capability{health: core.HealthError, healthMessage: "robot not configured"}
	}
	return Capability{robot: r, frames: frames, health: core.HealthHealthy}
}

func (c Capability) ID() string {
	return "rc"
}

func (c Capability) Manifest() core.Manifest {
	return core.Manifest{
		CapabilityID: "rc",
		DisplayName:  "Remote Control",
		Version:      "0.1.0",
		Services:     []string{"robot.v1.RCService"},
	}
}

func (c Capability) Description() string {
	return descriptionMD
}

func (c Capability) Dashboards() []core.Dashboard {
	return nil
}

func (c Capability) RegisterGRPC(server grpc.ServiceRegistrar) {
	RegisterRCService(server, c.robot, c.frames)
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
