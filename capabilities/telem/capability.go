package telem

import (
	_ "embed"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"

	"github.com/joshp123/robosim/internal/core"
	"github.com/joshp123/robosim/internal/robot"
	"github.com/joshp123/robosim/internal/server"
	"github.com/joshp123/robosim/internal/telemetry"
)

//go:embed DESCRIPTION.md
var descriptionMD string

//go:embed dashboard.json
var dashboardJSON []byte

// Capability serves mode changes and state snapshots. It also owns the
// robot's Prometheus collector and overview dashboard.
type Capability struct {
	robot         *robot.Robot
	metrics       *telemetry.MetricsCollector
	health        core.HealthStatus
	healthMessage string
}

func NewCapability(r *robot.Robot, metrics *telemetry.MetricsCollector) Capability {
	if r == nil {
		return Capability{health: core.HealthError, healthMessage: "robot not configured"}
	}
	c := Capability{robot: r, metrics: metrics, health: core.HealthHealthy}
	if metrics == nil {
		c.health = core.HealthDegraded
		c.healthMessage = "metrics collector not configured"
	}
	return c
}

func (c Capability) ID() string {
	return "telem"
}

func (c Capability) Manifest() core.Manifest {
	return core.Manifest{
		CapabilityID: "telem",
		DisplayName:  "Telemetry",
		Version:      "0.1.0",
		Services:     []string{"robot.v1.TelemService"},
	}
}

func (c Capability) Description() string {
	return descriptionMD
}

func (c Capability) Dashboards() []core.Dashboard {
	return []core.Dashboard{{Name: "robot-overview", JSON: dashboardJSON}}
}

func (c Capability) RegisterGRPC(server grpc.ServiceRegistrar) {
	RegisterTelemService(server, c.robot)
}

func (c Capability) Collectors() []prometheus.Collector {
	if c.metrics == nil {
		return nil
	}
	return []prometheus.Collector{c.metrics}
}

func (c Capability) Health() core.HealthStatus {
	return c.health
}

func (c Capability) HealthMessage() string {
	return c.healthMessage
}

// StatusView is served on /status.
type StatusView struct {
	Identity robot.Identity `json:"identity"`
	State    robot.State    `json:"state"`
	NextUID  string         `json:"next_uid"`
}

// RegisterHTTP exposes the robot's identity and live state as JSON.
func (c Capability) RegisterHTTP(mux *http.ServeMux) {
	if c.robot == nil {
		return
	}
	mux.Handle("/status", server.JSONHandler(func() any {
		return StatusView{
			Identity: c.robot.Metadata(),
			State:    c.robot.Snapshot(),
			NextUID:  robot.FormatUID(c.robot.PeekUID()),
		}
	}))
}
