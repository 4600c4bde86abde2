package core

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
)

// HealthStatus represents capability health states for registry reporting.
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "HEALTHY"
	HealthDegraded HealthStatus = "DEGRADED"
	HealthError    HealthStatus = "ERROR"
)

// Dashboard is a Grafana dashboard asset embedded by a capability.
type Dashboard struct {
	Name string
	JSON []byte
}

// Manifest describes a capability for discovery and registry metadata.
type Manifest struct {
	CapabilityID string
	DisplayName  string
	Version      string
	Services     []string
}

// Capability is one RPC role the robot serves. Every capability registers
// its own service descriptors against the shared gRPC server.
type Capability interface {
	ID() string
	Manifest() Manifest
	Description() string
	Dashboards() []Dashboard
	RegisterGRPC(grpc.ServiceRegistrar)
	Collectors() []prometheus.Collector
	Health() HealthStatus
	HealthMessage() string
}

// HTTPRegistrant allows capabilities to expose HTTP handlers.
type HTTPRegistrant interface {
	RegisterHTTP(*http.ServeMux)
}
