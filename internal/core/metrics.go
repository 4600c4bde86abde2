package core

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var capabilityHealthDesc = prometheus.NewDesc(
	"robosim_capability_health",
	"Current health of each robot capability, one series per capability at its status.",
	[]string{"capability", "status"}, nil,
)

// capabilityHealth reports Health() at scrape time so a capability that
// loses its robot shows up without a restart.
type capabilityHealth struct {
	capabilities []Capability
}

func (c capabilityHealth) Describe(ch chan<- *prometheus.Desc) {
	ch <- capabilityHealthDesc
}

func (c capabilityHealth) Collect(ch chan<- prometheus.Metric) {
	for _, capability := range c.capabilities {
		ch <- prometheus.MustNewConstMetric(capabilityHealthDesc, prometheus.GaugeValue, 1,
			capability.ID(), string(capability.Health()))
	}
}

// MetricsRegistry builds a registry holding every capability's collectors
// and the capability health gauge.
func MetricsRegistry(capabilities []Capability) (*prometheus.Registry, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(capabilityHealth{capabilities: capabilities}); err != nil {
		return nil, fmt.Errorf("register capability health: %w", err)
	}

	for _, capability := range capabilities {
		for _, collector := range capability.Collectors() {
			if err := registry.Register(collector); err != nil {
				return nil, fmt.Errorf("capability %s: register collector: %w", capability.ID(), err)
			}
		}
	}

	return registry, nil
}
