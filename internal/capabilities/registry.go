// Package capabilities collects the capabilities compiled into this build.
package capabilities

import (
	"github.com/joshp123/robosim/internal/core"
	"github.com/joshp123/robosim/internal/robot"
	"github.com/joshp123/robosim/internal/telemetry"
)

// Deps are the shared collaborators every capability is built from.
type Deps struct {
	Robot   *robot.Robot
	Metrics *telemetry.MetricsCollector
}

// Factory builds a capability from the shared dependencies.
type Factory func(Deps) core.Capability

var compiled []Factory

// Register adds a compiled-in capability factory to the registry.
func Register(factory Factory) {
	compiled = append(compiled, factory)
}

// Compiled returns one instance of every registered capability.
func Compiled(deps Deps) []core.Capability {
	out := make([]core.Capability, 0, len(compiled))
	for _, factory := range compiled {
		out = append(out, factory(deps))
	}
	return out
}
